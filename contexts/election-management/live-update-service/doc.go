// Package liveupdateservice pushes change notifications to connected
// voters, spectators and election managers.
//
// A connection authenticates once, is mapped to exactly one notification
// group (session:{id} for voters and spectators, manager:{id} for managers)
// and then only receives {"type":"update","table":...} frames telling the
// client what to re-fetch. Notifications are produced by the commit hook
// listener and carried by a pluggable bus; delivery is best effort.
package liveupdateservice
