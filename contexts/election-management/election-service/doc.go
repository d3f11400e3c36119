// Package electionservice implements sessions, elections, voters and
// applications of the election-management context, together with the
// result tally and its publication gate.
//
// Every committed write to a session, election, voter or application is
// reported through ports.CommitHook with the ownership chain attached, so
// the live-update layer never queries this module to route a notification.
// Tallies are read-only and only reachable by voters and spectators once
// an owning manager has published the results.
package electionservice
