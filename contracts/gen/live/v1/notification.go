package v1

// NotificationTypeUpdate is the only notification type emitted today.
const NotificationTypeUpdate = "update"

// Notification is the message carried by the pub/sub bus. It never contains
// row data; clients re-fetch authoritative state through the REST API.
type Notification struct {
	Type      string `json:"type"`
	Table     Table  `json:"table"`
	GroupKey  string `json:"group_key"`
	SessionID int64  `json:"session_id,omitempty"`
	EntityID  int64  `json:"entity_id,omitempty"`
}
