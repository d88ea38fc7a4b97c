package domain

import "time"

// NotificationSeverity classifies how urgent a notification is.
type NotificationSeverity string

const (
	SeverityInfo     NotificationSeverity = "info"
	SeverityWarning  NotificationSeverity = "warning"
	SeverityCritical NotificationSeverity = "critical"
)

// Notification is a message shown to one user (Username set) or to everyone
// (Username empty).
type Notification struct {
	ID        string               `json:"id" bson:"_id,omitempty"`
	Message   string               `json:"message" bson:"message"`
	Severity  NotificationSeverity `json:"severity" bson:"severity"`
	Username  string               `json:"username,omitempty" bson:"username,omitempty"`
	Read      bool                 `json:"read" bson:"read"`
	Timestamp time.Time            `json:"timestamp" bson:"timestamp"`
}
