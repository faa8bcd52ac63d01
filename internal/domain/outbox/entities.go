package outbox

import "time"

type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
)

// Event is one outbox row. It is inserted in the same transaction as the
// financial mutation it describes and drained asynchronously by the
// dispatcher; delivery failures never touch the committed mutation.
type Event struct {
	ID            uint64     `gorm:"primaryKey;column:id"`
	EventID       string     `gorm:"size:32;column:event_id;uniqueIndex:ux_outbox_event_id"`
	EventType     string     `gorm:"size:64;column:event_type;not null;index"`
	SchemaVersion int        `gorm:"column:schema_version;default:1"`
	Payload       []byte     `gorm:"type:text;column:payload"`
	Status        Status     `gorm:"size:16;column:status;default:'pending';index"`
	Attempts      int        `gorm:"column:attempts;default:0"`
	LastError     string     `gorm:"type:text;column:last_error"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime"`
	SentAt        *time.Time `gorm:"column:sent_at"`
}

func (Event) TableName() string { return "outbox_events" }
