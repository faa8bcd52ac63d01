package activity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// FieldChange is one before/after delta for a tracked field.
type FieldChange struct {
	FieldName string `json:"field_name"`
	OldValue  string `json:"old_value"`
	NewValue  string `json:"new_value"`
}

// ChangeSet is the JSON column payload of a log row. SchemaVersion guards
// future shape changes of the serialized form.
type ChangeSet struct {
	SchemaVersion int           `json:"schema_version"`
	Changes       []FieldChange `json:"changes"`
}

const ChangeSetSchemaVersion = 1

func (c ChangeSet) Value() (driver.Value, error) {
	if c.SchemaVersion == 0 {
		c.SchemaVersion = ChangeSetSchemaVersion
	}
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (c *ChangeSet) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*c = ChangeSet{}
		return nil
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	}
	return errors.New("activity: unsupported ChangeSet column type")
}

// Log is one immutable audit row: an action on a tracked entity with its
// field-level before/after diff. Rows are append-only.
type Log struct {
	ID          uint64    `gorm:"primaryKey;column:id" json:"-"`
	EntityType  string    `gorm:"size:32;column:entity_type;not null;index:idx_activity_entity" json:"entity_type"`
	EntityID    string    `gorm:"size:32;column:entity_id;not null;index:idx_activity_entity" json:"entity_id"`
	Action      string    `gorm:"size:32;column:action;not null" json:"action"`
	ChangeSet   ChangeSet `gorm:"type:text;column:change_set" json:"change_set"`
	PerformedBy string    `gorm:"size:32;column:performed_by" json:"performed_by"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Log) TableName() string { return "activity_logs" }
