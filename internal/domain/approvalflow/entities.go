package approvalflow

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type OwnerType string

const (
	OwnerPlacement OwnerType = "placement"
	OwnerCompany   OwnerType = "company"
)

// StringList stores approver identities as a JSON text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("approvalflow: unsupported StringList column type")
}

func (l StringList) Contains(id string) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

// Level is one stage of a sequential sign-off chain configured for an owner
// (a placement, or the company when line items span several placements).
// Levels are consumed by the approval state machine, never mutated by it.
type Level struct {
	ID          uint64     `gorm:"primaryKey;column:id"`
	OwnerType   OwnerType  `gorm:"size:16;column:owner_type;not null;index:idx_approval_levels_owner"`
	OwnerID     string     `gorm:"size:32;column:owner_id;not null;index:idx_approval_levels_owner"`
	Level       int        `gorm:"column:level;not null"`
	ApproverIDs StringList `gorm:"type:text;column:approver_ids"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Level) TableName() string { return "approval_levels" }

type TrackAction string

const (
	ActionSubmit  TrackAction = "submit"
	ActionApprove TrackAction = "approve"
	ActionReject  TrackAction = "reject"
	ActionPayment TrackAction = "payment"
)

// Track is one append-only audit row for an approval-chain event. Rows are
// written inside the same transaction as the status change and never updated.
type Track struct {
	ID           uint64      `gorm:"primaryKey;column:id"`
	LedgerID     uint64      `gorm:"column:ledger_id;not null;index"`
	Level        int         `gorm:"column:level"`
	ApproverID   string      `gorm:"size:32;column:approver_id"`
	Action       TrackAction `gorm:"size:16;column:action;not null"`
	StatusBefore string      `gorm:"size:32;column:status_before"`
	StatusAfter  string      `gorm:"size:32;column:status_after"`
	Note         string      `gorm:"type:text;column:note"`
	CreatedAt    time.Time   `gorm:"column:created_at;autoCreateTime"`
}

func (Track) TableName() string { return "approval_tracks" }
