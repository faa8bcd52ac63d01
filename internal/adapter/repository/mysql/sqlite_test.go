package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no decimal/enum column types) ---

type ledgerSQLite struct {
	ID               uint64         `gorm:"primaryKey;column:id"`
	LedgerID         string         `gorm:"size:32;column:ledger_id"`
	ReferenceID      string         `gorm:"size:32;column:reference_id"`
	Type             string         `gorm:"type:text;column:type"`
	Status           string         `gorm:"type:text;column:status"`
	ApprovalLevel    int            `gorm:"column:approval_level"`
	CompanyID        string         `gorm:"size:32;column:company_id"`
	SubTotalAmount   float64        `gorm:"column:sub_total_amount"`
	DiscountAmount   float64        `gorm:"column:discount_amount"`
	AdjustmentAmount float64        `gorm:"column:adjustment_amount"`
	Amount           float64        `gorm:"column:amount"`
	BalanceAmount    float64        `gorm:"column:balance_amount"`
	LedgerDate       time.Time      `gorm:"column:ledger_date"`
	DueDate          *time.Time     `gorm:"column:due_date"`
	Notes            string         `gorm:"column:notes"`
	StatusUpdatedAt  time.Time      `gorm:"column:status_updated_at"`
	CreatedAt        time.Time      `gorm:"column:created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (ledgerSQLite) TableName() string { return "ledgers" }

type lineItemSQLite struct {
	ID           uint64         `gorm:"primaryKey;column:id"`
	LineItemID   string         `gorm:"size:32;column:line_item_id"`
	LedgerID     uint64         `gorm:"column:ledger_id"`
	EmployeeID   string         `gorm:"size:32;column:employee_id"`
	PlacementID  uint64         `gorm:"column:placement_id"`
	RatePeriodID uint64         `gorm:"column:rate_period_id"`
	Description  string         `gorm:"column:description"`
	Hours        float64        `gorm:"column:hours"`
	OTHours      float64        `gorm:"column:ot_hours"`
	Rate         float64        `gorm:"column:rate"`
	OTRate       float64        `gorm:"column:ot_rate"`
	Amount       float64        `gorm:"column:amount"`
	HourEntryIDs string         `gorm:"type:text;column:hour_entry_ids"`
	Attachment   string         `gorm:"column:attachment"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (lineItemSQLite) TableName() string { return "ledger_line_items" }

type addressSQLite struct {
	ID          uint64    `gorm:"primaryKey;column:id"`
	LedgerID    uint64    `gorm:"column:ledger_id"`
	AddressType string    `gorm:"type:text;column:address_type"`
	Name        string    `gorm:"column:name"`
	Line1       string    `gorm:"column:line1"`
	Line2       string    `gorm:"column:line2"`
	City        string    `gorm:"column:city"`
	State       string    `gorm:"column:state"`
	Zip         string    `gorm:"column:zip"`
	Country     string    `gorm:"column:country"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (addressSQLite) TableName() string { return "ledger_addresses" }

type hourEntrySQLite struct {
	ID            uint64         `gorm:"primaryKey;column:id"`
	TimesheetID   string         `gorm:"size:32;column:timesheet_id"`
	PlacementID   uint64         `gorm:"column:placement_id"`
	EmployeeID    string         `gorm:"size:32;column:employee_id"`
	Date          time.Time      `gorm:"column:date"`
	RegularHours  float64        `gorm:"column:regular_hours"`
	OTHours       float64        `gorm:"column:ot_hours"`
	InvoiceRaised bool           `gorm:"column:invoice_raised"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (hourEntrySQLite) TableName() string { return "timesheet_hour_entries" }

type placementSQLite struct {
	ID          uint64         `gorm:"primaryKey;column:id"`
	PlacementID string         `gorm:"size:32;column:placement_id"`
	EmployeeID  string         `gorm:"size:32;column:employee_id"`
	CompanyID   string         `gorm:"size:32;column:company_id"`
	JobTitle    string         `gorm:"column:job_title"`
	StartDate   time.Time      `gorm:"column:start_date"`
	EndDate     *time.Time     `gorm:"column:end_date"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (placementSQLite) TableName() string { return "placements" }

type ratePeriodSQLite struct {
	ID            uint64     `gorm:"primaryKey;column:id"`
	PlacementID   uint64     `gorm:"column:placement_id"`
	EffectiveFrom time.Time  `gorm:"column:effective_from"`
	EffectiveTo   *time.Time `gorm:"column:effective_to"`
	RegularRate   float64    `gorm:"column:regular_rate"`
	OTRate        float64    `gorm:"column:ot_rate"`
	DiscountType  string     `gorm:"type:text;column:discount_type"`
	DiscountValue float64    `gorm:"column:discount_value"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

func (ratePeriodSQLite) TableName() string { return "billing_rate_periods" }

type levelSQLite struct {
	ID          uint64    `gorm:"primaryKey;column:id"`
	OwnerType   string    `gorm:"type:text;column:owner_type"`
	OwnerID     string    `gorm:"size:32;column:owner_id"`
	Level       int       `gorm:"column:level"`
	ApproverIDs string    `gorm:"type:text;column:approver_ids"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (levelSQLite) TableName() string { return "approval_levels" }

type trackSQLite struct {
	ID           uint64    `gorm:"primaryKey;column:id"`
	LedgerID     uint64    `gorm:"column:ledger_id"`
	Level        int       `gorm:"column:level"`
	ApproverID   string    `gorm:"size:32;column:approver_id"`
	Action       string    `gorm:"type:text;column:action"`
	StatusBefore string    `gorm:"type:text;column:status_before"`
	StatusAfter  string    `gorm:"type:text;column:status_after"`
	Note         string    `gorm:"column:note"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (trackSQLite) TableName() string { return "approval_tracks" }

type activityLogSQLite struct {
	ID          uint64    `gorm:"primaryKey;column:id"`
	EntityType  string    `gorm:"size:32;column:entity_type"`
	EntityID    string    `gorm:"size:32;column:entity_id"`
	Action      string    `gorm:"size:32;column:action"`
	ChangeSet   string    `gorm:"type:text;column:change_set"`
	PerformedBy string    `gorm:"size:32;column:performed_by"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (activityLogSQLite) TableName() string { return "activity_logs" }

type outboxSQLite struct {
	ID            uint64     `gorm:"primaryKey;column:id"`
	EventID       string     `gorm:"size:32;column:event_id"`
	EventType     string     `gorm:"size:64;column:event_type"`
	SchemaVersion int        `gorm:"column:schema_version"`
	Payload       []byte     `gorm:"type:text;column:payload"`
	Status        string     `gorm:"type:text;column:status"`
	Attempts      int        `gorm:"column:attempts"`
	LastError     string     `gorm:"column:last_error"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	SentAt        *time.Time `gorm:"column:sent_at"`
}

func (outboxSQLite) TableName() string { return "outbox_events" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe
// schemas, not the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&ledgerSQLite{}, &lineItemSQLite{}, &addressSQLite{},
		&hourEntrySQLite{}, &placementSQLite{}, &ratePeriodSQLite{},
		&levelSQLite{}, &trackSQLite{}, &activityLogSQLite{}, &outboxSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
