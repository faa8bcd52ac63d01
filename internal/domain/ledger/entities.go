package ledger

import (
	"time"

	"gorm.io/gorm"
)

type Type string

const (
	TypeInvoice Type = "invoice"
	TypeBill    Type = "bill"
)

func (t Type) Valid() bool { return t == TypeInvoice || t == TypeBill }

type Status string

const (
	StatusDrafted            Status = "Drafted"
	StatusSubmitted          Status = "Submitted"
	StatusApprovalInProgress Status = "Approval In Progress"
	StatusApproved           Status = "Approved"
	StatusRejected           Status = "Rejected"
	StatusPartiallyApproved  Status = "Partially Approved"
	StatusPartiallyPaid      Status = "Partially Paid"
	StatusPaid               Status = "Paid"
)

// Terminal statuses accept no outgoing transitions.
func (s Status) Terminal() bool { return s == StatusRejected || s == StatusPaid }

// Ledger is the aggregate root for a client invoice or vendor bill, together
// with its line items and addresses.
//
// Invariant maintained by the recalculator on every mutation:
//
//	amount = sub_total_amount + adjustment_amount - discount_amount
//	sub_total_amount = sum(line_item.amount) over non-deleted items
type Ledger struct {
	ID            uint64 `gorm:"primaryKey;column:id" json:"-"`
	LedgerID      string `gorm:"size:32;column:ledger_id;uniqueIndex:ux_ledgers_ledger_id_active" json:"ledger_id"`
	ReferenceID   string `gorm:"size:32;column:reference_id;uniqueIndex:ux_ledgers_reference_id_active" json:"reference_id"`
	Type          Type   `gorm:"size:16;column:type;not null" json:"type"`
	Status        Status `gorm:"size:32;column:status;not null" json:"status"`
	ApprovalLevel int    `gorm:"column:approval_level;default:0" json:"approval_level"`
	CompanyID     string `gorm:"size:32;column:company_id;index" json:"company_id"`

	SubTotalAmount   float64 `gorm:"column:sub_total_amount;type:decimal(18,2)" json:"sub_total_amount"`
	DiscountAmount   float64 `gorm:"column:discount_amount;type:decimal(18,2)" json:"discount_amount"`
	AdjustmentAmount float64 `gorm:"column:adjustment_amount;type:decimal(18,2)" json:"adjustment_amount"`
	Amount           float64 `gorm:"column:amount;type:decimal(18,2)" json:"amount"`
	BalanceAmount    float64 `gorm:"column:balance_amount;type:decimal(18,2)" json:"balance_amount"`

	LedgerDate time.Time `gorm:"column:ledger_date;type:date" json:"ledger_date"`
	DueDate    *time.Time `gorm:"column:due_date;type:date" json:"due_date,omitempty"`
	Notes      string     `gorm:"type:text;column:notes" json:"notes"`

	LineItems []LineItem `gorm:"-" json:"line_items,omitempty"`
	Addresses []Address  `gorm:"-" json:"addresses,omitempty"`

	StatusUpdatedAt time.Time      `gorm:"column:status_updated_at" json:"status_updated_at"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Ledger) TableName() string { return "ledgers" }

// LineItem is one billable row of a ledger: a rate-consistent block of hours
// for an employee/placement. Owned exclusively by one ledger; removal is a
// soft delete that releases the referenced hour entries.
type LineItem struct {
	ID           uint64     `gorm:"primaryKey;column:id" json:"-"`
	LineItemID   string     `gorm:"size:32;column:line_item_id;uniqueIndex:ux_line_items_line_item_id_active" json:"line_item_id"`
	LedgerID     uint64     `gorm:"column:ledger_id;not null;index" json:"-"`
	EmployeeID   string     `gorm:"size:32;column:employee_id" json:"employee_id"`
	PlacementID  uint64     `gorm:"column:placement_id;index" json:"-"`
	RatePeriodID uint64     `gorm:"column:rate_period_id" json:"-"`
	Description  string     `gorm:"type:text;column:description" json:"description"`
	Hours        float64    `gorm:"column:hours;type:decimal(8,2)" json:"hours"`
	OTHours      float64    `gorm:"column:ot_hours;type:decimal(8,2)" json:"ot_hours"`
	Rate         float64    `gorm:"column:rate;type:decimal(18,2)" json:"rate"`
	OTRate       float64    `gorm:"column:ot_rate;type:decimal(18,2)" json:"ot_rate"`
	Amount       float64    `gorm:"column:amount;type:decimal(18,2)" json:"amount"`
	HourEntryIDs Uint64List `gorm:"type:text;column:hour_entry_ids" json:"hour_entry_ids"`
	Attachment   string     `gorm:"type:text;column:attachment" json:"attachment,omitempty"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (LineItem) TableName() string { return "ledger_line_items" }

type AddressType string

const (
	AddressBillTo AddressType = "bill_to"
	AddressShipTo AddressType = "ship_to"
	AddressRemit  AddressType = "remit_to"
)

type Address struct {
	ID          uint64      `gorm:"primaryKey;column:id" json:"-"`
	LedgerID    uint64      `gorm:"column:ledger_id;not null;index" json:"-"`
	AddressType AddressType `gorm:"size:16;column:address_type" json:"address_type"`
	Name        string      `gorm:"size:128;column:name" json:"name"`
	Line1       string      `gorm:"size:256;column:line1" json:"line1"`
	Line2       string      `gorm:"size:256;column:line2" json:"line2,omitempty"`
	City        string      `gorm:"size:64;column:city" json:"city"`
	State       string      `gorm:"size:64;column:state" json:"state"`
	Zip         string      `gorm:"size:16;column:zip" json:"zip"`
	Country     string      `gorm:"size:64;column:country" json:"country"`
	CreatedAt   time.Time   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Address) TableName() string { return "ledger_addresses" }
