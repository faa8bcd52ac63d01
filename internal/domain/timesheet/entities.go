package timesheet

import (
	"time"

	"gorm.io/gorm"
)

// HourEntry is one day of approved work hours for a placement. It is created
// upstream when a timesheet is approved; InvoiceRaised marks it as already
// consolidated into exactly one live ledger line item.
type HourEntry struct {
	ID            uint64  `gorm:"primaryKey;column:id" json:"-"`
	TimesheetID   string  `gorm:"size:32;column:timesheet_id;index" json:"timesheet_id"`
	PlacementID   uint64  `gorm:"column:placement_id;not null;index:idx_hour_entries_placement_date" json:"-"`
	EmployeeID    string  `gorm:"size:32;column:employee_id;index" json:"employee_id"`
	Date          time.Time `gorm:"column:date;type:date;not null;index:idx_hour_entries_placement_date" json:"date"`
	RegularHours  float64   `gorm:"column:regular_hours;type:decimal(6,2)" json:"regular_hours"`
	OTHours       float64   `gorm:"column:ot_hours;type:decimal(6,2)" json:"ot_hours"`
	InvoiceRaised bool      `gorm:"column:invoice_raised;default:false;index" json:"invoice_raised"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (HourEntry) TableName() string { return "timesheet_hour_entries" }
