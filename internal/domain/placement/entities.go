package placement

import (
	"time"

	"gorm.io/gorm"
)

type DiscountType string

const (
	DiscountNone    DiscountType = ""
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

// Placement is an employment/engagement contract between an employee and a
// client company. It owns an ordered set of billing rate periods.
type Placement struct {
	ID          uint64 `gorm:"primaryKey;column:id" json:"-"`
	PlacementID string `gorm:"size:32;column:placement_id;uniqueIndex:ux_placements_placement_id_active" json:"placement_id"`
	EmployeeID  string `gorm:"size:32;column:employee_id;index" json:"employee_id"`
	CompanyID   string `gorm:"size:32;column:company_id;index" json:"company_id"`
	JobTitle    string `gorm:"size:128;column:job_title" json:"job_title"`
	StartDate   time.Time  `gorm:"column:start_date;type:date" json:"start_date"`
	EndDate     *time.Time `gorm:"column:end_date;type:date" json:"end_date,omitempty"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Placement) TableName() string { return "placements" }

// BillingRatePeriod is a date range during which a fixed regular/OT rate (with
// an optional discount) applies to a placement. EffectiveTo nil means open-ended.
type BillingRatePeriod struct {
	ID            uint64     `gorm:"primaryKey;column:id" json:"-"`
	PlacementID   uint64     `gorm:"column:placement_id;not null;index" json:"-"`
	EffectiveFrom time.Time  `gorm:"column:effective_from;type:date;not null" json:"effective_from"`
	EffectiveTo   *time.Time `gorm:"column:effective_to;type:date" json:"effective_to,omitempty"`
	RegularRate   float64    `gorm:"column:regular_rate;type:decimal(18,2)" json:"regular_rate"`
	OTRate        float64    `gorm:"column:ot_rate;type:decimal(18,2)" json:"ot_rate"`
	DiscountType  DiscountType `gorm:"column:discount_type;size:16" json:"discount_type"`
	DiscountValue float64      `gorm:"column:discount_value;type:decimal(18,2)" json:"discount_value"`
	CreatedAt     time.Time    `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (BillingRatePeriod) TableName() string { return "billing_rate_periods" }

// Covers reports whether date falls inside the period (inclusive bounds).
// Date-only comparison: times are truncated upstream to 00:00 UTC.
func (p BillingRatePeriod) Covers(date time.Time) bool {
	if date.Before(p.EffectiveFrom) {
		return false
	}
	if p.EffectiveTo != nil && date.After(*p.EffectiveTo) {
		return false
	}
	return true
}
