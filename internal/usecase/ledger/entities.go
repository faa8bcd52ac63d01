package ledger

import (
	"time"

	domainLedger "github.com/asifshaikgit/workforce-sub002/internal/domain/ledger"
)

type LineItemInput struct {
	PlacementID  string   `json:"placement_id"`
	EmployeeID   string   `json:"employee_id"`
	RatePeriodID uint64   `json:"rate_period_id"`
	Description  string   `json:"description"`
	Hours        float64  `json:"hours"`
	OTHours      float64  `json:"ot_hours"`
	Rate         float64  `json:"rate"`
	OTRate       float64  `json:"ot_rate"`
	HourEntryIDs []uint64 `json:"hour_entry_ids"`
	Attachment   string   `json:"attachment"`
}

type LineItemUpdate struct {
	LineItemID  string   `json:"line_item_id"`
	Description *string  `json:"description,omitempty"`
	Hours       *float64 `json:"hours,omitempty"`
	OTHours     *float64 `json:"ot_hours,omitempty"`
	Rate        *float64 `json:"rate,omitempty"`
	OTRate      *float64 `json:"ot_rate,omitempty"`
	Attachment  *string  `json:"attachment,omitempty"`
}

type AddressInput struct {
	AddressType string `json:"address_type"`
	Name        string `json:"name"`
	Line1       string `json:"line1"`
	Line2       string `json:"line2"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	Country     string `json:"country"`
}

type CreateInput struct {
	Type             string          `json:"type"`
	CompanyID        string          `json:"company_id"`
	LedgerDate       time.Time       `json:"ledger_date"`
	DueDate          *time.Time      `json:"due_date,omitempty"`
	Notes            string          `json:"notes"`
	DiscountAmount   float64         `json:"discount_amount"`
	AdjustmentAmount float64         `json:"adjustment_amount"`
	LineItems        []LineItemInput `json:"line_items"`
	Addresses        []AddressInput  `json:"addresses"`
	// Submit false saves the ledger as Drafted without entering the approval chain.
	Submit  bool   `json:"submit"`
	ActorID string `json:"-"`
}

type UpdateInput struct {
	LedgerID         string           `json:"-"`
	ActorID          string           `json:"-"`
	Notes            *string          `json:"notes,omitempty"`
	DiscountAmount   *float64         `json:"discount_amount,omitempty"`
	AdjustmentAmount *float64         `json:"adjustment_amount,omitempty"`
	DueDate          *time.Time       `json:"due_date,omitempty"`
	AddLineItems     []LineItemInput  `json:"add_line_items,omitempty"`
	UpdateLineItems  []LineItemUpdate `json:"update_line_items,omitempty"`
	// Addresses upsert by address_type: an existing address of the same type
	// is replaced, an unknown type is added.
	Addresses []AddressInput `json:"addresses,omitempty"`
}

type LineItemDTO struct {
	LineItemID   string   `json:"line_item_id"`
	EmployeeID   string   `json:"employee_id"`
	Description  string   `json:"description"`
	Hours        float64  `json:"hours"`
	OTHours      float64  `json:"ot_hours"`
	Rate         float64  `json:"rate"`
	OTRate       float64  `json:"ot_rate"`
	Amount       float64  `json:"amount"`
	HourEntryIDs []uint64 `json:"hour_entry_ids"`
	Attachment   string   `json:"attachment,omitempty"`
}

type AddressDTO struct {
	AddressType string `json:"address_type"`
	Name        string `json:"name"`
	Line1       string `json:"line1"`
	Line2       string `json:"line2,omitempty"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	Country     string `json:"country"`
}

type LedgerDTO struct {
	LedgerID         string        `json:"ledger_id"`
	ReferenceID      string        `json:"reference_id"`
	Type             string        `json:"type"`
	Status           string        `json:"status"`
	ApprovalLevel    int           `json:"approval_level"`
	CompanyID        string        `json:"company_id"`
	SubTotalAmount   float64       `json:"sub_total_amount"`
	DiscountAmount   float64       `json:"discount_amount"`
	AdjustmentAmount float64       `json:"adjustment_amount"`
	Amount           float64       `json:"amount"`
	BalanceAmount    float64       `json:"balance_amount"`
	LedgerDate       time.Time     `json:"ledger_date"`
	DueDate          *time.Time    `json:"due_date,omitempty"`
	Notes            string        `json:"notes,omitempty"`
	LineItems        []LineItemDTO `json:"line_items,omitempty"`
	Addresses        []AddressDTO  `json:"addresses,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
}

func toLineItemDTO(li domainLedger.LineItem) LineItemDTO {
	return LineItemDTO{
		LineItemID:   li.LineItemID,
		EmployeeID:   li.EmployeeID,
		Description:  li.Description,
		Hours:        li.Hours,
		OTHours:      li.OTHours,
		Rate:         li.Rate,
		OTRate:       li.OTRate,
		Amount:       li.Amount,
		HourEntryIDs: li.HourEntryIDs,
		Attachment:   li.Attachment,
	}
}

func toDTO(l *domainLedger.Ledger, items []domainLedger.LineItem, addrs []domainLedger.Address) *LedgerDTO {
	dto := &LedgerDTO{
		LedgerID:         l.LedgerID,
		ReferenceID:      l.ReferenceID,
		Type:             string(l.Type),
		Status:           string(l.Status),
		ApprovalLevel:    l.ApprovalLevel,
		CompanyID:        l.CompanyID,
		SubTotalAmount:   l.SubTotalAmount,
		DiscountAmount:   l.DiscountAmount,
		AdjustmentAmount: l.AdjustmentAmount,
		Amount:           l.Amount,
		BalanceAmount:    l.BalanceAmount,
		LedgerDate:       l.LedgerDate,
		DueDate:          l.DueDate,
		Notes:            l.Notes,
		CreatedAt:        l.CreatedAt,
	}
	for _, li := range items {
		dto.LineItems = append(dto.LineItems, toLineItemDTO(li))
	}
	for _, a := range addrs {
		dto.Addresses = append(dto.Addresses, AddressDTO{
			AddressType: string(a.AddressType),
			Name:        a.Name,
			Line1:       a.Line1,
			Line2:       a.Line2,
			City:        a.City,
			State:       a.State,
			Zip:         a.Zip,
			Country:     a.Country,
		})
	}
	return dto
}
