package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	ledgerUC "github.com/asifshaikgit/workforce-sub002/internal/usecase/ledger"
)

type LedgerHandler struct{ uc *ledgerUC.Usecase }

func NewLedgerHandler(uc *ledgerUC.Usecase) *LedgerHandler { return &LedgerHandler{uc: uc} }

type lineItemReq struct {
	PlacementID  string   `json:"placement_id"   validate:"required,hex32"`
	EmployeeID   string   `json:"employee_id"    validate:"required,hex32"`
	RatePeriodID uint64   `json:"rate_period_id"`
	Description  string   `json:"description"`
	Hours        float64  `json:"hours"          validate:"gte=0,dec2"`
	OTHours      float64  `json:"ot_hours"       validate:"gte=0,dec2"`
	Rate         float64  `json:"rate"           validate:"dec2"`
	OTRate       float64  `json:"ot_rate"        validate:"dec2"`
	HourEntryIDs []uint64 `json:"hour_entry_ids"`
	Attachment   string   `json:"attachment"`
}

type addressReq struct {
	AddressType string `json:"address_type" validate:"required"`
	Name        string `json:"name"`
	Line1       string `json:"line1"`
	Line2       string `json:"line2"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	Country     string `json:"country"`
}

type createLedgerReq struct {
	Type             string        `json:"type"              validate:"required,ledgertype"`
	CompanyID        string        `json:"company_id"        validate:"required,hex32"`
	LedgerDate       string        `json:"ledger_date"       validate:"required,datetime=2006-01-02"`
	DueDate          string        `json:"due_date"          validate:"omitempty,datetime=2006-01-02"`
	Notes            string        `json:"notes"`
	DiscountAmount   float64       `json:"discount_amount"   validate:"gte=0,dec2"`
	AdjustmentAmount float64       `json:"adjustment_amount" validate:"dec2"`
	LineItems        []lineItemReq `json:"line_items"        validate:"required,min=1,dive"`
	Addresses        []addressReq  `json:"addresses"         validate:"dive"`
	Submit           bool          `json:"submit"`
}

func (h *LedgerHandler) CreateLedger(c echo.Context) error {
	var req createLedgerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	ledgerDate, _ := parseDate(req.LedgerDate)
	var dueDate *time.Time
	if req.DueDate != "" {
		d, _ := parseDate(req.DueDate)
		dueDate = &d
	}
	in := ledgerUC.CreateInput{
		Type:             req.Type,
		CompanyID:        req.CompanyID,
		LedgerDate:       ledgerDate,
		DueDate:          dueDate,
		Notes:            req.Notes,
		DiscountAmount:   req.DiscountAmount,
		AdjustmentAmount: req.AdjustmentAmount,
		Submit:           req.Submit,
		ActorID:          actorID(c),
	}
	for _, li := range req.LineItems {
		in.LineItems = append(in.LineItems, ledgerUC.LineItemInput(li))
	}
	for _, a := range req.Addresses {
		in.Addresses = append(in.Addresses, ledgerUC.AddressInput(a))
	}
	dto, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LedgerHandler) GetLedger(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("ledger_id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type updateLineItemReq struct {
	LineItemID  string   `json:"line_item_id" validate:"required,hex32"`
	Description *string  `json:"description,omitempty"`
	Hours       *float64 `json:"hours,omitempty"`
	OTHours     *float64 `json:"ot_hours,omitempty"`
	Rate        *float64 `json:"rate,omitempty"`
	OTRate      *float64 `json:"ot_rate,omitempty"`
	Attachment  *string  `json:"attachment,omitempty"`
}

type updateLedgerReq struct {
	Notes            *string             `json:"notes,omitempty"`
	DiscountAmount   *float64            `json:"discount_amount,omitempty"`
	AdjustmentAmount *float64            `json:"adjustment_amount,omitempty"`
	DueDate          string              `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	AddLineItems     []lineItemReq       `json:"add_line_items,omitempty"    validate:"dive"`
	UpdateLineItems  []updateLineItemReq `json:"update_line_items,omitempty" validate:"dive"`
	Addresses        []addressReq        `json:"addresses,omitempty"         validate:"dive"`
}

func (h *LedgerHandler) UpdateLedger(c echo.Context) error {
	var req updateLedgerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	in := ledgerUC.UpdateInput{
		LedgerID:         c.Param("ledger_id"),
		ActorID:          actorID(c),
		Notes:            req.Notes,
		DiscountAmount:   req.DiscountAmount,
		AdjustmentAmount: req.AdjustmentAmount,
	}
	if req.DueDate != "" {
		d, _ := parseDate(req.DueDate)
		in.DueDate = &d
	}
	for _, li := range req.AddLineItems {
		in.AddLineItems = append(in.AddLineItems, ledgerUC.LineItemInput(li))
	}
	for _, li := range req.UpdateLineItems {
		in.UpdateLineItems = append(in.UpdateLineItems, ledgerUC.LineItemUpdate(li))
	}
	for _, a := range req.Addresses {
		in.Addresses = append(in.Addresses, ledgerUC.AddressInput(a))
	}
	dto, err := h.uc.Update(c.Request().Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LedgerHandler) DeleteLineItem(c echo.Context) error {
	dto, err := h.uc.DeleteLineItem(c.Request().Context(),
		c.Param("ledger_id"), c.Param("line_item_id"), actorID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LedgerHandler) GetActivity(c echo.Context) error {
	logs, err := h.uc.ActivityFor(c.Request().Context(), c.Param("ledger_id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, logs)
}
