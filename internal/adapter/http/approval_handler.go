package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	approvalUC "github.com/asifshaikgit/workforce-sub002/internal/usecase/approval"
)

type ApprovalHandler struct{ uc *approvalUC.Usecase }

func NewApprovalHandler(uc *approvalUC.Usecase) *ApprovalHandler { return &ApprovalHandler{uc: uc} }

type decisionReq struct {
	Note string `json:"note"`
}

type paymentReq struct {
	Amount float64 `json:"amount" validate:"required,gt=0,dec2"`
	Note   string  `json:"note"`
}

func (h *ApprovalHandler) requireActor(c echo.Context) (string, error) {
	actor := actorID(c)
	if actor == "" {
		return "", c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing X-Actor-Id header"})
	}
	return actor, nil
}

func (h *ApprovalHandler) Submit(c echo.Context) error {
	actor, err := h.requireActor(c)
	if actor == "" {
		return err
	}
	dto, err := h.uc.Submit(c.Request().Context(), approvalUC.SubmitInput{
		LedgerID: c.Param("ledger_id"),
		ActorID:  actor,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApprovalHandler) Approve(c echo.Context) error {
	actor, err := h.requireActor(c)
	if actor == "" {
		return err
	}
	var req decisionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Approve(c.Request().Context(), approvalUC.DecisionInput{
		LedgerID: c.Param("ledger_id"),
		ActorID:  actor,
		Note:     req.Note,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApprovalHandler) Reject(c echo.Context) error {
	actor, err := h.requireActor(c)
	if actor == "" {
		return err
	}
	var req decisionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Reject(c.Request().Context(), approvalUC.DecisionInput{
		LedgerID: c.Param("ledger_id"),
		ActorID:  actor,
		Note:     req.Note,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApprovalHandler) RecordPayment(c echo.Context) error {
	actor, err := h.requireActor(c)
	if actor == "" {
		return err
	}
	var req paymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.RecordPayment(c.Request().Context(), approvalUC.PaymentInput{
		LedgerID: c.Param("ledger_id"),
		ActorID:  actor,
		Amount:   req.Amount,
		Note:     req.Note,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApprovalHandler) Tracks(c echo.Context) error {
	out, err := h.uc.Tracks(c.Request().Context(), c.Param("ledger_id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
