package approval

import (
	"time"

	domainLedger "github.com/asifshaikgit/workforce-sub002/internal/domain/ledger"
)

type SubmitInput struct {
	LedgerID string
	ActorID  string
}

type DecisionInput struct {
	LedgerID string
	ActorID  string
	Note     string
}

type PaymentInput struct {
	LedgerID string
	ActorID  string
	Amount   float64
	Note     string
}

type StatusDTO struct {
	LedgerID      string  `json:"ledger_id"`
	ReferenceID   string  `json:"reference_id"`
	Status        string  `json:"status"`
	ApprovalLevel int     `json:"approval_level"`
	Amount        float64 `json:"amount"`
	BalanceAmount float64 `json:"balance_amount"`
}

type TrackDTO struct {
	Level        int       `json:"level"`
	ApproverID   string    `json:"approver_id"`
	Action       string    `json:"action"`
	StatusBefore string    `json:"status_before"`
	StatusAfter  string    `json:"status_after"`
	Note         string    `json:"note,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func statusDTO(l *domainLedger.Ledger) *StatusDTO {
	return &StatusDTO{
		LedgerID:      l.LedgerID,
		ReferenceID:   l.ReferenceID,
		Status:        string(l.Status),
		ApprovalLevel: l.ApprovalLevel,
		Amount:        l.Amount,
		BalanceAmount: l.BalanceAmount,
	}
}
