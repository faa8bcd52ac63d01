package eventing

import "time"

// Domain events committed to the outbox inside the financial transaction and
// fanned out after commit. Payloads stay flat and versioned via the outbox
// row's schema_version.

type LedgerCreated struct {
	LedgerID    string    `json:"ledger_id"`
	ReferenceID string    `json:"reference_id"`
	Type        string    `json:"type"`
	CompanyID   string    `json:"company_id"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}

type LedgerStatusChanged struct {
	LedgerID     string    `json:"ledger_id"`
	ReferenceID  string    `json:"reference_id"`
	StatusBefore string    `json:"status_before"`
	StatusAfter  string    `json:"status_after"`
	Level        int       `json:"level"`
	ActorID      string    `json:"actor_id"`
	ChangedAt    time.Time `json:"changed_at"`
}

// ApprovalRequested asks the notification collaborator to reach the approvers
// eligible at the ledger's current level.
type ApprovalRequested struct {
	LedgerID    string   `json:"ledger_id"`
	ReferenceID string   `json:"reference_id"`
	Level       int      `json:"level"`
	ApproverIDs []string `json:"approver_ids"`
	Amount      float64  `json:"amount"`
}

// LedgerApproved triggers downstream document rendering and delivery.
type LedgerApproved struct {
	LedgerID    string  `json:"ledger_id"`
	ReferenceID string  `json:"reference_id"`
	Type        string  `json:"type"`
	CompanyID   string  `json:"company_id"`
	Amount      float64 `json:"amount"`
}
