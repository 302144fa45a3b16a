package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the state of a journal entry in the approval workflow.
type EntryStatus string

const (
	StatusPending  EntryStatus = "pending"
	StatusApproved EntryStatus = "approved" // Terminal; entry has been posted to the ledger
	StatusRejected EntryStatus = "rejected" // Terminal; no ledger effect
)

// JournalEntry represents one balanced double-entry event awaiting or past approval.
// TotalDebit and TotalCredit are equal by construction (enforced at creation).
type JournalEntry struct {
	EntryID     string          `json:"entryID"` // Primary key (UUID)
	EntryDate   time.Time       `json:"entryDate"`
	Status      EntryStatus     `json:"status"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Description string          `json:"description"` // Carries the rejection reason for rejected entries
	AuditFields

	// Lines are loaded separately and populated on demand.
	Lines []JournalLine `json:"lines,omitempty"`
}

// IsTerminal reports whether the entry can no longer transition.
func (e *JournalEntry) IsTerminal() bool {
	return e.Status == StatusApproved || e.Status == StatusRejected
}

// JournalLine is one debit-or-credit component of a journal entry.
// Exactly one of Debit/Credit is strictly positive; the other is zero.
// Lines are created atomically with their parent entry and never mutated.
type JournalLine struct {
	LineID      string          `json:"lineID"`  // Primary key (UUID)
	EntryID     string          `json:"entryID"` // FK -> JournalEntry
	AccountID   string          `json:"accountID"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`

	// AccountName is denormalized into list views for display; not persisted
	// on the line itself.
	AccountName string `json:"accountName,omitempty"`
}
