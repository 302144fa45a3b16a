package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus mirrors domain.EntryStatus.
type EntryStatus string

const (
	StatusPending  EntryStatus = "pending"
	StatusApproved EntryStatus = "approved"
	StatusRejected EntryStatus = "rejected"
)

// JournalEntry is the DB representation of a journal entry header.
type JournalEntry struct {
	EntryID     string          `db:"entry_id"`
	EntryDate   time.Time       `db:"entry_date"`
	Status      EntryStatus     `db:"status"`
	TotalDebit  decimal.Decimal `db:"total_debit"`
	TotalCredit decimal.Decimal `db:"total_credit"`
	Description string          `db:"description"`
	AuditFields
}

// JournalLine is the DB representation of one entry line.
type JournalLine struct {
	LineID      string          `db:"line_id"`
	EntryID     string          `db:"entry_id"`
	AccountID   string          `db:"account_id"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
	Description string          `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
}
