package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRow is one immutable, append-only row of the posted ledger.
// Account number and name are snapshotted at post time on purpose: the audit
// trail must reflect the account's identity when the posting happened, even if
// the account is later renamed.
type LedgerRow struct {
	RowID         string          `json:"rowID"`   // Primary key (UUID)
	EntryID       string          `json:"entryID"` // FK -> JournalEntry
	AccountNumber string          `json:"accountNumber"`
	AccountName   string          `json:"accountName"`
	Date          time.Time       `json:"date"` // The entry's date, not the post timestamp
	Description   string          `json:"description"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Balance       decimal.Decimal `json:"balance"` // Account running balance after this row
	CreatedAt     time.Time       `json:"createdAt"`
}
