package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRow is the DB representation of one append-only ledger row.
type LedgerRow struct {
	RowID         string          `db:"row_id"`
	EntryID       string          `db:"entry_id"`
	AccountNumber string          `db:"account_number"`
	AccountName   string          `db:"account_name"`
	Date          time.Time       `db:"date"`
	Description   string          `db:"description"`
	Debit         decimal.Decimal `db:"debit"`
	Credit        decimal.Decimal `db:"credit"`
	Balance       decimal.Decimal `db:"balance"`
	CreatedAt     time.Time       `db:"created_at"`
}
