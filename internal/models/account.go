package models

import "github.com/shopspring/decimal"

// AccountCategory mirrors domain.AccountCategory for DB storage.
type AccountCategory string

const (
	Asset     AccountCategory = "asset"
	Liability AccountCategory = "liability"
	Equity    AccountCategory = "equity"
	Revenue   AccountCategory = "revenue"
	Expense   AccountCategory = "expense"
)

// NormalSide mirrors domain.NormalSide.
type NormalSide string

const (
	NormalDebit  NormalSide = "debit"
	NormalCredit NormalSide = "credit"
)

// Account is the DB representation of a chart-of-accounts record.
type Account struct {
	AccountID     string          `db:"account_id"`
	AccountNumber string          `db:"account_number"`
	Name          string          `db:"account_name"`
	Category      AccountCategory `db:"category"`
	NormalSide    NormalSide      `db:"normal_side"`
	Description   string          `db:"description"`
	IsActive      bool            `db:"is_active"`
	Balance       decimal.Decimal `db:"balance"`
	AuditFields
}
