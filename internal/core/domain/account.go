package domain

import (
	"github.com/shopspring/decimal"
)

// AccountCategory defines the fundamental accounting category of an account.
type AccountCategory string

const (
	Asset     AccountCategory = "asset"
	Liability AccountCategory = "liability"
	Equity    AccountCategory = "equity"
	Revenue   AccountCategory = "revenue"
	Expense   AccountCategory = "expense"
)

// NormalSide is the side on which an account's balance is conventionally positive.
type NormalSide string

const (
	NormalDebit  NormalSide = "debit"
	NormalCredit NormalSide = "credit"
)

// NormalSideFor returns the conventional normal side for a category.
func NormalSideFor(category AccountCategory) NormalSide {
	switch category {
	case Asset, Expense:
		return NormalDebit
	default:
		return NormalCredit
	}
}

// Account represents one chart-of-accounts record.
// Balance is always expressed as an amount on the account's normal side;
// a negative value indicates an abnormal (contra) balance.
type Account struct {
	AccountID     string          `json:"accountID"`     // Primary key (UUID)
	AccountNumber string          `json:"accountNumber"` // Natural key, digits only, unique
	Name          string          `json:"name"`          // Unique display name
	Category      AccountCategory `json:"category"`
	NormalSide    NormalSide      `json:"normalSide"`
	Description   string          `json:"description"` // Nullable user comment
	IsActive      bool            `json:"isActive"`    // Soft delete flag; accounts are never removed
	Balance       decimal.Decimal `json:"balance"`     // Mutated only by the ledger poster
	AuditFields
}
