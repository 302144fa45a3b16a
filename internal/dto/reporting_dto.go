package dto

import (
	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TrialBalanceResponse wraps the trial balance report.
type TrialBalanceResponse struct {
	Report domain.TrialBalance `json:"report"`
}

// IncomeStatementResponse wraps the income statement report.
type IncomeStatementResponse struct {
	Report domain.IncomeStatement `json:"report"`
}

// BalanceSheetResponse wraps the balance sheet report.
type BalanceSheetResponse struct {
	Report domain.BalanceSheet `json:"report"`
}

// RetainedEarningsResponse summarizes the retained earnings statement.
type RetainedEarningsResponse struct {
	BeginningBalance decimal.Decimal `json:"beginningBalance"`
	NetIncome        decimal.Decimal `json:"netIncome"`
	EndingBalance    decimal.Decimal `json:"endingBalance"`
}
