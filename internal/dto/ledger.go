package dto

import (
	"time"

	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerRowResponse mirrors domain.LedgerRow for API output.
type LedgerRowResponse struct {
	RowID         string          `json:"rowID"`
	EntryID       string          `json:"entryID"`
	AccountNumber string          `json:"accountNumber"`
	AccountName   string          `json:"accountName"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Balance       decimal.Decimal `json:"balance"`
}

// ToLedgerRowResponses converts domain ledger rows to DTOs.
func ToLedgerRowResponses(rows []domain.LedgerRow) []LedgerRowResponse {
	res := make([]LedgerRowResponse, len(rows))
	for i, row := range rows {
		res[i] = LedgerRowResponse{
			RowID:         row.RowID,
			EntryID:       row.EntryID,
			AccountNumber: row.AccountNumber,
			AccountName:   row.AccountName,
			Date:          row.Date,
			Description:   row.Description,
			Debit:         row.Debit,
			Credit:        row.Credit,
			Balance:       row.Balance,
		}
	}
	return res
}
