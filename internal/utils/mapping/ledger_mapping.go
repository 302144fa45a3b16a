package mapping

import (
	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	"github.com/openbooks/bookkeeping_app/internal/models"
)

// ToModelLedgerRow converts a domain LedgerRow to a model LedgerRow
func ToModelLedgerRow(d domain.LedgerRow) models.LedgerRow {
	return models.LedgerRow{
		RowID:         d.RowID,
		EntryID:       d.EntryID,
		AccountNumber: d.AccountNumber,
		AccountName:   d.AccountName,
		Date:          d.Date,
		Description:   d.Description,
		Debit:         d.Debit,
		Credit:        d.Credit,
		Balance:       d.Balance,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainLedgerRow converts a model LedgerRow to a domain LedgerRow
func ToDomainLedgerRow(m models.LedgerRow) domain.LedgerRow {
	return domain.LedgerRow{
		RowID:         m.RowID,
		EntryID:       m.EntryID,
		AccountNumber: m.AccountNumber,
		AccountName:   m.AccountName,
		Date:          m.Date,
		Description:   m.Description,
		Debit:         m.Debit,
		Credit:        m.Credit,
		Balance:       m.Balance,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainLedgerRowSlice converts model LedgerRows to domain LedgerRows
func ToDomainLedgerRowSlice(ms []models.LedgerRow) []domain.LedgerRow {
	ds := make([]domain.LedgerRow, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerRow(m)
	}
	return ds
}
