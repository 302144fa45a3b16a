package accounting_test

import (
	"testing"

	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	"github.com/openbooks/bookkeeping_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(accountID string, debit, credit float64) domain.JournalLine {
	return domain.JournalLine{
		AccountID: accountID,
		Debit:     decimal.NewFromFloat(debit),
		Credit:    decimal.NewFromFloat(credit),
	}
}

func TestValidateLines_BalancedEntry(t *testing.T) {
	result := accounting.ValidateLines([]domain.JournalLine{
		line("acc-cash", 150, 0),
		line("acc-revenue", 0, 150),
	})

	assert.True(t, result.OK)
	assert.Empty(t, result.Errors)
}

func TestValidateLines_EmptyEntry(t *testing.T) {
	result := accounting.ValidateLines(nil)

	require.False(t, result.OK)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "at least one line")
}

func TestValidateLines_CollectsEveryViolation(t *testing.T) {
	result := accounting.ValidateLines([]domain.JournalLine{
		line("acc-cash", 100, 25),  // both sides set
		line("acc-revenue", 0, 0),  // neither side set
		line("", 10, 0),            // no account
		line("acc-cash", 0, 9.999), // duplicate account
	})

	require.False(t, result.OK)
	assert.Len(t, result.Errors, 5)
	joined := ""
	for _, e := range result.Errors {
		joined += e + "\n"
	}
	assert.Contains(t, joined, "cannot carry both")
	assert.Contains(t, joined, "must have a debit or a credit")
	assert.Contains(t, joined, "an account must be selected")
	assert.Contains(t, joined, "appears in more than one line")
	assert.Contains(t, joined, "do not equal")
}

func TestValidateLines_NegativeAmounts(t *testing.T) {
	result := accounting.ValidateLines([]domain.JournalLine{
		line("acc-cash", -5, 0),
		line("acc-revenue", 0, 5),
	})

	require.False(t, result.OK)
	assert.Contains(t, result.Errors[0], "cannot be negative")
}

func TestValidateLines_ImbalanceReportedAtTwoDecimals(t *testing.T) {
	result := accounting.ValidateLines([]domain.JournalLine{
		line("acc-cash", 100.004, 0),
		line("acc-revenue", 0, 100.001),
	})

	// Both raw sums round to 100.00; sub-cent noise must not report an
	// imbalance.
	assert.True(t, result.OK, "unexpected violations: %v", result.Errors)
}

func TestValidateLines_CentLevelImbalance(t *testing.T) {
	result := accounting.ValidateLines([]domain.JournalLine{
		line("acc-cash", 100.02, 0),
		line("acc-revenue", 0, 100.01),
	})

	require.False(t, result.OK)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "total debits (100.02) do not equal total credits (100.01)")
}
