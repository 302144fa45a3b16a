package accounting

import (
	"fmt"

	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ValidationResult carries every rule violation found in a proposed entry,
// not just the first one.
type ValidationResult struct {
	OK     bool
	Errors []string
}

func (r *ValidationResult) add(format string, args ...any) {
	r.OK = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// ValidateLines checks a proposed set of journal lines for structural and
// accounting validity. It is pure: no persistence access, no side effects.
// Rules, in order:
//  1. at least one line
//  2. every line references an account
//  3. exactly one of debit/credit strictly positive per line
//  4. no account appears in more than one line
//  5. total debits equal total credits, both rounded to 2 decimal places
func ValidateLines(lines []domain.JournalLine) ValidationResult {
	result := ValidationResult{OK: true}

	if len(lines) == 0 {
		result.add("journal entry must have at least one line")
		return result
	}

	seenAccounts := make(map[string]int, len(lines))
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero

	for i, line := range lines {
		lineNo := i + 1

		if line.AccountID == "" {
			result.add("line %d: an account must be selected", lineNo)
		} else {
			seenAccounts[line.AccountID]++
		}

		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			result.add("line %d: amounts cannot be negative", lineNo)
			continue
		}

		debitSet := line.Debit.IsPositive()
		creditSet := line.Credit.IsPositive()
		switch {
		case debitSet && creditSet:
			result.add("line %d: a line cannot carry both a debit and a credit", lineNo)
		case !debitSet && !creditSet:
			result.add("line %d: each line must have a debit or a credit value", lineNo)
		}

		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}

	for accountID, count := range seenAccounts {
		if count > 1 {
			result.add("account %s appears in more than one line", accountID)
		}
	}

	// Compare at currency precision so accumulated sub-cent noise never
	// produces a spurious imbalance report.
	roundedDebit := totalDebit.Round(2)
	roundedCredit := totalCredit.Round(2)
	if !roundedDebit.Equal(roundedCredit) {
		result.add("total debits (%s) do not equal total credits (%s)",
			roundedDebit.StringFixed(2), roundedCredit.StringFixed(2))
	}

	return result
}
