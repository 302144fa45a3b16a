package accounting

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineDelta computes the signed balance effect of one journal line on an
// account, expressed on the account's normal side.
// Debit-normal accounts grow with debits; credit-normal accounts with credits.
func LineDelta(line domain.JournalLine, side domain.NormalSide) decimal.Decimal {
	if side == domain.NormalDebit {
		return line.Debit.Sub(line.Credit)
	}
	return line.Credit.Sub(line.Debit)
}

// PostingPlan is the fully-computed outcome of posting one approved entry:
// the ledger rows to append and the new balance per touched account.
// Building the plan performs no persistence; the caller applies it atomically.
type PostingPlan struct {
	Rows        []domain.LedgerRow
	NewBalances map[string]decimal.Decimal // accountID -> balance after all lines
	Deltas      map[string]decimal.Decimal // accountID -> net signed change, applied as an atomic increment
}

// BuildPostingPlan transforms an approved entry's lines into ledger rows and
// updated balances. Lines are processed in the order given (insertion order);
// when several lines touch the same account, each row's balance reflects the
// lines before it. Every balance is rounded to 2 decimal places.
// Returns an error naming the offending line when a referenced account is
// missing from accounts.
func BuildPostingPlan(entry domain.JournalEntry, lines []domain.JournalLine, accounts map[string]domain.Account, now time.Time) (*PostingPlan, error) {
	plan := &PostingPlan{
		Rows:        make([]domain.LedgerRow, 0, len(lines)),
		NewBalances: make(map[string]decimal.Decimal, len(accounts)),
		Deltas:      make(map[string]decimal.Decimal, len(accounts)),
	}

	running := make(map[string]decimal.Decimal, len(accounts))
	for id, acc := range accounts {
		running[id] = acc.Balance
	}

	for i, line := range lines {
		acc, ok := accounts[line.AccountID]
		if !ok {
			return nil, fmt.Errorf("line %d references unknown account %s", i+1, line.AccountID)
		}

		delta := LineDelta(line, acc.NormalSide)
		newBalance := running[line.AccountID].Add(delta).Round(2)
		running[line.AccountID] = newBalance
		plan.NewBalances[line.AccountID] = newBalance
		plan.Deltas[line.AccountID] = plan.Deltas[line.AccountID].Add(delta)

		description := line.Description
		if description == "" {
			description = fmt.Sprintf("Journal #%s", entry.EntryID)
		}

		plan.Rows = append(plan.Rows, domain.LedgerRow{
			RowID:         uuid.NewString(),
			EntryID:       entry.EntryID,
			AccountNumber: acc.AccountNumber,
			AccountName:   acc.Name,
			Date:          entry.EntryDate,
			Description:   description,
			Debit:         line.Debit,
			Credit:        line.Credit,
			Balance:       newBalance,
			CreatedAt:     now,
		})
	}

	return plan, nil
}
