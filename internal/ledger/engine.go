// Package ledger replays accepted journal entries into per-account
// aggregated views. It is a full replay on every call, never an
// incremental update, so the views can never drift from the entries.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gonzalo891751/contalivre-sub007/internal/model"
)

// Movement is one line's contribution to an account, in entry order.
type Movement struct {
	EntryID     string
	Date        time.Time
	Memo        string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Description string
}

// AccountView is the aggregated, read-only projection of one account.
type AccountView struct {
	AccountID   string
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Balance     decimal.Decimal // signed per the account's normal side
	Movements   []Movement
}

// Position classifies an account's balance for reporting.
type Position string

const (
	PositionDeudor   Position = "deudor"   // debit balance
	PositionAcreedor Position = "acreedor" // credit balance
	PositionSaldada  Position = "saldada"  // settled
)

// Compute folds every line of every entry into one accumulator per
// account and returns the views keyed by account id. Lines referencing
// unknown accounts are ignored; header accounts accumulate only when
// lines are posted directly to them, which upstream validation
// normally prevents but the engine does not assume.
func Compute(accounts []model.Account, entries []model.JournalEntry) map[string]*AccountView {
	views := make(map[string]*AccountView, len(accounts))
	sides := make(map[string]model.Side, len(accounts))
	for _, a := range accounts {
		views[a.ID] = &AccountView{
			AccountID:   a.ID,
			TotalDebit:  decimal.Zero,
			TotalCredit: decimal.Zero,
			Balance:     decimal.Zero,
		}
		sides[a.ID] = a.NormalSide
	}

	for _, e := range entries {
		for _, line := range e.Lines {
			v, ok := views[line.AccountID]
			if !ok {
				continue
			}
			v.TotalDebit = v.TotalDebit.Add(line.Debit)
			v.TotalCredit = v.TotalCredit.Add(line.Credit)
			v.Movements = append(v.Movements, Movement{
				EntryID:     e.ID,
				Date:        e.Date,
				Memo:        e.Memo,
				Debit:       line.Debit,
				Credit:      line.Credit,
				Description: line.Description,
			})
		}
	}

	for id, v := range views {
		if sides[id] == model.SideDebit {
			v.Balance = v.TotalDebit.Sub(v.TotalCredit)
		} else {
			v.Balance = v.TotalCredit.Sub(v.TotalDebit)
		}
	}
	return views
}

// Classify derives the reporting position from the raw totals, so the
// result is independent of the normal-side sign convention. It is
// computed on demand, never stored on the view.
func Classify(v *AccountView) Position {
	switch v.TotalDebit.Cmp(v.TotalCredit) {
	case 1:
		return PositionDeudor
	case -1:
		return PositionAcreedor
	default:
		return PositionSaldada
	}
}

// TrialBalance sums the debit and credit totals across all views.
// For a consistent books snapshot both sums are equal.
func TrialBalance(views map[string]*AccountView) (totalDebit, totalCredit decimal.Decimal) {
	totalDebit, totalCredit = decimal.Zero, decimal.Zero
	for _, v := range views {
		totalDebit = totalDebit.Add(v.TotalDebit)
		totalCredit = totalCredit.Add(v.TotalCredit)
	}
	return totalDebit, totalCredit
}
