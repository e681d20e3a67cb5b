package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryLine is one row of a journal entry (one side of a double-entry).
type EntryLine struct {
	AccountID   string          `json:"account_id"`
	Debit       decimal.Decimal `json:"debit"`  // zero if credit side
	Credit      decimal.Decimal `json:"credit"` // zero if debit side
	Description string          `json:"description,omitempty"`
}

// JournalEntry is an ordered group of lines that must balance.
// Balance is enforced by the validator, not by the type itself.
type JournalEntry struct {
	ID    string      `json:"id"`
	Date  time.Time   `json:"date"`
	Memo  string      `json:"memo,omitempty"`
	Lines []EntryLine `json:"lines"`
}

// TotalDebit sums the debit side of all lines.
func (e JournalEntry) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Debit)
	}
	return total
}

// TotalCredit sums the credit side of all lines.
func (e JournalEntry) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Credit)
	}
	return total
}

// References reports whether any line of the entry posts to the account.
func (e JournalEntry) References(accountID string) bool {
	for _, l := range e.Lines {
		if l.AccountID == accountID {
			return true
		}
	}
	return false
}
