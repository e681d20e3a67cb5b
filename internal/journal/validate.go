// Package journal validates proposed journal entries against the
// double-entry invariants before they are accepted into the books.
package journal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gonzalo891751/contalivre-sub007/internal/model"
)

// Tolerance is the maximum permitted absolute difference between the
// debit and credit totals of an entry, in currency units.
var Tolerance = decimal.New(1, -2) // 0.01

// AccountChecker tests account ids against the chart of accounts.
type AccountChecker interface {
	Exists(id string) bool
	Postable(id string) bool
}

// Result is the outcome of validating one entry. Violations are
// collected into Errors rather than returned one at a time so a caller
// can show every problem at once.
type Result struct {
	OK     bool
	Errors []string
	Diff   decimal.Decimal // round2(sum(debits) - sum(credits))
}

// Validate checks a proposed entry against the per-line and balance
// invariants. It is pure: neither the entry nor the ledger is touched,
// and rejecting an unbalanced entry is the caller's responsibility.
func Validate(entry model.JournalEntry, accounts AccountChecker) Result {
	var errs []string

	if entry.Date.IsZero() {
		errs = append(errs, "entry date is required")
	}
	if len(entry.Lines) < 2 {
		errs = append(errs, "entry requires at least two lines")
	}

	for i, line := range entry.Lines {
		n := i + 1
		switch {
		case line.AccountID == "":
			errs = append(errs, fmt.Sprintf("line %d: account is required", n))
		case !accounts.Exists(line.AccountID):
			errs = append(errs, fmt.Sprintf("line %d: unknown account %s", n, line.AccountID))
		case !accounts.Postable(line.AccountID):
			errs = append(errs, fmt.Sprintf("line %d: account %s is a header and cannot receive entries", n, line.AccountID))
		}

		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			errs = append(errs, fmt.Sprintf("line %d: amounts must not be negative", n))
		}
		hasDebit := line.Debit.IsPositive()
		hasCredit := line.Credit.IsPositive()
		if hasDebit && hasCredit {
			errs = append(errs, fmt.Sprintf("line %d: debit and credit on the same line", n))
		}
		if line.Debit.IsZero() && line.Credit.IsZero() {
			errs = append(errs, fmt.Sprintf("line %d: either debit or credit is required", n))
		}
	}

	diff := entry.TotalDebit().Sub(entry.TotalCredit()).Round(2)
	if diff.Abs().GreaterThan(Tolerance) {
		side := "credits"
		if diff.IsNegative() {
			side = "debits"
		}
		errs = append(errs, fmt.Sprintf("entry does not balance: %s short by %s", side, diff.Abs().StringFixed(2)))
	}

	return Result{OK: len(errs) == 0, Errors: errs, Diff: diff}
}
