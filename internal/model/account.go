package model

// Kind classifies accounts in the chart of accounts.
type Kind string

const (
	KindAsset     Kind = "asset"
	KindLiability Kind = "liability"
	KindEquity    Kind = "equity"
	KindIncome    Kind = "income"
	KindExpense   Kind = "expense"
)

// Side is one of the two sides of a ledger entry.
type Side string

const (
	SideDebit  Side = "debit"
	SideCredit Side = "credit"
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideDebit {
		return SideCredit
	}
	return SideDebit
}

// DefaultNormalSide returns the side on which an account of the given
// kind naturally increases. Total over all kinds: anything that is not
// an asset or expense is credit-normal.
func DefaultNormalSide(kind Kind) Side {
	switch kind {
	case KindAsset, KindExpense:
		return SideDebit
	default:
		return SideCredit
	}
}

// Account is one node in the chart of accounts.
type Account struct {
	ID          string `json:"id"`
	Code        string `json:"code"` // dotted hierarchical code, e.g. "1.2.01.04"
	Name        string `json:"name"`
	Kind        Kind   `json:"kind"`
	ParentID    string `json:"parent_id,omitempty"` // "" = top-level
	Level       int    `json:"level"`               // dot-segments in Code minus one
	NormalSide  Side   `json:"normal_side"`
	IsContra    bool   `json:"is_contra,omitempty"` // normal side opposite the kind's default
	IsHeader    bool   `json:"is_header,omitempty"` // grouping only, not postable
	Description string `json:"description,omitempty"`
}

// Postable reports whether journal entry lines may reference this account.
func (a Account) Postable() bool {
	return !a.IsHeader
}
