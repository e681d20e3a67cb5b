package accounts

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/gonzalo891751/contalivre-sub007/internal/code"
	"github.com/gonzalo891751/contalivre-sub007/internal/model"
)

// Structural errors. They signal a data-integrity hazard and are always
// surfaced to the caller.
var (
	ErrDuplicateCode   = errors.New("duplicate account code")
	ErrInvalidCode     = errors.New("invalid account code")
	ErrAccountNotFound = errors.New("account not found")
	ErrHasChildren     = errors.New("account has children")
	ErrInUse           = errors.New("account is referenced by journal entries")
)

// Registry maintains the chart-of-accounts hierarchy in memory and
// allocates codes. It is built from a snapshot and never touches
// storage; the caller persists whatever the registry hands back.
type Registry struct {
	accounts []model.Account
	byID     map[string]model.Account
	byCode   map[string]string // code -> id
}

// NewRegistry creates a Registry from an account snapshot.
func NewRegistry(accounts []model.Account) *Registry {
	r := &Registry{
		byID:   make(map[string]model.Account, len(accounts)),
		byCode: make(map[string]string, len(accounts)),
	}
	for _, a := range accounts {
		r.accounts = append(r.accounts, a)
		r.byID[a.ID] = a
		r.byCode[a.Code] = a.ID
	}
	return r
}

// All returns all accounts in insertion order.
func (r *Registry) All() []model.Account {
	return r.accounts
}

// Get returns an account by ID.
func (r *Registry) Get(id string) (model.Account, bool) {
	a, ok := r.byID[id]
	return a, ok
}

// GetByCode returns an account by its code.
func (r *Registry) GetByCode(c string) (model.Account, bool) {
	id, ok := r.byCode[c]
	if !ok {
		return model.Account{}, false
	}
	return r.byID[id], true
}

// Exists reports whether an account ID exists.
func (r *Registry) Exists(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// Postable reports whether an account exists and accepts entry lines.
func (r *Registry) Postable(id string) bool {
	a, ok := r.byID[id]
	return ok && a.Postable()
}

// Children returns the accounts whose ParentID is the given id.
func (r *Registry) Children(parentID string) []model.Account {
	var result []model.Account
	for _, a := range r.accounts {
		if a.ParentID == parentID && parentID != "" {
			result = append(result, a)
		}
	}
	return result
}

// ByKind returns all accounts of the given kind.
func (r *Registry) ByKind(kind model.Kind) []model.Account {
	var result []model.Account
	for _, a := range r.accounts {
		if a.Kind == kind {
			result = append(result, a)
		}
	}
	return result
}

// NextCode allocates the next unused code under a parent. With no
// parent it returns max(root codes) + 1. Under a parent it fills the
// lowest unused positive suffix among direct children (gap-filling,
// not max+1), zero-padded to two digits; suffixes past 99 widen
// naturally. A childless parent yields parentCode + ".01".
func (r *Registry) NextCode(parentID string) (string, error) {
	if parentID == "" {
		max := 0
		for _, a := range r.accounts {
			if code.Level(a.Code) != 0 {
				continue
			}
			if n, err := code.Suffix(a.Code); err == nil && n > max {
				max = n
			}
		}
		return strconv.Itoa(max + 1), nil
	}

	parent, ok := r.byID[parentID]
	if !ok {
		return "", fmt.Errorf("parent %s: %w", parentID, ErrAccountNotFound)
	}

	used := make(map[int]bool)
	for _, a := range r.accounts {
		if !code.IsDirectChild(a.Code, parent.Code) {
			continue
		}
		if n, err := code.Suffix(a.Code); err == nil {
			used[n] = true
		}
	}

	for n := 1; ; n++ {
		if !used[n] {
			return code.Child(parent.Code, n), nil
		}
	}
}

// CreateParams holds parameters for creating an account.
type CreateParams struct {
	Code        string // allocated via NextCode when empty
	Name        string
	Kind        model.Kind
	ParentID    string
	NormalSide  model.Side // defaulted from Kind when empty
	IsHeader    bool
	Description string
}

// Create adds a new account to the registry. The level is computed from
// the code and the normal side is defaulted from the kind unless
// explicitly overridden; IsContra is kept consistent with the side
// actually assigned.
func (r *Registry) Create(params CreateParams) (model.Account, error) {
	if params.ParentID != "" && !r.Exists(params.ParentID) {
		return model.Account{}, fmt.Errorf("parent %s: %w", params.ParentID, ErrAccountNotFound)
	}

	c := params.Code
	if c == "" {
		var err error
		c, err = r.NextCode(params.ParentID)
		if err != nil {
			return model.Account{}, err
		}
	}
	if !code.Valid(c) {
		return model.Account{}, fmt.Errorf("%w: %q", ErrInvalidCode, c)
	}
	if _, taken := r.byCode[c]; taken {
		return model.Account{}, fmt.Errorf("%w: %q", ErrDuplicateCode, c)
	}

	side := params.NormalSide
	if side == "" {
		side = model.DefaultNormalSide(params.Kind)
	}

	acct := model.Account{
		ID:          uuid.NewString(),
		Code:        c,
		Name:        params.Name,
		Kind:        params.Kind,
		ParentID:    params.ParentID,
		Level:       code.Level(c),
		NormalSide:  side,
		IsContra:    side != model.DefaultNormalSide(params.Kind),
		IsHeader:    params.IsHeader,
		Description: params.Description,
	}

	r.accounts = append(r.accounts, acct)
	r.byID[acct.ID] = acct
	r.byCode[acct.Code] = acct.ID
	return acct, nil
}

// Update replaces an existing account. A code change re-verifies
// uniqueness and recomputes the level.
func (r *Registry) Update(updated model.Account) (model.Account, error) {
	existing, ok := r.byID[updated.ID]
	if !ok {
		return model.Account{}, fmt.Errorf("%s: %w", updated.ID, ErrAccountNotFound)
	}

	if updated.Code != existing.Code {
		if !code.Valid(updated.Code) {
			return model.Account{}, fmt.Errorf("%w: %q", ErrInvalidCode, updated.Code)
		}
		if id, taken := r.byCode[updated.Code]; taken && id != updated.ID {
			return model.Account{}, fmt.Errorf("%w: %q", ErrDuplicateCode, updated.Code)
		}
		delete(r.byCode, existing.Code)
	}
	updated.Level = code.Level(updated.Code)
	updated.IsContra = updated.NormalSide != model.DefaultNormalSide(updated.Kind)

	for i, a := range r.accounts {
		if a.ID == updated.ID {
			r.accounts[i] = updated
			break
		}
	}
	r.byID[updated.ID] = updated
	r.byCode[updated.Code] = updated.ID
	return updated, nil
}

// Delete removes an account. It fails if any account still points at it
// as a parent, or if any of the supplied entries reference it. The
// registry does not own entries, so the caller must supply a consistent
// entry set.
func (r *Registry) Delete(id string, entries []model.JournalEntry) error {
	acct, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("%s: %w", id, ErrAccountNotFound)
	}

	for _, a := range r.accounts {
		if a.ParentID == id {
			return fmt.Errorf("%s (%s): %w", acct.Code, acct.Name, ErrHasChildren)
		}
	}
	for _, e := range entries {
		if e.References(id) {
			return fmt.Errorf("%s (%s): %w", acct.Code, acct.Name, ErrInUse)
		}
	}

	for i, a := range r.accounts {
		if a.ID == id {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			break
		}
	}
	delete(r.byID, id)
	delete(r.byCode, acct.Code)
	return nil
}
