package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonzalo891751/contalivre-sub007/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "books.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestAccountRoundTrip(t *testing.T) {
	s := openTestStore(t)

	acct := model.Account{
		ID:         "a1",
		Code:       "1.01",
		Name:       "Caja",
		Kind:       model.KindAsset,
		Level:      1,
		NormalSide: model.SideDebit,
	}
	require.NoError(t, s.PutAccount(acct))

	got, err := s.GetAccount("a1")
	require.NoError(t, err)
	assert.Equal(t, acct, got)

	_, err = s.GetAccount("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.DeleteAccount("a1"))
	_, err = s.GetAccount("a1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAccountByCode(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.PutAccount(model.Account{ID: "a1", Code: "1.01", Name: "Caja"}))
	require.NoError(t, s.PutAccount(model.Account{ID: "a2", Code: "1.02", Name: "Banco"}))

	got, err := s.AccountByCode("1.02")
	require.NoError(t, err)
	assert.Equal(t, "a2", got.ID)

	_, err = s.AccountByCode("9.99")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestChildrenOf(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.PutAccount(model.Account{ID: "p", Code: "1", Name: "Activo"}))
	require.NoError(t, s.PutAccount(model.Account{ID: "c1", Code: "1.01", ParentID: "p"}))
	require.NoError(t, s.PutAccount(model.Account{ID: "c2", Code: "1.02", ParentID: "p"}))
	require.NoError(t, s.PutAccount(model.Account{ID: "other", Code: "2"}))

	kids, err := s.ChildrenOf("p")
	require.NoError(t, err)
	assert.Len(t, kids, 2)

	kids, err = s.ChildrenOf("")
	require.NoError(t, err)
	assert.Empty(t, kids, "blank parent id matches nothing")
}

func TestEntryRoundTrip(t *testing.T) {
	s := openTestStore(t)

	entry := model.JournalEntry{
		ID:   "e1",
		Date: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		Memo: "venta de contado",
		Lines: []model.EntryLine{
			{AccountID: "a1", Debit: decimal.RequireFromString("150.00"), Credit: decimal.Zero},
			{AccountID: "a2", Debit: decimal.Zero, Credit: decimal.RequireFromString("150.00")},
		},
	}
	require.NoError(t, s.PutEntry(entry))

	got, err := s.GetEntry("e1")
	require.NoError(t, err)
	assert.Equal(t, entry.ID, got.ID)
	assert.True(t, entry.Date.Equal(got.Date))
	require.Len(t, got.Lines, 2)
	assert.True(t, got.Lines[0].Debit.Equal(entry.Lines[0].Debit))

	all, err := s.Entries()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, s.DeleteEntry("e1"))
	_, err = s.GetEntry("e1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAccountsKeyOrder(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.PutAccount(model.Account{ID: "b", Code: "2"}))
	require.NoError(t, s.PutAccount(model.Account{ID: "a", Code: "1"}))

	all, err := s.Accounts()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID, "bolt iterates keys in byte order")
}
