package journal

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonzalo891751/contalivre-sub007/internal/model"
)

// mockAccounts implements AccountChecker for testing.
type mockAccounts struct {
	postable map[string]bool
	headers  map[string]bool
}

func (m *mockAccounts) Exists(id string) bool {
	return m.postable[id] || m.headers[id]
}

func (m *mockAccounts) Postable(id string) bool {
	return m.postable[id]
}

var defaultAccounts = &mockAccounts{
	postable: map[string]bool{"caja": true, "ventas": true, "sueldos": true},
	headers:  map[string]bool{"activo": true},
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func balancedEntry() model.JournalEntry {
	return model.JournalEntry{
		ID:   "e1",
		Date: date(2025, 3, 15),
		Memo: "venta de contado",
		Lines: []model.EntryLine{
			{AccountID: "caja", Debit: dec("100.00")},
			{AccountID: "ventas", Credit: dec("100.00")},
		},
	}
}

func TestValidate_Balanced(t *testing.T) {
	res := Validate(balancedEntry(), defaultAccounts)
	assert.True(t, res.OK)
	assert.Empty(t, res.Errors)
	assert.True(t, res.Diff.IsZero(), "diff = %s", res.Diff)
}

func TestValidate_WithinTolerance(t *testing.T) {
	e := balancedEntry()
	e.Lines[1].Credit = dec("100.01")
	res := Validate(e, defaultAccounts)
	assert.True(t, res.OK, "a 0.01 difference is tolerated: %v", res.Errors)
	assert.Equal(t, "-0.01", res.Diff.String())
}

func TestValidate_Unbalanced(t *testing.T) {
	e := balancedEntry()
	e.Lines[1].Credit = dec("90.00")
	res := Validate(e, defaultAccounts)
	require.False(t, res.OK)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "credits short by 10.00")
	assert.Equal(t, "10", res.Diff.String())
}

func TestValidate_DebitsShort(t *testing.T) {
	e := balancedEntry()
	e.Lines[0].Debit = dec("80.00")
	res := Validate(e, defaultAccounts)
	require.False(t, res.OK)
	assert.Contains(t, strings.Join(res.Errors, "; "), "debits short by 20.00")
}

func TestValidate_BothSidesOnOneLine(t *testing.T) {
	e := balancedEntry()
	e.Lines[0].Credit = dec("100.00")
	e.Lines[1].Debit = dec("100.00")
	res := Validate(e, defaultAccounts)
	require.False(t, res.OK)
	joined := strings.Join(res.Errors, "; ")
	assert.Contains(t, joined, "line 1: debit and credit on the same line")
	assert.Contains(t, joined, "line 2: debit and credit on the same line")
}

func TestValidate_EmptyLine(t *testing.T) {
	e := balancedEntry()
	e.Lines = append(e.Lines, model.EntryLine{AccountID: "sueldos"})
	res := Validate(e, defaultAccounts)
	require.False(t, res.OK)
	assert.Contains(t, strings.Join(res.Errors, "; "), "line 3: either debit or credit is required")
}

func TestValidate_NegativeAmount(t *testing.T) {
	e := balancedEntry()
	e.Lines[0].Debit = dec("-100.00")
	res := Validate(e, defaultAccounts)
	require.False(t, res.OK)
	assert.Contains(t, strings.Join(res.Errors, "; "), "line 1: amounts must not be negative")
}

func TestValidate_MissingAccount(t *testing.T) {
	e := balancedEntry()
	e.Lines[0].AccountID = ""
	res := Validate(e, defaultAccounts)
	require.False(t, res.OK)
	assert.Contains(t, strings.Join(res.Errors, "; "), "line 1: account is required")
}

func TestValidate_UnknownAccount(t *testing.T) {
	e := balancedEntry()
	e.Lines[0].AccountID = "nope"
	res := Validate(e, defaultAccounts)
	require.False(t, res.OK)
	assert.Contains(t, strings.Join(res.Errors, "; "), "unknown account nope")
}

func TestValidate_HeaderAccount(t *testing.T) {
	e := balancedEntry()
	e.Lines[0].AccountID = "activo"
	res := Validate(e, defaultAccounts)
	require.False(t, res.OK)
	assert.Contains(t, strings.Join(res.Errors, "; "), "header")
}

func TestValidate_MissingDate(t *testing.T) {
	e := balancedEntry()
	e.Date = time.Time{}
	res := Validate(e, defaultAccounts)
	require.False(t, res.OK)
	assert.Contains(t, strings.Join(res.Errors, "; "), "entry date is required")
}

func TestValidate_TooFewLines(t *testing.T) {
	e := balancedEntry()
	e.Lines = e.Lines[:1]
	res := Validate(e, defaultAccounts)
	require.False(t, res.OK)
	joined := strings.Join(res.Errors, "; ")
	assert.Contains(t, joined, "at least two lines")
	assert.Contains(t, joined, "does not balance", "single line is also unbalanced")
}

func TestValidate_CollectsEverything(t *testing.T) {
	e := model.JournalEntry{
		Lines: []model.EntryLine{
			{AccountID: "nope", Debit: dec("10.00"), Credit: dec("5.00")},
		},
	}
	res := Validate(e, defaultAccounts)
	require.False(t, res.OK)
	assert.GreaterOrEqual(t, len(res.Errors), 4, "date, line count, unknown account, both sides, balance")
}

func TestValidate_MultiLineSplit(t *testing.T) {
	e := model.JournalEntry{
		Date: date(2025, 3, 31),
		Lines: []model.EntryLine{
			{AccountID: "sueldos", Debit: dec("60.00")},
			{AccountID: "sueldos", Debit: dec("40.00")},
			{AccountID: "caja", Credit: dec("100.00")},
		},
	}
	res := Validate(e, defaultAccounts)
	assert.True(t, res.OK, "errors: %v", res.Errors)
}
