package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonzalo891751/contalivre-sub007/internal/match"
	"github.com/gonzalo891751/contalivre-sub007/internal/model"
)

const sampleCSV = `code,name,amount
1.01,Caja,"1.234,56"
,Clientes,=50*100
,Cuenta Inexistente Rarisima,
`

func TestReadRows(t *testing.T) {
	rows, err := ReadRows(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "1.01", rows[0].Code)
	assert.Equal(t, "Caja", rows[0].Name)
	assert.Equal(t, "1234.56", rows[0].Amount.String())

	assert.Equal(t, "5000", rows[1].Amount.String(), "formula amounts are evaluated")
	assert.True(t, rows[2].Amount.IsZero(), "blank amount defaults to zero")
}

func TestReadRows_Empty(t *testing.T) {
	rows, err := ReadRows(strings.NewReader("code,name,amount\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = ReadRows(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadRows_BadAmount(t *testing.T) {
	_, err := ReadRows(strings.NewReader("code,name,amount\n,Caja,=10/0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestReadRows_WrongFieldCount(t *testing.T) {
	_, err := ReadRows(strings.NewReader("code,name,amount\n1.01,Caja\n"))
	assert.Error(t, err)
}

func TestMatchRows(t *testing.T) {
	accounts := []model.Account{
		{ID: "caja", Code: "1.01", Name: "Caja"},
		{ID: "deudores", Code: "1.03", Name: "Deudores por Ventas"},
	}
	rows, err := ReadRows(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	results := MatchRows(rows, accounts)
	require.Len(t, results, 3)

	require.NotNil(t, results[0].Match)
	assert.Equal(t, "caja", results[0].Match.AccountID)
	assert.Equal(t, match.MethodCode, results[0].Match.Method)

	require.NotNil(t, results[1].Match)
	assert.Equal(t, "deudores", results[1].Match.AccountID)
	assert.Equal(t, match.MethodSynonym, results[1].Match.Method)

	assert.Nil(t, results[2].Match)
}
