// Package importer reads rows exported from external spreadsheets so
// they can be reconciled against the chart of accounts.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/gonzalo891751/contalivre-sub007/internal/formula"
	"github.com/gonzalo891751/contalivre-sub007/internal/match"
	"github.com/gonzalo891751/contalivre-sub007/internal/model"
)

// Header is the expected first row of an import CSV.
const Header = "code,name,amount"

const (
	numFields = 3
	colCode   = 0
	colName   = 1
	colAmount = 2
)

// Row is one imported record: free-text code and label plus an amount.
// Code and name are matched fuzzily later; the amount tolerates both
// regional formats and "=" formulas.
type Row struct {
	Code   string
	Name   string
	Amount decimal.Decimal
}

// ReadRows reads an import CSV (code,name,amount with a header row).
func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading import CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var rows []Row
	for i, rec := range records[1:] {
		row, err := unmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func unmarshalRow(rec []string) (Row, error) {
	amount := decimal.Zero
	if rec[colAmount] != "" {
		var err error
		amount, err = formula.Evaluate(rec[colAmount])
		if err != nil {
			return Row{}, fmt.Errorf("parsing amount %q: %w", rec[colAmount], err)
		}
	}
	return Row{
		Code:   rec[colCode],
		Name:   rec[colName],
		Amount: amount,
	}, nil
}

// MatchRows reconciles every row against the account list. Each row is
// matched independently; nil matches mean a human has to decide.
func MatchRows(rows []Row, accounts []model.Account) []Matched {
	batch := make([]match.Row, len(rows))
	for i, row := range rows {
		batch[i] = match.Row{Code: row.Code, Name: row.Name}
	}

	matched := match.Batch(batch, accounts)
	results := make([]Matched, len(rows))
	for i, row := range rows {
		results[i] = Matched{Row: row, Match: matched[i].Match}
	}
	return results
}

// Matched pairs an import row with its candidate account, if any.
type Matched struct {
	Row   Row
	Match *match.Result
}
