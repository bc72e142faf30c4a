package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/trackwise-dev/trackwise/internal/model"
)

// ChaseParser parses Chase bank checking CSV exports. Debits become
// expenses, credits become income; amounts are uploaded as their
// absolute value since classification, not sign, drives the totals.
type ChaseParser struct{}

const (
	chaseDateFormat = "01/02/2006"
	chaseNumFields  = 7
	chaseColDate    = 1
	chaseColDesc    = 2
	chaseColAmount  = 3
)

// Format returns the parser name.
func (p *ChaseParser) Format() string { return "chase" }

// Parse reads a Chase CSV and returns Transactions without IDs.
func (p *ChaseParser) Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = chaseNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading chase CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := parseChaseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func parseChaseRow(rec []string) (model.Transaction, error) {
	date, err := time.Parse(chaseDateFormat, rec[chaseColDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", rec[chaseColDate], err)
	}

	amount, err := decimal.NewFromString(rec[chaseColAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", rec[chaseColAmount], err)
	}

	category := "Expense"
	if amount.IsPositive() {
		category = "Income"
	}

	return model.Transaction{
		Date:        date.Format("2006-01-02"),
		Description: rec[chaseColDesc],
		Category:    category,
		Amount:      amount.Abs().String(),
	}, nil
}
