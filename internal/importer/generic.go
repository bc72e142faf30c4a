package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/trackwise-dev/trackwise/internal/model"
)

// GenericParser parses the importer's own CSV layout:
// date,description,category,amount,payment_method. The header row is
// required; payment_method may be empty.
type GenericParser struct{}

const (
	genericDateFormat = "2006-01-02"
	genericNumFields  = 5
	genericColDate    = 0
	genericColDesc    = 1
	genericColCat     = 2
	genericColAmount  = 3
	genericColMethod  = 4
)

// Format returns the parser name.
func (p *GenericParser) Format() string { return "generic" }

// Parse reads a generic CSV and returns Transactions without IDs.
func (p *GenericParser) Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = genericNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := parseGenericRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func parseGenericRow(rec []string) (model.Transaction, error) {
	if _, err := time.Parse(genericDateFormat, rec[genericColDate]); err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", rec[genericColDate], err)
	}

	return model.Transaction{
		Date:          rec[genericColDate],
		Description:   rec[genericColDesc],
		Category:      rec[genericColCat],
		Amount:        rec[genericColAmount],
		PaymentMethod: rec[genericColMethod],
	}, nil
}
