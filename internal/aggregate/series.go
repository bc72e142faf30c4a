package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/trackwise-dev/trackwise/internal/model"
)

// Point is one chart row. Amount always carries the transaction's value;
// at most one of Expense, Income, Conversion equals it, per
// classification. Credit-card payments appear in Amount only.
type Point struct {
	Label      string
	Amount     decimal.Decimal
	Expense    decimal.Decimal
	Income     decimal.Decimal
	Conversion decimal.Decimal
}

// Series converts a filtered transaction list into chart points, in
// order. Blank descriptions become "Untitled" and malformed amounts
// plot as zero.
func Series(txns []model.Transaction) []Point {
	points := make([]Point, 0, len(txns))
	for _, t := range txns {
		amount := t.AmountValue()
		p := Point{
			Label:      t.DisplayName(),
			Amount:     amount,
			Expense:    decimal.Zero,
			Income:     decimal.Zero,
			Conversion: decimal.Zero,
		}
		switch Classify(t) {
		case BucketIncome:
			p.Income = amount
		case BucketConversion:
			p.Conversion = amount
		case BucketExpense:
			p.Expense = amount
		case BucketCreditCardPayment:
			// Amount only.
		}
		points = append(points, p)
	}
	return points
}
