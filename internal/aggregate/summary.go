package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/trackwise-dev/trackwise/internal/model"
)

// Totals holds the summed buckets of a transaction list. Total is gross
// movement: every amount regardless of bucket. The four bucket fields
// partition Total exactly.
type Totals struct {
	Total              decimal.Decimal
	Income             decimal.Decimal
	Expense            decimal.Decimal
	CreditCardPayments decimal.Decimal
	Conversions        decimal.Decimal
}

// Summarize accumulates totals over a filtered transaction list.
func Summarize(txns []model.Transaction) Totals {
	t := Totals{
		Total:              decimal.Zero,
		Income:             decimal.Zero,
		Expense:            decimal.Zero,
		CreditCardPayments: decimal.Zero,
		Conversions:        decimal.Zero,
	}
	for _, txn := range txns {
		amount := txn.AmountValue()
		t.Total = t.Total.Add(amount)
		switch Classify(txn) {
		case BucketIncome:
			t.Income = t.Income.Add(amount)
		case BucketCreditCardPayment:
			t.CreditCardPayments = t.CreditCardPayments.Add(amount)
		case BucketConversion:
			t.Conversions = t.Conversions.Add(amount)
		default:
			t.Expense = t.Expense.Add(amount)
		}
	}
	return t
}

// Net is the headline solvency figure: income minus all outgoing money.
// Conversions count as outgoing here even though they are tracked apart
// from expenses.
func (t Totals) Net() decimal.Decimal {
	return t.Income.Sub(t.Expense.Add(t.Conversions))
}

// CreditCardBalance tracks outstanding card liability: expenses minus
// credit-card payments. Negative means payments exceed tracked card
// expenses.
func (t Totals) CreditCardBalance() decimal.Decimal {
	return t.Expense.Sub(t.CreditCardPayments)
}
