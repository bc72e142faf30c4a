// Package aggregate derives every dashboard view from a raw transaction
// list: filtered subsets, pages, chart series, and financial totals. All
// functions are pure and never fail; malformed records degrade to zero
// instead of erroring.
package aggregate

import (
	"strings"

	"github.com/trackwise-dev/trackwise/internal/model"
)

// Bucket is the mutually exclusive totals classification of a transaction.
type Bucket int

const (
	BucketExpense Bucket = iota
	BucketIncome
	BucketCreditCardPayment
	BucketConversion
)

// String returns the bucket's display name.
func (b Bucket) String() string {
	switch b {
	case BucketIncome:
		return "Income"
	case BucketCreditCardPayment:
		return "Credit Card Payment"
	case BucketConversion:
		return "Conversion"
	default:
		return "Expense"
	}
}

const creditCardPayment = "credit card payment"

// Classify assigns a transaction to exactly one bucket. The priority
// order is a contract: income first, then credit-card payment, then
// conversion, else expense. Unrecognized categories count as expenses.
func Classify(t model.Transaction) Bucket {
	category := strings.ToLower(t.Category)
	method := strings.ToLower(t.PaymentMethod)

	switch {
	case category == "income" || category == "salary" || category == "credit":
		return BucketIncome
	case category == creditCardPayment || method == creditCardPayment:
		return BucketCreditCardPayment
	case category == "conversion":
		return BucketConversion
	default:
		return BucketExpense
	}
}
