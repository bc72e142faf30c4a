package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Transaction is a single expense-tracker record as the API serves it.
// JSON field names follow the wire contract, which predates this client:
// "expense" is the description and "expenseType" the category. Amount
// travels as a string and is coerced on demand.
type Transaction struct {
	ID            *int   `json:"id,omitempty"`
	Description   string `json:"expense"`
	Category      string `json:"expenseType"`
	Amount        string `json:"expenseAmount"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
	Date          string `json:"date,omitempty"` // "YYYY-MM-DD"
}

// AmountValue returns the transaction amount as a decimal. Malformed or
// empty amounts coerce to zero rather than failing.
func (t Transaction) AmountValue() decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(t.Amount))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// DisplayName returns the description for display, substituting
// "Untitled" when it is blank. The stored value is never mutated.
func (t Transaction) DisplayName() string {
	if strings.TrimSpace(t.Description) == "" {
		return "Untitled"
	}
	return t.Description
}
