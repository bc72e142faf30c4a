package aggregate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackwise-dev/trackwise/internal/model"
)

func makeTxns(n int) []model.Transaction {
	txns := make([]model.Transaction, n)
	for i := range txns {
		txns[i] = model.Transaction{Description: fmt.Sprintf("txn-%d", i), Amount: "1"}
	}
	return txns
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		n, pageSize, want int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{25, 5, 5},
		{5, 0, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.n, tt.pageSize), "n=%d size=%d", tt.n, tt.pageSize)
	}
}

func TestPaginate(t *testing.T) {
	txns := makeTxns(25)

	first := Paginate(txns, 1, 10)
	require.Len(t, first, 10)
	assert.Equal(t, "txn-0", first[0].Description)

	last := Paginate(txns, 3, 10)
	require.Len(t, last, 5)
	assert.Equal(t, "txn-20", last[0].Description)

	assert.Empty(t, Paginate(txns, 4, 10), "out of range yields empty, not error")
	assert.Empty(t, Paginate(txns, 0, 10))
	assert.Empty(t, Paginate(txns, 1, 0))
}

func TestPaginate_CoversAllWithoutDuplicates(t *testing.T) {
	txns := makeTxns(23)
	pageSize := 7

	seen := make(map[string]bool)
	for page := 1; page <= TotalPages(len(txns), pageSize); page++ {
		items := Paginate(txns, page, pageSize)
		assert.LessOrEqual(t, len(items), pageSize)
		for _, txn := range items {
			assert.False(t, seen[txn.Description], "duplicate %s", txn.Description)
			seen[txn.Description] = true
		}
	}
	assert.Len(t, seen, len(txns), "all items appear across pages")
}

func TestView_PageResetsOnFilterChange(t *testing.T) {
	v := NewView(10)
	v.SetPage(3)
	require.Equal(t, 3, v.Page())

	v.SetQuery("rent")
	assert.Equal(t, 1, v.Page())

	v.SetPage(2)
	v.SetMonth("2024-03")
	assert.Equal(t, 1, v.Page())

	v.SetPage(2)
	v.SetPageSize(25)
	assert.Equal(t, 1, v.Page())
}

func TestView_ApplyClampsPage(t *testing.T) {
	v := NewView(10)
	v.SetPage(5)

	res := v.Apply(makeTxns(12)) // only 2 pages
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 2, res.TotalPages)
	assert.Len(t, res.Items, 10)
	assert.Equal(t, 1, v.Page(), "correction sticks on the view")
}

func TestView_Apply(t *testing.T) {
	txns := []model.Transaction{
		{Description: "Monthly Rent", Category: "Expense", Date: "2024-03-01", Amount: "1200"},
		{Description: "Groceries", Category: "Expense", Date: "2024-03-15", Amount: "80"},
		{Description: "Paycheck", Category: "Income", Date: "2024-04-01", Amount: "3000"},
	}

	v := NewView(2)
	v.SetMonth("2024-03")
	res := v.Apply(txns)

	require.Len(t, res.Filtered, 2)
	assert.Len(t, res.Items, 2)
	assert.Equal(t, 1, res.TotalPages)
}
