package aggregate

import "github.com/trackwise-dev/trackwise/internal/model"

// View holds the transient filter and pagination state of a transaction
// listing. Changing any filter or the page size resets to page one, and
// a page number left beyond the shrunken total clamps back to one.
type View struct {
	query    string
	month    string
	page     int
	pageSize int
}

// NewView creates a View showing the first page at the given size.
func NewView(pageSize int) *View {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &View{page: 1, pageSize: pageSize}
}

// SetQuery updates the search query and resets to page one.
func (v *View) SetQuery(query string) {
	v.query = query
	v.page = 1
}

// SetMonth updates the month filter ("YYYY-MM", empty clears) and resets
// to page one.
func (v *View) SetMonth(month string) {
	v.month = month
	v.page = 1
}

// SetPageSize updates the page size and resets to page one.
func (v *View) SetPageSize(pageSize int) {
	if pageSize > 0 {
		v.pageSize = pageSize
	}
	v.page = 1
}

// SetPage moves to a page. Values below one are ignored; values beyond
// the total are corrected at Apply time.
func (v *View) SetPage(page int) {
	if page >= 1 {
		v.page = page
	}
}

// Page returns the current page number.
func (v *View) Page() int { return v.page }

// Result is a filtered, paginated view over a transaction list.
type Result struct {
	Filtered   []model.Transaction
	Items      []model.Transaction
	Page       int
	TotalPages int
}

// Apply filters and paginates txns under the view's current state. If the
// page number exceeds the total page count it clamps to one, mirroring
// the reactive correction the dashboard performs, and the corrected page
// is stored back on the view.
func (v *View) Apply(txns []model.Transaction) Result {
	filtered := Filter(txns, v.query, v.month)
	total := TotalPages(len(filtered), v.pageSize)
	if v.page > total {
		v.page = 1
	}
	return Result{
		Filtered:   filtered,
		Items:      Paginate(filtered, v.page, v.pageSize),
		Page:       v.page,
		TotalPages: total,
	}
}
