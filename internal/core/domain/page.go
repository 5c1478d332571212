package domain

// Page is one page of a paginated backend response. The backend
// guarantees CurrentPage ∈ [1, LastPage] and len(Data) <= PerPage.
type Page[T any] struct {
	Data        []T   `json:"data"`
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	PerPage     int   `json:"per_page"`
	Total       int   `json:"total"`
	From        int   `json:"from,omitempty"`
	To          int   `json:"to,omitempty"`
}

// SortSpec is a column key plus direction.
type SortSpec struct {
	Key  string `json:"key"`
	Desc bool   `json:"desc"`
}

// Order returns the wire value for the sort_order query parameter.
func (s SortSpec) Order() string {
	if s.Desc {
		return "desc"
	}
	return "asc"
}

// Toggle returns the sort spec after a click on key: clicking the
// currently-sorted column flips its direction, clicking a different
// column resets to ascending on that column.
func (s SortSpec) Toggle(key string) SortSpec {
	if s.Key == key {
		return SortSpec{Key: key, Desc: !s.Desc}
	}
	return SortSpec{Key: key}
}

// Query is the canonical list-query parameter bundle shared by every
// paginated endpoint.
type Query struct {
	Page    int
	PerPage int
	Search  string
	Sort    SortSpec
}

// DefaultPerPage matches the backend's default page size.
const DefaultPerPage = 15

// DefaultQuery is the initial query state for every collection:
// first page, newest first.
func DefaultQuery() Query {
	return Query{
		Page:    1,
		PerPage: DefaultPerPage,
		Sort:    SortSpec{Key: "created_at", Desc: true},
	}
}
