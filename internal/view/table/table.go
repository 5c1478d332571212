// Package table builds render models for the admin data tables. It is
// strictly presentational: it never fetches, and interaction (sort
// clicks, page clicks, search submits) is interpreted by the page
// controllers, not here.
package table

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/roomiefies/admin-gateway/internal/core/domain"
)

// maxPageButtons is the widest pagination window rendered.
const maxPageButtons = 5

// PerPageChoices are the page sizes offered in the size selector.
var PerPageChoices = []int{10, 15, 25, 50}

// SortState marks a header cell's sort indicator.
type SortState string

const (
	SortNone SortState = "none"
	SortAsc  SortState = "asc"
	SortDesc SortState = "desc"
)

// Column describes one table column. When Render is nil, the cell shows
// the raw field value matching Key (resolved by json tag).
type Column[T any] struct {
	Key      string
	Title    string
	Sortable bool
	Render   func(T) string
}

type HeaderCell struct {
	Key      string    `json:"key"`
	Title    string    `json:"title"`
	Sortable bool      `json:"sortable"`
	Sort     SortState `json:"sort"`
}

type Row struct {
	Cells []string `json:"cells"`
}

type PageButton struct {
	Page   int  `json:"page"`
	Active bool `json:"active"`
}

// Control is one of the first/prev/next/last pagination controls.
type Control struct {
	Page     int  `json:"page"`
	Disabled bool `json:"disabled"`
}

type Pagination struct {
	Buttons        []PageButton `json:"buttons"`
	First          Control      `json:"first"`
	Prev           Control      `json:"prev"`
	Next           Control      `json:"next"`
	Last           Control      `json:"last"`
	From           int          `json:"from"`
	To             int          `json:"to"`
	Total          int          `json:"total"`
	PerPage        int          `json:"per_page"`
	PerPageChoices []int        `json:"per_page_choices"`
}

// Options carries the controller state the table reflects back.
type Options struct {
	Loading bool
	Search  string
	Sort    domain.SortSpec
}

// View is the complete render model for one table.
type View struct {
	Header []HeaderCell `json:"header"`
	Rows   []Row        `json:"rows"`
	Empty  bool         `json:"empty"`
	// Loading overlays a busy indicator; previously rendered rows are
	// kept underneath to avoid layout flash.
	Loading    bool        `json:"loading"`
	Search     string      `json:"search"`
	Error      string      `json:"error,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Build renders page through the column descriptors. A nil page (before
// the first fetch) yields an empty view; pagination controls are
// omitted entirely when there is a single page.
func Build[T any](page *domain.Page[T], cols []Column[T], opts Options) View {
	v := View{
		Header:  buildHeader(cols, opts.Sort),
		Loading: opts.Loading,
		Search:  opts.Search,
	}

	if page == nil {
		v.Empty = true
		return v
	}

	v.Rows = make([]Row, 0, len(page.Data))
	for _, item := range page.Data {
		row := Row{Cells: make([]string, 0, len(cols))}
		for _, col := range cols {
			if col.Render != nil {
				row.Cells = append(row.Cells, col.Render(item))
			} else {
				row.Cells = append(row.Cells, rawValue(item, col.Key))
			}
		}
		v.Rows = append(v.Rows, row)
	}
	v.Empty = len(v.Rows) == 0
	v.Pagination = buildPagination(page)
	return v
}

func buildHeader[T any](cols []Column[T], sort domain.SortSpec) []HeaderCell {
	header := make([]HeaderCell, 0, len(cols))
	for _, col := range cols {
		cell := HeaderCell{Key: col.Key, Title: col.Title, Sortable: col.Sortable, Sort: SortNone}
		if col.Sortable && sort.Key == col.Key {
			if sort.Desc {
				cell.Sort = SortDesc
			} else {
				cell.Sort = SortAsc
			}
		}
		header = append(header, cell)
	}
	return header
}

func buildPagination[T any](page *domain.Page[T]) *Pagination {
	if page.LastPage <= 1 {
		return nil
	}

	current, last := page.CurrentPage, page.LastPage
	from := page.From
	if from <= 0 {
		from = 1
	}
	to := page.To
	if to <= 0 {
		to = len(page.Data)
	}

	p := &Pagination{
		First:          Control{Page: 1, Disabled: current == 1},
		Prev:           Control{Page: current - 1, Disabled: current == 1},
		Next:           Control{Page: current + 1, Disabled: current == last},
		Last:           Control{Page: last, Disabled: current == last},
		From:           from,
		To:             to,
		Total:          page.Total,
		PerPage:        page.PerPage,
		PerPageChoices: PerPageChoices,
	}
	for _, n := range pageWindow(current, last) {
		p.Buttons = append(p.Buttons, PageButton{Page: n, Active: n == current})
	}
	return p
}

// pageWindow returns at most maxPageButtons page numbers centered on
// current, clamped to [1, last].
func pageWindow(current, last int) []int {
	start := current - maxPageButtons/2
	if start < 1 {
		start = 1
	}
	end := start + maxPageButtons - 1
	if end > last {
		end = last
	}
	if end-start+1 < maxPageButtons {
		start = end - maxPageButtons + 1
		if start < 1 {
			start = 1
		}
	}

	window := make([]int, 0, end-start+1)
	for n := start; n <= end; n++ {
		window = append(window, n)
	}
	return window
}

// rawValue resolves the struct field whose json tag matches key and
// formats it as text. Unknown keys render empty.
func rawValue(item any, key string) string {
	val := reflect.ValueOf(item)
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return ""
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return fmt.Sprintf("%v", item)
	}

	t := val.Type()
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		name, _, _ := strings.Cut(tag, ",")
		if name != key {
			continue
		}
		fv := val.Field(i).Interface()
		if ts, ok := fv.(time.Time); ok {
			return ts.Format("2006-01-02")
		}
		return fmt.Sprintf("%v", fv)
	}
	return ""
}
