// Package page defines the pagination contract between applications and
// persistence providers: the [PageRequest] and [Cursor] value types
// applications build, and the [Page] and [CursoredPage] interfaces providers
// return.
//
// Like the rest of the module, nothing here paginates anything. Offset and
// cursor arithmetic against the data store is the provider's job.
package page

import (
	"fmt"
	"slices"
)

// Mode tells how a page is located within the full result set.
type Mode uint8

const (
	// ModeOffset locates a page by page number and size.
	ModeOffset Mode = iota
	// ModeCursorNext requests the results after the cursor.
	ModeCursorNext
	// ModeCursorPrevious requests the results before the cursor.
	ModeCursorPrevious
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeCursorNext:
		return "CURSOR_NEXT"
	case ModeCursorPrevious:
		return "CURSOR_PREVIOUS"
	}
	return "OFFSET"
}

// Cursor is a position within a result set, given as the key values of the
// entity at that position, ordered to match the query's sort criteria.
type Cursor struct {
	values []any
}

// NewCursor returns a cursor over the given key values. It panics when no
// values are supplied.
func NewCursor(values ...any) Cursor {
	if len(values) == 0 {
		panic("page: cursor key values are required")
	}
	return Cursor{values: slices.Clone(values)}
}

// Elements returns a copy of the key values.
func (c Cursor) Elements() []any { return slices.Clone(c.values) }

// Size returns the number of key values.
func (c Cursor) Size() int { return len(c.values) }

// Get returns the key value at position i.
func (c Cursor) Get(i int) any { return c.values[i] }

const defaultSize = 10

// PageRequest asks for a slice of query results. The zero value is not
// valid; requests start from [OfPage] or [OfSize].
type PageRequest struct {
	page         int64
	size         int
	requestTotal bool
	mode         Mode
	cursor       *Cursor
}

// OfPage requests the numbered page, 1-based, with the default size of 10
// results. It panics when the page number is less than one.
func OfPage(page int64) PageRequest {
	if page < 1 {
		panic(fmt.Sprintf("page: page number must be at least 1, got %d", page))
	}
	return PageRequest{page: page, size: defaultSize, requestTotal: true}
}

// OfSize requests the first page with the given size. It panics when the
// size is less than one.
func OfSize(size int) PageRequest {
	return OfPage(1).WithSize(size)
}

// Page returns the 1-based page number.
func (p PageRequest) Page() int64 { return p.page }

// Size returns the requested number of results per page.
func (p PageRequest) Size() int { return p.size }

// RequestsTotal reports whether the provider should also count the full
// result set.
func (p PageRequest) RequestsTotal() bool { return p.requestTotal }

// Mode returns how the page is located.
func (p PageRequest) Mode() Mode { return p.mode }

// Cursor returns the cursor of a cursor-based request.
func (p PageRequest) Cursor() (Cursor, bool) {
	if p.cursor == nil {
		return Cursor{}, false
	}
	return *p.cursor, true
}

// WithSize returns a copy with the given page size. It panics when the size
// is less than one.
func (p PageRequest) WithSize(size int) PageRequest {
	if size < 1 {
		panic(fmt.Sprintf("page: page size must be at least 1, got %d", size))
	}
	p.size = size
	return p
}

// WithTotal returns a copy that asks the provider to count the full result
// set.
func (p PageRequest) WithTotal() PageRequest {
	p.requestTotal = true
	return p
}

// WithoutTotal returns a copy that skips the total count, which is usually
// cheaper.
func (p PageRequest) WithoutTotal() PageRequest {
	p.requestTotal = false
	return p
}

// AfterCursor returns a copy requesting the results after the cursor.
func (p PageRequest) AfterCursor(c Cursor) PageRequest {
	p.mode = ModeCursorNext
	p.cursor = &c
	return p
}

// BeforeCursor returns a copy requesting the results before the cursor.
func (p PageRequest) BeforeCursor(c Cursor) PageRequest {
	p.mode = ModeCursorPrevious
	p.cursor = &c
	return p
}

// Next returns the offset-mode request for the following page. Any cursor is
// dropped.
func (p PageRequest) Next() PageRequest {
	p.page++
	p.mode = ModeOffset
	p.cursor = nil
	return p
}

// Previous returns the offset-mode request for the preceding page and true,
// or the receiver and false when already on the first page.
func (p PageRequest) Previous() (PageRequest, bool) {
	if p.page <= 1 {
		return p, false
	}
	p.page--
	p.mode = ModeOffset
	p.cursor = nil
	return p, true
}

// String renders the request for debugging.
func (p PageRequest) String() string {
	return fmt.Sprintf("page %d, size %d, mode %s", p.page, p.size, p.mode)
}

// Page is a slice of query results, returned by providers. Totals are only
// available when the request asked for them.
type Page[T any] interface {
	// Content returns the entities of this page, in query order.
	Content() []T
	// HasContent reports whether the page holds at least one entity.
	HasContent() bool
	// NumberOfElements returns the number of entities on this page.
	NumberOfElements() int
	// HasNext reports whether a following page exists.
	HasNext() bool
	// HasPrevious reports whether a preceding page exists.
	HasPrevious() bool
	// PageRequest returns the request this page answers.
	PageRequest() PageRequest
	// NextPageRequest returns the request for the following page, or
	// false when HasNext is false.
	NextPageRequest() (PageRequest, bool)
	// PreviousPageRequest returns the request for the preceding page, or
	// false when HasPrevious is false.
	PreviousPageRequest() (PageRequest, bool)
	// TotalElements returns the total result count, or false when totals
	// were not requested.
	TotalElements() (int64, bool)
	// TotalPages returns the total page count, or false when totals were
	// not requested.
	TotalPages() (int64, bool)
}

// CursoredPage is a [Page] whose positions can be resumed from cursors,
// allowing stable pagination while the underlying data changes.
type CursoredPage[T any] interface {
	Page[T]
	// CursorAt returns the cursor of the entity at the given index within
	// this page, or false when the index is out of range.
	CursorAt(index int) (Cursor, bool)
}
