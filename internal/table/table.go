// Package table implements the list-page pattern shared by every master-data
// screen: debounced text search, equality filters, server-side pagination,
// column visibility, per-row update locks, and CSV export of the loaded page.
// It drives an abstract data source and owns no entity-specific behavior.
package table

import (
	"context"
	"errors"
	"sync"
	"time"

	"go-wms-admin/pkg/pagination"
)

// ErrRowBusy is returned when a row update is requested while a previous
// update for the same row is still in flight.
var ErrRowBusy = errors.New("row update already in flight")

// DefaultDebounce is the quiet period applied to search-text changes.
const DefaultDebounce = 500 * time.Millisecond

// QuerySpec is the state one fetch is issued with.
type QuerySpec struct {
	Search   string
	Filters  map[string]string
	Page     int
	PageSize int
}

// Result is one page window plus the exact total row count. It replaces the
// previous result wholesale; rows are never patched incrementally.
type Result[T any] struct {
	Rows  []T
	Total int64
}

// DataSource answers one list query. Implementations are the remote boundary:
// an HTTP client in the UI, a repository in tests and server-side use.
type DataSource[T any] interface {
	Query(ctx context.Context, spec QuerySpec) (Result[T], error)
}

// Column describes how one column renders a row. Visibility only affects
// rendering and export; every fetch always carries all row fields.
type Column[T any] struct {
	ID      string
	Label   string
	Value   func(T) string
	Visible bool
}

// Controller is the state machine behind a list page. All methods are safe
// for concurrent use; fetches run asynchronously and a sequence token
// discards results from superseded requests.
type Controller[T any] struct {
	mu sync.Mutex

	ctx     context.Context
	src     DataSource[T]
	columns []Column[T]

	search        string
	pendingSearch string
	filters       map[string]string
	page          int
	pageSize      int

	rows  []T
	total int64
	err   error

	seq           uint64
	debounce      *time.Timer
	debounceDelay time.Duration

	busy map[string]bool
}

// Option configures a Controller at construction.
type Option[T any] func(*Controller[T])

// WithDebounce overrides the search debounce window.
func WithDebounce[T any](d time.Duration) Option[T] {
	return func(c *Controller[T]) { c.debounceDelay = d }
}

// WithPageSize sets the initial page size.
func WithPageSize[T any](size int) Option[T] {
	return func(c *Controller[T]) { c.pageSize = size }
}

// New builds a controller for one page's lifetime. The context outlives
// individual fetches; it is not cancelled on navigation — an in-flight
// request simply completes and its result is discarded by the sequence guard.
func New[T any](ctx context.Context, src DataSource[T], columns []Column[T], opts ...Option[T]) *Controller[T] {
	c := &Controller[T]{
		ctx:           ctx,
		src:           src,
		columns:       columns,
		filters:       map[string]string{},
		pageSize:      10,
		debounceDelay: DefaultDebounce,
		busy:          map[string]bool{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetSearch records new search text and schedules a fetch after the quiet
// period. Calls inside the window collapse into one fetch with the final text.
func (c *Controller[T]) SetSearch(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingSearch = text
	if c.debounce != nil {
		c.debounce.Stop()
	}
	c.debounce = time.AfterFunc(c.debounceDelay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.search = c.pendingSearch
		c.refreshLocked()
	})
}

// SetFilter applies an equality filter and fetches immediately. The empty
// value and "all" deactivate the filter.
func (c *Controller[T]) SetFilter(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if value == "" || value == "all" {
		delete(c.filters, key)
	} else {
		c.filters[key] = value
	}
	c.refreshLocked()
}

// NextPage advances one page when a next page exists.
func (c *Controller[T]) NextPage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !pagination.CanNext(c.page, c.total, c.pageSize) {
		return
	}
	c.page++
	c.refreshLocked()
}

// PrevPage goes back one page when not on the first.
func (c *Controller[T]) PrevPage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !pagination.CanPrev(c.page) {
		return
	}
	c.page--
	c.refreshLocked()
}

// SetPageSize changes the window size and always resets to the first page.
func (c *Controller[T]) SetPageSize(size int) {
	if size <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pageSize = size
	c.page = 0
	c.refreshLocked()
}

// Refresh re-runs the current query immediately.
func (c *Controller[T]) Refresh() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshLocked()
}

// refreshLocked issues one fetch guarded by a sequence token. A result is
// applied only if no newer fetch has been issued since; stale results are
// dropped, never merged. Caller must hold c.mu.
func (c *Controller[T]) refreshLocked() {
	c.seq++
	seq := c.seq
	spec := QuerySpec{
		Search:   c.search,
		Filters:  copyFilters(c.filters),
		Page:     c.page,
		PageSize: c.pageSize,
	}
	go func() {
		res, err := c.src.Query(c.ctx, spec)
		c.mu.Lock()
		defer c.mu.Unlock()
		if seq != c.seq {
			return // superseded
		}
		if err != nil {
			c.err = err
			return // prior rows kept; error is dismissable
		}
		c.rows = res.Rows
		c.total = res.Total
		c.err = nil
	}()
}

// ToggleRow runs a single-row update serialized per row: a second toggle for
// the same row is rejected until the first settles. Distinct rows may update
// concurrently. On success the current query is re-run to refresh in place.
func (c *Controller[T]) ToggleRow(id string, update func(ctx context.Context) error) error {
	c.mu.Lock()
	if c.busy[id] {
		c.mu.Unlock()
		return ErrRowBusy
	}
	c.busy[id] = true
	c.mu.Unlock()

	err := update(c.ctx)

	c.mu.Lock()
	delete(c.busy, id)
	if err != nil {
		c.err = err
		c.mu.Unlock()
		return err
	}
	c.refreshLocked()
	c.mu.Unlock()
	return nil
}

// RowBusy reports whether a toggle for the row is in flight.
func (c *Controller[T]) RowBusy(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy[id]
}

// SetColumnVisible toggles a column. Purely a rendering concern; it never
// changes what is fetched.
func (c *Controller[T]) SetColumnVisible(id string, visible bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.columns {
		if c.columns[i].ID == id {
			c.columns[i].Visible = visible
			return
		}
	}
}

// VisibleColumns returns the columns currently shown, in order.
func (c *Controller[T]) VisibleColumns() []Column[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	cols := make([]Column[T], 0, len(c.columns))
	for _, col := range c.columns {
		if col.Visible {
			cols = append(cols, col)
		}
	}
	return cols
}

// Rows returns the currently loaded page.
func (c *Controller[T]) Rows() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rows
}

// Total returns the exact total row count of the last applied fetch.
func (c *Controller[T]) Total() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// Err returns the last fetch or update error, nil after a successful fetch.
func (c *Controller[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// ClearError dismisses the current error message.
func (c *Controller[T]) ClearError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = nil
}

// Page returns the zero-based page index.
func (c *Controller[T]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// PageSize returns the current window size.
func (c *Controller[T]) PageSize() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pageSize
}

// PageCount returns ceil(total/pageSize).
func (c *Controller[T]) PageCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return pagination.PageCount(c.total, c.pageSize)
}

// CanPrev reports whether the previous-page control is enabled.
func (c *Controller[T]) CanPrev() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return pagination.CanPrev(c.page)
}

// CanNext reports whether the next-page control is enabled.
func (c *Controller[T]) CanNext() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return pagination.CanNext(c.page, c.total, c.pageSize)
}

// Close stops the pending debounce timer. In-flight fetches are not
// cancelled; their results are discarded by the sequence guard.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.debounce != nil {
		c.debounce.Stop()
	}
	c.seq++ // anything still in flight is now stale
}

func copyFilters(filters map[string]string) map[string]string {
	out := make(map[string]string, len(filters))
	for k, v := range filters {
		out[k] = v
	}
	return out
}
