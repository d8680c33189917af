package table_test

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"go-wms-admin/internal/table"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestTable(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Table Controller Suite")
}

// mockSource records every query it answers. A respond override lets a spec
// block or fail on demand.
type mockSource struct {
	mu      sync.Mutex
	calls   []table.QuerySpec
	rows    []string
	total   int64
	respond func(spec table.QuerySpec) (table.Result[string], error)
}

func (m *mockSource) Query(ctx context.Context, spec table.QuerySpec) (table.Result[string], error) {
	m.mu.Lock()
	m.calls = append(m.calls, spec)
	respond := m.respond
	rows, total := m.rows, m.total
	m.mu.Unlock()

	if respond != nil {
		return respond(spec)
	}
	return table.Result[string]{Rows: rows, Total: total}, nil
}

func (m *mockSource) setRespond(fn func(spec table.QuerySpec) (table.Result[string], error)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.respond = fn
}

func (m *mockSource) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *mockSource) lastCall() table.QuerySpec {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[len(m.calls)-1]
}

func stringColumns() []table.Column[string] {
	return []table.Column[string]{
		{ID: "value", Label: "Value", Visible: true, Value: func(s string) string { return s }},
		{ID: "length", Label: "Length", Visible: false, Value: func(s string) string { return strconv.Itoa(len(s)) }},
	}
}

var _ = Describe("Controller", func() {
	var (
		src  *mockSource
		ctrl *table.Controller[string]
	)

	BeforeEach(func() {
		src = &mockSource{rows: []string{"alpha", "beta"}, total: 2}
		ctrl = table.New[string](context.Background(), src, stringColumns(),
			table.WithDebounce[string](20*time.Millisecond))
	})

	AfterEach(func() {
		ctrl.Close()
	})

	Describe("Refresh", func() {
		It("loads rows and the exact total", func() {
			ctrl.Refresh()
			Eventually(ctrl.Rows).Should(Equal([]string{"alpha", "beta"}))
			Expect(ctrl.Total()).To(Equal(int64(2)))
			Expect(ctrl.Err()).NotTo(HaveOccurred())
		})
	})

	Describe("debounced search", func() {
		It("collapses rapid edits into one fetch with the final text", func() {
			ctrl.SetSearch("w")
			ctrl.SetSearch("wa")
			ctrl.SetSearch("")

			Eventually(src.callCount).Should(Equal(1))
			Consistently(src.callCount, 100*time.Millisecond).Should(Equal(1))
			Expect(src.lastCall().Search).To(Equal(""))
		})

		It("fetches again after the quiet period", func() {
			ctrl.SetSearch("wa")
			Eventually(src.callCount).Should(Equal(1))

			ctrl.SetSearch("wareh")
			Eventually(src.callCount).Should(Equal(2))
			Expect(src.lastCall().Search).To(Equal("wareh"))
		})
	})

	Describe("filters", func() {
		It("fetches immediately on a filter change", func() {
			ctrl.SetFilter("status", "active")
			Eventually(src.callCount).Should(Equal(1))
			Expect(src.lastCall().Filters).To(HaveKeyWithValue("status", "active"))
		})

		It(`treats "all" as no filter`, func() {
			ctrl.SetFilter("status", "active")
			ctrl.SetFilter("status", "all")
			Eventually(src.callCount).Should(Equal(2))
			Expect(src.lastCall().Filters).NotTo(HaveKey("status"))
		})
	})

	Describe("pagination", func() {
		BeforeEach(func() {
			src.mu.Lock()
			src.total = 25
			src.mu.Unlock()
			ctrl.Refresh()
			Eventually(ctrl.Total).Should(Equal(int64(25)))
		})

		It("computes the page count from the exact total", func() {
			Expect(ctrl.PageCount()).To(Equal(3))
		})

		It("stops advancing at the last page", func() {
			ctrl.NextPage()
			ctrl.NextPage()
			Eventually(ctrl.Page).Should(Equal(2))
			Expect(ctrl.CanNext()).To(BeFalse())

			before := src.callCount()
			ctrl.NextPage()
			Expect(ctrl.Page()).To(Equal(2))
			Expect(src.callCount()).To(Equal(before))
		})

		It("does not go before the first page", func() {
			before := src.callCount()
			ctrl.PrevPage()
			Expect(ctrl.Page()).To(Equal(0))
			Expect(src.callCount()).To(Equal(before))
		})

		It("resets to the first page on a page-size change", func() {
			ctrl.NextPage()
			Eventually(ctrl.Page).Should(Equal(1))

			ctrl.SetPageSize(50)
			Expect(ctrl.Page()).To(Equal(0))
			Eventually(src.callCount).Should(BeNumerically(">=", 3))
			Expect(src.lastCall().PageSize).To(Equal(50))
		})
	})

	Describe("stale fetches", func() {
		It("discards a slow response superseded by a newer request", func() {
			release := make(chan struct{})
			src.setRespond(func(spec table.QuerySpec) (table.Result[string], error) {
				if spec.Filters["status"] == "" {
					<-release
					return table.Result[string]{Rows: []string{"stale"}, Total: 1}, nil
				}
				return table.Result[string]{Rows: []string{"fresh"}, Total: 1}, nil
			})

			ctrl.Refresh()                      // slow fetch, blocked
			ctrl.SetFilter("status", "active")  // supersedes it
			Eventually(ctrl.Rows).Should(Equal([]string{"fresh"}))

			close(release)
			Consistently(ctrl.Rows, 100*time.Millisecond).Should(Equal([]string{"fresh"}))
		})
	})

	Describe("fetch errors", func() {
		It("keeps the prior rows and surfaces a dismissable error", func() {
			ctrl.Refresh()
			Eventually(ctrl.Rows).Should(Equal([]string{"alpha", "beta"}))

			src.setRespond(func(table.QuerySpec) (table.Result[string], error) {
				return table.Result[string]{}, errors.New("connection refused")
			})
			ctrl.Refresh()
			Eventually(ctrl.Err).Should(MatchError("connection refused"))
			Expect(ctrl.Rows()).To(Equal([]string{"alpha", "beta"}))

			ctrl.ClearError()
			Expect(ctrl.Err()).NotTo(HaveOccurred())
		})
	})

	Describe("ToggleRow", func() {
		It("rejects a second toggle for the same row while one is in flight", func() {
			started := make(chan struct{})
			release := make(chan struct{})
			go func() {
				defer GinkgoRecover()
				err := ctrl.ToggleRow("row-1", func(ctx context.Context) error {
					close(started)
					<-release
					return nil
				})
				Expect(err).NotTo(HaveOccurred())
			}()
			<-started

			Expect(ctrl.RowBusy("row-1")).To(BeTrue())
			err := ctrl.ToggleRow("row-1", func(ctx context.Context) error { return nil })
			Expect(err).To(MatchError(table.ErrRowBusy))

			close(release)
			Eventually(func() bool { return ctrl.RowBusy("row-1") }).Should(BeFalse())
		})

		It("allows distinct rows to update concurrently", func() {
			release := make(chan struct{})
			done := make(chan error, 1)
			go func() {
				done <- ctrl.ToggleRow("row-1", func(ctx context.Context) error {
					<-release
					return nil
				})
			}()
			Eventually(func() bool { return ctrl.RowBusy("row-1") }).Should(BeTrue())

			Expect(ctrl.ToggleRow("row-2", func(ctx context.Context) error { return nil })).To(Succeed())

			close(release)
			Expect(<-done).NotTo(HaveOccurred())
		})

		It("refreshes the current query after a successful update", func() {
			Expect(ctrl.ToggleRow("row-1", func(ctx context.Context) error { return nil })).To(Succeed())
			Eventually(src.callCount).Should(Equal(1))
		})

		It("surfaces the update error without refreshing", func() {
			boom := errors.New("update failed")
			err := ctrl.ToggleRow("row-1", func(ctx context.Context) error { return boom })
			Expect(err).To(MatchError(boom))
			Expect(ctrl.Err()).To(MatchError(boom))
			Expect(src.callCount()).To(Equal(0))
		})
	})

	Describe("column visibility", func() {
		It("only affects rendering, never the fetch", func() {
			ctrl.SetColumnVisible("length", true)
			Expect(src.callCount()).To(Equal(0))

			visible := ctrl.VisibleColumns()
			Expect(visible).To(HaveLen(2))
		})
	})

	Describe("CSV export", func() {
		It("writes the loaded page with the visible columns only", func() {
			ctrl.Refresh()
			Eventually(ctrl.Rows).Should(HaveLen(2))

			var buf bytes.Buffer
			Expect(ctrl.ExportCSV(&buf)).To(Succeed())
			Expect(buf.String()).To(Equal("Value\nalpha\nbeta\n"))
		})

		It("includes columns made visible after load", func() {
			ctrl.Refresh()
			Eventually(ctrl.Rows).Should(HaveLen(2))
			ctrl.SetColumnVisible("length", true)

			var buf bytes.Buffer
			Expect(ctrl.ExportCSV(&buf)).To(Succeed())
			Expect(buf.String()).To(Equal("Value,Length\nalpha,5\nbeta,4\n"))
		})
	})
})
