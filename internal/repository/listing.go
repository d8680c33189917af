package repository

import (
	"fmt"
	"strings"

	"go-wms-admin/pkg/pagination"

	"gorm.io/gorm"
)

// ListParams is the query state of a master-data list page: one free-text
// search applied across the given columns, equality filters, and a page window.
type ListParams struct {
	Search        string
	SearchColumns []string
	Filters       map[string]interface{}
	Page          int // zero-based
	PageSize      int
}

const defaultPageSize = 10

func (p ListParams) normalized() ListParams {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.PageSize <= 0 {
		p.PageSize = defaultPageSize
	}
	return p
}

// applyListScopes attaches the search and filter conditions to a query.
// Search is a case-insensitive substring match OR-ed across the columns.
func applyListScopes(q *gorm.DB, p ListParams) *gorm.DB {
	if p.Search != "" && len(p.SearchColumns) > 0 {
		pattern := "%" + strings.ToLower(p.Search) + "%"
		clauses := make([]string, 0, len(p.SearchColumns))
		args := make([]interface{}, 0, len(p.SearchColumns))
		for _, col := range p.SearchColumns {
			clauses = append(clauses, fmt.Sprintf("LOWER(%s) LIKE ?", col))
			args = append(args, pattern)
		}
		q = q.Where(strings.Join(clauses, " OR "), args...)
	}
	for col, v := range p.Filters {
		q = q.Where(fmt.Sprintf("%s = ?", col), v)
	}
	return q
}

// list runs the standard list query: exact total count, then exactly one page
// window ordered by creation time descending. All row columns are always
// selected; column visibility is a rendering concern and never reaches here.
func list(db *gorm.DB, mdl interface{}, p ListParams, preloads []string, out interface{}) (int64, error) {
	p = p.normalized()

	var total int64
	if err := applyListScopes(db.Model(mdl), p).Count(&total).Error; err != nil {
		return 0, err
	}

	q := applyListScopes(db.Model(mdl), p)
	for _, preload := range preloads {
		q = q.Preload(preload)
	}

	from, _ := pagination.Window(p.Page, p.PageSize)
	err := q.Order("created_at DESC").Limit(p.PageSize).Offset(from).Find(out).Error
	return total, err
}
