// Package listing implements in-memory filtering, searching, and pagination
// over a fetched registration list.
//
// The admin table operates on the full record set: a category filter is
// applied first (exact match, skipped when empty), then a case-insensitive
// substring search over organisation name, first name, last name, and email.
// Pagination is plain offset math; requesting a page past the end is not an
// error and yields an empty slice. Callers that change the search term or
// category filter must reset to page 1.
package listing

import (
	"strings"

	"github.com/dalemusser/solarfair/internal/domain/models"
)

// DefaultPageSize is the number of rows shown per admin-table page.
const DefaultPageSize = 10

// Params holds the filter and pagination inputs for Apply.
type Params struct {
	Search   string // case-insensitive substring; empty = no search
	Category string // exact categorisation match; empty = all categories
	Page     int    // 1-based; values < 1 are treated as 1
	PageSize int    // values < 1 fall back to DefaultPageSize
}

// Result holds the visible page plus the totals callers need to render
// pagination controls.
type Result struct {
	Visible    []models.Registration
	Total      int // count after filtering, before paging
	TotalPages int // ceil(Total/PageSize), minimum 1
	Page       int // the (clamped-to-1) page that was applied
}

// Apply filters, searches, and pages records. It is pure: records is never
// modified and the input order is preserved within the visible slice.
func Apply(records []models.Registration, p Params) Result {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}

	filtered := make([]models.Registration, 0, len(records))
	term := strings.ToLower(strings.TrimSpace(p.Search))
	for _, rec := range records {
		if p.Category != "" && rec.Categorisation != p.Category {
			continue
		}
		if term != "" && !matches(rec, term) {
			continue
		}
		filtered = append(filtered, rec)
	}

	totalPages := (len(filtered) + p.PageSize - 1) / p.PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (p.Page - 1) * p.PageSize
	end := start + p.PageSize
	var visible []models.Registration
	switch {
	case start >= len(filtered):
		visible = []models.Registration{}
	case end > len(filtered):
		visible = filtered[start:]
	default:
		visible = filtered[start:end]
	}

	return Result{
		Visible:    visible,
		Total:      len(filtered),
		TotalPages: totalPages,
		Page:       p.Page,
	}
}

// matches reports whether term appears in any of the searched fields.
// term must already be lower-cased.
func matches(rec models.Registration, term string) bool {
	for _, field := range []string{rec.OrganisationName, rec.FirstName, rec.LastName, rec.Email} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// Categories returns the distinct categorisation values present in records,
// in first-seen order, skipping blanks. The admin filter dropdown is built
// from this list.
func Categories(records []models.Registration) []string {
	seen := make(map[string]struct{}, len(records))
	out := []string{}
	for _, rec := range records {
		if rec.Categorisation == "" {
			continue
		}
		if _, ok := seen[rec.Categorisation]; ok {
			continue
		}
		seen[rec.Categorisation] = struct{}{}
		out = append(out, rec.Categorisation)
	}
	return out
}
