// internal/app/features/registration/search.go
package registration

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/solarfair/internal/app/system/listing"
	"github.com/dalemusser/solarfair/internal/app/system/timeouts"
)

// ServeSearch handles GET /registration/search. Category narrows first, then
// the search term matches as a case-insensitive substring across organisation
// name, first name, last name and email. Results come back one page at a
// time along with the distinct categories present in the whole data set.
func (h *Handler) ServeSearch(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "search registrations")
	defer cancel()

	q := r.URL.Query()

	params := listing.Params{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Page:     1,
		PageSize: h.PageSize,
	}
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		params.Page = v
	}
	if v, err := strconv.Atoi(q.Get("page_size")); err == nil && v > 0 {
		params.PageSize = v
	}

	regs, err := h.Regs.ListAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "search query failed", err, "Something went wrong")
		return
	}

	res := listing.Apply(regs, params)

	writeJSON(w, http.StatusOK, searchResponse{
		Registrations: res.Visible,
		Total:         res.Total,
		TotalPages:    res.TotalPages,
		Page:          res.Page,
		Categories:    listing.Categories(regs),
	})
}
