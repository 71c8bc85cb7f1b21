package web

// handlers_common.go decodes the dashboard query string.
//
// Each filter dimension is a repeatable parameter (?ano=2023&ano=2024).
// A dimension that is absent means "everything selected", unless the
// request carries filtered=1: that marks a submitted filter form, where
// an absent dimension is one the user cleared.

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/JonMunkholm/salarydash/internal/core"
	"github.com/samber/lo"
)

const (
	paramFiltered = "filtered"
	paramPage     = "page"
	paramPageSize = "page_size"

	// maxPageSize caps page_size on API requests.
	maxPageSize = 1000
)

// parseSelection builds the filter selection for a request.
func parseSelection(q url.Values, sess *core.Session) (core.Selection, error) {
	submitted := q.Get(paramFiltered) == "1"
	sel := sess.DefaultSelection()

	if vals, ok := queryValues(q, core.ColYear); ok || submitted {
		years := make([]int, 0, len(vals))
		for _, v := range vals {
			y, err := strconv.Atoi(v)
			if err != nil {
				return core.Selection{}, fmt.Errorf("invalid filter value for %s: %q", core.ColYear, v)
			}
			years = append(years, y)
		}
		sel.Years = core.NewSet(years...)
	}
	if vals, ok := queryValues(q, core.ColSeniority); ok || submitted {
		sel.Seniorities = core.NewSet(vals...)
	}
	if vals, ok := queryValues(q, core.ColContract); ok || submitted {
		sel.Contracts = core.NewSet(vals...)
	}
	if vals, ok := queryValues(q, core.ColCompanySize); ok || submitted {
		sel.CompanySizes = core.NewSet(vals...)
	}
	return sel, nil
}

// queryValues returns the trimmed, non-empty values of key and whether the
// key was present at all.
func queryValues(q url.Values, key string) ([]string, bool) {
	raw, ok := q[key]
	if !ok {
		return nil, false
	}
	vals := lo.FilterMap(raw, func(v string, _ int) (string, bool) {
		v = strings.TrimSpace(v)
		return v, v != ""
	})
	return vals, true
}

// parsePaging reads page and page_size. Absent values fall back to page 1
// and defaultSize; malformed ones are an error.
func parsePaging(q url.Values, defaultSize int) (page, size int, err error) {
	page, size = 1, defaultSize

	if v := q.Get(paramPage); v != "" {
		page, err = strconv.Atoi(v)
		if err != nil || page < 1 {
			return 0, 0, fmt.Errorf("invalid page %q", v)
		}
	}
	if v := q.Get(paramPageSize); v != "" {
		size, err = strconv.Atoi(v)
		if err != nil || size < 0 || size > maxPageSize {
			return 0, 0, fmt.Errorf("invalid page size %q", v)
		}
	}
	return page, size, nil
}

// selectionQuery encodes a selection back into query parameters so page
// links keep the current filters.
func selectionQuery(sel core.SelectedValues) url.Values {
	q := url.Values{}
	q.Set(paramFiltered, "1")
	for _, y := range sel.Years {
		q.Add(core.ColYear, strconv.Itoa(y))
	}
	for _, v := range sel.Seniorities {
		q.Add(core.ColSeniority, v)
	}
	for _, v := range sel.Contracts {
		q.Add(core.ColContract, v)
	}
	for _, v := range sel.CompanySizes {
		q.Add(core.ColCompanySize, v)
	}
	return q
}
