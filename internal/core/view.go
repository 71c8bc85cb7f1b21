package core

import "github.com/samber/lo"

// DefaultPageSize is the number of detail rows per page.
const DefaultPageSize = 50

// RenderOptions controls one render pass. Zero values fall back to defaults.
type RenderOptions struct {
	Filter    FilterOptions
	FocusRole string
	TopRoles  int
	Bins      int

	// Page is 1-based. PageSize <= 0 returns every filtered row.
	Page     int
	PageSize int
}

func (o RenderOptions) withDefaults() RenderOptions {
	if o.FocusRole == "" {
		o.FocusRole = DefaultFocusRole
	}
	if o.TopRoles <= 0 {
		o.TopRoles = DefaultTopRoles
	}
	if o.Bins <= 0 {
		o.Bins = DefaultHistogramBins
	}
	if o.Page < 1 {
		o.Page = 1
	}
	return o
}

// Render runs one full pass: filter the dataset, then compute every KPI and
// chart series from the filtered view. It has no side effects and is meant to
// be called on every selection change.
func Render(ds Dataset, sel Selection, opts RenderOptions) ViewModel {
	opts = opts.withDefaults()
	view := Filter(ds, sel, opts.Filter)

	vm := ViewModel{
		Selection: sel.Values(),
		KPIs:      ComputeKPIs(view),
		TopRoles:  TopRoles(view, opts.TopRoles),
		Histogram: SalaryHistogram(view, opts.Bins),
		Remote:    RemoteCounts(view),
		FocusRole: opts.FocusRole,
		Countries: CountrySalaries(view, opts.FocusRole),
		TotalRows: len(view),
	}
	vm.Rows, vm.Page, vm.PageSize, vm.TotalPages = paginate(view, opts.Page, opts.PageSize)
	return vm
}

// paginate returns one page of rows, clamping page into range.
func paginate(view FilteredView, page, size int) ([]Record, int, int, int) {
	if size <= 0 {
		return []Record(view), 1, len(view), 1
	}

	pages := (len(view) + size - 1) / size
	if pages == 0 {
		pages = 1
	}
	if page > pages {
		page = pages
	}
	offset := (page - 1) * size
	return lo.Subset([]Record(view), offset, uint(size)), page, size, pages
}
