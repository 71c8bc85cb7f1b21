// Package core provides the filter and aggregation pipeline behind the
// salary dashboard.
//
// The package holds no I/O. A [Dataset] is loaded elsewhere (see the dataset
// package) and handed to a [Session]; every selection change then runs one
// pure pass through [Render]:
//
//	view := Filter(ds, sel, opts)     // stable subset
//	kpis := ComputeKPIs(view)         // mean, max, count, most frequent role
//	top  := TopRoles(view, 10)        // ascending by mean salary
//	hist := SalaryHistogram(view, 30) // equal-width bins over [min, max]
//	rem  := RemoteCounts(view)        // descending by count
//	geo  := CountrySalaries(view, "Data Scientist")
//
// # Selection semantics
//
// A record passes when its year, seniority and contract are all members of
// the selected sets. An empty set on any of those dimensions yields an empty
// view. Company size is applied only when [FilterOptions.ApplyCompanySize]
// is set and the selection carries a non-nil company-size set.
//
// # Empty results
//
// Nothing in this package returns an error. An empty view produces zero KPIs
// and empty series; the presentation layer shows a "no data" placeholder.
//
// # Error Handling
//
// Load and request errors raised by other packages are mapped to
// user-friendly messages with [MapError].
package core
