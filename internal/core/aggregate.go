package core

// aggregate.go turns a FilteredView into the KPIs and chart series.
//
// Every function here is pure and total: an empty view yields zero values or
// empty series, never an error. Group iteration follows first appearance in
// the view so results are deterministic.

import (
	"sort"

	"github.com/JonMunkholm/salarydash/internal/country"
	"github.com/samber/lo"
)

const (
	// DefaultTopRoles is the number of roles in the top-roles chart.
	DefaultTopRoles = 10

	// DefaultFocusRole is the role whose salaries are mapped per country.
	DefaultFocusRole = "Data Scientist"
)

// ComputeKPIs returns mean, max, count and the most frequent role.
//
// When several roles share the highest count, the one that appears first in
// the view wins.
func ComputeKPIs(view FilteredView) KPISet {
	if len(view) == 0 {
		return KPISet{}
	}

	salaries := lo.Map(view, func(r Record, _ int) float64 { return r.USD })

	return KPISet{
		MeanSalary: mean(salaries),
		MaxSalary:  lo.Max(salaries),
		Count:      len(view),
		TopRole:    modeRole(view),
	}
}

// modeRole returns the most frequent role, ties going to the earliest.
func modeRole(view FilteredView) string {
	counts := lo.CountValuesBy(view, func(r Record) string { return r.Role })

	best, bestCount := "", 0
	for _, role := range uniqueRoles(view) {
		if counts[role] > bestCount {
			best, bestCount = role, counts[role]
		}
	}
	return best
}

// TopRoles groups the view by role and returns the n roles with the highest
// mean salary, sorted ascending by mean for display. Equal means are ordered
// by role name. Fewer than n distinct roles returns all of them.
func TopRoles(view FilteredView, n int) []RoleSalary {
	if len(view) == 0 || n <= 0 {
		return nil
	}

	groups := lo.GroupBy(view, func(r Record) string { return r.Role })
	roles := make([]RoleSalary, 0, len(groups))
	for role, rows := range groups {
		roles = append(roles, RoleSalary{
			Role:       role,
			MeanSalary: mean(salariesOf(rows)),
			Count:      len(rows),
		})
	}

	// Largest first to pick the top n.
	sort.Slice(roles, func(i, j int) bool {
		if roles[i].MeanSalary != roles[j].MeanSalary {
			return roles[i].MeanSalary > roles[j].MeanSalary
		}
		return roles[i].Role < roles[j].Role
	})
	if len(roles) > n {
		roles = roles[:n]
	}

	sort.SliceStable(roles, func(i, j int) bool {
		return roles[i].MeanSalary < roles[j].MeanSalary
	})
	return roles
}

// RemoteCounts counts rows per remote-work category, ordered by descending
// count. Equal counts keep first-appearance order.
func RemoteCounts(view FilteredView) []CategoryCount {
	if len(view) == 0 {
		return nil
	}

	counts := lo.CountValuesBy(view, func(r Record) string { return r.Remote })
	order := lo.Uniq(lo.Map(view, func(r Record, _ int) string { return r.Remote }))

	result := make([]CategoryCount, 0, len(order))
	for _, category := range order {
		result = append(result, CategoryCount{
			Category: category,
			Count:    counts[category],
			Percent:  100 * float64(counts[category]) / float64(len(view)),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}

// ResidenceISO3 returns the alpha-3 code of the record's residence, or ""
// when it does not resolve.
func (r Record) ResidenceISO3() string {
	iso3, _ := country.Resolve(r.Residence)
	return iso3
}

// CountrySalaries returns the mean salary per residence country for rows
// whose role equals role exactly. Residence codes that do not resolve to an
// ISO 3166 alpha-3 code are left out. Results are sorted by alpha-3 code.
func CountrySalaries(view FilteredView, role string) []CountrySalary {
	rows := lo.Filter(view, func(r Record, _ int) bool { return r.Role == role })
	if len(rows) == 0 {
		return nil
	}

	type bucket struct {
		name  string
		total float64
		count int
	}
	buckets := make(map[string]*bucket)
	for _, r := range rows {
		c, ok := country.Lookup(r.Residence)
		if !ok {
			continue
		}
		b, exists := buckets[c.Alpha3]
		if !exists {
			b = &bucket{name: c.Name}
			buckets[c.Alpha3] = b
		}
		b.total += r.USD
		b.count++
	}

	result := make([]CountrySalary, 0, len(buckets))
	for iso3, b := range buckets {
		result = append(result, CountrySalary{
			ISO3:       iso3,
			Name:       b.name,
			MeanSalary: b.total / float64(b.count),
			Count:      b.count,
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ISO3 < result[j].ISO3 })
	return result
}

func uniqueRoles(view FilteredView) []string {
	return lo.Uniq(lo.Map(view, func(r Record, _ int) string { return r.Role }))
}

func salariesOf(rows []Record) []float64 {
	return lo.Map(rows, func(r Record, _ int) float64 { return r.USD })
}

// mean returns the arithmetic mean, or 0 for an empty slice.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return lo.Sum(values) / float64(len(values))
}
