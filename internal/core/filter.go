package core

import (
	"sort"

	"github.com/samber/lo"
)

// Filter returns the records of ds matching sel, preserving dataset order.
//
// A record is kept iff its year, seniority and contract are all members of
// the corresponding selection set. Company size is checked only when
// opts.ApplyCompanySize is set and sel.CompanySizes is non-nil.
func Filter(ds Dataset, sel Selection, opts FilterOptions) FilteredView {
	applySize := opts.ApplyCompanySize && sel.CompanySizes != nil

	kept := lo.Filter(ds, func(r Record, _ int) bool {
		return sel.Years.Contains(r.Year) &&
			sel.Seniorities.Contains(r.Seniority) &&
			sel.Contracts.Contains(r.Contract) &&
			(!applySize || sel.CompanySizes.Contains(r.CompanySize))
	})
	return FilteredView(kept)
}

// Matches reports whether a single record passes the selection.
func (sel Selection) Matches(r Record, opts FilterOptions) bool {
	return len(Filter(Dataset{r}, sel, opts)) == 1
}

// Choices returns the distinct values of every filter dimension in order of
// first appearance.
func Choices(ds Dataset) FilterChoices {
	return FilterChoices{
		Years:        lo.Uniq(lo.Map(ds, func(r Record, _ int) int { return r.Year })),
		Seniorities:  lo.Uniq(lo.Map(ds, func(r Record, _ int) string { return r.Seniority })),
		Contracts:    lo.Uniq(lo.Map(ds, func(r Record, _ int) string { return r.Contract })),
		CompanySizes: lo.Uniq(lo.Map(ds, func(r Record, _ int) string { return r.CompanySize })),
	}
}

// AllSelected returns the default selection: every value of every dimension.
func AllSelected(ds Dataset) Selection {
	c := Choices(ds)
	return Selection{
		Years:        NewSet(c.Years...),
		Seniorities:  NewSet(c.Seniorities...),
		Contracts:    NewSet(c.Contracts...),
		CompanySizes: NewSet(c.CompanySizes...),
	}
}

// Values converts the selection to sorted slices.
func (sel Selection) Values() SelectedValues {
	v := SelectedValues{
		Years:       sortedKeys(sel.Years),
		Seniorities: sortedKeys(sel.Seniorities),
		Contracts:   sortedKeys(sel.Contracts),
	}
	if sel.CompanySizes != nil {
		v.CompanySizes = sortedKeys(sel.CompanySizes)
	}
	return v
}

func sortedKeys[T int | string](s Set[T]) []T {
	keys := lo.Keys(s)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
