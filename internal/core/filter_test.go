package core

import (
	"reflect"
	"testing"
)

// sampleDataset is small enough to reason about by hand.
func sampleDataset() Dataset {
	return Dataset{
		{Year: 2023, Seniority: "Senior", Contract: "CLT", CompanySize: "Grande", Role: "Data Scientist", USD: 100000, Remote: "Remoto", Residence: "US"},
		{Year: 2022, Seniority: "Junior", Contract: "CLT", CompanySize: "Pequena", Role: "Analyst", USD: 50000, Remote: "Presencial", Residence: "BR"},
		{Year: 2023, Seniority: "Junior", Contract: "PJ", CompanySize: "Media", Role: "Analyst", USD: 60000, Remote: "Hibrido", Residence: "BR"},
		{Year: 2024, Seniority: "Senior", Contract: "CLT", CompanySize: "Grande", Role: "Data Engineer", USD: 120000, Remote: "Remoto", Residence: "DE"},
		{Year: 2023, Seniority: "Senior", Contract: "PJ", CompanySize: "Pequena", Role: "Data Scientist", USD: 90000, Remote: "Remoto", Residence: "GB"},
	}
}

func TestFilter(t *testing.T) {
	ds := sampleDataset()

	tests := []struct {
		name    string
		sel     Selection
		opts    FilterOptions
		wantIdx []int
	}{
		{
			name:    "everything selected",
			sel:     AllSelected(ds),
			wantIdx: []int{0, 1, 2, 3, 4},
		},
		{
			name: "single year",
			sel: Selection{
				Years:       NewSet(2023),
				Seniorities: NewSet("Senior", "Junior"),
				Contracts:   NewSet("CLT", "PJ"),
			},
			wantIdx: []int{0, 2, 4},
		},
		{
			name: "conjunction across dimensions",
			sel: Selection{
				Years:       NewSet(2023, 2024),
				Seniorities: NewSet("Senior"),
				Contracts:   NewSet("CLT"),
			},
			wantIdx: []int{0, 3},
		},
		{
			name: "empty year set matches nothing",
			sel: Selection{
				Years:       NewSet[int](),
				Seniorities: NewSet("Senior", "Junior"),
				Contracts:   NewSet("CLT", "PJ"),
			},
			wantIdx: nil,
		},
		{
			name: "nil seniority set matches nothing",
			sel: Selection{
				Years:     NewSet(2022, 2023, 2024),
				Contracts: NewSet("CLT", "PJ"),
			},
			wantIdx: nil,
		},
		{
			name: "unknown values match nothing",
			sel: Selection{
				Years:       NewSet(1999),
				Seniorities: NewSet("Principal"),
				Contracts:   NewSet("Freelance"),
			},
			wantIdx: nil,
		},
		{
			name: "company size ignored when not applied",
			sel: Selection{
				Years:        NewSet(2022, 2023, 2024),
				Seniorities:  NewSet("Senior", "Junior"),
				Contracts:    NewSet("CLT", "PJ"),
				CompanySizes: NewSet("Grande"),
			},
			opts:    FilterOptions{ApplyCompanySize: false},
			wantIdx: []int{0, 1, 2, 3, 4},
		},
		{
			name: "company size applied",
			sel: Selection{
				Years:        NewSet(2022, 2023, 2024),
				Seniorities:  NewSet("Senior", "Junior"),
				Contracts:    NewSet("CLT", "PJ"),
				CompanySizes: NewSet("Grande"),
			},
			opts:    FilterOptions{ApplyCompanySize: true},
			wantIdx: []int{0, 3},
		},
		{
			name: "nil company size leaves dimension unconstrained",
			sel: Selection{
				Years:       NewSet(2022, 2023, 2024),
				Seniorities: NewSet("Senior", "Junior"),
				Contracts:   NewSet("CLT", "PJ"),
			},
			opts:    FilterOptions{ApplyCompanySize: true},
			wantIdx: []int{0, 1, 2, 3, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(ds, tt.sel, tt.opts)

			if len(got) != len(tt.wantIdx) {
				t.Fatalf("Filter() returned %d records, want %d", len(got), len(tt.wantIdx))
			}
			for i, idx := range tt.wantIdx {
				if got[i] != ds[idx] {
					t.Errorf("record %d = %+v, want dataset[%d] %+v", i, got[i], idx, ds[idx])
				}
			}
		})
	}
}

// TestFilter_Partition checks that the view is exactly the set of records
// satisfying the predicate, for every combination of single-value selections.
func TestFilter_Partition(t *testing.T) {
	ds := sampleDataset()
	choices := Choices(ds)

	for _, year := range choices.Years {
		for _, sen := range choices.Seniorities {
			for _, con := range choices.Contracts {
				sel := Selection{
					Years:       NewSet(year),
					Seniorities: NewSet(sen),
					Contracts:   NewSet(con),
				}
				view := Filter(ds, sel, FilterOptions{})

				kept := 0
				for _, r := range ds {
					match := r.Year == year && r.Seniority == sen && r.Contract == con
					if match {
						if kept >= len(view) || view[kept] != r {
							t.Fatalf("selection %d/%s/%s: record %+v missing or out of order", year, sen, con, r)
						}
						kept++
					}
					if sel.Matches(r, FilterOptions{}) != match {
						t.Errorf("Matches(%+v) = %v, want %v", r, !match, match)
					}
				}
				if kept != len(view) {
					t.Errorf("selection %d/%s/%s: view has %d records, want %d", year, sen, con, len(view), kept)
				}
			}
		}
	}
}

func TestFilter_DoesNotMutateDataset(t *testing.T) {
	ds := sampleDataset()
	before := append(Dataset(nil), ds...)

	view := Filter(ds, AllSelected(ds), FilterOptions{})
	if len(view) > 0 {
		view[0].USD = -1
	}

	if !reflect.DeepEqual(ds, before) {
		t.Error("mutating the filtered view changed the dataset")
	}
}

func TestChoices(t *testing.T) {
	got := Choices(sampleDataset())

	want := FilterChoices{
		Years:        []int{2023, 2022, 2024},
		Seniorities:  []string{"Senior", "Junior"},
		Contracts:    []string{"CLT", "PJ"},
		CompanySizes: []string{"Grande", "Pequena", "Media"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Choices() = %+v, want %+v", got, want)
	}
}

func TestSelectionValues(t *testing.T) {
	sel := Selection{
		Years:       NewSet(2024, 2022),
		Seniorities: NewSet("Senior", "Junior"),
		Contracts:   NewSet[string](),
	}

	got := sel.Values()
	if !reflect.DeepEqual(got.Years, []int{2022, 2024}) {
		t.Errorf("Years = %v, want [2022 2024]", got.Years)
	}
	if !reflect.DeepEqual(got.Seniorities, []string{"Junior", "Senior"}) {
		t.Errorf("Seniorities = %v, want [Junior Senior]", got.Seniorities)
	}
	if len(got.Contracts) != 0 {
		t.Errorf("Contracts = %v, want empty", got.Contracts)
	}
	if got.CompanySizes != nil {
		t.Errorf("CompanySizes = %v, want nil for an unset dimension", got.CompanySizes)
	}
}
