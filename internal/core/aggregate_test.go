package core

import (
	"fmt"
	"reflect"
	"testing"
)

func TestComputeKPIs(t *testing.T) {
	tests := []struct {
		name string
		view FilteredView
		want KPISet
	}{
		{
			name: "empty view",
			view: nil,
			want: KPISet{MeanSalary: 0, MaxSalary: 0, Count: 0, TopRole: ""},
		},
		{
			name: "single record",
			view: FilteredView{{Role: "Data Scientist", USD: 100000}},
			want: KPISet{MeanSalary: 100000, MaxSalary: 100000, Count: 1, TopRole: "Data Scientist"},
		},
		{
			name: "mode is the most frequent role",
			view: FilteredView{
				{Role: "Analyst", USD: 40000},
				{Role: "Engineer", USD: 80000},
				{Role: "Engineer", USD: 90000},
				{Role: "Analyst", USD: 30000},
				{Role: "Engineer", USD: 60000},
			},
			want: KPISet{MeanSalary: 60000, MaxSalary: 90000, Count: 5, TopRole: "Engineer"},
		},
		{
			name: "tie goes to the first role encountered",
			view: FilteredView{
				{Role: "Zeta", USD: 10},
				{Role: "Alpha", USD: 20},
				{Role: "Alpha", USD: 30},
				{Role: "Zeta", USD: 40},
			},
			want: KPISet{MeanSalary: 25, MaxSalary: 40, Count: 4, TopRole: "Zeta"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeKPIs(tt.view)
			if got != tt.want {
				t.Errorf("ComputeKPIs() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTopRoles(t *testing.T) {
	t.Run("empty view", func(t *testing.T) {
		if got := TopRoles(nil, 10); len(got) != 0 {
			t.Errorf("TopRoles(nil) = %v, want empty", got)
		}
	})

	t.Run("fewer roles than limit returns all ascending", func(t *testing.T) {
		view := FilteredView{
			{Role: "B", USD: 300},
			{Role: "A", USD: 100},
			{Role: "B", USD: 100},
			{Role: "C", USD: 50},
		}

		got := TopRoles(view, 10)
		want := []RoleSalary{
			{Role: "C", MeanSalary: 50, Count: 1},
			{Role: "A", MeanSalary: 100, Count: 1},
			{Role: "B", MeanSalary: 200, Count: 2},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("TopRoles() = %+v, want %+v", got, want)
		}
	})

	t.Run("keeps the ten largest means", func(t *testing.T) {
		var view FilteredView
		for i := 1; i <= 12; i++ {
			view = append(view, Record{Role: fmt.Sprintf("role-%02d", i), USD: float64(i * 1000)})
		}

		got := TopRoles(view, 10)
		if len(got) != 10 {
			t.Fatalf("len(TopRoles()) = %d, want 10", len(got))
		}
		for i, rs := range got {
			wantRole := fmt.Sprintf("role-%02d", i+3)
			if rs.Role != wantRole {
				t.Errorf("position %d = %q, want %q", i, rs.Role, wantRole)
			}
			if i > 0 && got[i-1].MeanSalary > rs.MeanSalary {
				t.Errorf("not ascending at %d: %v > %v", i, got[i-1].MeanSalary, rs.MeanSalary)
			}
		}
	})
}

func TestRemoteCounts(t *testing.T) {
	if got := RemoteCounts(nil); len(got) != 0 {
		t.Errorf("RemoteCounts(nil) = %v, want empty", got)
	}

	view := FilteredView{
		{Remote: "Presencial"},
		{Remote: "Remoto"},
		{Remote: "Hibrido"},
		{Remote: "Remoto"},
	}

	got := RemoteCounts(view)
	want := []CategoryCount{
		{Category: "Remoto", Count: 2, Percent: 50},
		{Category: "Presencial", Count: 1, Percent: 25},
		{Category: "Hibrido", Count: 1, Percent: 25},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RemoteCounts() = %+v, want %+v", got, want)
	}
}

func TestCountrySalaries(t *testing.T) {
	view := FilteredView{
		{Role: "Data Scientist", USD: 100000, Residence: "US"},
		{Role: "Data Scientist", USD: 120000, Residence: "US"},
		{Role: "Data Scientist", USD: 40000, Residence: "BR"},
		{Role: "data scientist", USD: 999999, Residence: "BR"},
		{Role: "Analyst", USD: 10, Residence: "DE"},
		{Role: "Data Scientist", USD: 70000, Residence: "ZZ"},
		{Role: "Data Scientist", USD: 70000, Residence: ""},
	}

	got := CountrySalaries(view, DefaultFocusRole)
	want := []CountrySalary{
		{ISO3: "BRA", Name: "Brazil", MeanSalary: 40000, Count: 1},
		{ISO3: "USA", Name: "United States", MeanSalary: 110000, Count: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CountrySalaries() = %+v, want %+v", got, want)
	}

	if got := CountrySalaries(view, "Manager"); len(got) != 0 {
		t.Errorf("CountrySalaries(Manager) = %v, want empty", got)
	}
	if got := CountrySalaries(nil, DefaultFocusRole); len(got) != 0 {
		t.Errorf("CountrySalaries(nil) = %v, want empty", got)
	}
}

func TestRecordResidenceISO3(t *testing.T) {
	tests := []struct {
		residence string
		want      string
	}{
		{"US", "USA"},
		{"br", "BRA"},
		{"ZZ", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := (Record{Residence: tt.residence}).ResidenceISO3(); got != tt.want {
			t.Errorf("ResidenceISO3(%q) = %q, want %q", tt.residence, got, tt.want)
		}
	}
}
