package core

// Column names of the source dataset.
const (
	ColYear        = "ano"
	ColSeniority   = "senioridade"
	ColContract    = "contrato"
	ColCompanySize = "tamanho_empresa"
	ColRole        = "cargo"
	ColUSD         = "usd"
	ColRemote      = "remoto"
	ColResidence   = "residencia"
)

// ColResidenceISO3 is derived from ColResidence; it is never read from a
// source.
const ColResidenceISO3 = "residencia_iso3"

// Columns lists the dataset columns in display order.
var Columns = []string{
	ColYear, ColSeniority, ColContract, ColCompanySize,
	ColRole, ColUSD, ColRemote, ColResidence,
}

// DetailColumns are the columns of the detail table and the CSV export:
// every source column plus the resolved residence code.
var DetailColumns = append(append([]string(nil), Columns...), ColResidenceISO3)

// Record is one employment observation.
type Record struct {
	Year        int     `json:"ano" yaml:"ano"`
	Seniority   string  `json:"senioridade" yaml:"senioridade"`
	Contract    string  `json:"contrato" yaml:"contrato"`
	CompanySize string  `json:"tamanho_empresa" yaml:"tamanho_empresa"`
	Role        string  `json:"cargo" yaml:"cargo"`
	USD         float64 `json:"usd" yaml:"usd"`
	Remote      string  `json:"remoto" yaml:"remoto"`
	Residence   string  `json:"residencia" yaml:"residencia"`
}

// Dataset is the ordered sequence of records as loaded from the source.
// It is treated as read-only once loaded.
type Dataset []Record

// FilteredView is the subset of a Dataset matching a Selection, in dataset order.
type FilteredView []Record

// Set is a set of allowed values for one filter dimension.
// A nil or empty Set contains nothing.
type Set[T comparable] map[T]struct{}

// NewSet builds a Set from values.
func NewSet[T comparable](values ...T) Set[T] {
	s := make(Set[T], len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Contains reports whether v is in the set.
func (s Set[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

// Selection holds the allowed values per filter dimension.
//
// Years, Seniorities and Contracts always constrain the result; an empty set
// matches nothing. CompanySizes constrains only when it is non-nil and
// company-size filtering is enabled in FilterOptions.
type Selection struct {
	Years        Set[int]
	Seniorities  Set[string]
	Contracts    Set[string]
	CompanySizes Set[string]
}

// FilterOptions tunes the filter predicate.
type FilterOptions struct {
	// ApplyCompanySize enables the company-size dimension. When false the
	// selection is accepted but ignored, as the original dashboard did.
	ApplyCompanySize bool
}

// KPISet holds the headline numbers of a filtered view.
type KPISet struct {
	MeanSalary float64 `json:"mean_salary" yaml:"mean_salary"`
	MaxSalary  float64 `json:"max_salary" yaml:"max_salary"`
	Count      int     `json:"count" yaml:"count"`
	TopRole    string  `json:"top_role" yaml:"top_role"`
}

// RoleSalary is the mean salary of one role.
type RoleSalary struct {
	Role       string  `json:"cargo" yaml:"cargo"`
	MeanSalary float64 `json:"usd" yaml:"usd"`
	Count      int     `json:"count" yaml:"count"`
}

// Bin is one histogram bucket covering [Low, High). The last bin of a
// histogram is closed on both ends.
type Bin struct {
	Low   float64 `json:"low" yaml:"low"`
	High  float64 `json:"high" yaml:"high"`
	Count int     `json:"count" yaml:"count"`
}

// Histogram is an equal-width partition of the salary range.
type Histogram struct {
	Min  float64 `json:"min" yaml:"min"`
	Max  float64 `json:"max" yaml:"max"`
	Bins []Bin   `json:"bins" yaml:"bins"`
}

// Empty reports whether the histogram has no bins.
func (h Histogram) Empty() bool {
	return len(h.Bins) == 0
}

// Edges returns the len(Bins)+1 bin boundaries.
func (h Histogram) Edges() []float64 {
	if len(h.Bins) == 0 {
		return nil
	}
	edges := make([]float64, 0, len(h.Bins)+1)
	for _, b := range h.Bins {
		edges = append(edges, b.Low)
	}
	return append(edges, h.Bins[len(h.Bins)-1].High)
}

// Total returns the sum of all bin counts.
func (h Histogram) Total() int {
	n := 0
	for _, b := range h.Bins {
		n += b.Count
	}
	return n
}

// CategoryCount is the number of rows in one remote-work category.
type CategoryCount struct {
	Category string  `json:"tipo_trabalho" yaml:"tipo_trabalho"`
	Count    int     `json:"qtde" yaml:"qtde"`
	Percent  float64 `json:"percent" yaml:"percent"`
}

// CountrySalary is the mean salary of the focus role in one country.
type CountrySalary struct {
	ISO3       string  `json:"residencia_iso3" yaml:"residencia_iso3"`
	Name       string  `json:"name" yaml:"name"`
	MeanSalary float64 `json:"usd" yaml:"usd"`
	Count      int     `json:"count" yaml:"count"`
}

// FilterChoices lists the distinct values available per filter dimension,
// in order of first appearance in the dataset.
type FilterChoices struct {
	Years        []int    `json:"ano" yaml:"ano"`
	Seniorities  []string `json:"senioridade" yaml:"senioridade"`
	Contracts    []string `json:"contrato" yaml:"contrato"`
	CompanySizes []string `json:"tamanho_empresa" yaml:"tamanho_empresa"`
}

// SelectedValues is the JSON/YAML friendly form of a Selection.
type SelectedValues struct {
	Years        []int    `json:"ano" yaml:"ano"`
	Seniorities  []string `json:"senioridade" yaml:"senioridade"`
	Contracts    []string `json:"contrato" yaml:"contrato"`
	CompanySizes []string `json:"tamanho_empresa,omitempty" yaml:"tamanho_empresa,omitempty"`
}

// ViewModel is everything the presentation layer needs for one render pass.
type ViewModel struct {
	Selection SelectedValues  `json:"selection" yaml:"selection"`
	KPIs      KPISet          `json:"kpis" yaml:"kpis"`
	TopRoles  []RoleSalary    `json:"top_roles" yaml:"top_roles"`
	Histogram Histogram       `json:"histogram" yaml:"histogram"`
	Remote    []CategoryCount `json:"remote" yaml:"remote"`
	FocusRole string          `json:"focus_role" yaml:"focus_role"`
	Countries []CountrySalary `json:"countries" yaml:"countries"`

	Rows       []Record `json:"rows" yaml:"rows"`
	Page       int      `json:"page" yaml:"page"`
	PageSize   int      `json:"page_size" yaml:"page_size"`
	TotalRows  int      `json:"total_rows" yaml:"total_rows"`
	TotalPages int      `json:"total_pages" yaml:"total_pages"`
}

// Empty reports whether the filtered view behind the model had no rows.
func (v ViewModel) Empty() bool {
	return v.TotalRows == 0
}
