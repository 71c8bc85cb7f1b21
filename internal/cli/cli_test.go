package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/JonMunkholm/salarydash/internal/config"
	"github.com/JonMunkholm/salarydash/internal/core"
	"github.com/JonMunkholm/salarydash/internal/dataset"
	"gopkg.in/yaml.v3"
)

const testCSV = `ano,senioridade,contrato,tamanho_empresa,cargo,usd,remoto,residencia
2023,senior,integral,grande,Data Scientist,150000,remoto,US
2022,junior,integral,pequena,Data Analyst,60000,presencial,BR
2023,pleno,freelancer,media,Data Scientist,90000,hibrido,BR
`

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	path := filepath.Join(t.TempDir(), "salaries.csv")
	if err := os.WriteFile(path, []byte(testCSV), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	return &config.Config{
		Dataset: config.DatasetConfig{Source: path, FetchTimeout: 5 * time.Second},
		Dashboard: config.DashboardConfig{
			FocusRole:        "Data Scientist",
			TopRoles:         10,
			HistogramBins:    30,
			PageSize:         50,
			ApplyCompanySize: true,
		},
		Logging: config.LoggingConfig{Level: "error", Format: "text"},
	}
}

func run(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(cfg, &out).Run(context.Background(), append([]string{"salarycli"}, args...))
	return out.String(), err
}

// ----------------------------------------------------------------------------
// Selection Tests
// ----------------------------------------------------------------------------

func testSession(t *testing.T) *core.Session {
	t.Helper()
	ds, err := dataset.ParseCSV(strings.NewReader(testCSV))
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}
	return core.NewSession("test", ds, core.RenderOptions{})
}

func TestSelectionFlags_Defaults(t *testing.T) {
	sess := testSession(t)

	var f selectionFlags
	sel, err := f.selection(sess)
	if err != nil {
		t.Fatalf("selection() error = %v", err)
	}

	got := sel.Values()
	want := sess.DefaultSelection().Values()
	if len(got.Years) != len(want.Years) || len(got.Seniorities) != 3 || len(got.Contracts) != 2 || len(got.CompanySizes) != 3 {
		t.Errorf("selection() = %+v, want every value selected", got)
	}
}

func TestSelectionFlags_Explicit(t *testing.T) {
	sess := testSession(t)

	f := selectionFlags{years: []string{"2022"}, contracts: []string{"integral"}}
	sel, err := f.selection(sess)
	if err != nil {
		t.Fatalf("selection() error = %v", err)
	}

	if !sel.Years.Contains(2022) || sel.Years.Contains(2023) {
		t.Errorf("Years = %v, want only 2022", sel.Years)
	}
	if !sel.Contracts.Contains("integral") || sel.Contracts.Contains("freelancer") {
		t.Errorf("Contracts = %v, want only integral", sel.Contracts)
	}
	if len(sel.Seniorities) != 3 {
		t.Errorf("Seniorities = %v, want unset dimension to select all", sel.Seniorities)
	}
}

func TestSelectionFlags_InvalidYear(t *testing.T) {
	f := selectionFlags{years: []string{"twenty"}}
	if _, err := f.selection(testSession(t)); err == nil {
		t.Error("selection() error = nil, want invalid year error")
	}
}

// ----------------------------------------------------------------------------
// Command Tests
// ----------------------------------------------------------------------------

func TestRender_JSON(t *testing.T) {
	out, err := run(t, testConfig(t), "render", "--format", "json", "--year", "2023")
	if err != nil {
		t.Fatalf("render error = %v", err)
	}

	var vm core.ViewModel
	if err := json.Unmarshal([]byte(out), &vm); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if vm.KPIs.Count != 2 {
		t.Errorf("KPIs.Count = %d, want 2", vm.KPIs.Count)
	}
	if vm.KPIs.MeanSalary != 120000 {
		t.Errorf("KPIs.MeanSalary = %v, want 120000", vm.KPIs.MeanSalary)
	}
	if len(vm.Countries) != 2 {
		t.Errorf("Countries = %+v, want BRA and USA", vm.Countries)
	}
}

func TestRender_YAML(t *testing.T) {
	out, err := run(t, testConfig(t), "render", "--format", "yaml", "--seniority", "junior")
	if err != nil {
		t.Fatalf("render error = %v", err)
	}

	var vm core.ViewModel
	if err := yaml.Unmarshal([]byte(out), &vm); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out)
	}
	if vm.KPIs.Count != 1 || vm.KPIs.TopRole != "Data Analyst" {
		t.Errorf("KPIs = %+v, want one Data Analyst", vm.KPIs)
	}
}

func TestRender_Table(t *testing.T) {
	out, err := run(t, testConfig(t), "render", "--no-color")
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	for _, want := range []string{"KPIs Principais", "Data Scientist", "Página 1 de 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRender_EmptySelection(t *testing.T) {
	out, err := run(t, testConfig(t), "render", "--format", "json", "--year", "1999")
	if err != nil {
		t.Fatalf("render error = %v", err)
	}

	var vm core.ViewModel
	if err := json.Unmarshal([]byte(out), &vm); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if !vm.Empty() || vm.KPIs.MeanSalary != 0 {
		t.Errorf("view = %+v, want empty", vm.KPIs)
	}
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown format", []string{"render", "--format", "xml"}},
		{"bad page", []string{"render", "--page", "0"}},
		{"bad year", []string{"render", "--year", "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, testConfig(t), tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRender_MissingSource(t *testing.T) {
	cfg := testConfig(t)
	cfg.Dataset.Source = filepath.Join(t.TempDir(), "missing.csv")

	_, err := run(t, cfg, "render")
	if !errors.Is(err, dataset.ErrFetch) {
		t.Errorf("error = %v, want ErrFetch", err)
	}
}

func TestOptions(t *testing.T) {
	out, err := run(t, testConfig(t), "options", "--format", "json")
	if err != nil {
		t.Fatalf("options error = %v", err)
	}

	var choices core.FilterChoices
	if err := json.Unmarshal([]byte(out), &choices); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(choices.Years) != 2 || choices.Years[0] != 2023 {
		t.Errorf("Years = %v, want [2023 2022]", choices.Years)
	}

	out, err = run(t, testConfig(t), "options")
	if err != nil {
		t.Fatalf("options error = %v", err)
	}
	if !strings.Contains(out, "contrato: [integral freelancer]") {
		t.Errorf("table output = %q", out)
	}
}
