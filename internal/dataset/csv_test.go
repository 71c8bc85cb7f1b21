package dataset

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/JonMunkholm/salarydash/internal/core"
)

const sampleCSV = `ano,senioridade,contrato,tamanho_empresa,cargo,usd,remoto,residencia
2023,senior,integral,grande,Data Scientist,150000,remoto,US
2022,junior,integral,pequena,Data Analyst,60000,presencial,BR
2024.0,pleno,freelancer,media,ML Engineer,"$120,000",hibrido,DE
`

// ----------------------------------------------------------------------------
// ParseCSV Tests
// ----------------------------------------------------------------------------

func TestParseCSV(t *testing.T) {
	ds, err := ParseCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}
	if len(ds) != 3 {
		t.Fatalf("ParseCSV() rows = %d, want 3", len(ds))
	}

	want := core.Record{
		Year: 2023, Seniority: "senior", Contract: "integral", CompanySize: "grande",
		Role: "Data Scientist", USD: 150000, Remote: "remoto", Residence: "US",
	}
	if ds[0] != want {
		t.Errorf("row 0 = %+v, want %+v", ds[0], want)
	}
	if ds[2].Year != 2024 {
		t.Errorf("float year = %d, want 2024", ds[2].Year)
	}
	if ds[2].USD != 120000 {
		t.Errorf("formatted salary = %v, want 120000", ds[2].USD)
	}
}

func TestParseCSV_ReorderedAndExtraColumns(t *testing.T) {
	in := "extra,usd,cargo,ano,senioridade,contrato,tamanho_empresa,remoto,residencia\n" +
		"x,100,Role,2021,senior,integral,media,remoto,FR\n"

	ds, err := ParseCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}
	if ds[0].USD != 100 || ds[0].Role != "Role" || ds[0].Year != 2021 || ds[0].Residence != "FR" {
		t.Errorf("unexpected record %+v", ds[0])
	}
}

func TestParseCSV_BOMAndWhitespace(t *testing.T) {
	in := "\xEF\xBB\xBF" + strings.Replace(sampleCSV, "Data Scientist", "  Data Scientist  ", 1)

	ds, err := ParseCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}
	if ds[0].Year != 2023 {
		t.Errorf("year after BOM = %d, want 2023", ds[0].Year)
	}
	if ds[0].Role != "Data Scientist" {
		t.Errorf("role = %q, want trimmed", ds[0].Role)
	}
}

func TestParseCSV_Errors(t *testing.T) {
	header := "ano,senioridade,contrato,tamanho_empresa,cargo,usd,remoto,residencia\n"

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty input", "", ErrEmptySource},
		{"missing column", "ano,senioridade\n2023,senior\n", ErrMissingColumn},
		{"bad year", header + "abc,senior,integral,grande,DS,1,remoto,US\n", ErrInvalidRow},
		{"fractional year", header + "2023.5,senior,integral,grande,DS,1,remoto,US\n", ErrInvalidRow},
		{"bad salary", header + "2023,senior,integral,grande,DS,lots,remoto,US\n", ErrInvalidRow},
		{"negative salary", header + "2023,senior,integral,grande,DS,-5,remoto,US\n", ErrInvalidRow},
		{"wrong field count", header + "2023,senior\n", ErrInvalidRow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseCSV() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	ds, err := ParseCSV(strings.NewReader("ano,senioridade,contrato,tamanho_empresa,cargo,usd,remoto,residencia\n"))
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}
	if len(ds) != 0 {
		t.Errorf("rows = %d, want 0", len(ds))
	}
}

func TestParseCSV_ErrorMentionsLine(t *testing.T) {
	in := "ano,senioridade,contrato,tamanho_empresa,cargo,usd,remoto,residencia\n" +
		"2023,senior,integral,grande,DS,1,remoto,US\n" +
		"2023,senior,integral,grande,DS,oops,remoto,US\n"

	_, err := ParseCSV(strings.NewReader(in))
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error = %v, want mention of line 3", err)
	}
}

// ----------------------------------------------------------------------------
// WriteCSV Tests
// ----------------------------------------------------------------------------

func TestWriteCSV(t *testing.T) {
	ds, err := ParseCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, ds); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != strings.Join(core.Columns, ",")+",residencia_iso3" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[3] != "2024,pleno,freelancer,media,ML Engineer,120000,hibrido,DE,DEU" {
		t.Errorf("row = %q", lines[3])
	}

	back, err := ParseCSV(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("ParseCSV(WriteCSV()) error = %v", err)
	}
	if len(back) != len(ds) || back[2] != ds[2] {
		t.Errorf("round trip = %+v, want %+v", back, ds)
	}
}
