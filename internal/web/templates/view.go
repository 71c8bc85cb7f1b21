// Package templates holds the templ components of the dashboard page.
//
// Components are written in .templ files and compiled with `templ generate`.
// This file prepares their input: chart geometry and display strings are
// computed here so the markup only places values.
package templates

import (
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/JonMunkholm/salarydash/internal/core"
)

//go:generate templ generate

// PageData is everything the dashboard page renders.
type PageData struct {
	Title   string
	View    core.ViewModel
	Choices core.FilterChoices

	// CompanySizeApplied is false when the company-size selection is shown
	// but does not constrain the results.
	CompanySizeApplied bool

	SessionID string
	Source    string
	LoadedAt  time.Time

	// Links preserve the current selection. PrevURL/NextURL are empty at
	// the ends of the detail table.
	PrevURL   string
	NextURL   string
	ExportURL string
	ResetURL  string
}

const (
	chartWidth  = 560
	barHeight   = 22
	barGap      = 6
	labelWidth  = 190
	valueWidth  = 80
	histHeight  = 220
	histPadding = 28
)

// remotePalette colours remote-work categories in order.
var remotePalette = []string{"#2563eb", "#16a34a", "#f59e0b", "#dc2626", "#7c3aed", "#0891b2"}

type kpiCard struct {
	Label string
	Value string
}

func kpiCards(k core.KPISet) []kpiCard {
	topRole := k.TopRole
	if topRole == "" {
		topRole = "—"
	}
	return []kpiCard{
		{"Salário Médio", core.FormatUSD(k.MeanSalary)},
		{"Salário Máximo", core.FormatUSD(k.MaxSalary)},
		{"Total de Registros", core.FormatCount(k.Count)},
		{"Cargo Mais Frequente", topRole},
	}
}

type checkbox struct {
	Value   string
	Checked bool
}

type filterGroup struct {
	Label   string
	Name    string
	Options []checkbox
}

func filterGroups(p PageData) []filterGroup {
	sel := p.View.Selection
	group := func(label, name string, options, selected []string) filterGroup {
		g := filterGroup{Label: label, Name: name}
		for _, opt := range options {
			g.Options = append(g.Options, checkbox{Value: opt, Checked: slices.Contains(selected, opt)})
		}
		return g
	}
	return []filterGroup{
		group("Ano", core.ColYear, itoas(p.Choices.Years), itoas(sel.Years)),
		group("Senioridade", core.ColSeniority, p.Choices.Seniorities, sel.Seniorities),
		group("Tipo de Contrato", core.ColContract, p.Choices.Contracts, sel.Contracts),
		group("Tamanho da Empresa", core.ColCompanySize, p.Choices.CompanySizes, sel.CompanySizes),
	}
}

// roleBar is one row of the top-roles chart in SVG user units.
type roleBar struct {
	Title  string
	Label  string
	Value  string
	Y      string
	TextY  string
	Width  string
	ValueX string
}

// roleBars lays out roles, which arrive ascending, largest on top.
func roleBars(roles []core.RoleSalary) []roleBar {
	maxMean := 0.0
	for _, r := range roles {
		maxMean = math.Max(maxMean, r.MeanSalary)
	}

	plot := float64(chartWidth - labelWidth - valueWidth)
	bars := make([]roleBar, 0, len(roles))
	for i := range roles {
		r := roles[len(roles)-1-i]
		y := i * (barHeight + barGap)
		w := 0.0
		if maxMean > 0 {
			w = plot * r.MeanSalary / maxMean
		}
		bars = append(bars, roleBar{
			Title:  r.Role + ": " + core.FormatUSD(r.MeanSalary) + " (" + strconv.Itoa(r.Count) + ")",
			Label:  truncate(r.Role, 28),
			Value:  core.FormatCompactUSD(r.MeanSalary),
			Y:      strconv.Itoa(y),
			TextY:  strconv.Itoa(y + barHeight - 6),
			Width:  num(w),
			ValueX: num(float64(labelWidth) + w + 6),
		})
	}
	return bars
}

func roleChartViewBox(n int) string {
	return viewBox(chartWidth, n*(barHeight+barGap))
}

type histBar struct {
	Title  string
	X      string
	Y      string
	Width  string
	Height string
}

func histBars(hist core.Histogram) []histBar {
	peak := 0
	for _, b := range hist.Bins {
		peak = max(peak, b.Count)
	}

	plotH := float64(histHeight - histPadding)
	binW := float64(chartWidth) / float64(len(hist.Bins))
	bars := make([]histBar, 0, len(hist.Bins))
	for i, b := range hist.Bins {
		barH := 0.0
		if peak > 0 {
			barH = plotH * float64(b.Count) / float64(peak)
		}
		bars = append(bars, histBar{
			Title:  core.FormatUSD(b.Low) + " – " + core.FormatUSD(b.High) + ": " + strconv.Itoa(b.Count),
			X:      num(float64(i)*binW + 0.5),
			Y:      num(plotH - barH),
			Width:  num(math.Max(binW-1, 0.5)),
			Height: num(barH),
		})
	}
	return bars
}

type remoteSegment struct {
	Category string
	Percent  string
	Count    string
	Fill     string
	X        string
	Width    string
}

func remoteSegments(cats []core.CategoryCount) []remoteSegment {
	segs := make([]remoteSegment, 0, len(cats))
	x := 0.0
	for i, c := range cats {
		w := float64(chartWidth) * c.Percent / 100
		segs = append(segs, remoteSegment{
			Category: c.Category,
			Percent:  core.FormatPercent(c.Percent),
			Count:    core.FormatCount(c.Count),
			Fill:     remotePalette[i%len(remotePalette)],
			X:        num(x),
			Width:    num(w),
		})
		x += w
	}
	return segs
}

type countryRow struct {
	Name  string
	ISO3  string
	Mean  string
	Count string
	Meter string
}

func countryRows(countries []core.CountrySalary) []countryRow {
	maxMean := 0.0
	for _, c := range countries {
		maxMean = math.Max(maxMean, c.MeanSalary)
	}

	rows := make([]countryRow, 0, len(countries))
	for _, c := range countries {
		pct := 0.0
		if maxMean > 0 {
			pct = 100 * c.MeanSalary / maxMean
		}
		rows = append(rows, countryRow{
			Name:  c.Name,
			ISO3:  c.ISO3,
			Mean:  core.FormatUSD(c.MeanSalary),
			Count: core.FormatCount(c.Count),
			Meter: num(pct),
		})
	}
	return rows
}

// detailCells formats one record in core.DetailColumns order.
func detailCells(r core.Record) []string {
	return []string{
		strconv.Itoa(r.Year), r.Seniority, r.Contract, r.CompanySize,
		r.Role, core.FormatUSD(r.USD), r.Remote, r.Residence, r.ResidenceISO3(),
	}
}

// numericColumn reports whether detail column i is right-aligned.
func numericColumn(i int) bool {
	return core.DetailColumns[i] == core.ColUSD
}

func pagerText(vm core.ViewModel) string {
	return "Página " + strconv.Itoa(vm.Page) + " de " + strconv.Itoa(vm.TotalPages) +
		" · " + core.FormatCount(vm.TotalRows) + " registros"
}

func viewBox(w, h int) string {
	return "0 0 " + strconv.Itoa(w) + " " + strconv.Itoa(h)
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}

func itoas(values []int) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.Itoa(v)
	}
	return out
}

// truncate shortens s to n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
