// Package terminal renders a dashboard view model as text for the CLI.
package terminal

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/JonMunkholm/salarydash/internal/core"
	"github.com/pterm/pterm"
)

// Options tunes terminal output.
type Options struct {
	// NoColor strips ANSI styling, for pipes and tests.
	NoColor bool
	// Rows caps the detail table. Zero prints the view model's page as is.
	Rows int
}

// Render writes every dashboard section of vm to w.
func Render(w io.Writer, vm core.ViewModel, opts Options) error {
	if opts.NoColor {
		pterm.DisableStyling()
		defer pterm.EnableStyling()
	}

	sections := []func(core.ViewModel, Options) (string, error){
		renderKPIs,
		renderTopRoles,
		renderHistogram,
		renderRemote,
		renderCountries,
		renderRows,
	}
	for _, section := range sections {
		out, err := section(vm, opts)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, out); err != nil {
			return err
		}
	}
	return nil
}

func heading(title string) string {
	return pterm.DefaultSection.Sprint(title)
}

func warning(msg string) string {
	return pterm.Warning.Sprintln(msg)
}

func renderKPIs(vm core.ViewModel, _ Options) (string, error) {
	k := vm.KPIs
	topRole := k.TopRole
	if topRole == "" {
		topRole = "—"
	}

	box := func(label, value string) pterm.Panel {
		return pterm.Panel{Data: pterm.DefaultBox.WithTitle(label).Sprint(value)}
	}
	panels, err := pterm.DefaultPanel.WithPanels(pterm.Panels{{
		box("Salário Médio", ColorizeSalary(k.MeanSalary)),
		box("Salário Máximo", ColorizeSalary(k.MaxSalary)),
		box("Total de Registros", core.FormatCount(k.Count)),
		box("Cargo Mais Frequente", topRole),
	}}).Srender()
	if err != nil {
		return "", fmt.Errorf("render kpis: %w", err)
	}
	return heading("KPIs Principais") + panels + "\n", nil
}

func renderTopRoles(vm core.ViewModel, _ Options) (string, error) {
	out := heading("Top 10 cargos por salário médio")
	if len(vm.TopRoles) == 0 {
		return out + warning("Nenhum dado para exibir no gráfico"), nil
	}

	// Largest first reads better top-down in a terminal.
	bars := make(pterm.Bars, 0, len(vm.TopRoles))
	for i := len(vm.TopRoles) - 1; i >= 0; i-- {
		r := vm.TopRoles[i]
		bars = append(bars, pterm.Bar{
			Label: fmt.Sprintf("%-28s %9s", truncate(r.Role, 28), core.FormatCompactUSD(r.MeanSalary)),
			Value: int(math.Round(r.MeanSalary)),
		})
	}
	chart, err := pterm.DefaultBarChart.WithHorizontal().WithBars(bars).WithWidth(40).Srender()
	if err != nil {
		return "", fmt.Errorf("render top roles: %w", err)
	}
	return out + chart + "\n", nil
}

func renderHistogram(vm core.ViewModel, _ Options) (string, error) {
	out := heading("Distribuição de salários anuais")
	if vm.Histogram.Empty() {
		return out + warning("Nenhum dado para exibir no gráfico de distribuição"), nil
	}

	bars := make(pterm.Bars, 0, len(vm.Histogram.Bins))
	for _, b := range vm.Histogram.Bins {
		bars = append(bars, pterm.Bar{
			Label: fmt.Sprintf("%8s – %-8s", core.FormatCompactUSD(b.Low), core.FormatCompactUSD(b.High)),
			Value: b.Count,
		})
	}
	chart, err := pterm.DefaultBarChart.WithHorizontal().WithBars(bars).WithShowValue().WithWidth(40).Srender()
	if err != nil {
		return "", fmt.Errorf("render histogram: %w", err)
	}
	return out + chart + "\n", nil
}

func renderRemote(vm core.ViewModel, _ Options) (string, error) {
	out := heading("Proporção dos tipos de trabalho")
	if len(vm.Remote) == 0 {
		return out + warning("Nenhum dado para exibir no gráfico de tipos de trabalho"), nil
	}

	data := pterm.TableData{{"Tipo de trabalho", "Qtde", "%"}}
	for _, c := range vm.Remote {
		data = append(data, []string{c.Category, core.FormatCount(c.Count), core.FormatPercent(c.Percent)})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithRightAlignment().WithData(data).Srender()
	if err != nil {
		return "", fmt.Errorf("render remote counts: %w", err)
	}
	return out + table + "\n", nil
}

func renderCountries(vm core.ViewModel, _ Options) (string, error) {
	out := heading("Salário médio de " + vm.FocusRole + " por país")
	if len(vm.Countries) == 0 {
		return out + warning("Nenhum dado para exibir no gráfico de salários por país"), nil
	}

	data := pterm.TableData{{"País", "ISO3", "Salário médio (USD)", "Registros"}}
	for _, c := range vm.Countries {
		data = append(data, []string{c.Name, c.ISO3, ColorizeSalary(c.MeanSalary), core.FormatCount(c.Count)})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", fmt.Errorf("render countries: %w", err)
	}
	return out + table + "\n", nil
}

func renderRows(vm core.ViewModel, opts Options) (string, error) {
	out := heading("Dados detalhados")
	if vm.Empty() {
		return out + warning("Nenhum registro corresponde aos filtros selecionados"), nil
	}

	rows := vm.Rows
	if opts.Rows > 0 && len(rows) > opts.Rows {
		rows = rows[:opts.Rows]
	}

	data := pterm.TableData{core.DetailColumns}
	for _, r := range rows {
		data = append(data, []string{
			strconv.Itoa(r.Year), r.Seniority, r.Contract, r.CompanySize,
			r.Role, core.FormatUSD(r.USD), r.Remote, r.Residence, r.ResidenceISO3(),
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", fmt.Errorf("render rows: %w", err)
	}

	footer := fmt.Sprintf("Página %d de %d · %d de %s registros\n",
		vm.Page, vm.TotalPages, len(rows), core.FormatCount(vm.TotalRows))
	return out + table + "\n" + footer, nil
}

// ColorizeSalary formats a salary and colours it by band.
func ColorizeSalary(v float64) string {
	s := core.FormatUSD(v)
	switch {
	case v >= 200000:
		return pterm.Green(s)
	case v >= 100000:
		return pterm.LightGreen(s)
	case v >= 50000:
		return pterm.Yellow(s)
	default:
		return pterm.Red(s)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
