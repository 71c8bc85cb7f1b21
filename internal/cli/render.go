package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/JonMunkholm/salarydash/internal/config"
	"github.com/JonMunkholm/salarydash/internal/core"
	"github.com/JonMunkholm/salarydash/internal/terminal"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// selectionFlags are the four filter dimensions. An unset flag selects
// every value of its dimension.
type selectionFlags struct {
	years        []string
	seniorities  []string
	contracts    []string
	companySizes []string
}

func (f *selectionFlags) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{Name: "year", Aliases: []string{"y"}, Usage: "Year to include (repeatable)", Category: "Filters", Destination: &f.years},
		&cli.StringSliceFlag{Name: "seniority", Usage: "Seniority to include (repeatable)", Category: "Filters", Destination: &f.seniorities},
		&cli.StringSliceFlag{Name: "contract", Usage: "Contract type to include (repeatable)", Category: "Filters", Destination: &f.contracts},
		&cli.StringSliceFlag{Name: "company-size", Usage: "Company size to include (repeatable)", Category: "Filters", Destination: &f.companySizes},
	}
}

// selection resolves the flags against the session's default selection.
func (f *selectionFlags) selection(sess *core.Session) (core.Selection, error) {
	sel := sess.DefaultSelection()
	if len(f.years) > 0 {
		years := make([]int, 0, len(f.years))
		for _, v := range f.years {
			y, err := strconv.Atoi(v)
			if err != nil {
				return core.Selection{}, fmt.Errorf("invalid filter value for --year: %q", v)
			}
			years = append(years, y)
		}
		sel.Years = core.NewSet(years...)
	}
	if len(f.seniorities) > 0 {
		sel.Seniorities = core.NewSet(f.seniorities...)
	}
	if len(f.contracts) > 0 {
		sel.Contracts = core.NewSet(f.contracts...)
	}
	if len(f.companySizes) > 0 {
		sel.CompanySizes = core.NewSet(f.companySizes...)
	}
	return sel, nil
}

func cmdRender(cfg *config.Config, src *sourceFlags) *cli.Command {
	var (
		sel       selectionFlags
		format    string
		page      int
		pageSize  int
		focusRole string
		ignoreCS  bool
		noColor   bool
		rows      int
	)

	return &cli.Command{
		Name:  "render",
		Usage: "Print KPIs, charts and detail rows for a filter selection",
		Flags: joinFlags(sel.Flags(), []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "Output format (table, json, yaml)", Value: formatTable, Destination: &format},
			&cli.IntFlag{Name: "page", Usage: "Detail table page (1-based)", Value: 1, Destination: &page},
			&cli.IntFlag{Name: "page-size", Usage: "Detail rows per page; 0 prints every row", Value: cfg.Dashboard.PageSize, Destination: &pageSize},
			&cli.StringFlag{Name: "focus-role", Usage: "Role for the per-country salary table", Value: cfg.Dashboard.FocusRole, Destination: &focusRole},
			&cli.BoolFlag{Name: "ignore-company-size", Usage: "Accept --company-size without constraining results", Value: !cfg.Dashboard.ApplyCompanySize, Destination: &ignoreCS},
			&cli.BoolFlag{Name: "no-color", Usage: "Disable coloured output", Destination: &noColor},
			&cli.IntFlag{Name: "rows", Usage: "Cap the detail rows printed in table format", Destination: &rows},
		}),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			if page < 1 {
				return fmt.Errorf("invalid page %d", page)
			}

			source, ds, err := src.load(ctx)
			if err != nil {
				return err
			}

			sess := core.NewSession(source.String(), ds, core.RenderOptions{
				Filter:    core.FilterOptions{ApplyCompanySize: !ignoreCS},
				FocusRole: focusRole,
				TopRoles:  cfg.Dashboard.TopRoles,
				Bins:      cfg.Dashboard.HistogramBins,
			})
			selection, err := sel.selection(sess)
			if err != nil {
				return err
			}

			vm := sess.Render(selection, page, pageSize)
			return write(c.Root().Writer, format, vm, func(w io.Writer) error {
				return terminal.Render(w, vm, terminal.Options{NoColor: noColor, Rows: rows})
			})
		},
	}
}

func cmdOptions(src *sourceFlags) *cli.Command {
	var format string

	return &cli.Command{
		Name:  "options",
		Usage: "List the values available for each filter",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "Output format (table, json, yaml)", Value: formatTable, Destination: &format},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			_, ds, err := src.load(ctx)
			if err != nil {
				return err
			}

			choices := core.Choices(ds)
			return write(c.Root().Writer, format, choices, func(w io.Writer) error {
				years := make([]string, len(choices.Years))
				for i, y := range choices.Years {
					years[i] = strconv.Itoa(y)
				}
				for _, dim := range []struct {
					name   string
					values []string
				}{
					{core.ColYear, years},
					{core.ColSeniority, choices.Seniorities},
					{core.ColContract, choices.Contracts},
					{core.ColCompanySize, choices.CompanySizes},
				} {
					if _, err := fmt.Fprintf(w, "%s: %v\n", dim.name, dim.values); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func checkFormat(format string) error {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
}

// write encodes v as JSON or YAML, or calls table for the text form.
func write(w io.Writer, format string, v any, table func(io.Writer) error) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return table(w)
	}
}
