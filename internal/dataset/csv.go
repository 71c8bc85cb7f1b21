package dataset

// csv.go parses the salary CSV into core records.
//
// Input is cleaned on the way in: a UTF-8 BOM is skipped, invalid UTF-8 is
// replaced, and surrounding whitespace is trimmed from every field. Columns
// are located by header name so extra or reordered columns are fine.

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/JonMunkholm/salarydash/internal/core"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// headerIndex maps lowercase column names to their position in a row.
type headerIndex map[string]int

// skipBOM returns a reader positioned after a leading UTF-8 BOM, if any.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if b, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(b, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}

// cleanField trims whitespace and replaces invalid UTF-8 with U+FFFD.
func cleanField(s string) string {
	return strings.TrimSpace(strings.ToValidUTF8(s, "�"))
}

// ParseCSV reads every row of a salary CSV.
// A file without even a header line returns ErrEmptySource. A header-only
// file is a valid, empty dataset.
func ParseCSV(r io.Reader) (core.Dataset, error) {
	reader := csv.NewReader(skipBOM(r))
	reader.ReuseRecord = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptySource
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx, err := indexHeader(header)
	if err != nil {
		return nil, err
	}

	var ds core.Dataset
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRow, err)
		}

		rec, err := buildRecord(row, idx)
		if err != nil {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		ds = append(ds, rec)
	}

	return ds, nil
}

// indexHeader locates every required column.
func indexHeader(header []string) (headerIndex, error) {
	idx := make(headerIndex, len(header))
	for i, name := range header {
		key := strings.ToLower(cleanField(name))
		if _, dup := idx[key]; !dup {
			idx[key] = i
		}
	}

	var missing []string
	for _, col := range core.Columns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return idx, nil
}

func (h headerIndex) get(row []string, col string) string {
	i := h[col]
	if i >= len(row) {
		return ""
	}
	return cleanField(row[i])
}

// buildRecord converts one CSV row into a Record.
func buildRecord(row []string, idx headerIndex) (core.Record, error) {
	yearStr := idx.get(row, core.ColYear)
	year, err := parseYear(yearStr)
	if err != nil {
		return core.Record{}, fmt.Errorf("%w: %s %q", ErrInvalidRow, core.ColYear, yearStr)
	}

	usdStr := idx.get(row, core.ColUSD)
	usd, err := ParseSalary(usdStr)
	if err != nil {
		return core.Record{}, fmt.Errorf("%w: %s %q: %v", ErrInvalidRow, core.ColUSD, usdStr, err)
	}

	return core.Record{
		Year:        year,
		Seniority:   idx.get(row, core.ColSeniority),
		Contract:    idx.get(row, core.ColContract),
		CompanySize: idx.get(row, core.ColCompanySize),
		Role:        idx.get(row, core.ColRole),
		USD:         usd,
		Remote:      idx.get(row, core.ColRemote),
		Residence:   idx.get(row, core.ColResidence),
	}, nil
}

// parseYear accepts "2023" and the float form "2023.0" some exports produce.
func parseYear(s string) (int, error) {
	if y, err := strconv.Atoi(s); err == nil {
		return y, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return 0, fmt.Errorf("not a whole number")
	}
	return int(f), nil
}

// WriteCSV writes records with the source column names followed by the
// resolved residence code. ParseCSV reads the output back, ignoring the
// derived column.
func WriteCSV(w io.Writer, records []core.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(core.DetailColumns); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write([]string{
			strconv.Itoa(r.Year),
			r.Seniority,
			r.Contract,
			r.CompanySize,
			r.Role,
			strconv.FormatFloat(r.USD, 'f', -1, 64),
			r.Remote,
			r.Residence,
			r.ResidenceISO3(),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
