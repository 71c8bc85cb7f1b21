package dataset

import (
	"errors"
	"math"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// numericRegex validates a cleaned numeric string: integers and decimals.
// pgtype.Numeric does not scan exponent forms, so they are rejected here.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

var (
	errNotNumeric = errors.New("invalid number")
	errNegative   = errors.New("salary must not be negative")
)

// ParseSalary converts an annual salary cell to float64.
// Currency symbols and thousands separators are stripped first. Empty,
// non-numeric, NaN, infinite and negative values are rejected.
func ParseSalary(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if !numericRegex.MatchString(s) {
		return 0, errNotNumeric
	}

	var n pgtype.Numeric
	if err := n.Scan(s); err != nil {
		return 0, errNotNumeric
	}
	if n.NaN || n.InfinityModifier != pgtype.Finite {
		return 0, errNotNumeric
	}

	f, err := n.Float64Value()
	if err != nil || !f.Valid {
		return 0, errNotNumeric
	}
	if err := checkSalary(f.Float64); err != nil {
		return 0, err
	}
	return f.Float64, nil
}

// checkSalary rejects values no salary can take.
func checkSalary(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errNotNumeric
	}
	if v < 0 {
		return errNegative
	}
	return nil
}
