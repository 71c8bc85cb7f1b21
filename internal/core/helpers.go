package core

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// FormatUSD renders a salary as whole dollars with thousands separators,
// e.g. "$123,456".
func FormatUSD(v float64) string {
	return "$" + humanize.Comma(int64(math.Round(v)))
}

// FormatCount renders a row count with thousands separators.
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// FormatPercent renders a share with one decimal, e.g. "42.5%".
func FormatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64) + "%"
}

// FormatCompactUSD renders an axis label such as "$120k".
func FormatCompactUSD(v float64) string {
	if math.Abs(v) < 1000 {
		return "$" + strconv.FormatFloat(math.Round(v), 'f', 0, 64)
	}
	value, prefix := humanize.ComputeSI(v)
	return "$" + humanize.FtoaWithDigits(value, 1) + prefix
}
