package core

import "github.com/samber/lo"

// DefaultHistogramBins is the number of salary histogram bins.
const DefaultHistogramBins = 30

// SalaryHistogram partitions the salaries of view into exactly bins
// equal-width buckets spanning [min, max] of the view. The last bucket is
// closed so the maximum is counted. When every salary is equal the range is
// widened to [v-0.5, v+0.5]. An empty view returns a histogram with no bins.
func SalaryHistogram(view FilteredView, bins int) Histogram {
	if len(view) == 0 || bins <= 0 {
		return Histogram{}
	}

	salaries := lo.Map(view, func(r Record, _ int) float64 { return r.USD })
	low, high := lo.Min(salaries), lo.Max(salaries)
	h := Histogram{Min: low, Max: high}
	if low == high {
		low, high = low-0.5, high+0.5
	}

	width := (high - low) / float64(bins)
	h.Bins = make([]Bin, bins)
	for i := range h.Bins {
		h.Bins[i].Low = low + float64(i)*width
		h.Bins[i].High = low + float64(i+1)*width
	}
	// Pin the last edge so rounding cannot leave max outside the range.
	h.Bins[bins-1].High = high

	for _, v := range salaries {
		h.Bins[binIndex(v, low, width, bins)].Count++
	}
	return h
}

func binIndex(v, low, width float64, bins int) int {
	i := int((v - low) / width)
	if i < 0 {
		return 0
	}
	if i >= bins {
		return bins - 1
	}
	return i
}
