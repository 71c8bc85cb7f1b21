package core

import (
	"math"
	"testing"
)

func TestSalaryHistogram(t *testing.T) {
	t.Run("empty view has no bins", func(t *testing.T) {
		h := SalaryHistogram(nil, DefaultHistogramBins)
		if !h.Empty() {
			t.Errorf("expected empty histogram, got %d bins", len(h.Bins))
		}
		if h.Edges() != nil {
			t.Errorf("Edges() = %v, want nil", h.Edges())
		}
	})

	t.Run("counts sum to view length", func(t *testing.T) {
		var view FilteredView
		for i := 0; i < 97; i++ {
			view = append(view, Record{USD: float64(15000 + i*3711)})
		}

		h := SalaryHistogram(view, DefaultHistogramBins)
		if len(h.Bins) != 30 {
			t.Fatalf("len(Bins) = %d, want 30", len(h.Bins))
		}
		if h.Total() != len(view) {
			t.Errorf("Total() = %d, want %d", h.Total(), len(view))
		}
		if h.Min != 15000 || h.Max != float64(15000+96*3711) {
			t.Errorf("range = [%v, %v], want [15000, %v]", h.Min, h.Max, 15000+96*3711)
		}
	})

	t.Run("bins are equal width and contiguous", func(t *testing.T) {
		view := FilteredView{{USD: 0}, {USD: 300}}
		h := SalaryHistogram(view, 30)

		edges := h.Edges()
		if len(edges) != 31 {
			t.Fatalf("len(Edges()) = %d, want 31", len(edges))
		}
		for i := 1; i < len(edges); i++ {
			if w := edges[i] - edges[i-1]; math.Abs(w-10) > 1e-9 {
				t.Errorf("bin %d width = %v, want 10", i-1, w)
			}
		}
		if h.Bins[0].Count != 1 || h.Bins[29].Count != 1 {
			t.Errorf("first/last counts = %d/%d, want 1/1", h.Bins[0].Count, h.Bins[29].Count)
		}
	})

	t.Run("maximum lands in the last bin", func(t *testing.T) {
		view := FilteredView{{USD: 10}, {USD: 20}, {USD: 20}}
		h := SalaryHistogram(view, 30)

		if h.Bins[29].Count != 2 {
			t.Errorf("last bin count = %d, want 2", h.Bins[29].Count)
		}
		if h.Bins[29].High != 20 {
			t.Errorf("last edge = %v, want 20", h.Bins[29].High)
		}
	})

	t.Run("single distinct value widens the range", func(t *testing.T) {
		view := FilteredView{{USD: 5000}, {USD: 5000}}
		h := SalaryHistogram(view, 30)

		if len(h.Bins) != 30 {
			t.Fatalf("len(Bins) = %d, want 30", len(h.Bins))
		}
		if h.Bins[0].Low != 4999.5 || h.Bins[29].High != 5000.5 {
			t.Errorf("edges = [%v, %v], want [4999.5, 5000.5]", h.Bins[0].Low, h.Bins[29].High)
		}
		if h.Total() != 2 {
			t.Errorf("Total() = %d, want 2", h.Total())
		}
		if h.Bins[15].Count != 2 {
			t.Errorf("middle bin count = %d, want 2", h.Bins[15].Count)
		}
	})
}
