// core/volume/quantize_test.go
package volume

import (
	"math"
	"testing"
)

func TestQuantize(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "already on step", in: 0.5, want: 0.5},
		{name: "round down", in: 0.51, want: 0.5},
		{name: "round up", in: 0.52, want: 0.525},
		{name: "below half step", in: 0.012, want: 0.0},
		{name: "above half step", in: 0.013, want: 0.025},
		{name: "zero", in: 0, want: 0},
		{name: "typical dilution", in: 10 * 5.0 / 100.0, want: 0.5},
		{name: "sub-quantum", in: 10 * 0.1 / 100.0, want: 0.0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Quantize(tc.in)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("Quantize(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestQuantizeIdempotent(t *testing.T) {
	for v := 0.0; v < 5.0; v += 0.013 {
		q := Quantize(v)
		if qq := Quantize(q); qq != q {
			t.Fatalf("Quantize not idempotent at %v: %v then %v", v, q, qq)
		}
	}
}

func TestQuantizeOnGrid(t *testing.T) {
	for v := 0.0; v < 5.0; v += 0.017 {
		q := Quantize(v)
		n := q / Step
		if math.Abs(n-math.Round(n)) > 1e-6 {
			t.Fatalf("Quantize(%v) = %v is not a multiple of %v", v, q, Step)
		}
		// 3-decimal precision: scaling by 1000 must land on an integer.
		m := q * 1000
		if math.Abs(m-math.Round(m)) > 1e-6 {
			t.Fatalf("Quantize(%v) = %v carries sub-millistep digits", v, q)
		}
	}
}

func TestNanoliters(t *testing.T) {
	if got := Nanoliters(0.5); got != 500 {
		t.Fatalf("Nanoliters(0.5) = %v, want 500", got)
	}
	if got := Nanoliters(2.5); got != 2500 {
		t.Fatalf("Nanoliters(2.5) = %v, want 2500", got)
	}
}
