// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestQuantizeInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     float64
		amplitude float64
		want      int16
	}{
		{name: "zero", input: 0.0, amplitude: 1, want: 0},
		{name: "max positive", input: 1.0, amplitude: 1, want: math.MaxInt16},
		{name: "max negative", input: -1.0, amplitude: 1, want: -math.MaxInt16},
		{name: "half positive", input: 0.5, amplitude: 1, want: 16384}, // 16383.5 rounds away from zero
		{name: "half negative", input: -0.5, amplitude: 1, want: -16384},
		{name: "quarter positive", input: 0.25, amplitude: 1, want: 8192}, // 8191.75
		{name: "small positive", input: 0.001, amplitude: 1, want: 33},    // 32.767
		{name: "small negative", input: -0.001, amplitude: 1, want: -33},
		{name: "fixture amplitude peak", input: 1.0, amplitude: 0.3, want: 9830}, // 9830.1
		{name: "fixture amplitude trough", input: -1.0, amplitude: 0.3, want: -9830},
		{name: "zero amplitude", input: 0.9, amplitude: 0, want: 0},
		{name: "clamp over max", input: 1.5, amplitude: 1, want: math.MaxInt16},
		{name: "clamp over min", input: -1.5, amplitude: 1, want: -math.MaxInt16},
		{name: "clamp way over max", input: 100.0, amplitude: 0.5, want: 16384},
		{name: "clamp way under min", input: -100.0, amplitude: 1, want: -math.MaxInt16},
		{name: "positive infinity", input: math.Inf(1), amplitude: 1, want: math.MaxInt16},
		{name: "negative infinity", input: math.Inf(-1), amplitude: 1, want: -math.MaxInt16},
		{name: "NaN", input: math.NaN(), amplitude: 1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := QuantizeInt16(tt.input, tt.amplitude)
			if got != tt.want {
				t.Errorf("QuantizeInt16(%v, %v) = %v, want %v", tt.input, tt.amplitude, got, tt.want)
			}
		})
	}
}

// TestQuantizeInt16Range tests full range conversion never reaches -32768
func TestQuantizeInt16Range(t *testing.T) {
	t.Parallel()

	for _, amp := range []float64{0, 0.1, 0.3, 0.5, 0.999, 1} {
		for f := -1.5; f <= 1.5; f += 0.001 {
			got := QuantizeInt16(f, amp)
			if got < -math.MaxInt16 {
				t.Fatalf("QuantizeInt16(%v, %v) = %v, below -32767", f, amp, got)
			}
		}
	}
}

// TestQuantizeInt16Symmetry tests that conversion is symmetric
func TestQuantizeInt16Symmetry(t *testing.T) {
	t.Parallel()

	testVals := []float64{0.1, 0.25, 0.5, 0.75, 0.9, 0.99, 1.0}

	for _, val := range testVals {
		pos := QuantizeInt16(val, 0.3)
		neg := QuantizeInt16(-val, 0.3)

		if pos != -neg {
			t.Errorf("QuantizeInt16 not symmetric: +%v=%v, -%v=%v", val, pos, val, neg)
		}
	}
}

// TestQuantizeInt16Monotonic tests that function is monotonic
func TestQuantizeInt16Monotonic(t *testing.T) {
	t.Parallel()

	prev := QuantizeInt16(-1.0, 1)

	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := QuantizeInt16(f, 1)
		if curr < prev {
			t.Errorf("QuantizeInt16 not monotonic: f=%v gives %v, but previous was %v", f, curr, prev)
		}
		prev = curr
	}
}

func BenchmarkQuantizeInt16(b *testing.B) {
	samples := make([]float64, 48000)
	out := make([]int16, 48000)
	for i := range samples {
		samples[i] = math.Sin(float64(i) * 0.1)
	}

	b.ReportAllocs()

	for b.Loop() {
		for j := range samples {
			out[j] = QuantizeInt16(samples[j], 0.3)
		}
	}
}

// TestQuantizeInt16_ZeroAllocs verifies no heap allocations
func TestQuantizeInt16_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = QuantizeInt16(0.5, 0.3)
	})

	if allocs > 0 {
		t.Errorf("QuantizeInt16 allocated %v times, want 0", allocs)
	}
}
