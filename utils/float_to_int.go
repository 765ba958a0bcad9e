// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// QuantizeInt16 scales x by amplitude into the 16-bit signed range.
//
// The result is round(clamp(x, -1, 1) × amplitude × 32767). With amplitude in
// [0,1] it never leaves [-32767, 32767], so -32768 is never produced.
// NaN input maps to 0.
func QuantizeInt16(x, amplitude float64) int16 {
	if math.IsNaN(x) {
		return 0
	}

	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	v := math.Round(x * amplitude * math.MaxInt16)
	if v > math.MaxInt16 {
		v = math.MaxInt16
	} else if v < -math.MaxInt16 {
		v = -math.MaxInt16
	}

	return int16(v)
}
