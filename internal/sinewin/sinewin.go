// Package sinewin provides the sine MDCT half-windows.
package sinewin

import "math"

// Window returns the rising half of the sine MDCT window for a block
// of n samples: sin((i+0.5)*pi/(2n)) for i in [0,n). The falling half
// is the same table read in reverse, so overlapping left and right
// halves of equal-sized blocks satisfy sin^2 + cos^2 = 1, the MDCT
// reconstruction rule.
func Window(n int) []float32 {
	w := make([]float32, n)
	for i := range w {
		w[i] = float32(math.Sin((float64(i) + 0.5) * math.Pi / float64(2*n)))
	}
	return w
}
