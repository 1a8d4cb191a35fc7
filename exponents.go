// exponents.go
package wma

import (
	"math"

	"github.com/llehouerou/go-wma/internal/bits"
	"github.com/llehouerou/go-wma/internal/tables"
)

// decodeExpHuffman decodes the exponent envelope as Huffman-coded
// deltas, one per exponent band, expanded through the power table.
// v1 seeds the running exponent with five raw bits and scales the
// first band from the seed alone.
//
// Ported from: WMACodec::decodeExpHuffman.
func (d *Decoder) decodeExpHuffman(r *bits.Reader, ch int) error {
	bands := d.exponentBands[d.frameLenBits-d.blockLenBits]
	exps := d.exponents[ch][:d.blockLen]

	maxScale := float32(0)
	pos := 0
	band := 0

	var lastExp int
	if d.version == 1 {
		lastExp = int(r.GetBits(5)) + 10

		v := tables.PowTab[lastExp+60]
		maxScale = v

		for n := int(bands[band]); n > 0; n-- {
			exps[pos] = v
			pos++
		}
		band++
	} else {
		lastExp = 36
	}

	for pos < d.blockLen {
		code := d.expHuffman.Symbol(r)
		if code < 0 {
			d.log.Warn().Msg("wma: exponent huffman invalid")
			return errHuffmanInvalid
		}

		// Same delta offset as the MPEG-4 AAC scalefactor code
		lastExp += code - 60
		if lastExp+60 < 0 || lastExp+60 >= len(tables.PowTab) {
			d.log.Warn().Int("exponent", lastExp).Msg("wma: exponent out of range")
			return errExponentOutOfRange
		}

		v := tables.PowTab[lastExp+60]
		if v > maxScale {
			maxScale = v
		}

		for n := int(bands[band]); n > 0; n-- {
			exps[pos] = v
			pos++
		}
		band++
	}

	d.maxExponent[ch] = maxScale
	return nil
}

// decodeExpLSP decodes the exponent envelope from ten line spectral
// pairs, the same idea Vorbis floors use. Indices 0, 8 and 9 are
// three bits wide, the rest four.
//
// Ported from: WMACodec::decodeExpLSP.
func (d *Decoder) decodeExpLSP(r *bits.Reader, ch int) error {
	var lspCoefs [lspCoefCount]float32

	for i := 0; i < lspCoefCount; i++ {
		var val uint32
		if i == 0 || i >= 8 {
			val = r.GetBits(3)
		} else {
			val = r.GetBits(4)
		}
		lspCoefs[i] = tables.LSPCodebook[i][val]
	}

	d.lspToCurve(d.exponents[ch][:d.blockLen], &d.maxExponent[ch], d.blockLen, &lspCoefs)
	return nil
}

// lspToCurve evaluates the LSP polynomial at every bin and converts
// the magnitude to an exponent with x^-0.25.
//
// Ported from: WMACodec::lspToCurve.
func (d *Decoder) lspToCurve(out []float32, valMax *float32, n int, lsp *[lspCoefCount]float32) {
	max := float32(0)

	for i := 0; i < n; i++ {
		p := float32(0.5)
		q := float32(0.5)
		w := d.lspCosTable[i]

		for j := 1; j < lspCoefCount; j += 2 {
			q *= w - lsp[j-1]
			p *= w - lsp[j]
		}

		p *= p * (2.0 - w)
		q *= q * (2.0 + w)

		v := d.powM14(p + q)
		if v > max {
			max = v
		}

		out[i] = v
	}

	*valMax = max
}

// powM14 approximates x^-0.25 by splitting the float32 representation
// into an exponent byte and the top mantissa bits, then interpolating
// linearly over the remaining mantissa.
//
// Ported from: WMACodec::pow_m1_4.
func (d *Decoder) powM14(x float32) float32 {
	u := math.Float32bits(x)

	e := u >> 23
	m := (u >> (23 - lspPowBits)) & ((1 << lspPowBits) - 1)

	// Interpolation scale t in [1, 2)
	t := math.Float32frombits((u<<lspPowBits)&((1<<23)-1) | 127<<23)

	a := d.lspPowMTable1[m]
	b := d.lspPowMTable2[m]

	return d.lspPowETable[e] * (a + b*t)
}
