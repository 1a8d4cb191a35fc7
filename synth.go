// synth.go
package wma

import "math"

// butterflyFloats applies the mid/side butterfly in place:
// v1 becomes v1+v2, v2 becomes v1-v2.
func butterflyFloats(v1, v2 []float32) {
	for i := range v1 {
		t := v1[i] - v2[i]
		v1[i] += v2[i]
		v2[i] = t
	}
}

// vectorFMulAdd computes dst[i] = src0[i]*src1[i] + src2[i].
func vectorFMulAdd(dst, src0, src1, src2 []float32, n int) {
	for i := 0; i < n; i++ {
		dst[i] = src0[i]*src1[i] + src2[i]
	}
}

// vectorFMulReverse computes dst[i] = src0[i] * src1[n-1-i].
func vectorFMulReverse(dst, src0, src1 []float32, n int) {
	for i := 0; i < n; i++ {
		dst[i] = src0[i] * src1[n-1-i]
	}
}

// normalizedMDCTLength returns the inverse transform normalization:
// 2/blockLen, times sqrt(blockLen/2) for v1.
func (d *Decoder) normalizedMDCTLength() float32 {
	n4 := d.blockLen / 2

	mdctNorm := 1.0 / float32(n4)
	if d.version == 1 {
		mdctNorm *= float32(math.Sqrt(float64(n4)))
	}

	return mdctNorm
}

// calculateMDCTCoefficients combines the run-level coefficients, the
// exponent envelope, the block gain and (in noise coding mode) the
// noise table into the MDCT input of every coded channel.
//
// Exponents may stem from a larger block than the current one, so
// every exponent lookup maps the coefficient index through
// (j<<bSize)>>eSize.
//
// Ported from: WMACodec::calculateMDCTCoefficients.
func (d *Decoder) calculateMDCTCoefficients(bSize int, hasChannel *[channelsMax]bool,
	coefCount *[channelsMax]int, totalGain int, mdctNorm float32) {

	for i := 0; i < d.channels; i++ {
		if !hasChannel[i] {
			continue
		}

		coefs := d.coefs[i]
		coefs1 := d.coefs1[i]
		exps := d.exponents[i]

		eSize := uint(d.exponentsBSize[i])
		shift := uint(bSize)

		mult := float32(math.Pow(10, float64(totalGain)*0.05)) / d.maxExponent[i] * mdctNorm

		if !d.useNoiseCoding {
			pos := 0
			for j := 0; j < d.coefsStart; j++ {
				coefs[pos] = 0
				pos++
			}

			for j := 0; j < coefCount[i]; j++ {
				coefs[pos] = coefs1[j] * exps[(j<<shift)>>eSize] * mult
				pos++
			}

			for pos < d.blockLen {
				coefs[pos] = 0
				pos++
			}
			continue
		}

		pos := 0

		// Very low frequencies are never transmitted: pure noise
		for j := 0; j < d.coefsStart; j++ {
			coefs[pos] = d.noiseTable[d.noiseIndex] * exps[(j<<shift)>>eSize] * mult
			d.noiseIndex = (d.noiseIndex + 1) & (noiseTabSize - 1)
			pos++
		}

		// Mean exponent power of each substituted high band
		var expPower [highBandSizeMax]float32
		for k := range expPower {
			expPower[k] = 1
		}

		n1 := len(d.exponentHighBands[bSize])
		eoff := (d.highBandStart[bSize] << shift) >> eSize

		lastHighBand := 0
		for k := 0; k < n1; k++ {
			n := d.exponentHighBands[bSize][k]

			if d.highBandCoded[i][k] {
				e2 := float32(0)
				for j := 0; j < n; j++ {
					v := exps[eoff+(j<<shift)>>eSize]
					e2 += v * v
				}
				expPower[k] = e2 / float32(n)
				lastHighBand = k
			}

			eoff += (n << shift) >> eSize
		}

		// Main and high frequencies. Band -1 is the regular coded
		// range below the first high band.
		eoff = (d.coefsStart << shift) >> eSize
		ci := 0

		for k := -1; k < n1; k++ {
			var n int
			if k < 0 {
				n = d.highBandStart[bSize] - d.coefsStart
			} else {
				n = d.exponentHighBands[bSize][k]
			}

			if k >= 0 && d.highBandCoded[i][k] {
				// Noise at the transmitted power
				mult1 := float32(math.Sqrt(float64(expPower[k] / expPower[lastHighBand])))
				mult1 *= float32(math.Pow(10, float64(d.highBandValues[i][k])*0.05))
				mult1 /= d.maxExponent[i] * d.noiseMult
				mult1 *= mdctNorm

				for j := 0; j < n; j++ {
					noise := d.noiseTable[d.noiseIndex]
					d.noiseIndex = (d.noiseIndex + 1) & (noiseTabSize - 1)

					coefs[pos] = noise * exps[eoff+(j<<shift)>>eSize] * mult1
					pos++
				}
			} else {
				// Coded values plus dithering noise
				for j := 0; j < n; j++ {
					noise := d.noiseTable[d.noiseIndex]
					d.noiseIndex = (d.noiseIndex + 1) & (noiseTabSize - 1)

					coefs[pos] = (coefs1[ci] + noise) * exps[eoff+(j<<shift)>>eSize] * mult
					ci++
					pos++
				}
			}

			eoff += (n << shift) >> eSize
		}

		// Very high frequencies: noise at the last envelope value
		n := d.blockLen - d.coefsEnd[bSize]
		mult1 := mult * exps[eoff+(-(1<<shift))>>eSize]

		for j := 0; j < n; j++ {
			coefs[pos] = d.noiseTable[d.noiseIndex] * mult1
			d.noiseIndex = (d.noiseIndex + 1) & (noiseTabSize - 1)
			pos++
		}
	}
}
