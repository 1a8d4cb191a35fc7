// channels.go
package wma

import (
	"github.com/llehouerou/go-wma/internal/bits"
)

// decodeChannels decodes the spectral payload of one block for every
// coded channel: total gain, noise flags and gains, exponents,
// run-level coefficients, and finally the MDCT input synthesis plus
// the mid/side butterfly.
//
// Ported from: WMACodec::decodeChannels.
func (d *Decoder) decodeChannels(r *bits.Reader, bSize int, msStereo bool,
	hasChannel *[channelsMax]bool) error {

	totalGain := readTotalGain(r)
	coefBitCount := totalGainToBits(totalGain)

	var coefCount [channelsMax]int
	coefN := d.coefsEnd[bSize] - d.coefsStart
	for i := 0; i < d.channels; i++ {
		coefCount[i] = coefN
	}

	if err := d.decodeNoise(r, bSize, hasChannel, &coefCount); err != nil {
		return err
	}

	if err := d.decodeExponents(r, bSize, hasChannel); err != nil {
		return err
	}

	if err := d.decodeSpectralCoef(r, msStereo, hasChannel, &coefCount, coefBitCount); err != nil {
		return err
	}

	mdctNorm := d.normalizedMDCTLength()

	d.calculateMDCTCoefficients(bSize, hasChannel, &coefCount, totalGain, mdctNorm)

	if msStereo && hasChannel[1] {
		// Mid/side butterfly before the MDCT. A missing first channel
		// decodes as silence and still participates.
		if !hasChannel[0] {
			for j := 0; j < d.blockLen; j++ {
				d.coefs[0][j] = 0
			}
			hasChannel[0] = true
		}

		butterflyFloats(d.coefs[0][:d.blockLen], d.coefs[1][:d.blockLen])
	}

	return nil
}

// decodeNoise reads, per coded channel, one flag per high band
// selecting noise substitution, then the substituted bands' gains:
// seven raw bits for the first band, Huffman deltas after that.
// Substituted bands transmit no coefficients, so their sizes come off
// the channel's coefficient count.
//
// Ported from: WMACodec::decodeNoise.
func (d *Decoder) decodeNoise(r *bits.Reader, bSize int,
	hasChannel *[channelsMax]bool, coefCount *[channelsMax]int) error {

	if !d.useNoiseCoding {
		return nil
	}

	n := len(d.exponentHighBands[bSize])

	for i := 0; i < d.channels; i++ {
		if !hasChannel[i] {
			continue
		}

		for j := 0; j < n; j++ {
			coded := r.GetBit() != 0
			d.highBandCoded[i][j] = coded

			if coded {
				coefCount[i] -= d.exponentHighBands[bSize][j]
			}
		}
	}

	for i := 0; i < d.channels; i++ {
		if !hasChannel[i] {
			continue
		}

		first := true
		val := 0

		for j := 0; j < n; j++ {
			if !d.highBandCoded[i][j] {
				continue
			}

			if first {
				val = int(r.GetBits(7)) - 19
				first = false
			} else {
				code := d.hgainHuffman.Symbol(r)
				if code < 0 {
					d.log.Warn().Msg("wma: high band gain huffman invalid")
					return errHuffmanInvalid
				}
				val += code - 18
			}

			d.highBandValues[i][j] = val
		}
	}

	return nil
}

// decodeExponents re-decodes the exponent envelope when the block
// spans the whole frame or the stream asks for it with a one-bit
// flag; shorter blocks may reuse the previous envelope.
//
// Ported from: WMACodec::decodeExponents.
func (d *Decoder) decodeExponents(r *bits.Reader, bSize int, hasChannel *[channelsMax]bool) error {
	if !(d.blockLenBits == d.frameLenBits || r.GetBit() != 0) {
		return nil
	}

	for i := 0; i < d.channels; i++ {
		if !hasChannel[i] {
			continue
		}

		if d.useExpHuffman {
			if err := d.decodeExpHuffman(r, i); err != nil {
				return err
			}
		} else {
			if err := d.decodeExpLSP(r, i); err != nil {
				return err
			}
		}

		d.exponentsBSize[i] = bSize
	}

	return nil
}

// decodeSpectralCoef run-level decodes the coefficients of every
// coded channel. The second channel of a mid/side block uses the
// lower-energy Huffman table. v1 stereo streams byte-align between
// channels.
//
// Ported from: WMACodec::decodeSpectralCoef.
func (d *Decoder) decodeSpectralCoef(r *bits.Reader, msStereo bool,
	hasChannel *[channelsMax]bool, coefCount *[channelsMax]int, coefBitCount int) error {

	for i := 0; i < d.channels; i++ {
		if hasChannel[i] {
			tindex := 0
			if i == 1 && msStereo {
				tindex = 1
			}

			ptr := d.coefs1[i][:d.blockLen]
			for j := range ptr {
				ptr[j] = 0
			}

			err := d.decodeRunLevel(r, tindex, ptr, coefCount[i], coefBitCount)
			if err != nil {
				return err
			}
		}

		if d.version == 1 && d.channels >= 2 {
			if n := r.Pos() & 7; n != 0 {
				d.log.Debug().Int("bits", n).Msg("wma: mid-byte channel boundary, aligning")
			}
			r.AlignByte()
		}
	}

	return nil
}

// decodeRunLevel decodes the RLE+Huffman coefficient stream into ptr
// until end of block or numCoefs coefficients. Symbol 0 escapes to a
// raw level: v1 reads a fixed-width level and run, v2 reads a
// variable-width level followed by a 3-bit-prefix-coded run extension
// where the all-ones prefix is reserved.
//
// Ported from: WMACodec::decodeRunLevel.
func (d *Decoder) decodeRunLevel(r *bits.Reader, tindex int, ptr []float32,
	numCoefs, coefBitCount int) error {

	huff := d.coefHuffman[tindex]
	runTable := d.coefHuffmanRunTable[tindex]
	levelTable := d.coefHuffmanLevelTable[tindex]

	coefMask := d.blockLen - 1

	offset := 0
	for ; offset < numCoefs; offset++ {
		code := huff.Symbol(r)
		if code < 0 {
			d.log.Warn().Msg("wma: coefficient huffman invalid")
			return errHuffmanInvalid
		}

		switch {
		case code > 1:
			// Run/level pair with a trailing sign bit
			sign := float32(-1)
			if r.GetBit() != 0 {
				sign = 1
			}

			offset += int(runTable[code])
			ptr[offset&coefMask] = levelTable[code] * sign

		case code == 1:
			// End of block
			return nil

		default:
			// Escape
			var level int32

			if d.version == 1 {
				level = int32(r.GetBits(uint(coefBitCount)))
				offset += int(r.GetBits(uint(d.frameLenBits)))
			} else {
				level = int32(getLargeVal(r))

				if r.GetBit() != 0 {
					if r.GetBit() != 0 {
						if r.GetBit() != 0 {
							d.log.Warn().Msg("wma: broken escape sequence")
							return errBrokenEscape
						}
						offset += int(r.GetBits(uint(d.frameLenBits))) + 4
					} else {
						offset += int(r.GetBits(2)) + 1
					}
				}
			}

			sign := int32(r.GetBit()) - 1
			ptr[offset&coefMask] = float32((level ^ sign) - sign)
		}
	}

	// EOB can be omitted; a slight overshoot is not fatal
	if offset > numCoefs {
		d.log.Warn().Int("offset", offset).Int("numCoefs", numCoefs).
			Msg("wma: overflow in spectral RLE, ignoring")
	}

	return nil
}

// readTotalGain reads the per-block gain: 7-bit groups accumulate
// onto 1 until a group below 127 terminates the sequence.
func readTotalGain(r *bits.Reader) int {
	totalGain := 1

	v := 127
	for v == 127 {
		v = int(r.GetBits(7))
		totalGain += v
	}

	return totalGain
}

// totalGainToBits maps the total gain to the escape level width.
func totalGainToBits(totalGain int) int {
	switch {
	case totalGain < 15:
		return 13
	case totalGain < 32:
		return 12
	case totalGain < 40:
		return 11
	case totalGain < 45:
		return 10
	default:
		return 9
	}
}

// getLargeVal reads an escape level of 8, 16, 24 or 31 bits, the
// width picked by up to three prefix bits. Consumes at most 34 bits.
func getLargeVal(r *bits.Reader) uint32 {
	count := uint(8)
	if r.GetBit() != 0 {
		count += 8

		if r.GetBit() != 0 {
			count += 8

			if r.GetBit() != 0 {
				count += 7
			}
		}
	}

	return r.GetBits(count)
}
