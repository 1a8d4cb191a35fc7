// frame.go
package wma

import (
	"github.com/llehouerou/go-wma/internal/bits"
	"github.com/llehouerou/go-wma/internal/output"
)

// decodeFrame decodes all blocks of one frame, converts the finished
// half of the overlap buffer to PCM at this frame's position in out,
// and shifts the overlap buffer up for the next frame.
//
// Ported from: WMACodec::decodeFrame.
func (d *Decoder) decodeFrame(r *bits.Reader, out []int16) error {
	d.framePos = 0
	d.curBlock = 0

	for {
		done, err := d.decodeBlock(r)
		if err != nil {
			return err
		}
		if done {
			break
		}
	}

	// Interleave the completed frame
	pcm := out[d.curFrame*d.channels*d.frameLen:]
	output.Interleave16(pcm, d.frameView, d.frameLen)

	// The upper half keeps accumulating into the next frame
	for i := 0; i < d.channels; i++ {
		copy(d.frameOut[i][:d.frameLen], d.frameOut[i][d.frameLen:])
	}

	return nil
}

// decodeBlock decodes one MDCT block: block length, stereo mode,
// channel presence, the spectral payload, and the windowed
// overlap-add. It returns true once the frame is complete.
//
// Ported from: WMACodec::decodeBlock.
func (d *Decoder) decodeBlock(r *bits.Reader) (bool, error) {
	if err := d.evalBlockLength(r); err != nil {
		return false, err
	}

	bSize := d.frameLenBits - d.blockLenBits

	msStereo := false
	if d.channels == 2 {
		msStereo = r.GetBit() != 0
	}

	var hasChannel [channelsMax]bool
	hasChannels := false
	for i := 0; i < d.channels; i++ {
		hasChannel[i] = r.GetBit() != 0
		if hasChannel[i] {
			hasChannels = true
		}
	}

	if hasChannels {
		if err := d.decodeChannels(r, bSize, msStereo, &hasChannel); err != nil {
			return false, err
		}
	}

	d.calculateIMDCT(bSize, msStereo, &hasChannel)

	if r.Err() {
		return false, errBitstreamOverrun
	}

	d.curBlock++
	d.framePos += d.blockLen

	return d.framePos >= d.frameLen, nil
}

// evalBlockLength updates the (prev, cur, next) block length state.
// With variable block lengths each block reads the next length from
// the stream; a reset (new superframe) additionally reads prev and
// cur. With fixed lengths every block spans the whole frame.
//
// Ported from: WMACodec::evalBlockLength.
func (d *Decoder) evalBlockLength(r *bits.Reader) error {
	if d.useVariableBlockLen {
		n := uint(intLog2(d.blockSizeCount-1) + 1)

		if d.resetBlockLengths {
			d.resetBlockLengths = false

			prev := int(r.GetBits(n))
			if prev >= d.blockSizeCount {
				d.log.Warn().Int("value", prev).Msg("wma: previous block length out of range")
				return errBlockLenOutOfRange
			}
			d.prevBlockLenBits = d.frameLenBits - prev

			cur := int(r.GetBits(n))
			if cur >= d.blockSizeCount {
				d.log.Warn().Int("value", cur).Msg("wma: block length out of range")
				return errBlockLenOutOfRange
			}
			d.blockLenBits = d.frameLenBits - cur
		} else {
			d.prevBlockLenBits = d.blockLenBits
			d.blockLenBits = d.nextBlockLenBits
		}

		next := int(r.GetBits(n))
		if next >= d.blockSizeCount {
			d.log.Warn().Int("value", next).Msg("wma: next block length out of range")
			return errBlockLenOutOfRange
		}
		d.nextBlockLenBits = d.frameLenBits - next
	} else {
		d.nextBlockLenBits = d.frameLenBits
		d.prevBlockLenBits = d.frameLenBits
		d.blockLenBits = d.frameLenBits
	}

	if d.frameLenBits-d.blockLenBits >= d.blockSizeCount {
		return errBlockLenOutOfRange
	}

	d.blockLen = 1 << uint(d.blockLenBits)
	if d.framePos+d.blockLen > d.frameLen {
		d.log.Warn().Int("framePos", d.framePos).Int("blockLen", d.blockLen).
			Msg("wma: frame length overflow")
		return errFrameOverflow
	}

	return nil
}

// calculateIMDCT runs the inverse transform for every coded channel
// and folds the result into the overlap buffer through the window.
//
// Ported from: WMACodec::calculateIMDCT.
func (d *Decoder) calculateIMDCT(bSize int, msStereo bool, hasChannel *[channelsMax]bool) {
	m := d.mdct[bSize]

	for i := 0; i < d.channels; i++ {
		n4 := d.blockLen / 2

		if hasChannel[i] {
			m.CalcIMDCT(d.out[:2*d.blockLen], d.coefs[i][:d.blockLen])
		} else if !(msStereo && i == 1) {
			for j := range d.out[:2*d.blockLen] {
				d.out[j] = 0
			}
		}

		index := d.frameLen/2 + d.framePos - n4
		d.window(d.frameOut[i][index:])
	}
}

// window multiplies the IMDCT output by the left and right half
// windows and accumulates it at out. Window sizes depend on the
// neighbouring block lengths so that overlapping squared windows
// always sum to one (MDCT reconstruction rule).
//
// Ported from: WMACodec::window.
func (d *Decoder) window(out []float32) {
	in := d.out

	// Left (overlap) part
	if d.blockLenBits <= d.prevBlockLenBits {
		bSize := d.frameLenBits - d.blockLenBits

		vectorFMulAdd(out, in, d.mdctWindow[bSize], out, d.blockLen)
	} else {
		blockLen := 1 << uint(d.prevBlockLenBits)
		n := (d.blockLen - blockLen) / 2

		bSize := d.frameLenBits - d.prevBlockLenBits

		vectorFMulAdd(out[n:], in[n:], d.mdctWindow[bSize], out[n:], blockLen)
		copy(out[n+blockLen:n+blockLen+n], in[n+blockLen:])
	}

	out = out[d.blockLen:]
	in = in[d.blockLen:]

	// Right (look-ahead) part
	if d.blockLenBits <= d.nextBlockLenBits {
		bSize := d.frameLenBits - d.blockLenBits

		vectorFMulReverse(out, in, d.mdctWindow[bSize], d.blockLen)
	} else {
		blockLen := 1 << uint(d.nextBlockLenBits)
		n := (d.blockLen - blockLen) / 2

		bSize := d.frameLenBits - d.nextBlockLenBits

		copy(out[:n], in[:n])
		vectorFMulReverse(out[n:], in[n:], d.mdctWindow[bSize], blockLen)
		for j := 0; j < n; j++ {
			out[n+blockLen+j] = 0
		}
	}
}
