// helpers_test.go
//
// Test streams are synthesized with the same static tables the
// decoder reads, so every decode test is a true encode/decode round
// trip at the bitstream level.
package wma

import (
	"testing"

	"github.com/llehouerou/go-wma/internal/bits"
	"github.com/llehouerou/go-wma/internal/tables"
)

// coefParams returns the coefficient Huffman parameters the decoder
// selected, replicating the rate/bps table choice.
func coefParams(d *Decoder, tindex int) *tables.CoefHuffmanParam {
	bps := float64(d.bitRate) / float64(uint32(d.channels)*d.sampleRate)
	if d.channels == 2 {
		bps *= 1.6
	}

	set := 2
	if d.sampleRate >= 32000 {
		if bps < 0.72 {
			set = 0
		} else if bps < 1.16 {
			set = 1
		}
	}

	return &tables.CoefHuffmanParams[set*2+tindex]
}

// putEOB writes the end-of-block symbol of the selected table.
func putEOB(d *Decoder, w *bits.Writer, tindex int) {
	p := coefParams(d, tindex)
	w.PutBits(p.HuffCodes[1], uint(p.HuffBits[1]))
}

// putEscape writes the escape symbol of the selected table.
func putEscape(d *Decoder, w *bits.Writer, tindex int) {
	p := coefParams(d, tindex)
	w.PutBits(p.HuffCodes[0], uint(p.HuffBits[0]))
}

// putScaleDelta writes one exponent delta symbol (delta+60).
func putScaleDelta(w *bits.Writer, delta int) {
	sym := delta + 60
	w.PutBits(tables.ScaleHuffCodes[sym], uint(tables.ScaleHuffBits[sym]))
}

// writeExponents writes a flat exponent envelope for one channel of a
// block with size index bSize.
func writeExponents(d *Decoder, w *bits.Writer, bSize int) {
	if d.useExpHuffman {
		bands := d.exponentBands[bSize]
		if d.version == 1 {
			w.PutBits(20, 5) // exponent seed
			bands = bands[1:]
		}
		for range bands {
			putScaleDelta(w, 0)
		}
		return
	}

	// LSP mode: ten codebook indices
	for i := 0; i < lspCoefCount; i++ {
		if i == 0 || i >= 8 {
			w.PutBits(0, 3)
		} else {
			w.PutBits(0, 4)
		}
	}
}

// blockSpec drives the block length bits of one synthesized block.
// The raw values are block size indices (frameLenBits - blockLenBits).
type blockSpec struct {
	reset           bool
	prev, cur, next int
	spectral        func(d *Decoder, w *bits.Writer, tindex int)
}

// writeBlock writes one block with every channel coded and a flat
// exponent envelope. spectral defaults to an immediate end of block.
func writeBlock(d *Decoder, w *bits.Writer, bs blockSpec) {
	if d.useVariableBlockLen {
		n := uint(intLog2(d.blockSizeCount-1) + 1)
		if bs.reset {
			w.PutBits(uint32(bs.prev), n)
			w.PutBits(uint32(bs.cur), n)
		}
		w.PutBits(uint32(bs.next), n)
	}

	if d.channels == 2 {
		w.PutBit(0) // no mid/side
	}
	for i := 0; i < d.channels; i++ {
		w.PutBit(1) // channel coded
	}

	w.PutBits(60, 7) // total gain (terminates below 127)

	if d.useNoiseCoding {
		n := len(d.exponentHighBands[bs.cur])
		for i := 0; i < d.channels; i++ {
			for j := 0; j < n; j++ {
				w.PutBit(0) // high band not substituted
			}
		}
	}

	if bs.cur != 0 {
		w.PutBit(1) // short block: request fresh exponents
	}
	for i := 0; i < d.channels; i++ {
		writeExponents(d, w, bs.cur)
	}

	spectral := bs.spectral
	if spectral == nil {
		spectral = putEOB
	}
	for i := 0; i < d.channels; i++ {
		spectral(d, w, 0)
		if d.version == 1 && d.channels >= 2 {
			w.AlignByte()
		}
	}
}

// writeSilenceFrame writes one frame consisting of a single
// frame-length block with no spectral content.
func writeSilenceFrame(d *Decoder, w *bits.Writer, reset bool) {
	writeBlock(d, w, blockSpec{reset: reset})
}

// packetBytes pads the written bits to blockAlign bytes.
func packetBytes(t *testing.T, w *bits.Writer, blockAlign int) []byte {
	t.Helper()

	data := w.Bytes()
	if len(data) > blockAlign {
		t.Fatalf("packet spills over block align: %d > %d bytes", len(data), blockAlign)
	}
	return append(data, make([]byte, blockAlign-len(data))...)
}

// copyBits appends n bits read from src to dst.
func copyBits(dst *bits.Writer, src []byte, n int) {
	r := bits.NewReader(src)
	for i := 0; i < n; i++ {
		dst.PutBit(r.GetBit())
	}
}

// extraDataV2 builds v2 codec private data carrying the flag word.
func extraDataV2(flags uint16) []byte {
	return []byte{0, 0, 0, 0, byte(flags), byte(flags >> 8)}
}

// extraDataV1 builds v1 codec private data carrying the flag word.
func extraDataV1(flags uint16) []byte {
	return []byte{0, 0, byte(flags), byte(flags >> 8)}
}

// drain reads every queued sample from the decoder.
func drain(d *Decoder) []int16 {
	var out []int16
	buf := make([]int16, 777)
	for {
		n := d.ReadBuffer(buf)
		if n == 0 {
			return out
		}
		out = append(out, buf[:n]...)
	}
}
