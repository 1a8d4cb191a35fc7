// frame_test.go
package wma

import (
	"math"
	"testing"

	"github.com/llehouerou/go-wma/internal/bits"
)

// newSilenceDecoder builds the stock test stream: v2 mono 22050 Hz at
// 32 kbps, Huffman exponents, no reservoir, no noise coding.
func newSilenceDecoder(t *testing.T) *Decoder {
	t.Helper()

	d, err := NewDecoder(2, 22050, 1, 32000, 256, extraDataV2(0x0001))
	if err != nil {
		t.Fatalf("NewDecoder() error: %v", err)
	}
	if d.useNoiseCoding {
		t.Fatal("unexpected noise coding")
	}
	return d
}

func TestDecode_SilenceFrame(t *testing.T) {
	d := newSilenceDecoder(t)

	w := bits.NewWriter()
	writeSilenceFrame(d, w, false)
	d.QueuePacket(packetBytes(t, w, 256))

	got := drain(d)
	if len(got) != d.frameLen {
		t.Fatalf("decoded %d samples, want %d", len(got), d.frameLen)
	}
	for i, s := range got {
		if s != 0 {
			t.Fatalf("sample %d = %d, want 0", i, s)
		}
	}
}

func TestDecode_OneFramePerPacket(t *testing.T) {
	d := newSilenceDecoder(t)

	for i := 0; i < 3; i++ {
		w := bits.NewWriter()
		writeSilenceFrame(d, w, false)
		d.QueuePacket(packetBytes(t, w, 256))
	}

	if got := drain(d); len(got) != 3*d.frameLen {
		t.Fatalf("decoded %d samples, want %d", len(got), 3*d.frameLen)
	}
}

func TestDecode_EmptyPacketKeepsDecoderUsable(t *testing.T) {
	d := newSilenceDecoder(t)

	d.QueuePacket(nil)
	d.QueuePacket([]byte{1, 2, 3})

	if !d.EndOfData() {
		t.Fatal("undersized packets produced output")
	}

	w := bits.NewWriter()
	writeSilenceFrame(d, w, false)
	d.QueuePacket(packetBytes(t, w, 256))

	if got := drain(d); len(got) != d.frameLen {
		t.Fatalf("decoded %d samples after bad packets, want %d", len(got), d.frameLen)
	}
}

func TestDecode_GarbagePacketIsDroppedAndRecovered(t *testing.T) {
	d := newSilenceDecoder(t)

	garbage := make([]byte, 256)
	for i := range garbage {
		garbage[i] = 0xFF
	}
	d.QueuePacket(garbage)

	if !d.EndOfData() {
		t.Fatal("garbage packet produced output")
	}

	w := bits.NewWriter()
	writeSilenceFrame(d, w, false)
	d.QueuePacket(packetBytes(t, w, 256))

	if got := drain(d); len(got) != d.frameLen {
		t.Fatalf("decoded %d samples after garbage, want %d", len(got), d.frameLen)
	}
}

func TestDecode_ExponentOutOfRangeDropsPacket(t *testing.T) {
	d := newSilenceDecoder(t)

	w := bits.NewWriter()
	w.PutBit(1)          // channel coded
	w.PutBits(60, 7)     // total gain
	putScaleDelta(w, 60) // 36 -> 96: index 156 is outside the power table
	d.QueuePacket(packetBytes(t, w, 256))

	if !d.EndOfData() {
		t.Fatal("out-of-range exponent produced output")
	}
}

func TestDecode_LSPExponents(t *testing.T) {
	// Flag word without bit 0: exponents come as line spectral pairs
	d, err := NewDecoder(2, 22050, 1, 32000, 256, extraDataV2(0x0000))
	if err != nil {
		t.Fatalf("NewDecoder() error: %v", err)
	}
	if d.useExpHuffman {
		t.Fatal("useExpHuffman = true without the flag")
	}

	w := bits.NewWriter()
	writeSilenceFrame(d, w, false)
	d.QueuePacket(packetBytes(t, w, 256))

	got := drain(d)
	if len(got) != d.frameLen {
		t.Fatalf("decoded %d samples, want %d", len(got), d.frameLen)
	}
	for i, s := range got {
		if s != 0 {
			t.Fatalf("sample %d = %d, want 0", i, s)
		}
	}
	if d.maxExponent[0] <= 0 {
		t.Errorf("maxExponent = %g, want > 0", d.maxExponent[0])
	}
}

func TestDecode_V1Stereo16000(t *testing.T) {
	d, err := NewDecoder(1, 16000, 2, 24000, 512, extraDataV1(0x0001))
	if err != nil {
		t.Fatalf("NewDecoder() error: %v", err)
	}
	if !d.useNoiseCoding {
		t.Fatal("16000 Hz must enable noise coding")
	}

	for i := 0; i < 2; i++ {
		w := bits.NewWriter()
		writeSilenceFrame(d, w, false)
		d.QueuePacket(packetBytes(t, w, 512))
	}

	got := drain(d)
	if len(got) != 2*2*d.frameLen {
		t.Fatalf("decoded %d samples, want %d", len(got), 2*2*d.frameLen)
	}

	if d.noiseIndex < 0 || d.noiseIndex >= noiseTabSize {
		t.Errorf("noiseIndex = %d outside [0, %d)", d.noiseIndex, noiseTabSize)
	}
	if d.noiseIndex == 0 {
		t.Error("noiseIndex did not advance through the noise path")
	}
}

func TestDecode_NoiseSubstitutedHighBand(t *testing.T) {
	d, err := NewDecoder(2, 8000, 1, 5000, 256, extraDataV2(0x0001))
	if err != nil {
		t.Fatalf("NewDecoder() error: %v", err)
	}
	if !d.useNoiseCoding {
		t.Fatal("config does not enable noise coding")
	}

	n := len(d.exponentHighBands[0])
	if n == 0 {
		t.Fatal("no high bands to substitute")
	}

	w := bits.NewWriter()
	w.PutBit(1)      // channel coded
	w.PutBits(60, 7) // total gain
	w.PutBit(1)      // first high band: noise substituted
	for j := 1; j < n; j++ {
		w.PutBit(0)
	}
	w.PutBits(30, 7) // first substituted band gain: 30 - 19 = 11
	writeExponents(d, w, 0)
	putEOB(d, w, 0)
	d.QueuePacket(packetBytes(t, w, 256))

	got := drain(d)
	if len(got) != d.frameLen {
		t.Fatalf("decoded %d samples, want %d", len(got), d.frameLen)
	}

	nonZero := 0
	for _, s := range got {
		if s != 0 {
			nonZero++
		}
	}
	if nonZero == 0 {
		t.Error("substituted band produced pure silence")
	}
	if d.highBandValues[0][0] != 11 {
		t.Errorf("highBandValues[0][0] = %d, want 11", d.highBandValues[0][0])
	}
}

func TestDecode_VariableBlockSizes(t *testing.T) {
	// 22050 Hz with variable blocks: count 1+2 capped at 3, plus 1
	d, err := NewDecoder(2, 22050, 1, 32000, 512, extraDataV2(0x0005))
	if err != nil {
		t.Fatalf("NewDecoder() error: %v", err)
	}
	if !d.useVariableBlockLen {
		t.Fatal("useVariableBlockLen = false")
	}
	if d.blockSizeCount != 4 {
		t.Fatalf("blockSizeCount = %d, want 4", d.blockSizeCount)
	}

	tests := []struct {
		name   string
		blocks []blockSpec
	}{
		{"one long block", []blockSpec{
			{reset: true, prev: 0, cur: 0, next: 0},
		}},
		{"two half blocks", []blockSpec{
			{reset: true, prev: 0, cur: 1, next: 1},
			{cur: 1, next: 1},
		}},
		{"short to long", []blockSpec{
			{reset: true, prev: 0, cur: 2, next: 2},
			{cur: 2, next: 1},
			{cur: 1, next: 1},
		}},
		{"long to short", []blockSpec{
			{reset: true, prev: 0, cur: 1, next: 2},
			{cur: 2, next: 2},
			{cur: 2, next: 2},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d.resetBlockLengths = true

			w := bits.NewWriter()
			for _, bs := range tt.blocks {
				writeBlock(d, w, bs)
			}
			d.QueuePacket(packetBytes(t, w, 512))

			got := drain(d)
			if len(got) != d.frameLen {
				t.Fatalf("decoded %d samples, want %d", len(got), d.frameLen)
			}
			for i, s := range got {
				if s != 0 {
					t.Fatalf("sample %d = %d, want 0", i, s)
				}
			}
		})
	}
}

func TestDecode_BlockLengthOutOfRangeDropsPacket(t *testing.T) {
	// Three block sizes: the raw index 3 still fits in the two read
	// bits but is out of range
	d, err := NewDecoder(2, 22050, 1, 16000, 512, extraDataV2(0x000C))
	if err != nil {
		t.Fatalf("NewDecoder() error: %v", err)
	}
	if d.blockSizeCount != 3 {
		t.Fatalf("blockSizeCount = %d, want 3", d.blockSizeCount)
	}

	w := bits.NewWriter()
	w.PutBits(3, 2) // prev: out of range
	d.QueuePacket(packetBytes(t, w, 512))

	if !d.EndOfData() {
		t.Fatal("out-of-range block length produced output")
	}
}

func TestDecode_FrameOverflowDropsPacket(t *testing.T) {
	d, err := NewDecoder(2, 22050, 1, 32000, 512, extraDataV2(0x0005))
	if err != nil {
		t.Fatalf("NewDecoder() error: %v", err)
	}

	// An eighth-length block followed by an implied full-length block walks
	// past the frame end
	w := bits.NewWriter()
	w.PutBits(0, 2) // prev
	w.PutBits(3, 2) // cur: blockLen = frameLen/8
	w.PutBits(0, 2) // next: full frame, overflowing the remainder
	w.PutBit(0)     // channel not coded
	d.QueuePacket(packetBytes(t, w, 512))

	if !d.EndOfData() {
		t.Fatal("overflowing block layout produced output")
	}
}

func TestButterfly_TwiceDoublesInput(t *testing.T) {
	v1 := []float32{1, -2, 3.5, 0}
	v2 := []float32{0.5, 2, -1, 4}

	want1 := append([]float32(nil), v1...)
	want2 := append([]float32(nil), v2...)

	// (m, s) -> (m+s, m-s) -> (2m, 2s)
	butterflyFloats(v1, v2)
	butterflyFloats(v1, v2)

	for i := range v1 {
		if math.Abs(float64(v1[i]-2*want1[i])) > 1e-6 {
			t.Errorf("v1[%d] = %g, want %g", i, v1[i], 2*want1[i])
		}
		if math.Abs(float64(v2[i]-2*want2[i])) > 1e-6 {
			t.Errorf("v2[%d] = %g, want %g", i, v2[i], 2*want2[i])
		}
	}
}
