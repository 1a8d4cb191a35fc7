// superframe_test.go
package wma

import (
	"testing"

	"github.com/llehouerou/go-wma/internal/bits"
)

// newReservoirDecoder builds a v2 mono 22050 Hz stream with the bit
// reservoir enabled. blockAlign is decided per test.
func newReservoirDecoder(t *testing.T, blockAlign uint32) *Decoder {
	t.Helper()

	d, err := NewDecoder(2, 22050, 1, 32000, blockAlign, extraDataV2(0x0003))
	if err != nil {
		t.Fatalf("NewDecoder() error: %v", err)
	}
	if !d.useBitReservoir {
		t.Fatal("useBitReservoir = false")
	}
	return d
}

// superframeHeader writes the superframe index, the frame count and
// the completion bit count.
func superframeHeader(d *Decoder, w *bits.Writer, newFrameCount, bitOffset int) {
	w.PutBits(0, 4)
	w.PutBits(uint32(newFrameCount+1), 4)
	w.PutBits(uint32(bitOffset), uint(d.byteOffsetBits)+3)
}

func TestSuperframe_WholeFramesOnly(t *testing.T) {
	// Generous for the header plus two silence frames
	const blockAlign = 128

	d := newReservoirDecoder(t, blockAlign)

	w := bits.NewWriter()
	superframeHeader(d, w, 2, 0)
	writeSilenceFrame(d, w, true)
	writeSilenceFrame(d, w, false)
	d.QueuePacket(packetBytes(t, w, blockAlign))

	got := drain(d)
	if len(got) != 2*d.frameLen {
		t.Fatalf("decoded %d samples, want %d", len(got), 2*d.frameLen)
	}
	for i, s := range got {
		if s != 0 {
			t.Fatalf("sample %d = %d, want 0", i, s)
		}
	}
}

func TestSuperframe_TrailingFrameSpansPackets(t *testing.T) {
	// Probe the frame length in bits with a scratch decoder
	probe := newReservoirDecoder(t, 64)
	fw := bits.NewWriter()
	writeSilenceFrame(probe, fw, true)
	frameBits := fw.Len()

	// Packet 1 carries the header, one whole frame, and all but a
	// byte-and-change of a second frame. The packet must be filled
	// exactly, so blockAlign is derived from the content.
	headerBits := 8 + probe.byteOffsetBits + 3
	pos1 := headerBits + frameBits
	blockAlign := (pos1+frameBits)/8 - 1
	withheld := frameBits - (blockAlign*8 - pos1)

	if withheld <= 0 || withheld >= frameBits {
		t.Fatalf("bad split: withholding %d of %d bits", withheld, frameBits)
	}

	d := newReservoirDecoder(t, uint32(blockAlign))

	w1 := bits.NewWriter()
	superframeHeader(d, w1, 1, 0)
	writeSilenceFrame(d, w1, true)
	copyBits(w1, fw.Bytes(), frameBits-withheld)
	if w1.Len() != blockAlign*8 {
		t.Fatalf("packet 1 holds %d bits, want %d", w1.Len(), blockAlign*8)
	}

	d.QueuePacket(w1.Bytes())

	if got := drain(d); len(got) != d.frameLen {
		t.Fatalf("packet 1 decoded %d samples, want %d", len(got), d.frameLen)
	}
	if d.lastSuperframeLen == 0 {
		t.Fatal("no overhang stored after a partial trailing frame")
	}

	// Packet 2 completes the trailing frame and adds one more
	w2 := bits.NewWriter()
	superframeHeader(d, w2, 1, withheld)

	tail := bits.NewReader(fw.Bytes())
	tail.SkipBits(frameBits - withheld)
	for i := 0; i < withheld; i++ {
		w2.PutBit(tail.GetBit())
	}

	writeSilenceFrame(d, w2, true)
	d.QueuePacket(packetBytes(t, w2, blockAlign))

	got := drain(d)
	if len(got) != 2*d.frameLen {
		t.Fatalf("packet 2 decoded %d samples, want %d", len(got), 2*d.frameLen)
	}
	for i, s := range got {
		if s != 0 {
			t.Fatalf("sample %d = %d, want 0", i, s)
		}
	}

	if d.lastBitoffset < 0 || d.lastBitoffset >= 8 {
		t.Errorf("lastBitoffset = %d outside [0, 8)", d.lastBitoffset)
	}
	if d.lastSuperframeLen > superframeSizeMax {
		t.Errorf("lastSuperframeLen = %d > %d", d.lastSuperframeLen, superframeSizeMax)
	}
}

func TestSuperframe_NegativeFrameCountDropsPacket(t *testing.T) {
	const blockAlign = 64

	d := newReservoirDecoder(t, blockAlign)
	d.lastSuperframeLen = 3 // stale overhang to be cleared

	w := bits.NewWriter()
	w.PutBits(0, 4)
	w.PutBits(0, 4) // frame count field 0: newFrameCount -1
	d.QueuePacket(packetBytes(t, w, blockAlign))

	if !d.EndOfData() {
		t.Fatal("negative frame count produced output")
	}
	if d.lastSuperframeLen != 0 || d.lastBitoffset != 0 {
		t.Error("overhang not reset after drop")
	}
	if !d.resetBlockLengths {
		t.Error("block lengths not reset after drop")
	}
}

func TestSuperframe_FailedFrameDropsWholePacket(t *testing.T) {
	const blockAlign = 128

	d := newReservoirDecoder(t, blockAlign)

	// Two declared frames: the second carries an exponent that walks
	// out of range and fails, taking the first frame's output with it
	w := bits.NewWriter()
	superframeHeader(d, w, 2, 0)
	writeSilenceFrame(d, w, true)
	w.PutBit(1)          // second frame: channel coded
	w.PutBits(60, 7)     // total gain
	putScaleDelta(w, 60) // exponent walks out of range
	d.QueuePacket(packetBytes(t, w, blockAlign))

	if !d.EndOfData() {
		t.Fatal("failed superframe produced output")
	}
	if d.lastSuperframeLen != 0 {
		t.Error("overhang survived a dropped packet")
	}
}
