// superframe.go
package wma

import (
	"github.com/llehouerou/go-wma/internal/bits"
)

// QueuePacket decodes one compressed packet and queues the resulting
// PCM. Packets must arrive in encoding order: superframes carry a
// bit-level fragment of their last frame over into the next packet.
//
// Malformed packets are logged and dropped; the reservoir overhang
// and the block length state are reset so the next packet starts
// clean.
//
// Ported from: WMACodec::queuePacket / WMACodec::decodeSuperFrame.
func (d *Decoder) QueuePacket(data []byte) {
	pcm, err := d.decodeSuperframe(data)
	if err != nil {
		d.log.Warn().Err(err).Msg("wma: dropping packet")

		d.resetBlockLengths = true
		d.lastSuperframeLen = 0
		d.lastBitoffset = 0
		return
	}

	if pcm != nil {
		d.queue.Enqueue(pcm)
	}
}

// decodeSuperframe splits one packet into frames and decodes them.
// In bit reservoir mode the packet may carry the completion of the
// previous packet's trailing frame plus any number of whole frames
// plus a new trailing fragment.
func (d *Decoder) decodeSuperframe(data []byte) ([]int16, error) {
	if len(data) < int(d.blockAlign) {
		// Too small to be a packet; drop without a warning
		d.log.Debug().Int("size", len(data)).Msg("wma: packet smaller than block align")

		d.resetBlockLengths = true
		d.lastSuperframeLen = 0
		d.lastBitoffset = 0
		return nil, nil
	}
	if d.blockAlign > 0 {
		data = data[:d.blockAlign]
	}

	r := bits.NewReader(data)

	d.curFrame = 0

	if !d.useBitReservoir {
		// One frame per packet
		pcm := make([]int16, d.channels*d.frameLen)
		if err := d.decodeFrame(r, pcm); err != nil {
			return nil, err
		}
		return pcm, nil
	}

	r.SkipBits(4) // superframe index

	newFrameCount := int(r.GetBits(4)) - 1
	if newFrameCount < 0 {
		return nil, errSuperframeCount
	}

	frameCount := newFrameCount
	if d.lastSuperframeLen > 0 {
		frameCount++
	}

	pcm := make([]int16, frameCount*d.channels*d.frameLen)

	// Bits that complete the previous superframe's trailing frame
	bitOffset := int(r.GetBits(uint(d.byteOffsetBits) + 3))

	if d.lastSuperframeLen > 0 {
		// Splice the complementary bits onto the overhang and decode
		// it as one more frame
		if d.lastSuperframeLen+(bitOffset+7)/8 > len(d.lastSuperframe) {
			return nil, errBitstreamOverrun
		}

		for bitOffset > 7 {
			d.lastSuperframe[d.lastSuperframeLen] = byte(r.GetBits(8))
			d.lastSuperframeLen++
			bitOffset -= 8
		}
		if bitOffset > 0 {
			d.lastSuperframe[d.lastSuperframeLen] = byte(r.GetBits(uint(bitOffset)) << uint(8-bitOffset))
			d.lastSuperframeLen++
			bitOffset = 0
		}

		lr := bits.NewReader(d.lastSuperframe[:d.lastSuperframeLen])
		lr.SkipBits(d.lastBitoffset)

		if err := d.decodeFrame(lr, pcm); err != nil {
			// The spliced frame is best effort; its slot stays silent
			d.log.Debug().Err(err).Msg("wma: overhang frame failed")
		}
		d.curFrame++
	}

	// Skip any completion bits we did not consume above
	r.SkipBits(bitOffset)

	// New superframe, new block lengths
	d.resetBlockLengths = true

	for i := 0; i < newFrameCount; i++ {
		if err := d.decodeFrame(r, pcm); err != nil {
			return nil, err
		}
		d.curFrame++
	}

	// Save the trailing fragment for the next packet
	remainingBits := r.Size() - r.Pos()
	if remainingBits > 0 {
		d.lastSuperframeLen = remainingBits >> 3
		d.lastBitoffset = 0

		if mod := remainingBits & 7; mod != 0 {
			d.lastSuperframeLen++
			d.lastBitoffset = 8 - mod
		}

		if d.lastSuperframeLen > superframeSizeMax {
			return nil, errBitstreamOverrun
		}

		copy(d.lastSuperframe[:], data[len(data)-d.lastSuperframeLen:])
	} else {
		d.lastSuperframeLen = 0
		d.lastBitoffset = 0
	}

	return pcm, nil
}
