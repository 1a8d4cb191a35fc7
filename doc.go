// Package wma decodes Microsoft's Windows Media Audio versions 1 and
// 2 into interleaved 16-bit PCM.
//
// The decoder consumes compressed packets in encoding order (as
// delivered by an ASF demuxer) and queues decoded PCM internally:
//
//	dec, err := wma.NewDecoder(2, 44100, 2, 128000, blockAlign, extraData)
//	if err != nil {
//	    // unsupported stream configuration
//	}
//	dec.QueuePacket(packet)
//	n := dec.ReadBuffer(buf)
//
// Malformed packets are dropped with a warning on the decoder's
// logger; decoding resumes with the next packet.
//
// Ported from: the WMA decoder lineage of FFmpeg's
// libavcodec/wmadec.c.
package wma
