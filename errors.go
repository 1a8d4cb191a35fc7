package wma

import "errors"

// Construction errors. These are the only errors surfaced to the
// caller; everything that goes wrong during packet decode is logged
// and the packet is dropped.
var (
	ErrUnsupportedVersion  = errors.New("wma: unsupported version")
	ErrInvalidSampleRate   = errors.New("wma: invalid sample rate")
	ErrUnsupportedChannels = errors.New("wma: unsupported number of channels")
)

// Packet decode errors. One per recoverable failure mode; all of them
// drop the current packet and reset the bit reservoir overhang.
var (
	errHuffmanInvalid     = errors.New("wma: invalid huffman code")
	errBlockLenOutOfRange = errors.New("wma: block length out of range")
	errFrameOverflow      = errors.New("wma: frame length overflow")
	errSuperframeCount    = errors.New("wma: negative superframe frame count")
	errExponentOutOfRange = errors.New("wma: exponent out of range")
	errBrokenEscape       = errors.New("wma: broken escape sequence")
	errBitstreamOverrun   = errors.New("wma: bitstream overrun")
)
