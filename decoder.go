// decoder.go
package wma

import (
	"encoding/binary"
	"math"
	mathbits "math/bits"

	"github.com/rs/zerolog"

	"github.com/llehouerou/go-wma/internal/huffman"
	"github.com/llehouerou/go-wma/internal/mdct"
	"github.com/llehouerou/go-wma/internal/output"
	"github.com/llehouerou/go-wma/internal/sinewin"
	"github.com/llehouerou/go-wma/internal/tables"
)

const (
	// channelsMax is the maximum number of channels we support.
	channelsMax = 2

	// blockBitsMin is the minimum number of bits in a block.
	blockBitsMin = 7

	// superframeSizeMax is the maximum size of a superframe in bytes.
	superframeSizeMax = 16384

	// highBandSizeMax is the maximum number of noise-coded high bands.
	highBandSizeMax = 16

	// noiseTabSize is the size of the noise table.
	noiseTabSize = 8192

	// lspPowBits is the number of mantissa bits used by the x^-0.25
	// approximation of the LSP exponent curve.
	lspPowBits = 7

	// lspCoefCount is the number of line spectral pairs per envelope.
	lspCoefCount = 10
)

// Decoder decodes one WMA v1/v2 stream. It is not safe for concurrent
// use; each QueuePacket call runs the whole pipeline synchronously.
//
// Ported from: WMACodec in wma.cpp.
type Decoder struct {
	log zerolog.Logger

	version    int
	sampleRate uint32
	channels   int
	bitRate    uint32
	blockAlign uint32

	useExpHuffman       bool // exponents in Huffman code, otherwise LSP
	useBitReservoir     bool // each packet is a superframe
	useVariableBlockLen bool
	useNoiseCoding      bool

	resetBlockLengths bool

	curFrame       int
	frameLen       int
	frameLenBits   int
	blockSizeCount int
	framePos       int

	curBlock         int
	blockLen         int
	blockLenBits     int
	nextBlockLenBits int
	prevBlockLenBits int

	byteOffsetBits int

	// Coefficient layout per block size index
	coefsStart        int
	coefsEnd          []int
	exponentBands     [][]uint16
	highBandStart     []int
	exponentHighBands [][]int

	coefHuffman           [2]*huffman.Decoder
	coefHuffmanRunTable   [2][]uint16
	coefHuffmanLevelTable [2][]float32

	// Noise
	noiseMult    float32
	noiseTable   []float32
	noiseIndex   int
	hgainHuffman *huffman.Decoder

	// Exponents
	exponentsBSize [channelsMax]int
	exponents      [channelsMax][]float32
	maxExponent    [channelsMax]float32
	expHuffman     *huffman.Decoder

	// Coded values in high bands
	highBandCoded  [channelsMax][highBandSizeMax]bool
	highBandValues [channelsMax][highBandSizeMax]int

	// Coefficients
	coefs1 [channelsMax][]float32
	coefs  [channelsMax][]float32

	// Line spectral pairs
	lspCosTable   []float32
	lspPowETable  [256]float32
	lspPowMTable1 [1 << lspPowBits]float32
	lspPowMTable2 [1 << lspPowBits]float32

	// MDCT contexts and sine windows, one per block size
	mdct       []*mdct.MDCT
	mdctWindow [][]float32

	// Overhang from the last superframe
	lastSuperframe    [superframeSizeMax + 4]byte
	lastSuperframeLen int
	lastBitoffset     int

	// Output
	out       []float32 // IMDCT output, 2 * frameLen
	frameOut  [channelsMax][]float32
	frameView [][]float32 // per-channel views of the finished frame half

	queue *output.Queue
}

// NewDecoder creates a decoder for one stream.
//
// version must be 1 or 2, sampleRate in (0, 50000], channels 1 or 2.
// extraData is the codec private data from the container; its flag
// word selects exponent coding, the bit reservoir, variable block
// lengths and noise coding.
//
// Ported from: WMACodec::WMACodec and WMACodec::init in wma.cpp.
func NewDecoder(version int, sampleRate uint32, channels uint8,
	bitRate, blockAlign uint32, extraData []byte) (*Decoder, error) {

	if version != 1 && version != 2 {
		return nil, ErrUnsupportedVersion
	}
	if sampleRate == 0 || sampleRate > 50000 {
		return nil, ErrInvalidSampleRate
	}
	if channels == 0 || channels > channelsMax {
		return nil, ErrUnsupportedChannels
	}

	d := &Decoder{
		log:               zerolog.Nop(),
		version:           version,
		sampleRate:        sampleRate,
		channels:          int(channels),
		bitRate:           bitRate,
		blockAlign:        blockAlign,
		resetBlockLengths: true,
		queue:             output.NewQueue(),
	}

	if err := d.init(extraData); err != nil {
		return nil, err
	}

	return d, nil
}

// SetLogger installs the logger that receives decode warnings.
// The default logger discards everything.
func (d *Decoder) SetLogger(l zerolog.Logger) {
	d.log = l
}

// SampleRate returns the output sample rate in Hz.
func (d *Decoder) SampleRate() int {
	return int(d.sampleRate)
}

// Channels returns the output channel count.
func (d *Decoder) Channels() int {
	return d.channels
}

// FrameLen returns the number of samples per frame per channel.
func (d *Decoder) FrameLen() int {
	return d.frameLen
}

// ReadBuffer copies up to len(buf) decoded samples into buf,
// interleaved by channel, and returns the number copied.
func (d *Decoder) ReadBuffer(buf []int16) int {
	return d.queue.ReadBuffer(buf)
}

// EndOfData reports whether no decoded samples are queued.
func (d *Decoder) EndOfData() bool {
	return d.queue.EndOfData()
}

// EndOfStream reports whether Finish was called and the queue is
// drained.
func (d *Decoder) EndOfStream() bool {
	return d.queue.EndOfStream()
}

// Finish marks that no more packets will be queued.
func (d *Decoder) Finish() {
	d.queue.Finish()
}

// IsFinished reports whether Finish has been called.
func (d *Decoder) IsFinished() bool {
	return d.queue.IsFinished()
}

// init derives the full stream configuration from the constructor
// parameters and allocates per-stream buffers.
func (d *Decoder) init(extraData []byte) error {
	flags := d.getFlags(extraData)
	d.evalFlags(flags, extraData)

	d.frameLenBits = d.frameBitLength()
	d.frameLen = 1 << uint(d.frameLenBits)

	d.blockSizeCount = d.getBlockSizeCount(flags)

	bps := float64(d.bitRate) / float64(uint32(d.channels)*d.sampleRate)

	d.byteOffsetBits = intLog2(int(bps*float64(d.frameLen)/8.0+0.05)) + 2

	var highFreq float64
	d.useNoiseCoding, highFreq, bps = d.evalNoiseCoding(bps)

	d.evalMDCTScales(highFreq)
	d.initNoise()

	if err := d.initCoefHuffman(bps); err != nil {
		return err
	}
	d.initMDCT()
	if err := d.initExponents(); err != nil {
		return err
	}

	d.frameView = make([][]float32, d.channels)
	for i := 0; i < d.channels; i++ {
		d.exponents[i] = make([]float32, d.frameLen)
		d.coefs1[i] = make([]float32, d.frameLen)
		d.coefs[i] = make([]float32, d.frameLen)
		d.frameOut[i] = make([]float32, 2*d.frameLen)
		d.frameView[i] = d.frameOut[i][:d.frameLen]
	}
	d.out = make([]float32, 2*d.frameLen)

	return nil
}

// getFlags extracts the codec flag word from the extra data: a
// little-endian u16 at offset 2 for v1, offset 4 for v2.
func (d *Decoder) getFlags(extraData []byte) uint16 {
	if d.version == 1 && len(extraData) >= 4 {
		return binary.LittleEndian.Uint16(extraData[2:])
	}
	if d.version == 2 && len(extraData) >= 6 {
		return binary.LittleEndian.Uint16(extraData[4:])
	}
	return 0
}

// evalFlags interprets the flag word. A v2 stream whose extra data
// carries 0x000D at offset 4 has its variable block length flag
// cleared; such containers misdeclare the capability (ffmpeg
// issue1503).
func (d *Decoder) evalFlags(flags uint16, extraData []byte) {
	d.useExpHuffman = flags&0x0001 != 0
	d.useBitReservoir = flags&0x0002 != 0
	d.useVariableBlockLen = flags&0x0004 != 0

	if d.version == 2 && len(extraData) >= 8 {
		if binary.LittleEndian.Uint16(extraData[4:]) == 0x000D && d.useVariableBlockLen {
			d.useVariableBlockLen = false
		}
	}
}

// frameBitLength returns log2 of the frame length for the sample rate.
func (d *Decoder) frameBitLength() int {
	switch {
	case d.sampleRate <= 16000:
		return 9
	case d.sampleRate <= 22050 || (d.sampleRate <= 32000 && d.version == 1):
		return 10
	case d.sampleRate <= 48000:
		return 11
	case d.sampleRate <= 96000:
		return 12
	default:
		return 13
	}
}

// getBlockSizeCount returns the number of distinct MDCT block sizes.
func (d *Decoder) getBlockSizeCount(flags uint16) int {
	if !d.useVariableBlockLen {
		return 1
	}

	count := int((flags>>3)&3) + 1

	if d.bitRate/uint32(d.channels) >= 32000 {
		count += 2
	}

	maxCount := d.frameLenBits - blockBitsMin
	if count > maxCount {
		count = maxCount
	}

	return count + 1
}

// normalizedSampleRate buckets the sample rate for the noise coding
// decision. Only WMAv2 normalizes.
func (d *Decoder) normalizedSampleRate() uint32 {
	if d.version != 2 {
		return d.sampleRate
	}

	switch {
	case d.sampleRate >= 44100:
		return 44100
	case d.sampleRate >= 22050:
		return 22050
	case d.sampleRate >= 16000:
		return 16000
	case d.sampleRate >= 11025:
		return 11025
	case d.sampleRate >= 8000:
		return 8000
	default:
		return d.sampleRate
	}
}

// evalNoiseCoding decides whether perceptual noise substitution is
// active and where the high band starts. It returns the decision, the
// high frequency cutoff in Hz and the (possibly stereo-adjusted) bits
// per sample used for the Huffman table choice.
//
// Ported from: WMACodec::useNoiseCoding.
func (d *Decoder) evalNoiseCoding(bpsOrig float64) (bool, float64, float64) {
	highFreq := float64(d.sampleRate) * 0.5

	rateNormalized := d.normalizedSampleRate()

	bps := bpsOrig
	if d.channels == 2 {
		bps = bpsOrig * 1.6
	}

	switch rateNormalized {
	case 44100:
		if bps >= 0.61 {
			return false, highFreq, bps
		}
		return true, highFreq * 0.4, bps

	case 22050:
		if bps >= 1.16 {
			return false, highFreq, bps
		}
		if bps >= 0.72 {
			return true, highFreq * 0.7, bps
		}
		return true, highFreq * 0.6, bps

	case 16000:
		if bpsOrig > 0.5 {
			return true, highFreq * 0.5, bps
		}
		return true, highFreq * 0.3, bps

	case 11025:
		return true, highFreq * 0.7, bps

	case 8000:
		if bpsOrig > 0.75 {
			return false, highFreq, bps
		}
		if bpsOrig <= 0.625 {
			return true, highFreq * 0.5, bps
		}
		return true, highFreq * 0.65, bps
	}

	switch {
	case bpsOrig >= 0.8:
		highFreq *= 0.75
	case bpsOrig >= 0.6:
		highFreq *= 0.6
	default:
		highFreq *= 0.5
	}

	return true, highFreq, bps
}

// evalMDCTScales computes, for every block size, the exponent band
// layout, the coded coefficient range and the noise-coded high band
// layout.
//
// Ported from: WMACodec::evalMDCTScales.
func (d *Decoder) evalMDCTScales(highFreq float64) {
	if d.version == 1 {
		d.coefsStart = 3
	} else {
		d.coefsStart = 0
	}

	d.coefsEnd = make([]int, d.blockSizeCount)
	d.exponentBands = make([][]uint16, d.blockSizeCount)
	d.highBandStart = make([]int, d.blockSizeCount)
	d.exponentHighBands = make([][]int, d.blockSizeCount)

	for k := 0; k < d.blockSizeCount; k++ {
		blockLen := d.frameLen >> uint(k)

		if d.version == 1 {
			d.exponentBands[k] = expBandsV1(int(d.sampleRate), blockLen)
		} else {
			d.exponentBands[k] = d.expBandsV2(k, blockLen)
		}

		// Max number of coded coefficients
		d.coefsEnd[k] = (d.frameLen - d.frameLen*9/100) >> uint(k)

		// First coefficient of the noise-substituted high band
		d.highBandStart[k] = int(float64(blockLen)*2*highFreq/float64(d.sampleRate) + 0.5)

		// Intersect each exponent band with the noise-eligible range
		pos := 0
		for _, band := range d.exponentBands[k] {
			start := pos
			pos += int(band)
			end := pos

			if start < d.highBandStart[k] {
				start = d.highBandStart[k]
			}
			if end > d.coefsEnd[k] {
				end = d.coefsEnd[k]
			}
			if end > start && len(d.exponentHighBands[k]) < highBandSizeMax {
				d.exponentHighBands[k] = append(d.exponentHighBands[k], end-start)
			}
		}
	}
}

// expBandsV1 derives the exponent band layout from the Bark critical
// frequencies with v1 rounding.
func expBandsV1(sampleRate, blockLen int) []uint16 {
	var bands []uint16

	lpos := 0
	for _, f := range tables.CriticalFreqs {
		pos := (blockLen*2*int(f) + sampleRate>>1) / sampleRate
		if pos > blockLen {
			pos = blockLen
		}

		bands = append(bands, uint16(pos-lpos))
		if pos >= blockLen {
			break
		}
		lpos = pos
	}

	return padBands(bands, blockLen)
}

// expBandsV2 returns the hardcoded layout when one exists for the
// sample rate and block size, and otherwise derives it from the Bark
// critical frequencies with v2 rounding (multiples of four).
func (d *Decoder) expBandsV2(k, blockLen int) []uint16 {
	var table []uint8

	if t := d.frameLenBits - blockBitsMin - k; t < 3 {
		switch {
		case d.sampleRate >= 44100:
			table = tables.ExponentBands44100[t]
		case d.sampleRate >= 32000:
			table = tables.ExponentBands32000[t]
		case d.sampleRate >= 22050:
			table = tables.ExponentBands22050[t]
		}
	}

	if table != nil {
		bands := make([]uint16, len(table))
		for i, b := range table {
			bands[i] = uint16(b)
		}
		return padBands(bands, blockLen)
	}

	var bands []uint16
	lpos := 0
	for _, f := range tables.CriticalFreqs {
		rate := int(d.sampleRate)
		pos := (blockLen*2*int(f) + rate<<1) / (4 * rate)
		pos <<= 2
		if pos > blockLen {
			pos = blockLen
		}

		if pos > lpos {
			bands = append(bands, uint16(pos-lpos))
		}
		if pos >= blockLen {
			break
		}
		lpos = pos
	}

	return padBands(bands, blockLen)
}

// padBands appends a final band so the layout sums to exactly
// blockLen. The Bark walk ends short of the block for sample rates
// above twice the last critical frequency; the exponent decoders rely
// on the layout covering every coefficient.
func padBands(bands []uint16, blockLen int) []uint16 {
	sum := 0
	for _, b := range bands {
		sum += int(b)
	}
	if sum < blockLen {
		bands = append(bands, uint16(blockLen-sum))
	}
	return bands
}

// initNoise fills the deterministic noise table and prepares the high
// band gain Huffman code. Both exist only in noise coding mode.
//
// Ported from: WMACodec::initNoise.
func (d *Decoder) initNoise() {
	if !d.useNoiseCoding {
		return
	}

	if d.useExpHuffman {
		d.noiseMult = 0.02
	} else {
		d.noiseMult = 0.04
	}
	d.noiseIndex = 0

	d.noiseTable = make([]float32, noiseTabSize)

	seed := uint32(1)
	norm := float32(1.0/(1<<31)) * float32(math.Sqrt(3)) * d.noiseMult

	for i := range d.noiseTable {
		seed = seed*314159 + 1
		d.noiseTable[i] = float32(int32(seed)) * norm
	}

	// Built from complete tables; cannot fail
	d.hgainHuffman, _ = huffman.New(tables.HGainHuffCodes[:], tables.HGainHuffBits[:])
}

// initCoefHuffman selects the rate-dependent coefficient Huffman
// table set and derives the run/level lookup tables from its level
// partitioning.
//
// Ported from: WMACodec::initCoefHuffman.
func (d *Decoder) initCoefHuffman(bps float64) error {
	coefHuffTable := 2
	if d.sampleRate >= 32000 {
		if bps < 0.72 {
			coefHuffTable = 0
		} else if bps < 1.16 {
			coefHuffTable = 1
		}
	}

	for i := 0; i < 2; i++ {
		params := &tables.CoefHuffmanParams[coefHuffTable*2+i]

		huff, err := huffman.New(params.HuffCodes, params.HuffBits)
		if err != nil {
			return err
		}
		d.coefHuffman[i] = huff

		n := len(params.HuffCodes)
		runTable := make([]uint16, n)
		levelTable := make([]float32, n)

		sym := 2
		level := 1
		for _, runs := range params.Levels {
			for j := 0; j < int(runs); j++ {
				runTable[sym] = uint16(j)
				levelTable[sym] = float32(level)
				sym++
			}
			level++
		}

		d.coefHuffmanRunTable[i] = runTable
		d.coefHuffmanLevelTable[i] = levelTable
	}

	return nil
}

// initMDCT creates one MDCT context and one sine window per block
// size.
func (d *Decoder) initMDCT() {
	d.mdct = make([]*mdct.MDCT, d.blockSizeCount)
	d.mdctWindow = make([][]float32, d.blockSizeCount)

	for i := 0; i < d.blockSizeCount; i++ {
		d.mdct[i] = mdct.New(d.frameLenBits - i + 1)
		d.mdctWindow[i] = sinewin.Window(1 << uint(d.frameLenBits-i))
	}
}

// initExponents prepares whichever exponent representation the stream
// uses: the delta Huffman code or the LSP curve tables.
func (d *Decoder) initExponents() error {
	if d.useExpHuffman {
		huff, err := huffman.New(tables.ScaleHuffCodes[:], tables.ScaleHuffBits[:])
		if err != nil {
			return err
		}
		d.expHuffman = huff
		return nil
	}

	d.initLSPToCurve()
	return nil
}

// initLSPToCurve fills the cosine table and the tables behind the
// x^-0.25 approximation used by the LSP exponent curve.
//
// Ported from: WMACodec::initLSPToCurve.
func (d *Decoder) initLSPToCurve() {
	wdel := math.Pi / float64(d.frameLen)

	d.lspCosTable = make([]float32, d.frameLen)
	for i := range d.lspCosTable {
		d.lspCosTable[i] = float32(2 * math.Cos(wdel*float64(i)))
	}

	for i := 0; i < 256; i++ {
		e := float64(i - 126)
		d.lspPowETable[i] = float32(math.Pow(2, e*-0.25))
	}

	// Two tables so powM14 needs a single multiply-add per lookup
	b := 1.0
	for i := (1 << lspPowBits) - 1; i >= 0; i-- {
		m := (1 << lspPowBits) + i
		a := float64(m) * (0.5 / (1 << lspPowBits))
		a = math.Pow(a, -0.25)

		d.lspPowMTable1[i] = float32(2*a - b)
		d.lspPowMTable2[i] = float32(b - a)

		b = a
	}
}

// intLog2 returns floor(log2(v)) for positive v, and 0 otherwise.
func intLog2(v int) int {
	if v < 1 {
		return 0
	}
	return mathbits.Len(uint(v)) - 1
}
