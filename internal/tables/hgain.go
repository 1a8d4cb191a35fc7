package tables

// Huffman code for high band gain deltas in noise coding mode.
// Symbol s encodes a delta of s - 18.
var HGainHuffCodes = [37]uint32{
	0x000f4, 0x000f5, 0x000f6, 0x000f7, 0x000f8, 0x000f9,
	0x00072, 0x00073, 0x00074, 0x00075, 0x00032, 0x00033,
	0x00034, 0x00014, 0x00015, 0x00016, 0x00008, 0x00002,
	0x00000, 0x00003, 0x00009, 0x00017, 0x00018, 0x00035,
	0x00036, 0x00037, 0x00038, 0x00076, 0x00077, 0x00078,
	0x00079, 0x000fa, 0x000fb, 0x000fc, 0x000fd, 0x000fe,
	0x000ff,
}

var HGainHuffBits = [37]uint8{
	8, 8, 8, 8, 8, 8, 7, 7, 7, 7, 6, 6,
	6, 5, 5, 5, 4, 3, 2, 3, 4, 5, 5, 6,
	6, 6, 6, 7, 7, 7, 7, 8, 8, 8, 8, 8,
	8,
}
