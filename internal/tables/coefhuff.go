package tables

// CoefHuffmanParam describes one spectral coefficient Huffman code.
// Symbol 0 is the escape code and symbol 1 is the end of block marker.
// The remaining symbols encode (run, level) pairs: Levels[k] is the
// number of run values coded at level k+1, so the symbols for level
// k+1 occupy one contiguous range per level.
type CoefHuffmanParam struct {
	HuffCodes []uint32
	HuffBits  []uint8
	Levels    []uint16
}

// CoefHuffmanParams holds the three rate-dependent table sets, two codes
// each: index tableSet*2 selects the normal channel code, tableSet*2+1
// the one used for the second channel in mid/side stereo blocks.
var CoefHuffmanParams = [6]CoefHuffmanParam{
	{
		HuffCodes: []uint32{
			0x00000066, 0x00000000, 0x00000004, 0x0000000a, 0x00000016, 0x00000030,
			0x00000031, 0x00000032, 0x00000067, 0x00000068, 0x00000069, 0x0000006a,
			0x000000de, 0x000000df, 0x000000e0, 0x000000e1, 0x000000e2, 0x000000e3,
			0x000000e4, 0x000000e5, 0x000001d8, 0x000000e6, 0x000000e7, 0x000001d9,
			0x000001da, 0x000001db, 0x000001dc, 0x000001dd, 0x000001de, 0x00000017,
			0x0000006b, 0x0000006c, 0x000000e8, 0x000000e9, 0x000001df, 0x000001e0,
			0x000001e1, 0x000001e2, 0x000001e3, 0x000003d8, 0x000003d9, 0x000003da,
			0x000003db, 0x000003dc, 0x000003dd, 0x000003de, 0x000003df, 0x000003e0,
			0x000007de, 0x000007df, 0x000007e0, 0x0000006d, 0x000000ea, 0x000001e4,
			0x000001e5, 0x000001e6, 0x000003e1, 0x000003e2, 0x000003e3, 0x000003e4,
			0x000007e1, 0x000007e2, 0x000007e3, 0x000007e4, 0x000007e5, 0x000007e6,
			0x000007e7, 0x00000ff0, 0x0000006e, 0x000001e7, 0x000001e8, 0x000003e5,
			0x000003e6, 0x000003e7, 0x000007e8, 0x000007e9, 0x000007ea, 0x00000ff1,
			0x00000ff2, 0x00000ff3, 0x00000ff4, 0x000000eb, 0x000001e9, 0x000003e8,
			0x000007eb, 0x000007ec, 0x000007ed, 0x000007ee, 0x00000ff5, 0x00000ff6,
			0x00000ff7, 0x000001ea, 0x000003e9, 0x000007ef, 0x000007f0, 0x000007f1,
			0x00000ff8, 0x00000ff9, 0x00000ffa, 0x000001eb, 0x000003ea, 0x000007f2,
			0x00000ffb, 0x00000ffc, 0x00000ffd, 0x000003eb, 0x000007f3, 0x000007f4,
			0x00000ffe, 0x000003ec, 0x000007f5, 0x00000fff, 0x000003ed, 0x000007f6,
			0x000003ee, 0x000007f7,		},
		HuffBits: []uint8{
			7, 1, 3, 4, 5, 6, 6, 6, 7, 7, 7, 7,
			8, 8, 8, 8, 8, 8, 8, 8, 9, 8, 8, 9,
			9, 9, 9, 9, 9, 5, 7, 7, 8, 8, 9, 9,
			9, 9, 9, 10, 10, 10, 10, 10, 10, 10, 10, 10,
			11, 11, 11, 7, 8, 9, 9, 9, 10, 10, 10, 10,
			11, 11, 11, 11, 11, 11, 11, 12, 7, 9, 9, 10,
			10, 10, 11, 11, 11, 12, 12, 12, 12, 8, 9, 10,
			11, 11, 11, 11, 12, 12, 12, 9, 10, 11, 11, 11,
			12, 12, 12, 9, 10, 11, 12, 12, 12, 10, 11, 11,
			12, 10, 11, 12, 10, 11, 10, 11,		},
			Levels: []uint16{27, 22, 17, 13, 10, 8, 6, 4, 3, 2, 1, 1},
		},
	{
		HuffCodes: []uint32{
			0x00000068, 0x00000000, 0x00000004, 0x0000000a, 0x00000016, 0x00000030,
			0x00000031, 0x00000032, 0x00000069, 0x0000006a, 0x0000006b, 0x0000006c,
			0x0000006d, 0x000000e2, 0x000000e3, 0x000000e4, 0x000000e5, 0x000000e6,
			0x000000e7, 0x000000e8, 0x000000e9, 0x000001dc, 0x000001dd, 0x000001de,
			0x000001df, 0x000001e0, 0x00000017, 0x0000006e, 0x0000006f, 0x000000ea,
			0x000000eb, 0x000001e1, 0x000001e2, 0x000001e3, 0x000001e4, 0x000001e5,
			0x000003de, 0x000003df, 0x000003e0, 0x000003e1, 0x000003e2, 0x000003e3,
			0x000003e4, 0x000003e5, 0x000007e4, 0x00000033, 0x000000ec, 0x000001e6,
			0x000001e7, 0x000001e8, 0x000003e6, 0x000003e7, 0x000003e8, 0x000003e9,
			0x000007e5, 0x000007e6, 0x000007e7, 0x000007e8, 0x000007e9, 0x000007ea,
			0x00000070, 0x000001e9, 0x000001ea, 0x000003ea, 0x000003eb, 0x000007eb,
			0x000007ec, 0x000007ed, 0x000007ee, 0x000007ef, 0x000007f0, 0x00000ff6,
			0x000000ed, 0x000001eb, 0x000003ec, 0x000007f1, 0x000007f2, 0x000007f3,
			0x00000ff7, 0x00000ff8, 0x00000ff9, 0x000001ec, 0x000003ed, 0x000007f4,
			0x000007f5, 0x000007f6, 0x00000ffa, 0x00000ffb, 0x000001ed, 0x000003ee,
			0x000007f7, 0x00000ffc, 0x00000ffd, 0x000001ee, 0x000007f8, 0x000007f9,
			0x00000ffe, 0x000003ef, 0x000007fa, 0x000003f0, 0x00000fff, 0x000003f1,		},
		HuffBits: []uint8{
			7, 1, 3, 4, 5, 6, 6, 6, 7, 7, 7, 7,
			7, 8, 8, 8, 8, 8, 8, 8, 8, 9, 9, 9,
			9, 9, 5, 7, 7, 8, 8, 9, 9, 9, 9, 9,
			10, 10, 10, 10, 10, 10, 10, 10, 11, 6, 8, 9,
			9, 9, 10, 10, 10, 10, 11, 11, 11, 11, 11, 11,
			7, 9, 9, 10, 10, 11, 11, 11, 11, 11, 11, 12,
			8, 9, 10, 11, 11, 11, 12, 12, 12, 9, 10, 11,
			11, 11, 12, 12, 9, 10, 11, 12, 12, 9, 11, 11,
			12, 10, 11, 10, 12, 10,		},
			Levels: []uint16{24, 19, 15, 12, 9, 7, 5, 4, 2, 2, 1},
		},
	{
		HuffCodes: []uint32{
			0x00000064, 0x00000000, 0x00000004, 0x0000000a, 0x00000016, 0x00000030,
			0x00000031, 0x00000065, 0x00000066, 0x00000067, 0x00000068, 0x00000069,
			0x0000006a, 0x000000dc, 0x000000dd, 0x000000de, 0x000000df, 0x000000e0,
			0x000000e1, 0x000000e2, 0x000000e3, 0x000001d2, 0x000001d3, 0x000001d4,
			0x000001d5, 0x000001d6, 0x000001d7, 0x000001d8, 0x000001d9, 0x000001da,
			0x000001db, 0x000001dc, 0x00000017, 0x0000006b, 0x0000006c, 0x000000e4,
			0x000000e5, 0x000001dd, 0x000001de, 0x000001df, 0x000001e0, 0x000001e1,
			0x000001e2, 0x000003d6, 0x000003d7, 0x000003d8, 0x000003d9, 0x000003da,
			0x000003db, 0x000003dc, 0x000003dd, 0x000007d6, 0x000007d7, 0x000007d8,
			0x000007d9, 0x000007da, 0x0000006d, 0x000000e6, 0x000001e3, 0x000001e4,
			0x000001e5, 0x000003de, 0x000003df, 0x000003e0, 0x000003e1, 0x000007db,
			0x000007dc, 0x000007dd, 0x000007de, 0x000007df, 0x000007e0, 0x000007e1,
			0x000007e2, 0x00000fe0, 0x00000fe1, 0x00000fe2, 0x000000e7, 0x000001e6,
			0x000001e7, 0x000003e2, 0x000003e3, 0x000007e3, 0x000007e4, 0x000007e5,
			0x000007e6, 0x000007e7, 0x00000fe3, 0x00000fe4, 0x00000fe5, 0x00000fe6,
			0x00000fe7, 0x00000fe8, 0x000000e8, 0x000001e8, 0x000003e4, 0x000007e8,
			0x000007e9, 0x000007ea, 0x00000fe9, 0x00000fea, 0x00000feb, 0x00000fec,
			0x00000fed, 0x00000fee, 0x000001e9, 0x000003e5, 0x000007eb, 0x000007ec,
			0x00000fef, 0x00000ff0, 0x00000ff1, 0x00000ff2, 0x00000ff3, 0x000001ea,
			0x000003e6, 0x000007ed, 0x00000ff4, 0x00000ff5, 0x00000ff6, 0x00000ff7,
			0x000003e7, 0x000007ee, 0x00000ff8, 0x00000ff9, 0x00000ffa, 0x000003e8,
			0x000007ef, 0x00000ffb, 0x00000ffc, 0x000003e9, 0x00000ffd, 0x00000ffe,
			0x000003ea, 0x00000fff,		},
		HuffBits: []uint8{
			7, 1, 3, 4, 5, 6, 6, 7, 7, 7, 7, 7,
			7, 8, 8, 8, 8, 8, 8, 8, 8, 9, 9, 9,
			9, 9, 9, 9, 9, 9, 9, 9, 5, 7, 7, 8,
			8, 9, 9, 9, 9, 9, 9, 10, 10, 10, 10, 10,
			10, 10, 10, 11, 11, 11, 11, 11, 7, 8, 9, 9,
			9, 10, 10, 10, 10, 11, 11, 11, 11, 11, 11, 11,
			11, 12, 12, 12, 8, 9, 9, 10, 10, 11, 11, 11,
			11, 11, 12, 12, 12, 12, 12, 12, 8, 9, 10, 11,
			11, 11, 12, 12, 12, 12, 12, 12, 9, 10, 11, 11,
			12, 12, 12, 12, 12, 9, 10, 11, 12, 12, 12, 12,
			10, 11, 12, 12, 12, 10, 11, 12, 12, 10, 12, 12,
			10, 12,		},
			Levels: []uint16{30, 24, 20, 16, 12, 9, 7, 5, 4, 3, 2},
		},
	{
		HuffCodes: []uint32{
			0x00000066, 0x00000000, 0x00000004, 0x0000000a, 0x00000016, 0x00000030,
			0x00000031, 0x00000032, 0x00000067, 0x00000068, 0x00000069, 0x0000006a,
			0x0000006b, 0x000000de, 0x000000df, 0x000000e0, 0x000000e1, 0x000000e2,
			0x000000e3, 0x000000e4, 0x000000e5, 0x000000e6, 0x000001dc, 0x000000e7,
			0x000001dd, 0x000001de, 0x000001df, 0x000001e0, 0x00000017, 0x0000006c,
			0x0000006d, 0x000000e8, 0x000000e9, 0x000001e1, 0x000001e2, 0x000001e3,
			0x000001e4, 0x000001e5, 0x000003da, 0x000003db, 0x000003dc, 0x000003dd,
			0x000003de, 0x000003df, 0x000003e0, 0x000007e2, 0x000003e1, 0x000003e2,
			0x0000006e, 0x000000ea, 0x000000eb, 0x000001e6, 0x000001e7, 0x000003e3,
			0x000003e4, 0x000003e5, 0x000003e6, 0x000007e3, 0x000007e4, 0x000007e5,
			0x000007e6, 0x000007e7, 0x000007e8, 0x000007e9, 0x000000ec, 0x000001e8,
			0x000001e9, 0x000003e7, 0x000003e8, 0x000007ea, 0x000007eb, 0x000007ec,
			0x000007ed, 0x000007ee, 0x00000ff2, 0x00000ff3, 0x000000ed, 0x000001ea,
			0x000003e9, 0x000003ea, 0x000007ef, 0x000007f0, 0x000007f1, 0x00000ff4,
			0x00000ff5, 0x000001eb, 0x000003eb, 0x000007f2, 0x000007f3, 0x00000ff6,
			0x00000ff7, 0x00000ff8, 0x000001ec, 0x000003ec, 0x000007f4, 0x000007f5,
			0x00000ff9, 0x00000ffa, 0x000003ed, 0x000007f6, 0x00000ffb, 0x00000ffc,
			0x000003ee, 0x000007f7, 0x00000ffd, 0x000003ef, 0x000007f8, 0x00000ffe,
			0x000003f0, 0x00000fff,		},
		HuffBits: []uint8{
			7, 1, 3, 4, 5, 6, 6, 6, 7, 7, 7, 7,
			7, 8, 8, 8, 8, 8, 8, 8, 8, 8, 9, 8,
			9, 9, 9, 9, 5, 7, 7, 8, 8, 9, 9, 9,
			9, 9, 10, 10, 10, 10, 10, 10, 10, 11, 10, 10,
			7, 8, 8, 9, 9, 10, 10, 10, 10, 11, 11, 11,
			11, 11, 11, 11, 8, 9, 9, 10, 10, 11, 11, 11,
			11, 11, 12, 12, 8, 9, 10, 10, 11, 11, 11, 12,
			12, 9, 10, 11, 11, 12, 12, 12, 9, 10, 11, 11,
			12, 12, 10, 11, 12, 12, 10, 11, 12, 10, 11, 12,
			10, 12,		},
			Levels: []uint16{26, 20, 16, 12, 9, 7, 6, 4, 3, 3, 2},
		},
	{
		HuffCodes: []uint32{
			0x00000066, 0x00000000, 0x00000004, 0x0000000a, 0x00000016, 0x00000030,
			0x00000031, 0x00000032, 0x00000067, 0x00000068, 0x00000069, 0x0000006a,
			0x0000006b, 0x000000e0, 0x000000e1, 0x000000e2, 0x000000e3, 0x000000e4,
			0x000000e5, 0x000000e6, 0x000000e7, 0x000000e8, 0x000000e9, 0x000000ea,
			0x00000017, 0x0000006c, 0x0000006d, 0x000000eb, 0x000000ec, 0x000000ed,
			0x000001e4, 0x000001e5, 0x000001e6, 0x000001e7, 0x000001e8, 0x000001e9,
			0x000003e4, 0x000003e5, 0x000003e6, 0x000003e7, 0x000003e8, 0x0000006e,
			0x000000ee, 0x000000ef, 0x000001ea, 0x000001eb, 0x000001ec, 0x000003e9,
			0x000003ea, 0x000003eb, 0x000007ec, 0x000007ed, 0x000007ee, 0x000007ef,
			0x0000006f, 0x000000f0, 0x000001ed, 0x000003ec, 0x000003ed, 0x000003ee,
			0x000007f0, 0x000007f1, 0x000007f2, 0x000007f3, 0x000000f1, 0x000001ee,
			0x000003ef, 0x000003f0, 0x000007f4, 0x000007f5, 0x00000ffc, 0x000007f6,
			0x000001ef, 0x000003f1, 0x000003f2, 0x000007f7, 0x000007f8, 0x00000ffd,
			0x000001f0, 0x000003f3, 0x000007f9, 0x00000ffe, 0x00000fff, 0x000001f1,
			0x000007fa, 0x000007fb, 0x000003f4, 0x000007fc, 0x000003f5, 0x000007fd,		},
		HuffBits: []uint8{
			7, 1, 3, 4, 5, 6, 6, 6, 7, 7, 7, 7,
			7, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8,
			5, 7, 7, 8, 8, 8, 9, 9, 9, 9, 9, 9,
			10, 10, 10, 10, 10, 7, 8, 8, 9, 9, 9, 10,
			10, 10, 11, 11, 11, 11, 7, 8, 9, 10, 10, 10,
			11, 11, 11, 11, 8, 9, 10, 10, 11, 11, 12, 11,
			9, 10, 10, 11, 11, 12, 9, 10, 11, 12, 12, 9,
			11, 11, 10, 11, 10, 11,		},
			Levels: []uint16{22, 17, 13, 10, 8, 6, 5, 3, 2, 2},
		},
	{
		HuffCodes: []uint32{
			0x0000006a, 0x00000000, 0x00000004, 0x0000000a, 0x00000016, 0x00000030,
			0x00000031, 0x00000032, 0x0000006b, 0x0000006c, 0x0000006d, 0x0000006e,
			0x0000006f, 0x00000070, 0x00000071, 0x000000e8, 0x000000e9, 0x000000ea,
			0x000000eb, 0x000000ec, 0x000000ed, 0x00000017, 0x00000033, 0x00000072,
			0x000000ee, 0x000000ef, 0x000000f0, 0x000001e8, 0x000001e9, 0x000001ea,
			0x000001eb, 0x000003e8, 0x000003e9, 0x000003ea, 0x000003eb, 0x00000034,
			0x000000f1, 0x000000f2, 0x000001ec, 0x000001ed, 0x000003ec, 0x000003ed,
			0x000003ee, 0x000003ef, 0x000007f2, 0x000007f3, 0x00000073, 0x000001ee,
			0x000001ef, 0x000003f0, 0x000003f1, 0x000003f2, 0x000007f4, 0x000007f5,
			0x000007f6, 0x000000f3, 0x000001f0, 0x000003f3, 0x000007f7, 0x000007f8,
			0x000007f9, 0x00000ffe, 0x000001f1, 0x000003f4, 0x000003f5, 0x000007fa,
			0x000007fb, 0x000001f2, 0x000003f6, 0x000007fc, 0x00000fff, 0x000001f3,
			0x000007fd, 0x000003f7, 0x000007fe, 0x000003f8,		},
		HuffBits: []uint8{
			7, 1, 3, 4, 5, 6, 6, 6, 7, 7, 7, 7,
			7, 7, 7, 8, 8, 8, 8, 8, 8, 5, 6, 7,
			8, 8, 8, 9, 9, 9, 9, 10, 10, 10, 10, 6,
			8, 8, 9, 9, 10, 10, 10, 10, 11, 11, 7, 9,
			9, 10, 10, 10, 11, 11, 11, 8, 9, 10, 11, 11,
			11, 12, 9, 10, 10, 11, 11, 9, 10, 11, 12, 9,
			11, 10, 11, 10,		},
			Levels: []uint16{19, 14, 11, 9, 7, 5, 4, 2, 2, 1},
		},
}
