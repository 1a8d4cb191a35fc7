package tables

// Huffman code for exponent deltas. Symbol s encodes a delta of s - 60,
// the same offset the MPEG-4 AAC scalefactor code uses.
var ScaleHuffCodes = [121]uint32{
	0x00001ff0, 0x00001ff1, 0x00001ff2, 0x00001ff3, 0x00001ff4, 0x00001ff5,
	0x00001ff6, 0x00000fd8, 0x00001ff7, 0x00001ff8, 0x00000fd9, 0x00000fda,
	0x00000fdb, 0x00000fdc, 0x00000fdd, 0x00000fde, 0x00000fdf, 0x00000fe0,
	0x00000fe1, 0x00000fe2, 0x00000fe3, 0x00000fe4, 0x000007d6, 0x00000fe5,
	0x00000fe6, 0x000007d7, 0x000007d8, 0x000007d9, 0x000007da, 0x000007db,
	0x000007dc, 0x000007dd, 0x000007de, 0x000007df, 0x000007e0, 0x000003da,
	0x000003db, 0x000003dc, 0x000003dd, 0x000003de, 0x000003df, 0x000003e0,
	0x000001e4, 0x000003e1, 0x000001e5, 0x000001e6, 0x000001e7, 0x000001e8,
	0x000000e8, 0x000000e9, 0x000000ea, 0x000000eb, 0x000000ec, 0x00000070,
	0x00000071, 0x00000034, 0x00000035, 0x00000016, 0x00000017, 0x0000000a,
	0x00000000, 0x00000004, 0x00000018, 0x00000019, 0x00000036, 0x00000037,
	0x00000072, 0x00000073, 0x000000ed, 0x000000ee, 0x000000ef, 0x000000f0,
	0x000000f1, 0x000001e9, 0x000001ea, 0x000001eb, 0x000001ec, 0x000003e2,
	0x000003e3, 0x000003e4, 0x000003e5, 0x000003e6, 0x000003e7, 0x000003e8,
	0x000003e9, 0x000003ea, 0x000007e1, 0x000007e2, 0x000007e3, 0x000007e4,
	0x000007e5, 0x000007e6, 0x000007e7, 0x000007e8, 0x000007e9, 0x000007ea,
	0x000007eb, 0x00000fe7, 0x00000fe8, 0x00000fe9, 0x00000fea, 0x00000feb,
	0x00000fec, 0x00000fed, 0x00000fee, 0x00000fef, 0x00000ff0, 0x00000ff1,
	0x00000ff2, 0x00000ff3, 0x00000ff4, 0x00000ff5, 0x00000ff6, 0x00000ff7,
	0x00001ff9, 0x00001ffa, 0x00001ffb, 0x00001ffc, 0x00001ffd, 0x00001ffe,
	0x00001fff,
}

var ScaleHuffBits = [121]uint8{
	13, 13, 13, 13, 13, 13, 13, 12, 13, 13, 12, 12,
	12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 11, 12,
	12, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 10,
	10, 10, 10, 10, 10, 10, 9, 10, 9, 9, 9, 9,
	8, 8, 8, 8, 8, 7, 7, 6, 6, 5, 5, 4,
	1, 3, 5, 5, 6, 6, 7, 7, 8, 8, 8, 8,
	8, 9, 9, 9, 9, 10, 10, 10, 10, 10, 10, 10,
	10, 10, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11,
	11, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
	12, 12, 12, 12, 12, 12, 13, 13, 13, 13, 13, 13,
	13,
}
