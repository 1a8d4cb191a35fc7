package tables

// Hardcoded exponent band layouts for the common WMAv2 rates.
// Index is frameLenBits - 7 - bSize (block lengths 128, 256 and 512);
// each row sums to its block length.
var ExponentBands44100 = [3][]uint8{
	{4, 4, 4, 4, 4, 4, 8, 4, 8, 12, 12, 20, 40},
	{4, 4, 4, 4, 4, 4, 4, 4, 4, 8, 8, 8, 16, 12, 24, 28, 40, 76},
	{4, 4, 4, 4, 4, 4, 4, 8, 4, 8, 4, 12, 8, 12, 20, 20, 24, 32, 40, 60, 80, 152},
}

var ExponentBands32000 = [3][]uint8{
	{4, 4, 4, 4, 4, 4, 4, 8, 8, 8, 8, 16, 20, 28, 4},
	{4, 4, 4, 4, 4, 4, 4, 4, 4, 8, 8, 8, 12, 12, 20, 20, 28, 40, 56, 8},
	{4, 4, 4, 4, 4, 4, 4, 8, 4, 8, 8, 8, 12, 12, 12, 20, 20, 28, 36, 44, 56, 80, 112, 16},
}

var ExponentBands22050 = [3][]uint8{
	{4, 4, 4, 4, 4, 4, 4, 4, 4, 8, 8, 8, 16, 12, 24, 16},
	{4, 4, 4, 4, 4, 4, 4, 8, 4, 8, 4, 12, 8, 12, 20, 20, 24, 32, 40, 36},
	{4, 4, 4, 8, 4, 4, 8, 8, 8, 8, 8, 12, 12, 16, 16, 24, 24, 32, 44, 48, 60, 84, 72},
}

