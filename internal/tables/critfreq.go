package tables

// CriticalFreqs are the upper edges of the 25 Bark critical bands in Hz.
// Exponent band layouts are derived from these when no hardcoded table
// applies for the sample rate and block size.
var CriticalFreqs = [25]uint16{
	100, 200, 300, 400, 510, 630, 770, 920,
	1080, 1270, 1480, 1720, 2000, 2320, 2700, 3150,
	3700, 4400, 5300, 6400, 7700, 9500, 12000, 15500,
	24500,
}
