package tables

// LSPCodebook quantizes the ten line spectral pairs that parameterize
// the exponent envelope when Huffman-coded exponents are not in use.
// Entries are 2*cos of the LSP frequency. Rows 0, 8 and 9 are indexed
// with 3 bits, the others with 4.
var LSPCodebook = [10][]float32{
	{1.9991001, 1.9837561, 1.9495542, 1.8968196, 1.8260535, 1.7379287, 1.6332829, 1.5131109},
	{1.9991001, 1.9866339, 1.9595939, 1.9181783, 1.8626912, 1.7935394, 1.7112303, 1.6163677, 1.5096474, 1.3918525, 1.2638471, 1.1265701, 0.9810286, 0.8282904, 0.6694758, 0.5057500},
	{1.9991001, 1.9818320, 1.9427795, 1.8823720, 1.8012733, 1.7003750, 1.5807860, 1.4438210, 1.2909855, 1.1239594, 0.9445787, 0.7548151, 0.5567546, 0.3525742, 0.1445183, -0.0651261},
	{1.9620470, 1.9057490, 1.8251004, 1.7211318, 1.5951717, 1.4488295, 1.2839750, 1.1027147, 0.9073646, 0.7004208, 0.4845274, 0.2624430, 0.0370053, -0.1889053, -0.4124021, -0.6306295},
	{1.7708914, 1.6546794, 1.5173249, 1.3605829, 1.1864563, 0.9971698, 0.7951421, 0.5829546, 0.3633185, 0.1390401, -0.0870148, -0.3119579, -0.5329151, -0.7470629, -0.9516653, -1.1441079},
	{1.4336426, 1.2671037, 1.0843745, 0.8877899, 0.6798617, 0.4632466, 0.2407124, 0.0151026, -0.2107003, -0.4338109, -0.6513785, -0.8606233, -1.0588715, -1.2435902, -1.4124190, -1.5632008},
	{0.9781225, 0.7749957, 0.5619666, 0.3417569, 0.1171805, -0.1088931, -0.3335754, -0.5539954, -0.7673369, -0.9708738, -1.1620055, -1.3382898, -1.4974742, -1.6375249, -1.7566523, -1.8533342},
	{0.4419102, 0.2189530, -0.0068020, -0.2324700, -0.4551676, -0.6720494, -0.8803442, -1.0773905, -1.2606705, -1.4278425, -1.5767704, -1.7055513, -1.8125398, -1.8963687, -1.9559670, -1.9905732},
	{-0.7410703, -1.0148205, -1.2649872, -1.4857569, -1.6719989, -1.8193853, -1.9244908, -1.9848729},
	{-1.2385274, -1.4242462, -1.5878419, -1.7267733, -1.8388824, -1.9224277, -1.9761116, -1.9991001},
}
