// Package tables holds the static data used by the WMA v1/v2 decoder:
// Huffman code parameters, exponent band layouts, the LSP codebook and
// assorted lookup tables. The layout follows libavcodec/wmadata.h.
package tables

// PowTab maps a biased exponent index i to 10^((i-60)/20).
// Exponent deltas decoded from the bitstream accumulate into an index
// into this table; indices outside [0, len) are a bitstream error.
var PowTab = [144]float32{
	1.0000000000000e-03, 1.1220184543020e-03, 1.2589254117942e-03, 1.4125375446228e-03,
	1.5848931924611e-03, 1.7782794100389e-03, 1.9952623149689e-03, 2.2387211385683e-03,
	2.5118864315096e-03, 2.8183829312645e-03, 3.1622776601684e-03, 3.5481338923358e-03,
	3.9810717055350e-03, 4.4668359215096e-03, 5.0118723362727e-03, 5.6234132519035e-03,
	6.3095734448019e-03, 7.0794578438414e-03, 7.9432823472428e-03, 8.9125093813375e-03,
	1.0000000000000e-02, 1.1220184543020e-02, 1.2589254117942e-02, 1.4125375446228e-02,
	1.5848931924611e-02, 1.7782794100389e-02, 1.9952623149689e-02, 2.2387211385683e-02,
	2.5118864315096e-02, 2.8183829312645e-02, 3.1622776601684e-02, 3.5481338923358e-02,
	3.9810717055350e-02, 4.4668359215096e-02, 5.0118723362727e-02, 5.6234132519035e-02,
	6.3095734448019e-02, 7.0794578438414e-02, 7.9432823472428e-02, 8.9125093813375e-02,
	1.0000000000000e-01, 1.1220184543020e-01, 1.2589254117942e-01, 1.4125375446228e-01,
	1.5848931924611e-01, 1.7782794100389e-01, 1.9952623149689e-01, 2.2387211385683e-01,
	2.5118864315096e-01, 2.8183829312645e-01, 3.1622776601684e-01, 3.5481338923358e-01,
	3.9810717055350e-01, 4.4668359215096e-01, 5.0118723362727e-01, 5.6234132519035e-01,
	6.3095734448019e-01, 7.0794578438414e-01, 7.9432823472428e-01, 8.9125093813375e-01,
	1.0000000000000e+00, 1.1220184543020e+00, 1.2589254117942e+00, 1.4125375446228e+00,
	1.5848931924611e+00, 1.7782794100389e+00, 1.9952623149689e+00, 2.2387211385683e+00,
	2.5118864315096e+00, 2.8183829312645e+00, 3.1622776601684e+00, 3.5481338923358e+00,
	3.9810717055350e+00, 4.4668359215096e+00, 5.0118723362727e+00, 5.6234132519035e+00,
	6.3095734448019e+00, 7.0794578438414e+00, 7.9432823472428e+00, 8.9125093813375e+00,
	1.0000000000000e+01, 1.1220184543020e+01, 1.2589254117942e+01, 1.4125375446228e+01,
	1.5848931924611e+01, 1.7782794100389e+01, 1.9952623149689e+01, 2.2387211385683e+01,
	2.5118864315096e+01, 2.8183829312645e+01, 3.1622776601684e+01, 3.5481338923358e+01,
	3.9810717055350e+01, 4.4668359215096e+01, 5.0118723362727e+01, 5.6234132519035e+01,
	6.3095734448019e+01, 7.0794578438414e+01, 7.9432823472428e+01, 8.9125093813375e+01,
	1.0000000000000e+02, 1.1220184543020e+02, 1.2589254117942e+02, 1.4125375446228e+02,
	1.5848931924611e+02, 1.7782794100389e+02, 1.9952623149689e+02, 2.2387211385683e+02,
	2.5118864315096e+02, 2.8183829312645e+02, 3.1622776601684e+02, 3.5481338923358e+02,
	3.9810717055350e+02, 4.4668359215096e+02, 5.0118723362727e+02, 5.6234132519035e+02,
	6.3095734448019e+02, 7.0794578438414e+02, 7.9432823472428e+02, 8.9125093813375e+02,
	1.0000000000000e+03, 1.1220184543020e+03, 1.2589254117942e+03, 1.4125375446228e+03,
	1.5848931924611e+03, 1.7782794100389e+03, 1.9952623149689e+03, 2.2387211385683e+03,
	2.5118864315096e+03, 2.8183829312645e+03, 3.1622776601684e+03, 3.5481338923358e+03,
	3.9810717055350e+03, 4.4668359215096e+03, 5.0118723362727e+03, 5.6234132519035e+03,
	6.3095734448019e+03, 7.0794578438414e+03, 7.9432823472428e+03, 8.9125093813375e+03,
	1.0000000000000e+04, 1.1220184543020e+04, 1.2589254117942e+04, 1.4125375446228e+04,
}
