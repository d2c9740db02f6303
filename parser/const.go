package parser

// unimplementedDataTypes are data-type identifiers spec.md §4.3 names but
// explicitly leaves unimplemented.
var unimplementedDataTypes = map[byte]bool{
	'#': true, '%': true, '(': true, '*': true, ',': true,
	'-': true, '<': true, '?': true, '[': true,
}

// Mic-E message-type tables, keyed by the 3-bit message string built from
// destination bytes 1-3 (spec.md §4.6).
var miceStatusStd = map[string]string{
	"111": "Off Duty",
	"110": "En Route",
	"101": "In Service",
	"100": "Returning",
	"011": "Committed",
	"010": "Special",
	"001": "Priority",
	"000": "Emergency",
}

var miceStatusCustom = map[string]string{
	"111": "Custom-0",
	"110": "Custom-1",
	"101": "Custom-2",
	"100": "Custom-3",
	"011": "Custom-4",
	"010": "Custom-5",
	"001": "Custom-6",
	"000": "Custom Emergency",
}

const (
	metersPerFoot = 0.3048
	knotsToMS     = 0.514444
	mphToMS       = 0.44704
	milesToM      = 1609.344
	nmToM         = 1852.0
	inchesToM     = 0.0254
)

// weatherSoftwareTypes maps the first byte of the trailing weather
// software/unit tag to its known station-software category (spec.md
// §4.12).
var weatherSoftwareTypes = map[byte]string{
	'd': "Davis",
	'M': "APRSwxNET/Dos",
	'P': "Peet Bros",
	'S': "MacAPRS",
	'W': "WinAPRS",
	'X': "APRSwxNET",
}

// weatherKnownUnits are recognized wx_unit tokens (spec.md §4.12); unknown
// tails are still captured, just reported with an "Unknown" wrapper.
var weatherKnownUnits = map[string]bool{
	"Dvs": true, "HKT": true, "PIC": true, "RSW": true,
	"U-II": true, "U2k": true, "U5": true,
}
