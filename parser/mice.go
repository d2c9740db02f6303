package parser

import (
	"math"
	"strings"

	"aprsparse"
)

// miceByte is one entry of the Mic-E destination-address decode table
// (spec.md §4.6 / §GLOSSARY): every destination byte encodes a latitude
// digit, a message bit, and whether that byte is "custom capable".
type miceByte struct {
	digit   int
	isSpace bool
	bit     byte // '0' or '1'
	custom  bool
}

func decodeMiceByte(c byte) (miceByte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return miceByte{digit: int(c - '0'), bit: '0'}, true
	case c >= 'A' && c <= 'J':
		return miceByte{digit: int(c - 'A'), bit: '1', custom: true}, true
	case c == 'K':
		return miceByte{isSpace: true, bit: '1', custom: true}, true
	case c == 'L':
		return miceByte{isSpace: true, bit: '0'}, true
	case c >= 'P' && c <= 'Y':
		return miceByte{digit: int(c - 'P'), bit: '1'}, true
	case c == 'Z':
		return miceByte{isSpace: true, bit: '1'}, true
	default:
		return miceByte{}, false
	}
}

// parseMicE implements spec.md §4.6: decodes the destination address as a
// 6-byte bit-steganography channel carrying latitude, message status, and
// N/S/E/W/longitude-offset flags, then the information field's position,
// speed/course, symbol, device fingerprint, altitude, and comment.
func parseMicE(rec *aprsparse.Record, cur *Cursor) error {
	rec.Symbol = ""

	dst := strings.SplitN(rec.To, "-", 2)[0]
	if len(dst) != 6 {
		return cur.Fail("Mic-E destination must be 6 bytes long")
	}

	var bytes [6]miceByte
	for i := 0; i < 6; i++ {
		b, ok := decodeMiceByte(dst[i])
		if !ok {
			return cur.Fail("Invalid Mic-E destination byte " + string(dst[i]))
		}
		bytes[i] = b
	}

	digit := func(i int) float64 {
		if bytes[i].isSpace {
			return 0
		}
		return float64(bytes[i].digit)
	}

	lat := (digit(0)*10 + digit(1)) + (digit(2)*10+digit(3)+digit(4)/10+digit(5)/100)/60
	if dst[3] <= 'L' {
		lat = -lat
	}

	info, ok := cur.Peek(8)
	if !ok {
		return cur.Fail("Mic-E information field too short")
	}
	cur.Take(8)

	lonDeg := float64(info[0]) - 28
	if dst[4] >= 'P' {
		lonDeg += 100
	}
	switch {
	case lonDeg >= 180 && lonDeg <= 189:
		lonDeg -= 100
	case lonDeg >= 190 && lonDeg <= 199:
		lonDeg -= 100
	}

	lonMin := float64(info[1]) - 28
	if lonMin >= 60 {
		lonMin -= 60
	}
	lonMin += (float64(info[2]) - 28) / 100

	lon := lonDeg + lonMin/60
	if dst[5] >= 'P' {
		lon = -lon
	}

	rec.Position = &aprsparse.Position{
		Latitude:  aprsparse.Coordinate{Degrees: lat, Precision: aprsparse.PrecisionHundredthMinute},
		Longitude: aprsparse.Coordinate{Degrees: lon, Precision: aprsparse.PrecisionHundredthMinute},
	}

	sp := float64(info[3]) - 28
	dc := float64(info[4]) - 28
	se := float64(info[5]) - 28
	quotient := math.Floor(dc / 10)
	dcRem := dc - quotient*10
	course := dcRem*100 + se
	speedKnots := sp*10 + quotient
	if speedKnots >= 800 {
		speedKnots -= 800
	}
	if course >= 400 {
		course -= 400
	}
	rec.Course = &aprsparse.Course{Direction: course, SpeedMS: speedKnots * knotsToMS}

	rec.Symbol = string(info[7]) + string(info[6])

	mBits := string(bytes[0].bit) + string(bytes[1].bit) + string(bytes[2].bit)
	allCustom := bytes[0].custom && bytes[1].custom && bytes[2].custom
	noneCustom := !bytes[0].custom && !bytes[1].custom && !bytes[2].custom
	var status string
	switch {
	case allCustom:
		status = miceStatusCustom[mBits]
	case noneCustom:
		status = miceStatusStd[mBits]
	default:
		status = "Unknown"
	}
	rec.Status = &status

	rest := cur.TakeAll()

	if name, strip, ok := deviceFingerprint(rest); ok {
		rec.Device = strPtr(name)
		rest = rest[:len(rest)-strip]
	}

	rest = extractMiceAltitude(rec, rest)

	setComment(rec, rest)
	return nil
}

func strPtr(s string) *string { return &s }

// extractMiceAltitude pulls the "xxx}" base-91 altitude token (the three
// bytes before the first '}') out of the Mic-E remainder
// (spec.md §4.6: alt_m = base91(xxx) - 10000).
func extractMiceAltitude(rec *aprsparse.Record, text string) string {
	idx := strings.IndexByte(text, '}')
	if idx < 3 {
		return text
	}
	raw := text[idx-3 : idx]
	v, err := aprsparse.ToDecimal(raw)
	if err != nil {
		return text
	}
	alt := float64(v - 10000)
	if rec.Position != nil {
		rec.Position.Altitude = floatPtr(alt)
	}
	return text[:idx-3] + text[idx+1:]
}
