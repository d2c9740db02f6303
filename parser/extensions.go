package parser

import (
	"math"
	"strconv"

	"aprsparse"
)

// phgHeightFeet decodes PHG/DFS's height byte: height = 2^h × 10 ft, where
// h is the byte's offset from '0'. This covers the plain '0'..'9' table
// and the extended low ('*'..'/') / high (':'..'>') ranges the same way
// (spec.md §4.11).
func phgHeightFeet(b byte) float64 {
	exp := float64(int(b) - int('0'))
	return math.Pow(2, exp) * 10
}

var phgPowerWatts = [10]float64{0, 1, 4, 9, 16, 25, 36, 49, 64, 81}

var phgDirectivityDeg = map[byte]string{
	'0': "omnidirectional",
	'1': "45", '2': "90", '3': "135", '4': "180",
	'5': "225", '6': "270", '7': "315", '8': "360",
}

var dfsGainDB = [10]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

// parseDataExtensions implements spec.md §4.11: a fixed-width data
// extension may appear immediately after the position, before the free
// text comment. Recognizes the 7-byte course/speed form, the 15-byte
// course/speed/bearing/NRQ DF form, PHG, DFS, and RNG. Absence of a
// recognizable extension is not an error — the remainder is just comment.
func parseDataExtensions(rec *aprsparse.Record, cur *Cursor) {
	if tryCourseSpeedBearingNRQ(rec, cur) {
		return
	}
	if tryCourseSpeed(rec, cur) {
		return
	}
	tryPHG(rec, cur)
	tryDFS(rec, cur)
	tryRNG(rec, cur)
}

// tryCourseSpeedBearingNRQ matches the 15-byte "CCC/SSS/BRG/NRQ" direction
// finding extension (spec.md §4.11).
func tryCourseSpeedBearingNRQ(rec *aprsparse.Record, cur *Cursor) bool {
	block, ok := cur.Peek(15)
	if !ok || block[3] != '/' || block[7] != '/' {
		return false
	}
	courseStr := block[0:3]
	speedStr := block[4:7]
	bearingStr := block[8:11]
	nrq := block[12:15]

	if !isDigit(courseStr) || !isDigit(speedStr) || !isDigit(bearingStr) || !isDigit(nrq) {
		return false
	}
	cur.Take(15)

	course := atoiUnsafe(courseStr)
	speedKnots := atoiUnsafe(speedStr)
	bearing := atoiUnsafe(bearingStr)

	rec.Course = &aprsparse.Course{
		Direction: float64(course),
		SpeedMS:   float64(speedKnots) * knotsToMS,
		Bearing:   intPtr(bearing),
	}

	n, r, q := nrq[0], nrq[1], nrq[2]
	rangeExp := float64(r - '0')
	meters := math.Pow(2, rangeExp) * milesToM
	rec.Course.Range = &meters
	rec.Course.ReportQuality = dfReportQuality(n)
	rec.Course.BearingAccuracy = dfBearingAccuracy(q)
	return true
}

func dfReportQuality(n byte) string {
	switch {
	case n == '0':
		return "useless"
	case n >= '1' && n <= '8':
		return string(n)
	case n == '9':
		return "manual"
	default:
		return ""
	}
}

func dfBearingAccuracy(q byte) string {
	switch {
	case q == '0':
		return "useless"
	case q >= '1' && q <= '9':
		deg := math.Pow(2, 9-float64(q-'0')) * 2
		return "less_than_" + strconv.FormatFloat(deg, 'g', -1, 64) + "deg"
	default:
		return ""
	}
}

// tryCourseSpeed matches the 7-byte "CCC/SSS" course/speed extension.
func tryCourseSpeed(rec *aprsparse.Record, cur *Cursor) bool {
	block, ok := cur.Peek(7)
	if !ok || block[3] != '/' {
		return false
	}
	courseStr := block[0:3]
	speedStr := block[4:7]
	if !isDigit(courseStr) || !isDigit(speedStr) {
		return false
	}
	cur.Take(7)
	rec.Course = &aprsparse.Course{
		Direction: float64(atoiUnsafe(courseStr)),
		SpeedMS:   float64(atoiUnsafe(speedStr)) * knotsToMS,
	}
	return true
}

// tryPHG matches the 7-byte "PHGphgd" power/height/gain/directivity
// extension.
func tryPHG(rec *aprsparse.Record, cur *Cursor) bool {
	block, ok := cur.Peek(7)
	if !ok || block[0:3] != "PHG" {
		return false
	}
	p, h, g, d := block[3], block[4], block[5], block[6]
	if p < '0' || p > '9' || g < '0' || g > '9' {
		return false
	}
	dir, ok := phgDirectivityDeg[d]
	if !ok {
		return false
	}
	cur.Take(7)

	power := phgPowerWatts[p-'0']
	height := phgHeightFeet(h) * metersPerFoot
	gain := float64(g - '0')

	ant := rec.Antenna
	if ant == nil {
		ant = &aprsparse.Antenna{}
	}
	ant.PowerW = floatPtr(power)
	ant.HeightM = floatPtr(height)
	ant.GainDB = floatPtr(gain)
	ant.Directivity = dir
	if rateBlock, ok := cur.Peek(2); ok && rateBlock[1] == '/' && isHexDigit(rateBlock[0]) {
		cur.Take(2)
		rate, _ := strconv.ParseInt(string(rateBlock[0]), 16, 64)
		r := int(rate)
		ant.Rate = &r
	}
	rec.Antenna = ant
	return true
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'A' && b <= 'F')
}

// tryDFS matches the 7-byte "DFSshgd" DF signal strength extension.
func tryDFS(rec *aprsparse.Record, cur *Cursor) bool {
	block, ok := cur.Peek(7)
	if !ok || block[0:3] != "DFS" {
		return false
	}
	s, h, g, d := block[3], block[4], block[5], block[6]
	if s < '0' || s > '9' || g < '0' || g > '9' {
		return false
	}
	dir, ok := phgDirectivityDeg[d]
	if !ok {
		return false
	}
	cur.Take(7)

	ant := rec.Antenna
	if ant == nil {
		ant = &aprsparse.Antenna{}
	}
	strength := int(s - '0')
	height := phgHeightFeet(h) * metersPerFoot
	gain := dfsGainDB[g-'0']
	ant.Strength = &strength
	ant.HeightM = floatPtr(height)
	ant.GainDB = floatPtr(gain)
	ant.Directivity = dir
	rec.Antenna = ant
	return true
}

// tryRNG matches the 7-byte "RNGrrrr" pre-calculated radio range extension.
func tryRNG(rec *aprsparse.Record, cur *Cursor) bool {
	block, ok := cur.Peek(7)
	if !ok || block[0:3] != "RNG" || !isDigit(block[3:7]) {
		return false
	}
	cur.Take(7)
	ant := rec.Antenna
	if ant == nil {
		ant = &aprsparse.Antenna{}
	}
	rng := float64(atoiUnsafe(block[3:7])) * milesToM
	ant.Range = &rng
	rec.Antenna = ant
	return true
}

func atoiUnsafe(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
