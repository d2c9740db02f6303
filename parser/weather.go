package parser

import (
	"fmt"

	"aprsparse"
)

// weatherField describes one fixed-width "<tag><value>" weather parameter
// (spec.md §4.12). signed allows a leading '-' in the value (temperature
// only); convert turns the raw integer into an SI-unit measurement under
// key. The 'h', 'b', and 's' tags have their own variable-width/dual-key
// handling below and are not in this table.
type weatherField struct {
	tag     byte
	width   int
	signed  bool
	key     string
	convert func(int) float64
}

var weatherFields = []weatherField{
	{'c', 3, false, "wind_direction", func(v int) float64 { return float64(v) }},
	{'g', 3, false, "gust_speed", func(v int) float64 { return float64(v) * mphToMS }},
	{'t', 3, true, "temperature", func(v int) float64 { return (float64(v) - 32) * 5 / 9 }},
	{'r', 3, false, "rainfall_last_hour", func(v int) float64 { return float64(v) * 0.01 * inchesToM }},
	{'p', 3, false, "rainfall_last_24_hours", func(v int) float64 { return float64(v) * 0.01 * inchesToM }},
	{'P', 3, false, "rainfall_since_midnight", func(v int) float64 { return float64(v) * 0.01 * inchesToM }},
	{'L', 3, false, "luminosity", func(v int) float64 { return float64(v) }},
	{'l', 3, false, "luminosity", func(v int) float64 { return float64(v) + 1000 }},
	{'#', 3, false, "rain_counts", func(v int) float64 { return float64(v) }},
	{'F', 3, false, "water_height", func(v int) float64 { return float64(v) * metersPerFoot }},
	{'f', 3, false, "water_height", func(v int) float64 { return float64(v) }},
	{'^', 3, false, "peak_wind_gust", func(v int) float64 { return float64(v) * knotsToMS }},
	{'>', 3, false, "hurricane_force_radius", func(v int) float64 { return float64(v) * nmToM }},
	{'&', 3, false, "tropical_storm_force_radius", func(v int) float64 { return float64(v) * nmToM }},
	{'%', 3, false, "gale_force_radius", func(v int) float64 { return float64(v) * nmToM }},
}

// parseWeatherParams implements spec.md §4.12: an optional wind section
// (from a preceding course/speed-shaped group), then an iterative decoder
// that consumes recognized "<tag><digits>" weather parameters, converting
// each to SI units, then a trailing software/unit tag. positionless
// selects the '_' data type's reading of a bare 's' tag (wind_speed
// rather than snowfall).
func parseWeatherParams(rec *aprsparse.Record, cur *Cursor, positionless bool) {
	wx := rec.Weather
	if wx == nil {
		wx = &aprsparse.Weather{Values: map[string]float64{}}
	}

	if category, ok := tryStormCategory(cur); ok {
		wx.StormCategory = category
	}
	tryWindSection(wx, cur)

	for consumeOneWeatherField(wx, cur, positionless) {
	}

	extractWeatherTag(wx, cur)
	rec.Weather = wx
}

// parsePositionlessWeather implements spec.md §4.3's '_' handler: an
// 8-digit MDHM timestamp (no time-zone indicator byte) followed by the
// same weather parameter stream as the position-attached form.
func parsePositionlessWeather(rec *aprsparse.Record, cur *Cursor) error {
	digits, ok := cur.Take(8)
	if !ok || !isDigit(digits) {
		return cur.Fail("invalid positionless weather timestamp")
	}
	month, _ := atoi2(digits[0:2])
	day, _ := atoi2(digits[2:4])
	hour, _ := atoi2(digits[4:6])
	minute, _ := atoi2(digits[6:8])
	rec.Timestamp = &aprsparse.Timestamp{
		Month: intPtr(month), Day: intPtr(day), Hour: hour, Minute: minute, TimeZone: "utc",
	}

	parseWeatherParams(rec, cur, true)
	text := cur.TakeAll()
	setComment(rec, text)
	return nil
}

// tryWindSection implements spec.md §4.12's wind section: a 7-byte
// "CCC/SSS" group (degrees / mph), whether it arrived as a literal
// ddd/ddd group or a course/speed-shaped prefix, is read as
// wind_direction/wind_speed rather than a course extension.
func tryWindSection(wx *aprsparse.Weather, cur *Cursor) bool {
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
	wx.Values["wind_direction"] = float64(atoiUnsafe(courseStr))
	wx.Values["wind_speed"] = float64(atoiUnsafe(speedStr)) * mphToMS
	return true
}

// consumeOneWeatherField consumes a single weather parameter from the
// front of cur, returning false when nothing more was recognized (the
// remainder is left for the trailing tag/comment).
func consumeOneWeatherField(wx *aprsparse.Weather, cur *Cursor, positionless bool) bool {
	rest := cur.Remaining()
	if rest == "" {
		return false
	}
	switch rest[0] {
	case 'h':
		return consumeHumidity(wx, cur)
	case 'b':
		return consumeBarometricPressure(wx, cur)
	case 's':
		return consumeSnowfallOrWindSpeed(wx, cur, positionless)
	}

	field, ok := matchWeatherField(rest[0])
	if !ok {
		return false
	}
	block, ok := cur.Peek(1 + field.width)
	if !ok {
		return false
	}
	valueStr := block[1:]
	if isBlank(valueStr) {
		cur.Take(1 + field.width)
		return true
	}
	v, ok := parseWeatherInt(valueStr, field.signed)
	if !ok {
		return false
	}
	cur.Take(1 + field.width)
	wx.Values[field.key] = field.convert(v)
	return true
}

// consumeHumidity implements the 'h' tag's 2-digit field, extended to 3
// digits when a third digit immediately follows (spec.md §4.12), with the
// APRS convention that "00" means 100%.
func consumeHumidity(wx *aprsparse.Weather, cur *Cursor) bool {
	block, ok := cur.Peek(3)
	if !ok {
		return false
	}
	valueStr := block[1:3]
	if isBlank(valueStr) {
		cur.Take(3)
		return true
	}
	width := 2
	digits := valueStr
	if ext, ok := cur.Peek(4); ok && isDigitByte(ext[3]) {
		width = 3
		digits = ext[1:4]
	}
	if !isDigit(digits) {
		return false
	}
	cur.Take(1 + width)
	v := atoiUnsafe(digits)
	if width == 2 && v == 0 {
		wx.Values["humidity"] = 100
	} else {
		wx.Values["humidity"] = float64(v)
	}
	return true
}

// consumeBarometricPressure implements the 'b' tag's 5-digit field,
// extended to 6 digits when a sixth digit immediately follows (spec.md
// §4.12).
func consumeBarometricPressure(wx *aprsparse.Weather, cur *Cursor) bool {
	block, ok := cur.Peek(6)
	if !ok {
		return false
	}
	valueStr := block[1:6]
	if isBlank(valueStr) {
		cur.Take(6)
		return true
	}
	width := 5
	digits := valueStr
	if ext, ok := cur.Peek(7); ok && isDigitByte(ext[6]) {
		width = 6
		digits = ext[1:7]
	}
	if !isDigit(digits) {
		return false
	}
	cur.Take(1 + width)
	v := atoiUnsafe(digits)
	wx.Values["barometric_pressure"] = float64(v) / 10
	return true
}

// consumeSnowfallOrWindSpeed implements the 's' tag, which spec.md §4.12
// overloads: snowfall (inches→m) for a position-attached report, wind
// speed (mph→m/s) for a positionless one.
func consumeSnowfallOrWindSpeed(wx *aprsparse.Weather, cur *Cursor, positionless bool) bool {
	block, ok := cur.Peek(4)
	if !ok {
		return false
	}
	valueStr := block[1:4]
	if isBlank(valueStr) {
		cur.Take(4)
		return true
	}
	if !isDigit(valueStr) {
		return false
	}
	cur.Take(4)
	v := float64(atoiUnsafe(valueStr))
	if positionless {
		wx.Values["wind_speed"] = v * mphToMS
	} else {
		wx.Values["snowfall"] = v * inchesToM
	}
	return true
}

func matchWeatherField(tag byte) (weatherField, bool) {
	for _, f := range weatherFields {
		if f.tag == tag {
			return f, true
		}
	}
	return weatherField{}, false
}

func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }

func parseWeatherInt(s string, signed bool) (int, bool) {
	if signed && len(s) > 0 && s[0] == '-' {
		if !isDigit(s[1:]) {
			return 0, false
		}
		return -atoiUnsafe(s[1:]), true
	}
	if !isDigit(s) {
		return 0, false
	}
	return atoiUnsafe(s), true
}

// tryStormCategory matches a leading "/TS", "/HC", or "/TD" storm category
// prefix occasionally prepended to the weather parameter stream.
func tryStormCategory(cur *Cursor) (string, bool) {
	block, ok := cur.Peek(3)
	if !ok || block[0] != '/' {
		return "", false
	}
	switch block[1:3] {
	case "TS":
		cur.Take(3)
		return "tropical_storm", true
	case "HC":
		cur.Take(3)
		return "hurricane", true
	case "TD":
		cur.Take(3)
		return "tropical_depression", true
	default:
		return "", false
	}
}

// extractWeatherTag implements the trailing software/unit tag of spec.md
// §4.12: the first byte identifies the reporting software, the remainder
// is the wx_unit token. Only a short tail is ever consumed as a tag; a
// longer remainder is free-text comment and is left for later
// post-processing. An unrecognized software byte or unit token is still
// captured, just wrapped as "Unknown '<token>'" rather than dropped.
func extractWeatherTag(wx *aprsparse.Weather, cur *Cursor) {
	rest := cur.Remaining()
	if rest == "" || len(rest) > 6 {
		return
	}
	cur.Take(len(rest))

	if sw, ok := weatherSoftwareTypes[rest[0]]; ok {
		wx.SoftwareType = sw
	} else {
		wx.SoftwareType = fmt.Sprintf("Unknown '%c'", rest[0])
	}

	unit := rest[1:]
	if unit == "" {
		return
	}
	if weatherKnownUnits[unit] {
		wx.WxUnit = unit
	} else {
		wx.WxUnit = fmt.Sprintf("Unknown '%s'", unit)
	}
}
