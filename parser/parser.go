// Package parser implements the APRS frame decoder: spec.md §4's
// recursive-descent pipeline over a single textual frame, producing a
// normalized aprsparse.Record or a structured aprsparse.ParseError.
package parser

import (
	"strings"

	"aprsparse"
)

// Parse decodes a single APRS frame. It is a pure function: no I/O, no
// shared state, safe to call concurrently on independent inputs
// (spec.md §5). On error the returned Record carries only Raw.
func Parse(raw string) (aprsparse.Record, error) {
	rec := aprsparse.Record{Raw: raw}

	trimmed := strings.TrimRight(raw, "\r\n")
	cur := NewCursor(trimmed)

	from, to, path, err := splitHeader(cur)
	if err != nil {
		return aprsparse.Record{Raw: raw}, err
	}
	rec.From = from
	rec.To = to
	rec.Path = stripQConstruct(path)

	if err := dispatch(&rec, cur); err != nil {
		return aprsparse.Record{Raw: raw}, err
	}

	if err := validateStrings(&rec); err != nil {
		return aprsparse.Record{Raw: raw}, err
	}

	return rec, nil
}

// dispatch implements spec.md §4.3's data-type table.
func dispatch(rec *aprsparse.Record, cur *Cursor) error {
	typeByte, ok := cur.Take(1)
	if !ok {
		return cur.Fail("no data-type identifier")
	}

	switch typeByte {
	case "!", "=":
		return parsePosition(rec, cur, false)
	case "@", "/":
		return parsePosition(rec, cur, true)
	case "'", "`", "\x1c", "\x1d":
		return parseMicE(rec, cur)
	case ">":
		return parseStatus(rec, cur)
	case ":":
		return parseMessage(rec, cur)
	case "T":
		return parseTelemetryReport(rec, cur)
	case ";":
		return parseObject(rec, cur)
	case ")":
		return parseItem(rec, cur)
	case "$":
		return parseRawGPS(rec, cur)
	case "_":
		return parsePositionlessWeather(rec, cur)
	default:
		if len(typeByte) == 1 && unimplementedDataTypes[typeByte[0]] {
			return cur.Fail("Unimplemented data type identifier")
		}
		return cur.Fail("Not in spec / reserved")
	}
}
