package parser

import (
	"strings"

	"aprsparse"
)

var (
	altitudeRe = aprsparse.CompiledRegexps.Get(`/A=(-?[0-9]{6})`)
	daoRe      = aprsparse.CompiledRegexps.Get(`![\x21-\x7b][\x20-\x7b]{2}!`)
)

// parseComment implements spec.md §4.13 on the non-weather path: an
// optional data extension, then the free-text comment, which is itself
// post-processed for altitude, base-91 telemetry, and a DAO token.
func parseComment(rec *aprsparse.Record, cur *Cursor) {
	parseDataExtensions(rec, cur)
	text := cur.TakeAll()
	setComment(rec, text)
}

// setComment applies spec.md §4.13's comment post-processing (altitude
// extraction, base-91 telemetry extraction, DAO stripping, trimming) and
// stores whatever remains, if anything, as the comment.
func setComment(rec *aprsparse.Record, text string) {
	text = extractAltitude(rec, text)
	text = extractBase91Telemetry(rec, text)
	text = daoRe.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	rec.Comment = &text
}

// extractAltitude pulls a "/A=######" altitude token out of text, feet
// converted to meters, and adds it to the position. Unlike the telemetry
// and DAO tokens, the altitude token is left in the comment text
// (spec.md §4.13 step 1).
func extractAltitude(rec *aprsparse.Record, text string) string {
	loc := altitudeRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return text
	}
	digits := text[loc[2]:loc[3]]
	alt := float64(atoiSigned(digits)) * metersPerFoot
	if rec.Position != nil {
		rec.Position.Altitude = floatPtr(alt)
	}
	return text
}

func atoiSigned(s string) int {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	n := atoiUnsafe(s)
	if neg {
		return -n
	}
	return n
}

// extractBase91Telemetry pulls a "|ccSSSS...|" base-91 telemetry block out
// of a comment (spec.md §4.10 / §4.13) and returns the text with the block
// removed. The block carries a 2-char sequence counter followed by 1..5
// more 2-char base-91 channel values.
func extractBase91Telemetry(rec *aprsparse.Record, text string) string {
	start := -1
	for i := 0; i < len(text); i++ {
		if text[i] == '|' {
			start = i
			break
		}
	}
	if start < 0 {
		return text
	}
	end := -1
	for i := start + 1; i < len(text); i++ {
		if text[i] == '|' {
			end = i
			break
		}
	}
	if end < 0 {
		return text
	}
	body := text[start+1 : end]
	if len(body) < 4 || len(body)%2 != 0 || len(body) > 12 {
		return text
	}

	seq, err := aprsparse.ToDecimal(body[0:2])
	if err != nil {
		return text
	}
	var values []float64
	for i := 2; i+2 <= len(body); i += 2 {
		v, err := aprsparse.ToDecimal(body[i : i+2])
		if err != nil {
			return text
		}
		values = append(values, float64(v))
	}

	rec.Telemetry = &aprsparse.Telemetry{
		SequenceCounter: intPtr(seq),
		Values:          values,
	}
	return text[:start] + text[end+1:]
}
