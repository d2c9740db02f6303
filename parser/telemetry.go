package parser

import (
	"strconv"
	"strings"

	"aprsparse"
)

// parseTelemetryReport implements spec.md §4.10's 'T' data type: "#" then
// either a "MIC" sequence marker or an all-digit sequence counter, a
// comma-separated list of up to 5 numeric channel values (empty items
// skipped), and a trailing digital bit string.
func parseTelemetryReport(rec *aprsparse.Record, cur *Cursor) error {
	rest := cur.TakeAll()
	if rest == "" || rest[0] != '#' {
		return cur.Fail("telemetry report must start with '#'")
	}
	rest = rest[1:]

	var seq *int
	switch {
	case strings.HasPrefix(rest, "MIC,"):
		rest = rest[len("MIC,"):]
	case strings.HasPrefix(rest, "MIC"):
		rest = rest[len("MIC"):]
	default:
		comma := strings.IndexByte(rest, ',')
		if comma < 1 || comma > 5 || !isDigit(rest[:comma]) {
			return cur.Fail("invalid telemetry sequence counter")
		}
		seq = intPtr(atoiUnsafe(rest[:comma]))
		rest = rest[comma+1:]
	}

	if rest == "" {
		return cur.Fail("empty telemetry report")
	}

	lastComma := strings.LastIndexByte(rest, ',')
	var channelFields []string
	tail := rest
	if lastComma >= 0 {
		channelFields = strings.Split(rest[:lastComma], ",")
		tail = rest[lastComma+1:]
	}

	digitRun := 0
	for digitRun < len(tail) && digitRun < 8 && (tail[digitRun] == '0' || tail[digitRun] == '1') {
		digitRun++
	}
	if digitRun == 0 {
		return cur.Fail("telemetry digital field must be 0/1 characters")
	}
	digits := tail[:digitRun]
	trailingComment := tail[digitRun:]

	var values []float64
	for _, f := range channelFields {
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return cur.Fail("invalid telemetry channel value")
		}
		values = append(values, v)
	}

	bits := make([]int, len(digits))
	for i := 0; i < len(digits); i++ {
		bits[i] = int(digits[i] - '0')
	}

	if trailingComment != "" {
		setComment(rec, trailingComment)
	}

	rec.Telemetry = &aprsparse.Telemetry{
		SequenceCounter: seq,
		Values:          values,
		Bits:            bits,
	}
	return nil
}

// parseTelemetryDefinition implements the PARM./UNIT./EQNS./BITS. message
// body delegation of spec.md §4.9: the message's addressee equals the
// sender, so the body is interpreted as a telemetry-definition field
// instead of a human message.
func parseTelemetryDefinition(rec *aprsparse.Record, addressee, body string) bool {
	def := rec.Telemetry
	if def == nil {
		def = &aprsparse.Telemetry{}
	}
	if def.Definition == nil {
		def.Definition = &aprsparse.TelemetryDefinition{}
	}

	switch {
	case strings.HasPrefix(body, "PARM."):
		def.Definition.Parm = strings.Split(body[len("PARM."):], ",")
	case strings.HasPrefix(body, "UNIT."):
		def.Definition.Unit = strings.Split(body[len("UNIT."):], ",")
	case strings.HasPrefix(body, "EQNS."):
		raw := strings.Split(body[len("EQNS."):], ",")
		if len(raw) > 15 {
			raw = raw[:15]
		}
		raw = raw[:len(raw)-len(raw)%3]
		eqns := make([][3]float64, 0, len(raw)/3)
		for i := 0; i+3 <= len(raw); i += 3 {
			var tuple [3]float64
			ok := true
			for j := 0; j < 3; j++ {
				v, err := strconv.ParseFloat(strings.TrimSpace(raw[i+j]), 64)
				if err != nil {
					ok = false
					break
				}
				tuple[j] = v
			}
			if ok {
				eqns = append(eqns, tuple)
			}
		}
		def.Definition.Eqns = eqns
	case strings.HasPrefix(body, "BITS."):
		rest := body[len("BITS."):]
		i := 0
		for i < len(rest) && (rest[i] == '0' || rest[i] == '1') {
			i++
		}
		def.Definition.Bits = rest[:i]
		if i < len(rest) && rest[i] == ',' {
			def.Definition.ProjectTitle = rest[i+1:]
		}
	default:
		return false
	}

	def.Definition.To = addressee
	rec.Telemetry = def
	return true
}
