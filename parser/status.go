package parser

import "aprsparse"

var (
	statusDHMZulu     = aprsparse.CompiledRegexps.Get(`^(\d{6})z(.*)$`)
	statusMaidenhead6 = aprsparse.CompiledRegexps.Get(`^([A-Ra-r]{2}[0-9]{2}[A-Xa-x]{2})(.)(.) (.*)$`)
	statusMaidenhead4 = aprsparse.CompiledRegexps.Get(`^([A-Ra-r]{2}[0-9]{2})(.)(.)$`)
)

// parseStatus implements spec.md §4.8.
func parseStatus(rec *aprsparse.Record, cur *Cursor) error {
	rest := cur.TakeAll()

	if m := statusDHMZulu.FindStringSubmatch(rest); m != nil {
		digits := m[1]
		day := int(digits[0]-'0')*10 + int(digits[1]-'0')
		hour := int(digits[2]-'0')*10 + int(digits[3]-'0')
		minute := int(digits[4]-'0')*10 + int(digits[5]-'0')
		rec.Timestamp = &aprsparse.Timestamp{
			Day: intPtr(day), Hour: hour, Minute: minute, TimeZone: "utc",
		}
		setStatus(rec, m[2])
		return nil
	}

	if m := statusMaidenhead6.FindStringSubmatch(rest); m != nil {
		rec.Position = &aprsparse.Position{Maidenhead: m[1]}
		rec.Symbol = m[2] + m[3]
		setStatus(rec, m[4])
		return nil
	}

	if m := statusMaidenhead4.FindStringSubmatch(rest); m != nil {
		rec.Position = &aprsparse.Position{Maidenhead: m[1]}
		rec.Symbol = m[2] + m[3]
		return nil
	}

	setStatus(rec, rest)
	return nil
}

func setStatus(rec *aprsparse.Record, text string) {
	rec.Status = &text
}
