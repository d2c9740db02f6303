package parser

import "aprsparse"

// parseTimestamp decodes a 7-byte DHM/HMS timestamp (6 digits + one
// indicator byte) from the front of cur, per spec.md §4 step 1 / §9. Only
// 'h' (HMS, always Zulu) and '/' (DHM, local-to-sender) get distinct
// handling; every other indicator byte — including the canonical 'z' but
// also whatever a real feed sends — is tolerated as DHM/Zulu, matching the
// teacher's own tolerance (spec.md §9 Open Question).
func parseTimestamp(cur *Cursor) (*aprsparse.Timestamp, error) {
	digits, ok := cur.Peek(6)
	if !ok || !isDigit(digits) {
		return nil, cur.Fail("invalid timestamp format")
	}
	indicatorStr, ok := cur.Peek(7)
	if !ok {
		return nil, cur.Fail("invalid timestamp format")
	}
	indicator := indicatorStr[6]
	cur.Take(7)

	a, _ := atoi2(digits[0:2])
	b, _ := atoi2(digits[2:4])
	c, _ := atoi2(digits[4:6])

	ts := &aprsparse.Timestamp{}
	if indicator == 'h' {
		ts.Hour = a
		ts.Minute = b
		ts.Second = intPtr(c)
		ts.TimeZone = "utc"
	} else {
		ts.Day = intPtr(a)
		ts.Hour = b
		ts.Minute = c
		if indicator == '/' {
			ts.TimeZone = "local_to_sender"
		} else {
			ts.TimeZone = "utc"
		}
	}
	return ts, nil
}

func atoi2(s string) (int, bool) {
	if len(s) != 2 || !isDigit(s) {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}
