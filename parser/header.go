package parser

import (
	"strings"

	"aprsparse"
)

// qConstructTail matches a server-appended Q-construct token at the tail
// of the path, e.g. ",qAC,T2TEXAS" (spec.md §4.2).
var qConstructTail = aprsparse.CompiledRegexps.Get(`,qA[CXUoSrR],[0-9A-Z-]{1,8}$`)

// splitHeader implements spec.md §4.1: locate the first '>' (from), then
// the next ',' or ':' (to / path start), then scan comma-separated path
// tokens up to the ':' that starts the information field.
func splitHeader(cur *Cursor) (from, to string, path []string, err error) {
	raw := cur.Remaining()

	gt := strings.IndexByte(raw, '>')
	if gt < 0 {
		return "", "", nil, cur.Fail("Could not parse the FROM")
	}
	from = raw[:gt]
	rest := raw[gt+1:]

	colon := strings.IndexByte(rest, ':')
	if colon < 0 {
		return "", "", nil, cur.Fail("Could not parse the PATH")
	}

	comma := strings.IndexByte(rest, ',')
	var pathStr string
	if comma >= 0 && comma < colon {
		to = rest[:comma]
		pathStr = rest[comma+1 : colon]
	} else {
		to = rest[:colon]
		pathStr = ""
	}

	if pathStr != "" {
		for _, tok := range strings.Split(pathStr, ",") {
			if tok != "" {
				path = append(path, tok)
			}
		}
	}

	cur.Reset(rest[colon+1:])
	return from, to, path, nil
}

// stripQConstruct removes a server-appended ",qA?,CALL" tail from the
// path (spec.md §4.2). The tail is matched against the comma-joined path
// string so the existing token boundaries are respected.
func stripQConstruct(path []string) []string {
	if len(path) < 2 {
		return path
	}
	joined := "," + strings.Join(path, ",")
	if loc := qConstructTail.FindStringIndex(joined); loc != nil && loc[1] == len(joined) {
		return path[:len(path)-2]
	}
	return path
}
