package parser

import "aprsparse"

// parseObject implements spec.md §4.3's ';' handler: a 9-byte name and a
// state byte, then falls through to the '@' (position-with-timestamp)
// handler.
func parseObject(rec *aprsparse.Record, cur *Cursor) error {
	name, ok := cur.Take(9)
	if !ok {
		return cur.Fail("object name must be 9 bytes long")
	}
	stateByte, ok := cur.Take(1)
	if !ok {
		return cur.Fail("object state indicator missing")
	}
	alive, err := objectState(stateByte)
	if err != nil {
		return cur.Fail(err.Error())
	}

	rec.Object = &aprsparse.ObjectItem{Name: name, Alive: alive}
	return parsePosition(rec, cur, true)
}

// parseItem implements spec.md §4.3's ')' handler: a 3..9-byte name
// terminated by '!'/'_', then falls through to the '!' (position without
// timestamp) handler.
func parseItem(rec *aprsparse.Record, cur *Cursor) error {
	rest := cur.Remaining()
	for i := 0; i < len(rest); i++ {
		if rest[i] == '!' || rest[i] == '_' {
			if i < 3 || i > 9 {
				return cur.Fail("item name must be 3..9 bytes long")
			}
			name := rest[:i]
			alive := rest[i] == '!'
			cur.Reset(rest[i+1:])
			rec.Item = &aprsparse.ObjectItem{Name: name, Alive: alive}
			return parsePosition(rec, cur, false)
		}
	}
	return cur.Fail("item state indicator missing")
}

func objectState(b string) (bool, error) {
	switch b {
	case "*":
		return true, nil
	case "_":
		return false, nil
	default:
		return false, errObjectState
	}
}

var errObjectState = simpleErr("invalid object/item state indicator")

type simpleErr string

func (e simpleErr) Error() string { return string(e) }
