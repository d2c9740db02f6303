package parser

import (
	"strings"

	"aprsparse"
)

// parseMessage implements spec.md §4.9's ':' data type: a 9-byte
// addressee, then a colon, then a body that is either an ack/reject, a
// message with a trailing "{id" message number, or plain text. When the
// addressee is the sender's own callsign and the body starts with PARM.,
// UNIT., EQNS. or BITS., the body is instead a telemetry-definition field
// (delegated to parseTelemetryDefinition).
func parseMessage(rec *aprsparse.Record, cur *Cursor) error {
	addressee, ok := cur.Take(9)
	if !ok {
		return cur.Fail("message addressee must be 9 bytes long")
	}
	if _, ok := cur.Take(1); !ok {
		return cur.Fail("message missing body separator")
	}
	body := cur.TakeAll()

	trimmedAddressee := strings.TrimRight(addressee, " ")
	trimmedSender := strings.TrimRight(rec.From, " ")

	if trimmedAddressee == trimmedSender && parseTelemetryDefinition(rec, trimmedAddressee, body) {
		return nil
	}

	msg := &aprsparse.Message{Addressee: trimmedAddressee, Format: "message"}
	classifyMessageAddressee(msg, trimmedAddressee)

	switch {
	case strings.HasPrefix(body, "ack"):
		msg.Response = "ack"
		msg.MessageNo = body[len("ack"):]
	case strings.HasPrefix(body, "rej"):
		msg.Response = "rej"
		msg.MessageNo = body[len("rej"):]
	default:
		if text, id, ok := splitMessageID(body); ok {
			msg.Text = text
			msg.MessageNo = id
		} else {
			msg.Text = body
		}
	}

	rec.Message = msg
	return nil
}

// classifyMessageAddressee implements the bulletin/announcement
// supplement to spec.md §4.9: an addressee of the form "BLN" or
// "BLNn" or "BLNngroup" identifies a (group) bulletin rather than a
// direct message; "NWS-" identifies a weather-service bulletin carried
// the same way.
func classifyMessageAddressee(msg *aprsparse.Message, addressee string) {
	switch {
	case strings.HasPrefix(addressee, "BLN") && len(addressee) >= 4 && isDigit(addressee[3:4]):
		msg.BulletinID = addressee[3:4]
		if len(addressee) > 4 {
			msg.Format = "group-bulletin"
			msg.Identifier = addressee[4:]
		} else {
			msg.Format = "bulletin"
		}
	case strings.HasPrefix(addressee, "BLN"):
		msg.Format = "bulletin"
	case strings.HasPrefix(addressee, "NWS-"):
		msg.Format = "announcement"
		msg.Identifier = addressee[len("NWS-"):]
	}
}

// splitMessageID splits a message body on a trailing "{<digits>" message
// number (spec.md §4.9), returning ok=false when no non-empty digit run
// is present.
func splitMessageID(body string) (text, id string, ok bool) {
	idx := strings.IndexByte(body, '{')
	if idx < 0 {
		return "", "", false
	}
	rest := body[idx+1:]
	i := 0
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		i++
	}
	if i == 0 {
		return "", "", false
	}
	return body[:idx], rest[:i], true
}
