package parser

import "aprsparse"

// Cursor threads a byte-string remainder through the decoder pipeline, the
// way spec.md §9 asks: a small type with take/peek/remaining instead of the
// teacher's ad-hoc (string, error) tuples.
type Cursor struct {
	raw  string
	rest string
}

// NewCursor starts a cursor over the full raw packet.
func NewCursor(raw string) *Cursor {
	return &Cursor{raw: raw, rest: raw}
}

// Remaining returns everything not yet consumed.
func (c *Cursor) Remaining() string { return c.rest }

// Raw returns the original, untouched input.
func (c *Cursor) Raw() string { return c.raw }

// Reset replaces the remainder, used when a sub-parser computes the new
// remainder itself (e.g. header splitting, regex-driven extraction).
func (c *Cursor) Reset(rest string) { c.rest = rest }

// Peek returns the next n bytes without consuming them.
func (c *Cursor) Peek(n int) (string, bool) {
	if len(c.rest) < n {
		return "", false
	}
	return c.rest[:n], true
}

// Take consumes and returns the next n bytes.
func (c *Cursor) Take(n int) (string, bool) {
	s, ok := c.Peek(n)
	if !ok {
		return "", false
	}
	c.rest = c.rest[n:]
	return s, true
}

// TakeAll consumes and returns everything left.
func (c *Cursor) TakeAll() string {
	s := c.rest
	c.rest = ""
	return s
}

// Len returns the number of unconsumed bytes.
func (c *Cursor) Len() int { return len(c.rest) }

// Fail builds a ParseError anchored at the cursor's current position.
func (c *Cursor) Fail(message string) error {
	return aprsparse.NewParseError(c.raw, c.rest, message)
}
