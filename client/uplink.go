package client

import (
	"fmt"

	"aprsparse"
	"aprsparse/qconstruct"
)

// Uplink sends rec's raw frame upstream, rewriting its path per the Q
// construct rules first when the client was built WithQConstruct. This is
// how a client also acting as an IGate corrects the path of a packet it
// is relaying rather than originating (spec.md §6's client is otherwise
// a pure consumer of the feed).
//
// A packet the Q construct rules determine to be a routing loop or
// otherwise undeliverable is not sent; the returned error explains why.
func (c *Client) Uplink(rec *aprsparse.Record, raw string) error {
	if c.QConstruct == nil {
		return c.Send(raw)
	}

	result, err := qconstruct.Apply(rec, c.QConstruct)
	if err != nil {
		return err
	}
	if result.ShouldDrop {
		c.logger.Warn("uplink dropped", "reason", result.DropReason)
		return fmt.Errorf("uplink dropped: %s", result.DropReason)
	}

	rewritten, err := qconstruct.Replace(raw, rec.To, result.Path)
	if err != nil {
		return err
	}

	return c.Send(rewritten)
}
