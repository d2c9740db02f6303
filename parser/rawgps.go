package parser

import "aprsparse"

// parseRawGPS implements spec.md §4.3's '$' handler: the entire remainder
// is a raw NMEA-like sentence.
func parseRawGPS(rec *aprsparse.Record, cur *Cursor) error {
	sentence := cur.TakeAll()
	rec.RawGPS = &sentence
	return nil
}
