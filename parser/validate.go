package parser

import (
	"unicode/utf8"

	"aprsparse"
)

// validateStrings implements spec.md §4.14: every user-visible text field,
// if present, must be a well-formed Unicode string.
func validateStrings(rec *aprsparse.Record) error {
	check := func(name, value string) error {
		if !utf8.ValidString(value) {
			return aprsparse.NewParseError(rec.Raw, rec.Raw, name+" is not a valid string")
		}
		return nil
	}

	if err := check("from", rec.From); err != nil {
		return err
	}
	if err := check("to", rec.To); err != nil {
		return err
	}
	for _, p := range rec.Path {
		if err := check("path", p); err != nil {
			return err
		}
	}
	if rec.Symbol != "" {
		if err := check("symbol", rec.Symbol); err != nil {
			return err
		}
	}
	if rec.RawGPS != nil {
		if err := check("raw_gps", *rec.RawGPS); err != nil {
			return err
		}
	}
	if rec.Device != nil {
		if err := check("device", *rec.Device); err != nil {
			return err
		}
	}
	if rec.Weather != nil {
		if err := check("weather.wx_unit", rec.Weather.WxUnit); err != nil {
			return err
		}
		if err := check("weather.software_type", rec.Weather.SoftwareType); err != nil {
			return err
		}
	}
	return nil
}
