package parser

import (
	"testing"

	"aprsparse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUncompressedPositionWithCourseSpeedLeavesPHGInComment(t *testing.T) {
	rec, err := Parse("FROMCALL>APRS,WIDE1-1:!4903.50N/07201.75W>088/036PHG5130Test")
	require.NoError(t, err)

	require.NotNil(t, rec.Position)
	assert.InDelta(t, 49.058333, rec.Position.Latitude.Degrees, 1e-5)
	assert.Equal(t, aprsparse.PrecisionHundredthMinute, rec.Position.Latitude.Precision)
	assert.InDelta(t, -72.029167, rec.Position.Longitude.Degrees, 1e-5)
	assert.Equal(t, "/>", rec.Symbol)

	require.NotNil(t, rec.Course)
	assert.Equal(t, 88.0, rec.Course.Direction)
	assert.InDelta(t, 36*knotsToMS, rec.Course.SpeedMS, 1e-9)

	require.NotNil(t, rec.Antenna)
	assert.InDelta(t, 25, *rec.Antenna.PowerW, 1e-9)
	assert.Equal(t, "omnidirectional", rec.Antenna.Directivity)

	require.NotNil(t, rec.Comment)
	assert.Equal(t, "Test", *rec.Comment)
}

func TestParseUncompressedPositionAmbiguity(t *testing.T) {
	rec, err := Parse("FROMCALL>APRS,WIDE1-1:!4903.5 N/07201.7 W>Test")
	require.NoError(t, err)

	require.NotNil(t, rec.Position)
	assert.Equal(t, aprsparse.PrecisionTenthMinute, rec.Position.Latitude.Precision)
	assert.Equal(t, aprsparse.PrecisionTenthMinute, rec.Position.Longitude.Precision)
	assert.InDelta(t, 49.058333, rec.Position.Latitude.Degrees, 1e-5)
	assert.InDelta(t, -72.028333, rec.Position.Longitude.Degrees, 1e-5)
}

func TestParseCompressedPositionWithCourseSpeed(t *testing.T) {
	latB91, err := aprsparse.FromDecimal(19046300, 4)
	require.NoError(t, err)
	lonB91, err := aprsparse.FromDecimal(19998615, 4)
	require.NoError(t, err)

	raw := "FROMCALL>APRS,WIDE1-1:!/" + latB91 + lonB91 + ">7!!"

	rec, err := Parse(raw)
	require.NoError(t, err)

	require.NotNil(t, rec.Position)
	assert.InDelta(t, 40.0, rec.Position.Latitude.Degrees, 1e-6)
	assert.InDelta(t, -75.0, rec.Position.Longitude.Degrees, 1e-6)
	assert.Equal(t, "/>", rec.Symbol)

	require.NotNil(t, rec.Course)
	assert.Equal(t, 88.0, rec.Course.Direction)
	assert.Equal(t, 0.0, rec.Course.SpeedMS)
}

func TestParseCompressedPositionWithAltitude(t *testing.T) {
	latB91, err := aprsparse.FromDecimal(19046300, 4)
	require.NoError(t, err)
	lonB91, err := aprsparse.FromDecimal(19998615, 4)
	require.NoError(t, err)

	// compType byte 'S' (83-33=50, 50&0x18==0x10) selects the altitude branch.
	raw := "FROMCALL>APRS,WIDE1-1:!/" + latB91 + lonB91 + ">!!S"

	rec, err := Parse(raw)
	require.NoError(t, err)

	require.NotNil(t, rec.Position)
	require.NotNil(t, rec.Position.Altitude)
}

func TestParsePositionWrongLatitudeDirectionFallsToCompressed(t *testing.T) {
	// A direction byte outside [NSns] fails the uncompressed shape regex,
	// so this is decoded as a (probably nonsensical but non-erroring)
	// compressed position rather than raising a decode error.
	rec, err := Parse("FROMCALL>APRS,WIDE1-1:!4903.50Q/07201.75W>Test")
	require.NoError(t, err)
	assert.NotNil(t, rec.Position)
}

func TestParsePositionTooShortErrors(t *testing.T) {
	_, err := Parse("FROMCALL>APRS,WIDE1-1:!4903.50N")
	require.Error(t, err)
}
