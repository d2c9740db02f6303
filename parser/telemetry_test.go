package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTelemetryReportBasic(t *testing.T) {
	rec, err := Parse("FROMCALL>APRS,WIDE1-1:T#005,123,045,067,,089,01101000")
	require.NoError(t, err)

	require.NotNil(t, rec.Telemetry)
	require.NotNil(t, rec.Telemetry.SequenceCounter)
	assert.Equal(t, 5, *rec.Telemetry.SequenceCounter)
	assert.Equal(t, []float64{123, 45, 67, 89}, rec.Telemetry.Values)
	assert.Equal(t, []int{0, 1, 1, 0, 1, 0, 0, 0}, rec.Telemetry.Bits)
	assert.Nil(t, rec.Comment)
}

func TestParseTelemetryReportWithMICSequence(t *testing.T) {
	rec, err := Parse("FROMCALL>APRS,WIDE1-1:T#MIC,100,200,1Extra text")
	require.NoError(t, err)

	require.NotNil(t, rec.Telemetry)
	assert.Nil(t, rec.Telemetry.SequenceCounter)
	assert.Equal(t, []float64{100, 200}, rec.Telemetry.Values)
	assert.Equal(t, []int{1}, rec.Telemetry.Bits)
	require.NotNil(t, rec.Comment)
	assert.Equal(t, "Extra text", *rec.Comment)
}

func TestParseTelemetryReportMissingHash(t *testing.T) {
	_, err := Parse("FROMCALL>APRS,WIDE1-1:T005,1,2,3,4,5,00000000")
	require.Error(t, err)
}

func TestParseTelemetryDefinitionPARM(t *testing.T) {
	rec, err := Parse("FROMCALL>APRS,WIDE1-1::FROMCALL :PARM.Volts,Temp,A1,A2,A3")
	require.NoError(t, err)

	require.NotNil(t, rec.Telemetry)
	require.NotNil(t, rec.Telemetry.Definition)
	assert.Equal(t, []string{"Volts", "Temp", "A1", "A2", "A3"}, rec.Telemetry.Definition.Parm)
	assert.Equal(t, "FROMCALL", rec.Telemetry.Definition.To)
	assert.Nil(t, rec.Message)
}

func TestParseTelemetryDefinitionBITSWithProjectTitle(t *testing.T) {
	rec, err := Parse("FROMCALL>APRS,WIDE1-1::FROMCALL :BITS.11110000,Project Foo")
	require.NoError(t, err)

	require.NotNil(t, rec.Telemetry)
	require.NotNil(t, rec.Telemetry.Definition)
	assert.Equal(t, "11110000", rec.Telemetry.Definition.Bits)
	assert.Equal(t, "Project Foo", rec.Telemetry.Definition.ProjectTitle)
}
