package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseObjectAlive(t *testing.T) {
	rec, err := Parse("FROMCALL>APRS,WIDE1-1:;LEADER   *092345z4903.50N/07201.75W-test object")
	require.NoError(t, err)

	require.NotNil(t, rec.Object)
	assert.Equal(t, "LEADER   ", rec.Object.Name)
	assert.True(t, rec.Object.Alive)
	require.NotNil(t, rec.Position)
	require.NotNil(t, rec.Timestamp)
}

func TestParseObjectKilled(t *testing.T) {
	rec, err := Parse("FROMCALL>APRS,WIDE1-1:;LEADER   _092345z4903.50N/07201.75W-test object")
	require.NoError(t, err)

	require.NotNil(t, rec.Object)
	assert.False(t, rec.Object.Alive)
}

func TestParseObjectBadStateByte(t *testing.T) {
	_, err := Parse("FROMCALL>APRS,WIDE1-1:;LEADER   Q092345z4903.50N/07201.75W-test object")
	require.Error(t, err)
}

func TestParseItemAlive(t *testing.T) {
	rec, err := Parse("FROMCALL>APRS,WIDE1-1:)MAILBOX!4903.50N/07201.75W-test item")
	require.NoError(t, err)

	require.NotNil(t, rec.Item)
	assert.Equal(t, "MAILBOX", rec.Item.Name)
	assert.True(t, rec.Item.Alive)
	require.NotNil(t, rec.Position)
}

func TestParseItemKilled(t *testing.T) {
	rec, err := Parse("FROMCALL>APRS,WIDE1-1:)MAILBOX_4903.50N/07201.75W-test item")
	require.NoError(t, err)

	require.NotNil(t, rec.Item)
	assert.False(t, rec.Item.Alive)
}

func TestParseItemNameTooShortErrors(t *testing.T) {
	_, err := Parse("FROMCALL>APRS,WIDE1-1:)AB!4903.50N/07201.75W-x")
	require.Error(t, err)
}

func TestParseItemMissingStateIndicatorErrors(t *testing.T) {
	_, err := Parse("FROMCALL>APRS,WIDE1-1:)MAILBOX")
	require.Error(t, err)
}
