package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMessagePlainText(t *testing.T) {
	rec, err := Parse("FROMCALL>APRS,WIDE1-1::TOCALL   :Hello there{001")
	require.NoError(t, err)

	require.NotNil(t, rec.Message)
	assert.Equal(t, "TOCALL", rec.Message.Addressee)
	assert.Equal(t, "Hello there", rec.Message.Text)
	assert.Equal(t, "001", rec.Message.MessageNo)
	assert.Equal(t, "message", rec.Message.Format)
}

func TestParseMessageAck(t *testing.T) {
	rec, err := Parse("FROMCALL>APRS,WIDE1-1::TOCALL   :ack001")
	require.NoError(t, err)

	require.NotNil(t, rec.Message)
	assert.Equal(t, "ack", rec.Message.Response)
	assert.Equal(t, "001", rec.Message.MessageNo)
}

func TestParseMessageReject(t *testing.T) {
	rec, err := Parse("FROMCALL>APRS,WIDE1-1::TOCALL   :rej001")
	require.NoError(t, err)

	require.NotNil(t, rec.Message)
	assert.Equal(t, "rej", rec.Message.Response)
	assert.Equal(t, "001", rec.Message.MessageNo)
}

func TestParseMessageGroupBulletin(t *testing.T) {
	rec, err := Parse("FROMCALL>APRS,WIDE1-1::BLN1WX   :Severe weather warning")
	require.NoError(t, err)

	require.NotNil(t, rec.Message)
	assert.Equal(t, "group-bulletin", rec.Message.Format)
	assert.Equal(t, "1", rec.Message.BulletinID)
	assert.Equal(t, "WX", rec.Message.Identifier)
}

func TestParseMessageBulletin(t *testing.T) {
	rec, err := Parse("FROMCALL>APRS,WIDE1-1::BLN1     :General bulletin")
	require.NoError(t, err)

	require.NotNil(t, rec.Message)
	assert.Equal(t, "bulletin", rec.Message.Format)
	assert.Equal(t, "1", rec.Message.BulletinID)
}

func TestParseMessageAnnouncement(t *testing.T) {
	rec, err := Parse("FROMCALL>APRS,WIDE1-1::NWS-ABC  :Weather alert")
	require.NoError(t, err)

	require.NotNil(t, rec.Message)
	assert.Equal(t, "announcement", rec.Message.Format)
	assert.Equal(t, "ABC", rec.Message.Identifier)
}

func TestParseMessageMissingBodySeparatorErrors(t *testing.T) {
	_, err := Parse("FROMCALL>APRS,WIDE1-1::TOCALL:hi")
	require.Error(t, err)
}
