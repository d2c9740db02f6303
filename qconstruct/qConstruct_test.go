package qconstruct

import (
	"testing"

	"aprsparse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyUnverifiedAppendsQAX(t *testing.T) {
	rec := &aprsparse.Record{From: "N0CALL", Path: []string{"WIDE1-1"}}
	config := &Config{
		ServerLogin:    "SERVER",
		ClientLogin:    "N0CALL",
		ConnectionType: ConnectionUnverified,
	}

	result, err := Apply(rec, config)
	require.NoError(t, err)

	assert.False(t, result.ShouldDrop)
	assert.Equal(t, []string{"WIDE1-1", "TCPXX*", "qAX", "SERVER"}, result.Path)
}

func TestApplyUnverifiedWrongFromCallDrops(t *testing.T) {
	rec := &aprsparse.Record{From: "OTHER", Path: []string{"WIDE1-1"}}
	config := &Config{
		ServerLogin:    "SERVER",
		ClientLogin:    "N0CALL",
		ConnectionType: ConnectionUnverified,
	}

	result, err := Apply(rec, config)
	require.NoError(t, err)
	assert.True(t, result.ShouldDrop)
}

func TestApplyVerifiedStandardAppendsQAC(t *testing.T) {
	rec := &aprsparse.Record{From: "N0CALL", Path: []string{"WIDE1-1"}}
	config := &Config{
		ServerLogin:    "SERVER",
		ClientLogin:    "N0CALL",
		ConnectionType: ConnectionVerified,
		IsVerified:     true,
	}

	result, err := Apply(rec, config)
	require.NoError(t, err)

	assert.Equal(t, []string{"WIDE1-1", "TCPIP*", "qAC", "SERVER"}, result.Path)
}

func TestApplyVerifiedOtherStationAppendsQAS(t *testing.T) {
	rec := &aprsparse.Record{From: "OTHER", Path: []string{"WIDE1-1"}}
	config := &Config{
		ServerLogin:    "SERVER",
		ClientLogin:    "N0CALL",
		ConnectionType: ConnectionVerified,
	}

	result, err := Apply(rec, config)
	require.NoError(t, err)

	assert.Equal(t, []string{"WIDE1-1", "qAS", "N0CALL"}, result.Path)
}

func TestApplyServerLoginLoopDetected(t *testing.T) {
	rec := &aprsparse.Record{From: "N0CALL", Path: []string{"WIDE1-1", "qAS", "SERVER"}}
	config := &Config{
		ServerLogin:    "SERVER",
		ClientLogin:    "N0CALL",
		ConnectionType: ConnectionVerified,
	}

	result, err := Apply(rec, config)
	require.NoError(t, err)

	assert.True(t, result.ShouldDrop)
	assert.True(t, result.IsLoop)
}

func TestApplyDuplicateCallsignLoopDetected(t *testing.T) {
	rec := &aprsparse.Record{From: "N0CALL", Path: []string{"RELAY1", "WIDE1-1", "RELAY1"}}
	config := &Config{
		ServerLogin:    "SERVER",
		ClientLogin:    "N0CALL",
		ConnectionType: ConnectionVerified,
	}

	result, err := Apply(rec, config)
	require.NoError(t, err)

	assert.True(t, result.ShouldDrop)
	assert.True(t, result.IsLoop)
}

func TestApplyQAZAlwaysDrops(t *testing.T) {
	rec := &aprsparse.Record{From: "N0CALL", Path: []string{"qAZ", "SOMECALL"}}
	config := &Config{
		ServerLogin:    "SERVER",
		ClientLogin:    "N0CALL",
		ConnectionType: ConnectionVerified,
	}

	result, err := Apply(rec, config)
	require.NoError(t, err)

	assert.True(t, result.ShouldDrop)
	assert.Equal(t, "qAZ construct - server-client command packet", result.DropReason)
}

func TestResultPathString(t *testing.T) {
	result := &Result{Path: []string{"WIDE1-1", "qAC", "SERVER"}}
	assert.Equal(t, "WIDE1-1,qAC,SERVER", result.PathString())
}

func TestIpToHexIPv4(t *testing.T) {
	result := &Result{}
	assert.Equal(t, "C0A80001", result.ipToHex("192.168.0.1"))
}

func TestIpToHexInvalidFallsBackToZero(t *testing.T) {
	result := &Result{}
	assert.Equal(t, "00000000", result.ipToHex("not-an-ip"))
}

func TestReplaceRewritesPath(t *testing.T) {
	out, err := Replace("N0CALL>APRS,WIDE1-1,WIDE2-1:>status text", "APRS", []string{"TCPIP*", "qAC", "SERVER"})
	require.NoError(t, err)
	assert.Equal(t, "N0CALL>APRS,TCPIP*,qAC,SERVER:>status text", out)
}

func TestReplaceMissingBodyErrors(t *testing.T) {
	_, err := Replace("N0CALL>APRS,WIDE1-1", "APRS", []string{"TCPIP*"})
	require.Error(t, err)
}
