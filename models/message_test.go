package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseActionMessage_KnownActions(t *testing.T) {
	cases := []struct {
		raw  string
		want Action
	}{
		{`{"action":"start_game"}`, ActionStartGame},
		{`{"action":"accept_booking","round":3}`, ActionAcceptBooking},
		{`{"action":"reject_booking"}`, ActionRejectBooking},
		{`{"action":"dance"}`, ActionUnknown},
		{`{}`, ActionUnknown},
	}
	for _, tc := range cases {
		msg, err := ParseActionMessage([]byte(tc.raw))
		require.NoError(t, err, tc.raw)
		assert.Equal(t, tc.want, msg.Kind(), tc.raw)
	}
}

func TestParseActionMessage_Invalid(t *testing.T) {
	_, err := ParseActionMessage([]byte("not json"))
	assert.Error(t, err)
}

func TestActionMessage_TargetRound(t *testing.T) {
	msg, err := ParseActionMessage([]byte(`{"action":"accept_booking","round":2}`))
	require.NoError(t, err)
	assert.Equal(t, 2, msg.TargetRound())

	// Clients that do not echo a round target whichever round is current.
	msg, err = ParseActionMessage([]byte(`{"action":"accept_booking"}`))
	require.NoError(t, err)
	assert.Equal(t, AnyRound, msg.TargetRound())
}
