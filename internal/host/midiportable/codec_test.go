package midiportable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"

	"github.com/nvieira/notepc/sdk/contracts"
)

func TestEventFromMessage(t *testing.T) {
	tests := []struct {
		name string
		msg  midi.Message
		want contracts.Event
	}{
		{
			"note on",
			midi.NoteOn(2, 60, 100),
			contracts.Event{Kind: contracts.NoteOn, Channel: 2, Data1: 60, Data2: 100},
		},
		{
			"control change",
			midi.ControlChange(0, 7, 90),
			contracts.Event{Kind: contracts.ControlChange, Channel: 0, Data1: 7, Data2: 90},
		},
		{
			"program change",
			midi.ProgramChange(5, 12),
			contracts.Event{Kind: contracts.ProgramChange, Channel: 5, Data1: 12},
		},
		{
			"pitch bend center",
			midi.Pitchbend(1, 0),
			contracts.Event{Kind: contracts.PitchBend, Channel: 1, Data1: 0, Data2: 64},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := eventFromMessage(tt.msg, 0)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEventFromMessageTimestamp(t *testing.T) {
	got, ok := eventFromMessage(midi.NoteOn(0, 60, 1), 3)
	require.True(t, ok)
	assert.Equal(t, uint64(3_000_000), got.Timestamp)
}

func TestMessageFromEvent(t *testing.T) {
	msg := messageFromEvent(contracts.Event{
		Kind: contracts.ProgramChange, Channel: 3, Data1: 42,
	})
	require.NotNil(t, msg)

	var channel, program uint8
	require.True(t, msg.GetProgramChange(&channel, &program))
	assert.Equal(t, uint8(3), channel)
	assert.Equal(t, uint8(42), program)
}

func TestMessageRoundTrip(t *testing.T) {
	msgs := []midi.Message{
		midi.NoteOn(0, 24, 100),
		midi.ControlChange(9, 1, 64),
		midi.ProgramChange(15, 99),
		midi.AfterTouch(4, 80),
		midi.PolyAfterTouch(2, 60, 40),
		midi.Pitchbend(7, -8192),
		midi.Pitchbend(7, 8191),
	}

	for _, msg := range msgs {
		ev, ok := eventFromMessage(msg, 0)
		require.True(t, ok, "%s", msg)
		assert.Equal(t, []byte(msg), []byte(messageFromEvent(ev)), "%s", msg)
	}
}

func TestMessageFromEventUnknownKind(t *testing.T) {
	assert.Nil(t, messageFromEvent(contracts.Event{Kind: 0}))
}
