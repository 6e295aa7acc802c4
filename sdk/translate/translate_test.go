package translate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvieira/notepc/sdk/contracts"
	"github.com/nvieira/notepc/sdk/translate"
)

func noteOn(channel, note, velocity uint8, offset int32) contracts.Event {
	return contracts.Event{
		Kind:    contracts.NoteOn,
		Channel: channel,
		Data1:   note,
		Data2:   velocity,
		Offset:  offset,
	}
}

func TestNoteOnInRangeBecomesProgramChange(t *testing.T) {
	tr := translate.New()

	tests := []struct {
		name    string
		in      contracts.Event
		program uint8
	}{
		{"lowest note", noteOn(0, 24, 100, 0), 0},
		{"highest note", noteOn(0, 123, 64, 10), 99},
		{"middle C", noteOn(3, 60, 1, 42), 36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, ok := tr.Apply(tt.in)
			require.True(t, ok)
			assert.Equal(t, contracts.ProgramChange, out.Kind)
			assert.Equal(t, tt.program, out.Data1)
			assert.Equal(t, tt.in.Channel, out.Channel)
			assert.Equal(t, tt.in.Offset, out.Offset)
		})
	}
}

func TestNoteOnOutOfRangeDropped(t *testing.T) {
	tr := translate.New()

	for _, note := range []uint8{0, 12, 23, 124, 127} {
		_, ok := tr.Apply(noteOn(0, note, 100, 5))
		assert.False(t, ok, "note %d should be dropped", note)
	}
}

func TestNoteOffAlwaysDropped(t *testing.T) {
	tr := translate.New()

	for _, note := range []uint8{0, 24, 60, 123, 127} {
		_, ok := tr.Apply(contracts.Event{
			Kind:    contracts.NoteOff,
			Channel: 0,
			Data1:   note,
			Offset:  2,
		})
		assert.False(t, ok, "note off %d should be dropped", note)
	}
}

func TestVelocityDoesNotInfluenceDecision(t *testing.T) {
	tr := translate.New()

	// A velocity-0 Note On still converts like any other Note On.
	out, ok := tr.Apply(noteOn(0, 60, 0, 7))
	require.True(t, ok)
	assert.Equal(t, contracts.ProgramChange, out.Kind)
	assert.Equal(t, uint8(36), out.Data1)
}

func TestOtherEventsForwardedUnchanged(t *testing.T) {
	tr := translate.New()

	events := []contracts.Event{
		{Kind: contracts.ControlChange, Channel: 0, Data1: 7, Data2: 90, Offset: 3},
		{Kind: contracts.PitchBend, Channel: 5, Data1: 0x7F, Data2: 0x3F, Offset: 9},
		{Kind: contracts.ChannelPressure, Channel: 1, Data1: 80, Offset: 0},
		{Kind: contracts.PolyPressure, Channel: 2, Data1: 60, Data2: 40, Offset: 1},
		{Kind: contracts.ProgramChange, Channel: 0, Data1: 12, Offset: 4},
		{Kind: contracts.SysEx, SysExData: []byte{0x7E, 0x7F, 0x09, 0x01}, Offset: 8},
	}

	for _, ev := range events {
		out, ok := tr.Apply(ev)
		require.True(t, ok, "%s should pass through", ev)
		assert.Equal(t, ev, out)
	}
}

func TestMappingProperty(t *testing.T) {
	tr := translate.New()

	for note := 0; note <= 127; note++ {
		out, ok := tr.Apply(noteOn(0, uint8(note), 100, 0))
		if note < int(translate.BaseNote) || note > int(translate.MaxNote) {
			assert.False(t, ok, "note %d", note)
			continue
		}
		require.True(t, ok, "note %d", note)
		assert.Equal(t, uint8(note)-translate.BaseNote, out.Data1, "note %d", note)
		assert.LessOrEqual(t, out.Data1, translate.MaxProgram)
	}
}

func TestWithOutputChannel(t *testing.T) {
	tr := translate.New(translate.WithOutputChannel(9))

	out, ok := tr.Apply(noteOn(2, 24, 100, 0))
	require.True(t, ok)
	assert.Equal(t, uint8(9), out.Channel)

	// Non-note events keep their own channel.
	cc := contracts.Event{Kind: contracts.ControlChange, Channel: 2, Data1: 1, Data2: 64}
	out, ok = tr.Apply(cc)
	require.True(t, ok)
	assert.Equal(t, cc, out)
}

func TestWithOutputChannelIgnoresInvalid(t *testing.T) {
	tr := translate.New(translate.WithOutputChannel(16))

	out, ok := tr.Apply(noteOn(2, 24, 100, 0))
	require.True(t, ok)
	assert.Equal(t, uint8(2), out.Channel)
}

func TestWithNoteCeiling(t *testing.T) {
	tr := translate.New(translate.WithNoteCeiling(60))

	_, ok := tr.Apply(noteOn(0, 61, 100, 0))
	assert.False(t, ok)

	out, ok := tr.Apply(noteOn(0, 60, 100, 0))
	require.True(t, ok)
	assert.Equal(t, uint8(36), out.Data1)
}

func TestWithoutPassThrough(t *testing.T) {
	tr := translate.New(translate.WithoutPassThrough())

	_, ok := tr.Apply(contracts.Event{Kind: contracts.ControlChange, Data1: 7, Data2: 90})
	assert.False(t, ok)

	// Note conversion is unaffected.
	out, ok := tr.Apply(noteOn(0, 24, 100, 0))
	require.True(t, ok)
	assert.Equal(t, contracts.ProgramChange, out.Kind)
}

func TestDeclaredCapabilities(t *testing.T) {
	caps := translate.StereoCapabilities()
	assert.True(t, caps.MIDIInput)
	assert.True(t, caps.MIDIOutput)
	assert.Equal(t, 2, caps.AudioInputChannels)
	assert.Equal(t, 2, caps.AudioOutputChannels)

	info := translate.DefaultInfo()
	assert.NotEmpty(t, info.ID)
	assert.NotEmpty(t, info.Name)
}
