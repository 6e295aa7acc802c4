package midiportable

import (
	"time"

	"github.com/nvieira/notepc/sdk/contracts"
	"gitlab.com/gomidi/midi/v2"
)

// eventFromMessage converts a gomidi message into a contracts.Event. The
// driver reports timestamps in milliseconds; they are widened to nanoseconds
// to match the capture convention. Message types outside the event model
// (clock, transport, active sensing) report false.
func eventFromMessage(msg midi.Message, timestampms int32) (contracts.Event, bool) {
	ev := contracts.Event{Timestamp: uint64(timestampms) * uint64(time.Millisecond)}

	var (
		channel, data1, data2 uint8
		rel                   int16
		abs                   uint16
		payload               []byte
	)
	switch {
	case msg.GetNoteOn(&channel, &data1, &data2):
		ev.Kind = contracts.NoteOn
	case msg.GetNoteOff(&channel, &data1, &data2):
		ev.Kind = contracts.NoteOff
	case msg.GetControlChange(&channel, &data1, &data2):
		ev.Kind = contracts.ControlChange
	case msg.GetProgramChange(&channel, &data1):
		ev.Kind = contracts.ProgramChange
	case msg.GetPolyAfterTouch(&channel, &data1, &data2):
		ev.Kind = contracts.PolyPressure
	case msg.GetAfterTouch(&channel, &data1):
		ev.Kind = contracts.ChannelPressure
	case msg.GetPitchBend(&channel, &rel, &abs):
		ev.Kind = contracts.PitchBend
		data1 = uint8(abs & 0x7F)
		data2 = uint8(abs >> 7)
	case msg.GetSysEx(&payload):
		ev.Kind = contracts.SysEx
		ev.SysExData = payload
	default:
		return contracts.Event{}, false
	}

	ev.Channel = channel
	ev.Data1 = data1
	ev.Data2 = data2
	return ev, true
}

// messageFromEvent renders a contracts.Event back into wire bytes for the
// virtual output. Unknown kinds yield nil.
func messageFromEvent(ev contracts.Event) midi.Message {
	switch ev.Kind {
	case contracts.NoteOn:
		return midi.NoteOn(ev.Channel, ev.Data1, ev.Data2)
	case contracts.NoteOff:
		return midi.NoteOffVelocity(ev.Channel, ev.Data1, ev.Data2)
	case contracts.ControlChange:
		return midi.ControlChange(ev.Channel, ev.Data1, ev.Data2)
	case contracts.ProgramChange:
		return midi.ProgramChange(ev.Channel, ev.Data1)
	case contracts.PolyPressure:
		return midi.PolyAfterTouch(ev.Channel, ev.Data1, ev.Data2)
	case contracts.ChannelPressure:
		return midi.AfterTouch(ev.Channel, ev.Data1)
	case contracts.PitchBend:
		abs := uint16(ev.Data1) | uint16(ev.Data2)<<7
		return midi.Pitchbend(ev.Channel, int16(abs)-8192)
	case contracts.SysEx:
		return midi.SysEx(ev.SysExData)
	}
	return nil
}
