package contracts

import (
	"errors"
	"fmt"
)

// Kind identifies a MIDI message family by its status high nibble.
type Kind byte

const (
	// NoteOff is the status nibble for a Note Off event (0x80).
	NoteOff Kind = 0x80
	// NoteOn is the status nibble for a Note On event (0x90).
	NoteOn Kind = 0x90
	// PolyPressure is the status nibble for polyphonic key pressure (0xA0).
	PolyPressure Kind = 0xA0
	// ControlChange is the status nibble for a Control Change event (0xB0).
	ControlChange Kind = 0xB0
	// ProgramChange is the status nibble for a Program Change event (0xC0).
	ProgramChange Kind = 0xC0
	// ChannelPressure is the status nibble for channel pressure (0xD0).
	ChannelPressure Kind = 0xD0
	// PitchBend is the status nibble for a pitch bend event (0xE0).
	PitchBend Kind = 0xE0
	// SysEx marks a system exclusive event; its payload lives in Event.SysExData.
	SysEx Kind = 0xF0
)

const (
	statusMask  = 0xF0
	channelMask = 0x0F
	dataMask    = 0x7F
)

// Error definitions for raw packet decoding.
var (
	ErrUnsupportedStatus = errors.New("unsupported MIDI status byte")
	ErrDataByteRange     = errors.New("MIDI data byte out of range")
)

// Event is a single MIDI message as seen by the translator and the host
// backends.
//
// Offset is the sample position within the current processing block.
// Timestamp carries wall-clock nanoseconds when the event comes from a live
// capture backend and is zero during block processing.
type Event struct {
	Kind      Kind
	Channel   uint8  // MIDI channel (0-15).
	Data1     uint8  // Note, controller or program number (0-127).
	Data2     uint8  // Velocity, controller value or pressure (0-127).
	Offset    int32  // Sample offset within the processing block.
	Timestamp uint64 // Capture time in nanoseconds, zero inside a block.
	SysExData []byte // Payload for SysEx events, nil otherwise.
}

// ParseRaw decodes a channel voice message from its raw status and data
// bytes. System messages (status 0xF0 and above) are rejected; backends that
// receive them deliver the payload through SysExData instead.
func ParseRaw(status, data1, data2 byte, timestamp uint64) (Event, error) {
	if status < byte(NoteOff) || status >= byte(SysEx) {
		return Event{}, fmt.Errorf("%w: 0x%02X", ErrUnsupportedStatus, status)
	}
	if data1 > dataMask || data2 > dataMask {
		return Event{}, fmt.Errorf("%w: 0x%02X 0x%02X", ErrDataByteRange, data1, data2)
	}
	return Event{
		Kind:      Kind(status & statusMask),
		Channel:   status & channelMask,
		Data1:     data1,
		Data2:     data2,
		Timestamp: timestamp,
	}, nil
}

// Raw returns the status and data bytes of a channel voice event. Program
// Change and Channel Pressure are two-byte messages, so data2 is zero for
// them by construction.
func (e Event) Raw() (status, data1, data2 byte) {
	return byte(e.Kind) | e.Channel&channelMask, e.Data1, e.Data2
}

func (e Event) String() string {
	switch e.Kind {
	case NoteOn:
		return fmt.Sprintf("NoteOn{ch:%d, note:%d, vel:%d, offset:%d}", e.Channel, e.Data1, e.Data2, e.Offset)
	case NoteOff:
		return fmt.Sprintf("NoteOff{ch:%d, note:%d, vel:%d, offset:%d}", e.Channel, e.Data1, e.Data2, e.Offset)
	case ControlChange:
		return fmt.Sprintf("CC{ch:%d, ctrl:%d, val:%d, offset:%d}", e.Channel, e.Data1, e.Data2, e.Offset)
	case ProgramChange:
		return fmt.Sprintf("ProgramChange{ch:%d, prog:%d, offset:%d}", e.Channel, e.Data1, e.Offset)
	case PolyPressure:
		return fmt.Sprintf("PolyPressure{ch:%d, note:%d, pressure:%d, offset:%d}", e.Channel, e.Data1, e.Data2, e.Offset)
	case ChannelPressure:
		return fmt.Sprintf("ChannelPressure{ch:%d, pressure:%d, offset:%d}", e.Channel, e.Data1, e.Offset)
	case PitchBend:
		return fmt.Sprintf("PitchBend{ch:%d, lsb:%d, msb:%d, offset:%d}", e.Channel, e.Data1, e.Data2, e.Offset)
	case SysEx:
		return fmt.Sprintf("SysEx{len:%d, offset:%d}", len(e.SysExData), e.Offset)
	}
	return fmt.Sprintf("Event{kind:0x%02X, ch:%d, offset:%d}", byte(e.Kind), e.Channel, e.Offset)
}

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName renders a MIDI note number using the octave numbering that places
// note 24 at C0 (middle C is C3).
func NoteName(note uint8) string {
	return fmt.Sprintf("%s%d", noteNames[note%12], int(note)/12-2)
}
