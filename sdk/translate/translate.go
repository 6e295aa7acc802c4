// Package translate implements the note to Program Change policy: Note On
// events inside the convertible range become Program Change events, Note Off
// events are consumed, and every other MIDI event passes through unchanged.
//
// The translator is immutable after construction and its hot path performs
// no allocation, locking or I/O, so it is safe to call from a real-time
// audio callback.
package translate

import (
	"github.com/nvieira/notepc/sdk/contracts"
)

const (
	// BaseNote is the lowest convertible note, C0. It maps to program 0.
	BaseNote uint8 = 24
	// MaxProgram is the highest program number the default mapping produces.
	MaxProgram uint8 = 99
	// MaxNote is the highest convertible note under the default mapping,
	// D#8. It maps to MaxProgram.
	MaxNote = BaseNote + MaxProgram
)

// followInput makes Program Change events keep the incoming note's channel.
const followInput int8 = -1

// Translator converts Note On events into Program Change events.
//
// program = note - BaseNote, valid for notes BaseNote through the configured
// ceiling. Notes outside that range and all Note Off events are dropped.
type Translator struct {
	baseNote   uint8
	maxNote    uint8
	outChannel int8
	passOther  bool
}

// New returns a Translator with the default mapping: notes 24-123 to
// programs 0-99, output on the incoming channel, non-note events forwarded.
func New(opts ...Option) *Translator {
	t := &Translator{
		baseNote:   BaseNote,
		maxNote:    MaxNote,
		outChannel: followInput,
		passOther:  true,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Apply translates a single event. It returns the event to emit and true,
// or false when the input produces no output.
//
// Velocity never influences the decision: a Note On with velocity 0 is still
// a Note On and converts like any other.
func (t *Translator) Apply(ev contracts.Event) (contracts.Event, bool) {
	switch ev.Kind {
	case contracts.NoteOn:
		note := ev.Data1
		if note < t.baseNote || note > t.maxNote {
			return contracts.Event{}, false
		}
		out := contracts.Event{
			Kind:      contracts.ProgramChange,
			Channel:   ev.Channel,
			Data1:     note - t.baseNote,
			Offset:    ev.Offset,
			Timestamp: ev.Timestamp,
		}
		if t.outChannel != followInput {
			out.Channel = uint8(t.outChannel)
		}
		return out, true
	case contracts.NoteOff:
		// Program Change has no "off"; consuming the release avoids a
		// second, unintended program switch.
		return contracts.Event{}, false
	default:
		if !t.passOther {
			return contracts.Event{}, false
		}
		return ev, true
	}
}

// Process runs one block: a single linear pass over b.In appending surviving
// events to b.Out in arrival order, then audio pass-through. It allocates
// nothing as long as cap(b.Out)-len(b.Out) >= len(b.In).
func (t *Translator) Process(b *Block) {
	for _, ev := range b.In {
		if out, ok := t.Apply(ev); ok {
			b.Out = append(b.Out, out)
		}
	}
	b.PassThroughAudio()
}
