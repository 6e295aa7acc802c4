package translate

// Option is a function that configures a Translator at construction time.
// The Translator is immutable afterwards.
type Option func(*Translator)

// WithOutputChannel forces Program Change events onto the given channel
// (0-15) instead of following the incoming note's channel. Values above 15
// are ignored.
func WithOutputChannel(ch uint8) Option {
	return func(t *Translator) {
		if ch <= 15 {
			t.outChannel = int8(ch)
		}
	}
}

// WithNoteCeiling changes the highest convertible note. Notes above the
// ceiling are dropped. The ceiling is clamped to the valid MIDI note range
// and never falls below BaseNote; raising it past MaxNote yields programs
// above MaxProgram, up to 103 at note 127.
func WithNoteCeiling(note uint8) Option {
	return func(t *Translator) {
		if note > 127 {
			note = 127
		}
		if note < t.baseNote {
			note = t.baseNote
		}
		t.maxNote = note
	}
}

// WithoutPassThrough drops control change, pitch bend and all other
// non-note events instead of forwarding them.
func WithoutPassThrough() Option {
	return func(t *Translator) {
		t.passOther = false
	}
}
