package translate

// Info describes the translator to a plugin host. It is declared once at
// registration, never per block.
type Info struct {
	ID       string
	Name     string
	Vendor   string
	Version  string
	Category string
}

// Capabilities declares the host I/O layout the translator expects: MIDI in
// and out, plus an audio layout used purely for pass-through.
type Capabilities struct {
	MIDIInput           bool
	MIDIOutput          bool
	AudioInputChannels  int
	AudioOutputChannels int
}

// DefaultInfo returns the plugin metadata for the translator.
func DefaultInfo() Info {
	return Info{
		ID:       "com.nvieira.notepc",
		Name:     "Note To Program Change",
		Vendor:   "nvieira",
		Version:  "1.0.0",
		Category: "NoteEffect|Utility",
	}
}

// StereoCapabilities returns the default negotiated layout: MIDI in/out with
// a stereo audio pass-through pair.
func StereoCapabilities() Capabilities {
	return Capabilities{
		MIDIInput:           true,
		MIDIOutput:          true,
		AudioInputChannels:  2,
		AudioOutputChannels: 2,
	}
}
