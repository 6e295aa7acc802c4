package midi

import (
	"runtime"

	"github.com/nvieira/notepc/internal/host/mididarwin"
	"github.com/nvieira/notepc/internal/host/midiportable"
	"github.com/nvieira/notepc/internal/host/midiwindows"
	"github.com/nvieira/notepc/sdk/contracts"
)

// clientInitializers maps OS names to corresponding MIDI backend initializers.
var clientInitializers = map[string]func(*contracts.ClientOptions) (contracts.ClientMIDI, error){
	"darwin":  mididarwin.NewMIDIClient,  // macOS (Darwin) CoreMIDI backend.
	"windows": midiwindows.NewMIDIClient, // Windows winmm backend.
}

// NewClient initializes a MIDI client backend for the current operating
// system. Platforms without a native backend, and any configuration that
// requests a virtual output port, use the portable rtmidi backend.
//
// opts *contracts.ClientOptions: Configuration options for the MIDI client.
//
// Returns:
//   - contracts.ClientMIDI: An instance of the MIDI client.
//   - error: An error if initialization fails.
func NewClient(opts *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	if opts.HostConfig != nil && opts.HostConfig.VirtualOutput != "" {
		return midiportable.NewMIDIClient(opts)
	}
	if initializer, exists := clientInitializers[runtime.GOOS]; exists {
		return initializer(opts)
	}
	return midiportable.NewMIDIClient(opts)
}
