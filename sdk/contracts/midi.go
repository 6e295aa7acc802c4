package contracts

// Translator decides, for each incoming event, whether to forward it,
// rewrite it or drop it. Implementations must be pure and safe to call from
// driver callbacks: no allocation, no blocking, no state mutation.
type Translator interface {
	// Apply returns the event to emit and true, or false when the input
	// event produces no output.
	Apply(Event) (Event, bool)
}

// ClientMIDI defines an interface for live MIDI client operations.
type ClientMIDI interface {
	Stop() error                          // Stops the client and releases resources.
	ListDevices() ([]DeviceInfo, error)   // Lists all available MIDI input devices.
	SelectDevice(deviceID int) error      // Selects a MIDI device by its ID.
	StartCapture(eventChannel chan Event) // Starts delivering translated events to the channel.
}
