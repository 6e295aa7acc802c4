package contracts

// HostConfig holds configuration for the host backend a client runs on.
type HostConfig struct {
	// ClientName is the name the backend registers with the OS MIDI stack.
	ClientName string
	// VirtualOutput, when non-empty, asks the backend to open a virtual
	// output port with that name and re-emit every translated event on it.
	// Only the portable backend supports this.
	VirtualOutput string
}

// ClientOptions defines the configuration options for a MIDI client.
type ClientOptions struct {
	Logger     Logger      // Logger for setup events and errors.
	LogLevel   LogLevel    // Level of logging to use.
	Translator Translator  // Per-event translation policy; nil forwards everything.
	HostConfig *HostConfig // Backend configuration.
}

// Option is a function that modifies ClientOptions.
type Option func(*ClientOptions)

// WithLogger sets the logger for the MIDI client.
func WithLogger(l Logger) Option {
	return func(opts *ClientOptions) {
		opts.Logger = l
	}
}

// WithLogLevel sets the logging level for the MIDI client.
func WithLogLevel(level LogLevel) Option {
	return func(opts *ClientOptions) {
		opts.LogLevel = level
	}
}

// WithTranslator sets the event translation policy applied by the backend
// before events reach the capture channel.
func WithTranslator(t Translator) Option {
	return func(opts *ClientOptions) {
		opts.Translator = t
	}
}

// WithHostConfig sets the host backend configuration for the MIDI client.
func WithHostConfig(config HostConfig) Option {
	return func(opts *ClientOptions) {
		opts.HostConfig = &config
	}
}
