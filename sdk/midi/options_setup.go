package midi

import (
	"github.com/nvieira/notepc/internal/logger"
	"github.com/nvieira/notepc/sdk/contracts"
	"github.com/nvieira/notepc/sdk/translate"
)

// applyDefaultOptions sets default values for ClientOptions if not
// explicitly provided.
//
// opts ...contracts.Option: A variadic list of option functions that can
// modify ClientOptions.
//
// Returns:
//   - contracts.ClientOptions: The finalized client options with defaults
//     applied.
//   - error: An error if there was an issue applying the options.
func applyDefaultOptions(opts ...contracts.Option) (contracts.ClientOptions, error) {
	options := &contracts.ClientOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Set defaults if options are not provided
	if options.Logger == nil {
		options.Logger = logger.NewZapLogger()
	}
	if options.LogLevel == 0 {
		options.LogLevel = contracts.InfoLevel
	}
	if options.Translator == nil {
		options.Translator = translate.New()
	}
	if options.HostConfig == nil {
		options.HostConfig = &contracts.HostConfig{ClientName: "notepc"}
	}

	options.Logger.SetLevel(options.LogLevel)
	return *options, nil
}
