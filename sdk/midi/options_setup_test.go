package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvieira/notepc/internal/logger"
	"github.com/nvieira/notepc/sdk/contracts"
)

func TestApplyDefaultOptions(t *testing.T) {
	options, err := applyDefaultOptions()
	require.NoError(t, err)

	assert.NotNil(t, options.Logger)
	assert.NotNil(t, options.Translator)
	require.NotNil(t, options.HostConfig)
	assert.Equal(t, "notepc", options.HostConfig.ClientName)
	assert.Empty(t, options.HostConfig.VirtualOutput)
	assert.Equal(t, contracts.InfoLevel, options.LogLevel)
}

func TestApplyDefaultOptionsKeepsOverrides(t *testing.T) {
	log := logger.NewNop()
	tr := passAll{}

	options, err := applyDefaultOptions(
		contracts.WithLogger(log),
		contracts.WithLogLevel(contracts.DebugLevel),
		contracts.WithTranslator(tr),
		contracts.WithHostConfig(contracts.HostConfig{ClientName: "custom"}),
	)
	require.NoError(t, err)

	assert.Equal(t, log, options.Logger)
	assert.Equal(t, contracts.DebugLevel, options.LogLevel)
	assert.Equal(t, tr, options.Translator)
	assert.Equal(t, "custom", options.HostConfig.ClientName)
}

type passAll struct{}

func (passAll) Apply(ev contracts.Event) (contracts.Event, bool) { return ev, true }
