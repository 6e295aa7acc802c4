//go:build !windows
// +build !windows

package midiwindows

import (
	"fmt"

	"github.com/nvieira/notepc/sdk/contracts"
)

type DummyMIDIClient struct {
	logger contracts.Logger
}

func NewMIDIClient(options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	options.Logger.Info("Using dummy winmm client for non-Windows system")
	return &DummyMIDIClient{
		logger: options.Logger,
	}, nil
}

func (m *DummyMIDIClient) ListDevices() ([]contracts.DeviceInfo, error) {
	m.logger.Warn("ListDevices called on dummy winmm client")
	return nil, fmt.Errorf("winmm is not available on this platform")
}

func (m *DummyMIDIClient) SelectDevice(deviceID int) error {
	m.logger.Warn("SelectDevice called on dummy winmm client")
	return fmt.Errorf("winmm is not available on this platform")
}

func (m *DummyMIDIClient) StartCapture(eventChannel chan contracts.Event) {
	m.logger.Warn("StartCapture called on dummy winmm client")
}

func (m *DummyMIDIClient) Stop() error {
	m.logger.Warn("Stop called on dummy winmm client")
	return nil
}
