// Package midiportable is the cross-platform host backend. It captures from
// any rtmidi-supported input, applies the translation policy and, when a
// virtual output is configured, re-emits the translated stream as a live
// MIDI port so the module works as a standalone note to program change
// bridge.
package midiportable

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/nvieira/notepc/sdk/contracts"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
	"go.uber.org/multierr"
)

// Error definitions for MIDI connection and handling issues.
var (
	ErrNoMIDIDevices     = errors.New("no MIDI input devices found")
	ErrInvalidMIDIDevice = errors.New("invalid MIDI device")
)

// ClientMid manages translated MIDI capture through gomidi's rtmidi driver.
type ClientMid struct {
	logger       contracts.Logger
	eventChannel atomic.Value
	driver       *rtmididrv.Driver
	translator   contracts.Translator
	hostConfig   *contracts.HostConfig

	virtualOut drivers.Out
	send       func(midi.Message) error

	mu       sync.Mutex
	stopFn   func()
	stopOnce sync.Once
}

// NewMIDIClient initializes the portable backend. When the host config names
// a virtual output, the port is opened up front so a failure surfaces here
// rather than mid-capture.
func NewMIDIClient(options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	drv, err := rtmididrv.New()
	if err != nil {
		return nil, fmt.Errorf("error creating rtmidi driver: %w", err)
	}

	c := &ClientMid{
		logger:     options.Logger,
		driver:     drv,
		translator: options.Translator,
		hostConfig: options.HostConfig,
	}

	if options.HostConfig != nil && options.HostConfig.VirtualOutput != "" {
		out, err := drv.OpenVirtualOut(options.HostConfig.VirtualOutput)
		if err != nil {
			return nil, multierr.Append(
				fmt.Errorf("error opening virtual output: %w", err), drv.Close())
		}
		send, err := midi.SendTo(out)
		if err != nil {
			return nil, multierr.Combine(
				fmt.Errorf("error preparing virtual output sender: %w", err),
				out.Close(), drv.Close())
		}
		c.virtualOut = out
		c.send = send
		options.Logger.Info("Virtual output opened",
			contracts.String("port", options.HostConfig.VirtualOutput))
	}

	options.Logger.Info("MIDI client successfully created")
	return c, nil
}

// ListDevices retrieves and returns available MIDI input devices.
func (m *ClientMid) ListDevices() ([]contracts.DeviceInfo, error) {
	ins, err := m.driver.Ins()
	if err != nil {
		return nil, fmt.Errorf("error listing MIDI inputs: %w", err)
	}
	if len(ins) == 0 {
		m.logger.Warn(ErrNoMIDIDevices.Error())
		return nil, ErrNoMIDIDevices
	}

	devices := make([]contracts.DeviceInfo, len(ins))
	for i, in := range ins {
		devices[i] = contracts.DeviceInfo{
			Name:       in.String(),
			EntityName: in.String(),
		}
	}
	return devices, nil
}

// SelectDevice connects to a MIDI input by ID and starts listening. Events
// flow once StartCapture has supplied a channel.
func (m *ClientMid) SelectDevice(deviceID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ins, err := m.driver.Ins()
	if err != nil {
		return fmt.Errorf("error retrieving MIDI inputs: %w", err)
	}
	if deviceID < 0 || deviceID >= len(ins) {
		m.logger.Error(ErrInvalidMIDIDevice.Error())
		return ErrInvalidMIDIDevice
	}

	if m.stopFn != nil {
		m.stopFn()
		m.stopFn = nil
	}

	in := ins[deviceID]
	m.logger.Info("MIDI device selected",
		contracts.Int("deviceID", deviceID),
		contracts.String("deviceName", in.String()))

	stop, err := midi.ListenTo(in, m.handleMessage, midi.UseSysEx())
	if err != nil {
		return fmt.Errorf("error connecting to MIDI device: %w", err)
	}
	m.stopFn = stop

	m.logger.Info("MIDI device successfully connected")
	return nil
}

// handleMessage converts a driver message, applies the translation policy,
// re-emits on the virtual output and delivers on the capture channel.
func (m *ClientMid) handleMessage(msg midi.Message, timestampms int32) {
	event, ok := eventFromMessage(msg, timestampms)
	if !ok {
		return
	}

	if m.translator != nil {
		if event, ok = m.translator.Apply(event); !ok {
			return
		}
	}

	if m.send != nil {
		if out := messageFromEvent(event); out != nil {
			if err := m.send(out); err != nil {
				m.logger.Error("Failed to send to virtual output", contracts.Err(err))
			}
		}
	}

	eventChannel, _ := m.eventChannel.Load().(chan contracts.Event)
	if eventChannel == nil {
		return
	}
	select {
	case eventChannel <- event:
	default:
		m.logger.Warn("Event buffer full; dropping MIDI event")
	}
}

// StartCapture begins delivering translated MIDI events to the channel.
func (m *ClientMid) StartCapture(eventChannel chan contracts.Event) {
	if eventChannel == nil {
		m.logger.Error("StartCapture called with nil eventChannel")
		return
	}
	m.logger.Info("Starting MIDI event capture")
	m.eventChannel.Store(eventChannel)
}

// Stop halts capture and releases the driver and virtual output. It only
// executes once, even if called multiple times.
func (m *ClientMid) Stop() (err error) {
	m.stopOnce.Do(func() {
		m.logger.Info("Stopping MIDI capture")
		m.mu.Lock()
		defer m.mu.Unlock()

		if m.stopFn != nil {
			m.stopFn()
			m.stopFn = nil
		}

		// Park a dummy channel so late callbacks have nowhere live to write.
		m.eventChannel.Store(make(chan contracts.Event))

		if m.virtualOut != nil {
			err = multierr.Append(err, m.virtualOut.Close())
			m.virtualOut = nil
		}
		err = multierr.Append(err, m.driver.Close())
		m.logger.Info("MIDI capture stopped")
	})
	return err
}
