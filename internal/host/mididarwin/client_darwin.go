//go:build darwin
// +build darwin

package mididarwin

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nvieira/notepc/sdk/contracts"
	"github.com/youpy/go-coremidi"
)

// Error definitions for MIDI connection and handling issues.
var (
	ErrNoMIDIDevices        = errors.New("no MIDI devices found")
	ErrInvalidMIDIDevice    = errors.New("invalid MIDI device")
	ErrMIDIConnectionError  = errors.New("error connecting to MIDI device")
	ErrCreateInputPort      = errors.New("error creating input port")
	ErrIncompleteMIDIPacket = errors.New("incomplete MIDI packet")
)

// internalPortConnection is an interface for handling disconnection from a
// MIDI port.
type internalPortConnection interface {
	Disconnect()
}

// ClientMid manages translated MIDI capture on Darwin (macOS) systems. It
// connects to CoreMIDI sources, runs every incoming packet through the
// configured translator and delivers the surviving events on the capture
// channel.
type ClientMid struct {
	logger       contracts.Logger
	eventChannel atomic.Value // Atomic storage for the capture channel.
	client       coremidi.Client
	inputPort    coremidi.InputPort
	portConn     internalPortConnection
	translator   contracts.Translator
	hostConfig   *contracts.HostConfig
	mu           sync.Mutex
	capturing    bool
	wg           sync.WaitGroup
	stopOnce     sync.Once
}

// NewMIDIClient initializes a new ClientMid for handling MIDI events on
// macOS, applying the logger and translator from the provided options.
func NewMIDIClient(options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	client, err := coremidi.NewClient(options.HostConfig.ClientName)
	if err != nil {
		return nil, err
	}
	options.Logger.Info("MIDI client successfully created")

	return &ClientMid{
		logger:     options.Logger,
		client:     client,
		translator: options.Translator,
		hostConfig: options.HostConfig,
	}, nil
}

// ListDevices retrieves and returns available MIDI devices.
// If no devices are found, an error is logged and returned.
func (m *ClientMid) ListDevices() ([]contracts.DeviceInfo, error) {
	sources, err := coremidi.AllSources()
	if err != nil {
		return nil, fmt.Errorf("error listing MIDI sources: %w", err)
	}
	if len(sources) == 0 {
		m.logger.Warn(ErrNoMIDIDevices.Error())
		return nil, ErrNoMIDIDevices
	}

	devices := make([]contracts.DeviceInfo, len(sources))
	for i, source := range sources {
		sourceEntity := source.Entity()
		devices[i] = contracts.DeviceInfo{
			Name:         source.Name(),
			EntityName:   sourceEntity.Name(),
			Manufacturer: sourceEntity.Manufacturer(),
		}
	}
	return devices, nil
}

// SelectDevice selects a MIDI source by ID and connects to it.
// If a source is already connected, it disconnects first.
func (m *ClientMid) SelectDevice(deviceID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sources, err := coremidi.AllSources()
	if err != nil {
		return fmt.Errorf("error retrieving MIDI sources: %w", err)
	}
	if deviceID < 0 || deviceID >= len(sources) {
		m.logger.Error(ErrInvalidMIDIDevice.Error())
		return ErrInvalidMIDIDevice
	}

	if m.portConn != nil {
		m.portConn.Disconnect()
		m.portConn = nil
	}

	source := sources[deviceID]
	m.logger.Info("MIDI device selected",
		contracts.Int("deviceID", deviceID),
		contracts.String("deviceName", source.Name()))

	m.inputPort, err = coremidi.NewInputPort(m.client, "Input Port", m.handleMIDIMessage)
	if err != nil {
		m.logger.Error(ErrCreateInputPort.Error())
		return fmt.Errorf("%w: %v", ErrCreateInputPort, err)
	}

	m.portConn, err = m.inputPort.Connect(source)
	if err != nil {
		m.logger.Error(ErrMIDIConnectionError.Error())
		return fmt.Errorf("%w: %v", ErrMIDIConnectionError, err)
	}

	m.logger.Info("MIDI device successfully connected")
	return nil
}

// handleMIDIMessage decodes an incoming packet, applies the translation
// policy and delivers the result. Malformed packets are dropped silently
// apart from a log line; the callback never panics.
func (m *ClientMid) handleMIDIMessage(source coremidi.Source, packet coremidi.Packet) {
	m.wg.Add(1)
	defer m.wg.Done()

	eventChannel, _ := m.eventChannel.Load().(chan contracts.Event)
	if eventChannel == nil {
		m.logger.Warn("eventChannel not initialized or of invalid type")
		return
	}

	if len(packet.Data) < 2 {
		m.logger.Warn(ErrIncompleteMIDIPacket.Error())
		return
	}

	var data2 byte
	if len(packet.Data) >= 3 {
		data2 = packet.Data[2]
	}
	event, err := contracts.ParseRaw(packet.Data[0], packet.Data[1], data2,
		uint64(time.Now().UTC().UnixNano()))
	if err != nil {
		m.logger.Debug("unsupported MIDI packet dropped", contracts.Err(err))
		return
	}

	if m.translator != nil {
		var ok bool
		if event, ok = m.translator.Apply(event); !ok {
			return
		}
	}

	select {
	case eventChannel <- event:
	default:
		m.logger.Warn("Event buffer full; dropping MIDI event")
	}
}

// StartCapture begins capturing translated MIDI events by storing the event
// channel and marking capturing as active. Ensures any ongoing capture is
// stopped before starting a new one.
func (m *ClientMid) StartCapture(eventChannel chan contracts.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if eventChannel == nil {
		m.logger.Error("StartCapture called with nil eventChannel")
		return
	}

	if m.capturing {
		m.logger.Warn("Capture already started; attempting to stop existing capture")
		if err := m.Stop(); err != nil {
			m.logger.Error("Failed to stop existing capture", contracts.Err(err))
		}
	}

	m.logger.Info("Starting MIDI event capture")
	m.eventChannel.Store(eventChannel)
	m.capturing = true
}

// Stop halts MIDI event capturing, disconnects from the device, and waits
// for ongoing processing to complete. This function ensures it only executes
// once, even if called multiple times.
func (m *ClientMid) Stop() error {
	m.stopOnce.Do(func() {
		m.logger.Info("Stopping MIDI capture")
		m.mu.Lock()
		defer m.mu.Unlock()

		if m.capturing {
			m.capturing = false

			if m.portConn != nil {
				m.portConn.Disconnect()
				m.portConn = nil
			}

			// Store a closed-off dummy channel to prevent further writes.
			dummyChannel := make(chan contracts.Event)
			m.eventChannel.Store(dummyChannel)

			m.logger.Info("MIDI capture stopped")
			m.wg.Wait()
		}
	})
	return nil
}
