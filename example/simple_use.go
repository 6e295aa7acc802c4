package main

import (
	"fmt"

	"github.com/nvieira/notepc/internal/logger"
	"github.com/nvieira/notepc/sdk/contracts"
	"github.com/nvieira/notepc/sdk/midi"
	"github.com/nvieira/notepc/sdk/translate"
)

func main() {
	log := logger.NewZapLogger()

	client, err := midi.NewMIDIClient(
		contracts.WithLogger(log),
		contracts.WithLogLevel(contracts.InfoLevel),
		contracts.WithTranslator(translate.New(
			translate.WithOutputChannel(0),
		)),
		contracts.WithHostConfig(contracts.HostConfig{
			ClientName:    "notepc",
			VirtualOutput: "notepc Out",
		}),
	)
	if err != nil {
		log.Error("Failed to initialize MIDI client", contracts.Err(err))
		return
	}

	devices, err := client.ListDevices()
	if err != nil || len(devices) == 0 {
		log.Error("No MIDI devices found or error listing devices", contracts.Err(err))
		return
	}
	fmt.Println("Available MIDI devices:", devices)

	if err = client.SelectDevice(0); err != nil {
		log.Error("Failed to select MIDI device", contracts.Err(err))
		return
	}

	eventChannel := make(chan contracts.Event, 100)
	go func() {
		for event := range eventChannel {
			if event.Kind == contracts.ProgramChange {
				log.Info("Program Change",
					contracts.Uint8("channel", event.Channel),
					contracts.Uint8("program", event.Data1),
					contracts.Uint64("timestamp", event.Timestamp),
				)
				continue
			}
			log.Info("MIDI Event", contracts.String("event", event.String()))
		}
	}()

	client.StartCapture(eventChannel)
	defer client.Stop()

	fmt.Println("Translating notes to program changes... Press Ctrl+C to exit.")
	select {} // Run indefinitely
}
