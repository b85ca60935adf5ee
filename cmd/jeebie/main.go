package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"
	"github.com/valerio/go-jeebie/jeebie"
	"github.com/valerio/go-jeebie/jeebie/backend"
	"github.com/valerio/go-jeebie/jeebie/backend/headless"
	"github.com/valerio/go-jeebie/jeebie/backend/sdl2"
	"github.com/valerio/go-jeebie/jeebie/backend/terminal"
	"github.com/valerio/go-jeebie/jeebie/input"
	"github.com/valerio/go-jeebie/jeebie/input/action"
	"github.com/valerio/go-jeebie/jeebie/input/event"
	"github.com/valerio/go-jeebie/jeebie/video"
)

func main() {
	app := cli.NewApp()
	app.Name = "Jeebie"
	app.Description = "A simple gameboy emulator"
	app.Usage = "jeebie [options] <ROM file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the ROM file",
		},
		cli.StringFlag{
			Name:  "backend",
			Usage: "Display backend to use: terminal, sdl2, or headless",
			Value: "terminal",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Shorthand for --backend=headless",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (required for headless)",
			Value: 0,
		},
		cli.BoolFlag{
			Name:  "test-pattern",
			Usage: "Display a test pattern instead of emulation (for debugging display)",
		},
		cli.IntFlag{
			Name:  "snapshot-interval",
			Usage: "Save frame snapshots every N frames in headless mode (0 = disabled)",
			Value: 0,
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory to save frame snapshots (default: temp directory)",
		},
		cli.StringFlag{
			Name:  "boot-rom",
			Usage: "Path to a 256-byte DMG boot ROM image to run before the cartridge",
		},
	}
	app.Action = runEmulator

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running emulator", "error", err)
		os.Exit(1)
	}
}

// selectBackend constructs the requested display backend. For headless runs
// it also wires up PNG frame snapshotting from the CLI flags.
func selectBackend(c *cli.Context, name, romPath string) (backend.Backend, error) {
	switch name {
	case "headless":
		frames := c.Int("frames")
		if !c.Bool("test-pattern") && frames <= 0 {
			return nil, errors.New("headless mode requires --frames option with a positive value")
		}

		snapshotConfig, err := headless.CreateSnapshotConfig(c.Int("snapshot-interval"), c.String("snapshot-dir"), romPath)
		if err != nil {
			return nil, err
		}

		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		slog.SetDefault(slog.New(handler))

		return headless.New(frames, snapshotConfig), nil
	case "sdl2":
		return sdl2.New(), nil
	case "terminal":
		return terminal.New(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want terminal, sdl2, or headless)", name)
	}
}

func runEmulator(c *cli.Context) error {
	testPattern := c.Bool("test-pattern")

	backendName := c.String("backend")
	if c.Bool("headless") {
		backendName = "headless"
	}

	var emu *jeebie.Emulator
	var romPath string

	if !testPattern {
		romPath = c.String("rom")
		if romPath == "" {
			if c.NArg() > 0 {
				romPath = c.Args().Get(0)
			} else {
				cli.ShowAppHelp(c)
				return errors.New("no ROM path provided")
			}
		}

		var err error
		emu, err = jeebie.NewWithFileAndBootROM(romPath, c.String("boot-rom"))
		if err != nil {
			return err
		}
	}

	b, err := selectBackend(c, backendName, romPath)
	if err != nil {
		return err
	}

	config := backend.BackendConfig{
		Title:       "Jeebie",
		TestPattern: testPattern,
	}
	if emu != nil {
		config.DebugProvider = emu
		config.APU = emu.GetMMU().APU
	}

	if err := b.Init(config); err != nil {
		return err
	}
	defer b.Cleanup()

	var manager *input.Manager
	if emu != nil {
		manager = input.NewManager(emu.GetMMU())
		manager.On(action.EmulatorPauseToggle, event.Press, func() {
			if emu.GetDebuggerState() == jeebie.DebuggerPaused {
				emu.DebuggerResume()
			} else {
				emu.DebuggerPause()
			}
		})
		manager.On(action.EmulatorStepFrame, event.Press, emu.DebuggerStepFrame)
		manager.On(action.EmulatorStepInstruction, event.Press, emu.DebuggerStepInstruction)
	} else {
		manager = input.NewManager(nil)
	}

	for {
		var frame *video.FrameBuffer
		if emu != nil {
			emu.RunUntilFrame()
			frame = emu.GetCurrentFrame()
		} else {
			frame = video.NewFrameBuffer()
		}

		events, err := b.Update(frame)
		if err != nil {
			return err
		}

		quit := false
		for _, evt := range events {
			if evt.Action == action.EmulatorQuit {
				quit = true
				continue
			}
			manager.Trigger(evt.Action, evt.Type)
		}
		if quit {
			return nil
		}
	}
}
