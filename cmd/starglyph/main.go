package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starglyph/audio"
	"github.com/lixenwraith/starglyph/config"
	"github.com/lixenwraith/starglyph/engine"
	"github.com/lixenwraith/starglyph/glyph"
	"github.com/lixenwraith/starglyph/parameter"
)

// parseFlags layers command-line flags over defaults and STARGLYPH_* environment values
func parseFlags(fs *flag.FlagSet, args []string) (config.Config, error) {
	cfg := config.Default()
	config.LoadEnv(&cfg)

	device := cfg.Device.String()
	fs.StringVar(&cfg.Text, "text", cfg.Text, "Text to form")
	fs.StringVar(&cfg.Secondary, "secondary", cfg.Secondary, "Secondary text reached by scrolling")
	fs.Float64Var(&cfg.FontSize, "size", cfg.FontSize, "Raster font size in pixels")
	fs.StringVar(&device, "device", device, "Device profile: auto, desktop, mobile")
	fs.StringVar(&cfg.ColorMode, "color", cfg.ColorMode, "Color mode: auto, truecolor, 256")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, 0 picks one from the clock")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Log to logs/starglyph.log and fail loudly on scene errors")
	fs.BoolVar(&cfg.Mute, "mute", cfg.Mute, "Start with audio cues muted")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	d, err := config.ParseDevice(device)
	if err != nil {
		return cfg, err
	}
	cfg.Device = d

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	return cfg, cfg.Validate()
}

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before printing the stack
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSTARGLYPH CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.Clear()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fonts := glyph.NewFontLoader(glyph.GoBoldSource(cfg.FontSize, parameter.GlyphFontDPI), parameter.GlyphFontTimeout)
	fonts.Start(ctx)

	sound := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sound.Initialize(); err != nil {
		log.Printf("[audio] unavailable, continuing without sound: %v", err)
	} else {
		defer sound.Cleanup()
	}
	sound.SetMuted(cfg.Mute)

	host, err := NewHost(screen, cfg, fonts, sound, engine.NewMonotonicTimeProvider())
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}

	host.Run(ctx)
}
