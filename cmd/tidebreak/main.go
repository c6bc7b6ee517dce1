package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/audio"
	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/camera"
	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/config"
	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/engine"
	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/game"
	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/input"
	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/logging"
	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/parameter"
	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/render"
	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/scene"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) (code int) {
	cfg, err := config.Load(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "tidebreak: %v\n", err)
		return 1
	}

	logger, logFile, err := logging.Setup(cfg.Debug, cfg.LogDir, cfg.LogLevel)
	if err != nil {
		// Non-fatal, the game runs without logs
		fmt.Fprintf(os.Stderr, "tidebreak: logging disabled: %v\n", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	logger.Info().
		Str("config", cfg.ConfigFile).
		Dur("tick", cfg.TickInterval).
		Float64("max_frame_dt", cfg.MaxFrameDelta).
		Msg("Config loaded")

	catalog := scene.Default()
	if cfg.SceneFile != "" {
		if catalog, err = scene.Load(cfg.SceneFile); err != nil {
			fmt.Fprintf(os.Stderr, "tidebreak: %v\n", err)
			return 1
		}
		logger.Info().Str("path", cfg.SceneFile).Msg("Scene loaded")
	}

	if err := applyColorMode(cfg.ColorMode); err != nil {
		logger.Debug().Err(err).Str("mode", cfg.ColorMode).Msg("Color mode not applied")
	}

	screen, err := tcell.NewScreen()
	if err == nil {
		err = screen.Init()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			logger.Error().Interface("panic", r).Msg("Crashed")
			fmt.Fprintf(os.Stderr, "\n\x1b[31mTIDEBREAK CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	sink := openAudio(cfg, logger)
	defer sink.Close()

	tp := engine.NewMonotonicTimeProvider()
	clock := engine.NewGameClock(cfg.MaxFrameDelta)
	session := game.New(catalog)
	driver := engine.NewDriver(session, clock, sink, logger)
	driver.Reset(engine.UnixMillis(tp))

	a := &app{
		screen:   screen,
		driver:   driver,
		cam:      camera.New(),
		latch:    input.NewLatch(cfg.HoldInitial, cfg.HoldRepeat),
		renderer: render.NewRenderer(),
		tp:       tp,
		log:      logger,
	}
	a.run(cfg.TickInterval)

	logger.Info().Int64("tick", session.Tick()).Str("outcome", session.Outcome().String()).Msg("Exiting")
	return 0
}

// applyColorMode steers tcell's terminal capability detection
func applyColorMode(mode string) error {
	switch mode {
	case config.ColorTrueColor:
		return os.Setenv("COLORTERM", "truecolor")
	case config.Color256:
		return os.Setenv("TCELL_TRUECOLOR", "disable")
	}
	return nil
}

// openAudio returns the sound manager, or a silent sink when audio is off or fails
func openAudio(cfg *config.Config, logger zerolog.Logger) audio.Sink {
	if !cfg.AudioEnabled {
		return audio.NopSink{}
	}
	sm := audio.NewSoundManager(cfg.Volume, logger)
	if err := sm.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		logger.Warn().Err(err).Msg("Audio initialization failed")
		return audio.NopSink{}
	}
	return sm
}

type app struct {
	screen   tcell.Screen
	driver   *engine.Driver
	cam      *camera.Orbit
	latch    *input.Latch
	renderer *render.Renderer
	tp       engine.TimeProvider
	log      zerolog.Logger
}

func (a *app) run(tick time.Duration) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, parameter.EventChannelSize)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(a.screen, eventChan, done)

	a.draw(a.driver.Snapshot())
	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}

		case <-ticker.C:
			now := engine.UnixMillis(a.tp)
			a.draw(a.driver.Frame(now, a.latch.Intent(now)))
		}
	}
}

// pollEvents forwards terminal events until the screen finishes or done closes
func pollEvents(screen tcell.Screen, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

func (a *app) draw(snap game.Snapshot) {
	a.renderer.Draw(a.screen, snap, a.cam)
	a.screen.Show()
}

// handleInput applies one terminal event, false means quit
func (a *app) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd := input.Translate(ev)
		now := engine.UnixMillis(a.tp)

		switch {
		case cmd.Action == input.ActionQuit:
			a.log.Debug().Msg("Quit requested")
			return false
		case cmd.Action.IsMovement():
			a.latch.Press(cmd.Action, now)
		case input.ApplyCamera(a.cam, cmd):
		case cmd.Action == input.ActionToggleProp:
			a.driver.ToggleProp(cmd.Arg)
		case cmd.Action == input.ActionActivateAll:
			a.driver.ActivateAllProps()
		case cmd.Action == input.ActionDeactivateAll:
			a.driver.DeactivateAllProps()
		case cmd.Action == input.ActionReset:
			a.latch.Clear()
			a.driver.Reset(now)
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		a.log.Debug().Int("width", w).Int("height", h).Msg("Resized")
		a.screen.Sync()
	}

	return true
}
