package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/cyber-escape/audio"
	"github.com/lixenwraith/cyber-escape/config"
	"github.com/lixenwraith/cyber-escape/constants"
	"github.com/lixenwraith/cyber-escape/content"
	"github.com/lixenwraith/cyber-escape/core"
	"github.com/lixenwraith/cyber-escape/engine"
	"github.com/lixenwraith/cyber-escape/input"
	"github.com/lixenwraith/cyber-escape/logging"
	"github.com/lixenwraith/cyber-escape/render"
	"github.com/lixenwraith/cyber-escape/session"
	"github.com/lixenwraith/cyber-escape/status"
)

var (
	configPath = flag.String("config", "cyber-escape.toml", "Path to the TOML config file (missing file uses defaults)")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to the configured log directory")
)

func main() {
	// Panic recovery: restore the terminal even if the main loop crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "cyber-escape: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *debugFlag {
		cfg.Logging.Debug = true
		cfg.Logging.Level = "debug"
	}

	log, closeLog, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer closeLog()

	waves := content.DefaultWaves()
	if cfg.Game.WavesFile != "" {
		if waves, err = content.LoadWaves(cfg.Game.WavesFile); err != nil {
			return err
		}
	}

	save, err := config.LoadSave(cfg.Paths.SaveFile)
	if err != nil {
		// A broken save only costs the high score
		log.Warn("save file unreadable, starting fresh", zap.Error(err))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.RegisterScreen(screen)
	defer func() {
		core.RegisterScreen(nil)
		screen.Fini()
	}()
	screen.EnableFocus()
	screen.HideCursor()

	sound := audio.NewSoundManager(log)
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			log.Warn("audio unavailable, continuing without sound", zap.Error(err))
		} else {
			defer sound.Cleanup()
			sound.StartMusic()
		}
	}

	catalog := content.DefaultCatalog()
	sess := session.New(session.Options{
		Config:    cfg,
		Audio:     sound,
		Waves:     waves,
		Catalog:   catalog,
		Logger:    log,
		HighScore: save.HighScore,
	})
	renderer := render.NewTerminalRenderer(screen, catalog)
	keys := input.DefaultKeyTable()

	log.Info("started",
		zap.String("config", *configPath),
		zap.Int("fps", cfg.Game.FPS),
		zap.Int("high_score", save.HighScore),
		zap.Bool("audio", sound.Initialized()))

	return loop(sess, renderer, keys, screen, log, time.Second/time.Duration(cfg.Game.FPS))
}

// loop owns the session: input, simulation ticks and frames are all handled on this goroutine
func loop(sess *session.Session, renderer *render.TerminalRenderer, keys *input.KeyTable, screen tcell.Screen, log *zap.Logger, frameInterval time.Duration) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	reg := status.NewRegistry()
	tickCount := reg.Ints.Get(status.KeyTicks)
	tickMissed := reg.Ints.Get(status.KeyTicksMissed)
	frameCount := reg.Ints.Get(status.KeyFrames)
	frameTime := reg.Floats.Get(status.KeyFrameTime)
	roundCount := reg.Ints.Get(status.KeyRounds)
	screenName := reg.Strings.Get(status.KeyScreen)

	// Ticks that arrive while the loop is busy are dropped, not queued
	ticks := make(chan struct{}, 1)
	scheduler := engine.NewTickScheduler(constants.TickInterval)
	core.Go(func() {
		_ = scheduler.Run(ctx, func() {
			select {
			case ticks <- struct{}{}:
			default:
				tickMissed.Add(1)
			}
		})
	})

	frames := time.NewTicker(frameInterval)
	defer frames.Stop()

	for {
		select {
		case ev := <-events:
			cmd := keys.Translate(ev)
			if cmd == input.CmdResize {
				renderer.Resize()
				screen.Sync()
				continue
			}
			if sess.Handle(cmd) == session.ActionQuit {
				log.Info("exit requested", append(reg.Fields(),
					zap.Int("high_score", sess.HighScore()),
					zap.Uint64("scheduled_ticks", scheduler.TickCount()))...)
				return nil
			}
			roundCount.Store(int64(sess.RoundsStarted()))
			screenName.Store(sess.Screen().String())

		case <-ticks:
			tickCount.Add(1)
			sess.Step()
			screenName.Store(sess.Screen().String())

		case <-frames.C:
			start := time.Now()
			if err := sess.Draw(renderer); err != nil {
				return err
			}
			frameCount.Add(1)
			frameTime.Set(float64(time.Since(start).Microseconds()) / 1000)
		}
	}
}
