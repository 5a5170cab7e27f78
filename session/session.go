package session

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/cyber-escape/config"
	"github.com/lixenwraith/cyber-escape/constants"
	"github.com/lixenwraith/cyber-escape/content"
	"github.com/lixenwraith/cyber-escape/engine"
	"github.com/lixenwraith/cyber-escape/input"
)

// Audio is the subset of the sound manager the session drives
type Audio interface {
	engine.CueSink
	SetVolumes(sfx, music float64)
}

type silentAudio struct{}

func (silentAudio) PlayCue(engine.Cue)          {}
func (silentAudio) SetVolumes(float64, float64) {}

// Options wires a session; nil fields select defaults
type Options struct {
	Config    *config.Config
	Settings  *config.Settings
	Audio     Audio
	Waves     *content.WaveTable
	Catalog   *content.Catalog
	Rand      engine.Rand
	Logger    *zap.Logger
	HighScore int // loaded from the save file
}

// Session owns the screen flow and the active round
// Handle, Step and Draw must be called from one goroutine
type Session struct {
	cfg      *config.Config
	settings *config.Settings
	audio    Audio
	waves    *content.WaveTable
	catalog  *content.Catalog
	rng      engine.Rand
	log      *zap.Logger

	screen    Screen
	cursor    int
	round     *engine.Round
	outcome   engine.Outcome
	highScore int
	rounds    int
}

// New creates a session on the main menu
func New(opts Options) *Session {
	if opts.Config == nil {
		opts.Config = config.Defaults()
	}
	if opts.Settings == nil {
		opts.Settings = config.NewSettings(opts.Config.Audio)
	}
	if opts.Audio == nil {
		opts.Audio = silentAudio{}
	}
	if opts.Waves == nil {
		opts.Waves = content.DefaultWaves()
	}
	if opts.Catalog == nil {
		opts.Catalog = content.DefaultCatalog()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	s := &Session{
		cfg:       opts.Config,
		settings:  opts.Settings,
		audio:     opts.Audio,
		waves:     opts.Waves,
		catalog:   opts.Catalog,
		rng:       opts.Rand,
		log:       opts.Logger.Named("session"),
		highScore: opts.HighScore,
	}
	s.audio.SetVolumes(s.settings.SFXVolume, s.settings.MusicVolume)
	return s
}

// Handle applies one input command to the current screen
func (s *Session) Handle(cmd input.Command) Action {
	if cmd == input.CmdQuit {
		return ActionQuit
	}

	switch s.screen {
	case ScreenMainMenu:
		return s.handleMainMenu(cmd)
	case ScreenOptions:
		s.handleOptions(cmd)
	case ScreenConfirmExit:
		switch cmd {
		case input.CmdConfirm:
			return ActionQuit
		case input.CmdBack:
			s.show(ScreenMainMenu, mainExit)
		}
	case ScreenPlaying:
		s.handlePlaying(cmd)
	case ScreenPaused:
		s.handlePaused(cmd)
	case ScreenGameOver:
		s.handleGameOver(cmd)
	}
	return ActionNone
}

func (s *Session) handleMainMenu(cmd input.Command) Action {
	switch cmd {
	case input.CmdUp, input.CmdDown:
		s.moveCursor(cmd)
	case input.CmdBack:
		s.show(ScreenConfirmExit, 0)
	case input.CmdConfirm:
		switch s.cursor {
		case mainPlay:
			s.startRound()
		case mainOptions:
			s.show(ScreenOptions, optionsMusic)
		case mainExit:
			s.show(ScreenConfirmExit, 0)
		}
	}
	return ActionNone
}

func (s *Session) handleOptions(cmd input.Command) {
	switch cmd {
	case input.CmdUp, input.CmdDown:
		s.moveCursor(cmd)
	case input.CmdBack:
		s.show(ScreenMainMenu, mainOptions)
	case input.CmdConfirm:
		switch s.cursor {
		case optionsMusic:
			s.settings.CycleMusic()
		case optionsSFX:
			s.settings.CycleSFX()
		case optionsBack:
			s.show(ScreenMainMenu, mainOptions)
			return
		}
		s.audio.SetVolumes(s.settings.SFXVolume, s.settings.MusicVolume)
		s.log.Debug("volume changed",
			zap.Float64("sfx", s.settings.SFXVolume),
			zap.Float64("music", s.settings.MusicVolume))
	}
}

func (s *Session) handlePlaying(cmd input.Command) {
	switch cmd {
	case input.CmdConfirm:
		s.round.RequestAdvance()
	case input.CmdBack, input.CmdFocusLost:
		s.show(ScreenPaused, pauseResume)
		s.log.Debug("paused", zap.String("cause", cmd.String()))
	}
}

func (s *Session) handlePaused(cmd input.Command) {
	switch cmd {
	case input.CmdUp, input.CmdDown:
		s.moveCursor(cmd)
	case input.CmdBack:
		s.show(ScreenPlaying, 0)
	case input.CmdConfirm:
		if s.cursor == pauseResume {
			s.show(ScreenPlaying, 0)
			return
		}
		s.log.Info("round abandoned", zap.String("round", s.round.ID()), zap.Int("score", s.round.Score()))
		s.round = nil
		s.show(ScreenMainMenu, mainPlay)
	}
}

func (s *Session) handleGameOver(cmd input.Command) {
	switch cmd {
	case input.CmdUp, input.CmdDown:
		s.moveCursor(cmd)
	case input.CmdBack:
		s.round = nil
		s.show(ScreenMainMenu, mainPlay)
	case input.CmdConfirm:
		if s.cursor == overPlayAgain {
			s.startRound()
			return
		}
		s.round = nil
		s.show(ScreenMainMenu, mainPlay)
	}
}

// Step advances the active round by one fixed tick while playing
func (s *Session) Step() {
	if s.screen != ScreenPlaying {
		return
	}
	s.round.Tick(constants.TickSeconds)
	if s.round.GameOver() {
		s.finishRound()
	}
}

func (s *Session) startRound() {
	s.round = engine.NewRound(engine.RoundOptions{
		HighScore:    s.highScore,
		Waves:        s.waves,
		Catalog:      s.catalog,
		Rand:         s.rng,
		Cues:         s.audio,
		Logger:       s.log,
		ClampArrival: s.cfg.Game.ClampArrival,
	})
	s.rounds++
	s.show(ScreenPlaying, 0)
}

func (s *Session) finishRound() {
	s.outcome = s.round.Outcome()
	s.highScore = s.outcome.HighScore
	s.show(ScreenGameOver, overPlayAgain)

	if !s.outcome.NewHigh || s.cfg.Paths.SaveFile == "" {
		return
	}
	if err := config.WriteSave(s.cfg.Paths.SaveFile, config.SaveData{HighScore: s.highScore}); err != nil {
		s.log.Error("save high score failed", zap.Error(err))
		return
	}
	s.log.Info("high score saved", zap.Int("high_score", s.highScore))
}

func (s *Session) show(screen Screen, cursor int) {
	s.screen = screen
	s.cursor = cursor
}

// moveCursor steps the selection with wrap-around
func (s *Session) moveCursor(cmd input.Command) {
	n := entryCount(s.screen)
	if n == 0 {
		return
	}
	if cmd == input.CmdUp {
		s.cursor = (s.cursor + n - 1) % n
	} else {
		s.cursor = (s.cursor + 1) % n
	}
}

func (s *Session) Screen() Screen             { return s.screen }
func (s *Session) Cursor() int                { return s.cursor }
func (s *Session) Round() *engine.Round       { return s.round }
func (s *Session) Outcome() engine.Outcome    { return s.outcome }
func (s *Session) HighScore() int             { return s.highScore }
func (s *Session) Settings() *config.Settings { return s.settings }
func (s *Session) RoundsStarted() int         { return s.rounds }
