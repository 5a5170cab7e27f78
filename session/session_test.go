package session

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cyber-escape/config"
	"github.com/lixenwraith/cyber-escape/content"
	"github.com/lixenwraith/cyber-escape/engine"
	"github.com/lixenwraith/cyber-escape/input"
	"github.com/lixenwraith/cyber-escape/render"
)

type fixedRand struct{ f float64 }

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(int) int     { return 0 }

type audioRecorder struct {
	cues    []engine.Cue
	volumes [][2]float64
}

func (a *audioRecorder) PlayCue(c engine.Cue) { a.cues = append(a.cues, c) }
func (a *audioRecorder) SetVolumes(sfx, music float64) {
	a.volumes = append(a.volumes, [2]float64{sfx, music})
}

// waves builds a table where levels below deadlyFrom park their orb above the portal
// and later levels place one directly below it, across the player's path
func waves(t *testing.T, deadlyFrom int) *content.WaveTable {
	t.Helper()
	var b strings.Builder
	for i := 0; i < 11; i++ {
		if i < deadlyFrom {
			fmt.Fprintf(&b, "- {level: %d, rings: [{count: 1, radius: 300, speed: 0, phase: %v}]}\n", i, math.Pi)
		} else {
			fmt.Fprintf(&b, "- {level: %d, rings: [{count: 1, radius: 100, speed: 0, phase: 0}]}\n", i)
		}
	}
	table, err := content.ParseWaves([]byte(b.String()))
	require.NoError(t, err)
	return table
}

func newSession(t *testing.T, deadlyFrom int) (*Session, *audioRecorder, *config.Config) {
	t.Helper()
	cfg := config.Defaults()
	cfg.Paths.SaveFile = filepath.Join(t.TempDir(), "save.toml")
	rec := &audioRecorder{}
	s := New(Options{
		Config: cfg,
		Audio:  rec,
		Waves:  waves(t, deadlyFrom),
		Rand:   fixedRand{f: 0.5},
	})
	return s, rec, cfg
}

func stepUntil(t *testing.T, s *Session, cond func() bool) {
	t.Helper()
	for i := 0; i < 5000; i++ {
		if cond() {
			return
		}
		s.Step()
	}
	t.Fatalf("condition not reached on screen %s", s.Screen())
}

// TestMainMenuNavigation verifies cursor wrap and the exit confirmation
func TestMainMenuNavigation(t *testing.T) {
	s, rec, _ := newSession(t, 11)
	assert.Equal(t, ScreenMainMenu, s.Screen())
	require.Len(t, rec.volumes, 1, "initial volumes applied")

	s.Handle(input.CmdUp)
	assert.Equal(t, mainExit, s.Cursor())
	s.Handle(input.CmdDown)
	assert.Equal(t, mainPlay, s.Cursor())

	s.Handle(input.CmdUp)
	assert.Equal(t, ActionNone, s.Handle(input.CmdConfirm))
	assert.Equal(t, ScreenConfirmExit, s.Screen())

	assert.Equal(t, ActionNone, s.Handle(input.CmdBack))
	assert.Equal(t, ScreenMainMenu, s.Screen())
	assert.Equal(t, mainExit, s.Cursor())

	s.Handle(input.CmdBack)
	assert.Equal(t, ActionQuit, s.Handle(input.CmdConfirm))
}

// TestQuitFromAnyScreen verifies Ctrl+C style quit is global
func TestQuitFromAnyScreen(t *testing.T) {
	s, _, _ := newSession(t, 11)
	assert.Equal(t, ActionQuit, s.Handle(input.CmdQuit))

	s.Handle(input.CmdConfirm)
	require.Equal(t, ScreenPlaying, s.Screen())
	assert.Equal(t, ActionQuit, s.Handle(input.CmdQuit))
}

// TestOptionsCycleVolumes verifies each entry steps its own channel
func TestOptionsCycleVolumes(t *testing.T) {
	s, rec, _ := newSession(t, 11)
	s.Handle(input.CmdDown)
	s.Handle(input.CmdConfirm)
	require.Equal(t, ScreenOptions, s.Screen())

	s.Handle(input.CmdConfirm)
	assert.Equal(t, 0.3, s.Settings().MusicVolume)
	assert.Equal(t, 0.25, s.Settings().SFXVolume)

	s.Handle(input.CmdDown)
	s.Handle(input.CmdConfirm)
	s.Handle(input.CmdConfirm)
	assert.Equal(t, 0.35, s.Settings().SFXVolume)

	require.Len(t, rec.volumes, 4)
	assert.Equal(t, [2]float64{0.35, 0.3}, rec.volumes[3])

	s.Handle(input.CmdDown)
	s.Handle(input.CmdConfirm)
	assert.Equal(t, ScreenMainMenu, s.Screen())
	assert.Equal(t, mainOptions, s.Cursor())
}

// TestPlayPauseResume verifies pausing freezes the round
func TestPlayPauseResume(t *testing.T) {
	s, rec, _ := newSession(t, 11)
	s.Handle(input.CmdConfirm)
	require.Equal(t, ScreenPlaying, s.Screen())
	round := s.Round()
	require.NotNil(t, round)

	stepUntil(t, s, func() bool { return round.Phase() == engine.PhaseIdle })
	s.Handle(input.CmdConfirm)
	assert.Equal(t, engine.PhaseAdvancing, round.Phase())
	assert.Equal(t, []engine.Cue{engine.CueAdvance}, rec.cues)

	s.Handle(input.CmdFocusLost)
	require.Equal(t, ScreenPaused, s.Screen())
	ticks := round.Stats().Ticks
	for i := 0; i < 10; i++ {
		s.Step()
	}
	assert.Equal(t, ticks, round.Stats().Ticks)

	s.Handle(input.CmdConfirm)
	assert.Equal(t, ScreenPlaying, s.Screen())
	s.Step()
	assert.Equal(t, ticks+1, round.Stats().Ticks)

	s.Handle(input.CmdBack)
	assert.Equal(t, ScreenPaused, s.Screen())
	s.Handle(input.CmdBack)
	assert.Equal(t, ScreenPlaying, s.Screen())
}

// TestPauseQuitToMenu verifies abandoning a round does not touch the high score
func TestPauseQuitToMenu(t *testing.T) {
	s, _, _ := newSession(t, 11)
	s.Handle(input.CmdConfirm)
	s.Handle(input.CmdBack)
	s.Handle(input.CmdDown)
	s.Handle(input.CmdConfirm)

	assert.Equal(t, ScreenMainMenu, s.Screen())
	assert.Nil(t, s.Round())
	assert.Zero(t, s.HighScore())
}

// TestGameOverPersistsHighScore verifies the outcome, the save file and restart carry-over
func TestGameOverPersistsHighScore(t *testing.T) {
	s, rec, cfg := newSession(t, 1)
	s.Handle(input.CmdConfirm)
	round := s.Round()

	// First advance is safe, the second portal carries an orb across the path
	stepUntil(t, s, func() bool { return round.Phase() == engine.PhaseIdle })
	s.Handle(input.CmdConfirm)
	stepUntil(t, s, func() bool { return round.Stats().Transitions == 1 })
	stepUntil(t, s, func() bool { return round.Phase() == engine.PhaseIdle })
	s.Handle(input.CmdConfirm)
	stepUntil(t, s, func() bool { return s.Screen() == ScreenGameOver })

	out := s.Outcome()
	assert.True(t, out.NewHigh)
	assert.Positive(t, out.Score)
	assert.Equal(t, out.Score, s.HighScore())
	assert.Equal(t, engine.CueCollision, rec.cues[len(rec.cues)-1])

	saved, err := config.LoadSave(cfg.Paths.SaveFile)
	require.NoError(t, err)
	assert.Equal(t, out.Score, saved.HighScore)

	ticks := round.Stats().Ticks
	s.Step()
	assert.Equal(t, ticks, round.Stats().Ticks, "no ticks on the game over screen")

	s.Handle(input.CmdConfirm)
	require.Equal(t, ScreenPlaying, s.Screen())
	assert.NotSame(t, round, s.Round())
	assert.Equal(t, out.Score, s.Round().HighScore())
	assert.Equal(t, 2, s.RoundsStarted())
}

// TestGameOverWithoutRecord verifies no save is written for a lower score
func TestGameOverWithoutRecord(t *testing.T) {
	cfg := config.Defaults()
	cfg.Paths.SaveFile = filepath.Join(t.TempDir(), "save.toml")
	s := New(Options{Config: cfg, Waves: waves(t, 0), Rand: fixedRand{f: 0.5}, HighScore: 500})

	s.Handle(input.CmdConfirm)
	round := s.Round()
	stepUntil(t, s, func() bool { return round.Phase() == engine.PhaseIdle })
	s.Handle(input.CmdConfirm)
	stepUntil(t, s, func() bool { return s.Screen() == ScreenGameOver })

	assert.False(t, s.Outcome().NewHigh)
	assert.Equal(t, 500, s.HighScore())
	saved, err := config.LoadSave(cfg.Paths.SaveFile)
	require.NoError(t, err)
	assert.Zero(t, saved.HighScore, "file never written")

	s.Handle(input.CmdDown)
	s.Handle(input.CmdConfirm)
	assert.Equal(t, ScreenMainMenu, s.Screen())
}

func screenText(screen tcell.SimulationScreen) string {
	w, h := screen.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// TestDrawScreens verifies each screen renders its key text
func TestDrawScreens(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(80, 25)

	s, _, _ := newSession(t, 11)
	r := render.NewTerminalRenderer(screen, content.DefaultCatalog())

	require.NoError(t, s.Draw(r))
	assert.Contains(t, screenText(screen), "> Play Game")

	s.Handle(input.CmdDown)
	s.Handle(input.CmdConfirm)
	require.NoError(t, s.Draw(r))
	assert.Contains(t, screenText(screen), "Music Volume: 25%")
	assert.Contains(t, screenText(screen), "SFX Volume: 25%")

	s.Handle(input.CmdBack)
	s.Handle(input.CmdUp)
	s.Handle(input.CmdConfirm)
	require.Equal(t, ScreenPlaying, s.Screen())
	s.Step()
	require.NoError(t, s.Draw(r))
	assert.Contains(t, screenText(screen), "SCORE 0")

	s.Handle(input.CmdBack)
	require.NoError(t, s.Draw(r))
	text := screenText(screen)
	assert.Contains(t, text, "PAUSED")
	assert.Contains(t, text, "> Resume Game")
}
