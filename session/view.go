package session

import (
	"fmt"

	"github.com/lixenwraith/cyber-escape/config"
	"github.com/lixenwraith/cyber-escape/render"
)

const (
	gameTitle   = "Cyber Escape"
	menuFooter  = "enter/space select   esc back"
	statusPause = "PAUSED"
	statusOver  = "GAME OVER"
)

// Draw renders the current screen into the back buffer and presents it
// A sprite frame that cannot be resolved is returned and nothing is shown
func (s *Session) Draw(r *render.TerminalRenderer) error {
	r.Begin()

	switch s.screen {
	case ScreenMainMenu:
		m := render.Menu{
			Title:    gameTitle,
			Entries:  []string{"Play Game", "Options", "Exit"},
			Selected: s.cursor,
			Footer:   menuFooter,
		}
		if s.highScore > 0 {
			m.Lines = []string{fmt.Sprintf("High score: %d", s.highScore)}
		}
		r.DrawMenu(m)

	case ScreenOptions:
		r.DrawMenu(render.Menu{
			Title: "Options",
			Entries: []string{
				fmt.Sprintf("Music Volume: %d%%", config.Percent(s.settings.MusicVolume)),
				fmt.Sprintf("SFX Volume: %d%%", config.Percent(s.settings.SFXVolume)),
				"Back",
			},
			Selected: s.cursor,
			Footer:   menuFooter,
		})

	case ScreenConfirmExit:
		r.DrawMenu(render.Menu{
			Title:  "Are you sure you want to exit?",
			Footer: "enter/space ok   esc cancel",
		})

	case ScreenPlaying:
		if err := s.drawRound(r, ""); err != nil {
			return err
		}

	case ScreenPaused:
		if err := s.drawRound(r, statusPause); err != nil {
			return err
		}
		r.DrawMenu(render.Menu{
			Title:    "Paused",
			Entries:  []string{"Resume Game", "Quit Game"},
			Selected: s.cursor,
		})

	case ScreenGameOver:
		if err := s.drawRound(r, statusOver); err != nil {
			return err
		}
		lines := []string{fmt.Sprintf("Score: %d", s.outcome.Score)}
		if s.outcome.NewHigh {
			lines = append(lines, "New high score!")
		} else {
			lines = append(lines, fmt.Sprintf("High score: %d", s.outcome.HighScore))
		}
		r.DrawMenu(render.Menu{
			Title:    statusOver,
			Lines:    lines,
			Entries:  []string{"Play Again", "Main Menu"},
			Selected: s.cursor,
		})
	}

	r.Show()
	return nil
}

func (s *Session) drawRound(r *render.TerminalRenderer, status string) error {
	if err := r.DrawSprites(s.round.Sprites()); err != nil {
		return fmt.Errorf("draw round %s: %w", s.round.ID(), err)
	}
	r.DrawHUD(render.HUD{
		Score:      s.round.Score(),
		HighScore:  s.round.HighScore(),
		Difficulty: s.round.Difficulty(),
		Status:     status,
	})
	return nil
}
