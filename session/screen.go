package session

// Screen is the top-level state shown to the player
type Screen uint8

const (
	ScreenMainMenu Screen = iota
	ScreenOptions
	ScreenConfirmExit
	ScreenPlaying
	ScreenPaused
	ScreenGameOver
)

var screenNames = [...]string{
	ScreenMainMenu:    "main_menu",
	ScreenOptions:     "options",
	ScreenConfirmExit: "confirm_exit",
	ScreenPlaying:     "playing",
	ScreenPaused:      "paused",
	ScreenGameOver:    "game_over",
}

// String returns the screen name
func (s Screen) String() string {
	if int(s) < len(screenNames) {
		return screenNames[s]
	}
	return "unknown"
}

// Action is returned by Handle for effects the runner must carry out
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
)

// Menu entries per screen, in display order
const (
	mainPlay = iota
	mainOptions
	mainExit
	mainCount
)

const (
	optionsMusic = iota
	optionsSFX
	optionsBack
	optionsCount
)

const (
	pauseResume = iota
	pauseQuit
	pauseCount
)

const (
	overPlayAgain = iota
	overMainMenu
	overCount
)

// entryCount returns the number of selectable entries on a screen
func entryCount(s Screen) int {
	switch s {
	case ScreenMainMenu:
		return mainCount
	case ScreenOptions:
		return optionsCount
	case ScreenPaused:
		return pauseCount
	case ScreenGameOver:
		return overCount
	default:
		return 0
	}
}
