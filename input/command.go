package input

// Command is a semantic input, decoupled from the device that produced it
type Command uint8

const (
	CmdNone Command = iota

	// CmdConfirm advances in play and selects in menus (Enter, Space)
	CmdConfirm
	// CmdBack pauses in play and leaves sub-menus (Escape, Backspace)
	CmdBack
	// CmdFocusLost pauses play when the window or controller goes away
	CmdFocusLost

	CmdUp
	CmdDown

	// CmdQuit exits the program from any screen (Ctrl+C, Ctrl+Q)
	CmdQuit
	// CmdResize reports a terminal size change
	CmdResize
)

var commandNames = [...]string{
	CmdNone:      "none",
	CmdConfirm:   "confirm",
	CmdBack:      "back",
	CmdFocusLost: "focus_lost",
	CmdUp:        "up",
	CmdDown:      "down",
	CmdQuit:      "quit",
	CmdResize:    "resize",
}

// String returns the command name
func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}
