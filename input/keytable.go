package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal events to commands without function pointers
type KeyTable struct {
	// Special keys (Enter, Escape, arrows, Ctrl+*)
	Keys map[tcell.Key]Command

	// Printable runes, matched only without Ctrl/Alt
	Runes map[rune]Command
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Command{
			tcell.KeyEnter:      CmdConfirm,
			tcell.KeyEscape:     CmdBack,
			tcell.KeyBackspace:  CmdBack,
			tcell.KeyBackspace2: CmdBack,
			tcell.KeyUp:         CmdUp,
			tcell.KeyDown:       CmdDown,
			tcell.KeyCtrlC:      CmdQuit,
			tcell.KeyCtrlQ:      CmdQuit,
		},
		Runes: map[rune]Command{
			' ': CmdConfirm,
			'k': CmdUp,
			'w': CmdUp,
			'j': CmdDown,
			's': CmdDown,
		},
	}
}

// Translate converts a polled terminal event into a command
func (kt *KeyTable) Translate(ev tcell.Event) Command {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return kt.translateKey(ev)
	case *tcell.EventResize:
		return CmdResize
	case *tcell.EventFocus:
		if !ev.Focused {
			return CmdFocusLost
		}
	}
	return CmdNone
}

func (kt *KeyTable) translateKey(ev *tcell.EventKey) Command {
	if ev.Key() != tcell.KeyRune {
		return kt.Keys[ev.Key()]
	}
	// Some terminals report Ctrl+letter as a modified rune
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		switch ev.Rune() {
		case 'c', 'q':
			return CmdQuit
		}
		return CmdNone
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		return CmdNone
	}
	return kt.Runes[ev.Rune()]
}
