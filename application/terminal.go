package application

import (
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

var ErrTerminalInit = errors.New("terminal initialization failed")

// OpenScreen puts the terminal into raw mode and returns a cleared
// full-screen surface with the cursor hidden.
func OpenScreen() (tcell.Screen, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.Wrap(ErrTerminalInit, "stdin is not a terminal")
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrapf(ErrTerminalInit, "%v", err)
	}
	if err := s.Init(); err != nil {
		return nil, errors.Wrapf(ErrTerminalInit, "%v", err)
	}
	s.SetStyle(tcell.StyleDefault)
	s.HideCursor()
	s.Clear()
	return s, nil
}

// CloseScreen restores the terminal. Deferred by the screen owner, it
// re-raises a panic after the terminal is usable again, otherwise the
// trace would be lost in the alternate screen.
func CloseScreen(s tcell.Screen) {
	maybePanic := recover()
	s.Clear()
	s.Fini()
	if maybePanic != nil {
		panic(maybePanic)
	}
}
