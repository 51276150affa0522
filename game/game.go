package game

import "tuibingo/card"

type Screen int

const (
	Playing Screen = iota
	Won
)

func (s Screen) String() string {
	switch s {
	case Playing:
		return "Playing"
	case Won:
		return "Won"
	}
	return "Unknown"
}

// Coordinate identifies a cell. X and Y are in [0, size).
type Coordinate struct {
	X, Y int
}

// Cursor position. X is the vertical axis (moved by Up/Down), Y the
// horizontal one (moved by Left/Right).
type Cursor struct {
	X, Y int
}

type MarkedSet map[Coordinate]struct{}

func (m MarkedSet) Has(c Coordinate) bool {
	_, ok := m[c]
	return ok
}

// Toggle removes c if present and inserts it otherwise.
func (m MarkedSet) Toggle(c Coordinate) {
	if m.Has(c) {
		delete(m, c)
	} else {
		m[c] = struct{}{}
	}
}

type Command int

const (
	None Command = iota
	Quit
	Up
	Down
	Left
	Right
	Mark
	Tick
)

func (c Command) String() string {
	switch c {
	case Quit:
		return "quit"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Mark:
		return "mark"
	case Tick:
		return "tick"
	}
	return "none"
}

type ActionKind int

const (
	ActionNop ActionKind = iota
	ActionQuit
	ActionChangeScreen
	ActionTick
)

// Action is the outcome of applying a Command. Screen is only set for
// ActionChangeScreen.
type Action struct {
	Kind   ActionKind
	Screen Screen
}

type State struct {
	Card   card.Card
	Size   int
	Cursor Cursor
	Marked MarkedSet
	Screen Screen
}

func NewState(c card.Card, size int) *State {
	return &State{
		Card:   c,
		Size:   size,
		Marked: make(MarkedSet),
		Screen: Playing,
	}
}

// Apply mutates the state for cmd and returns the resulting action.
// ActionChangeScreen has already been applied to s.Screen when returned.
func (s *State) Apply(cmd Command) Action {
	switch cmd {
	case Quit:
		return Action{Kind: ActionQuit}
	case Tick:
		return Action{Kind: ActionTick}
	case Up:
		if s.Cursor.X > 0 {
			s.Cursor.X--
		}
	case Down:
		if s.Cursor.X < s.Size-1 {
			s.Cursor.X++
		}
	case Left:
		if s.Cursor.Y > 0 {
			s.Cursor.Y--
		}
	case Right:
		if s.Cursor.Y < s.Size-1 {
			s.Cursor.Y++
		}
	case Mark:
		return s.mark()
	}
	return Action{Kind: ActionNop}
}

// MarkTarget maps the cursor onto the coordinate stored in the marked
// set. The axes are swapped: X holds the cursor column, Y the row.
func (s *State) MarkTarget() Coordinate {
	return Coordinate{X: s.Cursor.Y, Y: s.Cursor.X}
}

func (s *State) mark() Action {
	s.Marked.Toggle(s.MarkTarget())

	if s.Screen != Playing || !s.HasLine() {
		return Action{Kind: ActionNop}
	}
	s.Screen = Won
	return Action{Kind: ActionChangeScreen, Screen: Won}
}

// HasLine reports whether any row or column is fully marked.
func (s *State) HasLine() bool {
	rows := make([]int, s.Size)
	cols := make([]int, s.Size)
	for c := range s.Marked {
		cols[c.X]++
		rows[c.Y]++
	}
	for i := 0; i < s.Size; i++ {
		if rows[i] >= s.Size || cols[i] >= s.Size {
			return true
		}
	}
	return false
}

// IsMarked reports whether the cell drawn at grid row, col is marked.
func (s *State) IsMarked(row, col int) bool {
	return s.Marked.Has(Coordinate{X: col, Y: row})
}

func (s *State) IsCursor(row, col int) bool {
	return s.Cursor.X == row && s.Cursor.Y == col
}
