package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"tuibingo/config"
	"tuibingo/game"
	"tuibingo/layout"
)

const (
	margin       = 2
	headerHeight = 3
	footerHeight = 3

	Copyright = "tui-bingo 2021 - all rights reserved"
)

var Banner = []string{
	"",
	"",
	"",
	"████    █████   █   █    ███     ███ ",
	"█   █     █     ██  █   █   █   █   █",
	"█   █     █     ███ █   █       █   █",
	"████      █     █ █ █   █       █   █",
	"█   █     █     █ █ █   █ ███   █   █",
	"█   █     █     █  ██   █   █   █   █",
	"█   █     █     █  ██   █   █   █   █",
	"████    █████   █   █    ███     ███ ",
	"",
	"",
	"Press 'q' to exit",
}

type ThemeSource interface {
	Theme() config.Theme
}

// Renderer draws the game onto a screen. It only reads the state, so
// drawing the same state twice yields the same frame.
type Renderer struct {
	themes ThemeSource
}

func NewRenderer(themes ThemeSource) *Renderer {
	return &Renderer{themes: themes}
}

// Draw clears s and paints st. The caller shows the frame.
func (r *Renderer) Draw(s tcell.Screen, st *game.State) {
	theme := r.themes.Theme()
	width, height := s.Size()

	s.Clear()
	screen := layout.Column(
		layout.FlexItemBox(layout.EmptyBox, layout.Exact(layout.Abs(headerHeight)), nil),
		layout.FlexItemBox(func(dim layout.Dimensions) { r.drawMain(s, st, theme, dim) }, layout.Max(layout.Rel(1)), nil),
		layout.FlexItemBox(func(dim layout.Dimensions) { drawFooter(s, theme, dim) }, layout.Exact(layout.Abs(footerHeight)), nil),
	)
	screen.Layout(layout.Dimensions{Width: width, Height: height}.Inset(margin))
}

func (r *Renderer) drawMain(s tcell.Screen, st *game.State, theme config.Theme, dim layout.Dimensions) {
	switch st.Screen {
	case game.Playing:
		grid := layout.Grid(st.Size, st.Size, func(row, col int, cell layout.Dimensions) {
			drawCell(s, st, theme, row, col, cell)
		})
		grid.Layout(dim)
	case game.Won:
		inner := drawBox(s, dim, theme.Banner, "Win")
		drawLines(s, inner, theme.Banner, Banner)
	default:
		panic(fmt.Sprintf("render: unhandled screen %v", st.Screen))
	}
}

func drawCell(s tcell.Screen, st *game.State, theme config.Theme, row, col int, dim layout.Dimensions) {
	style := CellStyle(theme, st.IsCursor(row, col), st.IsMarked(row, col))
	title := fmt.Sprintf("Box %d", row*st.Size+col+1)
	inner := drawBox(s, dim, style, title)
	drawParagraph(s, inner, style, []string{st.Card.At(row, col, st.Size)})
}

// CellStyle picks the style of a grid box.
func CellStyle(theme config.Theme, cursor, marked bool) tcell.Style {
	switch {
	case cursor && marked:
		return theme.CursorMarked
	case marked:
		return theme.Marked
	case cursor:
		return theme.Cursor
	}
	return theme.Cell
}

func drawFooter(s tcell.Screen, theme config.Theme, dim layout.Dimensions) {
	inner := drawBox(s, dim, theme.Footer, "Copyright")
	drawParagraph(s, inner, theme.Footer, []string{Copyright})
}
