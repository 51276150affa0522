package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"tuibingo/layout"
)

// fill paints every cell of dim with a blank in style.
func fill(s tcell.Screen, dim layout.Dimensions, style tcell.Style) {
	for y := dim.Origin.Y; y < dim.Origin.Y+dim.Height; y++ {
		for x := dim.Origin.X; x < dim.Origin.X+dim.Width; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawText writes text starting at x, y and stops at maxX (exclusive).
// Wide runes take two cells.
func drawText(s tcell.Screen, x, y, maxX int, style tcell.Style, text string) {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x += w
	}
}

// drawCentered writes text horizontally centered in [minX, maxX).
func drawCentered(s tcell.Screen, minX, y, maxX int, style tcell.Style, text string) {
	width := maxX - minX
	text = runewidth.Truncate(text, width, "")
	x := minX + (width-runewidth.StringWidth(text))/2
	drawText(s, x, y, maxX, style, text)
}

// drawBox draws a bordered box filling dim, with title on the top
// border, and returns the area inside the border.
func drawBox(s tcell.Screen, dim layout.Dimensions, style tcell.Style, title string) layout.Dimensions {
	if dim.Width < 2 || dim.Height < 2 {
		fill(s, dim, style)
		return layout.Dimensions{Origin: dim.Origin}
	}
	fill(s, dim, style)

	x1, y1 := dim.Origin.X, dim.Origin.Y
	x2, y2 := x1+dim.Width-1, y1+dim.Height-1
	for x := x1 + 1; x < x2; x++ {
		s.SetContent(x, y1, tcell.RuneHLine, nil, style)
		s.SetContent(x, y2, tcell.RuneHLine, nil, style)
	}
	for y := y1 + 1; y < y2; y++ {
		s.SetContent(x1, y, tcell.RuneVLine, nil, style)
		s.SetContent(x2, y, tcell.RuneVLine, nil, style)
	}
	s.SetContent(x1, y1, tcell.RuneULCorner, nil, style)
	s.SetContent(x2, y1, tcell.RuneURCorner, nil, style)
	s.SetContent(x1, y2, tcell.RuneLLCorner, nil, style)
	s.SetContent(x2, y2, tcell.RuneLRCorner, nil, style)

	if title != "" {
		drawText(s, x1+1, y1, x2, style, title)
	}
	return dim.Inset(1)
}

// drawParagraph wraps text to the width of dim and writes the lines
// centered, from the top, dropping whatever does not fit.
func drawParagraph(s tcell.Screen, dim layout.Dimensions, style tcell.Style, lines []string) {
	maxX := dim.Origin.X + dim.Width
	row := 0
	for _, line := range lines {
		for _, wrapped := range wrap(line, dim.Width) {
			if row >= dim.Height {
				return
			}
			drawCentered(s, dim.Origin.X, dim.Origin.Y+row, maxX, style, wrapped)
			row++
		}
	}
}

// drawLines writes lines centered, from the top, without wrapping.
func drawLines(s tcell.Screen, dim layout.Dimensions, style tcell.Style, lines []string) {
	maxX := dim.Origin.X + dim.Width
	for i, line := range lines {
		if i >= dim.Height {
			return
		}
		drawCentered(s, dim.Origin.X, dim.Origin.Y+i, maxX, style, line)
	}
}

// wrap breaks text into lines no wider than width, at spaces where
// possible. Words longer than width are split. An empty text is one
// empty line.
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var current strings.Builder
	currentWidth := 0
	flush := func() {
		lines = append(lines, current.String())
		current.Reset()
		currentWidth = 0
	}

	for _, word := range words {
		for runewidth.StringWidth(word) > width {
			if currentWidth > 0 {
				flush()
			}
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				// a single rune wider than the line
				return lines
			}
			lines = append(lines, head)
			word = word[len(head):]
		}
		if word == "" {
			continue
		}

		w := runewidth.StringWidth(word)
		switch {
		case currentWidth == 0:
		case currentWidth+1+w <= width:
			current.WriteByte(' ')
			currentWidth++
		default:
			flush()
		}
		current.WriteString(word)
		currentWidth += w
	}
	if currentWidth > 0 {
		flush()
	}
	return lines
}
