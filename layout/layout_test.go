package layout

import (
	"testing"
)

func expectDim(want, got Dimensions, t *testing.T) {
	t.Helper()
	if want != got {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestLayoutAbs(t *testing.T) {
	var header, body, footer Dimensions
	flex := Column(
		FlexItemBox(func(d Dimensions) { header = d }, Exact(Abs(3)), nil),
		FlexItemBox(func(d Dimensions) { body = d }, Max(Rel(1)), nil),
		FlexItemBox(func(d Dimensions) { footer = d }, Exact(Abs(3)), nil),
	)
	flex.StartLayouting(80, 24)

	expectDim(Dimensions{Point{0, 0}, 80, 3}, header, t)
	expectDim(Dimensions{Point{0, 3}, 80, 18}, body, t)
	expectDim(Dimensions{Point{0, 21}, 80, 3}, footer, t)
}

func TestLayoutRel(t *testing.T) {
	var left, right, bottom Dimensions
	flex := Column(
		FlexItemBox(EmptyBox, Exact(Rel(0.5)),
			Row(
				FlexItemBox(func(d Dimensions) { left = d }, Exact(Rel(0.5)), nil),
				FlexItemBox(func(d Dimensions) { right = d }, Exact(Rel(0.5)), nil),
			)),
		FlexItemBox(func(d Dimensions) { bottom = d }, Exact(Rel(0.5)), nil))

	flex.StartLayouting(200, 100)

	expectDim(Dimensions{Point{0, 0}, 100, 50}, left, t)
	expectDim(Dimensions{Point{100, 0}, 100, 50}, right, t)
	expectDim(Dimensions{Point{0, 50}, 200, 50}, bottom, t)
}

func TestLayoutShrinksTrailingItems(t *testing.T) {
	var header, body, footer Dimensions
	flex := Column(
		FlexItemBox(func(d Dimensions) { header = d }, Exact(Abs(3)), nil),
		FlexItemBox(func(d Dimensions) { body = d }, Max(Rel(1)), nil),
		FlexItemBox(func(d Dimensions) { footer = d }, Exact(Abs(3)), nil),
	)
	flex.StartLayouting(10, 4)

	expectDim(Dimensions{Point{0, 0}, 10, 3}, header, t)
	expectDim(Dimensions{}, body, t) // never called
	expectDim(Dimensions{Point{0, 3}, 10, 1}, footer, t)
}

func TestGridCoversArea(t *testing.T) {
	cells := make(map[[2]int]Dimensions)
	grid := Grid(5, 5, func(row, col int, d Dimensions) {
		cells[[2]int{row, col}] = d
	})
	area := Dimensions{Point{2, 5}, 52, 17}
	grid.Layout(area)

	if len(cells) != 25 {
		t.Fatalf("expected 25 cells, got %d", len(cells))
	}

	// 52 columns: two boxes of 11, three of 10. 17 rows: 4, 4, 3, 3, 3.
	expectDim(Dimensions{Point{2, 5}, 11, 4}, cells[[2]int{0, 0}], t)
	expectDim(Dimensions{Point{13, 9}, 11, 4}, cells[[2]int{1, 1}], t)
	expectDim(Dimensions{Point{44, 19}, 10, 3}, cells[[2]int{4, 4}], t)

	covered := 0
	for _, d := range cells {
		covered += d.Width * d.Height
	}
	if covered != area.Width*area.Height {
		t.Fatalf("expected %d cells covered, got %d", area.Width*area.Height, covered)
	}
}

func TestInset(t *testing.T) {
	d := Dimensions{Point{0, 0}, 80, 24}
	expectDim(Dimensions{Point{2, 2}, 76, 20}, d.Inset(2), t)
	expectDim(Dimensions{Point{1, 1}, 0, 0}, Dimensions{Point{1, 1}, 3, 3}.Inset(2), t)

	if !d.Contains(Point{79, 23}) || d.Contains(Point{80, 0}) {
		t.Fatal("Contains is off by one")
	}
}
