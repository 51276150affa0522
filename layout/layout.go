package layout

type Point struct {
	X, Y int
}

// Resolved dimensions of a box
type Dimensions struct {
	Origin        Point // TL corner
	Width, Height int
}

// Inset shrinks d by margin cells on every side.
func (d Dimensions) Inset(margin int) Dimensions {
	w, h := d.Width-2*margin, d.Height-2*margin
	if w < 0 || h < 0 {
		return Dimensions{Origin: d.Origin}
	}
	return Dimensions{Point{d.Origin.X + margin, d.Origin.Y + margin}, w, h}
}

func (d Dimensions) Contains(p Point) bool {
	return p.X >= d.Origin.X && p.X < d.Origin.X+d.Width &&
		p.Y >= d.Origin.Y && p.Y < d.Origin.Y+d.Height
}

func (d Dimensions) length(dir Direction) int {
	if dir == Y {
		return d.Height
	}
	return d.Width
}

// slice cuts the part [offset, offset+size) along dir out of d.
func (d Dimensions) slice(dir Direction, offset, size int) Dimensions {
	if dir == Y {
		return Dimensions{Point{d.Origin.X, d.Origin.Y + offset}, d.Width, size}
	}
	return Dimensions{Point{d.Origin.X + offset, d.Origin.Y}, size, d.Height}
}

type Direction int

const (
	Y Direction = iota
	X
)

type Flex struct {
	Dir   Direction // direction of the main axis
	Items []FlexItem
}

func Column(items ...FlexItem) *Flex {
	return &Flex{Dir: Y, Items: items}
}

func Row(items ...FlexItem) *Flex {
	return &Flex{Dir: X, Items: items}
}

// Grid builds a rows x cols table of equally sized boxes. box is called
// with the row and column of each cell.
func Grid(rows, cols int, box func(row, col int, dim Dimensions)) *Flex {
	rowItems := make([]FlexItem, rows)
	for r := 0; r < rows; r++ {
		cells := make([]FlexItem, cols)
		for c := 0; c < cols; c++ {
			r, c := r, c
			cells[c] = FlexItemBox(func(dim Dimensions) { box(r, c, dim) }, Max(Rel(1)), nil)
		}
		rowItems[r] = FlexItemBox(EmptyBox, Max(Rel(1)), Row(cells...))
	}
	return Column(rowItems...)
}

func (f *Flex) StartLayouting(width, height int) {
	f.Layout(Dimensions{Origin: Point{0, 0}, Width: width, Height: height})
}

// Layout places every item inside dim along the main axis, calling each
// box before descending into its nested flex.
func (f *Flex) Layout(dim Dimensions) {
	sizes := distribute(f.Items, dim.length(f.Dir))

	offset := 0
	for i, item := range f.Items {
		itemDim := dim.slice(f.Dir, offset, sizes[i])
		offset += sizes[i]
		if sizes[i] == 0 {
			continue
		}
		if item.Box != nil {
			item.Box(itemDim)
		}
		if item.Flex != nil {
			item.Flex.Layout(itemDim)
		}
	}
}

// distribute hands out total cells. Minimum sizes are met first, in item
// order, so trailing items collapse when space runs out. The rest is
// shared equally among items still below their maximum; leftovers go to
// the earlier items.
func distribute(items []FlexItem, total int) []int {
	sizes := make([]int, len(items))
	maxes := make([]int, len(items))
	remaining := total

	for i, item := range items {
		maxes[i] = item.Size.Max.toAbs(total)
		need := min(item.Size.Min.toAbs(total), remaining)
		sizes[i] = need
		remaining -= need
	}

	for remaining > 0 {
		var growable []int
		for i := range items {
			if sizes[i] < maxes[i] {
				growable = append(growable, i)
			}
		}
		if len(growable) == 0 {
			break
		}

		share := max(remaining/len(growable), 1)
		for _, i := range growable {
			give := min(share, maxes[i]-sizes[i], remaining)
			sizes[i] += give
			remaining -= give
			if remaining == 0 {
				break
			}
		}
	}
	return sizes
}

type FlexItem struct {
	Box  LayoutBox
	Flex *Flex
	Size Constraint
}

func FlexItemBox(box LayoutBox, size Constraint, flex *Flex) FlexItem {
	return FlexItem{Box: box, Size: size, Flex: flex}
}

type Constraint struct {
	Min, Max Size
}

func Exact(size Size) Constraint {
	return Constraint{Min: size, Max: size}
}

func Max(size Size) Constraint {
	return Constraint{Min: Abs(0), Max: size}
}

type Size struct {
	abs int     // absolute size
	rel float64 // [0, 1]
}

func Abs(abs int) Size {
	return Size{abs: abs}
}

func Rel(rel float64) Size {
	return Size{rel: rel}
}

func (s Size) toAbs(size int) int {
	if s.abs != 0 {
		return s.abs
	}

	return int(s.rel * float64(size))
}

type LayoutBox func(Dimensions)

func EmptyBox(Dimensions) {}
