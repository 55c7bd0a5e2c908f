package invaders

// Formation is the fixed rows x columns grid of aliens. Row 0 is the bottom
// row. A nil slot is empty; slots only ever go from occupied to empty.
type Formation struct {
	rows, cols int
	slots      [][]*Alien // [row][col]
}

// NewFormation lays out a fully populated formation hanging from the top
// of the world.
func NewFormation(g Geometry) *Formation {
	f := &Formation{
		rows:  g.Rows,
		cols:  g.Columns,
		slots: make([][]*Alien, g.Rows),
	}
	for row := range g.Rows {
		f.slots[row] = make([]*Alien, g.Columns)
		y := g.Height - g.Ceiling - g.AlienH/2 - float64(g.Rows-(row+1))*(g.VSep+g.AlienH)
		for col := range g.Columns {
			x := g.HSep + g.AlienW/2 + float64(col)*(g.HSep+g.AlienW)
			f.slots[row][col] = NewAlien(x, y, g.AlienW, g.AlienH, row)
		}
	}
	return f
}

// Rows returns the number of rows.
func (f *Formation) Rows() int {
	return f.rows
}

// Columns returns the number of columns.
func (f *Formation) Columns() int {
	return f.cols
}

// At returns the alien in a slot, or nil if the slot is empty or out of range.
func (f *Formation) At(row, col int) *Alien {
	if row < 0 || row >= f.rows || col < 0 || col >= f.cols {
		return nil
	}
	return f.slots[row][col]
}

// Clear empties a slot.
func (f *Formation) Clear(row, col int) {
	if row < 0 || row >= f.rows || col < 0 || col >= f.cols {
		return
	}
	f.slots[row][col] = nil
}

// Each calls fn for every occupied slot, bottom row first, left to right.
func (f *Formation) Each(fn func(row, col int, a *Alien)) {
	for row := range f.rows {
		for col := range f.cols {
			if a := f.slots[row][col]; a != nil {
				fn(row, col, a)
			}
		}
	}
}

// Count returns the number of aliens left.
func (f *Formation) Count() int {
	n := 0
	f.Each(func(int, int, *Alien) { n++ })
	return n
}

// columnOccupied reports whether any row holds an alien in col.
func (f *Formation) columnOccupied(col int) bool {
	for row := range f.rows {
		if f.slots[row][col] != nil {
			return true
		}
	}
	return false
}

// LeftmostColumn returns the index of the leftmost non-empty column.
// ok is false when the formation is empty.
func (f *Formation) LeftmostColumn() (col int, ok bool) {
	for col := range f.cols {
		if f.columnOccupied(col) {
			return col, true
		}
	}
	return 0, false
}

// RightmostColumn returns the index of the rightmost non-empty column.
// ok is false when the formation is empty.
func (f *Formation) RightmostColumn() (col int, ok bool) {
	for col := f.cols - 1; col >= 0; col-- {
		if f.columnOccupied(col) {
			return col, true
		}
	}
	return 0, false
}

// BottomRow returns the index of the lowest non-empty row.
// ok is false when the formation is empty.
func (f *Formation) BottomRow() (row int, ok bool) {
	for row := range f.rows {
		for col := range f.cols {
			if f.slots[row][col] != nil {
				return row, true
			}
		}
	}
	return 0, false
}

// Empty reports whether every alien has been destroyed.
func (f *Formation) Empty() bool {
	_, ok := f.BottomRow()
	return !ok
}

// OccupiedColumns returns the indices of all columns holding an alien,
// left to right.
func (f *Formation) OccupiedColumns() []int {
	cols := make([]int, 0, f.cols)
	for col := range f.cols {
		if f.columnOccupied(col) {
			cols = append(cols, col)
		}
	}
	return cols
}

// LowestInColumn returns the row of the lowest alien in col.
// ok is false when the column is empty.
func (f *Formation) LowestInColumn(col int) (row int, ok bool) {
	if col < 0 || col >= f.cols {
		return 0, false
	}
	for row := range f.rows {
		if f.slots[row][col] != nil {
			return row, true
		}
	}
	return 0, false
}

// LeftmostX returns the centre x of the first alien found in the leftmost
// column. The formation must not be empty.
func (f *Formation) LeftmostX() float64 {
	col, ok := f.LeftmostColumn()
	if !ok {
		panic("invaders: LeftmostX on empty formation")
	}
	row, _ := f.LowestInColumn(col)
	return f.slots[row][col].X
}

// RightmostX returns the centre x of the first alien found in the rightmost
// column. The formation must not be empty.
func (f *Formation) RightmostX() float64 {
	col, ok := f.RightmostColumn()
	if !ok {
		panic("invaders: RightmostX on empty formation")
	}
	row, _ := f.LowestInColumn(col)
	return f.slots[row][col].X
}

// BottomRowY returns the centre y of the first alien in the bottom row.
// The formation must not be empty.
func (f *Formation) BottomRowY() float64 {
	row, ok := f.BottomRow()
	if !ok {
		panic("invaders: BottomRowY on empty formation")
	}
	for col := range f.cols {
		if a := f.slots[row][col]; a != nil {
			return a.Y
		}
	}
	panic("unreachable")
}
