package invaders

import "testing"

func TestNewFormationLayout(t *testing.T) {
	g := testGeometry()
	f := NewFormation(g)

	if f.Count() != g.Rows*g.Columns {
		t.Fatalf("expected %d aliens, got %d", g.Rows*g.Columns, f.Count())
	}

	// Top row hangs Ceiling below the top of the world.
	top := f.At(g.Rows-1, 0)
	if got := top.Box().Top(); got != g.Height-g.Ceiling {
		t.Errorf("top row top edge = %v, want %v", got, g.Height-g.Ceiling)
	}

	// Leftmost column sits HSep from the left wall.
	if got := f.At(0, 0).Box().Left(); got != g.HSep {
		t.Errorf("left column left edge = %v, want %v", got, g.HSep)
	}

	// Neighbouring slots are spaced by size plus separation.
	dx := f.At(0, 1).X - f.At(0, 0).X
	if dx != g.AlienW+g.HSep {
		t.Errorf("column spacing = %v, want %v", dx, g.AlienW+g.HSep)
	}
	dy := f.At(1, 0).Y - f.At(0, 0).Y
	if dy != g.AlienH+g.VSep {
		t.Errorf("row spacing = %v, want %v", dy, g.AlienH+g.VSep)
	}
}

func TestFormationExtents(t *testing.T) {
	f := NewFormation(testGeometry())
	keepOnly(f, [2]int{2, 3}, [2]int{4, 7}, [2]int{1, 5})

	if col, _ := f.LeftmostColumn(); col != 3 {
		t.Errorf("LeftmostColumn = %d, want 3", col)
	}
	if col, _ := f.RightmostColumn(); col != 7 {
		t.Errorf("RightmostColumn = %d, want 7", col)
	}
	if row, _ := f.BottomRow(); row != 1 {
		t.Errorf("BottomRow = %d, want 1", row)
	}
	if x := f.LeftmostX(); x != f.At(2, 3).X {
		t.Errorf("LeftmostX = %v, want %v", x, f.At(2, 3).X)
	}
	if x := f.RightmostX(); x != f.At(4, 7).X {
		t.Errorf("RightmostX = %v, want %v", x, f.At(4, 7).X)
	}
	if y := f.BottomRowY(); y != f.At(1, 5).Y {
		t.Errorf("BottomRowY = %v, want %v", y, f.At(1, 5).Y)
	}

	cols := f.OccupiedColumns()
	if len(cols) != 3 || cols[0] != 3 || cols[1] != 5 || cols[2] != 7 {
		t.Errorf("OccupiedColumns = %v, want [3 5 7]", cols)
	}
	if _, ok := f.LowestInColumn(0); ok {
		t.Error("column 0 should be empty")
	}
}

func TestEmptyFormation(t *testing.T) {
	f := NewFormation(testGeometry())
	keepOnly(f)

	if !f.Empty() {
		t.Fatal("formation should be empty")
	}
	if _, ok := f.LeftmostColumn(); ok {
		t.Error("LeftmostColumn on empty formation should report !ok")
	}
	if len(f.OccupiedColumns()) != 0 {
		t.Error("empty formation has no occupied columns")
	}

	defer func() {
		if recover() == nil {
			t.Error("BottomRowY on empty formation should panic")
		}
	}()
	f.BottomRowY()
}

func TestFormationAtOutOfRange(t *testing.T) {
	f := NewFormation(testGeometry())
	if f.At(-1, 0) != nil || f.At(0, 99) != nil {
		t.Error("out of range slots should be nil")
	}
	f.Clear(99, 99) // must not panic
}
