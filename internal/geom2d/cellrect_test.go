package geom2d

import "testing"

func TestCellRectCells(t *testing.T) {
	r := CellRect{IMin: 1, JMin: 1, IMax: 2, JMax: 3}
	var got [][2]int
	r.Cells(func(i, j int) bool {
		got = append(got, [2]int{i, j})
		return true
	})
	want := [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}, {1, 3}, {2, 3}}
	if len(got) != len(want) {
		t.Fatalf("Cells() produced %d cells, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCellRectAreaAndEmpty(t *testing.T) {
	tests := []struct {
		name  string
		r     CellRect
		empty bool
		area  int
	}{
		{"single cell", CellRect{IMin: 0, JMin: 0, IMax: 0, JMax: 0}, false, 1},
		{"2x5", CellRect{IMin: 0, JMin: 0, IMax: 1, JMax: 4}, false, 10},
		{"empty (inverted)", CellRect{IMin: 5, JMin: 5, IMax: 2, JMax: 2}, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Empty(); got != tt.empty {
				t.Errorf("Empty() = %v, want %v", got, tt.empty)
			}
			if got := tt.r.AreaCells(); got != tt.area {
				t.Errorf("AreaCells() = %v, want %v", got, tt.area)
			}
		})
	}
}

func TestCellRectClamp(t *testing.T) {
	r := CellRect{IMin: -2, JMin: -1, IMax: 10, JMax: 10}
	got := r.Clamp(5, 5)
	want := CellRect{IMin: 0, JMin: 0, IMax: 4, JMax: 4}
	if got != want {
		t.Errorf("Clamp() = %+v, want %+v", got, want)
	}
}

func TestCellRectCenterCell(t *testing.T) {
	r := CellRect{IMin: 0, JMin: 0, IMax: 4, JMax: 2}
	i, j := r.CenterCell()
	if i != 2 || j != 1 {
		t.Errorf("CenterCell() = (%d,%d), want (2,1)", i, j)
	}
}
