package world

import "testing"

func TestMapAt(t *testing.T) {
	m := &Map{
		Width:  3,
		Height: 2,
		Tiles:  []Tile{1, 2, 3, 4, 5, 6},
	}

	tests := []struct {
		x, y int
		want Tile
		ok   bool
	}{
		{0, 0, 1, true},
		{2, 0, 3, true},
		{0, 1, 4, true},
		{2, 1, 6, true},
		{3, 0, TileEmpty, false}, // past the row end
		{0, 2, TileEmpty, false}, // past the data
		{-1, 0, TileEmpty, false},
		{0, -1, TileEmpty, false},
	}

	for _, tt := range tests {
		got, ok := m.At(tt.x, tt.y)
		if got != tt.want || ok != tt.ok {
			t.Errorf("At(%d,%d) = %d,%v; want %d,%v", tt.x, tt.y, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMapRows(t *testing.T) {
	tests := []struct {
		width int
		tiles int
		want  int
	}{
		{3, 6, 2},
		{3, 7, 3}, // partial last row
		{3, 0, 0},
		{0, 5, 0},
	}

	for _, tt := range tests {
		m := &Map{Width: tt.width, Tiles: make([]Tile, tt.tiles)}
		if got := m.Rows(); got != tt.want {
			t.Errorf("Rows() with width %d and %d tiles = %d; want %d", tt.width, tt.tiles, got, tt.want)
		}
	}
}

func TestMapOutOfRange(t *testing.T) {
	m := &Map{Width: 2, Tiles: []Tile{0, 31, 32, -1, 100}}
	if got := m.OutOfRange(); got != 3 {
		t.Errorf("Expected 3 out-of-range tiles, got %d", got)
	}
}

func TestTileRange(t *testing.T) {
	if !TileEmpty.IsEmpty() {
		t.Error("TileEmpty should be empty")
	}
	if !MaxTile.InRange() || Tile(32).InRange() || Tile(-1).InRange() {
		t.Error("InRange should accept exactly 0..31")
	}
}
