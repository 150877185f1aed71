package world

// Map is the first layer of a map document together with its declared size.
// Width, Height and Tiles keep the values as read; nothing is clamped here.
type Map struct {
	Width    int
	Height   int
	Tiles    []Tile
	HasLayer bool // a layer with a data block was found
}

// At returns the tile at (x, y) in row-major order. The second result is
// false when the cell lies outside the grid or past the end of the data.
func (m *Map) At(x, y int) (Tile, bool) {
	if m.Width <= 0 || x < 0 || x >= m.Width || y < 0 {
		return TileEmpty, false
	}
	i := y*m.Width + x
	if i >= len(m.Tiles) {
		return TileEmpty, false
	}
	return m.Tiles[i], true
}

// Rows returns how many rows the tile data spans at Width columns. This can
// differ from Height when the data block is short or long.
func (m *Map) Rows() int {
	if m.Width <= 0 {
		return 0
	}
	return (len(m.Tiles) + m.Width - 1) / m.Width
}

// OutOfRange counts the tiles that need clamping to encode.
func (m *Map) OutOfRange() int {
	n := 0
	for _, t := range m.Tiles {
		if !t.InRange() {
			n++
		}
	}
	return n
}
