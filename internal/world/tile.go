// Package world holds the tile map extracted from a map document.
package world

// Tile is a tile index as it appears in the map's layer data.
type Tile int

const (
	// TileEmpty is the index Tiled writes for a cell with no tile.
	TileEmpty Tile = 0
	// MaxTile is the largest index that fits in one base-32 digit.
	MaxTile Tile = 31
)

// IsEmpty returns true if the cell holds no tile.
func (t Tile) IsEmpty() bool {
	return t == TileEmpty
}

// InRange returns true if the index can be encoded without clamping.
func (t Tile) InRange() bool {
	return t >= 0 && t <= MaxTile
}
