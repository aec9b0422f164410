package vtatlas

import "image/color"

// AtlasProperties configures a backend's texture allocation: pixel format,
// tile dimension, LRU hash-table size hint, total tile capacity, and how
// many of those tiles are reserved for the direct-mapped region.
type AtlasProperties struct {
	Format             string
	TileSize           int
	HashCount          int
	TileCount          int
	DirectMappingCount int
}

// ConfigureAtlas is the backend command to (re)allocate a texture of the
// given size and properties. A backend may batch this with subsequent
// UploadTile/RenderTile commands.
type ConfigureAtlas struct {
	Size       int
	Properties AtlasProperties
}

// UploadTile is the backend command to upload a rasterized bitmap into a
// tile slot. bitmapSize may differ from the tile's full size for partially
// filled tiles (e.g. narrow glyphs).
type UploadTile struct {
	Location    TileLocation
	Bitmap      []byte
	BitmapSize  [2]int
	Format      string
}

// RenderTile is the backend command to draw one tile (or continuation
// slice, for wide glyphs) at a screen position.
type RenderTile struct {
	X, Y            float64
	BitmapSize      [2]int
	TargetSize      [2]int
	Color           color.RGBA
	TileLocation    TileLocation
	NormalizedLoc   [2]float64
	ShaderSelector  int
}
