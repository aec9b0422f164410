// Package vtatlas implements a fixed-size, grid-tiled texture atlas with a
// direct-mapped region (stable index, never evicted) and an LRU-cached
// region (keyed by glyph identity, evicted on overflow). Rasterization
// itself is out of scope; this package only tracks tile placement and
// composes caller-supplied bitmaps into the backing texture image.
package vtatlas

import (
	"container/list"
	"image"
	"image/draw"
)

// TileKey identifies a cached glyph tile: the font, glyph index within that
// font, pixel size, and presentation (e.g. normal vs. emoji) that produced
// the bitmap. offset distinguishes continuation tiles of a wide glyph that
// spans more than one tile (see WithOffset).
type TileKey struct {
	FontID       int
	GlyphIndex   int
	Size         int
	Presentation int
	offset       int
}

// WithOffset returns the key for the n-th continuation tile of a wide glyph
// (n=0 is the head tile, matching the key itself).
func (k TileKey) WithOffset(n int) TileKey {
	k.offset = n
	return k
}

// TileLocation is the pixel offset of one tile within the atlas texture.
type TileLocation struct {
	X, Y int
}

// Atlas tracks tile placement within a fixed power-of-two texture. Direct
// tiles are addressed by a stable integer index (e.g. ASCII codepoint
// offset) and are never evicted. LRU tiles are addressed by TileKey and are
// evicted oldest-first when the LRU region is full.
type Atlas struct {
	tileSize      int
	textureSize   int
	directCount   int
	lruCapacity   int
	texture       *image.RGBA
	directTiles   map[int]TileLocation
	lruOrder      *list.List
	lruIndex      map[TileKey]*list.Element
	nextDirectRow int
	nextDirectCol int
	nextLRURow    int
	nextLRUCol    int
}

type lruEntry struct {
	key      TileKey
	location TileLocation
}

// NewAtlas allocates an atlas sized to the smallest power-of-two texture
// that fits directCount+lruCapacity tiles of tileSize pixels square.
func NewAtlas(tileSize, directCount, lruCapacity int) *Atlas {
	total := directCount + lruCapacity
	textureSize := powerOfTwoFit(tileSize, total)

	return &Atlas{
		tileSize:    tileSize,
		textureSize: textureSize,
		directCount: directCount,
		lruCapacity: lruCapacity,
		texture:     image.NewRGBA(image.Rect(0, 0, textureSize, textureSize)),
		directTiles: make(map[int]TileLocation),
		lruOrder:    list.New(),
		lruIndex:    make(map[TileKey]*list.Element),
	}
}

// powerOfTwoFit returns the smallest power-of-two square texture dimension
// whose tile grid holds at least tileCount tiles of tileSize pixels.
func powerOfTwoFit(tileSize, tileCount int) int {
	if tileCount <= 0 {
		tileCount = 1
	}
	size := tileSize
	for (size/tileSize)*(size/tileSize) < tileCount {
		size *= 2
	}
	return size
}

// TileSize returns the configured tile dimension in pixels.
func (a *Atlas) TileSize() int { return a.tileSize }

// Texture returns the backing RGBA image tiles are composed into.
func (a *Atlas) Texture() *image.RGBA { return a.texture }

// tilesPerRow returns how many tiles fit across one row of the texture.
func (a *Atlas) tilesPerRow() int { return a.textureSize / a.tileSize }

// UploadDirect places bitmap at the direct-mapped slot for index, composing
// it into the backing texture. Direct tiles are never evicted; re-uploading
// the same index overwrites its existing slot.
func (a *Atlas) UploadDirect(index int, bitmap *image.RGBA) TileLocation {
	loc, ok := a.directTiles[index]
	if !ok {
		perRow := a.tilesPerRow()
		loc = TileLocation{X: a.nextDirectCol * a.tileSize, Y: a.nextDirectRow * a.tileSize}
		a.nextDirectCol++
		if a.nextDirectCol >= perRow {
			a.nextDirectCol = 0
			a.nextDirectRow++
		}
		a.directTiles[index] = loc
	}
	a.compose(loc, bitmap)
	return loc
}

// DirectTile returns the location of a previously uploaded direct tile.
func (a *Atlas) DirectTile(index int) (TileLocation, bool) {
	loc, ok := a.directTiles[index]
	return loc, ok
}

// LRUTile looks up a cached glyph tile, bumping its recency on hit.
func (a *Atlas) LRUTile(key TileKey) (TileLocation, bool) {
	el, ok := a.lruIndex[key]
	if !ok {
		return TileLocation{}, false
	}
	a.lruOrder.MoveToFront(el)
	return el.Value.(*lruEntry).location, true
}

// Insert places bitmap into the LRU region under key, composing it into the
// backing texture. If the LRU region has reached lruCapacity, the least
// recently used tile is evicted first and its slot reused.
func (a *Atlas) Insert(key TileKey, bitmap *image.RGBA) TileLocation {
	if el, ok := a.lruIndex[key]; ok {
		a.lruOrder.MoveToFront(el)
		loc := el.Value.(*lruEntry).location
		a.compose(loc, bitmap)
		return loc
	}

	var loc TileLocation
	if a.lruOrder.Len() >= a.lruCapacity {
		tail := a.lruOrder.Back()
		evicted := tail.Value.(*lruEntry)
		loc = evicted.location
		a.lruOrder.Remove(tail)
		delete(a.lruIndex, evicted.key)
	} else {
		perRow := a.tilesPerRow()
		directRows := (a.directCount + perRow - 1) / perRow
		row := directRows + a.nextLRURow
		col := a.nextLRUCol
		loc = TileLocation{X: col * a.tileSize, Y: row * a.tileSize}
		a.nextLRUCol++
		if a.nextLRUCol >= perRow {
			a.nextLRUCol = 0
			a.nextLRURow++
		}
	}

	el := a.lruOrder.PushFront(&lruEntry{key: key, location: loc})
	a.lruIndex[key] = el
	a.compose(loc, bitmap)
	return loc
}

// compose draws bitmap into the texture at the tile's pixel location.
func (a *Atlas) compose(loc TileLocation, bitmap *image.RGBA) {
	rect := image.Rect(loc.X, loc.Y, loc.X+a.tileSize, loc.Y+a.tileSize)
	draw.Draw(a.texture, rect, bitmap, image.Point{}, draw.Src)
}

// TileLocationFor returns the pixel offset of the tileIndex-th tile in
// raster order, independent of whether it is a direct or LRU slot. Useful
// for backends that address tiles purely by linear index.
func (a *Atlas) TileLocationFor(tileIndex int) (x, y int) {
	perRow := a.tilesPerRow()
	row := tileIndex / perRow
	col := tileIndex % perRow
	return col * a.tileSize, row * a.tileSize
}
