package vtatlas

import (
	"image"
	"image/color"
	"testing"
)

func solidTile(size int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestDirectTilesNeverEvicted(t *testing.T) {
	a := NewAtlas(8, 4, 2)

	for i := 0; i < 4; i++ {
		a.UploadDirect(i, solidTile(8, color.RGBA{R: 255, A: 255}))
	}

	for i := 0; i < 4; i++ {
		if _, ok := a.DirectTile(i); !ok {
			t.Errorf("direct tile %d missing after upload", i)
		}
	}
}

func TestLRUEvictsOldest(t *testing.T) {
	a := NewAtlas(8, 0, 2)

	k1 := TileKey{FontID: 1, GlyphIndex: 1}
	k2 := TileKey{FontID: 1, GlyphIndex: 2}
	k3 := TileKey{FontID: 1, GlyphIndex: 3}

	a.Insert(k1, solidTile(8, color.RGBA{R: 1, A: 255}))
	a.Insert(k2, solidTile(8, color.RGBA{G: 1, A: 255}))
	// k1 is now least recently used; inserting k3 should evict it.
	a.Insert(k3, solidTile(8, color.RGBA{B: 1, A: 255}))

	if _, ok := a.LRUTile(k1); ok {
		t.Errorf("expected k1 to be evicted")
	}
	if _, ok := a.LRUTile(k2); !ok {
		t.Errorf("expected k2 to remain cached")
	}
	if _, ok := a.LRUTile(k3); !ok {
		t.Errorf("expected k3 to be cached")
	}
}

func TestLRUHitBumpsRecency(t *testing.T) {
	a := NewAtlas(8, 0, 2)

	k1 := TileKey{FontID: 1, GlyphIndex: 1}
	k2 := TileKey{FontID: 1, GlyphIndex: 2}
	k3 := TileKey{FontID: 1, GlyphIndex: 3}

	a.Insert(k1, solidTile(8, color.RGBA{R: 1, A: 255}))
	a.Insert(k2, solidTile(8, color.RGBA{G: 1, A: 255}))
	a.LRUTile(k1) // touch k1, making k2 the least recently used
	a.Insert(k3, solidTile(8, color.RGBA{B: 1, A: 255}))

	if _, ok := a.LRUTile(k2); ok {
		t.Errorf("expected k2 to be evicted after k1 was touched")
	}
	if _, ok := a.LRUTile(k1); !ok {
		t.Errorf("expected k1 to remain cached")
	}
}

func TestWideGlyphContinuationKeys(t *testing.T) {
	head := TileKey{FontID: 1, GlyphIndex: 42}
	cont := head.WithOffset(1)

	if head == cont {
		t.Errorf("continuation key should differ from head key")
	}
}
