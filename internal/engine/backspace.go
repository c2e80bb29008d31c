package engine

import lru "github.com/hashicorp/golang-lru/v2"

// backspaceCacheSize bounds the smart-backspace render memoization cache.
// A syllable's structural buffer rarely exceeds a few dozen distinct
// shapes per session, so a small LRU keeps lookups O(1) without
// unbounded growth (spec §4.8).
const backspaceCacheSize = 256

// backspaceCacheKey identifies one buffer shape for memoization purposes:
// an encoding of every Char's key, diacritic, mark, caps and stroke fields
// in the snapshot being rendered (the buffer after the pop).
type backspaceCacheKey string

// BackspaceCache memoizes StructuralBuffer -> rendered-rune-sequence
// lookups so that repeated backspace/retype cycles over the same prefix
// (common when a user corrects a tone) skip re-deriving the render.
type BackspaceCache struct {
	cache *lru.Cache[backspaceCacheKey, []rune]
}

// NewBackspaceCache builds the LRU-backed cache.
func NewBackspaceCache() *BackspaceCache {
	c, _ := lru.New[backspaceCacheKey, []rune](backspaceCacheSize)
	return &BackspaceCache{cache: c}
}

func snapshotKey(snap []Char) backspaceCacheKey {
	buf := make([]rune, 0, len(snap)*2)
	for _, c := range snap {
		buf = append(buf, rune(c.Key), rune(c.Diacritic), rune(c.Mark))
		if c.Caps {
			buf = append(buf, 1)
		}
		if c.Stroke {
			buf = append(buf, 2)
		}
	}
	return backspaceCacheKey(buf)
}

// RenderSnapshot renders a buffer snapshot, consulting (and populating)
// the memoization cache.
func (bc *BackspaceCache) RenderSnapshot(snap []Char) []rune {
	key := snapshotKey(snap)
	if v, ok := bc.cache.Get(key); ok {
		return v
	}
	tmp := NewStructuralBuffer()
	tmp.Restore(snap)
	rendered := RenderBuffer(tmp)
	bc.cache.Add(key, rendered)
	return rendered
}

// BackspaceResult is the outcome of one smart-backspace step.
type BackspaceResult struct {
	// NewRendered is the fully re-rendered sequence after the pop (or the
	// revived word's sequence, on the word-history complex path).
	NewRendered []rune
	// RevivedFromHistory is true if this backspace reopened a previously
	// committed word instead of editing the live buffer.
	RevivedFromHistory bool
}

// Backspace implements the fast path (pop the live buffer's last char and
// re-render) and the complex path (buffer empty: try to revive the most
// recently committed word from history), per spec §4.8.
func Backspace(buf *StructuralBuffer, raw *RawInputLog, history *WordHistory, cache *BackspaceCache) BackspaceResult {
	if buf.Len() > 0 {
		buf.Pop()
		raw.Pop()
		rendered := cache.RenderSnapshot(buf.Snapshot())
		return BackspaceResult{NewRendered: rendered}
	}

	revivedBuf, revivedRaw, _, ok := history.ReviveOnBackspace()
	if !ok {
		return BackspaceResult{NewRendered: nil}
	}
	if revivedBuf == nil {
		// A trailing space was consumed but no word was popped yet.
		return BackspaceResult{NewRendered: nil}
	}
	buf.Restore(revivedBuf)
	raw.Restore(revivedRaw)
	rendered := cache.RenderSnapshot(buf.Snapshot())
	return BackspaceResult{NewRendered: rendered, RevivedFromHistory: true}
}
