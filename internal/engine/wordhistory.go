package engine

// wordHistoryEntry is one committed word: its final structural buffer and
// raw input log, plus how many trailing spaces have been typed since.
type wordHistoryEntry struct {
	buffer         []Char
	raw            []RawEntry
	trailingSpaces int
}

// WordHistory is a small bounded stack of committed words. It lets the
// engine revive a previous word's composition when the user backspaces
// through a space that immediately followed a commit. The engine drops it
// entirely on ESC and on an Enter/Tab commit; typing letters after a space
// leaves it in place.
type WordHistory struct {
	entries  []wordHistoryEntry
	capacity int
}

// NewWordHistory returns an empty history bounded to capacity entries.
// A capacity outside [1, maxHistoryDepth] becomes maxHistoryDepth.
func NewWordHistory(capacity int) *WordHistory {
	if capacity <= 0 {
		capacity = maxHistoryDepth
	}
	if capacity > maxHistoryDepth {
		capacity = maxHistoryDepth
	}
	return &WordHistory{capacity: capacity}
}

// Commit pushes a newly-committed word. If the stack is already at
// capacity the oldest entry is dropped.
func (h *WordHistory) Commit(buffer []Char, raw []RawEntry) {
	entry := wordHistoryEntry{buffer: buffer, raw: raw, trailingSpaces: 1}
	h.entries = append(h.entries, entry)
	if len(h.entries) > h.capacity {
		h.entries = h.entries[1:]
	}
}

// AddSpace records one more trailing space typed after the most recent
// commit. It is a no-op if there is no committed entry.
func (h *WordHistory) AddSpace() {
	if len(h.entries) == 0 {
		return
	}
	h.entries[len(h.entries)-1].trailingSpaces++
}

// Invalidate drops all history.
func (h *WordHistory) Invalidate() {
	h.entries = nil
}

// Empty reports whether the history holds no committed words.
func (h *WordHistory) Empty() bool {
	return len(h.entries) == 0
}

// ReviveOnBackspace implements the word-history state machine transition
// for a backspace while the most recent commit is still "fresh" (i.e. it
// has no typed characters after it, only trailing spaces). It decrements
// the trailing-space counter and, once it reaches zero, pops the entry and
// returns its buffer/raw snapshots so the caller can restore composing
// state. ok is false if there is nothing to revive.
func (h *WordHistory) ReviveOnBackspace() (buffer []Char, raw []RawEntry, deleteSpace bool, ok bool) {
	if len(h.entries) == 0 {
		return nil, nil, false, false
	}
	top := &h.entries[len(h.entries)-1]
	if top.trailingSpaces <= 0 {
		return nil, nil, false, false
	}
	top.trailingSpaces--
	if top.trailingSpaces > 0 {
		// Still spaces left above this word; nothing to revive yet, but we
		// did consume one space from the host's perspective.
		return nil, nil, true, true
	}
	buffer = top.buffer
	raw = top.raw
	h.entries = h.entries[:len(h.entries)-1]
	return buffer, raw, true, true
}
