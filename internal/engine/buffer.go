package engine

// StructuralBuffer is the fixed-capacity ordered sequence of Char records
// that make up the syllable currently being composed. It performs no
// interpretation of its contents — invariant maintenance (at most one
// mark, diacritics only on vowels, stroke only on 'd') is the
// responsibility of the transformation engine that calls it.
type StructuralBuffer struct {
	chars []Char
}

// NewStructuralBuffer returns an empty buffer.
func NewStructuralBuffer() *StructuralBuffer {
	return &StructuralBuffer{chars: make([]Char, 0, 8)}
}

// Len returns the number of chars currently buffered.
func (b *StructuralBuffer) Len() int { return len(b.chars) }

// Push appends a char; it is a silent no-op once capacity is reached.
func (b *StructuralBuffer) Push(c Char) {
	if len(b.chars) >= bufferCapacity {
		return
	}
	b.chars = append(b.chars, c)
}

// Pop removes and returns the last char, if any.
func (b *StructuralBuffer) Pop() (Char, bool) {
	if len(b.chars) == 0 {
		return Char{}, false
	}
	last := b.chars[len(b.chars)-1]
	b.chars = b.chars[:len(b.chars)-1]
	return last, true
}

// Last returns the last char without removing it.
func (b *StructuralBuffer) Last() (Char, bool) {
	if len(b.chars) == 0 {
		return Char{}, false
	}
	return b.chars[len(b.chars)-1], true
}

// Get returns the char at position i.
func (b *StructuralBuffer) Get(i int) (Char, bool) {
	if i < 0 || i >= len(b.chars) {
		return Char{}, false
	}
	return b.chars[i], true
}

// Set overwrites the char at position i.
func (b *StructuralBuffer) Set(i int, c Char) {
	if i < 0 || i >= len(b.chars) {
		return
	}
	b.chars[i] = c
}

// Iter calls fn for every char in order; fn returning false stops iteration.
func (b *StructuralBuffer) Iter(fn func(pos int, c Char) bool) {
	for i, c := range b.chars {
		if !fn(i, c) {
			return
		}
	}
}

// FindVowels returns the positions of all vowel chars in buffer order.
func (b *StructuralBuffer) FindVowels() []int {
	positions := make([]int, 0, vowelProjectionCapacity)
	for i, c := range b.chars {
		if c.IsVowel() {
			positions = append(positions, i)
			if len(positions) == vowelProjectionCapacity {
				break
			}
		}
	}
	return positions
}

// VowelProjection rebuilds the transient (position, key, diacritic) view
// of the current vowel cluster, used by tone-positioning and the validator.
func (b *StructuralBuffer) VowelProjection() []VowelRef {
	positions := b.FindVowels()
	refs := make([]VowelRef, 0, len(positions))
	for _, pos := range positions {
		c := b.chars[pos]
		refs = append(refs, VowelRef{Pos: pos, Key: c.Key, Diacritic: c.Diacritic})
	}
	return refs
}

// HasFinalConsonant reports whether the buffer ends with a consonant coda
// after the last vowel in the cluster (i.e. the syllable has closed).
func (b *StructuralBuffer) HasFinalConsonant() bool {
	vowels := b.FindVowels()
	if len(vowels) == 0 {
		return false
	}
	last := vowels[len(vowels)-1]
	return last < len(b.chars)-1
}

// Mark returns the position of the char carrying a non-NONE mark, if any.
func (b *StructuralBuffer) Mark() (int, bool) {
	for i, c := range b.chars {
		if c.Mark != ToneNone {
			return i, true
		}
	}
	return 0, false
}

// ClearMark clears any mark currently set in the buffer.
func (b *StructuralBuffer) ClearMark() {
	for i := range b.chars {
		b.chars[i].Mark = ToneNone
	}
}

// Clear empties the buffer, for use at a word boundary.
func (b *StructuralBuffer) Clear() {
	b.chars = b.chars[:0]
}

// Snapshot returns an independent copy of the buffer's contents.
func (b *StructuralBuffer) Snapshot() []Char {
	snap := make([]Char, len(b.chars))
	copy(snap, b.chars)
	return snap
}

// Restore replaces the buffer's contents with a previously-taken snapshot.
func (b *StructuralBuffer) Restore(snapshot []Char) {
	b.chars = make([]Char, len(snapshot))
	copy(b.chars, snapshot)
}
