package engine

// IntentKind classifies what a raw key means given the current buffer.
type IntentKind int

const (
	IntentLiteral IntentKind = iota
	IntentTone
	IntentDiacritic
	IntentStroke
	IntentRemoveMark
	IntentIgnore
)

// Intent is the result of classifying one raw keystroke.
type Intent struct {
	Kind      IntentKind
	Tone      ToneMark
	Diacritic DiacriticMark
}

// InputMethod classifies a raw key, given the current buffer, into an
// Intent. Telex, VNI and Plain are the three concrete implementations; it
// is the only port that legitimately switches at runtime (spec §9).
type InputMethod interface {
	// Name returns the input method's name ("Telex", "VNI" or "Plain").
	Name() string

	// Classify inspects key against the current buffer and configuration
	// and returns the classified Intent. key carries its original case;
	// implementations case-fold internally where the scheme is
	// case-insensitive.
	Classify(key rune, buf *StructuralBuffer, cfg *EngineConfig) Intent

	// IsComposingKey reports whether key extends the word being composed
	// rather than committing it. Both schemes treat Latin letters this way;
	// VNI additionally treats digits 0-9 as composing keys since it uses
	// them as tone/diacritic modifiers.
	IsComposingKey(key rune) bool
}

// vowelClusterHasToneOrMark reports whether any vowel in positions carries
// a diacritic or a mark — used by the same-vowel-doubling safety check.
func vowelClusterHasToneOrMark(buf *StructuralBuffer, positions []int) bool {
	for _, pos := range positions {
		c, ok := buf.Get(pos)
		if !ok {
			continue
		}
		if c.Diacritic != DiacriticNone || c.Mark != ToneNone {
			return true
		}
	}
	return false
}
