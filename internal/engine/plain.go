package engine

import "unicode"

// PlainMethod implements the "Plain" input method (spec §6): keys are
// inserted literally with no tone, diacritic or stroke transformation at
// all, for hosts that want the structural buffer's bookkeeping (history,
// backspace revival, diff output) without any Vietnamese composition.
type PlainMethod struct{}

// NewPlainMethod returns a no-op classifier.
func NewPlainMethod() *PlainMethod { return &PlainMethod{} }

// Name returns "Plain".
func (p *PlainMethod) Name() string { return "Plain" }

// Classify always reports a literal keystroke.
func (p *PlainMethod) Classify(key rune, buf *StructuralBuffer, cfg *EngineConfig) Intent {
	return Intent{Kind: IntentLiteral}
}

// CanStartWord reports whether r can begin a new composing word.
func (p *PlainMethod) CanStartWord(r rune) bool {
	return unicode.IsLetter(r)
}

// IsWordBreaker reports whether r ends the current composing word.
func (p *PlainMethod) IsWordBreaker(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsDigit(r)
}

// IsComposingKey reports whether r extends the current word: Plain has no
// digit modifiers, so only letters compose.
func (p *PlainMethod) IsComposingKey(r rune) bool {
	return unicode.IsLetter(r)
}
