package engine

// EngineConfig holds the full set of tunables the host passes at engine
// construction time (spec §6). It is validated and immutable for the
// lifetime of one CompositionEngine; switching values requires building a
// new config and calling CompositionEngine.SetConfig.
type EngineConfig struct {
	// InputMethodName selects "Telex", "VNI" or "Plain" (which disables all
	// transforms). Unknown names fall back to Telex.
	InputMethodName string

	// ToneStrategy resolves the oa/oe/uy family placement ambiguity.
	ToneStrategy ToneStrategy

	// UseModernTonePlacement is the legacy boolean alias for ToneStrategy
	// when ToneStrategy is ToneAuto.
	UseModernTonePlacement bool

	// Enabled is the master on/off switch; when false, OnKey returns an
	// empty Diff (ActionNone) for every key and leaves all state untouched.
	Enabled bool

	// SmartMode enables the phonotactic validator and language decider so
	// that English-looking runs of keystrokes restore to raw ASCII instead
	// of being transformed.
	SmartMode bool

	// InstantRestore reverts a transformation immediately when the
	// resulting syllable fails validation (spec §4.7).
	InstantRestore bool

	// EscRestore lets ESC revert the word currently being composed back to
	// its raw ASCII form.
	EscRestore bool

	// ShortcutsEnabled turns on the shortcut-expansion subsystem on
	// word-commit boundaries.
	ShortcutsEnabled bool

	// MaxHistorySize bounds the word-history stack depth used for smart
	// backspace revival; a value outside [1, maxHistoryDepth] becomes
	// maxHistoryDepth.
	MaxHistorySize int

	// EnableBackwardApplication lets a diacritic-forming key reach back
	// through an already-typed final consonant to modify the vowel that
	// precedes it (spec §12), e.g. "camas" -> "cấm".
	EnableBackwardApplication bool
}

// DefaultConfig returns the engine's default configuration: Telex, modern
// tone placement, smart mode and both restore paths on.
func DefaultConfig() *EngineConfig {
	return &EngineConfig{
		InputMethodName:           "Telex",
		ToneStrategy:              ToneAuto,
		UseModernTonePlacement:    true,
		Enabled:                   true,
		SmartMode:                 true,
		InstantRestore:            true,
		EscRestore:                true,
		ShortcutsEnabled:          true,
		MaxHistorySize:            maxHistoryDepth,
		EnableBackwardApplication: true,
	}
}

// Normalize replaces out-of-range fields with a valid default rather than
// erroring (MaxHistorySize -> maxHistoryDepth, unknown InputMethodName ->
// "Telex"); the core never rejects a config (spec §7 total contract).
func (c *EngineConfig) Normalize() {
	if c.MaxHistorySize <= 0 || c.MaxHistorySize > maxHistoryDepth {
		c.MaxHistorySize = maxHistoryDepth
	}
	switch c.InputMethodName {
	case "Telex", "VNI", "Plain":
	default:
		c.InputMethodName = "Telex"
	}
}

// newInputMethod builds the InputMethod named by the config.
func (c *EngineConfig) newInputMethod() InputMethod {
	switch c.InputMethodName {
	case "VNI":
		return NewVNIMethod()
	case "Plain":
		return NewPlainMethod()
	default:
		return NewTelexMethod()
	}
}
