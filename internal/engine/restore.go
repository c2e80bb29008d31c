package engine

// RestoreReason records why a restore happened, useful for callers that
// want to log or test the decision path without duplicating engine logic.
type RestoreReason int

const (
	RestoreNone RestoreReason = iota
	RestoreInstant
	RestoreOnSpace
	RestoreEsc
)

// restoreState captures the raw ASCII reconstruction to substitute in
// place of the composed buffer when a restore fires.
type restoreState struct {
	reason RestoreReason
	raw    []rune
}

// instantRestoreCheck runs after every transforming key: if the syllable
// composed so far fails Vietnamese validation badly enough, and the raw
// reconstruction instead looks like English, the engine reverts to the
// untransformed keystrokes (spec §4.7).
func instantRestoreCheck(cfg *EngineConfig, buf *StructuralBuffer, raw *RawInputLog) (restoreState, bool) {
	if !cfg.Enabled || !cfg.SmartMode || !cfg.InstantRestore {
		return restoreState{}, false
	}
	result := ValidateWithTones(buf)
	if result.Confidence >= 50 {
		return restoreState{}, false
	}
	rawRunes := raw.Reconstruct()
	if DecideLanguage(rawRunes) != LanguageEnglish {
		return restoreState{}, false
	}
	return restoreState{reason: RestoreInstant, raw: rawRunes}, true
}

// spaceRestoreCheck runs when the user commits a word with space/enter: a
// word that was transformed but is actually English gets its raw form
// substituted instead of being committed as Vietnamese (spec §4.7).
func spaceRestoreCheck(cfg *EngineConfig, buf *StructuralBuffer, raw *RawInputLog) (restoreState, bool) {
	if !cfg.Enabled || !cfg.SmartMode {
		return restoreState{}, false
	}
	rawRunes := raw.Reconstruct()
	if len(rawRunes) == 0 {
		return restoreState{}, false
	}
	if DecideLanguage(rawRunes) != LanguageEnglish {
		return restoreState{}, false
	}
	rendered := RenderBuffer(buf)
	if string(rendered) == string(rawRunes) {
		return restoreState{}, false
	}
	return restoreState{reason: RestoreOnSpace, raw: rawRunes}, true
}

// escRestore unconditionally reconstructs the raw ASCII for the word being
// composed, for use when the user presses ESC (spec §4.7).
func escRestore(cfg *EngineConfig, raw *RawInputLog) (restoreState, bool) {
	if !cfg.Enabled || !cfg.EscRestore {
		return restoreState{}, false
	}
	rawRunes := raw.Reconstruct()
	if len(rawRunes) == 0 {
		return restoreState{}, false
	}
	return restoreState{reason: RestoreEsc, raw: rawRunes}, true
}
