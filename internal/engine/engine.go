package engine

import "unicode"

// CompositionEngine is the single owned value that composes one syllable
// at a time. It holds no goroutines, no locks and no unbounded state: every
// collection it owns is capacity-bounded (spec §5).
type CompositionEngine struct {
	config   *EngineConfig
	method   InputMethod
	buf      *StructuralBuffer
	raw      *RawInputLog
	history  *WordHistory
	cache    *BackspaceCache
	rendered []rune // last Chars this engine told the host it had sent

	shortcuts ShortcutStore
}

// NewCompositionEngine builds an engine from config (nil uses defaults).
func NewCompositionEngine(config *EngineConfig) *CompositionEngine {
	if config == nil {
		config = DefaultConfig()
	}
	cfg := *config
	cfg.Normalize()

	return &CompositionEngine{
		config:    &cfg,
		method:    cfg.newInputMethod(),
		buf:       NewStructuralBuffer(),
		raw:       NewRawInputLog(),
		history:   NewWordHistory(cfg.MaxHistorySize),
		cache:     NewBackspaceCache(),
		shortcuts: NewMapShortcutStore(nil),
	}
}

// SetConfig swaps the active configuration and, if the input method name
// changed, the classifier. In-flight composition is left untouched.
func (e *CompositionEngine) SetConfig(config *EngineConfig) {
	if config == nil {
		return
	}
	cfg := *config
	cfg.Normalize()
	e.config = &cfg
	e.method = cfg.newInputMethod()
}

// Config returns the engine's active configuration.
func (e *CompositionEngine) Config() *EngineConfig { return e.config }

// SetShortcutStore installs a custom ShortcutStore.
func (e *CompositionEngine) SetShortcutStore(store ShortcutStore) {
	if store == nil {
		return
	}
	e.shortcuts = store
}

// OnKey is the engine's single entry point (spec §6): it classifies and
// applies one keystroke and returns the Diff the host must apply to its
// display buffer. OnKey never panics and never blocks.
func (e *CompositionEngine) OnKey(event KeyEvent) Diff {
	if event.Modifiers&ModControl != 0 || event.Modifiers&ModMod1 != 0 || event.Modifiers&ModMod4 != 0 {
		return Diff{}
	}
	if !e.config.Enabled {
		return Diff{}
	}

	switch event.KeySym {
	case KeyBackspace:
		return e.onBackspace()
	case KeyEscape:
		return e.onEscape()
	case KeyReturn, KeyTab:
		return e.onCommit(nil)
	case KeySpace:
		return e.onCommit([]rune{' '})
	}

	r, ok := keysymToRune(event.KeySym)
	if !ok {
		return Diff{}
	}
	caps := event.Modifiers&ModShift != 0 || event.Modifiers&ModLock != 0

	if !e.method.IsComposingKey(r) {
		return e.onCommit([]rune{applyCaps(r, caps)})
	}
	return e.onLetter(r, caps)
}

func (e *CompositionEngine) onLetter(r rune, caps bool) Diff {
	lower := unicode.ToLower(r)
	intent := e.method.Classify(lower, e.buf, e.config)

	before := e.rendered
	ApplyIntent(e.buf, intent, r, caps, e.config)
	e.raw.Push(RawEntry{Key: uint16(unicode.ToLower(r)), Caps: caps})

	after := RenderBuffer(e.buf)

	if state, ok := instantRestoreCheck(e.config, e.buf, e.raw); ok {
		after = state.raw
		e.restoreBufferTo(state.raw)
	}

	e.rendered = after
	return BuildDiff(before, after)
}

// restoreBufferTo replaces the structural buffer with literal chars
// matching raw, used by the restore paths (spec §4.7).
func (e *CompositionEngine) restoreBufferTo(raw []rune) {
	e.buf.Clear()
	for _, r := range raw {
		e.buf.Push(Char{Key: uint16(unicode.ToLower(r)), Caps: unicode.IsUpper(r)})
	}
}

func (e *CompositionEngine) onBackspace() Diff {
	before := e.rendered
	res := Backspace(e.buf, e.raw, e.history, e.cache)
	e.rendered = res.NewRendered
	if res.RevivedFromHistory {
		// The revived word is still on screen in front of the space; only
		// the space has to be deleted.
		return clampDiff(1, nil)
	}
	if e.buf.Len() == 0 && !res.RevivedFromHistory && res.NewRendered == nil {
		return clampDiff(1, nil)
	}
	return BuildDiff(before, res.NewRendered)
}

func (e *CompositionEngine) onEscape() Diff {
	before := e.rendered
	state, ok := escRestore(e.config, e.raw)
	if !ok {
		return Diff{}
	}
	e.restoreBufferTo(state.raw)
	e.rendered = state.raw
	e.history.Invalidate()
	return BuildDiff(before, state.raw)
}

// onCommit handles space/enter/tab/punctuation: it runs the on-space
// restore check, applies shortcut expansion, records the committed word
// in history, and clears composing state for the next word.
func (e *CompositionEngine) onCommit(trailing []rune) Diff {
	before := e.rendered
	after := append([]rune{}, e.rendered...)

	if state, ok := spaceRestoreCheck(e.config, e.buf, e.raw); ok {
		after = state.raw
		e.restoreBufferTo(state.raw)
	}

	if e.config.ShortcutsEnabled && e.shortcuts != nil {
		word := string(RenderBuffer(e.buf))
		if expansion, ok := e.shortcuts.Lookup(word); ok {
			afterExpansion := []rune(expansion)
			diff := BuildDiff(before, afterExpansion)
			e.commitWord()
			e.rendered = append(afterExpansion, trailing...)
			if len(trailing) > 0 {
				diff = clampDiff(int(diff.Backspace), append(append([]rune{}, diff.Chars...), trailing...))
			}
			return diff
		}
	}

	buffer := e.buf.Snapshot()
	raw := e.raw.Snapshot()

	diff := BuildDiff(before, append(append([]rune{}, after...), trailing...))
	e.commitWord()

	if len(buffer) > 0 {
		e.history.Commit(buffer, raw)
	} else {
		e.history.AddSpace()
	}
	if len(trailing) == 0 {
		e.history.Invalidate()
	}

	e.rendered = nil
	return diff
}

func (e *CompositionEngine) commitWord() {
	e.buf.Clear()
	e.raw.Clear()
}

func applyCaps(r rune, caps bool) rune {
	if caps {
		return unicode.ToUpper(r)
	}
	return unicode.ToLower(r)
}

// keysymToRune maps the printable-ASCII subset of X11 keysyms (which are
// code-point-identical to Latin-1 in that range) to a rune.
func keysymToRune(keysym uint32) (rune, bool) {
	if keysym >= 0x20 && keysym <= 0x7e {
		return rune(keysym), true
	}
	return 0, false
}
