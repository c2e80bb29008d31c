package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWordHistoryReviveOnBackspace(t *testing.T) {
	h := NewWordHistory(4)
	require.True(t, h.Empty())

	buf := []Char{{Key: 'a'}, {Key: 'b'}}
	raw := []RawEntry{{Key: 'a'}, {Key: 'b'}}
	h.Commit(buf, raw)
	require.False(t, h.Empty())

	gotBuf, gotRaw, deleteSpace, ok := h.ReviveOnBackspace()
	require.True(t, ok)
	require.True(t, deleteSpace)
	require.Equal(t, buf, gotBuf)
	require.Equal(t, raw, gotRaw)
	require.True(t, h.Empty())
}

func TestWordHistoryMultipleSpaces(t *testing.T) {
	h := NewWordHistory(4)
	h.Commit([]Char{{Key: 'x'}}, []RawEntry{{Key: 'x'}})
	h.AddSpace()

	_, _, deleteSpace, ok := h.ReviveOnBackspace()
	require.True(t, ok)
	require.True(t, deleteSpace)
	require.False(t, h.Empty(), "word should still be held after one of two spaces is consumed")

	buf, _, deleteSpace2, ok2 := h.ReviveOnBackspace()
	require.True(t, ok2)
	require.True(t, deleteSpace2)
	require.NotNil(t, buf)
	require.True(t, h.Empty())
}

func TestWordHistoryCapacityEviction(t *testing.T) {
	h := NewWordHistory(2)
	h.Commit([]Char{{Key: 'a'}}, []RawEntry{{Key: 'a'}})
	h.Commit([]Char{{Key: 'b'}}, []RawEntry{{Key: 'b'}})
	h.Commit([]Char{{Key: 'c'}}, []RawEntry{{Key: 'c'}})

	buf, _, _, ok := h.ReviveOnBackspace()
	require.True(t, ok)
	require.Equal(t, uint16('c'), buf[0].Key, "newest entry should be on top")

	buf, _, _, ok = h.ReviveOnBackspace()
	require.True(t, ok)
	require.Equal(t, uint16('b'), buf[0].Key)
	require.True(t, h.Empty(), "oldest entry should have been evicted")
}

func TestBackspacePopsStructuralBuffer(t *testing.T) {
	buf := NewStructuralBuffer()
	buf.Push(Char{Key: 'a'})
	buf.Push(Char{Key: 'n'})
	raw := NewRawInputLog()
	raw.Push(RawEntry{Key: 'a'})
	raw.Push(RawEntry{Key: 'n'})
	history := NewWordHistory(4)
	cache := NewBackspaceCache()

	res := Backspace(buf, raw, history, cache)
	require.Equal(t, []rune("a"), res.NewRendered)
	require.Equal(t, 1, buf.Len())
}

func TestBackspaceRevivesCommittedWord(t *testing.T) {
	buf := NewStructuralBuffer()
	raw := NewRawInputLog()
	history := NewWordHistory(4)
	cache := NewBackspaceCache()

	committed := []Char{{Key: 'h', Diacritic: DiacriticNone}, {Key: 'i'}}
	history.Commit(committed, []RawEntry{{Key: 'h'}, {Key: 'i'}})

	res := Backspace(buf, raw, history, cache)
	require.True(t, res.RevivedFromHistory)
	require.Equal(t, []rune("hi"), res.NewRendered)
	require.Equal(t, 2, buf.Len())
}

func TestBuildDiffCutsCommonPrefix(t *testing.T) {
	d := BuildDiff([]rune("via"), []rune("việt"))
	require.Equal(t, uint8(1), d.Backspace)
	require.Equal(t, []rune("ệt"), d.Chars)
}

func TestBuildDiffNoChange(t *testing.T) {
	d := BuildDiff([]rune("abc"), []rune("abc"))
	require.Equal(t, uint8(0), d.Backspace)
	require.Empty(t, d.Chars)
	require.Equal(t, ActionNone, d.Action)
}

func TestEscRestoreReconstructsRawASCII(t *testing.T) {
	e := NewCompositionEngine(DefaultConfig())
	got := typeLetters(t, e, "vieej")
	diff := e.OnKey(KeyEvent{KeySym: KeyEscape})
	require.True(t, diff.Backspace > 0 || len(diff.Chars) > 0)
	require.Equal(t, "vieej", applyDiffToString(t, got, diff))
}

func TestEngineOnKeyIgnoresControlModifier(t *testing.T) {
	e := NewCompositionEngine(DefaultConfig())
	diff := e.OnKey(KeyEvent{KeySym: uint32('c'), Modifiers: ModControl})
	require.Equal(t, Diff{}, diff)
}

func TestEngineOnKeyDisabledIsNoop(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	e := NewCompositionEngine(cfg)
	for _, r := range "as " {
		diff := e.OnKey(KeyEvent{KeySym: uint32(r)})
		require.Equal(t, Diff{}, diff, "every key must be a true no-op while disabled")
	}
}

func TestPlainInputMethodNeverTransforms(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputMethodName = "Plain"
	e := NewCompositionEngine(cfg)
	got := typeLetters(t, e, "vieetj")
	require.Equal(t, "vieetj", got, "Plain must insert every key literally")
}

func TestToneStrategyThreadedThroughEngine(t *testing.T) {
	traditional := DefaultConfig()
	traditional.ToneStrategy = ToneTraditional
	e := NewCompositionEngine(traditional)
	require.Equal(t, "hòa", typeLetters(t, e, "hoaf"))

	modern := DefaultConfig()
	modern.ToneStrategy = ToneModern
	e2 := NewCompositionEngine(modern)
	require.Equal(t, "hoà", typeLetters(t, e2, "hoaf"))
}

func TestStopCodaRestrictsToneToSacOrNang(t *testing.T) {
	e := NewCompositionEngine(DefaultConfig())
	require.Equal(t, "cắp", typeLetters(t, e, "cawps"), "sắc is permitted on a p-closed nucleus")

	e2 := NewCompositionEngine(DefaultConfig())
	require.Equal(t, "căp", typeLetters(t, e2, "cawpf"), "huyền is declined on a p-closed nucleus, leaving the syllable unchanged")
}

func TestReverseHornAfterToneRepositions(t *testing.T) {
	// Tone typed before the horn-forming key closes the syllable: the mark
	// must follow the diacritic to its new home rather than being refused.
	e := NewCompositionEngine(DefaultConfig())
	got := typeLetters(t, e, "muonsw")
	require.Equal(t, "mướn", got)
}
