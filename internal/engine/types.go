// Package engine provides the core input method engine for Vietnamese typing.
//
// The engine is a single-threaded, cooperative value type: one owner calls
// OnKey once per keystroke and applies the returned Diff before the next
// keystroke arrives. Nothing here blocks, allocates unboundedly, or retains
// a clock.
package engine

// KeyEvent represents a keyboard event from the host.
type KeyEvent struct {
	KeySym    uint32 // X11 keysym value
	Modifiers uint32 // Modifier state (Shift, Ctrl, Alt, etc.)
}

// Modifier flags for keyboard state.
const (
	ModNone    uint32 = 0
	ModShift   uint32 = 1 << 0
	ModLock    uint32 = 1 << 1 // Caps Lock
	ModControl uint32 = 1 << 2
	ModMod1    uint32 = 1 << 3 // Alt
	ModMod4    uint32 = 1 << 6 // Super/Windows key
)

// Common keysym values.
const (
	KeyBackspace uint32 = 0xff08
	KeyReturn    uint32 = 0xff0d
	KeyEscape    uint32 = 0xff1b
	KeySpace     uint32 = 0x0020
	KeyTab       uint32 = 0xff09
	KeyDelete    uint32 = 0xffff
)

// ToneMark represents one of the five marked tones (thanh); the level tone
// (ngang) has no mark and is represented as ToneNone.
type ToneMark int

const (
	ToneNone  ToneMark = iota // ngang (level, unmarked)
	ToneSac                   // sắc
	ToneHuyen                 // huyền
	ToneHoi                   // hỏi
	ToneNga                   // ngã
	ToneNang                  // nặng
)

// DiacriticMark is the vowel-shape modifier carried by tone_modifier in
// spec terms: CIRCUMFLEX (â/ê/ô) or HORN (ơ/ư, and breve ă on 'a').
type DiacriticMark int

const (
	DiacriticNone DiacriticMark = iota
	DiacriticCircumflex
	DiacriticHorn
)

// bufferCapacity is the hard ceiling on the structural buffer; it is never
// reached in practice since Vietnamese syllables top out near 7 characters.
const bufferCapacity = 255

// rawLogCapacity bounds the raw input log to one word's worth of keystrokes.
const rawLogCapacity = 64

// maxHistoryDepth bounds the word-history stack.
const maxHistoryDepth = 8

// vowelProjectionCapacity bounds the transient vowel-cluster projection.
const vowelProjectionCapacity = 8

// Char is the unit of the structural buffer.
type Char struct {
	Key       uint16        // original ASCII letter code
	Caps      bool          // whether the key was shifted/caps when first typed
	Diacritic DiacriticMark // meaningful only when the key is a vowel
	Mark      ToneMark      // at most one char per syllable carries Mark != ToneNone
	Stroke    bool          // meaningful only on key == 'd'
}

// IsVowel reports whether the char's key is one of the six bare vowel
// letters (a,e,i,o,u,y) — the only keys on which Diacritic is meaningful.
func (c Char) IsVowel() bool {
	return isVowelKey(rune(c.Key))
}

// RawEntry is one (key, caps) pair as originally typed, before transformation.
type RawEntry struct {
	Key  uint16
	Caps bool
}

// VowelRef is one entry of a vowel projection: a vowel char's buffer
// position, key and effective diacritic.
type VowelRef struct {
	Pos       int
	Key       uint16
	Diacritic DiacriticMark
}

// TransformResult reports what a transformation touched.
type TransformResult struct {
	ModifiedPositions []int
	Applied           bool
}

// Action mirrors the host-facing wire contract (spec §6).
type Action int

const (
	ActionNone Action = iota
	ActionSend
)

// Diff is the external output contract: delete Backspace rendered
// characters from the end of the current syllable, then insert Chars.
type Diff struct {
	Action    Action
	Backspace uint8
	Chars     []rune
}

const maxDiffChars = 16

// clampDiff saturates backspace/chars counts per spec §7 so that a diff
// can never over-delete or overflow the wire contract's fixed arrays.
func clampDiff(backspace int, chars []rune) Diff {
	if backspace < 0 {
		backspace = 0
	}
	if backspace > 255 {
		backspace = 255
	}
	if len(chars) > maxDiffChars {
		chars = chars[:maxDiffChars]
	}
	action := ActionNone
	if backspace > 0 || len(chars) > 0 {
		action = ActionSend
	}
	return Diff{Action: action, Backspace: uint8(backspace), Chars: chars}
}
