// Package encoding adapts the engine's Unicode output to the legacy
// single-byte Vietnamese encodings still found on older hosts (spec §6).
// The core engine itself only ever produces Unicode runes; encoding
// happens at the host boundary, never inside internal/engine.
package encoding

// Encoder converts a rendered Unicode rune sequence into the bytes a
// particular host encoding expects.
type Encoder interface {
	// Name identifies the encoding ("UTF-8", "TCVN3", "VNI-legacy", "CP1258").
	Name() string

	// Encode converts runes to bytes in this encoding. Unmappable runes are
	// replaced per the encoder's own fallback rule; Encode never errors,
	// matching the core's total-contract philosophy (spec §7).
	Encode(runes []rune) []byte
}

// ByName resolves an encoder by its configured name, defaulting to UTF-8
// for unknown names.
func ByName(name string) Encoder {
	switch name {
	case "TCVN3":
		return TCVN3Encoder{}
	case "VNI-legacy":
		return VNILegacyEncoder{}
	case "CP1258":
		return CP1258Encoder{}
	default:
		return UTF8Encoder{}
	}
}
