package encoding

import "golang.org/x/text/unicode/norm"

// UTF8Encoder is the identity encoding, NFC-normalized so precomposed and
// decomposed forms never disagree on the wire.
type UTF8Encoder struct{}

// Name returns "UTF-8".
func (UTF8Encoder) Name() string { return "UTF-8" }

// Encode normalizes runes to NFC and returns their UTF-8 bytes.
func (UTF8Encoder) Encode(runes []rune) []byte {
	return norm.NFC.Bytes([]byte(string(runes)))
}
