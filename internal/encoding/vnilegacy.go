package encoding

import "golang.org/x/text/unicode/norm"

// VNILegacyEncoder is a placeholder for the VNI-legacy font-based
// encoding. Unlike TCVN3 and CP1258, VNI-legacy isn't a fixed byte-value
// charset — it depends on which proprietary VNI font the host has
// installed, and no such font-remap table ships in any example in this
// codebase's dependency pack. The encoder passes UTF-8 NFC bytes through
// unchanged; a host that actually needs legacy VNI font bytes must supply
// its own remap table downstream (spec §11).
type VNILegacyEncoder struct{}

// Name returns "VNI-legacy".
func (VNILegacyEncoder) Name() string { return "VNI-legacy" }

// Encode passes runes through as NFC-normalized UTF-8.
func (VNILegacyEncoder) Encode(runes []rune) []byte {
	return norm.NFC.Bytes([]byte(string(runes)))
}
