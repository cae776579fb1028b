package textutil

import "golang.org/x/text/unicode/norm"

// NFC returns the line sequence with every line normalized to Unicode NFC.
//
// Fixture files written by different editors can disagree on composed vs
// decomposed forms for the same visible text. Selecting NFC normalization
// (manifest key "unicode: nfc") makes the comparison canonical-equivalent
// instead of byte-equal.
func NFC(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = norm.NFC.String(l)
	}
	return out
}
