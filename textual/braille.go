package textual

import (
	"github.com/zoobzio/mbase"
)

const (
	brailleBase = 0x2800
	brailleLast = brailleBase + 0xff
)

// Grade-1 dot patterns, bit n set for dot n+1. '(' and ')' share a cell.
var brailleCells = map[byte]byte{
	'a': 0x01, 'b': 0x03, 'c': 0x09, 'd': 0x19, 'e': 0x11, 'f': 0x0b, 'g': 0x1b,
	'h': 0x13, 'i': 0x0a, 'j': 0x1a, 'k': 0x05, 'l': 0x07, 'm': 0x0d, 'n': 0x1d,
	'o': 0x15, 'p': 0x0f, 'q': 0x1f, 'r': 0x17, 's': 0x0e, 't': 0x1e, 'u': 0x25,
	'v': 0x27, 'w': 0x3a, 'x': 0x2d, 'y': 0x3d, 'z': 0x35,
	' ': 0x00, ',': 0x02, ';': 0x06, ':': 0x12, '.': 0x2c, '!': 0x16, '?': 0x26,
	'\'': 0x04, '-': 0x24, '(': 0x36, ')': 0x36,
}

var brailleChars = func() map[byte]byte {
	m := make(map[byte]byte, len(brailleCells))
	for ch, cell := range brailleCells {
		if ch != ')' {
			m[cell] = ch
		}
	}
	return m
}()

// BrailleCodec maps text onto Unicode Braille patterns, U+2800 to U+28FF.
type BrailleCodec struct{}

// Braille returns the Braille codec.
func Braille() *BrailleCodec { return &BrailleCodec{} }

// Meta returns the codec's descriptor.
func (*BrailleCodec) Meta() mbase.Metadata {
	return mbase.Metadata{
		Name:        "braille",
		Aliases:     []string{"braille-ascii"},
		Alphabet:    "⠀-⣿",
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseInsensitive,
		Description: "Braille Unicode patterns (U+2800-U+28FF)",
	}
}

// Encode folds letters to lower case; characters without a cell fail.
func (*BrailleCodec) Encode(data []byte) (string, error) {
	out := make([]rune, 0, len(data))
	for _, b := range data {
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		cell, ok := brailleCells[b]
		if !ok {
			return "", mbase.NewInputErrorf("character %q not supported in Braille", b)
		}
		out = append(out, rune(brailleBase+int(cell)))
	}
	return string(out), nil
}

// Decode maps cells back to text. Lenient drops ASCII whitespace; the
// blank cell U+2800 is the space.
func (*BrailleCodec) Decode(text string, mode mbase.Mode) ([]byte, error) {
	text = mbase.Clean(text, mode)
	out := make([]byte, 0, len(text)/3)
	pos := 0
	for _, r := range text {
		if r < brailleBase || r > brailleLast {
			return nil, mbase.NewCharacterError(r, pos)
		}
		ch, ok := brailleChars[byte(r-brailleBase)]
		if !ok {
			return nil, mbase.NewInputErrorf("unknown Braille pattern: U+%04X", r)
		}
		out = append(out, ch)
		pos++
	}
	return out, nil
}

func isBraille(r rune) bool { return r >= brailleBase && r <= brailleLast }

// DetectScore rates text by its share of Braille patterns.
func (*BrailleCodec) DetectScore(text string) mbase.Candidate {
	if text == "" {
		return mbase.EmptyCandidate("braille")
	}
	c := mbase.NewCandidate("braille")
	ratio := mbase.RatioFunc(text, isBraille)
	switch {
	case ratio > 0.95:
		c.Score(mbase.ConfidenceAlphabet, "high braille char ratio")
	case ratio > 0.7:
		c.Score(mbase.ConfidencePartial, "partial braille chars")
	}
	return c
}
