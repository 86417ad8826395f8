// Package stateful implements codecs whose output depends on state carried
// across symbols: the ITA2 shift register, the Bubble Babble rolling
// checksum, and the Punycode bias adaptation.
package stateful

import (
	"fmt"
	"strings"

	"github.com/zoobzio/mbase"
)

// ITA2 shift codes.
const (
	ltrsCode = 0x1f
	figsCode = 0x1b
	codeBits = 5
)

// Zero entries are unassigned or shift codes.
var (
	letters = [32]byte{
		0, 'E', '\n', 'A', ' ', 'S', 'I', 'U', '\r', 'D', 'R', 'J', 'N', 'F', 'C', 'K',
		'T', 'Z', 'L', 'W', 'H', 'Y', 'P', 'Q', 'O', 'B', 'G', 0, 'M', 'X', 'V', 0,
	}
	figures = [32]byte{
		0, '3', '\n', '-', ' ', '\'', '8', '7', '\r', '$', '4', '\a', ',', '!', ':', '(',
		'5', '"', ')', '2', '#', '6', '0', '1', '9', '?', '&', 0, '.', '/', ';', 0,
	}
	letterCodes = reverse(letters)
	figureCodes = reverse(figures)
)

func reverse(table [32]byte) map[byte]byte {
	m := make(map[byte]byte, len(table))
	for code, ch := range table {
		if ch != 0 {
			m[ch] = byte(code)
		}
	}
	return m
}

// BaudotCodec renders text as ITA2 codes, each written as five binary
// digits, with LTRS and FIGS shifts inserted as needed.
type BaudotCodec struct{}

// Baudot returns the ITA2 codec.
func Baudot() *BaudotCodec { return &BaudotCodec{} }

// Meta returns the codec's descriptor.
func (*BaudotCodec) Meta() mbase.Metadata {
	return mbase.Metadata{
		Name:        "baudot",
		Aliases:     []string{"ita2", "baudot-ita2"},
		Alphabet:    "01",
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseUpper,
		Description: "Baudot code (ITA2 5-bit telegraph encoding)",
	}
}

// Encode upper-cases letters and fails on anything ITA2 cannot carry.
// Characters present in both shifts never force a shift.
func (*BaudotCodec) Encode(data []byte) (string, error) {
	var b strings.Builder
	b.Grow(len(data) * codeBits * 2)
	inLetters := true
	for _, c := range data {
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		lc, isLetter := letterCodes[c]
		fc, isFigure := figureCodes[c]
		switch {
		case isLetter && (inLetters || !isFigure):
			if !inLetters {
				writeCode(&b, ltrsCode)
				inLetters = true
			}
			writeCode(&b, lc)
		case isFigure:
			if inLetters {
				writeCode(&b, figsCode)
				inLetters = false
			}
			writeCode(&b, fc)
		default:
			return "", mbase.NewInputErrorf("character %q not supported in Baudot", c)
		}
	}
	return b.String(), nil
}

func writeCode(b *strings.Builder, code byte) {
	fmt.Fprintf(b, "%05b", code)
}

// Decode reads 5-digit groups, tracking the shift state.
func (*BaudotCodec) Decode(text string, mode mbase.Mode) ([]byte, error) {
	codes, err := baudotCodes(mbase.Clean(text, mode))
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(codes))
	inLetters := true
	for i, code := range codes {
		switch code {
		case ltrsCode:
			inLetters = true
			continue
		case figsCode:
			inLetters = false
			continue
		}
		ch := figures[code]
		if inLetters {
			ch = letters[code]
		}
		if ch == 0 {
			return nil, mbase.NewInputErrorf("invalid Baudot code %05b at group %d", code, i)
		}
		out = append(out, ch)
	}
	return out, nil
}

func baudotCodes(text string) ([]byte, error) {
	pos := 0
	for _, r := range text {
		if r != '0' && r != '1' {
			return nil, mbase.NewCharacterError(r, pos)
		}
		pos++
	}
	if len(text)%codeBits != 0 {
		return nil, mbase.NewLengthError(mbase.MultipleOf(codeBits), len(text))
	}
	codes := make([]byte, 0, len(text)/codeBits)
	for i := 0; i < len(text); i += codeBits {
		var code byte
		for _, d := range text[i : i+codeBits] {
			code = code<<1 | byte(d-'0')
		}
		codes = append(codes, code)
	}
	return codes, nil
}

// DetectScore rates binary text grouped in fives.
func (*BaudotCodec) DetectScore(text string) mbase.Candidate {
	if text == "" {
		return mbase.EmptyCandidate("baudot")
	}
	c := mbase.NewCandidate("baudot")
	isBit := func(r rune) bool { return r == '0' || r == '1' }
	bits := strings.Map(func(r rune) rune {
		if isBit(r) {
			return r
		}
		return -1
	}, text)
	if bits == "" || len(bits)%codeBits != 0 {
		c.Reasons = append(c.Reasons, "empty or invalid length")
		return c
	}
	if mbase.RatioFunc(text, isBit) < 0.9 {
		c.Reasons = append(c.Reasons, "low binary ratio")
		return c
	}
	c.Score(mbase.ConfidencePartial, "valid baudot codes")
	return c
}
