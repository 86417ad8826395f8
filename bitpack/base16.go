package bitpack

import (
	"fmt"
	"strings"

	"github.com/zoobzio/mbase"
)

// Hex alphabets.
const (
	Base16LowerAlphabet = "0123456789abcdef"
	Base16UpperAlphabet = "0123456789ABCDEF"
)

// Hex is RFC 4648 base16 in one canonical case.
type Hex struct {
	meta     mbase.Metadata
	alphabet *mbase.Alphabet
}

// Base16Lower returns lower-case hex (multibase f).
func Base16Lower() *Hex {
	return &Hex{
		meta: mbase.Metadata{
			Name:        "base16lower",
			Aliases:     []string{"hex", "base16", "hexlower"},
			Alphabet:    Base16LowerAlphabet,
			Prefix:      'f',
			Padding:     mbase.PaddingNone,
			Case:        mbase.CaseLower,
			Description: "RFC4648 Base16 lowercase (hex)",
		},
		alphabet: mbase.NewAlphabet(Base16LowerAlphabet),
	}
}

// Base16Upper returns upper-case hex (multibase F).
func Base16Upper() *Hex {
	return &Hex{
		meta: mbase.Metadata{
			Name:        "base16upper",
			Aliases:     []string{"hexupper", "HEX"},
			Alphabet:    Base16UpperAlphabet,
			Prefix:      'F',
			Padding:     mbase.PaddingNone,
			Case:        mbase.CaseUpper,
			Description: "RFC4648 Base16 uppercase",
		},
		alphabet: mbase.NewAlphabet(Base16UpperAlphabet),
	}
}

// Meta returns the codec's descriptor.
func (h *Hex) Meta() mbase.Metadata { return h.meta }

// Encode renders two hex digits per byte.
func (h *Hex) Encode(data []byte) (string, error) {
	return Pack(data, 4, h.alphabet), nil
}

// Decode parses hex. Lenient strips whitespace and an optional 0x prefix,
// then folds case.
func (h *Hex) Decode(text string, mode mbase.Mode) ([]byte, error) {
	if mode == mbase.ModeLenient {
		text = mbase.StripSpace(text)
		if strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X") {
			text = text[2:]
		}
		text = mbase.FoldCase(text, h.meta.Case)
	}
	if err := h.alphabet.Check(text); err != nil {
		return nil, err
	}
	data, _, err := Unpack(text, 4, h.alphabet.Index)
	if err != nil {
		return nil, mbase.NewLengthError(mbase.MultipleOf(2), len(text))
	}
	return data, nil
}

// DetectScore rates text as hex.
func (h *Hex) DetectScore(text string) mbase.Candidate {
	if text == "" {
		return mbase.EmptyCandidate(h.meta.Name)
	}
	c := mbase.NewCandidate(h.meta.Name)
	if conf, ok := mbase.PrefixScore(text, h.meta.Prefix, h.alphabet); ok {
		c.Score(conf, fmt.Sprintf("multibase prefix '%c' detected", h.meta.Prefix))
	}

	ratio := mbase.RatioFunc(text, isHexDigit)
	switch {
	case ratio == 1:
		c.Score(mbase.ConfidenceAlphabet, "all characters are hex digits")
	case ratio >= 0.9:
		c.Score(mbase.ConfidenceWeak, "")
		c.Warn(fmt.Sprintf("%.1f%% non-hex characters", (1-ratio)*100))
	}
	if len(text)%2 != 0 && c.Confidence < mbase.ConfidenceMultibase {
		c.Set(c.Confidence*0.5, "")
		c.Warn("odd length")
	}
	return c
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// Binary is base2: eight digits per byte, most significant bit first.
type Binary struct{}

var binaryAlphabet = mbase.NewAlphabet("01")

// Base2 returns the binary codec (multibase 0).
func Base2() *Binary { return &Binary{} }

// Meta returns the codec's descriptor.
func (*Binary) Meta() mbase.Metadata {
	return mbase.Metadata{
		Name:        "base2",
		Aliases:     []string{"binary", "bin"},
		Alphabet:    "01",
		Prefix:      '0',
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseSensitive,
		Description: "Binary representation (base2)",
	}
}

// Encode renders eight binary digits per byte.
func (*Binary) Encode(data []byte) (string, error) {
	return Pack(data, 1, binaryAlphabet), nil
}

// Decode parses groups of eight binary digits.
func (*Binary) Decode(text string, mode mbase.Mode) ([]byte, error) {
	text = mbase.Clean(text, mode)
	if err := binaryAlphabet.Check(text); err != nil {
		return nil, err
	}
	if len(text)%8 != 0 {
		return nil, mbase.NewLengthError(mbase.MultipleOf(8), len(text))
	}
	data, _, err := Unpack(text, 1, binaryAlphabet.Index)
	return data, err
}

// DetectScore rates text as binary digits.
func (b *Binary) DetectScore(text string) mbase.Candidate {
	return digitScore("base2", text, binaryAlphabet, 8, "binary")
}

// Octal is base8: three octal digits (000 to 377) per byte.
type Octal struct{}

var octalAlphabet = mbase.NewAlphabet("01234567")

// Base8 returns the octal codec (multibase 7).
func Base8() *Octal { return &Octal{} }

// Meta returns the codec's descriptor.
func (*Octal) Meta() mbase.Metadata {
	return mbase.Metadata{
		Name:        "base8",
		Aliases:     []string{"octal", "oct"},
		Alphabet:    "01234567",
		Prefix:      '7',
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseSensitive,
		Description: "Octal representation (base8)",
	}
}

// Encode renders three octal digits per byte.
func (*Octal) Encode(data []byte) (string, error) {
	var b strings.Builder
	b.Grow(len(data) * 3)
	for _, c := range data {
		b.WriteByte('0' + c>>6)
		b.WriteByte('0' + c>>3&7)
		b.WriteByte('0' + c&7)
	}
	return b.String(), nil
}

// Decode parses three-digit octal groups. A group above 377 is invalid.
func (*Octal) Decode(text string, mode mbase.Mode) ([]byte, error) {
	text = mbase.Clean(text, mode)
	if err := octalAlphabet.Check(text); err != nil {
		return nil, err
	}
	if len(text)%3 != 0 {
		return nil, mbase.NewLengthError(mbase.MultipleOf(3), len(text))
	}
	out := make([]byte, 0, len(text)/3)
	for i := 0; i < len(text); i += 3 {
		v := int(text[i]-'0')<<6 | int(text[i+1]-'0')<<3 | int(text[i+2]-'0')
		if v > 0xff {
			return nil, mbase.NewInputErrorf("octal group %q exceeds 377", text[i:i+3])
		}
		out = append(out, byte(v))
	}
	return out, nil
}

// DetectScore rates text as octal digits.
func (*Octal) DetectScore(text string) mbase.Candidate {
	return digitScore("base8", text, octalAlphabet, 3, "octal")
}

func digitScore(name, text string, a *mbase.Alphabet, group int, label string) mbase.Candidate {
	if text == "" {
		return mbase.EmptyCandidate(name)
	}
	c := mbase.NewCandidate(name)
	ratio := a.Ratio(text)
	switch {
	case ratio == 1:
		c.Score(mbase.ConfidenceAlphabet, "all characters are "+label+" digits")
		if len(text)%group == 0 {
			if len(text) >= 2*group {
				c.Score(mbase.ConfidenceAlphabet, fmt.Sprintf("length is multiple of %d", group))
			}
		} else {
			c.Warn(fmt.Sprintf("length not multiple of %d", group))
		}
	case ratio > 0.9:
		c.Score(mbase.ConfidenceWeak, "")
		c.Warn(fmt.Sprintf("%.1f%% non-%s characters", (1-ratio)*100, label))
	}
	return c
}
