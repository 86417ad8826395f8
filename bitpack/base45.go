package bitpack

import (
	"strings"

	"github.com/zoobzio/mbase"
)

// Base45Alphabet is the RFC 9285 symbol set. Space is a symbol.
const Base45Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

var base45Alphabet = mbase.NewAlphabet(Base45Alphabet)

// Base45Codec implements RFC 9285: each byte pair becomes three symbols,
// least significant first; a lone trailing byte becomes two.
type Base45Codec struct{}

// Base45 returns the RFC 9285 codec.
func Base45() *Base45Codec { return &Base45Codec{} }

// Meta returns the codec's descriptor.
func (*Base45Codec) Meta() mbase.Metadata {
	return mbase.Metadata{
		Name:        "base45",
		Aliases:     []string{"b45"},
		Alphabet:    Base45Alphabet,
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseUpper,
		Description: "Base45 (RFC 9285) QR-code friendly encoding",
	}
}

// Encode renders data in base45.
func (*Base45Codec) Encode(data []byte) (string, error) {
	var b strings.Builder
	b.Grow((len(data) + 1) / 2 * 3)
	for i := 0; i < len(data); i += 2 {
		if i+1 == len(data) {
			n := int(data[i])
			b.WriteRune(base45Alphabet.At(n % 45))
			b.WriteRune(base45Alphabet.At(n / 45))
			break
		}
		n := int(data[i])<<8 | int(data[i+1])
		b.WriteRune(base45Alphabet.At(n % 45))
		b.WriteRune(base45Alphabet.At(n / 45 % 45))
		b.WriteRune(base45Alphabet.At(n / (45 * 45)))
	}
	return b.String(), nil
}

// Decode parses base45. Lenient drops whitespace other than the space
// symbol and folds to upper case.
func (*Base45Codec) Decode(text string, mode mbase.Mode) ([]byte, error) {
	vals, err := base45Values(text, mode)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(vals)/3*2+1)
	for i := 0; i < len(vals); i += 3 {
		if i+2 >= len(vals) {
			n := vals[i] + vals[i+1]*45
			if n > 0xff {
				return nil, mbase.NewInputError("base45 value overflow")
			}
			out = append(out, byte(n))
			break
		}
		n := vals[i] + vals[i+1]*45 + vals[i+2]*45*45
		if n > 0xffff {
			return nil, mbase.NewInputError("base45 value overflow")
		}
		out = append(out, byte(n>>8), byte(n))
	}
	return out, nil
}

// Validate checks symbols and length without decoding.
func (*Base45Codec) Validate(text string, mode mbase.Mode) error {
	_, err := base45Values(text, mode)
	return err
}

func base45Values(text string, mode mbase.Mode) ([]int, error) {
	if mode == mbase.ModeLenient {
		text = strings.Map(func(r rune) rune {
			if r != ' ' && mbase.IsASCIISpace(r) {
				return -1
			}
			return r
		}, mbase.FoldCase(text, mbase.CaseUpper))
	}
	vals := make([]int, 0, len(text))
	pos := 0
	for _, r := range text {
		v := base45Alphabet.Index(r)
		if v < 0 {
			return nil, mbase.NewCharacterError(r, pos)
		}
		vals = append(vals, v)
		pos++
	}
	if len(vals)%3 == 1 {
		return nil, mbase.NewInputErrorf("base45 length %d invalid (cannot be 1 mod 3)", len(vals))
	}
	return vals, nil
}

// DetectScore rates text as base45.
func (*Base45Codec) DetectScore(text string) mbase.Candidate {
	if text == "" {
		return mbase.EmptyCandidate("base45")
	}
	c := mbase.NewCandidate("base45")
	ratio := mbase.RatioFunc(text, func(r rune) bool {
		return base45Alphabet.Contains(r) || (r >= 'a' && r <= 'z')
	})
	if ratio == 1 {
		c.Score(mbase.ConfidencePartial, "all characters in base45 alphabet")
		if len([]rune(text))%3 != 1 {
			c.Score(mbase.ConfidencePartial, "valid length")
		}
		if strings.ContainsAny(text, " %$") {
			c.Score(mbase.ConfidenceAlphabet, "contains base45-specific characters")
		}
	}
	return c
}
