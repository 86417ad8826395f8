package bitpack

import (
	"fmt"
	"strings"

	"github.com/zoobzio/mbase"
)

// Base91Alphabet is the basE91 symbol set.
const Base91Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!#$%&()*+,./:;<=>?@[]^_`{|}~\""

const base91Punct = "!#$%&()*+,./:;<=>?@[]^_`{|}~\""

var base91Alphabet = mbase.NewAlphabet(Base91Alphabet)

// Base91Codec is basE91: symbol pairs carry 13 or 14 bits, whichever
// keeps the pair value under 91*91.
type Base91Codec struct{}

// Base91 returns the basE91 codec.
func Base91() *Base91Codec { return &Base91Codec{} }

// Meta returns the codec's descriptor.
func (*Base91Codec) Meta() mbase.Metadata {
	return mbase.Metadata{
		Name:        "base91",
		Aliases:     []string{"b91"},
		Alphabet:    Base91Alphabet,
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseSensitive,
		Description: "basE91 encoding (highest density printable ASCII)",
	}
}

// Encode renders data in basE91.
func (*Base91Codec) Encode(data []byte) (string, error) {
	var b strings.Builder
	b.Grow(len(data)*16/13 + 2)
	var queue, nbits uint32
	for _, c := range data {
		queue |= uint32(c) << nbits
		nbits += 8
		if nbits > 13 {
			v := queue & 8191
			if v > 88 {
				queue >>= 13
				nbits -= 13
			} else {
				v = queue & 16383
				queue >>= 14
				nbits -= 14
			}
			b.WriteByte(Base91Alphabet[v%91])
			b.WriteByte(Base91Alphabet[v/91])
		}
	}
	if nbits > 0 {
		b.WriteByte(Base91Alphabet[queue%91])
		if nbits > 7 || queue > 90 {
			b.WriteByte(Base91Alphabet[queue/91])
		}
	}
	return b.String(), nil
}

// Decode parses basE91. A dangling final symbol contributes its low bits.
func (*Base91Codec) Decode(text string, mode mbase.Mode) ([]byte, error) {
	if mode == mbase.ModeLenient {
		text = stripUnicodeSpace(text)
	}
	out := make([]byte, 0, len(text)*14/16)
	var queue, nbits uint32
	v := -1
	pos := 0
	for _, r := range text {
		d := base91Alphabet.Index(r)
		if d < 0 {
			return nil, mbase.NewCharacterError(r, pos)
		}
		pos++
		if v < 0 {
			v = d
			continue
		}
		v += d * 91
		queue |= uint32(v) << nbits
		if v&8191 > 88 {
			nbits += 13
		} else {
			nbits += 14
		}
		for nbits > 7 {
			out = append(out, byte(queue))
			queue >>= 8
			nbits -= 8
		}
		v = -1
	}
	if v >= 0 {
		out = append(out, byte(queue|uint32(v)<<nbits))
	}
	return out, nil
}

// Validate checks the alphabet only; every symbol sequence decodes.
func (*Base91Codec) Validate(text string, mode mbase.Mode) error {
	if mode == mbase.ModeLenient {
		text = stripUnicodeSpace(text)
	}
	return base91Alphabet.Check(text)
}

// DetectScore rates text as basE91.
func (*Base91Codec) DetectScore(text string) mbase.Candidate {
	clean := stripUnicodeSpace(text)
	if clean == "" {
		return mbase.EmptyCandidate("base91")
	}
	c := mbase.NewCandidate("base91")
	invalid := 0
	for _, r := range clean {
		if !base91Alphabet.Contains(r) {
			invalid++
		}
	}
	if invalid > 0 {
		c.Reasons = append(c.Reasons, fmt.Sprintf("%d invalid characters", invalid))
		return c
	}
	if strings.ContainsAny(clean, base91Punct) {
		c.Score(mbase.ConfidenceAlphabet, "all characters valid")
		c.Reasons = append(c.Reasons, "contains base91-specific punctuation")
		return c
	}
	c.Score(mbase.ConfidencePartial, "all characters valid")
	return c
}
