// Package textual implements letter-substitution ciphers and telegraphic
// text encodings. These codecs operate on text rather than arbitrary
// bytes, so most of them restrict their encoding domain.
package textual

import (
	"github.com/zoobzio/mbase"
)

const asciiLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// SubstitutionCodec applies a fixed byte-to-byte table. Every table here
// is an involution, so Encode and Decode are the same operation. Bytes
// outside the table pass through unchanged.
type SubstitutionCodec struct {
	meta      mbase.Metadata
	table     [256]byte
	class     func(rune) bool
	threshold float64
	score     float64
}

func identity() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = byte(i)
	}
	return t
}

func rotate(t *[256]byte, first, last byte, n int) {
	span := int(last-first) + 1
	for c := int(first); c <= int(last); c++ {
		t[c] = byte(int(first) + (c-int(first)+n)%span)
	}
}

func mirror(t *[256]byte, first, last byte) {
	for c := first; c <= last; c++ {
		t[c] = last - (c - first)
	}
}

func isLetter(r rune) bool { return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func newSubstitution(meta mbase.Metadata, table [256]byte, class func(rune) bool, threshold, score float64) *SubstitutionCodec {
	return &SubstitutionCodec{meta: meta, table: table, class: class, threshold: threshold, score: score}
}

// Atbash mirrors the alphabet: A↔Z, a↔z.
func Atbash() *SubstitutionCodec {
	t := identity()
	mirror(&t, 'A', 'Z')
	mirror(&t, 'a', 'z')
	return newSubstitution(mbase.Metadata{
		Name:        "atbash",
		Alphabet:    asciiLetters,
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseInsensitive,
		Description: "Atbash cipher (A↔Z, B↔Y, etc.)",
	}, t, isLetter, 0.5, 0.15)
}

// Rot13 rotates letters by 13.
func Rot13() *SubstitutionCodec {
	t := identity()
	rotate(&t, 'A', 'Z', 13)
	rotate(&t, 'a', 'z', 13)
	return newSubstitution(mbase.Metadata{
		Name:        "rot13",
		Aliases:     []string{"rot-13"},
		Alphabet:    asciiLetters,
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseInsensitive,
		Description: "ROT13 letter substitution (A-Z rotated by 13)",
	}, t, isLetter, 0.5, 0.2)
}

// Rot47 rotates the printable range '!'..'~' by 47.
func Rot47() *SubstitutionCodec {
	t := identity()
	rotate(&t, '!', '~', 47)
	alphabet := make([]byte, 0, 94)
	for c := byte('!'); c <= '~'; c++ {
		alphabet = append(alphabet, c)
	}
	return newSubstitution(mbase.Metadata{
		Name:        "rot47",
		Aliases:     []string{"rot-47"},
		Alphabet:    string(alphabet),
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseInsensitive,
		Description: "ROT47 extended ASCII substitution (!-~ rotated by 47)",
	}, t, func(r rune) bool { return r >= '!' && r <= '~' }, 0.8, 0.2)
}

// Rot18 is ROT13 on letters combined with ROT5 on digits.
func Rot18() *SubstitutionCodec {
	t := identity()
	rotate(&t, 'A', 'Z', 13)
	rotate(&t, 'a', 'z', 13)
	rotate(&t, '0', '9', 5)
	return newSubstitution(mbase.Metadata{
		Name:        "rot18",
		Aliases:     []string{"rot-18"},
		Alphabet:    asciiLetters + "0123456789",
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseInsensitive,
		Description: "ROT13 for letters + ROT5 for digits",
	}, t, func(r rune) bool { return isLetter(r) || isDigit(r) }, 0.5, 0.2)
}

// Meta returns the codec's descriptor.
func (s *SubstitutionCodec) Meta() mbase.Metadata { return s.meta }

func (s *SubstitutionCodec) apply(in []byte) []byte {
	out := make([]byte, len(in))
	for i, b := range in {
		out[i] = s.table[b]
	}
	return out
}

// Encode substitutes every byte through the table.
func (s *SubstitutionCodec) Encode(data []byte) (string, error) {
	return string(s.apply(data)), nil
}

// Decode substitutes every byte through the table. Mode has no effect.
func (s *SubstitutionCodec) Decode(text string, _ mbase.Mode) ([]byte, error) {
	return s.apply([]byte(text)), nil
}

// DetectScore gives a low, ambiguous score to text dominated by the
// characters the cipher touches.
func (s *SubstitutionCodec) DetectScore(text string) mbase.Candidate {
	if text == "" {
		return mbase.EmptyCandidate(s.meta.Name)
	}
	c := mbase.NewCandidate(s.meta.Name)
	if mbase.RatioFunc(text, s.class) > s.threshold {
		c.Score(s.score, "contains characters the cipher substitutes")
		c.Warn(s.meta.Name + " is ambiguous without context")
	}
	return c
}
