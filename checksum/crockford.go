package checksum

import (
	"strings"

	"github.com/zoobzio/mbase"
	"github.com/zoobzio/mbase/bitpack"
)

// CrockfordAlphabet omits I, L, O and U.
const CrockfordAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

var crockfordAlphabet = mbase.NewAlphabet(CrockfordAlphabet)

// CrockfordCodec is Crockford's base32: MSB-first 5-bit packing over an
// alphabet chosen to survive transcription.
type CrockfordCodec struct{}

// Crockford32 returns the Crockford base32 codec.
func Crockford32() *CrockfordCodec { return &CrockfordCodec{} }

// Meta returns the codec's descriptor.
func (*CrockfordCodec) Meta() mbase.Metadata {
	return mbase.Metadata{
		Name:        "crockford32",
		Aliases:     []string{"crockford", "cf32"},
		Alphabet:    CrockfordAlphabet,
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseUpper,
		Description: "Crockford Base32 (human-friendly, excludes I L O U)",
	}
}

// Encode renders data in upper-case Crockford symbols.
func (*CrockfordCodec) Encode(data []byte) (string, error) {
	return bitpack.Pack(data, 5, crockfordAlphabet), nil
}

// lenientIndex folds case and maps the confusable letters onto digits.
func lenientIndex(r rune) int {
	switch r {
	case 'O', 'o':
		return 0
	case 'I', 'i', 'L', 'l':
		return 1
	}
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	return crockfordAlphabet.Index(r)
}

// Decode parses Crockford base32. Strict requires canonical upper-case
// symbols and zero trailing bits. Lenient drops whitespace and hyphens,
// folds case, reads O as 0 and I or L as 1.
func (*CrockfordCodec) Decode(text string, mode mbase.Mode) ([]byte, error) {
	if mode == mbase.ModeLenient {
		text = strings.ReplaceAll(mbase.StripSpace(text), "-", "")
		data, _, err := bitpack.Unpack(text, 5, lenientIndex)
		return data, err
	}
	data, slack, err := bitpack.Unpack(text, 5, crockfordAlphabet.Index)
	if err != nil {
		return nil, err
	}
	if slack {
		return nil, mbase.NewPaddingError("non-zero trailing bits")
	}
	return data, nil
}

// DetectScore rates text as Crockford base32.
func (*CrockfordCodec) DetectScore(text string) mbase.Candidate {
	if text == "" {
		return mbase.EmptyCandidate("crockford32")
	}
	c := mbase.NewCandidate("crockford32")
	upper := mbase.FoldCase(text, mbase.CaseUpper)
	if crockfordAlphabet.Ratio(upper) == 1 {
		c.Score(mbase.ConfidencePartial, "all characters in crockford alphabet")
	}
	if strings.ContainsAny(upper, "ILO") {
		c.Warn("contains confusable characters (I/L/O)")
	}
	return c
}
