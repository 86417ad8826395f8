package bitpack

import (
	"fmt"
	"strings"

	"github.com/zoobzio/mbase"
)

const (
	proquintConsonants = "bdfghjklmnprstvz"
	proquintVowels     = "aiou"
	quintLen           = 5
)

// ProquintCodec renders each 16-bit word as a pronounceable CVCVC quint.
type ProquintCodec struct{}

// Proquint returns the proquint codec.
func Proquint() *ProquintCodec { return &ProquintCodec{} }

// Meta returns the codec's descriptor.
func (*ProquintCodec) Meta() mbase.Metadata {
	return mbase.Metadata{
		Name:        "proquint",
		Aliases:     []string{"pq", "proq"},
		Alphabet:    proquintConsonants + "-" + proquintVowels,
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseInsensitive,
		Description: "Proquint pronounceable identifiers (2 bytes per quint)",
	}
}

// Encode requires an even byte count and joins quints with '-'.
func (*ProquintCodec) Encode(data []byte) (string, error) {
	if len(data)%2 != 0 {
		return "", mbase.NewLengthError(mbase.MultipleOf(2), len(data))
	}
	quints := make([]string, 0, len(data)/2)
	for i := 0; i < len(data); i += 2 {
		quints = append(quints, encodeQuint(uint16(data[i])<<8|uint16(data[i+1])))
	}
	return strings.Join(quints, "-"), nil
}

func encodeQuint(v uint16) string {
	return string([]byte{
		proquintConsonants[v>>12&0x0f],
		proquintVowels[v>>10&0x03],
		proquintConsonants[v>>6&0x0f],
		proquintVowels[v>>4&0x03],
		proquintConsonants[v&0x0f],
	})
}

// Decode parses '-' separated quints. Lenient drops whitespace and empty
// segments.
func (*ProquintCodec) Decode(text string, mode mbase.Mode) ([]byte, error) {
	if mode == mbase.ModeLenient {
		text = mbase.StripSpace(text)
	}
	if text == "" {
		return []byte{}, nil
	}
	out := make([]byte, 0, (len(text)+1)/6*2)
	offset := 0
	for _, quint := range strings.Split(text, "-") {
		if quint == "" {
			if mode == mbase.ModeStrict {
				return nil, mbase.NewInputErrorf("empty quint at position %d", offset)
			}
			offset++
			continue
		}
		v, err := decodeQuint(quint, offset)
		if err != nil {
			return nil, err
		}
		out = append(out, byte(v>>8), byte(v))
		offset += len([]rune(quint)) + 1
	}
	return out, nil
}

func decodeQuint(quint string, offset int) (uint16, error) {
	runes := []rune(quint)
	if len(runes) != quintLen {
		return 0, mbase.NewLengthErrorMsg(mbase.Exact(quintLen), len(runes),
			fmt.Sprintf("quint %q must be %d characters", quint, quintLen))
	}
	var v uint16
	for i, r := range runes {
		set, bits := proquintConsonants, 4
		if i%2 == 1 {
			set, bits = proquintVowels, 2
		}
		d := strings.IndexRune(set, foldLower(r))
		if d < 0 {
			return 0, mbase.NewCharacterError(r, offset+i)
		}
		v = v<<bits | uint16(d)
	}
	return v, nil
}

func foldLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func isQuint(s string) bool {
	_, err := decodeQuint(s, 0)
	return err == nil
}

// DetectScore rates text as proquints.
func (*ProquintCodec) DetectScore(text string) mbase.Candidate {
	clean := mbase.StripSpace(text)
	if clean == "" {
		return mbase.EmptyCandidate("proquint")
	}
	c := mbase.NewCandidate("proquint")
	var parts []string
	for _, p := range strings.Split(clean, "-") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		c.Reasons = append(c.Reasons, "no quints found")
		return c
	}
	for _, p := range parts {
		if !isQuint(p) {
			c.Reasons = append(c.Reasons, "invalid quint pattern")
			return c
		}
	}

	reason := fmt.Sprintf("%d valid quints", len(parts))
	separated := strings.Contains(clean, "-")
	switch {
	case separated && len(parts) >= 2:
		c.Score(0.9, reason)
	case separated:
		c.Score(mbase.ConfidenceAlphabet, reason)
	default:
		c.Score(mbase.ConfidencePartial, reason)
	}
	c.Reasons = append(c.Reasons, "CVCVC pattern matches")
	return c
}
