package textual

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/zoobzio/mbase"
)

// A1Z26Codec writes letters as their alphabet position, A=1 through Z=26,
// with 0 for a space, joined by '-'.
type A1Z26Codec struct{}

// A1Z26 returns the letter-number codec.
func A1Z26() *A1Z26Codec { return &A1Z26Codec{} }

// Meta returns the codec's descriptor.
func (*A1Z26Codec) Meta() mbase.Metadata {
	return mbase.Metadata{
		Name:        "a1z26",
		Aliases:     []string{"letternum"},
		Alphabet:    "0123456789-",
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseInsensitive,
		Description: "Letter position encoding (A=1, B=2, ..., Z=26)",
	}
}

// Encode folds letters to upper case and drops anything that is neither
// a letter nor a space. Input with nothing encodable is rejected.
func (*A1Z26Codec) Encode(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	nums := make([]string, 0, len(data))
	for _, b := range data {
		switch {
		case b >= 'a' && b <= 'z':
			nums = append(nums, strconv.Itoa(int(b-'a'+1)))
		case b >= 'A' && b <= 'Z':
			nums = append(nums, strconv.Itoa(int(b-'A'+1)))
		case b == ' ':
			nums = append(nums, "0")
		}
	}
	if len(nums) == 0 {
		return "", mbase.NewInputError("no encodable letters found")
	}
	return strings.Join(nums, "-"), nil
}

// Decode reads dash-separated numbers. Lenient drops whitespace and
// tolerates empty segments.
func (*A1Z26Codec) Decode(text string, mode mbase.Mode) ([]byte, error) {
	text = mbase.Clean(text, mode)
	out := make([]byte, 0, len(text)/2)
	pos := 0
	for i, part := range strings.Split(text, "-") {
		start := pos
		pos += len(part) + 1
		if part == "" {
			if mode == mbase.ModeLenient || text == "" {
				continue
			}
			return nil, mbase.NewInputErrorf("empty number at segment %d", i)
		}
		for j, r := range part {
			if !isDigit(r) {
				return nil, mbase.NewCharacterError(r, utf8.RuneCountInString(text[:start+j]))
			}
		}
		n, err := strconv.Atoi(part)
		if err != nil || n > 26 {
			return nil, mbase.NewInputErrorf("number out of range (0-26): %s", part)
		}
		if n == 0 {
			out = append(out, ' ')
		} else {
			out = append(out, byte('A'+n-1))
		}
	}
	return out, nil
}

// DetectScore rates dash-separated numbers in 0..26.
func (*A1Z26Codec) DetectScore(text string) mbase.Candidate {
	if text == "" {
		return mbase.EmptyCandidate("a1z26")
	}
	c := mbase.NewCandidate("a1z26")
	if !strings.Contains(text, "-") || !strings.ContainsAny(text, "0123456789") {
		return c
	}
	parts := strings.Split(text, "-")
	valid := 0
	for _, p := range parts {
		if len(p) > 0 && len(p) <= 2 && strings.Trim(p, "0123456789") == "" {
			if n, _ := strconv.Atoi(p); n <= 26 {
				valid++
			}
		}
	}
	switch {
	case valid == len(parts):
		c.Score(mbase.ConfidenceAlphabet, fmt.Sprintf("all %d numbers in range 0-26", len(parts)))
	case valid > len(parts)/2:
		c.Score(0.4, fmt.Sprintf("%d/%d numbers valid", valid, len(parts)))
	}
	return c
}
