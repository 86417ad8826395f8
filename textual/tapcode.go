package textual

import (
	"fmt"
	"strings"

	"github.com/zoobzio/mbase"
)

const tapWordSep = "/"

// TapCodec is the prisoners' tap code: a 5×5 Polybius square over A-Z
// without K, written as row-column digit pairs. K shares C's cell, so K
// decodes as C.
type TapCodec struct{}

// TapCode returns the tap code codec.
func TapCode() *TapCodec { return &TapCodec{} }

// Meta returns the codec's descriptor.
func (*TapCodec) Meta() mbase.Metadata {
	return mbase.Metadata{
		Name:        "tapcode",
		Aliases:     []string{"tap", "knock"},
		Alphabet:    "12345 /",
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseInsensitive,
		Description: "Tap code (Polybius square as digit pairs)",
	}
}

func tapCell(b byte) (int, bool) {
	if b >= 'a' && b <= 'z' {
		b -= 'a' - 'A'
	}
	switch {
	case b == 'K':
		return 2, true
	case b >= 'A' && b < 'K':
		return int(b - 'A'), true
	case b > 'K' && b <= 'Z':
		return int(b-'A') - 1, true
	}
	return 0, false
}

// Encode writes one pair per letter and "/" between words. Other
// characters are skipped; input with no letters fails.
func (*TapCodec) Encode(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	tokens := make([]string, 0, len(data))
	letters := 0
	for _, b := range data {
		if b == ' ' {
			if len(tokens) > 0 && tokens[len(tokens)-1] != tapWordSep {
				tokens = append(tokens, tapWordSep)
			}
			continue
		}
		cell, ok := tapCell(b)
		if !ok {
			continue
		}
		tokens = append(tokens, fmt.Sprintf("%d%d", cell/5+1, cell%5+1))
		letters++
	}
	if letters == 0 {
		return "", mbase.NewInputError("no encodable characters found")
	}
	if tokens[len(tokens)-1] == tapWordSep {
		tokens = tokens[:len(tokens)-1]
	}
	return strings.Join(tokens, " "), nil
}

// Decode reads whitespace-separated pairs, each digit in 1..5. Both modes
// accept the same input.
func (*TapCodec) Decode(text string, _ mbase.Mode) ([]byte, error) {
	out := make([]byte, 0, len(text)/3)
	for _, tok := range strings.Fields(text) {
		if tok == tapWordSep {
			out = append(out, ' ')
			continue
		}
		if len(tok) != 2 || tok[0] < '1' || tok[0] > '5' || tok[1] < '1' || tok[1] > '5' {
			return nil, mbase.NewInputErrorf("invalid tap code pair: %s", tok)
		}
		cell := int(tok[0]-'1')*5 + int(tok[1]-'1')
		switch {
		case cell < 10:
			out = append(out, byte('A'+cell))
		default:
			out = append(out, byte('A'+cell+1))
		}
	}
	return out, nil
}

// DetectScore rates text made of digit pairs in 11..55.
func (*TapCodec) DetectScore(text string) mbase.Candidate {
	if text == "" {
		return mbase.EmptyCandidate("tapcode")
	}
	c := mbase.NewCandidate("tapcode")
	var pairs []string
	for _, tok := range strings.Fields(text) {
		if tok != tapWordSep {
			pairs = append(pairs, tok)
		}
	}
	valid := 0
	for _, p := range pairs {
		if len(p) == 2 && strings.Trim(p, "12345") == "" {
			valid++
		}
	}
	switch {
	case valid > 0 && valid == len(pairs):
		c.Score(0.8, fmt.Sprintf("all %d tokens are valid tap code pairs (11-55)", valid))
	case valid > len(pairs)/2:
		c.Score(0.4, fmt.Sprintf("%d/%d tokens valid", valid, len(pairs)))
	}
	return c
}
