package textual

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/zoobzio/mbase"
)

// UnicodeCodec lists the code points of UTF-8 text as U+XXXX tokens.
type UnicodeCodec struct{}

// Unicode returns the code point codec.
func Unicode() *UnicodeCodec { return &UnicodeCodec{} }

// Meta returns the codec's descriptor.
func (*UnicodeCodec) Meta() mbase.Metadata {
	return mbase.Metadata{
		Name:        "unicode",
		Aliases:     []string{"codepoints", "u+"},
		Alphabet:    "U+0123456789ABCDEFabcdef ",
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseInsensitive,
		Description: "Unicode code points (U+XXXX format)",
	}
}

// Encode requires valid UTF-8.
func (*UnicodeCodec) Encode(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", mbase.NewInputError("invalid UTF-8")
	}
	var b strings.Builder
	for i, r := range string(data) {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "U+%04X", r)
	}
	return b.String(), nil
}

func trimCodePointPrefix(tok string, mode mbase.Mode) (string, bool) {
	if hex, ok := strings.CutPrefix(tok, "U+"); ok {
		return hex, true
	}
	if mode != mbase.ModeLenient {
		return tok, false
	}
	for _, p := range []string{"u+", `\u`, "0x", "0X"} {
		if hex, ok := strings.CutPrefix(tok, p); ok {
			return hex, true
		}
	}
	return tok, true
}

// Decode reads space-separated tokens. Strict requires the U+ form;
// Lenient also takes u+, \u, 0x and bare hex separated by any whitespace.
func (*UnicodeCodec) Decode(text string, mode mbase.Mode) ([]byte, error) {
	tokens := strings.Split(text, " ")
	if mode == mbase.ModeLenient {
		tokens = strings.Fields(text)
	}
	var b strings.Builder
	for _, tok := range tokens {
		if tok == "" {
			if text == "" {
				continue
			}
			return nil, mbase.NewInputError("empty code point token")
		}
		hex, ok := trimCodePointPrefix(tok, mode)
		if !ok {
			return nil, mbase.NewInputErrorf("code point %q must use U+ form", tok)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil || hex == "" {
			return nil, mbase.NewInputErrorf("invalid hex: %s", tok)
		}
		r := rune(v)
		if !utf8.ValidRune(r) {
			return nil, mbase.NewInputErrorf("invalid codepoint: U+%X", v)
		}
		b.WriteRune(r)
	}
	return []byte(b.String()), nil
}

// DetectScore rates text made of U+XXXX tokens.
func (*UnicodeCodec) DetectScore(text string) mbase.Candidate {
	if text == "" {
		return mbase.EmptyCandidate("unicode")
	}
	c := mbase.NewCandidate("unicode")
	if !strings.Contains(text, "U+") && !strings.Contains(text, "u+") {
		return c
	}
	parts := strings.Fields(text)
	valid := 0
	for _, p := range parts {
		hex, ok := strings.CutPrefix(p, "U+")
		if !ok {
			hex, ok = strings.CutPrefix(p, "u+")
		}
		if !ok || hex == "" {
			continue
		}
		if _, err := strconv.ParseUint(hex, 16, 32); err == nil {
			valid++
		}
	}
	switch {
	case valid > 0 && valid == len(parts):
		c.Score(0.9, fmt.Sprintf("all %d tokens are valid U+XXXX format", valid))
	case valid > 0:
		c.Score(0.6, fmt.Sprintf("%d/%d tokens valid", valid, len(parts)))
	}
	return c
}
