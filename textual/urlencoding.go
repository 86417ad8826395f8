package textual

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/zoobzio/mbase"
)

func urlUnreserved(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') ||
		b == '-' || b == '_' || b == '.' || b == '~'
}

// URLCodec is RFC 3986 percent-encoding: the unreserved set passes
// through, every other byte becomes %XX.
type URLCodec struct{}

// URLEncoding returns the percent-encoding codec.
func URLEncoding() *URLCodec { return &URLCodec{} }

// Meta returns the codec's descriptor.
func (*URLCodec) Meta() mbase.Metadata {
	return mbase.Metadata{
		Name:        "urlencoding",
		Aliases:     []string{"url", "percent", "percentencoding"},
		Alphabet:    "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_.~%",
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseInsensitive,
		Description: "URL percent-encoding (RFC 3986)",
	}
}

// Encode escapes everything outside the unreserved set with upper-case hex.
func (*URLCodec) Encode(data []byte) (string, error) {
	var b strings.Builder
	b.Grow(len(data) * 3)
	for _, c := range data {
		if urlUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0f])
	}
	return b.String(), nil
}

// Decode resolves %XX escapes in either hex case. Other ASCII passes
// through; non-ASCII is rejected. Lenient drops whitespace first.
func (*URLCodec) Decode(text string, mode mbase.Mode) ([]byte, error) {
	text = mbase.Clean(text, mode)
	out := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c >= utf8.RuneSelf {
			r, _ := utf8.DecodeRuneInString(text[i:])
			return nil, mbase.NewCharacterError(r, utf8.RuneCountInString(text[:i]))
		}
		if c != '%' {
			out = append(out, c)
			continue
		}
		if i+2 >= len(text) {
			return nil, mbase.NewInputError("incomplete percent sequence")
		}
		hi, lo := hexValue(text[i+1]), hexValue(text[i+2])
		if hi < 0 || lo < 0 {
			return nil, mbase.NewInputErrorf("invalid hex in percent sequence: %s", text[i+1:i+3])
		}
		out = append(out, byte(hi<<4|lo))
		i += 2
	}
	return out, nil
}

// DetectScore favours text whose percent signs all start valid escapes.
func (*URLCodec) DetectScore(text string) mbase.Candidate {
	if text == "" {
		return mbase.EmptyCandidate("urlencoding")
	}
	c := mbase.NewCandidate("urlencoding")
	percents := strings.Count(text, "%")
	if percents == 0 {
		safe := mbase.RatioFunc(text, func(r rune) bool {
			return r < utf8.RuneSelf && (urlUnreserved(byte(r)) || strings.ContainsRune("/?=&", r))
		})
		if safe > 0.9 {
			c.Score(mbase.ConfidenceWeak, "contains URL-safe characters but no encoding")
			c.Warn("could be plain text")
		}
		return c
	}
	valid := 0
	for _, seq := range strings.Split(text, "%")[1:] {
		if len(seq) >= 2 && hexValue(seq[0]) >= 0 && hexValue(seq[1]) >= 0 {
			valid++
		}
	}
	switch {
	case valid == percents:
		c.Score(mbase.ConfidenceAlphabet, fmt.Sprintf("found %d valid percent-encoded sequences", percents))
	case valid > 0:
		c.Score(mbase.ConfidenceWeak, fmt.Sprintf("found %d valid sequences out of %d percent signs", valid, percents))
		c.Warn("some percent sequences appear invalid")
	}
	return c
}
