package textual

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/zoobzio/mbase"
)

const (
	upperHex   = "0123456789ABCDEF"
	qpMaxLine  = 75 // characters before the soft-break '='
	qpSoftCRLF = "=\r\n"
)

func hexValue(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	}
	return -1
}

func qpLiteral(b byte) bool {
	return (b >= 33 && b <= 60) || (b >= 62 && b <= 126)
}

// QuotedPrintableCodec is RFC 2045 Quoted-Printable: printable ASCII
// passes through, everything else becomes =XX, and lines are soft-broken
// so none exceeds 76 characters.
type QuotedPrintableCodec struct{}

// QuotedPrintable returns the Quoted-Printable codec.
func QuotedPrintable() *QuotedPrintableCodec { return &QuotedPrintableCodec{} }

// Meta returns the codec's descriptor.
func (*QuotedPrintableCodec) Meta() mbase.Metadata {
	return mbase.Metadata{
		Name:        "quoted-printable",
		Aliases:     []string{"qp"},
		Alphabet:    "printable ASCII + =XX hex escapes",
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseSensitive,
		Description: "Quoted-Printable (RFC 2045) for email/MIME",
	}
}

// Encode escapes every byte outside 33..60 and 62..126, space included.
func (*QuotedPrintableCodec) Encode(data []byte) (string, error) {
	var b strings.Builder
	b.Grow(len(data) * 3)
	line := 0
	for _, c := range data {
		width := 3
		if qpLiteral(c) {
			width = 1
		}
		if line+width > qpMaxLine {
			b.WriteString(qpSoftCRLF)
			line = 0
		}
		if width == 1 {
			b.WriteByte(c)
		} else {
			b.WriteByte('=')
			b.WriteByte(upperHex[c>>4])
			b.WriteByte(upperHex[c&0x0f])
		}
		line += width
	}
	return b.String(), nil
}

// Decode resolves escapes and soft breaks. Hex digits are accepted in
// either case. Strict keeps bare line breaks and rejects a truncated
// escape; Lenient drops bare line breaks and keeps a truncated escape
// literally.
func (*QuotedPrintableCodec) Decode(text string, mode mbase.Mode) ([]byte, error) {
	out := make([]byte, 0, len(text))
	for i := 0; i < len(text); {
		c := text[i]
		switch {
		case c == '=':
			rest := text[i+1:]
			switch {
			case strings.HasPrefix(rest, "\r\n"):
				i += 3
			case strings.HasPrefix(rest, "\n"):
				i += 2
			case len(rest) >= 2:
				hi, lo := hexValue(rest[0]), hexValue(rest[1])
				if hi < 0 {
					return nil, qpCharError(text, i+1)
				}
				if lo < 0 {
					return nil, qpCharError(text, i+2)
				}
				out = append(out, byte(hi<<4|lo))
				i += 3
			case mode == mbase.ModeLenient:
				out = append(out, text[i:]...)
				i = len(text)
			default:
				return nil, mbase.NewInputError("incomplete escape sequence")
			}
		case c == '\r' || c == '\n':
			if mode == mbase.ModeStrict {
				out = append(out, c)
			}
			i++
		case c >= utf8.RuneSelf && mode == mbase.ModeStrict:
			return nil, qpCharError(text, i)
		default:
			out = append(out, c)
			i++
		}
	}
	return out, nil
}

func qpCharError(text string, at int) error {
	r, _ := utf8.DecodeRuneInString(text[at:])
	return mbase.NewCharacterError(r, utf8.RuneCountInString(text[:at]))
}

// DetectScore rates text by how many of its '=' signs begin a valid
// escape or soft break.
func (*QuotedPrintableCodec) DetectScore(text string) mbase.Candidate {
	if text == "" {
		return mbase.EmptyCandidate("quoted-printable")
	}
	c := mbase.NewCandidate("quoted-printable")
	equals := strings.Count(text, "=")
	if equals == 0 {
		c.Score(0.2, "no escape sequences found")
		return c
	}
	escapes, breaks := 0, 0
	for i := 0; i < len(text); i++ {
		if text[i] != '=' {
			continue
		}
		rest := text[i+1:]
		switch {
		case strings.HasPrefix(rest, "\r\n"):
			breaks++
			i += 2
		case strings.HasPrefix(rest, "\n"):
			breaks++
			i++
		case len(rest) >= 2 && hexValue(rest[0]) >= 0 && hexValue(rest[1]) >= 0:
			escapes++
			i += 2
		}
	}
	ratio := float64(escapes+breaks) / float64(equals)
	switch {
	case ratio > 0.8:
		c.Score(0.8, fmt.Sprintf("%d valid escape sequences", escapes))
	case ratio > 0.5:
		c.Score(mbase.ConfidenceAlphabet, fmt.Sprintf("%d valid escape sequences", escapes))
	default:
		c.Score(mbase.ConfidenceWeak, fmt.Sprintf("%d valid escape sequences", escapes))
	}
	c.Reasons = append(c.Reasons, fmt.Sprintf("%d soft line breaks", breaks))
	return c
}
