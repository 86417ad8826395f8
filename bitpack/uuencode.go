package bitpack

import (
	"fmt"
	"strings"

	"github.com/zoobzio/mbase"
)

// UUAlphabet is the traditional uuencode symbol range plus backtick.
const UUAlphabet = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`"

const uuLineBytes = 45

// UUCodec is traditional uuencode body encoding without begin/end lines.
type UUCodec struct{}

// UUEncode returns the uuencode codec.
func UUEncode() *UUCodec { return &UUCodec{} }

// Meta returns the codec's descriptor.
func (*UUCodec) Meta() mbase.Metadata {
	return mbase.Metadata{
		Name:        "uuencode",
		Aliases:     []string{"uu"},
		Alphabet:    UUAlphabet,
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseSensitive,
		Description: "Unix-to-Unix encoding (traditional)",
	}
}

func uuChar(v byte) byte {
	if v == 0 {
		return '`'
	}
	return v + 32
}

func uuValue(r rune) int {
	switch {
	case r == '`':
		return 0
	case r >= ' ' && r <= '_':
		return int(r - 32)
	}
	return -1
}

// Encode writes 45-byte lines, each led by its length symbol and ended by
// a newline.
func (*UUCodec) Encode(data []byte) (string, error) {
	var b strings.Builder
	b.Grow((len(data)+2)/3*4 + (len(data)/uuLineBytes+1)*2)
	for i := 0; i < len(data); i += uuLineBytes {
		line := data[i:min(i+uuLineBytes, len(data))]
		b.WriteByte(uuChar(byte(len(line))))
		for j := 0; j < len(line); j += 3 {
			var t [3]byte
			copy(t[:], line[j:])
			b.WriteByte(uuChar(t[0] >> 2))
			b.WriteByte(uuChar((t[0]&0x03)<<4 | t[1]>>4))
			b.WriteByte(uuChar((t[1]&0x0f)<<2 | t[2]>>6))
			b.WriteByte(uuChar(t[2] & 0x3f))
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// Decode parses uuencoded lines. Strict rejects an incomplete quad;
// Lenient trims trailing whitespace and drops a partial quad.
// Character positions are rune offsets into text.
func (*UUCodec) Decode(text string, mode mbase.Mode) ([]byte, error) {
	var out []byte
	lineStart := 0
	for n, raw := range strings.Split(text, "\n") {
		start := lineStart
		lineStart += len([]rune(raw)) + 1

		line := raw
		if mode == mbase.ModeLenient {
			line = strings.TrimRightFunc(line, mbase.IsASCIISpace)
		}
		runes := []rune(line)
		if len(runes) == 0 {
			continue
		}
		length := uuValue(runes[0])
		if length < 0 {
			return nil, mbase.NewCharacterError(runes[0], start)
		}
		if length == 0 {
			continue
		}

		body := runes[1:]
		decoded := make([]byte, 0, len(body)/4*3)
		for q := 0; q < len(body); q += 4 {
			if q+4 > len(body) {
				if mode == mbase.ModeStrict {
					return nil, mbase.NewInputErrorf("incomplete quad at line %d", n+1)
				}
				break
			}
			var v [4]byte
			for i := 0; i < 4; i++ {
				d := uuValue(body[q+i])
				if d < 0 {
					return nil, mbase.NewCharacterError(body[q+i], start+1+q+i)
				}
				v[i] = byte(d)
			}
			decoded = append(decoded, v[0]<<2|v[1]>>4, v[1]<<4|v[2]>>2, v[2]<<6|v[3])
		}
		if length > len(decoded) {
			if mode == mbase.ModeStrict {
				return nil, mbase.NewInputErrorf("line %d declares %d bytes but carries %d", n+1, length, len(decoded))
			}
			length = len(decoded)
		}
		out = append(out, decoded[:length]...)
	}
	if out == nil {
		out = []byte{}
	}
	return out, nil
}

// DetectScore rates text by the share of well-formed uuencode lines.
func (*UUCodec) DetectScore(text string) mbase.Candidate {
	if strings.TrimSpace(text) == "" {
		return mbase.EmptyCandidate("uuencode")
	}
	c := mbase.NewCandidate("uuencode")
	valid, total := 0, 0
	for _, line := range strings.Split(text, "\n") {
		runes := []rune(strings.TrimRightFunc(line, mbase.IsASCIISpace))
		if len(runes) == 0 {
			continue
		}
		total++
		n := uuValue(runes[0])
		if n < 0 || n > uuLineBytes || len(runes) < (n+2)/3*4+1 {
			continue
		}
		ok := true
		for _, r := range runes[1:] {
			if uuValue(r) < 0 {
				ok = false
				break
			}
		}
		if ok {
			valid++
		}
	}
	ratio := float64(valid) / float64(total)
	reason := fmt.Sprintf("%d/%d valid uuencode lines", valid, total)
	if ratio > 0.8 {
		c.Score(mbase.ConfidenceAlphabet, reason)
	} else {
		c.Score(ratio*mbase.ConfidencePartial, reason)
	}
	return c
}
