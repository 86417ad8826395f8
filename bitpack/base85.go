package bitpack

import (
	"fmt"
	"strings"

	"github.com/zoobzio/mbase"
)

// Base85 alphabets.
const (
	Ascii85Alphabet = "!\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstu"
	Z85Alphabet     = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ.-:+=^!/*?&<>()[]{}@%$#"
	RFC1924Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz!#$%&()*+-;<=>?@^_`{|}~"
)

var (
	ascii85Alphabet = mbase.NewAlphabet(Ascii85Alphabet)
	z85Alphabet     = mbase.NewAlphabet(Z85Alphabet)
	rfc1924Alphabet = mbase.NewAlphabet(RFC1924Alphabet)
)

// putGroup writes the first n of the five base85 digits of v.
func putGroup(b *strings.Builder, v uint32, n int, a *mbase.Alphabet) {
	var digits [5]rune
	for i := 4; i >= 0; i-- {
		digits[i] = a.At(int(v % 85))
		v /= 85
	}
	for _, r := range digits[:n] {
		b.WriteRune(r)
	}
}

// encode85 renders 4-byte groups as 5 symbols. A short final group of m
// bytes is zero-filled and emits m+1 symbols. zeroRune, when set,
// abbreviates an all-zero full group.
func encode85(data []byte, a *mbase.Alphabet, zeroRune rune) string {
	var b strings.Builder
	b.Grow((len(data) + 3) / 4 * 5)
	for i := 0; i < len(data); i += 4 {
		var group [4]byte
		m := copy(group[:], data[i:])
		v := uint32(group[0])<<24 | uint32(group[1])<<16 | uint32(group[2])<<8 | uint32(group[3])
		if m == 4 && v == 0 && zeroRune != 0 {
			b.WriteRune(zeroRune)
			continue
		}
		putGroup(&b, v, m+1, a)
	}
	return b.String()
}

// decodeGroup folds up to five digits, padding a short group with the
// highest digit, and returns the 4-byte value.
func decodeGroup(digits []int) (uint32, error) {
	var v uint64
	for i := 0; i < 5; i++ {
		d := 84
		if i < len(digits) {
			d = digits[i]
		}
		v = v*85 + uint64(d)
	}
	if v > 0xffffffff {
		return 0, mbase.NewInputError("base85 group value overflow")
	}
	return uint32(v), nil
}

func appendGroup(out []byte, v uint32, n int) []byte {
	group := [4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
	return append(out, group[:n]...)
}

// Ascii85Codec is the Adobe variant of Ascii85.
type Ascii85Codec struct{}

// Ascii85 returns the Adobe Ascii85 codec.
func Ascii85() *Ascii85Codec { return &Ascii85Codec{} }

// Meta returns the codec's descriptor.
func (*Ascii85Codec) Meta() mbase.Metadata {
	return mbase.Metadata{
		Name:        "ascii85",
		Aliases:     []string{"base85", "a85"},
		Alphabet:    Ascii85Alphabet,
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseSensitive,
		Description: "Ascii85/Base85 encoding (Adobe variant)",
	}
}

// Encode renders data as Ascii85 without the <~ ~> wrapper.
func (*Ascii85Codec) Encode(data []byte) (string, error) {
	return encode85(data, ascii85Alphabet, 'z'), nil
}

// Decode parses Ascii85. The <~ ~> wrapper is accepted in both modes.
func (*Ascii85Codec) Decode(text string, mode mbase.Mode) ([]byte, error) {
	text = mbase.Clean(text, mode)
	offset := 0
	if strings.HasPrefix(text, "<~") && strings.HasSuffix(text, "~>") && len(text) >= 4 {
		text = text[2 : len(text)-2]
		offset = 2
	}

	out := make([]byte, 0, len(text)/5*4+4)
	digits := make([]int, 0, 5)
	pos := 0
	for _, r := range text {
		switch {
		case r == 'z':
			if len(digits) > 0 {
				return nil, mbase.NewInputError("'z' in middle of group")
			}
			out = append(out, 0, 0, 0, 0)
		case ascii85Alphabet.Contains(r):
			digits = append(digits, ascii85Alphabet.Index(r))
			if len(digits) == 5 {
				v, err := decodeGroup(digits)
				if err != nil {
					return nil, err
				}
				out = appendGroup(out, v, 4)
				digits = digits[:0]
			}
		default:
			return nil, mbase.NewCharacterError(r, pos+offset)
		}
		pos++
	}
	switch len(digits) {
	case 0:
	case 1:
		return nil, mbase.NewInputError("final group cannot be a single character")
	default:
		v, err := decodeGroup(digits)
		if err != nil {
			return nil, err
		}
		out = appendGroup(out, v, len(digits)-1)
	}
	return out, nil
}

// DetectScore rates text as Ascii85.
func (*Ascii85Codec) DetectScore(text string) mbase.Candidate {
	if text == "" {
		return mbase.EmptyCandidate("ascii85")
	}
	c := mbase.NewCandidate("ascii85")
	if strings.HasPrefix(text, "<~") && strings.HasSuffix(text, "~>") {
		c.Score(mbase.ConfidenceMultibase, "has <~ ~> wrapper")
	}
	ratio := mbase.RatioFunc(text, func(r rune) bool { return ascii85Alphabet.Contains(r) || r == 'z' })
	if ratio > 0.9 {
		c.Score(mbase.ConfidencePartial, fmt.Sprintf("%.0f%% valid ascii85 chars", ratio*100))
	}
	return c
}

// Z85Codec is ZeroMQ Z85 (RFC 32). It has no partial groups.
type Z85Codec struct{}

// Z85 returns the ZeroMQ Z85 codec.
func Z85() *Z85Codec { return &Z85Codec{} }

// Meta returns the codec's descriptor.
func (*Z85Codec) Meta() mbase.Metadata {
	return mbase.Metadata{
		Name:        "z85",
		Alphabet:    Z85Alphabet,
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseSensitive,
		Description: "Z85 encoding (ZeroMQ RFC 32)",
	}
}

// Encode requires a multiple of four bytes.
func (*Z85Codec) Encode(data []byte) (string, error) {
	if len(data)%4 != 0 {
		return "", mbase.NewLengthError(mbase.MultipleOf(4), len(data))
	}
	return encode85(data, z85Alphabet, 0), nil
}

// Decode requires a multiple of five symbols.
func (*Z85Codec) Decode(text string, mode mbase.Mode) ([]byte, error) {
	digits, err := digits85(mbase.Clean(text, mode), z85Alphabet)
	if err != nil {
		return nil, err
	}
	if len(digits)%5 != 0 {
		return nil, mbase.NewLengthError(mbase.MultipleOf(5), len(digits))
	}
	out := make([]byte, 0, len(digits)/5*4)
	for i := 0; i < len(digits); i += 5 {
		v, err := decodeGroup(digits[i : i+5])
		if err != nil {
			return nil, err
		}
		out = appendGroup(out, v, 4)
	}
	return out, nil
}

// DetectScore rates text as Z85.
func (*Z85Codec) DetectScore(text string) mbase.Candidate {
	if text == "" {
		return mbase.EmptyCandidate("z85")
	}
	c := mbase.NewCandidate("z85")
	ratio := z85Alphabet.Ratio(text)
	switch {
	case ratio == 1 && len([]rune(text))%5 == 0:
		c.Score(mbase.ConfidencePartial, "all chars valid z85, length multiple of 5")
	case ratio > 0.9:
		c.Score(mbase.ConfidenceWeak, fmt.Sprintf("%.0f%% valid z85 chars", ratio*100))
	}
	return c
}

func digits85(text string, a *mbase.Alphabet) ([]int, error) {
	out := make([]int, 0, len(text))
	pos := 0
	for _, r := range text {
		d := a.Index(r)
		if d < 0 {
			return nil, mbase.NewCharacterError(r, pos)
		}
		out = append(out, d)
		pos++
	}
	return out, nil
}

// Base85ChunkedCodec applies 4-to-5 grouping over the RFC 1924 alphabet,
// with an m+1 symbol tail for a short final group.
type Base85ChunkedCodec struct{}

// Base85Chunked returns the chunked RFC 1924 alphabet codec.
func Base85Chunked() *Base85ChunkedCodec { return &Base85ChunkedCodec{} }

// Meta returns the codec's descriptor.
func (*Base85ChunkedCodec) Meta() mbase.Metadata {
	return mbase.Metadata{
		Name:        "base85chunked",
		Aliases:     []string{"b85chunked"},
		Alphabet:    RFC1924Alphabet,
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseSensitive,
		Description: "Base85 with chunked encoding (4-byte groups to 5-char groups)",
	}
}

// Encode renders data in 5-symbol groups.
func (*Base85ChunkedCodec) Encode(data []byte) (string, error) {
	return encode85(data, rfc1924Alphabet, 0), nil
}

// Decode parses 5-symbol groups and a 2 to 4 symbol tail.
func (*Base85ChunkedCodec) Decode(text string, mode mbase.Mode) ([]byte, error) {
	if mode == mbase.ModeLenient {
		text = stripUnicodeSpace(text)
	}
	digits, err := digits85(text, rfc1924Alphabet)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(digits)/5*4+4)
	for i := 0; i < len(digits); i += 5 {
		group := digits[i:min(i+5, len(digits))]
		if len(group) == 1 {
			return nil, mbase.NewInputError("RFC1924 group cannot be single character")
		}
		v, err := decodeGroup(group)
		if err != nil {
			return nil, err
		}
		out = appendGroup(out, v, len(group)-1)
	}
	return out, nil
}

// DetectScore rates text as chunked base85.
func (*Base85ChunkedCodec) DetectScore(text string) mbase.Candidate {
	if text == "" {
		return mbase.EmptyCandidate("base85chunked")
	}
	c := mbase.NewCandidate("base85chunked")
	if rfc1924Alphabet.Ratio(text) == 1 {
		if len([]rune(text))%5 == 0 {
			c.Score(mbase.ConfidencePartial, "all chars valid, length multiple of 5")
		} else {
			c.Score(mbase.ConfidenceWeak, "all chars valid")
		}
	}
	return c
}

const (
	rfc1924Bytes   = 16
	rfc1924Symbols = 20
)

// Base85RFC1924Codec renders exactly 16 bytes as one 128-bit integer in
// 20 base85 digits.
type Base85RFC1924Codec struct{}

// Base85RFC1924 returns the 128-bit RFC 1924 codec.
func Base85RFC1924() *Base85RFC1924Codec { return &Base85RFC1924Codec{} }

// Meta returns the codec's descriptor.
func (*Base85RFC1924Codec) Meta() mbase.Metadata {
	return mbase.Metadata{
		Name:        "base85rfc1924",
		Aliases:     []string{"rfc1924"},
		Alphabet:    RFC1924Alphabet,
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseSensitive,
		Description: "Base85 RFC1924 (128-bit big-integer encoding)",
	}
}

// Encode requires exactly 16 bytes.
func (*Base85RFC1924Codec) Encode(data []byte) (string, error) {
	if len(data) != rfc1924Bytes {
		return "", mbase.NewLengthError(mbase.Exact(rfc1924Bytes), len(data))
	}
	return encodeU128(u128From(data)), nil
}

// Decode requires exactly 20 symbols whose value fits in 128 bits.
func (*Base85RFC1924Codec) Decode(text string, mode mbase.Mode) ([]byte, error) {
	n, err := decodeU128(text, mode)
	if err != nil {
		return nil, err
	}
	b := n.bytes()
	return b[:], nil
}

// DetectScore rates text as a single RFC 1924 value.
func (*Base85RFC1924Codec) DetectScore(text string) mbase.Candidate {
	return rfc1924Score("base85rfc1924", text)
}

func rfc1924Score(name, text string) mbase.Candidate {
	if text == "" {
		return mbase.EmptyCandidate(name)
	}
	c := mbase.NewCandidate(name)
	if len([]rune(text)) != rfc1924Symbols {
		c.Reasons = append(c.Reasons, fmt.Sprintf("length must be exactly %d characters", rfc1924Symbols))
		return c
	}
	if rfc1924Alphabet.Ratio(text) == 1 {
		c.Score(mbase.ConfidenceAlphabet, fmt.Sprintf("exactly %d chars, all valid RFC1924 alphabet", rfc1924Symbols))
	} else {
		c.Reasons = append(c.Reasons, "contains invalid characters")
	}
	return c
}

func decodeU128(text string, mode mbase.Mode) (u128, error) {
	if mode == mbase.ModeLenient {
		text = stripUnicodeSpace(text)
	}
	digits, err := digits85(text, rfc1924Alphabet)
	if err != nil {
		return u128{}, err
	}
	if len(digits) != rfc1924Symbols {
		return u128{}, mbase.NewLengthError(mbase.Exact(rfc1924Symbols), len(digits))
	}
	var n u128
	for _, d := range digits {
		var overflow bool
		if n, overflow = n.mulAdd(85, uint64(d)); overflow {
			return u128{}, mbase.NewInputError("RFC1924 value exceeds 128 bits")
		}
	}
	return n, nil
}

func encodeU128(n u128) string {
	var digits [rfc1924Symbols]rune
	for i := rfc1924Symbols - 1; i >= 0; i-- {
		var r uint64
		n, r = n.divMod(85)
		digits[i] = rfc1924Alphabet.At(int(r))
	}
	return string(digits[:])
}
