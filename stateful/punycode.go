package stateful

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/zoobzio/mbase"
)

// Bootstring parameters for Punycode.
const (
	pcBase        = 36
	pcTMin        = 1
	pcTMax        = 26
	pcSkew        = 38
	pcDamp        = 700
	pcInitialBias = 72
	pcInitialN    = 0x80
	pcDelimiter   = '-'
	pcMaxInt      = math.MaxInt32
)

var errPunycodeOverflow = mbase.NewInputError("punycode overflow")

// PunycodeCodec converts UTF-8 text to and from RFC 3492 Punycode.
type PunycodeCodec struct{}

// Punycode returns the Punycode codec.
func Punycode() *PunycodeCodec { return &PunycodeCodec{} }

// Meta returns the codec's descriptor.
func (*PunycodeCodec) Meta() mbase.Metadata {
	return mbase.Metadata{
		Name:        "punycode",
		Aliases:     []string{"pcode"},
		Alphabet:    "abcdefghijklmnopqrstuvwxyz0123456789-",
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseSensitive,
		Description: "Punycode (RFC3492 IDN encoding)",
	}
}

func adapt(delta, numPoints int, first bool) int {
	if first {
		delta /= pcDamp
	} else {
		delta /= 2
	}
	delta += delta / numPoints
	k := 0
	for delta > ((pcBase-pcTMin)*pcTMax)/2 {
		delta /= pcBase - pcTMin
		k += pcBase
	}
	return k + (pcBase-pcTMin+1)*delta/(delta+pcSkew)
}

func threshold(k, bias int) int {
	switch {
	case k <= bias:
		return pcTMin
	case k >= bias+pcTMax:
		return pcTMax
	}
	return k - bias
}

func encodeDigit(d int) byte {
	if d < 26 {
		return byte('a' + d)
	}
	return byte('0' + d - 26)
}

func decodeDigit(r rune) int {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r - 'a')
	case r >= 'A' && r <= 'Z':
		return int(r - 'A')
	case r >= '0' && r <= '9':
		return int(r-'0') + 26
	}
	return -1
}

// Encode requires UTF-8 input. Basic code points are copied in order and
// followed by the delimiter whenever there are any.
func (*PunycodeCodec) Encode(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", mbase.NewInputError("invalid UTF-8")
	}
	input := []rune(string(data))

	var b strings.Builder
	for _, r := range input {
		if r < pcInitialN {
			b.WriteRune(r)
		}
	}
	basic := b.Len()
	if basic > 0 {
		b.WriteByte(pcDelimiter)
	}

	n, delta, bias := pcInitialN, 0, pcInitialBias
	for h := basic; h < len(input); {
		m := pcMaxInt
		for _, r := range input {
			if int(r) >= n && int(r) < m {
				m = int(r)
			}
		}
		if m-n > (pcMaxInt-delta)/(h+1) {
			return "", errPunycodeOverflow
		}
		delta += (m - n) * (h + 1)
		n = m
		for _, r := range input {
			if int(r) < n {
				if delta == pcMaxInt {
					return "", errPunycodeOverflow
				}
				delta++
				continue
			}
			if int(r) != n {
				continue
			}
			q := delta
			for k := pcBase; ; k += pcBase {
				t := threshold(k, bias)
				if q < t {
					break
				}
				b.WriteByte(encodeDigit(t + (q-t)%(pcBase-t)))
				q = (q - t) / (pcBase - t)
			}
			b.WriteByte(encodeDigit(q))
			bias = adapt(delta, h+1, h == basic)
			delta = 0
			h++
		}
		delta++
		n++
	}
	return b.String(), nil
}

// Decode splits at the last delimiter. Text without one carries no basic
// code points. Digits are read case-insensitively; basic code points keep
// their case. Lenient drops whitespace first.
func (*PunycodeCodec) Decode(text string, mode mbase.Mode) ([]byte, error) {
	text = mbase.Clean(text, mode)
	if text == "" {
		return []byte{}, nil
	}
	runes := []rune(text)

	var out []rune
	start := 0
	if d := strings.LastIndexByte(text, pcDelimiter); d >= 0 {
		basic := []rune(text[:d])
		for i, r := range basic {
			if r >= pcInitialN {
				return nil, mbase.NewCharacterError(r, i)
			}
		}
		out = append(out, basic...)
		start = len(basic) + 1
	}

	n, i, bias := pcInitialN, 0, pcInitialBias
	for pos := start; pos < len(runes); {
		oldi, w := i, 1
		for k := pcBase; ; k += pcBase {
			if pos >= len(runes) {
				return nil, mbase.NewInputError("truncated punycode input")
			}
			digit := decodeDigit(runes[pos])
			if digit < 0 {
				return nil, mbase.NewCharacterError(runes[pos], pos)
			}
			pos++
			if digit > (pcMaxInt-i)/w {
				return nil, errPunycodeOverflow
			}
			i += digit * w
			t := threshold(k, bias)
			if digit < t {
				break
			}
			if w > pcMaxInt/(pcBase-t) {
				return nil, errPunycodeOverflow
			}
			w *= pcBase - t
		}
		size := len(out) + 1
		bias = adapt(i-oldi, size, oldi == 0)
		if i/size > pcMaxInt-n {
			return nil, errPunycodeOverflow
		}
		n += i / size
		i %= size
		if n < pcInitialN || n > utf8.MaxRune || (n >= 0xd800 && n <= 0xdfff) {
			return nil, mbase.NewInputErrorf("decoded code point U+%04X is not valid here", n)
		}
		out = append(out, 0)
		copy(out[i+1:], out[i:])
		out[i] = rune(n)
		i++
	}
	return []byte(string(out)), nil
}

// DetectScore rates text as Punycode.
func (*PunycodeCodec) DetectScore(text string) mbase.Candidate {
	if text == "" {
		return mbase.EmptyCandidate("punycode")
	}
	c := mbase.NewCandidate("punycode")
	lower := strings.ToLower(text)
	valid := 0
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == pcDelimiter {
			valid++
		}
	}
	if float64(valid)/float64(len(text)) < 0.95 {
		return c
	}
	switch {
	case strings.ContainsRune(lower, pcDelimiter):
		c.Score(mbase.ConfidencePartial, "valid punycode pattern with delimiter")
	case strings.ContainsAny(lower, "0123456789"):
		c.Score(mbase.ConfidenceWeak, "valid chars with digit")
	default:
		c.Score(0.25, "all valid ASCII chars")
	}
	return c
}
