// Package positional implements the positional big-integer codec family.
//
// A byte string is read as one big-endian integer and rewritten in radix N
// over a custom alphabet. Leading zero bytes are carried separately, one
// zero symbol each, so 00 01 02 and 01 02 stay distinct.
//
// Conversion is schoolbook multiply-and-carry over a growable digit slice,
// quadratic in input length. That is the intended shape for CLI-sized
// input, not a bulk pipeline.
package positional

import (
	"github.com/zoobzio/mbase"
)

// EncodeBytes renders data in the radix of a.
func EncodeBytes(data []byte, a *mbase.Alphabet) string {
	if len(data) == 0 {
		return ""
	}
	radix := uint32(a.Len())

	// Digits are kept least-significant first.
	digits := make([]uint32, 0, len(data)*2)
	for _, b := range data {
		carry := uint32(b)
		for i := range digits {
			carry += digits[i] << 8
			digits[i] = carry % radix
			carry /= radix
		}
		for carry > 0 {
			digits = append(digits, carry%radix)
			carry /= radix
		}
	}

	zeros := 0
	for zeros < len(data) && data[zeros] == 0 {
		zeros++
	}

	out := make([]rune, 0, zeros+len(digits))
	for i := 0; i < zeros; i++ {
		out = append(out, a.At(0))
	}
	for i := len(digits) - 1; i >= 0; i-- {
		out = append(out, a.At(int(digits[i])))
	}
	return string(out)
}

// DecodeString parses text, already normalized, in the radix of a.
// The first out-of-alphabet rune yields a CharacterError.
func DecodeString(text string, a *mbase.Alphabet) ([]byte, error) {
	if text == "" {
		return []byte{}, nil
	}
	radix := uint32(a.Len())
	zero := a.At(0)

	zeros := 0
	leading := true
	pos := 0
	// Bytes are kept least-significant first and reversed at the end.
	acc := make([]byte, 0, len(text))
	for _, r := range text {
		d := a.Index(r)
		if d < 0 {
			return nil, mbase.NewCharacterError(r, pos)
		}
		pos++
		if leading && r == zero {
			zeros++
			continue
		}
		leading = false

		carry := uint32(d)
		for i := range acc {
			carry += uint32(acc[i]) * radix
			acc[i] = byte(carry)
			carry >>= 8
		}
		for carry > 0 {
			acc = append(acc, byte(carry))
			carry >>= 8
		}
	}

	out := make([]byte, zeros+len(acc))
	for i, b := range acc {
		out[len(out)-1-i] = b
	}
	return out, nil
}
