// Package bitpack implements the variable-bit-width packing codec family.
//
// Most formats here share one shape: an accumulator plus a bit-count
// register. Encoding pushes bytes in and drains fixed-width symbols;
// decoding maps symbols back to values and drains whole bytes. The
// power-of-two alphabets (base2, base16, base32, base64) run through Pack
// and Unpack directly. The rest (Ascii85, Z85, basE91, Base65536, RFC 1924)
// keep their own accumulators because their group arithmetic is not a
// simple shift.
package bitpack

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/zoobzio/mbase"
)

// groupSymbols returns how many k-bit symbols make a whole number of bytes.
func groupSymbols(k uint) int {
	n := 1
	for n*int(k)%8 != 0 {
		n++
	}
	return n
}

// Pack renders data as k-bit symbols of a, most significant bit first.
// A trailing partial group is zero-filled; no padding is appended.
func Pack(data []byte, k uint, a *mbase.Alphabet) string {
	if len(data) == 0 {
		return ""
	}
	mask := uint32(1)<<k - 1
	out := make([]rune, 0, (len(data)*8+int(k)-1)/int(k))

	var acc uint32
	var n uint
	for _, b := range data {
		acc = acc<<8 | uint32(b)
		n += 8
		for n >= k {
			n -= k
			out = append(out, a.At(int(acc>>n&mask)))
		}
		acc &= uint32(1)<<n - 1
	}
	if n > 0 {
		out = append(out, a.At(int(acc<<(k-n)&mask)))
	}
	return string(out)
}

// Unpack parses k-bit symbols back into bytes. index maps a rune to its
// value or -1. slack reports leftover bits that were not zero; callers
// decide whether that is a strict-mode failure.
//
// A trailing symbol that contributes no whole byte is a length error: the
// input cannot have come from Pack.
func Unpack(text string, k uint, index func(rune) int) (data []byte, slack bool, err error) {
	out := make([]byte, 0, len(text)*int(k)/8)

	var acc uint32
	var n uint
	pos := 0
	for _, r := range text {
		d := index(r)
		if d < 0 {
			return nil, false, mbase.NewCharacterError(r, pos)
		}
		pos++
		acc = acc<<k | uint32(d)
		n += k
		if n >= 8 {
			n -= 8
			out = append(out, byte(acc>>n))
		}
		acc &= uint32(1)<<n - 1
	}
	if n >= k {
		group := groupSymbols(k)
		return nil, false, mbase.NewLengthErrorMsg(mbase.MultipleOf(group), pos,
			fmt.Sprintf("%d trailing symbols cannot form a byte", pos%group))
	}
	return out, acc != 0, nil
}

// stripUnicodeSpace removes every Unicode whitespace rune. Codecs whose
// output is not ASCII use it for their Lenient mode.
func stripUnicodeSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
