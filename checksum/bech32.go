// Package checksum implements codecs that carry integrity data alongside
// the payload: Bech32 and Bech32m (BCH checksum over GF(32)), Base58Check
// (truncated double SHA-256), and Crockford base32.
//
// Decoding verifies the checksum before returning any bytes. A payload
// whose symbols are all valid but whose checksum does not match fails with
// mbase.ErrChecksumMismatch, never ErrInvalidCharacter.
package checksum

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/zoobzio/mbase"
)

// Bech32Alphabet is the BIP-173 data-part symbol set.
const Bech32Alphabet = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// DefaultHRP is the human-readable part Encode writes.
const DefaultHRP = "data"

const (
	checksumSymbols = 6
	maxCodeLength   = 1023
)

var bech32Alphabet = mbase.NewAlphabet(Bech32Alphabet)

// Variant selects the checksum constant.
type Variant uint32

// Checksum constants from BIP-173 and BIP-350.
const (
	VariantBech32  Variant = 1
	VariantBech32m Variant = 0x2bc830a3
)

func (v Variant) String() string {
	if v == VariantBech32m {
		return "bech32m"
	}
	return "bech32"
}

var generator = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

func polymod(values []byte) uint32 {
	chk := uint32(1)
	for _, v := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i, g := range generator {
			if top>>i&1 == 1 {
				chk ^= g
			}
		}
	}
	return chk
}

func hrpExpand(hrp string) []byte {
	out := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]>>5)
	}
	out = append(out, 0)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]&31)
	}
	return out
}

func createChecksum(hrp string, data []byte, v Variant) []byte {
	values := append(hrpExpand(hrp), data...)
	values = append(values, make([]byte, checksumSymbols)...)
	mod := polymod(values) ^ uint32(v)
	out := make([]byte, checksumSymbols)
	for i := range out {
		out[i] = byte(mod >> (5 * (5 - i)) & 31)
	}
	return out
}

// regroup converts between bit widths. pad controls whether a trailing
// partial group is emitted (encoding) or must be zero and short (decoding).
func regroup(data []byte, from, to uint, pad bool) ([]byte, error) {
	var acc uint32
	var bits uint
	maxv := uint32(1)<<to - 1
	out := make([]byte, 0, len(data)*int(from)/int(to)+1)
	for _, v := range data {
		acc = acc<<from | uint32(v)
		bits += from
		for bits >= to {
			bits -= to
			out = append(out, byte(acc>>bits&maxv))
		}
	}
	if pad {
		if bits > 0 {
			out = append(out, byte(acc<<(to-bits)&maxv))
		}
	} else if bits >= from || acc<<(to-bits)&maxv != 0 {
		return nil, mbase.NewPaddingError("non-zero trailing bits in data part")
	}
	return out, nil
}

// Bech32Codec is a Bech32 or Bech32m codec over arbitrary bytes.
type Bech32Codec struct {
	meta    mbase.Metadata
	variant Variant
}

// Bech32 returns the BIP-173 codec.
func Bech32() *Bech32Codec {
	return &Bech32Codec{
		meta: mbase.Metadata{
			Name:        "bech32",
			Alphabet:    Bech32Alphabet,
			Padding:     mbase.PaddingNone,
			Case:        mbase.CaseInsensitive,
			Description: "Bech32 (BIP-173) with HRP separator",
		},
		variant: VariantBech32,
	}
}

// Bech32m returns the BIP-350 codec.
func Bech32m() *Bech32Codec {
	return &Bech32Codec{
		meta: mbase.Metadata{
			Name:        "bech32m",
			Alphabet:    Bech32Alphabet,
			Padding:     mbase.PaddingNone,
			Case:        mbase.CaseInsensitive,
			Description: "Bech32m (BIP-350) with updated checksum constant",
		},
		variant: VariantBech32m,
	}
}

// Meta returns the codec's descriptor.
func (b *Bech32Codec) Meta() mbase.Metadata { return b.meta }

// Encode renders data under DefaultHRP.
func (b *Bech32Codec) Encode(data []byte) (string, error) {
	return EncodeHRP(DefaultHRP, data, b.variant)
}

// EncodeHRP renders data as hrp + "1" + data part + checksum.
func EncodeHRP(hrp string, data []byte, v Variant) (string, error) {
	if err := checkHRP(hrp); err != nil {
		return "", err
	}
	hrp = strings.ToLower(hrp)
	five, _ := regroup(data, 8, 5, true)
	if n := len(hrp) + 1 + len(five) + checksumSymbols; n > maxCodeLength {
		return "", mbase.NewLengthErrorMsg(mbase.Range(0, maxCodeLength), n,
			fmt.Sprintf("encoding failed: code length %d exceeds %d", n, maxCodeLength))
	}
	var sb strings.Builder
	sb.Grow(len(hrp) + 1 + len(five) + checksumSymbols)
	sb.WriteString(hrp)
	sb.WriteByte('1')
	for _, d := range append(five, createChecksum(hrp, five, v)...) {
		sb.WriteByte(Bech32Alphabet[d])
	}
	return sb.String(), nil
}

func checkHRP(hrp string) error {
	if hrp == "" {
		return mbase.NewInputError("invalid HRP: empty")
	}
	for i, r := range hrp {
		if r < 33 || r > 126 {
			return mbase.NewCharacterError(r, i)
		}
	}
	return nil
}

// Decode verifies the checksum and returns the payload. Any HRP is
// accepted. Strict rejects mixed case.
func (b *Bech32Codec) Decode(text string, mode mbase.Mode) ([]byte, error) {
	_, data, err := DecodeHRP(text, mode, b.variant)
	return data, err
}

// DecodeHRP parses text, verifies it under variant v, and returns its HRP
// and payload.
func DecodeHRP(text string, mode mbase.Mode, v Variant) (string, []byte, error) {
	text = mbase.Clean(text, mode)
	if mode == mbase.ModeStrict && strings.ToLower(text) != text && strings.ToUpper(text) != text {
		return "", nil, mbase.NewInputError("mixed case is not allowed")
	}
	text = strings.ToLower(text)
	if n := utf8.RuneCountInString(text); n > maxCodeLength {
		return "", nil, mbase.NewLengthErrorMsg(mbase.Range(0, maxCodeLength), n,
			fmt.Sprintf("code length %d exceeds %d", n, maxCodeLength))
	}

	sep := strings.LastIndexByte(text, '1')
	switch {
	case sep < 0:
		return "", nil, mbase.NewInputError("missing separator '1'")
	case sep == 0:
		return "", nil, mbase.NewInputError("empty human-readable part")
	case len(text)-sep-1 < checksumSymbols:
		return "", nil, mbase.NewInputError("data part too short for checksum")
	}
	hrp := text[:sep]
	if err := checkHRP(hrp); err != nil {
		return "", nil, err
	}

	values := make([]byte, 0, len(text)-sep-1)
	for i, r := range text[sep+1:] {
		d := bech32Alphabet.Index(r)
		if d < 0 {
			return "", nil, mbase.NewCharacterError(r, sep+1+i)
		}
		values = append(values, byte(d))
	}

	// The residue names the variant directly. Together with regroup's
	// zero-trailing-bits check this accepts exactly the strings that
	// re-encoding the payload would reproduce.
	switch got := Variant(polymod(append(hrpExpand(hrp), values...))); {
	case got == v:
	case got == VariantBech32 || got == VariantBech32m:
		return "", nil, mbase.NewChecksumError(fmt.Sprintf("checksum is %s, not %s", got, v))
	default:
		return "", nil, mbase.NewChecksumError("")
	}

	data, err := regroup(values[:len(values)-checksumSymbols], 5, 8, false)
	if err != nil {
		return "", nil, err
	}
	return hrp, data, nil
}

// DetectScore rates text as this variant's Bech32 form.
func (b *Bech32Codec) DetectScore(text string) mbase.Candidate {
	if text == "" {
		return mbase.EmptyCandidate(b.meta.Name)
	}
	c := mbase.NewCandidate(b.meta.Name)
	lower := strings.ToLower(text)
	if sep := strings.LastIndexByte(lower, '1'); sep > 0 && sep < len(lower)-7 {
		c.Score(mbase.ConfidencePartial, "contains bech32 separator '1'")
		if bech32Alphabet.Check(lower[sep+1:]) == nil {
			c.Score(mbase.ConfidenceAlphabet, "valid bech32 charset")
		}
	}
	if _, _, err := DecodeHRP(text, mbase.ModeLenient, b.variant); err == nil {
		c.Score(mbase.ConfidenceMultibase, "checksum valid")
	}
	return c
}
