package bitpack

import (
	"math/bits"
	"net/netip"
	"strings"

	"github.com/zoobzio/mbase"
)

// u128 is a 128-bit unsigned integer, big-endian across hi and lo.
type u128 struct{ hi, lo uint64 }

func u128From(b []byte) u128 {
	var n u128
	for i := 0; i < 8; i++ {
		n.hi = n.hi<<8 | uint64(b[i])
		n.lo = n.lo<<8 | uint64(b[8+i])
	}
	return n
}

func (n u128) bytes() [16]byte {
	var b [16]byte
	for i := 0; i < 8; i++ {
		b[7-i] = byte(n.hi >> (8 * i))
		b[15-i] = byte(n.lo >> (8 * i))
	}
	return b
}

// mulAdd returns n*m + a and whether the result overflowed.
func (n u128) mulAdd(m, a uint64) (u128, bool) {
	carryLo, lo := bits.Mul64(n.lo, m)
	over, hi := bits.Mul64(n.hi, m)
	hi, c1 := bits.Add64(hi, carryLo, 0)
	lo, c2 := bits.Add64(lo, a, 0)
	hi, c3 := bits.Add64(hi, 0, c2)
	return u128{hi, lo}, over != 0 || c1 != 0 || c3 != 0
}

// divMod returns n/d and n%d.
func (n u128) divMod(d uint64) (u128, uint64) {
	qhi, r := n.hi/d, n.hi%d
	qlo, r := bits.Div64(r, n.lo, d)
	return u128{qhi, qlo}, r
}

// IPv6Codec converts between textual IPv6 addresses and their RFC 1924
// compact form. Its byte domain is the address text, not raw octets.
type IPv6Codec struct{}

// IPv6 returns the RFC 1924 address codec.
func IPv6() *IPv6Codec { return &IPv6Codec{} }

// Meta returns the codec's descriptor.
func (*IPv6Codec) Meta() mbase.Metadata {
	return mbase.Metadata{
		Name:        "ipv6",
		Aliases:     []string{"ipv6-rfc1924"},
		Alphabet:    RFC1924Alphabet,
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseSensitive,
		Description: "IPv6 RFC1924 compact representation (128-bit as base85)",
	}
}

// Encode parses data as an IPv6 address and renders its 20-symbol form.
func (*IPv6Codec) Encode(data []byte) (string, error) {
	addr, err := netip.ParseAddr(strings.TrimSpace(string(data)))
	if err != nil {
		return "", mbase.NewInputErrorf("invalid IPv6 address: %v", err)
	}
	if !addr.Is6() || addr.Zone() != "" {
		return "", mbase.NewInputErrorf("invalid IPv6 address: %s", addr)
	}
	b := addr.As16()
	return encodeU128(u128From(b[:])), nil
}

// Decode returns the address in canonical RFC 5952 text.
func (*IPv6Codec) Decode(text string, mode mbase.Mode) ([]byte, error) {
	n, err := decodeU128(text, mode)
	if err != nil {
		return nil, err
	}
	return []byte(netip.AddrFrom16(n.bytes()).String()), nil
}

// DetectScore rates text as an RFC 1924 address.
func (*IPv6Codec) DetectScore(text string) mbase.Candidate {
	return rfc1924Score("ipv6", text)
}
