package checksum

import (
	"bytes"
	"crypto/sha256"

	"github.com/zoobzio/mbase"
	"github.com/zoobzio/mbase/positional"
)

const checkLen = 4

// Base58CheckCodec is Bitcoin Base58Check without a version byte: the
// payload followed by the first four bytes of SHA-256(SHA-256(payload)).
type Base58CheckCodec struct{}

// Base58Check returns the Base58Check codec.
func Base58Check() *Base58CheckCodec { return &Base58CheckCodec{} }

// Meta returns the codec's descriptor.
func (*Base58CheckCodec) Meta() mbase.Metadata {
	return mbase.Metadata{
		Name:        "base58check",
		Aliases:     []string{"b58check"},
		Alphabet:    positional.Base58BTCAlphabet,
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseSensitive,
		Description: "Base58 with 4-byte checksum (Bitcoin-style double-SHA256)",
	}
}

func doubleSHA(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:checkLen]
}

// Encode appends the checksum and renders base58.
func (*Base58CheckCodec) Encode(data []byte) (string, error) {
	full := make([]byte, 0, len(data)+checkLen)
	full = append(full, data...)
	full = append(full, doubleSHA(data)...)
	return positional.EncodeBytes(full, positional.BTC()), nil
}

// Decode verifies and strips the checksum.
func (*Base58CheckCodec) Decode(text string, mode mbase.Mode) ([]byte, error) {
	raw, err := positional.DecodeString(mbase.Clean(text, mode), positional.BTC())
	if err != nil {
		return nil, err
	}
	if len(raw) < checkLen {
		return nil, mbase.NewInputError("input too short for checksum")
	}
	payload, sum := raw[:len(raw)-checkLen], raw[len(raw)-checkLen:]
	if !bytes.Equal(sum, doubleSHA(payload)) {
		return nil, mbase.NewChecksumError("")
	}
	return payload, nil
}

// DetectScore applies the base58 heuristic and promotes text whose
// checksum verifies.
func (b *Base58CheckCodec) DetectScore(text string) mbase.Candidate {
	if text == "" {
		return mbase.EmptyCandidate("base58check")
	}
	c := mbase.NewCandidate("base58check")
	positional.Base58Score(&c, text)
	if _, err := b.Decode(text, mbase.ModeLenient); err == nil {
		c.Score(0.9, "checksum valid")
	}
	return c
}
