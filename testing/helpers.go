// Package testing provides shared fixtures and assertions for codec tests.
package testing

import (
	"bytes"
	"errors"
	"testing"

	"github.com/zoobzio/mbase"
)

// Payload is a named byte input for round-trip tests.
type Payload struct {
	Name string
	Data []byte
}

// Payloads returns inputs covering the edge cases every byte codec must
// survive: empty input, leading zero bytes, high bytes, and every byte value.
func Payloads() []Payload {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	return []Payload{
		{"empty", []byte{}},
		{"zero", []byte{0x00}},
		{"leading zeros", []byte{0x00, 0x00, 0x01, 0x02}},
		{"hello", []byte("hello")},
		{"hello world", []byte("hello world")},
		{"high bytes", []byte{0xff, 0xfe, 0xfd, 0x80, 0x7f}},
		{"sixteen", []byte("0123456789abcdef")},
		{"all bytes", all},
	}
}

// textSamples maps text-domain codecs to a sample that round-trips
// exactly. These codecs only accept certain characters; ipv6 takes address
// text and decodes to its RFC 5952 form.
var textSamples = map[string]string{
	"baudot":   "HELLO WORLD",
	"morse":    "HELLO WORLD",
	"braille":  "hello world",
	"a1z26":    "HELLO WORLD",
	"tapcode":  "HELLO WORLD",
	"punycode": "bücher",
	"unicode":  "héllo 世界",
	"ipv6":     "2001:db8::1",
}

// fixedLengths maps fixed-domain codecs to the only input length they
// encode.
var fixedLengths = map[string]int{
	"base85rfc1924": 16,
}

// TextSample returns the round-trip sample for a text-domain codec. ok is
// false for codecs that accept arbitrary bytes.
func TextSample(name string) (sample string, ok bool) {
	sample, ok = textSamples[name]
	return sample, ok
}

// groupLengths maps codecs that only encode whole groups to the group size
// in bytes.
var groupLengths = map[string]int{
	"proquint": 2,
	"z85":      4,
}

// AcceptsLength reports whether the named codec encodes inputs of n bytes.
func AcceptsLength(name string, n int) bool {
	if group, ok := groupLengths[name]; ok {
		return n%group == 0
	}
	want, fixed := fixedLengths[name]
	return !fixed || n == want
}

// RoundTrip encodes data with c and checks that strict and lenient decodes
// both return it unchanged, and that Validate agrees.
func RoundTrip(tb testing.TB, c mbase.Codec, data []byte) string {
	tb.Helper()
	name := c.Meta().Name

	text, err := c.Encode(data)
	if err != nil {
		tb.Fatalf("%s: Encode(%x) error: %v", name, data, err)
	}
	for _, mode := range []mbase.Mode{mbase.ModeStrict, mbase.ModeLenient} {
		got, err := c.Decode(text, mode)
		if err != nil {
			tb.Errorf("%s: Decode(%q, %s) error: %v", name, text, mode, err)
			continue
		}
		if !bytes.Equal(got, data) {
			tb.Errorf("%s: Decode(%q, %s) = %x, want %x", name, text, mode, got, data)
		}
		if err := mbase.Validate(c, text, mode); err != nil {
			tb.Errorf("%s: Validate(%q, %s) error: %v", name, text, mode, err)
		}
	}
	return text
}

// RequireError fails unless err matches target under errors.Is.
func RequireError(tb testing.TB, err, target error) {
	tb.Helper()
	if !errors.Is(err, target) {
		tb.Fatalf("error = %v, want %v", err, target)
	}
}
