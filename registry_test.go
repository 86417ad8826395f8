package mbase_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/zoobzio/mbase"
)

// stubCodec is a minimal lower-case hex codec for registry and engine tests
// that must not depend on the real codec packages.
type stubCodec struct {
	meta  mbase.Metadata
	score float64
}

const hexDigits = "0123456789abcdef"

func newStub(name string, prefix rune, aliases ...string) *stubCodec {
	return &stubCodec{meta: mbase.Metadata{
		Name:     name,
		Aliases:  aliases,
		Alphabet: hexDigits,
		Prefix:   prefix,
		Padding:  mbase.PaddingNone,
		Case:     mbase.CaseLower,
	}}
}

func (s *stubCodec) Meta() mbase.Metadata { return s.meta }

func (s *stubCodec) Encode(data []byte) (string, error) {
	var b strings.Builder
	for _, c := range data {
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0x0f])
	}
	return b.String(), nil
}

func (s *stubCodec) Decode(text string, mode mbase.Mode) ([]byte, error) {
	text = mbase.Normalize(text, mode, mbase.CaseLower)
	pos := 0
	digits := make([]byte, 0, len(text))
	for _, r := range text {
		i := strings.IndexRune(hexDigits, r)
		if i < 0 {
			return nil, mbase.NewCharacterError(r, pos)
		}
		digits = append(digits, byte(i))
		pos++
	}
	if len(digits)%2 != 0 {
		return nil, mbase.NewLengthError(mbase.MultipleOf(2), len(digits))
	}
	out := make([]byte, len(digits)/2)
	for i := range out {
		out[i] = digits[2*i]<<4 | digits[2*i+1]
	}
	return out, nil
}

func (s *stubCodec) DetectScore(text string) mbase.Candidate {
	c := mbase.NewCandidate(s.meta.Name)
	if text == "" {
		return mbase.EmptyCandidate(s.meta.Name)
	}
	if s.score > 0 {
		c.Score(s.score, "fixed score")
	}
	return c
}

func TestNewRegistry_Lookup(t *testing.T) {
	r := mbase.NewRegistry(
		newStub("base16lower", 'f', "hex", "HEX16"),
		newStub("base16upper", 'F', "HEX"),
		newStub("other", 0),
	)

	tests := []struct {
		name string
		want string
	}{
		{"base16lower", "base16lower"},
		{"BASE16LOWER", "base16lower"},
		{"hex", "base16lower"},
		{"HEX16", "base16lower"},
		{"HEX", "base16upper"},
		{"Hex", "base16lower"},
		{"other", "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := r.Get(tt.name)
			if err != nil {
				t.Fatalf("Get(%q) error: %v", tt.name, err)
			}
			if got := c.Meta().Name; got != tt.want {
				t.Errorf("Get(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := mbase.NewRegistry(newStub("a", 0))

	_, err := r.Get("nope")
	if !errors.Is(err, mbase.ErrUnsupportedCodec) {
		t.Fatalf("Get(nope) error = %v, want ErrUnsupportedCodec", err)
	}
	var ue *mbase.UnsupportedError
	if !errors.As(err, &ue) || ue.Name != "nope" {
		t.Errorf("UnsupportedError.Name = %v, want nope", err)
	}
}

func TestNewRegistry_DuplicatePrefixPanics(t *testing.T) {
	defer func() {
		rec := recover()
		err, ok := rec.(error)
		if !ok || !errors.Is(err, mbase.ErrDuplicatePrefix) {
			t.Errorf("recover() = %v, want ErrDuplicatePrefix", rec)
		}
	}()
	mbase.NewRegistry(newStub("a", 'f'), newStub("b", 'f'))
}

func TestNewRegistry_DuplicateNamePanics(t *testing.T) {
	defer func() {
		rec := recover()
		err, ok := rec.(error)
		if !ok || !errors.Is(err, mbase.ErrDuplicateName) {
			t.Errorf("recover() = %v, want ErrDuplicateName", rec)
		}
	}()
	mbase.NewRegistry(newStub("a", 0, "x"), newStub("b", 0, "x"))
}

func TestRegistry_ListOrderAndIsolation(t *testing.T) {
	r := mbase.NewRegistry(newStub("one", 0, "uno"), newStub("two", 0), newStub("three", 0))

	list := r.List()
	if len(list) != 3 || r.Len() != 3 {
		t.Fatalf("List() len = %d, Len() = %d, want 3", len(list), r.Len())
	}
	for i, want := range []string{"one", "two", "three"} {
		if list[i].Name != want {
			t.Errorf("List()[%d] = %q, want %q", i, list[i].Name, want)
		}
	}

	list[0].Aliases[0] = "mutated"
	if _, err := r.Get("uno"); err != nil {
		t.Error("mutating List() output should not affect the registry")
	}
}

func TestRegistry_MultibaseMap(t *testing.T) {
	r := mbase.NewRegistry(newStub("lower", 'f'), newStub("plain", 0), newStub("upper", 'F'))

	m := r.MultibaseMap()
	if len(m) != 2 {
		t.Fatalf("MultibaseMap() len = %d, want 2", len(m))
	}
	if m['f'] != "lower" || m['F'] != "upper" {
		t.Errorf("MultibaseMap() = %v", m)
	}

	c, ok := r.ByPrefix('F')
	if !ok || c.Meta().Name != "upper" {
		t.Errorf("ByPrefix('F') = %v, %v", c, ok)
	}
	if _, ok := r.ByPrefix('q'); ok {
		t.Error("ByPrefix('q') should miss")
	}
}
