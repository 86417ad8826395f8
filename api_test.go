package mbase_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/zoobzio/mbase"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newStub("base16lower", 'f')

	text, err := mbase.Encode(ctx, c, []byte("Hello"))
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if text != "48656c6c6f" {
		t.Errorf("Encode() = %q, want %q", text, "48656c6c6f")
	}

	data, err := mbase.Decode(ctx, c, text, mbase.ModeStrict)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if !bytes.Equal(data, []byte("Hello")) {
		t.Errorf("Decode() = %q, want Hello", data)
	}
}

func TestDecode_ErrorReturnsNil(t *testing.T) {
	data, err := mbase.Decode(context.Background(), newStub("h", 0), "abc", mbase.ModeStrict)
	if data != nil {
		t.Errorf("Decode() data = %v on error, want nil", data)
	}
	if !errors.Is(err, mbase.ErrInvalidLength) {
		t.Errorf("Decode() error = %v, want ErrInvalidLength", err)
	}
}

// validatingStub counts Validate calls to prove the override is preferred.
type validatingStub struct {
	*stubCodec
	calls int
}

func (v *validatingStub) Validate(_ string, _ mbase.Mode) error {
	v.calls++
	return nil
}

func TestValidate_PrefersOverride(t *testing.T) {
	v := &validatingStub{stubCodec: newStub("h", 0)}

	if err := mbase.Validate(v, "not hex at all", mbase.ModeStrict); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
	if v.calls != 1 {
		t.Errorf("Validate override calls = %d, want 1", v.calls)
	}
}

func TestValidate_FallsBackToDecode(t *testing.T) {
	c := newStub("h", 0)

	if err := mbase.Validate(c, "00ff", mbase.ModeStrict); err != nil {
		t.Errorf("Validate(00ff) error: %v", err)
	}
	if err := mbase.Validate(c, "00FF", mbase.ModeStrict); !errors.Is(err, mbase.ErrInvalidCharacter) {
		t.Errorf("Validate(00FF) strict error = %v, want ErrInvalidCharacter", err)
	}
	if err := mbase.Validate(c, "00 FF", mbase.ModeLenient); err != nil {
		t.Errorf("Validate(00 FF) lenient error: %v", err)
	}
}

func TestMetadataClone(t *testing.T) {
	m := mbase.Metadata{Name: "x", Aliases: []string{"a"}}
	c := m.Clone()
	c.Aliases[0] = "b"
	if m.Aliases[0] != "a" {
		t.Error("Clone() should not share the alias slice")
	}
}

func TestCandidateScore(t *testing.T) {
	c := mbase.NewCandidate("x")
	c.Score(0.7, "alphabet")
	c.Score(0.3, "weaker")
	if c.Confidence != 0.7 {
		t.Errorf("Score() lowered confidence to %v", c.Confidence)
	}
	if len(c.Reasons) != 2 {
		t.Errorf("Reasons = %v, want both recorded", c.Reasons)
	}
	c.Set(1.5, "")
	if c.Confidence != 1 {
		t.Errorf("Set(1.5) = %v, want clamp to 1", c.Confidence)
	}
}
