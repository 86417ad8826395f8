package mbase_test

import (
	"context"
	"testing"

	"github.com/zoobzio/mbase"
)

func TestDetect_PrefixFastPath(t *testing.T) {
	r := mbase.NewRegistry(newStub("other", 0), newStub("base16lower", 'f'))

	got := r.Detect("f48656c6c6f", 0)
	if len(got) == 0 {
		t.Fatal("Detect() returned no candidates")
	}
	if got[0].Codec != "base16lower" {
		t.Errorf("top candidate = %q, want base16lower", got[0].Codec)
	}
	if got[0].Confidence != 1.0 {
		t.Errorf("top confidence = %v, want 1.0", got[0].Confidence)
	}
	if got[0].Reasons[0] != "multibase prefix 'f' detected" {
		t.Errorf("first reason = %q", got[0].Reasons[0])
	}
}

func TestDetect_PrefixInvalidRemainder(t *testing.T) {
	r := mbase.NewRegistry(newStub("base16lower", 'f'))

	got := r.Detect("fzz", 0)
	if len(got) != 1 || got[0].Confidence != 0.98 {
		t.Fatalf("Detect(fzz) = %+v, want single 0.98 candidate", got)
	}
}

func TestDetect_DecodeFloor(t *testing.T) {
	r := mbase.NewRegistry(newStub("hexish", 0))

	got := r.Detect("  abcd  ", 0)
	if len(got) != 1 {
		t.Fatalf("Detect() = %+v, want one candidate", got)
	}
	if got[0].Confidence != 0.5 {
		t.Errorf("confidence = %v, want 0.5 floor", got[0].Confidence)
	}
	if got[0].Reasons[len(got[0].Reasons)-1] != "decodes successfully" {
		t.Errorf("reasons = %v", got[0].Reasons)
	}
}

func TestDetect_TieBreakAndTop(t *testing.T) {
	a, b, c := newStub("a", 0), newStub("b", 0), newStub("c", 0)
	a.score, b.score, c.score = 0.7, 0.9, 0.7
	r := mbase.NewRegistry(a, b, c)

	got := r.Detect("zz", 0)
	want := []string{"b", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("Detect() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Codec != want[i] {
			t.Errorf("Detect()[%d] = %q, want %q", i, got[i].Codec, want[i])
		}
	}

	if top := r.Detect("zz", 2); len(top) != 2 {
		t.Errorf("Detect(top=2) len = %d, want 2", len(top))
	}
}

func TestDetect_Empty(t *testing.T) {
	r := mbase.NewRegistry(newStub("base16lower", 'f'))
	if got := r.Detect("   ", 5); len(got) != 0 {
		t.Errorf("Detect(blank) = %+v, want none", got)
	}
}

func TestDetect_EmitsEvents(t *testing.T) {
	r := mbase.NewRegistry(newStub("base16lower", 'f'))
	got := mbase.Detect(context.Background(), r, "f00", 1)
	if len(got) != 1 {
		t.Errorf("Detect() len = %d, want 1", len(got))
	}
}

// cachedCodec returns the same candidate from every DetectScore call.
type cachedCodec struct {
	*stubCodec
	cached mbase.Candidate
}

func (c *cachedCodec) DetectScore(string) mbase.Candidate { return c.cached }

func TestDetect_DoesNotShareCandidateSlices(t *testing.T) {
	reasons := make([]string, 1, 4)
	reasons[0] = "cached reason"
	c := &cachedCodec{
		stubCodec: newStub("cached", 0),
		cached:    mbase.Candidate{Codec: "cached", Confidence: 0.3, Reasons: reasons, Warnings: []string{}},
	}
	r := mbase.NewRegistry(c)

	got := r.Detect("abcd", 0)
	if len(got) != 1 {
		t.Fatalf("Detect() = %+v, want one candidate", got)
	}
	if n := len(got[0].Reasons); n != 2 {
		t.Fatalf("Reasons = %v, want cached reason plus decode reason", got[0].Reasons)
	}
	got[0].Reasons[0] = "changed"
	if reasons[0] != "cached reason" {
		t.Errorf("cached Reasons[0] = %q, want it untouched", reasons[0])
	}
	if spare := reasons[:2][1]; spare != "" {
		t.Errorf("cached backing array was written: %q", spare)
	}
}
