package xml

import (
	"reflect"
	"strings"
	"testing"

	"github.com/zoobzio/mbase"
)

func TestNew(t *testing.T) {
	r := New()
	if r == nil {
		t.Error("New() should return non-nil renderer")
	}
}

func TestContentType(t *testing.T) {
	r := New()
	if r.ContentType() != "application/xml" {
		t.Errorf("ContentType() = %q, want %q", r.ContentType(), "application/xml")
	}
}

func TestCandidateRoundTrip(t *testing.T) {
	r := New()
	original := mbase.Candidate{
		Codec:      "base58btc",
		Confidence: 0.95,
		Reasons:    []string{"multibase prefix 'z'", "decodes successfully"},
		Warnings:   []string{"could be base58flickr"},
	}

	data, err := r.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored mbase.Candidate
	if err := r.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if !reflect.DeepEqual(restored, original) {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	r := New()

	var v mbase.Candidate
	if err := r.Unmarshal([]byte("<Candidate><codec>"), &v); err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}

func TestMarshalHeader(t *testing.T) {
	r := New()

	data, err := r.Marshal(mbase.NewCandidate("base64"))
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !strings.HasPrefix(string(data), "<?xml") {
		t.Errorf("Marshal() = %q, want an XML declaration first", data)
	}
}
