package json

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
)

type testStruct struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func TestNew(t *testing.T) {
	r := New()
	if r == nil {
		t.Error("New() should return non-nil renderer")
	}
}

func TestContentType(t *testing.T) {
	r := New()
	if r.ContentType() != "application/json" {
		t.Errorf("ContentType() = %q, want %q", r.ContentType(), "application/json")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	r := New()
	original := testStruct{Name: "test", Value: 42}

	data, err := r.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	want := "{\n  \"name\": \"test\",\n  \"value\": 42\n}"
	if string(data) != want {
		t.Errorf("Marshal() = %q, want %q", data, want)
	}

	var restored testStruct
	if err := r.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if restored != original {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
}

func TestMarshalNil(t *testing.T) {
	r := New()

	data, err := r.Marshal(nil)
	if err != nil {
		t.Fatalf("Marshal(nil) error: %v", err)
	}
	if string(data) != "null" {
		t.Errorf("Marshal(nil) = %q, want %q", data, "null")
	}
}

func TestNewColor(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = saved })

	r := NewColor()

	data, err := r.Marshal(testStruct{Name: "test", Value: 42})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !bytes.Contains(data, []byte("\x1b[")) {
		t.Errorf("Marshal() = %q, want ANSI colour escapes", data)
	}
	if !bytes.Contains(data, []byte("test")) {
		t.Errorf("Marshal() = %q, want the field value", data)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	r := New()

	var v struct{}
	if err := r.Unmarshal([]byte("invalid json"), &v); err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}
