package integration

import (
	"context"
	"strings"
	"testing"

	"github.com/zoobzio/mbase"
	"github.com/zoobzio/mbase/catalog"
	mbasetest "github.com/zoobzio/mbase/testing"
)

func TestRoundTrip_AllCodecs(t *testing.T) {
	for _, c := range catalog.Codecs() {
		name := c.Meta().Name
		if _, ok := mbasetest.TextSample(name); ok {
			continue
		}
		t.Run(name, func(t *testing.T) {
			for _, p := range mbasetest.Payloads() {
				if !mbasetest.AcceptsLength(name, len(p.Data)) {
					continue
				}
				t.Run(p.Name, func(t *testing.T) {
					mbasetest.RoundTrip(t, c, p.Data)
				})
			}
		})
	}
}

func TestRoundTrip_TextCodecs(t *testing.T) {
	for _, c := range catalog.Codecs() {
		name := c.Meta().Name
		sample, ok := mbasetest.TextSample(name)
		if !ok {
			continue
		}
		t.Run(name, func(t *testing.T) {
			mbasetest.RoundTrip(t, c, []byte(sample))
		})
	}
}

func TestRoundTrip_ContextAPI(t *testing.T) {
	ctx := context.Background()
	c, err := catalog.Get("base58btc")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}

	text, err := mbase.Encode(ctx, c, []byte("hello world"))
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	got, err := mbase.Decode(ctx, c, text, mbase.ModeStrict)
	if err != nil || string(got) != "hello world" {
		t.Errorf("Decode(%q) = %q, %v", text, got, err)
	}
}

func TestConvert_ThroughBytes(t *testing.T) {
	data := []byte("multi-format")
	from, _ := catalog.Get("base32lower")
	to, _ := catalog.Get("z85")

	b32, err := from.Encode(data)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	raw, err := from.Decode(b32, mbase.ModeStrict)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	z, err := to.Encode(raw)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	back, err := to.Decode(z, mbase.ModeStrict)
	if err != nil || string(back) != string(data) {
		t.Errorf("conversion lost data: %q, %v", back, err)
	}
}

func TestDetect_MultibaseEncodings(t *testing.T) {
	r := catalog.Default()
	data := []byte("hello world")
	for _, c := range r.Codecs() {
		meta := c.Meta()
		if !meta.HasPrefix() {
			continue
		}
		t.Run(meta.Name, func(t *testing.T) {
			text, err := c.Encode(data)
			if err != nil {
				t.Fatalf("Encode() error: %v", err)
			}
			got := mbase.Detect(context.Background(), r, string(meta.Prefix)+text, 0)
			for _, c := range got {
				if c.Codec == meta.Name {
					if c.Confidence != 1.0 {
						t.Errorf("confidence = %v, want 1.0", c.Confidence)
					}
					return
				}
			}
			t.Errorf("Detect() = %+v, missing %s", got, meta.Name)
		})
	}
}

func TestExplain_EveryCodecAcceptsItsOwnOutput(t *testing.T) {
	r := catalog.Default()
	for _, c := range r.Codecs() {
		name := c.Meta().Name
		data := []byte("hello world!!!!!")
		if sample, ok := mbasetest.TextSample(name); ok {
			data = []byte(sample)
		}
		text, err := c.Encode(data)
		if err != nil {
			t.Errorf("%s: Encode() error: %v", name, err)
			continue
		}
		if strings.TrimSpace(text) != text {
			continue
		}
		exp, err := r.Explain(name, text, mbase.ModeStrict)
		if err != nil {
			t.Errorf("%s: Explain() error: %v", name, err)
			continue
		}
		if !exp.Valid {
			t.Errorf("%s: Explain(%q) invalid: %+v", name, text, exp.Error)
		}
	}
}
