package mbase

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Confidences synthesized by the detection engine itself.
const (
	confidencePrefix      = 0.98
	confidencePrefixValid = 1.0
	confidenceDecodable   = 0.5
)

// previewRunes bounds the text echoed back in detection and explain results.
const previewRunes = 60

// Preview returns at most the first 60 scalars of text, with "..." appended
// when anything was cut.
func Preview(text string) string {
	if utf8.RuneCountInString(text) <= previewRunes {
		return text
	}
	n := 0
	for i := range text {
		if n == previewRunes {
			return text[:i] + "..."
		}
		n++
	}
	return text
}

// Detect ranks the registered codecs by how plausibly they produced text.
// Results are sorted by descending confidence with ties broken by
// registration order; top <= 0 returns every candidate with nonzero
// confidence. Per-codec failures never surface: a codec that cannot make
// sense of the text simply drops out.
func (r *Registry) Detect(text string, top int) []Candidate {
	trimmed := strings.TrimSpace(text)
	slots := make([]*Candidate, len(r.codecs))

	offer := func(idx int, c Candidate) {
		if c.Confidence <= 0 {
			return
		}
		if cur := slots[idx]; cur != nil && cur.Confidence >= c.Confidence {
			return
		}
		c.Codec = r.metas[idx].Name
		slots[idx] = &c
	}

	if first, size := utf8.DecodeRuneInString(trimmed); size > 0 {
		if idx, ok := r.prefixes[first]; ok {
			c := NewCandidate(r.metas[idx].Name)
			c.Set(confidencePrefix, fmt.Sprintf("multibase prefix '%c' detected", first))
			if Validate(r.codecs[idx], trimmed[size:], ModeLenient) == nil {
				c.Set(confidencePrefixValid, "valid after removing prefix")
			}
			offer(idx, c)
		}
	}

	for idx, codec := range r.codecs {
		score := codec.DetectScore(trimmed).Clone()
		if cur := slots[idx]; cur != nil && cur.Confidence > score.Confidence {
			continue
		}
		if trimmed != "" {
			if _, err := codec.Decode(trimmed, ModeLenient); err == nil {
				if score.Confidence < confidenceDecodable {
					score.Confidence = confidenceDecodable
				}
				if !mentionsDecode(score.Reasons) {
					score.Reasons = append(score.Reasons, "decodes successfully")
				}
			}
		}
		offer(idx, score)
	}

	out := make([]Candidate, 0, len(slots))
	for _, c := range slots {
		if c != nil {
			out = append(out, *c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence > out[j].Confidence
	})
	if top > 0 && len(out) > top {
		out = out[:top]
	}
	return out
}

func mentionsDecode(reasons []string) bool {
	for _, r := range reasons {
		if strings.Contains(r, "decode") {
			return true
		}
	}
	return false
}
