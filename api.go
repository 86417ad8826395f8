// Package mbase provides a multi-format binary-to-text codec engine.
//
// Every format implements one small Codec capability: Meta, Encode, Decode,
// and DetectScore. Codecs are grouped into families by algorithm shape and
// collected into an immutable Registry that resolves names, aliases, and
// multibase prefixes.
//
// # Modes
//
// Decoding runs under one of two modes:
//
//   - strict: the exact canonical form is required
//   - lenient: ASCII whitespace is stripped, case is folded for codecs with
//     a canonical case, and each codec applies its own documented repairs
//     (padding, confusable glyphs, wrappers)
//
// Anything strict accepts, lenient accepts identically.
//
// # Basic Usage
//
//	reg := catalog.Default()
//	c, _ := reg.Get("base58btc")
//
//	text, _ := mbase.Encode(ctx, c, []byte("hello"))
//	data, _ := mbase.Decode(ctx, c, text, mbase.ModeStrict)
//
// # Detection
//
// Detect ranks the registry's codecs for unlabeled text:
//
//	for _, cand := range mbase.Detect(ctx, reg, "zJxF12TrwUP45BMd", 5) {
//	    fmt.Println(cand.Codec, cand.Confidence)
//	}
//
// A leading multibase prefix short-circuits to a near-certain candidate;
// otherwise each codec's heuristic and a lenient trial decode are merged.
//
// # Explain
//
// Explain turns one decode failure into a positioned diagnostic with
// suggested fixes:
//
//	exp, _ := mbase.Explain(ctx, reg, "base16lower", "48656c6c6", mbase.ModeStrict)
//	// exp.Suggestions: ["hex input has odd length; a character may be missing"]
//
// # Errors
//
// Failures are typed errors that unwrap to sentinels (ErrInvalidCharacter,
// ErrInvalidLength, ErrChecksumMismatch, ...). KindOf classifies an error
// and ExitCode maps it to a process exit status.
//
// # Events
//
// The context-aware functions in this file emit capitan signals around
// each operation. Codec methods themselves are pure and never emit.
package mbase

import (
	"context"
	"time"
)

// Encode renders data with c, emitting encode lifecycle events.
func Encode(ctx context.Context, c Codec, data []byte) (string, error) {
	name := c.Meta().Name
	emitEncodeStart(ctx, name, len(data))
	start := time.Now()

	text, err := c.Encode(data)

	emitEncodeComplete(ctx, name, len(text), time.Since(start), err)
	if err != nil {
		return "", err
	}
	return text, nil
}

// Decode parses text with c under mode, emitting decode lifecycle events.
func Decode(ctx context.Context, c Codec, text string, mode Mode) ([]byte, error) {
	name := c.Meta().Name
	emitDecodeStart(ctx, name, mode)
	start := time.Now()

	data, err := c.Decode(text, mode)

	emitDecodeComplete(ctx, name, mode, len(data), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Detect ranks r's codecs for text, emitting detection lifecycle events.
// See Registry.Detect.
func Detect(ctx context.Context, r *Registry, text string, top int) []Candidate {
	emitDetectStart(ctx, len(text))
	start := time.Now()

	candidates := r.Detect(text, top)

	emitDetectComplete(ctx, len(text), len(candidates), time.Since(start))
	return candidates
}

// Explain diagnoses a decode of text by the named codec.
// See Registry.Explain.
func Explain(ctx context.Context, r *Registry, name, text string, mode Mode) (Explanation, error) {
	start := time.Now()

	exp, err := r.Explain(name, text, mode)

	emitExplainComplete(ctx, name, mode, time.Since(start), err)
	return exp, err
}
