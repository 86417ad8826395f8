package mbase

import (
	"fmt"
	"strings"
)

// Registry is an immutable catalog of codecs in registration order.
// It is safe for concurrent reads; nothing mutates it after NewRegistry.
type Registry struct {
	codecs   []Codec
	metas    []Metadata
	names    map[string]int
	prefixes map[rune]int
}

// NewRegistry builds a registry from codecs in the given order.
// Order matters: it breaks ties in detection ranking.
//
// A name, alias, or multibase prefix claimed twice is a catalog bug, so
// NewRegistry panics instead of returning an error.
func NewRegistry(codecs ...Codec) *Registry {
	r := &Registry{
		codecs:   make([]Codec, 0, len(codecs)),
		metas:    make([]Metadata, 0, len(codecs)),
		names:    make(map[string]int),
		prefixes: make(map[rune]int),
	}
	for _, c := range codecs {
		meta := c.Meta()
		idx := len(r.codecs)

		for _, name := range append([]string{meta.Name}, meta.Aliases...) {
			if prev, dup := r.names[name]; dup && prev != idx {
				panic(fmt.Errorf("%w: %q claimed by %s and %s",
					ErrDuplicateName, name, r.metas[prev].Name, meta.Name))
			}
			r.names[name] = idx
		}

		if meta.HasPrefix() {
			if prev, dup := r.prefixes[meta.Prefix]; dup {
				panic(fmt.Errorf("%w: '%c' claimed by %s and %s",
					ErrDuplicatePrefix, meta.Prefix, r.metas[prev].Name, meta.Name))
			}
			r.prefixes[meta.Prefix] = idx
		}

		r.codecs = append(r.codecs, c)
		r.metas = append(r.metas, meta)
	}
	return r
}

// Get resolves a canonical name or alias. The exact spelling is tried
// first so upper-case aliases (B32, HEX) reach their own codec, then the
// lower-cased form.
func (r *Registry) Get(name string) (Codec, error) {
	if idx, ok := r.names[name]; ok {
		return r.codecs[idx], nil
	}
	if idx, ok := r.names[strings.ToLower(name)]; ok {
		return r.codecs[idx], nil
	}
	return nil, NewUnsupportedError(name)
}

// ByPrefix returns the codec claiming multibase prefix p.
func (r *Registry) ByPrefix(p rune) (Codec, bool) {
	idx, ok := r.prefixes[p]
	if !ok {
		return nil, false
	}
	return r.codecs[idx], true
}

// List returns every codec's metadata in registration order.
func (r *Registry) List() []Metadata {
	out := make([]Metadata, len(r.metas))
	for i, m := range r.metas {
		out[i] = m.Clone()
	}
	return out
}

// Codecs returns the codecs in registration order.
func (r *Registry) Codecs() []Codec {
	out := make([]Codec, len(r.codecs))
	copy(out, r.codecs)
	return out
}

// MultibaseMap returns prefix → canonical name for every prefixed codec.
func (r *Registry) MultibaseMap() map[rune]string {
	out := make(map[rune]string, len(r.prefixes))
	for p, idx := range r.prefixes {
		out[p] = r.metas[idx].Name
	}
	return out
}

// Len returns the number of registered codecs.
func (r *Registry) Len() int {
	return len(r.codecs)
}

