// Package normalization canonicalizes free-form configuration strings into
// typed enumerations.
package normalization

import (
	"fmt"
	"sort"
	"strings"
)

// Normalizer maps trimmed, case-folded strings onto enum values of type T.
type Normalizer[T comparable] struct {
	name   string
	values map[string]T
	keys   []string
}

// New builds a normalizer for the enum called name. Keys of values are
// folded the same way input is.
func New[T comparable](name string, values map[string]T) *Normalizer[T] {
	n := &Normalizer[T]{name: name, values: make(map[string]T, len(values))}
	for k, v := range values {
		key := fold(k)
		n.values[key] = v
		n.keys = append(n.keys, key)
	}
	sort.Strings(n.keys)
	return n
}

// Lookup returns the enum value for raw, if any.
func (n *Normalizer[T]) Lookup(raw string) (T, bool) {
	v, ok := n.values[fold(raw)]
	return v, ok
}

// Normalize returns the enum value for raw, or def when raw is unknown.
func (n *Normalizer[T]) Normalize(raw string, def T) T {
	if v, ok := n.Lookup(raw); ok {
		return v
	}
	return def
}

// Parse is Lookup with an error naming the accepted values.
func (n *Normalizer[T]) Parse(raw string) (T, error) {
	if v, ok := n.Lookup(raw); ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid %s %q, valid options: %s", n.name, raw, strings.Join(n.keys, ", "))
}

// Keys lists the accepted spellings, sorted.
func (n *Normalizer[T]) Keys() []string {
	out := make([]string, len(n.keys))
	copy(out, n.keys)
	return out
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
