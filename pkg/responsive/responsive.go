// Package responsive models values that vary per responsive breakpoint.
//
// A Value is either singular (one value for every breakpoint) or
// per-breakpoint (an ordered list of breakpoint/value pairs). The zero Value
// means "absent". Entries keep the order they were supplied in; downstream
// consumers rely on that order when emitting output.
package responsive

// Initial is the reserved base label. It always exists conceptually, is never
// part of a configured breakpoint set, and never receives a selector prefix.
const Initial = "initial"

type valueKind int

const (
	kindZero valueKind = iota
	kindSingular
	kindPerBreakpoint
)

// Entry pairs a breakpoint label with the value that applies at it.
type Entry[V any] struct {
	Breakpoint string
	Value      V
}

// Value is a tagged union: absent, singular, or per-breakpoint.
type Value[V any] struct {
	kind     valueKind
	singular V
	entries  []Entry[V]
}

// Single wraps a plain value that applies at every breakpoint.
func Single[V any](v V) Value[V] {
	return Value[V]{kind: kindSingular, singular: v}
}

// PerBreakpoint builds a value from ordered breakpoint entries.
func PerBreakpoint[V any](entries ...Entry[V]) Value[V] {
	copied := make([]Entry[V], len(entries))
	copy(copied, entries)
	return Value[V]{kind: kindPerBreakpoint, entries: copied}
}

// At constructs a single breakpoint entry.
func At[V any](breakpoint string, v V) Entry[V] {
	return Entry[V]{Breakpoint: breakpoint, Value: v}
}

// IsZero reports whether the value is absent.
func (v Value[V]) IsZero() bool {
	return v.kind == kindZero
}

// IsSingular reports whether the value is a bare singular value.
func (v Value[V]) IsSingular() bool {
	return v.kind == kindSingular
}

// Singular returns the singular value, if any.
func (v Value[V]) Singular() (V, bool) {
	if v.kind != kindSingular {
		var zero V
		return zero, false
	}
	return v.singular, true
}

// Entries returns a copy of the per-breakpoint entries in insertion order.
// Singular and absent values have no entries.
func (v Value[V]) Entries() []Entry[V] {
	if v.kind != kindPerBreakpoint {
		return nil
	}
	copied := make([]Entry[V], len(v.entries))
	copy(copied, v.entries)
	return copied
}

// Map transforms the contained values with fn while preserving shape: a
// singular value stays singular, a per-breakpoint value keeps exactly the
// same ordered label set. Each contained value is transformed independently.
func Map[V, T any](v Value[V], fn func(V) T) Value[T] {
	switch v.kind {
	case kindSingular:
		return Single(fn(v.singular))
	case kindPerBreakpoint:
		entries := make([]Entry[T], len(v.entries))
		for i, entry := range v.entries {
			entries[i] = Entry[T]{Breakpoint: entry.Breakpoint, Value: fn(entry.Value)}
		}
		return Value[T]{kind: kindPerBreakpoint, entries: entries}
	default:
		return Value[T]{}
	}
}
