package variants

import (
	"strconv"

	"github.com/classkit/classkit/pkg/responsive"
)

// Value is a chosen variant value: a value token that may vary per
// breakpoint. The zero Value means the variant is not applied.
type Value = responsive.Value[string]

// String wraps a singular value token.
func String(token string) Value {
	return responsive.Single(token)
}

// Bool wraps a boolean-style variant choice as its "true"/"false" token.
func Bool(b bool) Value {
	return responsive.Single(strconv.FormatBool(b))
}

// Responsive builds a per-breakpoint value from ordered entries.
func Responsive(entries ...responsive.Entry[string]) Value {
	return responsive.PerBreakpoint(entries...)
}

// At pairs a breakpoint label with a value token. Use responsive.Initial for
// the base entry.
func At(breakpoint, token string) responsive.Entry[string] {
	return responsive.At(breakpoint, token)
}

// AtBool pairs a breakpoint label with a boolean choice.
func AtBool(breakpoint string, b bool) responsive.Entry[string] {
	return responsive.At(breakpoint, strconv.FormatBool(b))
}

type propEntry struct {
	name  string
	value Value
}

// Props carries one resolution request: the chosen variant values in
// insertion order, plus optional extra class strings appended after all
// variant and compound fragments. The zero Props resolves to the base alone.
type Props struct {
	entries   []propEntry
	class     string
	className string
}

// NewProps returns an empty request.
func NewProps() Props {
	return Props{}
}

// With binds a variant to a value. Binding the same variant twice replaces
// the earlier value in place, keeping its original position.
func (p Props) With(name string, value Value) Props {
	entries := make([]propEntry, len(p.entries), len(p.entries)+1)
	copy(entries, p.entries)
	p.entries = entries

	for i, entry := range p.entries {
		if entry.name == name {
			p.entries[i].value = value
			return p
		}
	}
	p.entries = append(p.entries, propEntry{name: name, value: value})
	return p
}

// WithString binds a variant to a singular value token.
func (p Props) WithString(name, token string) Props {
	return p.With(name, String(token))
}

// WithBool binds a boolean-style variant.
func (p Props) WithBool(name string, b bool) Props {
	return p.With(name, Bool(b))
}

// WithClass appends an extra class string after every resolved fragment.
func (p Props) WithClass(extra string) Props {
	p.class = extra
	return p
}

// WithClassName appends an extra class string, emitted before the WithClass
// extra.
func (p Props) WithClassName(extra string) Props {
	p.className = extra
	return p
}

// Get returns the bound value for a variant name.
func (p Props) Get(name string) (Value, bool) {
	for _, entry := range p.entries {
		if entry.name == name {
			return entry.value, true
		}
	}
	return Value{}, false
}
