package variants

import (
	"fmt"
	"strconv"

	"github.com/classkit/classkit/pkg/classes"
	"github.com/classkit/classkit/pkg/responsive"
)

// Resolver turns one resolution request into a class-name string. Resolvers
// are pure: they close over read-only configuration and are safe for
// concurrent use.
type Resolver func(props Props) string

// SlotsFactory returns the per-slot resolvers of a slots-mode configuration.
// The configuration is fixed when the factory is built; each returned
// resolver is then called per render with its own request.
type SlotsFactory func() map[string]Resolver

// resolver holds the shared state behind flat and slot resolvers.
type resolver struct {
	base       ClassValue
	slots      map[string]ClassValue
	variants   Catalog
	compounds  []CompoundVariant
	onComplete func(string) string
}

func (r *resolver) resolveFor(slot string, props Props) string {
	fragments := []string{r.baseFor(slot)}

	for _, entry := range props.entries {
		fragments = append(fragments, r.variantFragments(slot, entry.name, entry.value)...)
	}

	for _, compound := range r.compounds {
		if !compound.Match.matches(props) {
			continue
		}
		if !compound.Class.IsZero() {
			fragments = append(fragments, compound.Class.resolve(slot))
		}
		if !compound.ClassName.IsZero() {
			fragments = append(fragments, compound.ClassName.resolve(slot))
		}
	}

	fragments = append(fragments, props.className, props.class)

	joined := classes.Join(fragments...)
	if r.onComplete != nil {
		return r.onComplete(joined)
	}
	return joined
}

func (r *resolver) baseFor(slot string) string {
	if r.slots != nil {
		payload, ok := r.slots[slot]
		if !ok {
			return ""
		}
		return payload.resolve(slot)
	}
	return r.base.resolve(slot)
}

// variantFragments emits the class fragments one bound variant contributes
// for the given slot. Absent values, unknown variants, and unknown value
// tokens contribute nothing.
func (r *resolver) variantFragments(slot, name string, value Value) []string {
	if value.IsZero() {
		return nil
	}
	values, ok := r.variants[name]
	if !ok {
		return nil
	}

	if token, singular := value.Singular(); singular {
		fragment := r.lookupFragment(values, token, slot)
		if fragment == "" {
			return nil
		}
		return []string{fragment}
	}

	var fragments []string
	for _, entry := range value.Entries() {
		fragment := r.lookupFragment(values, entry.Value, slot)
		if fragment == "" {
			continue
		}
		if entry.Breakpoint != responsive.Initial {
			fragment = classes.Prefix(entry.Breakpoint, fragment)
		}
		fragments = append(fragments, fragment)
	}
	return fragments
}

func (r *resolver) lookupFragment(values map[string]ClassValue, token, slot string) string {
	if token == "" {
		return ""
	}
	payload, ok := values[token]
	if !ok {
		// Unknown value token, silently ignore.
		return ""
	}
	return payload.resolve(slot)
}

// matches reports whether every predicate pair holds against the request.
// Only singular values participate; a responsive value never matches.
func (m Match) matches(props Props) bool {
	for name, expected := range m {
		value, ok := props.Get(name)
		if !ok || value.IsZero() {
			return false
		}
		token, singular := value.Singular()
		if !singular {
			return false
		}
		if !tokenEquals(expected, token) {
			return false
		}
	}
	return true
}

// tokenEquals compares an expected value against a request token both as its
// typed form and its string rendering, so native booleans and their
// "true"/"false" tokens are interchangeable.
func tokenEquals(expected any, token string) bool {
	switch v := expected.(type) {
	case string:
		return v == token
	case bool:
		return strconv.FormatBool(v) == token
	default:
		return fmt.Sprint(v) == token
	}
}
