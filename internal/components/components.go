// Package components provides ready-made class-string components built on
// the variants engine. Each component owns a static configuration and
// exposes fluent option setters that map onto variant props.
package components

import (
	"github.com/classkit/classkit/pkg/variants"
)

// mustResolver builds a resolver from a static configuration. The
// configurations in this package are compile-time constants, so a failure
// here is a programming error.
func mustResolver(cfg variants.Config) variants.Resolver {
	resolve, err := variants.New(cfg)
	if err != nil {
		panic(err)
	}
	return resolve
}

// mustSlots is the slot-mode counterpart of mustResolver.
func mustSlots(cfg variants.Config) variants.SlotsFactory {
	factory, err := variants.NewSlots(cfg)
	if err != nil {
		panic(err)
	}
	return factory
}
