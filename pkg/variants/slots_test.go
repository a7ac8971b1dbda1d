package variants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classkit/classkit/pkg/responsive"
)

func cardConfig() Config {
	return Config{
		Slots: map[string]ClassValue{
			"root":  Class("rounded border"),
			"title": Class("font-bold"),
			"body":  Class("text-sm"),
		},
		Variants: Catalog{
			"tone": {
				// Global payload: every slot emits it.
				"muted": Class("opacity-75"),
				// Slot-targeted payload: only the named slots emit it.
				"accent": SlotMap(map[string]ClassValue{
					"root":  Class("border-blue-500"),
					"title": Class("text-blue-600"),
				}),
			},
			"padded": {
				"true": SlotMap(map[string]ClassValue{
					"root": Class("p-4"),
				}),
			},
		},
	}
}

func mustSlots(t *testing.T, cfg Config) map[string]Resolver {
	t.Helper()
	factory, err := NewSlots(cfg)
	require.NoError(t, err)
	return factory()
}

func TestSlotsBasePerSlot(t *testing.T) {
	t.Parallel()

	slots := mustSlots(t, cardConfig())
	require.Contains(t, slots, "root")
	require.Contains(t, slots, "title")
	require.Contains(t, slots, "body")

	assert.Equal(t, "rounded border", slots["root"](NewProps()))
	assert.Equal(t, "font-bold", slots["title"](NewProps()))
}

func TestSlotsGlobalPayloadEmittedByEverySlot(t *testing.T) {
	t.Parallel()

	slots := mustSlots(t, cardConfig())
	props := NewProps().WithString("tone", "muted")

	assert.Contains(t, slots["root"](props), "opacity-75")
	assert.Contains(t, slots["title"](props), "opacity-75")
	assert.Contains(t, slots["body"](props), "opacity-75")
}

func TestSlotsTargetedPayloadIsolated(t *testing.T) {
	t.Parallel()

	slots := mustSlots(t, cardConfig())
	props := NewProps().WithString("tone", "accent")

	assert.Contains(t, slots["root"](props), "border-blue-500")
	assert.Contains(t, slots["title"](props), "text-blue-600")

	body := slots["body"](props)
	assert.NotContains(t, body, "border-blue-500")
	assert.NotContains(t, body, "text-blue-600")
	assert.Equal(t, "text-sm", body)
}

func TestSlotsBooleanTargetedVariant(t *testing.T) {
	t.Parallel()

	slots := mustSlots(t, cardConfig())
	props := NewProps().WithBool("padded", true)

	assert.Contains(t, slots["root"](props), "p-4")
	assert.NotContains(t, slots["title"](props), "p-4")
}

func TestSlotsIndependentRequests(t *testing.T) {
	t.Parallel()

	slots := mustSlots(t, cardConfig())

	// Slots are not required to be invoked with identical props.
	root := slots["root"](NewProps().WithString("tone", "accent"))
	title := slots["title"](NewProps())

	assert.Contains(t, root, "border-blue-500")
	assert.Equal(t, "font-bold", title)
}

func TestSlotsCompoundPayloadShapes(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Slots: map[string]ClassValue{
			"root":  Class("rounded"),
			"title": Class("font-bold"),
		},
		Variants: Catalog{
			"variant": {"primary": Class("text-white")},
		},
		CompoundVariants: []CompoundVariant{
			{
				Match: Match{"variant": "primary"},
				Class: SlotMap(map[string]ClassValue{
					"root": Class("bg-blue-500"),
				}),
				ClassName: SlotMap(map[string]ClassValue{
					"root": Class("from-classname-root"),
				}),
			},
		},
	}
	slots := mustSlots(t, cfg)

	root := slots["root"](NewProps().WithString("variant", "primary"))
	assert.Contains(t, root, "bg-blue-500")
	assert.Contains(t, root, "from-classname-root")

	title := slots["title"](NewProps().WithString("variant", "primary"))
	assert.NotContains(t, title, "bg-blue-500")
	assert.NotContains(t, title, "from-classname-root")
}

func TestSlotsCompoundGlobalPayloadAppliesEverywhere(t *testing.T) {
	t.Parallel()

	cfg := cardConfig()
	cfg.CompoundVariants = []CompoundVariant{
		{Match: Match{"tone": "muted"}, Class: Class("select-none")},
	}
	slots := mustSlots(t, cfg)
	props := NewProps().WithString("tone", "muted")

	assert.Contains(t, slots["root"](props), "select-none")
	assert.Contains(t, slots["body"](props), "select-none")
}

func TestSlotsResponsiveTargetedVariant(t *testing.T) {
	t.Parallel()

	slots := mustSlots(t, cardConfig())
	props := NewProps().With("tone", Responsive(
		At(responsive.Initial, "muted"),
		At("lg", "accent"),
	))

	root := slots["root"](props)
	assert.Contains(t, root, "opacity-75")
	assert.Contains(t, root, "lg:border-blue-500")

	// accent has no body entry, so body gets only the global fragment.
	body := slots["body"](props)
	assert.Contains(t, body, "opacity-75")
	assert.NotContains(t, body, "lg:")
}

func TestSlotsSequenceBase(t *testing.T) {
	t.Parallel()

	cfg := cardConfig()
	cfg.Slots["root"] = Classes("rounded", "border")
	slots := mustSlots(t, cfg)

	assert.Equal(t, "rounded border", slots["root"](NewProps()))
}

func TestSlotsHookAppliedPerResolverCall(t *testing.T) {
	t.Parallel()

	cfg := cardConfig()
	cfg.OnComplete = func(s string) string { return s + " hooked" }
	slots := mustSlots(t, cfg)

	assert.Equal(t, "rounded border hooked", slots["root"](NewProps()))
	assert.Equal(t, "font-bold hooked", slots["title"](NewProps()))
}

func TestNewSlotsRejectsMalformedConfig(t *testing.T) {
	t.Parallel()

	_, err := NewSlots(Config{})
	require.Error(t, err, "slots mode requires at least one slot")

	_, err = NewSlots(Config{
		Base:  Class("rounded"),
		Slots: map[string]ClassValue{"root": Class("x")},
	})
	require.Error(t, err, "flat base is rejected in slots mode")

	_, err = NewSlots(Config{
		Slots: map[string]ClassValue{"root": Class("x")},
		Variants: Catalog{
			"tone": {"muted": SlotMap(map[string]ClassValue{"header": Class("y")})},
		},
	})
	require.Error(t, err, "payloads must reference declared slots")

	_, err = NewSlots(Config{
		Slots: map[string]ClassValue{
			"root": SlotMap(map[string]ClassValue{"root": Class("x")}),
		},
	})
	require.Error(t, err, "slot bases cannot be slot maps")

	_, err = NewSlots(Config{
		Slots: map[string]ClassValue{"root": Class("x")},
		Variants: Catalog{
			"tone": {"muted": SlotMap(map[string]ClassValue{
				"root": SlotMap(map[string]ClassValue{"root": Class("y")}),
			})},
		},
	})
	require.Error(t, err, "nested slot maps are rejected")
}
