package variants

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classkit/classkit/pkg/responsive"
)

func buttonConfig() Config {
	return Config{
		Base: Class("rounded px-4 py-2"),
		Variants: Catalog{
			"intent": {
				"primary":   Class("bg-blue-500 text-white"),
				"secondary": Class("bg-gray-200 text-gray-800"),
			},
			"size": {
				"sm": Class("text-sm"),
				"lg": Class("text-lg"),
			},
			"disabled": {
				"true": Class("opacity-50 pointer-events-none"),
			},
		},
	}
}

func TestResolveSingularVariant(t *testing.T) {
	t.Parallel()

	resolve, err := New(buttonConfig())
	require.NoError(t, err)

	out := resolve(NewProps().WithString("intent", "primary"))
	assert.Equal(t, "rounded px-4 py-2 bg-blue-500 text-white", out)
}

func TestResolveNoVariantsReturnsBase(t *testing.T) {
	t.Parallel()

	resolve, err := New(buttonConfig())
	require.NoError(t, err)

	assert.Equal(t, "rounded px-4 py-2", resolve(NewProps()))
}

func TestResolveAbsentValueBehavesLikeNoVariants(t *testing.T) {
	t.Parallel()

	resolve, err := New(buttonConfig())
	require.NoError(t, err)

	// A zero Value bound to a variant name means "not applied".
	out := resolve(NewProps().With("intent", Value{}))
	assert.Equal(t, "rounded px-4 py-2", out)
}

func TestResolveEmptyTokenSkipped(t *testing.T) {
	t.Parallel()

	resolve, err := New(buttonConfig())
	require.NoError(t, err)

	out := resolve(NewProps().WithString("intent", ""))
	assert.Equal(t, "rounded px-4 py-2", out)
}

func TestResolveUnknownVariantIgnored(t *testing.T) {
	t.Parallel()

	resolve, err := New(buttonConfig())
	require.NoError(t, err)

	with := resolve(NewProps().WithString("intent", "primary").WithString("elevation", "high"))
	without := resolve(NewProps().WithString("intent", "primary"))
	assert.Equal(t, without, with, "unrecognized variant keys must not change recognized output")
}

func TestResolveUnknownValueTokenIgnored(t *testing.T) {
	t.Parallel()

	resolve, err := New(buttonConfig())
	require.NoError(t, err)

	out := resolve(NewProps().WithString("intent", "tertiary"))
	assert.Equal(t, "rounded px-4 py-2", out)
}

func TestResolveEmptyBaseNoLeadingSpace(t *testing.T) {
	t.Parallel()

	cfg := buttonConfig()
	cfg.Base = ClassValue{}
	resolve, err := New(cfg)
	require.NoError(t, err)

	out := resolve(NewProps().WithString("intent", "primary"))
	assert.Equal(t, "bg-blue-500 text-white", out)
}

func TestResolveBaseTrimmed(t *testing.T) {
	t.Parallel()

	cfg := buttonConfig()
	cfg.Base = Class("  rounded   px-4 py-2  ")
	resolve, err := New(cfg)
	require.NoError(t, err)

	assert.Equal(t, "rounded px-4 py-2", resolve(NewProps()))
}

func TestResolveSequencePayload(t *testing.T) {
	t.Parallel()

	cfg := buttonConfig()
	cfg.Variants["intent"]["primary"] = Classes("bg-blue-500", "text-white")
	resolve, err := New(cfg)
	require.NoError(t, err)

	out := resolve(NewProps().WithString("intent", "primary"))
	assert.Equal(t, "rounded px-4 py-2 bg-blue-500 text-white", out)
}

func TestResolveBooleanVariant(t *testing.T) {
	t.Parallel()

	resolve, err := New(buttonConfig())
	require.NoError(t, err)

	on := resolve(NewProps().WithBool("disabled", true))
	assert.Contains(t, on, "opacity-50")

	off := resolve(NewProps().WithBool("disabled", false))
	assert.NotContains(t, off, "opacity-50")
	assert.Equal(t, "rounded px-4 py-2", off)
}

func TestResolveResponsiveValue(t *testing.T) {
	t.Parallel()

	resolve, err := New(buttonConfig())
	require.NoError(t, err)

	out := resolve(NewProps().With("intent", Responsive(
		At(responsive.Initial, "primary"),
		At("md", "secondary"),
	)))

	assert.Equal(t, "rounded px-4 py-2 bg-blue-500 text-white md:bg-gray-200 md:text-gray-800", out)
}

func TestResolveResponsivePartialMapping(t *testing.T) {
	t.Parallel()

	resolve, err := New(buttonConfig())
	require.NoError(t, err)

	// No initial entry: only the prefixed fragment is emitted.
	out := resolve(NewProps().With("intent", Responsive(At("lg", "secondary"))))
	assert.Equal(t, "rounded px-4 py-2 lg:bg-gray-200 lg:text-gray-800", out)
}

func TestResolveResponsiveUnknownTokenSkipped(t *testing.T) {
	t.Parallel()

	resolve, err := New(buttonConfig())
	require.NoError(t, err)

	out := resolve(NewProps().With("intent", Responsive(
		At(responsive.Initial, "tertiary"),
		At("md", "secondary"),
	)))
	assert.Equal(t, "rounded px-4 py-2 md:bg-gray-200 md:text-gray-800", out)
}

func TestResolveResponsiveBoolean(t *testing.T) {
	t.Parallel()

	resolve, err := New(buttonConfig())
	require.NoError(t, err)

	out := resolve(NewProps().With("disabled", Responsive(
		AtBool(responsive.Initial, true),
		AtBool("md", false),
	)))

	assert.Contains(t, out, "opacity-50")
	assert.NotContains(t, out, "md:opacity-50", "false has no catalog entry and contributes nothing")
}

func TestCompoundVariantMatch(t *testing.T) {
	t.Parallel()

	cfg := buttonConfig()
	cfg.CompoundVariants = []CompoundVariant{
		{
			Match:     Match{"intent": "primary", "size": "lg", "disabled": true},
			ClassName: Class("font-bold"),
		},
	}
	resolve, err := New(cfg)
	require.NoError(t, err)

	hit := resolve(NewProps().
		WithString("intent", "primary").
		WithString("size", "lg").
		WithBool("disabled", true))
	assert.Contains(t, hit, "font-bold")

	miss := resolve(NewProps().
		WithString("intent", "secondary").
		WithString("size", "sm").
		WithBool("disabled", false))
	assert.NotContains(t, miss, "font-bold")
}

func TestCompoundVariantBooleanTokenEquivalence(t *testing.T) {
	t.Parallel()

	cfg := buttonConfig()
	cfg.CompoundVariants = []CompoundVariant{
		{Match: Match{"disabled": "true"}, Class: Class("cursor-not-allowed")},
	}
	resolve, err := New(cfg)
	require.NoError(t, err)

	// The predicate uses the string token; the request uses a native bool.
	out := resolve(NewProps().WithBool("disabled", true))
	assert.Contains(t, out, "cursor-not-allowed")
}

func TestCompoundVariantsAreIndependent(t *testing.T) {
	t.Parallel()

	cfg := buttonConfig()
	cfg.CompoundVariants = []CompoundVariant{
		{Match: Match{"intent": "primary"}, Class: Class("shadow")},
		{Match: Match{"intent": "secondary"}, Class: Class("ring")},
	}
	resolve, err := New(cfg)
	require.NoError(t, err)

	out := resolve(NewProps().WithString("intent", "primary"))
	assert.Contains(t, out, "shadow")
	assert.NotContains(t, out, "ring")
}

func TestCompoundVariantMissingVariantFailsToMatch(t *testing.T) {
	t.Parallel()

	cfg := buttonConfig()
	cfg.CompoundVariants = []CompoundVariant{
		{Match: Match{"intent": "primary", "size": "lg"}, Class: Class("font-bold")},
	}
	resolve, err := New(cfg)
	require.NoError(t, err)

	out := resolve(NewProps().WithString("intent", "primary"))
	assert.NotContains(t, out, "font-bold")
}

func TestCompoundVariantResponsiveValueNeverMatches(t *testing.T) {
	t.Parallel()

	cfg := buttonConfig()
	cfg.CompoundVariants = []CompoundVariant{
		{Match: Match{"intent": "primary"}, Class: Class("shadow")},
	}
	resolve, err := New(cfg)
	require.NoError(t, err)

	out := resolve(NewProps().With("intent", Responsive(At(responsive.Initial, "primary"))))
	assert.NotContains(t, out, "shadow")
}

func TestCompoundVariantClassAndClassNameBothApply(t *testing.T) {
	t.Parallel()

	cfg := buttonConfig()
	cfg.CompoundVariants = []CompoundVariant{
		{
			Match:     Match{"intent": "primary"},
			Class:     Class("from-class"),
			ClassName: Class("from-classname"),
		},
	}
	resolve, err := New(cfg)
	require.NoError(t, err)

	out := resolve(NewProps().WithString("intent", "primary"))
	assert.Contains(t, out, "from-class")
	assert.Contains(t, out, "from-classname")
	assert.Less(t, strings.Index(out, "from-class"), strings.Index(out, "from-classname"))
}

func TestExtraClassAndClassNameOrder(t *testing.T) {
	t.Parallel()

	resolve, err := New(buttonConfig())
	require.NoError(t, err)

	out := resolve(NewProps().WithClassName("extra-classname").WithClass("extra-class"))
	assert.Equal(t, "rounded px-4 py-2 extra-classname extra-class", out)
}

func TestOnCompleteHookReversesTokens(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Base: Class("px-4 py-2 rounded"),
		Variants: Catalog{
			"intent": {"primary": Class("bg-blue-500 text-white")},
			"size":   {"sm": Class("text-sm")},
		},
		OnComplete: func(s string) string {
			tokens := strings.Split(s, " ")
			for i, j := 0, len(tokens)-1; i < j; i, j = i+1, j-1 {
				tokens[i], tokens[j] = tokens[j], tokens[i]
			}
			return strings.Join(tokens, " ")
		},
	}
	resolve, err := New(cfg)
	require.NoError(t, err)

	out := resolve(NewProps().WithString("intent", "primary").WithString("size", "sm"))
	assert.Equal(t, "text-sm text-white bg-blue-500 rounded py-2 px-4", out)
}

func TestConfigHookOverridesEngineHook(t *testing.T) {
	t.Parallel()

	engine := NewEngine(WithOnComplete(strings.ToUpper))

	bound, err := engine.New(Config{Base: Class("rounded")})
	require.NoError(t, err)
	assert.Equal(t, "ROUNDED", bound(NewProps()))

	overridden, err := engine.New(Config{
		Base:       Class("rounded"),
		OnComplete: func(s string) string { return s + " overridden" },
	})
	require.NoError(t, err)
	assert.Equal(t, "rounded overridden", overridden(NewProps()))
}

func TestEngineBreakpoints(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"sm", "md", "lg", "xl"}, NewEngine().Breakpoints())

	custom := NewEngine(WithBreakpoints("tablet", "desktop"))
	assert.Equal(t, []string{"tablet", "desktop"}, custom.Breakpoints())

	labels := custom.Breakpoints()
	labels[0] = "mutated"
	assert.Equal(t, []string{"tablet", "desktop"}, custom.Breakpoints())
}

func TestNewRejectsMalformedConfig(t *testing.T) {
	t.Parallel()

	_, err := New(Config{
		Base:  Class("rounded"),
		Slots: map[string]ClassValue{"root": Class("x")},
	})
	require.Error(t, err)

	_, err = New(Config{
		Base: Class("rounded"),
		Variants: Catalog{
			"intent": {"primary": SlotMap(map[string]ClassValue{"root": Class("x")})},
		},
	})
	require.Error(t, err)

	_, err = New(Config{
		Base:             Class("rounded"),
		CompoundVariants: []CompoundVariant{{Class: Class("x")}},
	})
	require.Error(t, err, "empty match must be rejected")
}

func TestPropsRebindReplacesInPlace(t *testing.T) {
	t.Parallel()

	props := NewProps().
		WithString("intent", "primary").
		WithString("size", "sm").
		WithString("intent", "secondary")

	value, ok := props.Get("intent")
	require.True(t, ok)
	token, _ := value.Singular()
	assert.Equal(t, "secondary", token)

	resolve, err := New(buttonConfig())
	require.NoError(t, err)
	out := resolve(props)
	assert.Equal(t, "rounded px-4 py-2 bg-gray-200 text-gray-800 text-sm", out)
}

func TestPropsBranchingDoesNotAlias(t *testing.T) {
	t.Parallel()

	root := NewProps().WithString("intent", "primary")
	a := root.WithString("size", "sm")
	b := root.WithString("size", "lg")

	resolve, err := New(buttonConfig())
	require.NoError(t, err)

	assert.Contains(t, resolve(a), "text-sm")
	assert.Contains(t, resolve(b), "text-lg")
	assert.NotContains(t, resolve(a), "text-lg")
}
