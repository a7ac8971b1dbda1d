package components

import (
	"github.com/classkit/classkit/pkg/variants"
)

// CardTone represents the visual tone of a card.
type CardTone string

const (
	CardToneDefault CardTone = "default"
	CardToneMuted   CardTone = "muted"
	CardToneAccent  CardTone = "accent"
)

// Card slot names.
const (
	CardSlotRoot  = "root"
	CardSlotTitle = "title"
	CardSlotBody  = "body"
)

var cardSlots = mustSlots(variants.Config{
	Slots: map[string]variants.ClassValue{
		CardSlotRoot:  variants.Class("rounded-lg border bg-white shadow-sm"),
		CardSlotTitle: variants.Class("text-lg font-semibold"),
		CardSlotBody:  variants.Class("text-sm text-gray-600"),
	},
	Variants: variants.Catalog{
		"tone": {
			"default": variants.Class(""),
			"muted":   variants.Class("opacity-75"),
			"accent": variants.SlotMap(map[string]variants.ClassValue{
				CardSlotRoot:  variants.Class("border-blue-500"),
				CardSlotTitle: variants.Class("text-blue-600"),
			}),
		},
		"padded": {
			"true": variants.SlotMap(map[string]variants.ClassValue{
				CardSlotRoot: variants.Class("p-6"),
				CardSlotBody: variants.Class("pt-2"),
			}),
		},
	},
	CompoundVariants: []variants.CompoundVariant{
		{
			Match: variants.Match{"tone": "accent", "padded": true},
			Class: variants.SlotMap(map[string]variants.ClassValue{
				CardSlotRoot: variants.Class("shadow-md"),
			}),
		},
	},
})

// CardOptions defines the configuration options for a card.
type CardOptions struct {
	Tone   CardTone
	Padded bool
}

// Card represents a multi-part card component. Each part resolves its own
// class string from the shared options.
type Card struct {
	options CardOptions
	extra   map[string]string
}

// NewCard creates a new card with the given options.
func NewCard(opts CardOptions) *Card {
	return &Card{options: opts}
}

// WithTone sets the card tone.
func (c *Card) WithTone(tone CardTone) *Card {
	c.options.Tone = tone
	return c
}

// WithPadded sets whether the card carries internal padding.
func (c *Card) WithPadded(padded bool) *Card {
	c.options.Padded = padded
	return c
}

// WithExtraClasses appends caller classes to one slot.
func (c *Card) WithExtraClasses(slot, classes string) *Card {
	if c.extra == nil {
		c.extra = make(map[string]string)
	}
	c.extra[slot] = classes
	return c
}

// RootClasses resolves the class string for the card's outer element.
func (c *Card) RootClasses() string {
	return c.slotClasses(CardSlotRoot)
}

// TitleClasses resolves the class string for the card's title element.
func (c *Card) TitleClasses() string {
	return c.slotClasses(CardSlotTitle)
}

// BodyClasses resolves the class string for the card's body element.
func (c *Card) BodyClasses() string {
	return c.slotClasses(CardSlotBody)
}

func (c *Card) slotClasses(slot string) string {
	resolve, ok := cardSlots()[slot]
	if !ok {
		return ""
	}

	tone := c.options.Tone
	if tone == "" {
		tone = CardToneDefault
	}

	props := variants.NewProps().WithString("tone", string(tone))
	if c.options.Padded {
		props = props.WithBool("padded", true)
	}
	if extra := c.extra[slot]; extra != "" {
		props = props.WithClass(extra)
	}

	return resolve(props)
}
