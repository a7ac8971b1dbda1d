package components

import (
	"github.com/classkit/classkit/pkg/variants"
)

// ButtonIntent represents the button color treatment.
type ButtonIntent string

const (
	ButtonIntentPrimary   ButtonIntent = "primary"
	ButtonIntentSecondary ButtonIntent = "secondary"
	ButtonIntentDanger    ButtonIntent = "danger"
)

// ButtonSize represents different button sizes.
type ButtonSize string

const (
	ButtonSizeSmall  ButtonSize = "sm"
	ButtonSizeMedium ButtonSize = "md"
	ButtonSizeLarge  ButtonSize = "lg"
)

var buttonClasses = mustResolver(variants.Config{
	Base: variants.Class("inline-flex items-center justify-center rounded font-medium"),
	Variants: variants.Catalog{
		"intent": {
			"primary":   variants.Class("bg-blue-600 text-white hover:bg-blue-700"),
			"secondary": variants.Class("bg-gray-100 text-gray-900 hover:bg-gray-200"),
			"danger":    variants.Class("bg-red-600 text-white hover:bg-red-700"),
		},
		"size": {
			"sm": variants.Class("px-3 py-1.5 text-sm"),
			"md": variants.Class("px-4 py-2 text-base"),
			"lg": variants.Class("px-6 py-3 text-lg"),
		},
		"disabled": {
			"true": variants.Class("opacity-50 pointer-events-none"),
		},
		"fullWidth": {
			"true": variants.Class("w-full"),
		},
	},
	CompoundVariants: []variants.CompoundVariant{
		{
			Match: variants.Match{"intent": "danger", "size": "lg"},
			Class: variants.Class("uppercase tracking-wide"),
		},
	},
})

// ButtonOptions defines the configuration options for a button.
type ButtonOptions struct {
	Intent   ButtonIntent
	Size     ButtonSize
	Disabled bool
	// FullWidthFrom makes the button stretch starting at the given
	// breakpoint label. Empty means never.
	FullWidthFrom string
}

// Button represents a clickable button component.
type Button struct {
	options ButtonOptions
	extra   string
}

// NewButton creates a new button with the given options.
func NewButton(opts ButtonOptions) *Button {
	return &Button{options: opts}
}

// SimpleButton creates a button with sensible defaults.
func SimpleButton() *Button {
	return NewButton(ButtonOptions{
		Intent: ButtonIntentPrimary,
		Size:   ButtonSizeMedium,
	})
}

// WithIntent sets the button intent.
func (b *Button) WithIntent(intent ButtonIntent) *Button {
	b.options.Intent = intent
	return b
}

// WithSize sets the button size.
func (b *Button) WithSize(size ButtonSize) *Button {
	b.options.Size = size
	return b
}

// WithDisabled sets the button disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.options.Disabled = disabled
	return b
}

// WithFullWidthFrom stretches the button from the given breakpoint up.
func (b *Button) WithFullWidthFrom(breakpoint string) *Button {
	b.options.FullWidthFrom = breakpoint
	return b
}

// WithExtraClasses appends caller classes after all generated ones.
func (b *Button) WithExtraClasses(classes string) *Button {
	b.extra = classes
	return b
}

// Classes resolves the button's class string from its current options.
func (b *Button) Classes() string {
	intent := b.options.Intent
	if intent == "" {
		intent = ButtonIntentPrimary
	}
	size := b.options.Size
	if size == "" {
		size = ButtonSizeMedium
	}

	props := variants.NewProps().
		WithString("intent", string(intent)).
		WithString("size", string(size))

	if b.options.Disabled {
		props = props.WithBool("disabled", true)
	}
	if b.options.FullWidthFrom != "" {
		props = props.With("fullWidth", variants.Responsive(variants.At(b.options.FullWidthFrom, "true")))
	}
	if b.extra != "" {
		props = props.WithClass(b.extra)
	}

	return buttonClasses(props)
}
