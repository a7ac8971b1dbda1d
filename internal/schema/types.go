package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/classkit/classkit/pkg/variants"
)

// Document represents a variant definition file: a named set of components,
// each carrying its own variant catalog, plus the breakpoint labels the file
// may reference.
type Document struct {
	Version     string               `yaml:"version" validate:"required,semver"`
	Name        string               `yaml:"name" validate:"required,min=1,max=100"`
	Description string               `yaml:"description,omitempty"`
	Breakpoints []string             `yaml:"breakpoints,omitempty"`
	Components  map[string]Component `yaml:"components" validate:"required,min=1"`
}

// Component declares one resolvable component: a flat base or a slot set,
// variants, and compound rules.
type Component struct {
	Base             *Payload                      `yaml:"base,omitempty"`
	Slots            map[string]Payload            `yaml:"slots,omitempty"`
	Variants         map[string]map[string]Payload `yaml:"variants,omitempty"`
	CompoundVariants []CompoundRule                `yaml:"compound_variants,omitempty"`
}

// CompoundRule is the authoring form of a compound variant. Match values are
// kept as string tokens; boolean scalars decode to "true"/"false".
type CompoundRule struct {
	Match     map[string]string `yaml:"match"`
	Class     *Payload          `yaml:"class,omitempty"`
	ClassName *Payload          `yaml:"className,omitempty"`
}

// Payload is the YAML counterpart of variants.ClassValue. Its shape is
// decided once while decoding: a scalar becomes a literal class string, a
// sequence becomes an ordered list, and a mapping becomes a slot map whose
// entries are themselves scalars or sequences.
type Payload struct {
	value variants.ClassValue
}

// UnmarshalYAML discriminates the payload shape from the node kind.
func (p *Payload) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		p.value = variants.Class(s)
		return nil

	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		p.value = variants.Classes(items...)
		return nil

	case yaml.MappingNode:
		slots := make(map[string]variants.ClassValue, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			value := node.Content[i+1]

			var slot string
			if err := key.Decode(&slot); err != nil {
				return err
			}

			switch value.Kind {
			case yaml.ScalarNode:
				var s string
				if err := value.Decode(&s); err != nil {
					return err
				}
				slots[slot] = variants.Class(s)
			case yaml.SequenceNode:
				var items []string
				if err := value.Decode(&items); err != nil {
					return err
				}
				slots[slot] = variants.Classes(items...)
			default:
				return fmt.Errorf("line %d: slot %q payload must be a string or a list", value.Line, slot)
			}
		}
		p.value = variants.SlotMap(slots)
		return nil

	default:
		return fmt.Errorf("line %d: class payload must be a string, list, or slot mapping", node.Line)
	}
}

// ClassValue returns the decoded payload. A nil Payload yields the zero
// ClassValue.
func (p *Payload) ClassValue() variants.ClassValue {
	if p == nil {
		return variants.ClassValue{}
	}
	return p.value
}

// BreakpointLabels returns the document's declared breakpoint set, falling
// back to the engine default when none is declared.
func (d *Document) BreakpointLabels() []string {
	if len(d.Breakpoints) > 0 {
		return append([]string(nil), d.Breakpoints...)
	}
	return variants.DefaultBreakpoints()
}

// HasBreakpoint reports whether the label belongs to the document's
// breakpoint set.
func (d *Document) HasBreakpoint(label string) bool {
	for _, known := range d.BreakpointLabels() {
		if known == label {
			return true
		}
	}
	return false
}

// Config assembles the variants.Config for a named component, ready for
// variants.New or variants.NewSlots depending on IsSlots.
func (d *Document) Config(component string) (variants.Config, error) {
	c, ok := d.Components[component]
	if !ok {
		return variants.Config{}, fmt.Errorf("unknown component %q", component)
	}
	return c.Config(), nil
}

// IsSlots reports whether the named component is a multi-part component.
func (d *Document) IsSlots(component string) bool {
	c, ok := d.Components[component]
	return ok && len(c.Slots) > 0
}

// Config converts the authored component into an engine configuration.
func (c Component) Config() variants.Config {
	cfg := variants.Config{
		Base: c.Base.ClassValue(),
	}

	if len(c.Slots) > 0 {
		cfg.Slots = make(map[string]variants.ClassValue, len(c.Slots))
		for slot, payload := range c.Slots {
			p := payload
			cfg.Slots[slot] = p.ClassValue()
		}
	}

	if len(c.Variants) > 0 {
		cfg.Variants = make(variants.Catalog, len(c.Variants))
		for name, values := range c.Variants {
			tokens := make(map[string]variants.ClassValue, len(values))
			for token, payload := range values {
				p := payload
				tokens[token] = p.ClassValue()
			}
			cfg.Variants[name] = tokens
		}
	}

	for _, rule := range c.CompoundVariants {
		compound := variants.CompoundVariant{
			Match:     make(variants.Match, len(rule.Match)),
			Class:     rule.Class.ClassValue(),
			ClassName: rule.ClassName.ClassValue(),
		}
		for name, token := range rule.Match {
			compound.Match[name] = token
		}
		cfg.CompoundVariants = append(cfg.CompoundVariants, compound)
	}

	return cfg
}
