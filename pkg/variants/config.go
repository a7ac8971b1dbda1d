package variants

import (
	"fmt"
	"sort"

	"github.com/classkit/classkit/pkg/errors"
)

// Catalog maps variant name → value token → class payload. Boolean-style
// variants use the literal tokens "true" and "false".
type Catalog map[string]map[string]ClassValue

// Match is a conjunctive predicate over variant name → expected value. An
// expected value may be a string token or a native bool; comparison accepts
// either form.
type Match map[string]any

// CompoundVariant contributes extra classes when every pair of its Match
// predicate holds. Class and ClassName are both applied when set, Class
// first. Rules are independent; all matching rules contribute.
type CompoundVariant struct {
	Match     Match
	Class     ClassValue
	ClassName ClassValue
}

// Config describes one resolver: a flat base or a set of named slots, the
// variant catalog, compound rules, and an optional hook applied to the final
// joined string. Configs are read-only once handed to a constructor.
type Config struct {
	Base             ClassValue
	Slots            map[string]ClassValue
	Variants         Catalog
	CompoundVariants []CompoundVariant
	OnComplete       func(string) string
}

func validateFlat(cfg Config) error {
	if len(cfg.Slots) > 0 {
		return errors.NewValidationError("slots", "flat resolver cannot declare slots; use NewSlots", nil)
	}
	if cfg.Base.isSlotMap() {
		return errors.NewValidationError("base", "flat base cannot be a slot map", nil)
	}
	return validateShared(cfg, nil)
}

func validateSlots(cfg Config) error {
	if len(cfg.Slots) == 0 {
		return errors.NewValidationError("slots", "slots resolver requires at least one slot", nil)
	}
	if !cfg.Base.IsZero() {
		return errors.NewValidationError("base", "slots resolver cannot declare a flat base", nil)
	}

	declared := make(map[string]bool, len(cfg.Slots))
	for slot, payload := range cfg.Slots {
		if payload.isSlotMap() {
			return errors.NewValidationError(fmt.Sprintf("slots.%s", slot), "slot base cannot be a slot map", nil)
		}
		declared[slot] = true
	}
	return validateShared(cfg, declared)
}

// validateShared checks the catalog and compound rules. declared is nil in
// flat mode, where slot-map payloads are rejected outright.
func validateShared(cfg Config, declared map[string]bool) error {
	for variant, values := range cfg.Variants {
		for token, payload := range values {
			field := fmt.Sprintf("variants.%s.%s", variant, token)
			if err := validatePayload(field, payload, declared); err != nil {
				return err
			}
		}
	}

	for i, compound := range cfg.CompoundVariants {
		field := fmt.Sprintf("compound_variants[%d]", i)
		if len(compound.Match) == 0 {
			return errors.NewValidationError(field+".match", "compound variant requires a non-empty match", nil)
		}
		if compound.Class.IsZero() && compound.ClassName.IsZero() {
			return errors.NewValidationError(field, "compound variant requires a class or className payload", nil)
		}
		if err := validatePayload(field+".class", compound.Class, declared); err != nil {
			return err
		}
		if err := validatePayload(field+".className", compound.ClassName, declared); err != nil {
			return err
		}
	}

	return nil
}

func validatePayload(field string, payload ClassValue, declared map[string]bool) error {
	if !payload.isSlotMap() {
		return nil
	}
	if declared == nil {
		return errors.NewValidationError(field, "slot-map payload is only valid in slots mode", nil)
	}
	if payload.hasNestedSlotMap() {
		return errors.NewValidationError(field, "slot-map payloads cannot nest", nil)
	}

	names := payload.slotNames()
	sort.Strings(names)
	for _, slot := range names {
		if !declared[slot] {
			return errors.NewValidationError(field, fmt.Sprintf("payload references undeclared slot %q", slot), nil)
		}
	}
	return nil
}
