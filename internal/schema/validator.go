package schema

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	classkiterrors "github.com/classkit/classkit/pkg/errors"
	"github.com/classkit/classkit/pkg/responsive"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern     = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	identifierPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateDocument performs schema and cross-field validation on a variant
// definition document.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return classkiterrors.NewValidationError("document", "document is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(doc); err != nil {
		return convertValidationError(err)
	}

	if err := validateBreakpoints(doc.Breakpoints); err != nil {
		return err
	}

	names := make([]string, 0, len(doc.Components))
	for name := range doc.Components {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := validateComponent(name, doc.Components[name]); err != nil {
			return err
		}
	}

	return nil
}

func validateBreakpoints(labels []string) error {
	seen := make(map[string]bool, len(labels))
	for i, label := range labels {
		field := fmt.Sprintf("breakpoints[%d]", i)
		if label == responsive.Initial {
			return classkiterrors.NewValidationError(field, fmt.Sprintf("%q is reserved and cannot be declared as a breakpoint", responsive.Initial), nil)
		}
		if !identifierPattern.MatchString(label) {
			return classkiterrors.NewValidationError(field, fmt.Sprintf("invalid breakpoint label %q", label), nil)
		}
		if seen[label] {
			return classkiterrors.NewValidationError(field, fmt.Sprintf("duplicate breakpoint label %q", label), nil)
		}
		seen[label] = true
	}
	return nil
}

func validateComponent(name string, c Component) error {
	field := fmt.Sprintf("components.%s", name)

	if !identifierPattern.MatchString(name) {
		return classkiterrors.NewValidationError(field, fmt.Sprintf("invalid component name %q", name), nil)
	}
	if c.Base != nil && len(c.Slots) > 0 {
		return classkiterrors.NewValidationError(field, "component cannot declare both base and slots", nil)
	}

	for slot := range c.Slots {
		if !identifierPattern.MatchString(slot) {
			return classkiterrors.NewValidationError(field+".slots", fmt.Sprintf("invalid slot name %q", slot), nil)
		}
	}

	for variant, values := range c.Variants {
		if !identifierPattern.MatchString(variant) {
			return classkiterrors.NewValidationError(field+".variants", fmt.Sprintf("invalid variant name %q", variant), nil)
		}
		if len(values) == 0 {
			return classkiterrors.NewValidationError(fmt.Sprintf("%s.variants.%s", field, variant), "variant declares no values", nil)
		}
	}

	for i, rule := range c.CompoundVariants {
		ruleField := fmt.Sprintf("%s.compound_variants[%d]", field, i)
		if len(rule.Match) == 0 {
			return classkiterrors.NewValidationError(ruleField+".match", "compound variant requires a non-empty match", nil)
		}
		if rule.Class == nil && rule.ClassName == nil {
			return classkiterrors.NewValidationError(ruleField, "compound variant requires a class or className payload", nil)
		}
		for matched := range rule.Match {
			if _, ok := c.Variants[matched]; !ok {
				return classkiterrors.NewValidationError(ruleField+".match", fmt.Sprintf("references undeclared variant %q", matched), nil)
			}
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return classkiterrors.NewValidationError(field, msg, err)
	}

	return classkiterrors.NewValidationError("document", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
