package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	merge "github.com/tylantz/go-tailwind-merge"

	"github.com/classkit/classkit/internal/schema"
	"github.com/classkit/classkit/pkg/responsive"
	"github.com/classkit/classkit/pkg/variants"
)

type resolveOptions struct {
	component  string
	sets       []string
	class      string
	className  string
	slot       string
	mergeOut   bool
	jsonOutput bool
}

func newResolveCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <definition-file>",
		Short: "Resolve a component's class string from a definition file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, args[0], opts, rootFlags)
		},
	}

	cmd.Flags().StringVarP(&opts.component, "component", "c", "", "Component to resolve (required)")
	cmd.Flags().StringArrayVar(&opts.sets, "set", nil, "Variant choice: name=token, name=true, or name=token,md:other for responsive values")
	cmd.Flags().StringVar(&opts.class, "class", "", "Extra classes appended last")
	cmd.Flags().StringVar(&opts.className, "classname", "", "Extra classes appended before --class")
	cmd.Flags().StringVar(&opts.slot, "slot", "", "Resolve a single slot of a multi-part component")
	cmd.Flags().BoolVar(&opts.mergeOut, "merge", false, "Resolve Tailwind utility conflicts in the output")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	_ = cmd.MarkFlagRequired("component")

	return cmd
}

func runResolve(cmd *cobra.Command, path string, opts *resolveOptions, rootFlags *rootFlags) error {
	log, err := newCommandLogger(rootFlags)
	if err != nil {
		return err
	}
	log = log.WithComponent("resolve")

	doc, err := schema.Load(path)
	if err != nil {
		return err
	}
	log.Debug(fmt.Sprintf("loaded definition %q with %d components", doc.Name, len(doc.Components)))

	cfg, err := doc.Config(opts.component)
	if err != nil {
		return err
	}

	props, err := buildProps(doc, opts)
	if err != nil {
		return err
	}

	engineOpts := []variants.Option{variants.WithBreakpoints(doc.BreakpointLabels()...)}
	if opts.mergeOut {
		merger := merge.NewMerger(nil, true)
		engineOpts = append(engineOpts, variants.WithOnComplete(merger.Merge))
	}
	engine := variants.NewEngine(engineOpts...)

	if doc.IsSlots(opts.component) {
		return resolveSlots(cmd, engine, cfg, props, opts)
	}

	if opts.slot != "" {
		return fmt.Errorf("component %q has no slots", opts.component)
	}

	resolve, err := engine.New(cfg)
	if err != nil {
		return err
	}

	return renderResolved(cmd, opts, map[string]string{"": resolve(props)})
}

func resolveSlots(cmd *cobra.Command, engine *variants.Engine, cfg variants.Config, props variants.Props, opts *resolveOptions) error {
	factory, err := engine.NewSlots(cfg)
	if err != nil {
		return err
	}
	slots := factory()

	if opts.slot != "" {
		resolve, ok := slots[opts.slot]
		if !ok {
			return fmt.Errorf("component %q has no slot %q", opts.component, opts.slot)
		}
		return renderResolved(cmd, opts, map[string]string{"": resolve(props)})
	}

	resolved := make(map[string]string, len(slots))
	for name, resolve := range slots {
		resolved[name] = resolve(props)
	}
	return renderResolved(cmd, opts, resolved)
}

// buildProps translates --set, --class, and --classname flags into a
// resolution request, checking responsive labels against the document's
// breakpoint set.
func buildProps(doc *schema.Document, opts *resolveOptions) (variants.Props, error) {
	props := variants.NewProps()

	for _, set := range opts.sets {
		name, raw, ok := strings.Cut(set, "=")
		if !ok || name == "" {
			return variants.Props{}, fmt.Errorf("invalid --set %q: expected name=value", set)
		}

		value, err := parseSetValue(doc, raw)
		if err != nil {
			return variants.Props{}, fmt.Errorf("invalid --set %q: %w", set, err)
		}
		props = props.With(name, value)
	}

	if opts.className != "" {
		props = props.WithClassName(opts.className)
	}
	if opts.class != "" {
		props = props.WithClass(opts.class)
	}

	return props, nil
}

// parseSetValue decodes a --set value. A plain token yields a singular
// value; comma-joined segments yield a responsive value where each segment
// is label:token, with a bare token standing for the initial entry.
func parseSetValue(doc *schema.Document, raw string) (variants.Value, error) {
	if !strings.Contains(raw, ",") && !strings.Contains(raw, ":") {
		return variants.String(raw), nil
	}

	var entries []responsive.Entry[string]
	for _, segment := range strings.Split(raw, ",") {
		label, token, ok := strings.Cut(segment, ":")
		if !ok {
			label, token = responsive.Initial, segment
		}
		if label == "" || token == "" {
			return variants.Value{}, fmt.Errorf("malformed segment %q", segment)
		}
		if label != responsive.Initial && !doc.HasBreakpoint(label) {
			return variants.Value{}, fmt.Errorf("unknown breakpoint %q", label)
		}
		entries = append(entries, variants.At(label, token))
	}

	return variants.Responsive(entries...), nil
}

func renderResolved(cmd *cobra.Command, opts *resolveOptions, resolved map[string]string) error {
	if opts.jsonOutput {
		return renderResolveJSON(cmd, opts, resolved)
	}

	if single, ok := resolved[""]; ok && len(resolved) == 1 {
		fmt.Fprintln(cmd.OutOrStdout(), single)
		return nil
	}

	names := make([]string, 0, len(resolved))
	for name := range resolved {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, resolved[name])
	}
	return nil
}

type resolveJSONPayload struct {
	Component string            `json:"component"`
	Classes   string            `json:"classes,omitempty"`
	Slots     map[string]string `json:"slots,omitempty"`
}

func renderResolveJSON(cmd *cobra.Command, opts *resolveOptions, resolved map[string]string) error {
	payload := resolveJSONPayload{Component: opts.component}
	if single, ok := resolved[""]; ok && len(resolved) == 1 {
		payload.Classes = single
	} else {
		payload.Slots = resolved
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
