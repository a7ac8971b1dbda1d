package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/classkit/classkit/internal/schema"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list <definition-file>",
		Short: "List the components a definition file declares",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type componentSummary struct {
	Name      string   `json:"name"`
	Mode      string   `json:"mode"`
	Slots     []string `json:"slots,omitempty"`
	Variants  []string `json:"variants,omitempty"`
	Compounds int      `json:"compound_variants"`
}

func runList(cmd *cobra.Command, path string, opts *listOptions) error {
	doc, err := schema.Load(path)
	if err != nil {
		return err
	}

	summaries := summarizeComponents(doc)

	if opts.jsonOutput {
		return renderListJSON(cmd, doc, summaries)
	}

	return renderListTable(cmd, doc, summaries)
}

func summarizeComponents(doc *schema.Document) []componentSummary {
	summaries := make([]componentSummary, 0, len(doc.Components))

	for name, component := range doc.Components {
		summary := componentSummary{
			Name:      name,
			Mode:      "flat",
			Compounds: len(component.CompoundVariants),
		}

		if len(component.Slots) > 0 {
			summary.Mode = "slots"
			for slot := range component.Slots {
				summary.Slots = append(summary.Slots, slot)
			}
			sort.Strings(summary.Slots)
		}

		for variant := range component.Variants {
			summary.Variants = append(summary.Variants, variant)
		}
		sort.Strings(summary.Variants)

		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Name < summaries[j].Name
	})

	return summaries
}

func renderListTable(cmd *cobra.Command, doc *schema.Document, summaries []componentSummary) error {
	out := cmd.OutOrStdout()

	header := fmt.Sprintf("%s (%d components)", doc.Name, len(summaries))
	if isTerminal(out) {
		header = lipgloss.NewStyle().Bold(true).Render(header)
	}
	fmt.Fprintln(out, header)

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "COMPONENT\tMODE\tSLOTS\tVARIANTS\tCOMPOUND")

	for _, s := range summaries {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%d\n",
			s.Name,
			s.Mode,
			valueOrFallback(strings.Join(s.Slots, ","), "-"),
			valueOrFallback(strings.Join(s.Variants, ","), "-"),
			s.Compounds,
		)
	}

	return writer.Flush()
}

type listJSONPayload struct {
	Name        string             `json:"name"`
	Version     string             `json:"version"`
	Breakpoints []string           `json:"breakpoints"`
	Count       int                `json:"count"`
	Components  []componentSummary `json:"components"`
}

func renderListJSON(cmd *cobra.Command, doc *schema.Document, summaries []componentSummary) error {
	payload := listJSONPayload{
		Name:        doc.Name,
		Version:     doc.Version,
		Breakpoints: doc.BreakpointLabels(),
		Count:       len(summaries),
		Components:  summaries,
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
