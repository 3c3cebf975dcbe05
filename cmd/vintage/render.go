// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"vintage-cli/internal/config"
	"vintage-cli/internal/discovery"
	"vintage-cli/pkg/descriptor"

	"github.com/charmbracelet/lipgloss/tree"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// writeResult prints the discovered tree in the requested format.
func writeResult(w io.Writer, root *descriptor.Engine, format config.OutputFormat, verbose bool) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(root.Snapshot())
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(root.Snapshot()); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case config.FormatTOML:
		if err := toml.NewEncoder(w).Encode(root.Snapshot()); err != nil {
			return fmt.Errorf("failed to encode toml: %w", err)
		}
		return nil
	default:
		_, err := fmt.Fprintln(w, renderTree(root, verbose))
		return err
	}
}

// renderTree draws the descriptor tree with a summary line.
func renderTree(root *descriptor.Engine, verbose bool) string {
	t := newTree(TitleStyle.Render(root.DisplayName()) + " " + SubtitleStyle.Render(root.UniqueID()))
	children := root.Children()
	for _, child := range children {
		t.Child(subtree(child, verbose))
	}

	containers, tests := root.Count()
	summary := fmt.Sprintf("%d classes, %d containers, %d tests", len(children), containers, tests)
	return t.String() + "\n\n" + SubtitleStyle.Render(summary)
}

func subtree(d *descriptor.Descriptor, verbose bool) any {
	label := nodeLabel(d, verbose)
	children := d.Children()
	if len(children) == 0 {
		return label
	}

	t := newTree(label)
	for _, child := range children {
		t.Child(subtree(child, verbose))
	}
	return t
}

func newTree(root string) *tree.Tree {
	return tree.Root(root).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(branchStyle)
}

func nodeLabel(d *descriptor.Descriptor, verbose bool) string {
	style := containerStyle
	if d.IsTest() {
		style = testStyle
	}

	var sb strings.Builder
	sb.WriteString(style.Render(d.DisplayName()))
	if tags := d.Tags(); len(tags) > 0 {
		names := make([]string, len(tags))
		for i, tag := range tags {
			names[i] = string(tag)
		}
		sb.WriteString(" " + VerboseStyle.Render("["+strings.Join(names, ", ")+"]"))
	}
	if verbose {
		sb.WriteString(" " + SubtitleStyle.Render(d.UniqueID()))
	}
	return sb.String()
}

// writeDiagnostics reports non-fatal problems on w.
func writeDiagnostics(w io.Writer, diagnostics []discovery.Diagnostic, verbose bool) {
	for _, d := range diagnostics {
		label := WarningStyle.Render("Warning: ")
		if d.Severity == discovery.SeverityError {
			label = ErrorStyle.Render("Error: ")
		}
		line := label + d.Message
		if d.Path != "" {
			line += " " + SubtitleStyle.Render("("+d.Path+")")
		}
		fmt.Fprintln(w, line)
		if d.Cause != nil && verbose {
			fmt.Fprintln(w, VerboseStyle.Render("  "+d.Cause.Error()))
		}
	}
	if len(diagnostics) > 0 && !verbose {
		fmt.Fprintln(w, SubtitleStyle.Render("Run with --verbose for details, or 'vintage issue' for common causes."))
	}
}
