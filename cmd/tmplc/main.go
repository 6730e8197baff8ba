// Command tmplc parses and analyzes a single component file, printing
// either its diagnostics or its serialized AST.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	compiler "github.com/tmpllang/compiler"
	"github.com/tmpllang/compiler/internal/handler"
	"github.com/tmpllang/compiler/internal/loc"
	"github.com/tmpllang/compiler/internal/serializer"
)

var (
	loose      bool
	jsonOutput bool
	positions  bool
)

func main() {
	root := &cobra.Command{
		Use:   "tmplc <file>",
		Short: "Parse and analyze a component file",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}
	root.Flags().BoolVar(&loose, "loose", false, "tolerate and recover from syntax errors instead of failing on them")
	root.Flags().BoolVar(&jsonOutput, "json", false, "print the serialized AST instead of diagnostics")
	root.Flags().BoolVar(&positions, "positions", true, "include line/column positions in --json output")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	locationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func run(cmd *cobra.Command, args []string) error {
	path := args[0]
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("tmplc: %w", err)
	}

	h := handler.NewHandler(string(source), path)
	root, parseErrors := compiler.Parse(string(source), compiler.Options{Loose: loose})
	for _, e := range parseErrors {
		h.AppendError(e)
	}
	compiler.Analyze(root, h)

	if jsonOutput {
		out, err := serializer.Serialize(root, serializer.Options{Positions: positions, Filename: path})
		if err != nil {
			return fmt.Errorf("tmplc: serialize: %w", err)
		}
		fmt.Println(string(out))
	} else {
		printDiagnostics(h)
	}

	if h.HasErrors() {
		os.Exit(1)
	}
	return nil
}

func printDiagnostics(h *handler.Handler) {
	for _, msg := range h.Diagnostics() {
		label := warningStyle.Render("warning")
		if msg.Severity == loc.ErrorType {
			label = errorStyle.Render("error")
		}
		if msg.Location != nil {
			fmt.Fprintf(os.Stderr, "%s: %s %s\n", label, msg.Text,
				locationStyle.Render(fmt.Sprintf("(%s:%d:%d)", msg.Location.File, msg.Location.Line, msg.Location.Column)))
			continue
		}
		fmt.Fprintf(os.Stderr, "%s: %s\n", label, msg.Text)
	}
}
