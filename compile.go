// Package compiler is the module's public entry point: Parse turns
// component source text into a *tmpl.Root, and Analyze runs the
// scope/reference/rune/directive/accessibility passes over that tree.
// It exists alongside internal/parser and internal/validate (rather than
// folding Parse/Analyze into the tmpl package itself) so that the
// parser's dependency on tmpl's node types doesn't become a dependency
// cycle: tmpl cannot import internal/parser, since internal/parser
// already imports tmpl.
package compiler

import (
	tmpl "github.com/tmpllang/compiler/internal"
	"github.com/tmpllang/compiler/internal/parser"
	"github.com/tmpllang/compiler/internal/scope"
	"github.com/tmpllang/compiler/internal/validate"
)

// Options controls Parse's strictness, mirroring internal/parser.Options.
type Options = parser.Options

// Parse parses source as one component file, returning the resulting
// tree and every syntax error accumulated along the way. A non-empty
// error slice in strict mode means the tree is incomplete; in loose
// mode it is always a best-effort, usable tree.
func Parse(source string, opts Options) (*tmpl.Root, []error) {
	return parser.Parse(source, opts)
}

// ComponentAnalysis is the result of running the second analysis pass
// over a parsed Root: the Root itself and its resolved scope forest. It
// holds no diagnostics; Analyze reports those only to the sink it is
// given.
type ComponentAnalysis struct {
	Root  *tmpl.Root
	Scope *scope.Tree
}

// Analyze runs scope-building, reference resolution, rune validation,
// directive validation, nesting validation, and accessibility checks
// over root, reporting diagnostics to sink. Callers that just want to
// collect and later print diagnostics can pass an *internal/handler.Handler,
// which already satisfies validate.RuneSink.
func Analyze(root *tmpl.Root, sink validate.RuneSink) *ComponentAnalysis {
	tree := validate.Root(root, sink)
	return &ComponentAnalysis{Root: root, Scope: tree}
}
