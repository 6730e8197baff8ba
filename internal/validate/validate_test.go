package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	tmpl "github.com/tmpllang/compiler/internal"
	"github.com/tmpllang/compiler/internal/loc"
)

func TestRootResolvesReferencesAndValidatesMarkup(t *testing.T) {
	source := "$state(0)"
	callee := node("identifier", 0, 6)
	args := node("arguments", 6, 9, node("number", 7, 8))
	call := node("call_expression", 0, 9, callee, args)
	program := node("program", 0, 9, call)

	instance := &tmpl.Node{Type: tmpl.FrontmatterNode, Expr: &tmpl.ExprNode{Tree: program}}

	tr := regularElement("tr")
	fragment := &tmpl.Node{Type: tmpl.FragmentNode}
	fragment.AppendChild(tr)

	root := &tmpl.Root{Instance: instance, Fragment: fragment, Source: source}

	sink := &fakeSink{}
	tree := Root(root, sink)

	assert.NotNil(t, tree)
	assert.Len(t, sink.errs, 1) // tr outside a table
}

func TestRootFlagsRemovedGlobal(t *testing.T) {
	source := "$$restProps"
	id := node("identifier", 0, len(source))
	program := node("program", 0, len(source), id)

	instance := &tmpl.Node{Type: tmpl.FrontmatterNode, Expr: &tmpl.ExprNode{Tree: program}}
	root := &tmpl.Root{Instance: instance, Source: source}

	sink := &fakeSink{}
	Root(root, sink)

	assert.Len(t, sink.errs, 1)
	var rangedError *loc.ErrorWithRange
	assert.ErrorAs(t, sink.errs[0], &rangedError)
	assert.Equal(t, loc.ERROR_RUNE_REMOVED, rangedError.Code)
}
