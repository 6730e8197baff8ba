package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	tmpl "github.com/tmpllang/compiler/internal"
)

func regularElement(tag string, children ...*tmpl.Node) *tmpl.Node {
	el := &tmpl.Node{Type: tmpl.ElementNode, ElementKind: tmpl.RegularElementKind, Data: tag}
	for _, c := range children {
		el.AppendChild(c)
	}
	return el
}

func TestValidateNestingTrOutsideTable(t *testing.T) {
	tr := regularElement("tr")
	fragment := &tmpl.Node{Type: tmpl.FragmentNode}
	fragment.AppendChild(tr)

	sink := &fakeSink{}
	ValidateNesting(fragment, sink)
	assert.Len(t, sink.errs, 1)
}

func TestValidateNestingTrInsideTable(t *testing.T) {
	tr := regularElement("tr")
	table := regularElement("table", tr)
	fragment := &tmpl.Node{Type: tmpl.FragmentNode}
	fragment.AppendChild(table)

	sink := &fakeSink{}
	ValidateNesting(fragment, sink)
	assert.Empty(t, sink.errs)
}

func TestValidateNestingInteractiveInsideInteractive(t *testing.T) {
	inner := regularElement("button")
	outer := regularElement("a", inner)
	fragment := &tmpl.Node{Type: tmpl.FragmentNode}
	fragment.AppendChild(outer)

	sink := &fakeSink{}
	ValidateNesting(fragment, sink)
	assert.Len(t, sink.errs, 1)
}
