package serializer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	tmpl "github.com/tmpllang/compiler/internal"
	"github.com/tmpllang/compiler/internal/loc"
)

func text(data string) *tmpl.Node {
	return &tmpl.Node{Type: tmpl.TextNode, Data: data}
}

func element(tag string, children ...*tmpl.Node) *tmpl.Node {
	n := &tmpl.Node{Type: tmpl.ElementNode, ElementKind: tmpl.RegularElementKind, Data: tag}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func TestSerializeBasicElement(t *testing.T) {
	fragment := &tmpl.Node{Type: tmpl.FragmentNode}
	fragment.AppendChild(element("h1", text("Hello world!")))

	root := &tmpl.Root{Fragment: fragment, Source: "<h1>Hello world!</h1>"}

	out, err := Serialize(root, Options{})
	assert.NoError(t, err)
	assert.Contains(t, string(out), `"type":"fragment"`)
	assert.Contains(t, string(out), `"type":"element"`)
	assert.Contains(t, string(out), `"name":"h1"`)
	assert.Contains(t, string(out), `"value":"Hello world!"`)
}

func TestSerializeComponentKind(t *testing.T) {
	comp := &tmpl.Node{Type: tmpl.ElementNode, ElementKind: tmpl.ComponentKind, Data: "Widget"}
	fragment := &tmpl.Node{Type: tmpl.FragmentNode}
	fragment.AppendChild(comp)
	root := &tmpl.Root{Fragment: fragment}

	out, err := Serialize(root, Options{})
	assert.NoError(t, err)
	assert.Contains(t, string(out), `"type":"component"`)
	assert.Contains(t, string(out), `"name":"Widget"`)
}

func TestSerializeEachBlockKeyed(t *testing.T) {
	each := &tmpl.Node{
		Type:           tmpl.EachBlockNode,
		EachCollection: &tmpl.ExprNode{Raw: "items"},
		EachContext:    &tmpl.ExprNode{Raw: "item"},
		EachKey:        &tmpl.ExprNode{Raw: "item.id"},
		EachKeyed:      true,
	}
	each.AppendChild(element("li"))
	fragment := &tmpl.Node{Type: tmpl.FragmentNode}
	fragment.AppendChild(each)
	root := &tmpl.Root{Fragment: fragment}

	out, err := Serialize(root, Options{})
	assert.NoError(t, err)
	assert.Contains(t, string(out), `"type":"each-block"`)
	assert.Contains(t, string(out), `"value":"items"`)
	assert.Contains(t, string(out), `"keyed":true`)
}

func TestSerializeIfBlockWithAlternate(t *testing.T) {
	ifBlock := &tmpl.Node{
		Type: tmpl.IfBlockNode,
		Expr: &tmpl.ExprNode{Raw: "cond"},
	}
	ifBlock.IfConsequent = &tmpl.Node{Type: tmpl.FragmentNode}
	ifBlock.IfConsequent.AppendChild(text("yes"))
	ifBlock.IfAlternate = &tmpl.Node{Type: tmpl.FragmentNode}
	ifBlock.IfAlternate.AppendChild(text("no"))

	fragment := &tmpl.Node{Type: tmpl.FragmentNode}
	fragment.AppendChild(ifBlock)
	root := &tmpl.Root{Fragment: fragment}

	out, err := Serialize(root, Options{})
	assert.NoError(t, err)
	assert.Contains(t, string(out), `"type":"if-block"`)
	assert.Contains(t, string(out), `"role":"consequent"`)
	assert.Contains(t, string(out), `"role":"alternate"`)
}

func TestSerializeDirectiveAttribute(t *testing.T) {
	el := &tmpl.Node{Type: tmpl.ElementNode, ElementKind: tmpl.RegularElementKind, Data: "input"}
	el.Attr = []tmpl.Attribute{
		{
			Kind:      tmpl.DirectiveEntry,
			Key:       "value",
			Directive: tmpl.BindDirective,
			Val:       "name",
		},
	}
	fragment := &tmpl.Node{Type: tmpl.FragmentNode}
	fragment.AppendChild(el)
	root := &tmpl.Root{Fragment: fragment}

	out, err := Serialize(root, Options{})
	assert.NoError(t, err)
	assert.Contains(t, string(out), `"type":"directive"`)
	assert.Contains(t, string(out), `"kind":"bind"`)
}

func TestSerializePositions(t *testing.T) {
	source := `<h1>Hi</h1>`
	el := &tmpl.Node{
		Type:        tmpl.ElementNode,
		ElementKind: tmpl.RegularElementKind,
		Data:        "h1",
		Span:        loc.Span{Start: 0, End: len(source)},
	}
	fragment := &tmpl.Node{Type: tmpl.FragmentNode}
	fragment.AppendChild(el)
	root := &tmpl.Root{Fragment: fragment, Source: source}

	out, err := Serialize(root, Options{Positions: true, Filename: "App.tmpl"})
	assert.NoError(t, err)
	assert.Contains(t, string(out), `"position"`)
	assert.Contains(t, string(out), `"line":1`)
}
