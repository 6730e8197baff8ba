package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	tmpl "github.com/tmpllang/compiler/internal"
)

func TestValidateA11yDistractingElement(t *testing.T) {
	el := &tmpl.Node{Type: tmpl.ElementNode, ElementKind: tmpl.RegularElementKind, Data: "marquee"}
	sink := &fakeSink{}
	validateA11yElement(el, sink)
	assert.NotEmpty(t, sink.warnings)
}

func TestValidateA11yMissingImgAlt(t *testing.T) {
	el := &tmpl.Node{Type: tmpl.ElementNode, ElementKind: tmpl.RegularElementKind, Data: "img"}
	sink := &fakeSink{}
	validateA11yElement(el, sink)
	found := false
	for _, e := range sink.warnings {
		if e != nil {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidateA11yImgWithAltIsFine(t *testing.T) {
	el := &tmpl.Node{
		Type: tmpl.ElementNode, ElementKind: tmpl.RegularElementKind, Data: "img",
		Attr: []tmpl.Attribute{{Kind: tmpl.PlainAttribute, Key: "alt", Type: tmpl.BooleanAttribute}},
	}
	sink := &fakeSink{}
	validateA11yElement(el, sink)
	assert.Empty(t, sink.warnings)
}

func TestValidateA11yUnknownAriaAttribute(t *testing.T) {
	el := &tmpl.Node{
		Type: tmpl.ElementNode, ElementKind: tmpl.RegularElementKind, Data: "div",
		Attr: []tmpl.Attribute{{Kind: tmpl.PlainAttribute, Key: "aria-bogus", Type: tmpl.BooleanAttribute}},
	}
	sink := &fakeSink{}
	validateA11yElement(el, sink)
	assert.Len(t, sink.warnings, 1)
}

func TestValidateA11yAccesskey(t *testing.T) {
	el := &tmpl.Node{
		Type: tmpl.ElementNode, ElementKind: tmpl.RegularElementKind, Data: "div",
		Attr: []tmpl.Attribute{{Kind: tmpl.PlainAttribute, Key: "accesskey", Type: tmpl.BooleanAttribute}},
	}
	sink := &fakeSink{}
	validateA11yElement(el, sink)
	assert.Len(t, sink.warnings, 1)
}
