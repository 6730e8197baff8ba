package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	tmpl "github.com/tmpllang/compiler/internal"
	"github.com/tmpllang/compiler/internal/loc"
)

func directiveAttr(kind tmpl.DirectiveKind, key string, modifiers ...string) tmpl.Attribute {
	return tmpl.Attribute{
		Kind:      tmpl.DirectiveEntry,
		Directive: kind,
		Key:       key,
		Modifiers: modifiers,
		Type:      tmpl.ExpressionAttribute,
		Val:       "x",
	}
}

func TestValidateEventModifiersUnknown(t *testing.T) {
	sink := &fakeSink{}
	a := directiveAttr(tmpl.OnDirective, "click", "bogus")
	validateEventModifiers(a, sink)
	assert.Len(t, sink.errs, 1)
}

func TestValidateEventModifiersConflict(t *testing.T) {
	sink := &fakeSink{}
	a := directiveAttr(tmpl.OnDirective, "click", "passive", "nonpassive")
	validateEventModifiers(a, sink)
	assert.Len(t, sink.errs, 1)
}

func TestValidateBindDirectiveUnknownName(t *testing.T) {
	sink := &fakeSink{}
	a := directiveAttr(tmpl.BindDirective, "notABinding")
	validateBindDirective(a, "input", sink)
	assert.Len(t, sink.errs, 1)
}

func TestValidateBindDirectiveWrongElement(t *testing.T) {
	sink := &fakeSink{}
	a := directiveAttr(tmpl.BindDirective, "value")
	validateBindDirective(a, "div", sink)
	assert.Len(t, sink.errs, 1)
}

func TestValidateBindDirectiveValid(t *testing.T) {
	sink := &fakeSink{}
	a := directiveAttr(tmpl.BindDirective, "value")
	validateBindDirective(a, "input", sink)
	assert.Empty(t, sink.errs)
}

func TestValidateElementTransitionsDuplicateIntro(t *testing.T) {
	el := &tmpl.Node{
		Attr: []tmpl.Attribute{
			{Kind: tmpl.DirectiveEntry, Directive: tmpl.InDirective, Key: "fade", Intro: true, Span: loc.Span{Start: 0, End: 5}},
			{Kind: tmpl.DirectiveEntry, Directive: tmpl.TransitionDirective, Key: "fly", Intro: true, Outro: true, Span: loc.Span{Start: 6, End: 12}},
		},
	}
	sink := &fakeSink{}
	validateElementTransitions(el, sink)
	assert.Len(t, sink.errs, 1)
}

func TestValidateElementAnimationsOutsideKeyedEach(t *testing.T) {
	el := &tmpl.Node{
		Attr: []tmpl.Attribute{
			{Kind: tmpl.DirectiveEntry, Directive: tmpl.AnimateDirective, Key: "flip", Span: loc.Span{Start: 0, End: 5}},
		},
	}
	sink := &fakeSink{}
	validateElementAnimations(el, false, sink)
	assert.Len(t, sink.errs, 1)

	sink2 := &fakeSink{}
	validateElementAnimations(el, true, sink2)
	assert.Empty(t, sink2.errs)
}
