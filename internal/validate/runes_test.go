package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmpllang/compiler/internal/hostbridge"
	"github.com/tmpllang/compiler/internal/loc"
)

func node(kind string, start, end int, children ...*hostbridge.ShiftedNode) *hostbridge.ShiftedNode {
	return &hostbridge.ShiftedNode{Kind: kind, Span: loc.Span{Start: start, End: end}, Children: children}
}

type fakeSink struct {
	errs     []error
	warnings []error
}

func (f *fakeSink) AppendError(err error)   { f.errs = append(f.errs, err) }
func (f *fakeSink) AppendWarning(err error) { f.warnings = append(f.warnings, err) }

func TestIsRuneCallSimple(t *testing.T) {
	source := "$state(0)"
	callee := node("identifier", 0, 6)
	args := node("arguments", 6, 9, node("number", 7, 8))
	call := node("call_expression", 0, 9, callee, args)

	r, ok := isRuneCall(call, source)
	assert.True(t, ok)
	assert.Equal(t, runeState, r)
}

func TestIsRuneCallMemberExpression(t *testing.T) {
	source := "$derived.by(fn)"
	base := node("identifier", 0, 8)
	prop := node("property_identifier", 9, 11)
	callee := node("member_expression", 0, 11, base, prop)
	args := node("arguments", 11, 15, node("identifier", 12, 14))
	call := node("call_expression", 0, 15, callee, args)

	r, ok := isRuneCall(call, source)
	assert.True(t, ok)
	assert.Equal(t, runeDerivedBy, r)
}

func TestIsRuneCallUnknownGlobalIsNotARune(t *testing.T) {
	source := "doSomething()"
	callee := node("identifier", 0, 11)
	args := node("arguments", 11, 13)
	call := node("call_expression", 0, 13, callee, args)

	_, ok := isRuneCall(call, source)
	assert.False(t, ok)
}

func TestValidateRuneCallPropsDuplicateAndPlacement(t *testing.T) {
	source := "$props()"
	callee := node("identifier", 0, 6)
	args := node("arguments", 6, 8)
	call := node("call_expression", 0, 8, callee, args)

	sink := &fakeSink{}
	st := &runeCheckState{}
	validateRuneCall(call, source, moduleContext, st, sink)
	assert.True(t, st.hasPropsRune)
	assert.Len(t, sink.errs, 1) // invalid placement (module, not instance)

	sink2 := &fakeSink{}
	validateRuneCall(call, source, instanceContext, st, sink2)
	assert.Len(t, sink2.errs, 1) // duplicate $props
}

func TestValidateRuneCallDerivedRequiresOneArg(t *testing.T) {
	source := "$derived()"
	callee := node("identifier", 0, 8)
	args := node("arguments", 8, 10)
	call := node("call_expression", 0, 10, callee, args)

	sink := &fakeSink{}
	validateRuneCall(call, source, instanceContext, &runeCheckState{}, sink)
	assert.Len(t, sink.errs, 1)
}

func TestIsReservedRuneIdentifier(t *testing.T) {
	assert.True(t, isReservedRuneIdentifier("$"))
	assert.True(t, isReservedRuneIdentifier("$foo"))
	assert.False(t, isReservedRuneIdentifier("$state"))
	assert.False(t, isReservedRuneIdentifier("count"))
}
