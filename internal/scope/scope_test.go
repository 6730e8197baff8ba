package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tmpllang/compiler/internal/loc"
)

func TestTreeDeclareAndLookup(t *testing.T) {
	tree := NewTree()
	root := tree.Root()

	b, fresh := tree.Declare(root, "count", LetDeclaration, loc.Span{})
	assert.True(t, fresh)
	assert.Equal(t, "count", b.Name)

	_, freshAgain := tree.Declare(root, "count", LetDeclaration, loc.Span{})
	assert.False(t, freshAgain)

	child := tree.Child(root, nil)
	found, ok := tree.Lookup(child, "count")
	assert.True(t, ok)
	assert.Same(t, b, found)

	_, ok = tree.Lookup(root, "missing")
	assert.False(t, ok)
}

func TestIsRuneKind(t *testing.T) {
	assert.True(t, isRuneKind(RuneStateDeclaration))
	assert.True(t, isRuneKind(RuneDerivedDeclaration))
	assert.False(t, isRuneKind(LetDeclaration))
}
