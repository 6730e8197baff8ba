// Package scope implements the two-pass scope/binding analysis: this
// file is the arena (ScopeId/Scope/Binding), builder.go is pass 1 (the
// scope-building walk). Both follow the walk-based multi-pass style of
// internal/transform/transform.go's `walk` and its sequence of passes
// over the same tree.
package scope

import (
	tmpl "github.com/tmpllang/compiler/internal"
	"github.com/tmpllang/compiler/internal/loc"
)

// ScopeId indexes into a Tree's Scopes slice; the zero value is the
// root scope.
type ScopeId int

// DeclarationKind is how a binding entered scope.
type DeclarationKind uint32

const (
	LetDeclaration DeclarationKind = iota
	ConstDeclaration
	VarDeclaration
	FunctionDeclaration
	ImportDeclaration
	ParamDeclaration
	EachContextDeclaration
	AwaitValueDeclaration
	AwaitErrorDeclaration
	SnippetParamDeclaration
	SnippetDeclaration
	RuneStateDeclaration
	RunePropsDeclaration
	RuneDerivedDeclaration
	RuneBindableDeclaration
)

// Binding is one declared identifier with its rune and usage metadata.
type Binding struct {
	Name  string
	Kind  DeclarationKind
	Scope ScopeId
	Span  loc.Span

	// IsRune is true when Kind is one of the Rune* declaration kinds.
	IsRune bool
	// Reassigned/Mutated distinguish a direct reassignment from a
	// property/method mutation. No pass in this module sets them; they
	// stay false.
	Reassigned bool
	Mutated    bool

	// ReferencedCount is incremented by the validator each time a
	// reference resolves to this binding.
	ReferencedCount int
}

// Reference is a single identifier read recorded by the builder and
// resolved by the validator.
type Reference struct {
	Name    string
	Scope   ScopeId
	Span    loc.Span
	Binding *Binding // filled in by the validator; nil until resolved
	// IsGlobal is set by the validator when no enclosing scope declares
	// Name and it is present in scope.KnownGlobals.
	IsGlobal bool
}

// Scope is one node of the scope forest: block scopes nest under their
// lexical parent the way function/block scoping in JS does.
type Scope struct {
	Id       ScopeId
	Parent   ScopeId
	HasParent bool
	Node     *tmpl.Node // the template node that introduced this scope, nil for the root
	Bindings map[string]*Binding
}

// Tree owns every Scope, Binding, and Reference produced by a single
// Parse's scope-building pass.
type Tree struct {
	Scopes     []*Scope
	References []*Reference
}

// NewTree creates a Tree with a single root scope.
func NewTree() *Tree {
	t := &Tree{}
	t.Scopes = append(t.Scopes, &Scope{Id: 0, Bindings: map[string]*Binding{}})
	return t
}

// Root returns the id of the outermost scope (the instance script's
// top-level scope).
func (t *Tree) Root() ScopeId { return 0 }

// Child creates a new scope nested under parent, introduced by node (nil
// for synthetic scopes).
func (t *Tree) Child(parent ScopeId, node *tmpl.Node) ScopeId {
	id := ScopeId(len(t.Scopes))
	t.Scopes = append(t.Scopes, &Scope{
		Id: id, Parent: parent, HasParent: true, Node: node,
		Bindings: map[string]*Binding{},
	})
	return id
}

func (t *Tree) Get(id ScopeId) *Scope { return t.Scopes[id] }

// Declare adds a binding to the given scope, returning the existing
// binding (and false) if name is already declared directly in that
// scope — the caller decides whether redeclaration is an error.
func (t *Tree) Declare(scope ScopeId, name string, kind DeclarationKind, span loc.Span) (*Binding, bool) {
	s := t.Scopes[scope]
	if existing, ok := s.Bindings[name]; ok {
		return existing, false
	}
	b := &Binding{Name: name, Kind: kind, Scope: scope, Span: span, IsRune: isRuneKind(kind)}
	s.Bindings[name] = b
	return b, true
}

func isRuneKind(k DeclarationKind) bool {
	switch k {
	case RuneStateDeclaration, RunePropsDeclaration, RuneDerivedDeclaration, RuneBindableDeclaration:
		return true
	default:
		return false
	}
}

// AddReference records an identifier read at scope/span for later
// resolution by the validator.
func (t *Tree) AddReference(scope ScopeId, name string, span loc.Span) *Reference {
	ref := &Reference{Name: name, Scope: scope, Span: span}
	t.References = append(t.References, ref)
	return ref
}

// Lookup walks from scope up through its ancestors looking for name,
// returning the nearest enclosing binding.
func (t *Tree) Lookup(scope ScopeId, name string) (*Binding, bool) {
	for {
		s := t.Scopes[scope]
		if b, ok := s.Bindings[name]; ok {
			return b, true
		}
		if !s.HasParent {
			return nil, false
		}
		scope = s.Parent
	}
}
