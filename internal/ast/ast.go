// Package ast declares the opaque AST collaborator surface this core
// consumes. Lexing, parsing, and name resolution live in later passes;
// this package only fixes the identities and signature shapes those
// passes must expose so the type interner can key nominal types on
// declaration identity instead of structural unrolling.
package ast

import "fmt"

// Pos is a position in source text.
type Pos struct {
	File   string
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Span is a source range.
type Span struct {
	Start Pos
	End   Pos
}

// NodeID is a stable per-declaration identity, assigned once by the
// parser/binder and never reused. The interner's nominal-kind caches
// (contract, struct, enum, module, modifier) key on NodeID, not on a
// structural expansion of the declaration's members, which is what lets
// recursive user-defined types (a struct containing a mapping of
// itself) intern without infinite descent.
type NodeID string

// Parameter is a single named, typed parameter or return slot.
type Parameter struct {
	Name string // may be empty (unnamed parameter)
	Type string // elementary-type-name token or a nominal reference, resolved by later passes
}

// Visibility is a declaration's visibility, consumed only to pick the
// right Function overload in the interner; the interner does not police
// visibility rules itself.
type Visibility int

const (
	VisibilityInternal Visibility = iota
	VisibilityExternal
	VisibilityPublic
	VisibilityPrivate
)

// FunctionDefinition is the subset of a parsed function declaration the
// interner needs to build its Function type.
type FunctionDefinition interface {
	ID() NodeID
	Name() string
	Parameters() []Parameter
	ReturnParameters() []Parameter
	Visibility() Visibility
}

// VariableDeclaration is the subset of a parsed state-variable
// declaration the interner needs to synthesize its public accessor
// function type.
type VariableDeclaration interface {
	ID() NodeID
	Name() string
	TypeName() string
	IsPublic() bool
}

// EventDefinition is the subset of a parsed event declaration the
// interner needs to build its Function type (kind Event).
type EventDefinition interface {
	ID() NodeID
	Name() string
	Parameters() []Parameter
}

// FunctionTypeName is a parsed function-type-name expression
// (`function(uint) external view returns (bool)`), consumed by the
// interner's function-type-name overload.
type FunctionTypeName interface {
	ID() NodeID
	Parameters() []Parameter
	ReturnParameters() []Parameter
	Visibility() Visibility
}

// ContractDefinition is a parsed contract/interface/library declaration.
type ContractDefinition interface {
	ID() NodeID
	Name() string
}

// StructDefinition is a parsed struct declaration.
type StructDefinition interface {
	ID() NodeID
	Name() string
	Members() []VariableDeclaration
}

// EnumDefinition is a parsed enum declaration.
type EnumDefinition interface {
	ID() NodeID
	Name() string
	Members() []string
}

// ModifierDefinition is a parsed modifier declaration.
type ModifierDefinition interface {
	ID() NodeID
	Name() string
	Parameters() []Parameter
}

// SourceUnit is a parsed top-level source file, consumed by the
// interner's Module factory.
type SourceUnit interface {
	ID() NodeID
	Path() string
}
