// Package global implements the Global Context (spec.md §4.2): the
// ordered list of built-in declarations, and the lazily materialized
// `this`/`super` declarations for whichever contract is currently being
// analyzed.
package global

import (
	"sync"

	"github.com/sunholo/ailang/internal/ast"
	"github.com/sunholo/ailang/internal/interner"
	"github.com/sunholo/ailang/internal/types"
)

// Declaration is a single global identifier and the type it is bound
// to. Two Declaration values may legitimately share a Name (e.g. the
// two `require` overloads) — name resolution, not this package,
// disambiguates by arity/type at the call site.
type Declaration struct {
	Name string
	Type *types.Type
}

// Context is a small container built once per compilation. It is safe
// for concurrent read access after construction; SetCurrentContract and
// the this/super accessors are the only mutable surface, and they are
// guarded by a mutex the same way the teacher's module loader guards its
// cache.
type Context struct {
	interner     *interner.Interner
	declarations []*Declaration

	mu              sync.Mutex
	currentContract ast.ContractDefinition
	thisDecls       map[ast.NodeID]*Declaration
	superDecls      map[ast.NodeID]*Declaration
}

// New builds a Global Context over the given Interner, constructing the
// full builtin declaration list immediately.
func New(in *interner.Interner) *Context {
	c := &Context{
		interner:   in,
		thisDecls:  make(map[ast.NodeID]*Declaration),
		superDecls: make(map[ast.NodeID]*Declaration),
	}
	c.declarations = buildBuiltins(in)
	return c
}

// NewDefault builds a Global Context over the process-wide singleton
// Interner (interner.Global()), for callers that don't need per-
// compilation isolation.
func NewDefault() *Context {
	return New(interner.Global())
}

// Declarations returns the full ordered builtin declaration list,
// exactly as built at construction time (including duplicate names).
func (c *Context) Declarations() []*Declaration {
	return c.declarations
}

// SetCurrentContract updates the contract `this`/`super` resolve
// against.
func (c *Context) SetCurrentContract(decl ast.ContractDefinition) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentContract = decl
}

// CurrentThis returns the memoized `this` declaration for the active
// contract, allocating it on first call per contract. Calling this
// without an active contract is a programmer error (spec.md §4.2:
// "undefined behavior at the interface level... surface this as a
// programmer error"), so it panics rather than returning an error.
func (c *Context) CurrentThis() *Declaration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.currentContract == nil {
		panic("global: CurrentThis called with no active contract")
	}
	id := c.currentContract.ID()
	if d, ok := c.thisDecls[id]; ok {
		return d
	}
	d := &Declaration{Name: "this", Type: c.interner.Contract(c.currentContract, false)}
	c.thisDecls[id] = d
	return d
}

// CurrentSuper returns the memoized `super` declaration for the active
// contract, allocating it on first call per contract.
func (c *Context) CurrentSuper() *Declaration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.currentContract == nil {
		panic("global: CurrentSuper called with no active contract")
	}
	id := c.currentContract.ID()
	if d, ok := c.superDecls[id]; ok {
		return d
	}
	d := &Declaration{Name: "super", Type: c.interner.Contract(c.currentContract, true)}
	c.superDecls[id] = d
	return d
}
