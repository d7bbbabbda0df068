package interner

import (
	"fmt"
	"strings"

	"github.com/sunholo/ailang/internal/ast"
	"github.com/sunholo/ailang/internal/types"
)

// arrayKey canonicalizes Array descriptors: (location, element, length,
// is-string, is-pointer). Struct fields are all comparable so this type
// is usable directly as a map key.
type arrayKey struct {
	location  types.DataLocation
	element   *types.Type
	lengthTag string // "dyn" or the decimal length
	isString  bool
	isPointer bool
}

type mappingKey struct {
	key   *types.Type
	value *types.Type
}

type fixedPointKey struct {
	bits           int
	fractionalBits int
	signed         bool
}

type contractKey struct {
	declID  ast.NodeID
	isSuper bool
}

type structKey struct {
	declID   ast.NodeID
	location types.DataLocation
}

// handleSeqKey builds a string key from an ordered sequence of handles.
// Handles are atomic leaves with process-lifetime-stable addresses (they
// are themselves already-interned Type pointers), so joining their
// addresses is a sound content-addressing scheme for the variable-length
// sequences (tuple members, function params/returns) that Go's map key
// types cannot express directly.
func handleSeqKey(handles []*types.Type) string {
	var b strings.Builder
	for _, h := range handles {
		fmt.Fprintf(&b, "%p;", h)
	}
	return b.String()
}

// functionKey canonicalizes a Function descriptor per spec.md §4.1: the
// parameter/return handle sequences, kind, mutability, the four boolean
// flags, and (when bound) the owning declaration's identity. Parameter
// and return *names* are deliberately excluded — the spec's Open
// Question is resolved in favor of excluding them from equivalence (see
// DESIGN.md).
func functionKey(spec types.FunctionSpec) string {
	declID := ast.NodeID("")
	if spec.Decl != nil {
		declID = spec.Decl.ID()
	}
	return fmt.Sprintf("p:%sr:%sk:%dm:%dg:%tv:%tb:%ta:%td:%s",
		handleSeqKey(spec.Params),
		handleSeqKey(spec.Returns),
		int(spec.Kind),
		int(spec.Mutability),
		spec.GasSet,
		spec.ValueSet,
		spec.Bound,
		spec.ArbitraryParams,
		declID,
	)
}
