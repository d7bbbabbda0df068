package interner

import (
	"github.com/sunholo/ailang/internal/ast"
	"github.com/sunholo/ailang/internal/types"
)

// internFunction is the single canonicalization point every Function
// overload below funnels through. The cache key excludes parameter and
// return names (spec.md's Open Question, resolved: names are stored on
// the value but are not part of the equivalence relation).
func (in *Interner) internFunction(spec types.FunctionSpec) *types.Type {
	in.mu.Lock()
	defer in.mu.Unlock()

	key := functionKey(spec)
	if t, ok := in.functionCache[key]; ok {
		return t
	}
	t := types.NewFunction(spec)
	in.functionCache[key] = t
	return t
}

func visibilityToFunctionKind(v ast.Visibility) types.FunctionKind {
	switch v {
	case ast.VisibilityExternal, ast.VisibilityPublic:
		return types.FunctionExternal
	default:
		return types.FunctionInternal
	}
}

// FunctionFromDefinition interns the Function type of an ordinary
// function declaration (internal or external), with its parameter and
// return types already resolved by the caller.
func (in *Interner) FunctionFromDefinition(decl ast.FunctionDefinition, paramTypes, returnTypes []*types.Type, mutability types.StateMutability) *types.Type {
	return in.internFunction(types.FunctionSpec{
		Params:      paramTypes,
		ParamNames:  paramNamesOf(decl.Parameters()),
		Returns:     returnTypes,
		ReturnNames: paramNamesOf(decl.ReturnParameters()),
		Kind:        visibilityToFunctionKind(decl.Visibility()),
		Mutability:  mutability,
		Decl:        decl,
	})
}

// FunctionFromAccessor interns the synthesized public-accessor function
// type of a public state variable: an external, view, zero-argument
// function returning the variable's type (mappings/arrays would in a
// full implementation also synthesize index parameters; that expansion
// belongs to name resolution, which owns the variable's structural
// type, not this core).
func (in *Interner) FunctionFromAccessor(decl ast.VariableDeclaration, returnType *types.Type) *types.Type {
	return in.internFunction(types.FunctionSpec{
		Returns:     []*types.Type{returnType},
		ReturnNames: []string{decl.Name()},
		Kind:        types.FunctionExternal,
		Mutability:  types.View,
	})
}

// FunctionFromEvent interns an Event-kind function type.
func (in *Interner) FunctionFromEvent(decl ast.EventDefinition, paramTypes []*types.Type) *types.Type {
	return in.internFunction(types.FunctionSpec{
		Params:     paramTypes,
		ParamNames: paramNamesOf(decl.Parameters()),
		Kind:       types.FunctionEvent,
		Mutability: types.NonPayable,
	})
}

// FunctionFromTypeName interns the Function type denoted by a parsed
// function-type-name expression (`function(uint) external view returns
// (bool)`).
func (in *Interner) FunctionFromTypeName(ftn ast.FunctionTypeName, paramTypes, returnTypes []*types.Type, mutability types.StateMutability) *types.Type {
	return in.internFunction(types.FunctionSpec{
		Params:      paramTypes,
		ParamNames:  paramNamesOf(ftn.Parameters()),
		Returns:     returnTypes,
		ReturnNames: paramNamesOf(ftn.ReturnParameters()),
		Kind:        visibilityToFunctionKind(ftn.Visibility()),
		Mutability:  mutability,
	})
}

// FreeFormFunction is the shape used to declare the built-in/intrinsic
// function types the Global Context publishes (addmod, keccak256,
// log0..log4, and so on): no owning AST declaration, an explicit
// FunctionKind discriminating the VM intrinsic, parameter/return types
// given directly as handles with optional names.
type FreeFormFunction struct {
	ParamNames      []string
	Params          []*types.Type
	ReturnNames     []string
	Returns         []*types.Type
	Kind            types.FunctionKind
	Mutability      types.StateMutability
	GasSet          bool
	ValueSet        bool
	Bound           bool
	ArbitraryParams bool
}

// FunctionFreeForm interns a Function type built directly from type
// handles rather than from an AST declaration.
func (in *Interner) FunctionFreeForm(spec FreeFormFunction) *types.Type {
	return in.internFunction(types.FunctionSpec{
		Params:          spec.Params,
		ParamNames:      spec.ParamNames,
		Returns:         spec.Returns,
		ReturnNames:     spec.ReturnNames,
		Kind:            spec.Kind,
		Mutability:      spec.Mutability,
		GasSet:          spec.GasSet,
		ValueSet:        spec.ValueSet,
		Bound:           spec.Bound,
		ArbitraryParams: spec.ArbitraryParams,
	})
}

func paramNamesOf(params []ast.Parameter) []string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return names
}
