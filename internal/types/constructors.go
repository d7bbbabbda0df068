package types

import (
	"math/big"

	"github.com/sunholo/ailang/internal/ast"
)

// The New* constructors below build raw, uncached Type values. They
// perform no validation and enforce no canonicalization — that is
// internal/interner's job. Only internal/interner should call these;
// every other caller receives Type values exclusively through the
// Interner's public factory methods, which is what makes pointer
// identity a reliable proxy for semantic equality.

func NewBool() *Type { return &Type{kind: KindBool} }

func NewAddress(payable bool) *Type {
	return &Type{kind: KindAddress, payableAddress: payable}
}

func NewInteger(bits int, signed bool) *Type {
	return &Type{kind: KindInteger, intBits: bits, intSigned: signed}
}

func NewFixedBytes(length int) *Type {
	return &Type{kind: KindFixedBytes, fixedBytesLen: length}
}

// NewFixedPoint builds a fixedMxN/ufixedMxN type: bits is the total
// width M, fractionalBits is the decimal place count N (Solidity
// semantics — M is not integer-bits plus fractional-bits, it already
// is the total).
func NewFixedPoint(bits, fractionalBits int, signed bool) *Type {
	return &Type{kind: KindFixedPoint, fpBits: bits, fpFracBits: fractionalBits, fpSigned: signed}
}

func NewArray(location DataLocation, element *Type, length *big.Int, isString, isPointer bool) *Type {
	return &Type{
		kind:         KindArray,
		arrElement:   element,
		arrLength:    length,
		arrLocation:  location,
		arrIsString:  isString,
		arrIsPointer: isPointer,
	}
}

func NewMapping(key, value *Type) *Type {
	return &Type{kind: KindMapping, mapKey: key, mapValue: value}
}

func NewTuple(elems []*Type) *Type {
	return &Type{kind: KindTuple, tupleElems: elems}
}

// FunctionSpec groups a Function type's constructor arguments.
type FunctionSpec struct {
	Params            []*Type
	ParamNames        []string
	Returns           []*Type
	ReturnNames       []string
	Kind              FunctionKind
	Mutability        StateMutability
	GasSet            bool
	ValueSet          bool
	Bound             bool
	ArbitraryParams   bool
	Decl              ast.FunctionDefinition
}

func NewFunction(spec FunctionSpec) *Type {
	return &Type{
		kind:              KindFunction,
		fnParams:          spec.Params,
		fnParamNames:      spec.ParamNames,
		fnReturns:         spec.Returns,
		fnReturnNames:     spec.ReturnNames,
		fnKind:            spec.Kind,
		fnMutability:      spec.Mutability,
		fnGasSet:          spec.GasSet,
		fnValueSet:        spec.ValueSet,
		fnBound:           spec.Bound,
		fnArbitraryParams: spec.ArbitraryParams,
		fnDecl:            spec.Decl,
	}
}

func NewStringLiteral(b []byte) *Type {
	return &Type{kind: KindStringLiteral, literalBytes: b}
}

func NewRationalNumber(v *big.Rat, compatible *Type) *Type {
	return &Type{kind: KindRationalNumber, rationalValue: v, rationalCompatible: compatible}
}

func NewContract(id ast.NodeID, name string, isSuper bool) *Type {
	return &Type{kind: KindContract, declID: id, declName: name, contractIsSuper: isSuper}
}

func NewStruct(id ast.NodeID, name string, location DataLocation) *Type {
	return &Type{kind: KindStruct, declID: id, declName: name, structLocation: location}
}

func NewEnum(id ast.NodeID, name string) *Type {
	return &Type{kind: KindEnum, declID: id, declName: name}
}

func NewModule(unit ast.SourceUnit) *Type {
	return &Type{kind: KindModule, declID: unit.ID(), declName: unit.Path(), sourceUnit: unit}
}

func NewTypeOf(underlying *Type) *Type {
	return &Type{kind: KindTypeOf, typeOfUnderlying: underlying}
}

func NewModifier(id ast.NodeID, name string) *Type {
	return &Type{kind: KindModifier, declID: id, declName: name}
}

func NewMagic(kind MagicKind) *Type {
	return &Type{kind: KindMagic, magicKind: kind}
}

func NewMetaType(of *Type) *Type {
	return &Type{kind: KindMagic, magicKind: MagicMetaType, magicMetaOf: of}
}

func NewInaccessibleDynamic() *Type {
	return &Type{kind: KindInaccessibleDynamic}
}

func NewEmptyTuple() *Type {
	return &Type{kind: KindTuple, tupleElems: nil}
}
