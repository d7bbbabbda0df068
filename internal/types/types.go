// Package types defines the closed, tagged universe of type values this
// core interns. A Type is never constructed directly by callers outside
// internal/interner — every value in circulation is a pointer handed out
// by the Interner, so pointer identity already implies semantic type
// equality and no Equals method is needed on the public surface.
package types

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/sunholo/ailang/internal/ast"
)

// Kind discriminates the tagged union. It is a closed enumeration: every
// switch over Kind in this module is expected to be exhaustive.
type Kind int

const (
	KindBool Kind = iota
	KindAddress
	KindInteger
	KindFixedBytes
	KindFixedPoint
	KindArray
	KindMapping
	KindTuple
	KindFunction
	KindStringLiteral
	KindRationalNumber
	KindContract
	KindStruct
	KindEnum
	KindModule
	KindTypeOf
	KindModifier
	KindMagic
	KindInaccessibleDynamic
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "Bool"
	case KindAddress:
		return "Address"
	case KindInteger:
		return "Integer"
	case KindFixedBytes:
		return "FixedBytes"
	case KindFixedPoint:
		return "FixedPoint"
	case KindArray:
		return "Array"
	case KindMapping:
		return "Mapping"
	case KindTuple:
		return "Tuple"
	case KindFunction:
		return "Function"
	case KindStringLiteral:
		return "StringLiteral"
	case KindRationalNumber:
		return "RationalNumber"
	case KindContract:
		return "Contract"
	case KindStruct:
		return "Struct"
	case KindEnum:
		return "Enum"
	case KindModule:
		return "Module"
	case KindTypeOf:
		return "TypeOf"
	case KindModifier:
		return "Modifier"
	case KindMagic:
		return "Magic"
	case KindInaccessibleDynamic:
		return "InaccessibleDynamic"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// DataLocation is the storage tier of a reference-typed value. Atoms and
// other non-reference types carry LocationNone.
type DataLocation int

const (
	LocationNone DataLocation = iota
	LocationStorage
	LocationMemory
	LocationCallData
)

func (l DataLocation) String() string {
	switch l {
	case LocationStorage:
		return "storage"
	case LocationMemory:
		return "memory"
	case LocationCallData:
		return "calldata"
	default:
		return ""
	}
}

// StateMutability classifies a Function type's interaction with chain
// state.
type StateMutability int

const (
	Pure StateMutability = iota
	View
	NonPayable
	Payable
)

func (m StateMutability) String() string {
	switch m {
	case Pure:
		return "pure"
	case View:
		return "view"
	case NonPayable:
		return "nonpayable"
	case Payable:
		return "payable"
	default:
		return fmt.Sprintf("StateMutability(%d)", int(m))
	}
}

// FunctionKind closes over every calling convention and VM intrinsic a
// Function type can describe.
type FunctionKind int

const (
	FunctionInternal FunctionKind = iota
	FunctionExternal
	FunctionCallCode
	FunctionDelegateCall
	FunctionBareCall
	FunctionCreation
	FunctionSend
	FunctionTransfer
	FunctionKECCAK256
	FunctionECRecover
	FunctionSHA256
	FunctionRIPEMD160
	FunctionLog0
	FunctionLog1
	FunctionLog2
	FunctionLog3
	FunctionLog4
	FunctionGasLeft
	FunctionBlockHash
	FunctionAddMod
	FunctionMulMod
	FunctionAssert
	FunctionRequire
	FunctionRevert
	FunctionSelfdestruct
	FunctionMetaType
	FunctionEvent
	FunctionUserDefined
)

// MagicKind enumerates the fixed set of built-in namespace objects.
type MagicKind int

const (
	MagicBlock MagicKind = iota
	MagicMessage
	MagicTransaction
	MagicABI
	MagicMetaType
)

func (k MagicKind) String() string {
	switch k {
	case MagicBlock:
		return "block"
	case MagicMessage:
		return "msg"
	case MagicTransaction:
		return "tx"
	case MagicABI:
		return "abi"
	case MagicMetaType:
		return "type"
	default:
		return fmt.Sprintf("MagicKind(%d)", int(k))
	}
}

// Type is the single tagged variant every interned value is an instance
// of. Only the fields relevant to Kind are populated; callers use the
// accessor methods below rather than reading fields directly, so an
// accidental cross-kind read panics instead of silently reading zero
// values.
type Type struct {
	kind Kind

	// Address
	payableAddress bool

	// Integer
	intBits   int
	intSigned bool

	// FixedBytes
	fixedBytesLen int

	// FixedPoint. fpBits is the total bit width M (multiple of 8 in
	// [8,256], matching Solidity's fixedMxN); fpFracBits is the decimal
	// place count N. Integer bits, where needed, are fpBits-fpFracBits.
	fpBits     int
	fpFracBits int
	fpSigned   bool

	// Array
	arrElement   *Type
	arrLength    *big.Int // nil => dynamically sized
	arrLocation  DataLocation
	arrIsString  bool
	arrIsPointer bool

	// Mapping
	mapKey   *Type
	mapValue *Type

	// Tuple
	tupleElems []*Type

	// Function
	fnParams           []*Type
	fnParamNames       []string
	fnReturns          []*Type
	fnReturnNames      []string
	fnKind             FunctionKind
	fnMutability       StateMutability
	fnGasSet           bool
	fnValueSet         bool
	fnBound            bool
	fnArbitraryParams  bool
	fnDecl             ast.FunctionDefinition

	// StringLiteral
	literalBytes []byte

	// RationalNumber
	rationalValue      *big.Rat
	rationalCompatible *Type // optional compatible fixed-bytes type

	// Contract / Struct / Enum / Module / Modifier
	declID   ast.NodeID
	declName string

	// Contract
	contractIsSuper bool

	// Struct
	structLocation DataLocation

	// Module
	sourceUnit ast.SourceUnit

	// TypeOf
	typeOfUnderlying *Type

	// Magic
	magicKind   MagicKind
	magicMetaOf *Type // populated when magicKind == MagicMetaType
}

func (t *Type) requireKind(k Kind) {
	if t.kind != k {
		panic(fmt.Sprintf("types: accessor for %s called on %s value", k, t.kind))
	}
}

// Kind returns the type's discriminator.
func (t *Type) Kind() Kind { return t.kind }

// IsPayableAddress reports whether an Address type is the payable
// variant.
func (t *Type) IsPayableAddress() bool {
	t.requireKind(KindAddress)
	return t.payableAddress
}

// IntBits returns an Integer type's bit width.
func (t *Type) IntBits() int {
	t.requireKind(KindInteger)
	return t.intBits
}

// IsSigned returns an Integer or FixedPoint type's signedness.
func (t *Type) IsSigned() bool {
	switch t.kind {
	case KindInteger:
		return t.intSigned
	case KindFixedPoint:
		return t.fpSigned
	default:
		panic(fmt.Sprintf("types: IsSigned called on %s value", t.kind))
	}
}

// FixedBytesLen returns a FixedBytes type's byte length.
func (t *Type) FixedBytesLen() int {
	t.requireKind(KindFixedBytes)
	return t.fixedBytesLen
}

// FixedPointBits returns a FixedPoint type's (integer-bits,
// fractional-bits) shape, per spec.md §3's data model. integerBits is
// derived as the total width minus the fractional width; use Bits for
// the total width M that appears in the type's surface name (fixedMxN).
func (t *Type) FixedPointBits() (integerBits, fractionalBits int) {
	t.requireKind(KindFixedPoint)
	return t.fpBits - t.fpFracBits, t.fpFracBits
}

// Bits returns a FixedPoint type's total bit width M (the number
// appearing before the "x" in fixedMxN/ufixedMxN).
func (t *Type) Bits() int {
	t.requireKind(KindFixedPoint)
	return t.fpBits
}

// Element returns an Array type's element type, or nil for the
// built-in bytes/string byte-sequence array (which has no element type
// of its own).
func (t *Type) Element() *Type {
	t.requireKind(KindArray)
	return t.arrElement
}

// Length returns an Array type's length and whether it is statically
// sized. A dynamically sized array reports ok == false.
func (t *Type) Length() (length *big.Int, ok bool) {
	t.requireKind(KindArray)
	if t.arrLength == nil {
		return nil, false
	}
	return t.arrLength, true
}

// Location returns the data location of an Array or Struct type.
func (t *Type) Location() DataLocation {
	switch t.kind {
	case KindArray:
		return t.arrLocation
	case KindStruct:
		return t.structLocation
	default:
		panic(fmt.Sprintf("types: Location called on %s value", t.kind))
	}
}

// IsStringFlavor reports whether an Array type is the string/bytes
// flavor of a dynamic byte array.
func (t *Type) IsStringFlavor() bool {
	t.requireKind(KindArray)
	return t.arrIsString
}

// IsPointer reports whether an Array type is the pointer (vs. owning
// value) flavor.
func (t *Type) IsPointer() bool {
	t.requireKind(KindArray)
	return t.arrIsPointer
}

// MapKey and MapValue return a Mapping type's key and value types. Keys
// are always storage-located by policy (the interner normalizes this at
// construction time).
func (t *Type) MapKey() *Type {
	t.requireKind(KindMapping)
	return t.mapKey
}

func (t *Type) MapValue() *Type {
	t.requireKind(KindMapping)
	return t.mapValue
}

// TupleElements returns a Tuple type's ordered component types.
func (t *Type) TupleElements() []*Type {
	t.requireKind(KindTuple)
	return t.tupleElems
}

// FunctionParams and FunctionReturns return a Function type's ordered
// parameter/return types. The optional names (when present) are not
// part of the canonicalization key (spec Open Question, resolved:
// names excluded from equivalence) but are retained here for rendering.
func (t *Type) FunctionParams() []*Type {
	t.requireKind(KindFunction)
	return t.fnParams
}

func (t *Type) FunctionParamNames() []string {
	t.requireKind(KindFunction)
	return t.fnParamNames
}

func (t *Type) FunctionReturns() []*Type {
	t.requireKind(KindFunction)
	return t.fnReturns
}

func (t *Type) FunctionReturnNames() []string {
	t.requireKind(KindFunction)
	return t.fnReturnNames
}

func (t *Type) FunctionKind() FunctionKind {
	t.requireKind(KindFunction)
	return t.fnKind
}

func (t *Type) StateMutability() StateMutability {
	t.requireKind(KindFunction)
	return t.fnMutability
}

func (t *Type) IsGasSet() bool {
	t.requireKind(KindFunction)
	return t.fnGasSet
}

func (t *Type) IsValueSet() bool {
	t.requireKind(KindFunction)
	return t.fnValueSet
}

func (t *Type) IsBound() bool {
	t.requireKind(KindFunction)
	return t.fnBound
}

func (t *Type) HasArbitraryParameters() bool {
	t.requireKind(KindFunction)
	return t.fnArbitraryParams
}

// Declaration returns the function type's owning declaration, if it was
// constructed from one (nil for free-standing/intrinsic function types).
func (t *Type) Declaration() ast.FunctionDefinition {
	t.requireKind(KindFunction)
	return t.fnDecl
}

// LiteralBytes returns a StringLiteral type's raw bytes.
func (t *Type) LiteralBytes() []byte {
	t.requireKind(KindStringLiteral)
	return t.literalBytes
}

// RationalValue returns a RationalNumber type's exact value.
func (t *Type) RationalValue() *big.Rat {
	t.requireKind(KindRationalNumber)
	return t.rationalValue
}

// CompatibleBytesType returns the fixed-bytes type a RationalNumber is
// compatible with, if any.
func (t *Type) CompatibleBytesType() (*Type, bool) {
	t.requireKind(KindRationalNumber)
	if t.rationalCompatible == nil {
		return nil, false
	}
	return t.rationalCompatible, true
}

// DeclID returns the owning declaration identity of a Contract, Struct,
// Enum, Module, or Modifier type.
func (t *Type) DeclID() ast.NodeID {
	switch t.kind {
	case KindContract, KindStruct, KindEnum, KindModule, KindModifier:
		return t.declID
	default:
		panic(fmt.Sprintf("types: DeclID called on %s value", t.kind))
	}
}

// DeclName returns the human-readable name of a Contract, Struct, Enum,
// Module, or Modifier type.
func (t *Type) DeclName() string {
	switch t.kind {
	case KindContract, KindStruct, KindEnum, KindModule, KindModifier:
		return t.declName
	default:
		panic(fmt.Sprintf("types: DeclName called on %s value", t.kind))
	}
}

// IsSuper reports whether a Contract type represents the `super` view of
// its declaration.
func (t *Type) IsSuper() bool {
	t.requireKind(KindContract)
	return t.contractIsSuper
}

// SourceUnit returns a Module type's underlying source unit.
func (t *Type) SourceUnit() ast.SourceUnit {
	t.requireKind(KindModule)
	return t.sourceUnit
}

// Underlying returns a TypeOf type's underlying type.
func (t *Type) Underlying() *Type {
	t.requireKind(KindTypeOf)
	return t.typeOfUnderlying
}

// MagicKindOf returns a Magic type's namespace discriminator.
func (t *Type) MagicKindOf() MagicKind {
	t.requireKind(KindMagic)
	return t.magicKind
}

// MetaTypeOf returns the type a Magic(MetaType) value wraps.
func (t *Type) MetaTypeOf() *Type {
	t.requireKind(KindMagic)
	if t.magicKind != MagicMetaType {
		panic("types: MetaTypeOf called on non-MetaType Magic value")
	}
	return t.magicMetaOf
}

// String renders a human-readable, round-trippable (for elementary
// kinds) description of the type.
func (t *Type) String() string {
	switch t.kind {
	case KindBool:
		return "bool"
	case KindAddress:
		if t.payableAddress {
			return "address payable"
		}
		return "address"
	case KindInteger:
		if t.intSigned {
			return fmt.Sprintf("int%d", t.intBits)
		}
		return fmt.Sprintf("uint%d", t.intBits)
	case KindFixedBytes:
		return fmt.Sprintf("bytes%d", t.fixedBytesLen)
	case KindFixedPoint:
		prefix := "ufixed"
		if t.fpSigned {
			prefix = "fixed"
		}
		return fmt.Sprintf("%s%dx%d", prefix, t.fpBits, t.fpFracBits)
	case KindArray:
		var name string
		if t.arrElement == nil {
			// the built-in byte-sequence type: bytes (isString false) or
			// string (isString true), not a generic array of an element type.
			if t.arrIsString {
				name = "string"
			} else {
				name = "bytes"
			}
			if t.arrLength != nil {
				name = fmt.Sprintf("%s[%s]", name, t.arrLength.String())
			}
		} else if t.arrLength != nil {
			name = fmt.Sprintf("%s[%s]", t.arrElement.String(), t.arrLength.String())
		} else {
			name = t.arrElement.String() + "[]"
		}
		if t.arrLocation != LocationNone {
			name = name + " " + t.arrLocation.String()
		}
		return name
	case KindMapping:
		return fmt.Sprintf("mapping(%s => %s)", t.mapKey.String(), t.mapValue.String())
	case KindTuple:
		parts := make([]string, len(t.tupleElems))
		for i, e := range t.tupleElems {
			parts[i] = e.String()
		}
		return "(" + strings.Join(parts, ",") + ")"
	case KindFunction:
		params := make([]string, len(t.fnParams))
		for i, p := range t.fnParams {
			params[i] = p.String()
		}
		rets := make([]string, len(t.fnReturns))
		for i, r := range t.fnReturns {
			rets[i] = r.String()
		}
		s := fmt.Sprintf("function(%s)", strings.Join(params, ","))
		if len(rets) > 0 {
			s += fmt.Sprintf(" returns (%s)", strings.Join(rets, ","))
		}
		return s
	case KindStringLiteral:
		return fmt.Sprintf("literal_string %q", string(t.literalBytes))
	case KindRationalNumber:
		return fmt.Sprintf("rational_const %s", t.rationalValue.RatString())
	case KindContract:
		if t.contractIsSuper {
			return "super " + t.declName
		}
		return "contract " + t.declName
	case KindStruct:
		return "struct " + t.declName
	case KindEnum:
		return "enum " + t.declName
	case KindModule:
		return "module " + t.declName
	case KindTypeOf:
		return fmt.Sprintf("type(%s)", t.typeOfUnderlying.String())
	case KindModifier:
		return "modifier " + t.declName
	case KindMagic:
		if t.magicKind == MagicMetaType {
			return fmt.Sprintf("type(%s)", t.magicMetaOf.String())
		}
		return "magic(" + t.magicKind.String() + ")"
	case KindInaccessibleDynamic:
		return "inaccessible_dynamic"
	default:
		return t.kind.String()
	}
}
