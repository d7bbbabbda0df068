package interner

import (
	"fmt"
	"math/big"

	"golang.org/x/text/unicode/norm"

	"github.com/sunholo/ailang/internal/ast"
	"github.com/sunholo/ailang/internal/errors"
	"github.com/sunholo/ailang/internal/types"
)

// Bool returns the singleton bool type.
func (in *Interner) Bool() *types.Type { return in.boolAtom }

// Address returns the singleton non-payable address type.
func (in *Interner) Address() *types.Type { return in.addressAtom }

// PayableAddress returns the singleton address payable type.
func (in *Interner) PayableAddress() *types.Type { return in.payableAddressAtom }

// EmptyTuple returns the singleton empty tuple `()`, also used as the
// canonical error/void type.
func (in *Interner) EmptyTuple() *types.Type { return in.emptyTupleAtom }

// ErrorType is an alias of EmptyTuple.
func (in *Interner) ErrorType() *types.Type { return in.EmptyTuple() }

// InaccessibleDynamic returns the singleton marker for a dynamically
// sized type that has become inaccessible (e.g. past a calldata slice
// boundary).
func (in *Interner) InaccessibleDynamic() *types.Type { return in.inaccessibleDynamicAtom }

// Byte is fixedBytes(1).
func (in *Interner) Byte() (*types.Type, error) { return in.FixedBytes(1) }

// FixedBytes returns the bytesN atom for 1 <= m <= 32.
func (in *Interner) FixedBytes(m int) (*types.Type, error) {
	if m < 1 || m > 32 {
		return nil, errors.New(errors.TYP003, fmt.Sprintf("fixed-bytes length %d out of range [1,32]", m), map[string]any{"length": m})
	}
	return in.fixedBytesAtoms[m-1], nil
}

// Integer returns the intN/uintN atom. bits must be a multiple of 8 in
// [8,256].
func (in *Interner) Integer(bits int, signed bool) (*types.Type, error) {
	if bits < 8 || bits > 256 || bits%8 != 0 {
		return nil, errors.New(errors.TYP002, fmt.Sprintf("integer bit width %d not a multiple of 8 in [8,256]", bits), map[string]any{"bits": bits})
	}
	idx := bits/8 - 1
	if signed {
		return in.signedIntAtoms[idx], nil
	}
	return in.unsignedIntAtoms[idx], nil
}

// FixedPoint returns the cached fixedMxN/ufixedMxN type. bits (M, the
// total width) must be a multiple of 8 in [8,256]; fractionalBits (N)
// must be in [1,80]. M and N are independent dimensions, not summed —
// fixed128x18 really is a 128-bit type with 18 decimal places, the same
// way Solidity's fixedMxN grammar works.
func (in *Interner) FixedPoint(bits, fractionalBits int, signed bool) (*types.Type, error) {
	if bits < 8 || bits > 256 || bits%8 != 0 || fractionalBits < 1 || fractionalBits > 80 {
		return nil, errors.New(errors.TYP004, fmt.Sprintf("fixed-point shape (%d,%d) invalid", bits, fractionalBits),
			map[string]any{"bits": bits, "fractionalBits": fractionalBits})
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	key := fixedPointKey{bits: bits, fractionalBits: fractionalBits, signed: signed}
	if t, ok := in.fixedPointCache[key]; ok {
		return t, nil
	}
	t := types.NewFixedPoint(bits, fractionalBits, signed)
	in.fixedPointCache[key] = t
	return t, nil
}

// BytesType, BytesMemory, StringType, StringMemory are the four
// distinguished singletons combining string-flavor x storage-vs-memory
// for the dynamic byte array.
func (in *Interner) BytesType() *types.Type   { return in.bytesStorageAtom }
func (in *Interner) BytesMemory() *types.Type { return in.bytesMemoryAtom }
func (in *Interner) StringType() *types.Type  { return in.stringStorageAtom }
func (in *Interner) StringMemory() *types.Type { return in.stringMemoryAtom }

func lengthTag(length *big.Int) string {
	if length == nil {
		return "dyn"
	}
	return length.String()
}

// Array interns a fixed- or dynamically-sized array. Pass length == nil
// for a dynamic array.
func (in *Interner) Array(location types.DataLocation, element *types.Type, length *big.Int) *types.Type {
	return in.arrayOf(location, element, length, false, false)
}

// DynamicArray is a convenience for Array(location, element, nil).
func (in *Interner) DynamicArray(location types.DataLocation, element *types.Type) *types.Type {
	return in.arrayOf(location, element, nil, false, false)
}

// BytesOrStringArray is the dynamic bytes/string convenience overload:
// isString selects the `string` flavor (true) or `bytes` (false). Neither
// carries an element handle; the storage and memory forms are the four
// distinguished singletons.
func (in *Interner) BytesOrStringArray(location types.DataLocation, isString bool) *types.Type {
	return in.arrayOf(location, nil, nil, isString, false)
}

func (in *Interner) arrayOf(location types.DataLocation, element *types.Type, length *big.Int, isString, isPointer bool) *types.Type {
	// The storage and memory bytes/string descriptors are pre-populated
	// atoms; hand those out instead of caching a second copy.
	if element == nil && length == nil && !isPointer {
		switch {
		case location == types.LocationStorage && !isString:
			return in.bytesStorageAtom
		case location == types.LocationMemory && !isString:
			return in.bytesMemoryAtom
		case location == types.LocationStorage && isString:
			return in.stringStorageAtom
		case location == types.LocationMemory && isString:
			return in.stringMemoryAtom
		}
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	key := arrayKey{location: location, element: element, lengthTag: lengthTag(length), isString: isString, isPointer: isPointer}
	if t, ok := in.arrayCache[key]; ok {
		return t
	}
	t := types.NewArray(location, element, length, isString, isPointer)
	in.arrayCache[key] = t
	return t
}

// WithLocation interns a re-located variant of an array/struct/string
// literal reference type. Non-reference types are returned unchanged
// (identity), per spec.md's normalization rules.
func (in *Interner) WithLocation(t *types.Type, location types.DataLocation, isPointer bool) *types.Type {
	switch t.Kind() {
	case types.KindArray:
		length, _ := t.Length()
		return in.arrayOf(location, t.Element(), length, t.IsStringFlavor(), isPointer)
	case types.KindStruct:
		return in.structOf(t.DeclID(), t.DeclName(), location)
	default:
		return t
	}
}

// Mapping interns a mapping type. Keys are always normalized to storage
// by policy before lookup; mapping, struct, and dynamically sized array
// keys (including bytes and string) are rejected.
func (in *Interner) Mapping(key, value *types.Type) (*types.Type, error) {
	if !isValidMappingKey(key) {
		return nil, errors.New(errors.TYP005, fmt.Sprintf("mapping key type %s is not a valid comparable key", key.String()), map[string]any{"keyKind": key.Kind().String()})
	}
	key = in.WithLocation(key, types.LocationStorage, false)

	in.mu.Lock()
	defer in.mu.Unlock()

	mk := mappingKey{key: key, value: value}
	if t, ok := in.mappingCache[mk]; ok {
		return t, nil
	}
	t := types.NewMapping(key, value)
	in.mappingCache[mk] = t
	return t, nil
}

// isValidMappingKey enforces spec.md's "value-typed, comparable" rule:
// dynamic arrays (including bytes/string), mappings, and structs are not
// valid keys.
func isValidMappingKey(key *types.Type) bool {
	switch key.Kind() {
	case types.KindMapping, types.KindStruct:
		return false
	case types.KindArray:
		if _, fixed := key.Length(); !fixed {
			return false
		}
		return true
	default:
		return true
	}
}

// Tuple interns an ordered tuple of component types.
func (in *Interner) Tuple(members []*types.Type) *types.Type {
	if len(members) == 0 {
		return in.emptyTupleAtom
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	key := handleSeqKey(members)
	if t, ok := in.tupleCache[key]; ok {
		return t
	}
	t := types.NewTuple(members)
	in.tupleCache[key] = t
	return t
}

// StringLiteral interns a string-literal type over raw bytes, NFC
// normalized first so two literals that are byte-distinct only by
// Unicode normalization form intern to the same handle, mirroring the
// teacher's lexer-boundary normalization.
func (in *Interner) StringLiteral(b []byte) *types.Type {
	normalized := b
	if !norm.NFC.IsNormal(b) {
		normalized = norm.NFC.Bytes(b)
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	key := string(normalized)
	if t, ok := in.stringLitCache[key]; ok {
		return t
	}
	t := types.NewStringLiteral(normalized)
	in.stringLitCache[key] = t
	return t
}

// RationalNumber interns an exact rational-number-literal type,
// optionally tagged with a compatible fixed-bytes width (for hex
// literals that can also serve as a bytesN constant).
func (in *Interner) RationalNumber(v *big.Rat, compatibleBytes *types.Type) *types.Type {
	in.mu.Lock()
	defer in.mu.Unlock()

	key := v.RatString()
	if compatibleBytes != nil {
		key += "#" + fmt.Sprintf("%p", compatibleBytes)
	}
	if t, ok := in.rationalCache[key]; ok {
		return t
	}
	t := types.NewRationalNumber(new(big.Rat).Set(v), compatibleBytes)
	in.rationalCache[key] = t
	return t
}

// Contract interns a contract (or interface/library) type, keyed on
// declaration identity and the isSuper flag.
func (in *Interner) Contract(decl ast.ContractDefinition, isSuper bool) *types.Type {
	in.mu.Lock()
	defer in.mu.Unlock()

	key := contractKey{declID: decl.ID(), isSuper: isSuper}
	if t, ok := in.contractCache[key]; ok {
		return t
	}
	t := types.NewContract(decl.ID(), decl.Name(), isSuper)
	in.contractCache[key] = t
	return t
}

func (in *Interner) structOf(declID ast.NodeID, name string, location types.DataLocation) *types.Type {
	in.mu.Lock()
	defer in.mu.Unlock()

	key := structKey{declID: declID, location: location}
	if t, ok := in.structCache[key]; ok {
		return t
	}
	t := types.NewStruct(declID, name, location)
	in.structCache[key] = t
	return t
}

// Struct interns a struct type, keyed on (declaration identity,
// location).
func (in *Interner) Struct(decl ast.StructDefinition, location types.DataLocation) *types.Type {
	return in.structOf(decl.ID(), decl.Name(), location)
}

// Enum interns an enum type, keyed on declaration identity.
func (in *Interner) Enum(decl ast.EnumDefinition) *types.Type {
	in.mu.Lock()
	defer in.mu.Unlock()

	if t, ok := in.enumCache[decl.ID()]; ok {
		return t
	}
	t := types.NewEnum(decl.ID(), decl.Name())
	in.enumCache[decl.ID()] = t
	return t
}

// Module interns a module type over a source unit, keyed on its
// declaration identity.
func (in *Interner) Module(unit ast.SourceUnit) *types.Type {
	in.mu.Lock()
	defer in.mu.Unlock()

	if t, ok := in.moduleCache[unit.ID()]; ok {
		return t
	}
	t := types.NewModule(unit)
	in.moduleCache[unit.ID()] = t
	return t
}

// TypeType interns a "type(T)" reflection type over an underlying type
// handle.
func (in *Interner) TypeType(of *types.Type) *types.Type {
	in.mu.Lock()
	defer in.mu.Unlock()

	if t, ok := in.typeOfCache[of]; ok {
		return t
	}
	t := types.NewTypeOf(of)
	in.typeOfCache[of] = t
	return t
}

// Modifier interns a modifier type, keyed on declaration identity.
func (in *Interner) Modifier(decl ast.ModifierDefinition) *types.Type {
	in.mu.Lock()
	defer in.mu.Unlock()

	if t, ok := in.modifierCache[decl.ID()]; ok {
		return t
	}
	t := types.NewModifier(decl.ID(), decl.Name())
	in.modifierCache[decl.ID()] = t
	return t
}

// Magic returns one of the four pre-populated magic namespace atoms.
// Use MetaType for the MetaType(of) variant, which is not an atom.
func (in *Interner) Magic(kind types.MagicKind) *types.Type {
	if kind == types.MagicMetaType {
		panic("interner: Magic called with MagicMetaType; use MetaType(of) instead")
	}
	return in.magicAtoms[kind]
}

// MetaType interns Magic(MetaType) wrapping the given underlying type.
func (in *Interner) MetaType(of *types.Type) *types.Type {
	in.mu.Lock()
	defer in.mu.Unlock()

	if t, ok := in.metaTypeCache[of]; ok {
		return t
	}
	t := types.NewMetaType(of)
	in.metaTypeCache[of] = t
	return t
}
