package types

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunholo/ailang/internal/ast"
)

func TestAtomStrings(t *testing.T) {
	tests := []struct {
		name string
		typ  *Type
		want string
	}{
		{"bool", NewBool(), "bool"},
		{"address", NewAddress(false), "address"},
		{"address payable", NewAddress(true), "address payable"},
		{"uint8", NewInteger(8, false), "uint8"},
		{"int256", NewInteger(256, true), "int256"},
		{"bytes32", NewFixedBytes(32), "bytes32"},
		{"ufixed128x18", NewFixedPoint(128, 18, false), "ufixed128x18"},
		{"fixed8x4", NewFixedPoint(8, 4, true), "fixed8x4"},
		{"inaccessible dynamic", NewInaccessibleDynamic(), "inaccessible_dynamic"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.String())
		})
	}
}

func TestArrayString(t *testing.T) {
	elem := NewInteger(256, false)
	fixedLen := big.NewInt(4)

	tests := []struct {
		name string
		typ  *Type
		want string
	}{
		{"dynamic memory array", NewArray(LocationMemory, elem, nil, false, false), "uint256[] memory"},
		{"fixed storage array", NewArray(LocationStorage, elem, fixedLen, false, false), "uint256[4] storage"},
		{"bytes atom storage", NewArray(LocationStorage, nil, nil, false, false), "bytes storage"},
		{"string atom memory", NewArray(LocationMemory, nil, nil, true, false), "string memory"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.String())
		})
	}
}

func TestMappingAndTupleString(t *testing.T) {
	m := NewMapping(NewAddress(false), NewInteger(256, false))
	assert.Equal(t, "mapping(address => uint256)", m.String())

	tup := NewTuple([]*Type{NewBool(), NewInteger(256, false)})
	assert.Equal(t, "(bool,uint256)", tup.String())

	empty := NewEmptyTuple()
	assert.Equal(t, "()", empty.String())
}

func TestFunctionString(t *testing.T) {
	fn := NewFunction(FunctionSpec{
		Params:     []*Type{NewAddress(false), NewInteger(256, false)},
		Returns:    []*Type{NewBool()},
		Kind:       FunctionExternal,
		Mutability: NonPayable,
	})
	assert.Equal(t, "function(address,uint256) returns (bool)", fn.String())

	noReturn := NewFunction(FunctionSpec{Params: []*Type{NewBool()}, Kind: FunctionAssert, Mutability: Pure})
	assert.Equal(t, "function(bool)", noReturn.String())
}

func TestRationalAndStringLiteralString(t *testing.T) {
	lit := NewStringLiteral([]byte("hello"))
	assert.Equal(t, `literal_string "hello"`, lit.String())

	r := NewRationalNumber(big.NewRat(1, 2), nil)
	assert.Equal(t, "rational_const 1/2", r.String())
}

func TestNominalKindStrings(t *testing.T) {
	c := NewContract("C1", "Token", false)
	assert.Equal(t, "contract Token", c.String())

	super := NewContract("C1", "Token", true)
	assert.Equal(t, "super Token", super.String())

	s := NewStruct("S1", "Point", LocationMemory)
	assert.Equal(t, "struct Point", s.String())

	e := NewEnum("E1", "Color")
	assert.Equal(t, "enum Color", e.String())

	mod := NewModifier("M1", "onlyOwner")
	assert.Equal(t, "modifier onlyOwner", mod.String())

	unit := &ast.StubSourceUnit{NodeID_: "U1", Path_: "main.sol"}
	module := NewModule(unit)
	assert.Equal(t, "module main.sol", module.String())

	underlying := NewInteger(256, false)
	typeOf := NewTypeOf(underlying)
	assert.Equal(t, "type(uint256)", typeOf.String())
}

func TestMagicStrings(t *testing.T) {
	block := NewMagic(MagicBlock)
	assert.Equal(t, "magic(block)", block.String())

	meta := NewMetaType(NewInteger(256, false))
	assert.Equal(t, MagicMetaType, meta.MagicKindOf())
	assert.Equal(t, "type(uint256)", meta.String())
}

func TestAccessorsPanicOnWrongKind(t *testing.T) {
	b := NewBool()
	assert.Panics(t, func() { b.IntBits() })
	assert.Panics(t, func() { b.FixedBytesLen() })
	assert.Panics(t, func() { b.Element() })
	assert.Panics(t, func() { b.MapKey() })
	assert.Panics(t, func() { b.TupleElements() })
	assert.Panics(t, func() { b.FunctionParams() })
	assert.Panics(t, func() { b.DeclID() })
	assert.Panics(t, func() { b.Underlying() })
	assert.Panics(t, func() { b.MagicKindOf() })

	meta := NewMagic(MagicBlock)
	assert.Panics(t, func() { meta.MetaTypeOf() }, "MetaTypeOf on a non-MetaType Magic value must panic")
}

func TestIsSignedAcrossKinds(t *testing.T) {
	require.True(t, NewInteger(256, true).IsSigned())
	require.False(t, NewInteger(256, false).IsSigned())
	require.True(t, NewFixedPoint(128, 18, true).IsSigned())
	assert.Panics(t, func() { NewBool().IsSigned() })
}

func TestLengthReportsDynamicVsFixed(t *testing.T) {
	dyn := NewArray(LocationMemory, NewBool(), nil, false, false)
	_, ok := dyn.Length()
	assert.False(t, ok)

	fixed := NewArray(LocationMemory, NewBool(), big.NewInt(3), false, false)
	length, ok := fixed.Length()
	require.True(t, ok)
	assert.Equal(t, big.NewInt(3), length)
}

func TestKindStringUnknown(t *testing.T) {
	assert.Equal(t, "Kind(99)", Kind(99).String())
}
