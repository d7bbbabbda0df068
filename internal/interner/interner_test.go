package interner

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunholo/ailang/internal/ast"
	"github.com/sunholo/ailang/internal/errors"
	"github.com/sunholo/ailang/internal/types"
)

func TestAtomPrePopulation(t *testing.T) {
	in := New()

	assert.Same(t, in.Bool(), in.Bool())
	assert.Same(t, in.Address(), in.Address())
	assert.NotSame(t, in.Address(), in.PayableAddress())
	assert.Same(t, in.EmptyTuple(), in.EmptyTuple())
	assert.Same(t, in.InaccessibleDynamic(), in.InaccessibleDynamic())

	for bits := 8; bits <= 256; bits += 8 {
		signed, err := in.Integer(bits, true)
		require.NoError(t, err)
		unsigned, err := in.Integer(bits, false)
		require.NoError(t, err)
		assert.NotSame(t, signed, unsigned)

		again, err := in.Integer(bits, true)
		require.NoError(t, err)
		assert.Same(t, signed, again, "integer atoms must be pre-populated, not lazily cached")
	}

	for n := 1; n <= 32; n++ {
		fb, err := in.FixedBytes(n)
		require.NoError(t, err)
		again, err := in.FixedBytes(n)
		require.NoError(t, err)
		assert.Same(t, fb, again)
	}

	assert.NotSame(t, in.BytesType(), in.BytesMemory())
	assert.NotSame(t, in.StringType(), in.StringMemory())
	assert.NotSame(t, in.BytesType(), in.StringType())
}

func TestIntegerRejectsOutOfRangeWidths(t *testing.T) {
	in := New()

	_, err := in.Integer(7, true)
	requireCode(t, err, errors.TYP002)

	_, err = in.Integer(264, true)
	requireCode(t, err, errors.TYP002)

	_, err = in.Integer(0, true)
	requireCode(t, err, errors.TYP002)
}

func TestFixedBytesRejectsOutOfRangeLengths(t *testing.T) {
	in := New()

	_, err := in.FixedBytes(0)
	requireCode(t, err, errors.TYP003)

	_, err = in.FixedBytes(33)
	requireCode(t, err, errors.TYP003)
}

func TestFixedPointShapeValidation(t *testing.T) {
	in := New()

	t1, err := in.FixedPoint(128, 18, false)
	require.NoError(t, err)
	assert.Equal(t, "ufixed128x18", t1.String())

	t2, err := in.FixedPoint(128, 18, false)
	require.NoError(t, err)
	assert.Same(t, t1, t2, "fixed-point types must canonicalize by shape")

	_, err = in.FixedPoint(8, 0, false)
	requireCode(t, err, errors.TYP004)

	_, err = in.FixedPoint(8, 81, false)
	requireCode(t, err, errors.TYP004)

	_, err = in.FixedPoint(7, 2, false)
	requireCode(t, err, errors.TYP004)
}

func TestArrayCanonicalization(t *testing.T) {
	in := New()
	elem, err := in.Integer(256, false)
	require.NoError(t, err)

	a1 := in.Array(types.LocationMemory, elem, big.NewInt(4))
	a2 := in.Array(types.LocationMemory, elem, big.NewInt(4))
	assert.Same(t, a1, a2)

	a3 := in.DynamicArray(types.LocationMemory, elem)
	assert.NotSame(t, a1, a3, "fixed- and dynamically-sized arrays must intern separately")

	a4 := in.DynamicArray(types.LocationStorage, elem)
	assert.NotSame(t, a3, a4, "location is part of the array canonicalization key")
}

func TestWithLocationNonReferenceIdentity(t *testing.T) {
	in := New()
	b := in.Bool()
	assert.Same(t, b, in.WithLocation(b, types.LocationMemory, false), "WithLocation on a non-reference type must return it unchanged")
}

func TestWithLocationIdempotentOverride(t *testing.T) {
	in := New()
	elem, _ := in.Integer(8, false)
	arr := in.DynamicArray(types.LocationStorage, elem)

	once := in.WithLocation(arr, types.LocationMemory, true)
	twice := in.WithLocation(once, types.LocationCallData, true)

	direct := in.WithLocation(arr, types.LocationCallData, true)
	assert.Same(t, direct, twice, "withLocation(withLocation(t,L1,p),L2,p) == withLocation(t,L2,p)")
}

func TestWithLocationOnStruct(t *testing.T) {
	in := New()
	decl := &ast.StubStruct{NodeID_: "S1", Name_: "Point"}
	s := in.Struct(decl, types.LocationStorage)
	relocated := in.WithLocation(s, types.LocationMemory, false)
	assert.Equal(t, types.LocationMemory, relocated.Location())
	assert.Equal(t, s.DeclID(), relocated.DeclID())
}

func TestMappingRejectsInvalidKeys(t *testing.T) {
	in := New()
	u256, _ := in.Integer(256, false)

	_, err := in.Mapping(in.StringType(), u256)
	requireCode(t, err, errors.TYP005)

	_, err = in.Mapping(in.DynamicArray(types.LocationStorage, in.Bool()), u256)
	requireCode(t, err, errors.TYP005)

	decl := &ast.StubStruct{NodeID_: "S1", Name_: "Point"}
	structType := in.Struct(decl, types.LocationStorage)
	_, err = in.Mapping(structType, u256)
	requireCode(t, err, errors.TYP005)

	nested, err := in.Mapping(u256, u256)
	require.NoError(t, err)
	_, err = in.Mapping(nested, u256)
	requireCode(t, err, errors.TYP005)
}

func TestMappingNormalizesKeyLocationToStorage(t *testing.T) {
	in := New()
	u256, _ := in.Integer(256, false)
	fixedArr := in.Array(types.LocationMemory, in.Bool(), big.NewInt(2))

	m1, err := in.Mapping(fixedArr, u256)
	require.NoError(t, err)

	storageArr := in.Array(types.LocationStorage, in.Bool(), big.NewInt(2))
	m2, err := in.Mapping(storageArr, u256)
	require.NoError(t, err)

	assert.Same(t, m1, m2, "mapping keys normalize to storage before lookup")
}

func TestTupleCanonicalizationAndEmptyAlias(t *testing.T) {
	in := New()
	members := []*types.Type{in.Bool(), in.Address()}

	t1 := in.Tuple(members)
	t2 := in.Tuple([]*types.Type{in.Bool(), in.Address()})
	assert.Same(t, t1, t2)

	assert.Same(t, in.EmptyTuple(), in.Tuple(nil))
}

func TestStringLiteralNormalizesBeforeInterning(t *testing.T) {
	in := New()
	l1 := in.StringLiteral([]byte("café"))
	l2 := in.StringLiteral([]byte("café"))
	assert.Same(t, l1, l2, "NFC-equivalent byte sequences must intern to one handle")
}

func TestRationalNumberCanonicalization(t *testing.T) {
	in := New()
	r1 := in.RationalNumber(big.NewRat(1, 2), nil)
	r2 := in.RationalNumber(big.NewRat(2, 4), nil)
	assert.Same(t, r1, r2, "rationals canonicalize on reduced value")

	b32, _ := in.FixedBytes(32)
	r3 := in.RationalNumber(big.NewRat(1, 2), b32)
	assert.NotSame(t, r1, r3, "compatible-bytes tag is part of the key")
}

func TestNominalTypesKeyedOnDeclarationIdentity(t *testing.T) {
	in := New()

	c1 := &ast.StubContract{NodeID_: "C1", Name_: "Token"}
	c2 := &ast.StubContract{NodeID_: "C1", Name_: "Token"}

	h1 := in.Contract(c1, false)
	h2 := in.Contract(c2, false)
	assert.Same(t, h1, h2, "contracts key on declaration identity, not struct identity")

	super := in.Contract(c1, true)
	assert.NotSame(t, h1, super, "isSuper is part of the contract key")

	e1 := in.Enum(&ast.StubEnum{NodeID_: "E1", Name_: "Color"})
	e2 := in.Enum(&ast.StubEnum{NodeID_: "E1", Name_: "Color"})
	assert.Same(t, e1, e2)

	mod1 := in.Modifier(&ast.StubModifier{NodeID_: "M1", Name_: "onlyOwner"})
	mod2 := in.Modifier(&ast.StubModifier{NodeID_: "M1", Name_: "onlyOwner"})
	assert.Same(t, mod1, mod2)

	unit1 := in.Module(&ast.StubSourceUnit{NodeID_: "U1", Path_: "main.sol"})
	unit2 := in.Module(&ast.StubSourceUnit{NodeID_: "U1", Path_: "main.sol"})
	assert.Same(t, unit1, unit2)
}

func TestStructKeyIncludesLocation(t *testing.T) {
	in := New()
	decl := &ast.StubStruct{NodeID_: "S1", Name_: "Point"}

	storage := in.Struct(decl, types.LocationStorage)
	memory := in.Struct(decl, types.LocationMemory)
	assert.NotSame(t, storage, memory)

	again := in.Struct(decl, types.LocationStorage)
	assert.Same(t, storage, again)
}

func TestTypeTypeAndMetaTypeCanonicalization(t *testing.T) {
	in := New()
	u256, _ := in.Integer(256, false)

	tt1 := in.TypeType(u256)
	tt2 := in.TypeType(u256)
	assert.Same(t, tt1, tt2)

	mt1 := in.MetaType(u256)
	mt2 := in.MetaType(u256)
	assert.Same(t, mt1, mt2)
	assert.NotSame(t, tt1, mt1, "TypeType and Magic(MetaType) are distinct kinds over the same underlying type")
}

func TestMagicPanicsOnMetaTypeKind(t *testing.T) {
	in := New()
	assert.Panics(t, func() { in.Magic(types.MagicMetaType) })
}

func TestFunctionEquivalenceExcludesNames(t *testing.T) {
	in := New()
	u256, _ := in.Integer(256, false)
	boolT := in.Bool()

	f1 := in.FunctionFreeForm(FreeFormFunction{
		Params:     []*types.Type{u256},
		ParamNames: []string{"amount"},
		Returns:    []*types.Type{boolT},
		Kind:       types.FunctionExternal,
		Mutability: types.NonPayable,
	})
	f2 := in.FunctionFreeForm(FreeFormFunction{
		Params:     []*types.Type{u256},
		ParamNames: []string{"value"},
		Returns:    []*types.Type{boolT},
		Kind:       types.FunctionExternal,
		Mutability: types.NonPayable,
	})

	assert.Same(t, f1, f2, "function equivalence excludes parameter names per spec.md's Open Question resolution")
	assert.Equal(t, []string{"value"}, f2.FunctionParamNames(), "the stored value still keeps whichever names it was built with")
}

func TestFunctionDistinguishesKindAndMutability(t *testing.T) {
	in := New()
	boolT := in.Bool()

	f1 := in.FunctionFreeForm(FreeFormFunction{Params: []*types.Type{boolT}, Kind: types.FunctionAssert, Mutability: types.Pure})
	f2 := in.FunctionFreeForm(FreeFormFunction{Params: []*types.Type{boolT}, Kind: types.FunctionRequire, Mutability: types.Pure})
	assert.NotSame(t, f1, f2)

	f3 := in.FunctionFreeForm(FreeFormFunction{Params: []*types.Type{boolT}, Kind: types.FunctionAssert, Mutability: types.View})
	assert.NotSame(t, f1, f3)
}

func TestFunctionFromDefinitionUsesVisibility(t *testing.T) {
	in := New()
	boolT := in.Bool()
	decl := &ast.StubFunction{
		NodeID_:     "F1",
		Name_:       "pause",
		Visibility_: ast.VisibilityExternal,
	}

	fn := in.FunctionFromDefinition(decl, nil, []*types.Type{boolT}, types.View)
	assert.Equal(t, types.FunctionExternal, fn.FunctionKind())
	assert.Equal(t, decl, fn.Declaration())
}

func TestResetPreservesAtomsInvalidatesCaches(t *testing.T) {
	in := New()
	boolBefore := in.Bool()
	u256Before, _ := in.Integer(256, false)

	decl := &ast.StubContract{NodeID_: "C1", Name_: "Token"}
	contractBefore := in.Contract(decl, false)
	tupleBefore := in.Tuple([]*types.Type{boolBefore})

	in.Reset()

	assert.Same(t, boolBefore, in.Bool(), "atoms survive reset")
	u256After, _ := in.Integer(256, false)
	assert.Same(t, u256Before, u256After)

	contractAfter := in.Contract(decl, false)
	assert.NotSame(t, contractBefore, contractAfter, "non-atom handles must not survive reset")

	tupleAfter := in.Tuple([]*types.Type{in.Bool()})
	assert.NotSame(t, tupleBefore, tupleAfter)
}

func TestGlobalSingletonIsSharedAndIndependentFromNew(t *testing.T) {
	g1 := Global()
	g2 := Global()
	assert.Same(t, g1, g2)

	independent := New()
	assert.NotSame(t, g1.Bool(), independent.Bool(), "New() must not share state with the process-wide singleton")
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	rep, ok := errors.AsReport(err)
	require.True(t, ok, "error must be a *errors.Report")
	assert.Equal(t, code, rep.Code)
}
