package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosString(t *testing.T) {
	p := Pos{File: "Token.sol", Line: 12, Column: 5}
	assert.Equal(t, "Token.sol:12:5", p.String())
}

func TestStubFunctionSatisfiesFunctionDefinition(t *testing.T) {
	var fd FunctionDefinition = &StubFunction{
		NodeID_:     "F1",
		Name_:       "transfer",
		Params:      []Parameter{{Name: "to", Type: "address"}, {Name: "amount", Type: "uint256"}},
		Returns:     []Parameter{{Type: "bool"}},
		Visibility_: VisibilityExternal,
	}

	assert.Equal(t, NodeID("F1"), fd.ID())
	assert.Equal(t, "transfer", fd.Name())
	assert.Len(t, fd.Parameters(), 2)
	assert.Equal(t, "amount", fd.Parameters()[1].Name)
	assert.Equal(t, VisibilityExternal, fd.Visibility())
	assert.Equal(t, "bool", fd.ReturnParameters()[0].Type)
}

func TestStubVariableSatisfiesVariableDeclaration(t *testing.T) {
	var vd VariableDeclaration = &StubVariable{NodeID_: "V1", Name_: "balance", TypeName_: "uint256", Public: true}

	assert.Equal(t, "balance", vd.Name())
	assert.Equal(t, "uint256", vd.TypeName())
	assert.True(t, vd.IsPublic())
}

func TestStubStructExposesMembers(t *testing.T) {
	x := &StubVariable{NodeID_: "V1", Name_: "x", TypeName_: "uint256"}
	y := &StubVariable{NodeID_: "V2", Name_: "y", TypeName_: "uint256"}

	var sd StructDefinition = &StubStruct{NodeID_: "S1", Name_: "Point", Members_: []VariableDeclaration{x, y}}

	assert.Equal(t, "Point", sd.Name())
	require := assert.New(t)
	require.Len(sd.Members(), 2)
	require.Equal("y", sd.Members()[1].Name())
}

func TestTwoStubsWithSameNodeIDCompareEqualByID(t *testing.T) {
	// NodeID identity, not struct identity, is what the interner's nominal
	// caches key on; two independently constructed stubs sharing a NodeID
	// must report the same ID even though they are distinct allocations.
	c1 := &StubContract{NodeID_: "C1", Name_: "Token"}
	c2 := &StubContract{NodeID_: "C1", Name_: "Token"}

	assert.NotSame(t, c1, c2)
	assert.Equal(t, c1.ID(), c2.ID())
}

func TestStubSourceUnitSatisfiesSourceUnit(t *testing.T) {
	var su SourceUnit = &StubSourceUnit{NodeID_: "U1", Path_: "contracts/Token.sol"}
	assert.Equal(t, NodeID("U1"), su.ID())
	assert.Equal(t, "contracts/Token.sol", su.Path())
}

func TestStubEnumAndModifierSatisfyInterfaces(t *testing.T) {
	var ed EnumDefinition = &StubEnum{NodeID_: "E1", Name_: "Color", Members_: []string{"Red", "Green", "Blue"}}
	assert.Equal(t, []string{"Red", "Green", "Blue"}, ed.Members())

	var md ModifierDefinition = &StubModifier{NodeID_: "M1", Name_: "onlyOwner"}
	assert.Equal(t, "onlyOwner", md.Name())
	assert.Empty(t, md.Parameters())
}
