package global

import (
	"fmt"

	"github.com/sunholo/ailang/internal/interner"
	"github.com/sunholo/ailang/internal/types"
)

// must panics on an error from an elementary-width factory call that
// should never fail for the widths this file uses (uint256, bytes32,
// ...). A failure here would mean this package itself is broken, not
// that a user supplied a bad width, so a panic is correct per spec.md
// §7's "internal assertion violations... should trip a panic".
func must(t *types.Type, err error) *types.Type {
	if err != nil {
		panic(fmt.Sprintf("global: unexpected error building a builtin type: %v", err))
	}
	return t
}

// buildBuiltins constructs the ordered builtin declaration list from
// spec.md §4.2's table, in the table's own order. Rows with duplicate
// names (both require overloads, both revert overloads) are appended
// twice, deliberately: spec.md says name resolution disambiguates by
// arity/type, and this package must never deduplicate them.
func buildBuiltins(in *interner.Interner) []*Declaration {
	u256 := func() *types.Type { return must(in.Integer(256, false)) }
	u8 := func() *types.Type { return must(in.Integer(8, false)) }
	bytes32 := func() *types.Type { return must(in.FixedBytes(32)) }
	bytes20 := func() *types.Type { return must(in.FixedBytes(20)) }

	var decls []*Declaration
	add := func(name string, t *types.Type) {
		decls = append(decls, &Declaration{Name: name, Type: t})
	}

	add("abi", in.Magic(types.MagicABI))
	add("block", in.Magic(types.MagicBlock))
	add("msg", in.Magic(types.MagicMessage))
	add("tx", in.Magic(types.MagicTransaction))
	add("now", u256())

	add("addmod", in.FunctionFreeForm(interner.FreeFormFunction{
		Params:     []*types.Type{u256(), u256(), u256()},
		Returns:    []*types.Type{u256()},
		Kind:       types.FunctionAddMod,
		Mutability: types.Pure,
	}))
	add("mulmod", in.FunctionFreeForm(interner.FreeFormFunction{
		Params:     []*types.Type{u256(), u256(), u256()},
		Returns:    []*types.Type{u256()},
		Kind:       types.FunctionMulMod,
		Mutability: types.Pure,
	}))

	add("assert", in.FunctionFreeForm(interner.FreeFormFunction{
		Params:     []*types.Type{in.Bool()},
		Kind:       types.FunctionAssert,
		Mutability: types.Pure,
	}))

	add("require", in.FunctionFreeForm(interner.FreeFormFunction{
		Params:     []*types.Type{in.Bool()},
		Kind:       types.FunctionRequire,
		Mutability: types.Pure,
	}))
	add("require", in.FunctionFreeForm(interner.FreeFormFunction{
		Params:     []*types.Type{in.Bool(), in.StringMemory()},
		Kind:       types.FunctionRequire,
		Mutability: types.Pure,
	}))

	add("revert", in.FunctionFreeForm(interner.FreeFormFunction{
		Kind:       types.FunctionRevert,
		Mutability: types.Pure,
	}))
	add("revert", in.FunctionFreeForm(interner.FreeFormFunction{
		Params:     []*types.Type{in.StringMemory()},
		Kind:       types.FunctionRevert,
		Mutability: types.Pure,
	}))

	add("blockhash", in.FunctionFreeForm(interner.FreeFormFunction{
		Params:     []*types.Type{u256()},
		Returns:    []*types.Type{bytes32()},
		Kind:       types.FunctionBlockHash,
		Mutability: types.View,
	}))
	add("gasleft", in.FunctionFreeForm(interner.FreeFormFunction{
		Returns:    []*types.Type{u256()},
		Kind:       types.FunctionGasLeft,
		Mutability: types.View,
	}))

	keccak256 := in.FunctionFreeForm(interner.FreeFormFunction{
		Params:     []*types.Type{in.BytesMemory()},
		Returns:    []*types.Type{bytes32()},
		Kind:       types.FunctionKECCAK256,
		Mutability: types.Pure,
	})
	add("keccak256", keccak256)
	add("sha3", keccak256) // alias: distinct declaration, same interned type

	add("sha256", in.FunctionFreeForm(interner.FreeFormFunction{
		Params:     []*types.Type{in.BytesMemory()},
		Returns:    []*types.Type{bytes32()},
		Kind:       types.FunctionSHA256,
		Mutability: types.Pure,
	}))
	add("ripemd160", in.FunctionFreeForm(interner.FreeFormFunction{
		Params:     []*types.Type{in.BytesMemory()},
		Returns:    []*types.Type{bytes20()},
		Kind:       types.FunctionRIPEMD160,
		Mutability: types.Pure,
	}))
	add("ecrecover", in.FunctionFreeForm(interner.FreeFormFunction{
		Params:     []*types.Type{bytes32(), u8(), bytes32(), bytes32()},
		Returns:    []*types.Type{in.Address()},
		Kind:       types.FunctionECRecover,
		Mutability: types.Pure,
	}))

	selfdestruct := in.FunctionFreeForm(interner.FreeFormFunction{
		Params:     []*types.Type{in.PayableAddress()},
		Kind:       types.FunctionSelfdestruct,
		Mutability: types.NonPayable,
	})
	add("selfdestruct", selfdestruct)
	add("suicide", selfdestruct) // alias: distinct declaration, same interned type

	logKinds := []types.FunctionKind{types.FunctionLog0, types.FunctionLog1, types.FunctionLog2, types.FunctionLog3, types.FunctionLog4}
	for n := 0; n <= 4; n++ {
		params := make([]*types.Type, n+1)
		for i := range params {
			params[i] = bytes32()
		}
		add(fmt.Sprintf("log%d", n), in.FunctionFreeForm(interner.FreeFormFunction{
			Params:     params,
			Kind:       logKinds[n],
			Mutability: types.NonPayable,
		}))
	}

	add("type", in.FunctionFreeForm(interner.FreeFormFunction{
		Params:     []*types.Type{in.Address()},
		Kind:       types.FunctionMetaType,
		Mutability: types.Pure,
	}))

	return decls
}
