// Package abi derives ABI-facing metadata — the canonical argument
// signature and 4-byte selector — from an already-interned Function
// type. It adds no new type kind and performs no interning itself; it
// is a pure read of a Function type's parameter types, provided so a
// later ABI-encoding pass (out of this core's scope) has somewhere to
// get a selector from without reaching back into the interner.
package abi

import (
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/sunholo/ailang/internal/types"
)

// Signature renders a Function type's canonical argument-type
// signature, e.g. "transfer(address,uint256)". The function's name
// must be supplied by the caller (a Function type carries no name of
// its own — that lives on the declaration, or on the Global Context's
// Declaration wrapper).
func Signature(name string, fn *types.Type) string {
	params := fn.FunctionParams()
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = canonicalArgType(p)
	}
	return name + "(" + strings.Join(parts, ",") + ")"
}

// canonicalArgType renders a type the way the ABI wants it in a
// signature: location suffixes and pointer/value distinctions are
// dropped, since the wire encoding of an argument never depends on
// where the compiler happened to materialize it.
func canonicalArgType(t *types.Type) string {
	if t.Kind() != types.KindArray {
		return t.String()
	}

	if t.Element() == nil {
		if t.IsStringFlavor() {
			return "string"
		}
		return "bytes"
	}

	base := canonicalArgType(t.Element())
	if length, ok := t.Length(); ok {
		return base + "[" + length.String() + "]"
	}
	return base + "[]"
}

// Selector returns the 4-byte function selector: the first four bytes
// of the Keccak-256 hash of the function's canonical signature.
func Selector(name string, fn *types.Type) [4]byte {
	sig := Signature(name, fn)
	hash := sha3.NewLegacyKeccak256()
	hash.Write([]byte(sig))
	sum := hash.Sum(nil)

	var out [4]byte
	copy(out[:], sum[:4])
	return out
}
