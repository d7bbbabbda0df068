// Package interner implements the Type Interner: the process-scoped
// factory that owns every type value in circulation. Its sole public
// contract is intern(descriptor) -> handle, exposed as a family of typed
// factory methods on *Interner. Two descriptors equivalent under the
// rules in this package always yield the same *types.Type pointer, so
// pointer equality downstream is semantic type equality.
package interner

import (
	"sync"

	"github.com/sunholo/ailang/internal/ast"
	"github.com/sunholo/ailang/internal/types"
)

// Interner is single-writer, process-scoped state. The mutex exists so
// a host that calls it from more than one goroutine fails safely rather
// than racing; the public contract still assumes one compilation drives
// it from a single thread at a time (spec.md §5). Reset is a global
// barrier: every handle from cached (non-atom) kinds becomes invalid
// after a Reset call.
type Interner struct {
	mu sync.Mutex

	// Atoms: pre-populated once, process lifetime, never cleared by Reset.
	boolAtom                *types.Type
	addressAtom             *types.Type
	payableAddressAtom      *types.Type
	signedIntAtoms          [32]*types.Type // index i => bits (i+1)*8
	unsignedIntAtoms        [32]*types.Type
	fixedBytesAtoms         [32]*types.Type // index i => length i+1
	magicAtoms              map[types.MagicKind]*types.Type
	emptyTupleAtom          *types.Type
	inaccessibleDynamicAtom *types.Type
	bytesStorageAtom        *types.Type
	bytesMemoryAtom         *types.Type
	stringStorageAtom       *types.Type
	stringMemoryAtom        *types.Type

	// Caches: cleared by Reset.
	arrayCache       map[arrayKey]*types.Type
	mappingCache     map[mappingKey]*types.Type
	tupleCache       map[string]*types.Type
	functionCache    map[string]*types.Type
	stringLitCache   map[string]*types.Type
	rationalCache    map[string]*types.Type
	fixedPointCache  map[fixedPointKey]*types.Type
	contractCache    map[contractKey]*types.Type
	structCache      map[structKey]*types.Type
	enumCache        map[ast.NodeID]*types.Type
	moduleCache      map[ast.NodeID]*types.Type
	typeOfCache      map[*types.Type]*types.Type
	modifierCache    map[ast.NodeID]*types.Type
	metaTypeCache    map[*types.Type]*types.Type
}

// New constructs an independent Interner with every atom pre-populated,
// per spec.md's "Atom pre-population" invariant. Use this (rather than
// Global) whenever a host needs more than one isolated compilation at a
// time — the global singleton is only a convenience for the common
// single-compilation driver.
func New() *Interner {
	in := &Interner{}
	in.populateAtoms()
	in.initCaches()
	return in
}

func (in *Interner) populateAtoms() {
	in.boolAtom = types.NewBool()
	in.addressAtom = types.NewAddress(false)
	in.payableAddressAtom = types.NewAddress(true)

	for i := 0; i < 32; i++ {
		bits := (i + 1) * 8
		in.signedIntAtoms[i] = types.NewInteger(bits, true)
		in.unsignedIntAtoms[i] = types.NewInteger(bits, false)
		in.fixedBytesAtoms[i] = types.NewFixedBytes(i + 1)
	}

	in.magicAtoms = map[types.MagicKind]*types.Type{
		types.MagicBlock:       types.NewMagic(types.MagicBlock),
		types.MagicMessage:     types.NewMagic(types.MagicMessage),
		types.MagicTransaction: types.NewMagic(types.MagicTransaction),
		types.MagicABI:         types.NewMagic(types.MagicABI),
	}

	in.emptyTupleAtom = types.NewEmptyTuple()
	in.inaccessibleDynamicAtom = types.NewInaccessibleDynamic()

	// bytes/string have no element handle: they are the VM's built-in
	// byte-sequence type, not a generic array of some element type. A
	// generic array of explicit bytes1 elements (bytes1[]) is a distinct,
	// ordinary Array value with a non-nil element handle.
	in.bytesStorageAtom = types.NewArray(types.LocationStorage, nil, nil, false, false)
	in.bytesMemoryAtom = types.NewArray(types.LocationMemory, nil, nil, false, false)
	in.stringStorageAtom = types.NewArray(types.LocationStorage, nil, nil, true, false)
	in.stringMemoryAtom = types.NewArray(types.LocationMemory, nil, nil, true, false)
}

func (in *Interner) initCaches() {
	in.arrayCache = make(map[arrayKey]*types.Type)
	in.mappingCache = make(map[mappingKey]*types.Type)
	in.tupleCache = make(map[string]*types.Type)
	in.functionCache = make(map[string]*types.Type)
	in.stringLitCache = make(map[string]*types.Type)
	in.rationalCache = make(map[string]*types.Type)
	in.fixedPointCache = make(map[fixedPointKey]*types.Type)
	in.contractCache = make(map[contractKey]*types.Type)
	in.structCache = make(map[structKey]*types.Type)
	in.enumCache = make(map[ast.NodeID]*types.Type)
	in.moduleCache = make(map[ast.NodeID]*types.Type)
	in.typeOfCache = make(map[*types.Type]*types.Type)
	in.modifierCache = make(map[ast.NodeID]*types.Type)
	in.metaTypeCache = make(map[*types.Type]*types.Type)
}

// Reset drops every non-atom cache. Atoms survive; every handle whose
// kind lives in a cleared cache becomes dangling and must not be
// retained by the caller across this call (spec.md §3, "Lifecycle").
func (in *Interner) Reset() {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.initCaches()
}

var (
	globalOnce sync.Once
	global     *Interner
)

// Global returns the process-wide singleton Interner, lazily
// initialized on first use. Prefer New for per-compilation isolation;
// Global exists for the common single-compilation driver and for
// package-level convenience constructors like global.NewDefault.
func Global() *Interner {
	globalOnce.Do(func() {
		global = New()
	})
	return global
}
