package interner

import (
	"strconv"
	"strings"

	"github.com/sunholo/ailang/internal/errors"
	"github.com/sunholo/ailang/internal/types"
)

// FromElementaryTypeName parses a surface-syntax elementary type name
// (optionally suffixed with a data-location word) and interns the
// corresponding atomic, address, fixed-bytes, integer, fixed-point, or
// bytes/string type. Suffix defaults to " storage" when absent, per the
// grammar in spec.md §6.
//
//	ElementaryType := Atom Suffix?
//	Atom  := bool | address | address payable
//	       | int | int<digits> | uint | uint<digits>
//	       | bytes | bytes<digits>
//	       | fixed | ufixed | fixed<M>x<N> | ufixed<M>x<N>
//	       | string
//	Suffix := " storage" | " memory" | " calldata"
func (in *Interner) FromElementaryTypeName(token string) (*types.Type, error) {
	atom, location, err := splitSuffix(token)
	if err != nil {
		return nil, err
	}
	return in.fromAtom(atom, location)
}

func splitSuffix(token string) (atom string, location types.DataLocation, err error) {
	for _, suf := range []struct {
		word string
		loc  types.DataLocation
	}{
		{" storage", types.LocationStorage},
		{" memory", types.LocationMemory},
		{" calldata", types.LocationCallData},
	} {
		if strings.HasSuffix(token, suf.word) {
			return strings.TrimSuffix(token, suf.word), suf.loc, nil
		}
	}
	// "address payable" is a two-word atom, not an atom plus a suffix.
	if token == "address payable" {
		return token, types.LocationStorage, nil
	}
	// No recognized suffix word. If there's a trailing word after a
	// space that isn't one of the three, that's an invalid suffix.
	if idx := strings.IndexByte(token, ' '); idx >= 0 {
		return "", types.LocationNone, errors.New(errors.TYP006, "unrecognized data-location suffix "+strconv.Quote(token[idx:]), map[string]any{"suffix": token[idx:]})
	}
	return token, types.LocationStorage, nil
}

func (in *Interner) fromAtom(atom string, location types.DataLocation) (*types.Type, error) {
	switch {
	case atom == "bool":
		return in.Bool(), nil
	case atom == "address":
		return in.Address(), nil
	case atom == "address payable":
		return in.PayableAddress(), nil
	case atom == "int":
		return in.Integer(256, true)
	case atom == "uint":
		return in.Integer(256, false)
	case strings.HasPrefix(atom, "int"):
		bits, err := strconv.Atoi(atom[3:])
		if err != nil {
			return nil, unknownElementary(atom)
		}
		return in.Integer(bits, true)
	case strings.HasPrefix(atom, "uint"):
		bits, err := strconv.Atoi(atom[4:])
		if err != nil {
			return nil, unknownElementary(atom)
		}
		return in.Integer(bits, false)
	case atom == "bytes":
		return in.BytesOrStringArray(location, false), nil
	case strings.HasPrefix(atom, "bytes"):
		n, err := strconv.Atoi(atom[5:])
		if err != nil {
			return nil, unknownElementary(atom)
		}
		return in.FixedBytes(n)
	case atom == "string":
		return in.BytesOrStringArray(location, true), nil
	case atom == "fixed":
		return in.FixedPoint(128, 18, true)
	case atom == "ufixed":
		return in.FixedPoint(128, 18, false)
	case strings.HasPrefix(atom, "ufixed"):
		m, n, err := splitFixedMxN(atom[6:])
		if err != nil {
			return nil, unknownElementary(atom)
		}
		return in.FixedPoint(m, n, false)
	case strings.HasPrefix(atom, "fixed"):
		m, n, err := splitFixedMxN(atom[5:])
		if err != nil {
			return nil, unknownElementary(atom)
		}
		return in.FixedPoint(m, n, true)
	default:
		return nil, unknownElementary(atom)
	}
}

func splitFixedMxN(s string) (m, n int, err error) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return 0, 0, strconv.ErrSyntax
	}
	m, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, err
	}
	n, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return m, n, nil
}

func unknownElementary(name string) error {
	return errors.New(errors.TYP001, "unknown elementary type name "+strconv.Quote(name), map[string]any{"name": name})
}
