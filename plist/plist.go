// Package plist loads property list files into IR trees.
//
// Both XML and binary plists are handled, via howett.net/plist. Dict
// keys are sorted while building the tree so the same file always yields
// the same IR, which in turn keeps emitted catalogs diffable.
package plist

import (
	"errors"
	"fmt"
	"os"
	"time"

	"howett.net/plist"

	"github.com/pkginfo-tools/plcat/debug"
	"github.com/pkginfo-tools/plcat/ir"
)

var ErrUnsupported = errors.New("unsupported plist value")

// Load reads and parses the plist file at path.
func Load(path string) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	n, err := Parse(d)
	if err != nil {
		return nil, fmt.Errorf("could not decode %q: %w", path, err)
	}
	return n, nil
}

// Parse decodes XML or binary plist bytes into an IR tree.
func Parse(d []byte) (*ir.Node, error) {
	var v any
	if _, err := plist.Unmarshal(d, &v); err != nil {
		return nil, err
	}
	if debug.Load() {
		debug.Logf("plist decoded to %T", v)
	}
	return fromGo(v, "$")
}

// fromGo maps the decoded plist value onto IR node kinds. fieldPath is
// for error reporting only.
func fromGo(v any, fieldPath string) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		if x > uint64(1<<63-1) {
			return nil, fmt.Errorf("%w: integer %d overflows at %s", ErrUnsupported, x, fieldPath)
		}
		return ir.FromInt(int64(x)), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case time.Time:
		return ir.FromTime(x), nil
	case []byte:
		return ir.FromBytes(x), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i, e := range x {
			n, err := fromGo(e, fmt.Sprintf("%s[%d]", fieldPath, i))
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return ir.FromSlice(vals), nil
	case map[string]any:
		m := make(map[string]*ir.Node, len(x))
		for k, e := range x {
			n, err := fromGo(e, fieldPath+"."+k)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return ir.FromMap(m), nil
	default:
		return nil, fmt.Errorf("%w: %T at %s", ErrUnsupported, v, fieldPath)
	}
}
