package sanitize

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/pkginfo-tools/plcat/debug"
	"github.com/pkginfo-tools/plcat/ir"
)

// Sanitize returns a copy of n in which every Time, Bytes and Path node
// has been replaced by a string node, so the result is acceptable to a
// generic text emitter. Object key order and array element order are
// preserved, and n itself is never modified: the result shares no nodes
// with the input.
//
// The input is assumed acyclic; a cyclic tree does not terminate.
func Sanitize(n *ir.Node, opts ...Option) *ir.Node {
	st := &state{}
	for _, opt := range opts {
		opt(st)
	}
	res := st.sanitize(n)
	if debug.Sanitize() {
		debug.Logf("sanitize: converted %d nodes", st.converted)
	}
	return res
}

type state struct {
	keepZone  bool
	policy    Policy
	converted int
}

func (st *state) sanitize(n *ir.Node) *ir.Node {
	if n == nil {
		return nil
	}
	switch n.Type {
	case ir.TimeType:
		st.converted++
		return ir.FromString(st.formatTime(n.Time))
	case ir.BytesType:
		st.converted++
		return ir.FromString(base64.StdEncoding.EncodeToString(n.Bytes))
	case ir.PathType:
		st.converted++
		return ir.FromString(n.String)
	case ir.ObjectType:
		kvs := make([]ir.KeyVal, len(n.Fields))
		for i := range n.Fields {
			kvs[i] = ir.KeyVal{
				Key: st.sanitize(n.Fields[i]),
				Val: st.sanitize(n.Values[i]),
			}
		}
		return ir.FromKeyVals(kvs)
	case ir.ArrayType:
		vals := make([]*ir.Node, len(n.Values))
		for i, v := range n.Values {
			vals[i] = st.sanitize(v)
		}
		return ir.FromSlice(vals)
	case ir.NullType, ir.BoolType, ir.NumberType, ir.StringType:
		return scalarCopy(n)
	default:
		return st.unknown(n)
	}
}

// formatTime renders an instant with second precision. With the default
// policy the instant is converted to UTC first, so the "Z" designator is
// always truthful; with KeepZone the original offset is kept and rendered
// numerically.
func (st *state) formatTime(t time.Time) string {
	if !st.keepZone {
		t = t.UTC()
	}
	return t.Format(time.RFC3339)
}

func (st *state) unknown(n *ir.Node) *ir.Node {
	if st.policy == StringifyUnknown {
		st.converted++
		s := n.String
		if s == "" {
			s = fmt.Sprintf("<%s>", n.Type)
		}
		return ir.FromString(s)
	}
	// PassUnknown: hand the node through untouched and let the
	// emitter fail loudly on it.
	return n.Clone()
}

// scalarCopy returns a fresh leaf node so the output tree shares no
// nodes with the input, without dragging parent links along.
func scalarCopy(n *ir.Node) *ir.Node {
	switch n.Type {
	case ir.NullType:
		return ir.Null()
	case ir.BoolType:
		return ir.FromBool(n.Bool)
	case ir.NumberType:
		if n.Int64 != nil {
			return ir.FromInt(*n.Int64)
		}
		if n.Float64 != nil {
			return ir.FromFloat(*n.Float64)
		}
		return &ir.Node{Type: ir.NumberType}
	default:
		return ir.FromString(n.String)
	}
}
