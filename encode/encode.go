package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/pkginfo-tools/plcat/format"
	"github.com/pkginfo-tools/plcat/ir"
)

type EncState struct {
	format format.Format
	indent int
}

// Encode renders a sanitized IR tree to w as YAML (the default) or
// JSON. Object key order is preserved. Trees still holding Time, Bytes
// or Path nodes are rejected with ErrUnsafe naming the offending node.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	v, err := toGo(node, "$")
	if err != nil {
		return err
	}
	d, err := yaml.MarshalWithOptions(v, yaml.Indent(es.indent))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if es.format.IsJSON() {
		d, err = yaml.YAMLToJSON(d)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		// YAMLToJSON spaces its tokens and may end in a newline;
		// emit one compact document with a single trailing newline.
		var buf bytes.Buffer
		if err := json.Compact(&buf, d); err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		buf.WriteByte('\n')
		d = buf.Bytes()
	}
	return writeAll(w, d)
}

// toGo lowers an IR node to the native Go shape the YAML library
// accepts. Objects become yaml.MapSlice so key order survives.
func toGo(n *ir.Node, fieldPath string) (any, error) {
	if n == nil {
		return nil, nil
	}
	switch n.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return n.Bool, nil
	case ir.NumberType:
		if n.Int64 != nil {
			return *n.Int64, nil
		}
		if n.Float64 != nil {
			return *n.Float64, nil
		}
		return 0, nil
	case ir.StringType:
		return n.String, nil
	case ir.ArrayType:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			gv, err := toGo(v, fmt.Sprintf("%s[%d]", fieldPath, i))
			if err != nil {
				return nil, err
			}
			res[i] = gv
		}
		return res, nil
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(n.Fields))
		for i, f := range n.Fields {
			gv, err := toGo(n.Values[i], fieldPath+"."+f.String)
			if err != nil {
				return nil, err
			}
			res[i] = yaml.MapItem{Key: f.String, Value: gv}
		}
		return res, nil
	default:
		return nil, &UnsafeError{FieldPath: fieldPath, Type: n.Type}
	}
}

func writeAll(w io.Writer, d []byte) error {
	_, err := w.Write(d)
	return err
}
