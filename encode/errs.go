package encode

import (
	"errors"
	"fmt"

	"github.com/pkginfo-tools/plcat/ir"
)

var (
	ErrEncoding = errors.New("encoding error")
	ErrUnsafe   = errors.New("unsafe node")
)

// UnsafeError reports a node the emitter cannot represent, with the key
// path to it (e.g. "$.complex_metadata.binary_info").
type UnsafeError struct {
	FieldPath string
	Type      ir.Type
}

func (e *UnsafeError) Error() string {
	return fmt.Sprintf("unsafe node: cannot encode %s at %s", e.Type, e.FieldPath)
}

func (e *UnsafeError) Unwrap() error {
	return ErrUnsafe
}
