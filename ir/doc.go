// Package ir provides the intermediate representation (IR) for
// plist-derived value trees.
//
// # Overview
//
// The IR package defines the core data structure for representing a
// property list document as a tree of nodes: a recursive tagged union
// over scalars, objects (key-value pairs) and arrays. Loaders produce
// ir.Node trees, the sanitize package transforms them, and the encode
// package emits them.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (int64 or float64)
//   - StringType: string value
//   - TimeType: absolute calendar date-time
//   - BytesType: opaque raw byte sequence
//   - PathType: filesystem path or URL, carried in canonical string form
//   - ObjectType: key-value pairs (fields and values, insertion order)
//   - ArrayType: ordered list of nodes
//
// Time, Bytes and Path nodes are the kinds a generic text emitter
// rejects; Type.IsSafe distinguishes them. Values are placed in fields
// depending on the node type, and each node maintains parent links for
// navigation.
package ir
