// Package sanitize makes plist-derived value trees safe for textual
// emission.
//
// Property lists carry scalar kinds that generic YAML/JSON emitters
// reject: absolute dates, raw data blobs, and filesystem paths or URLs.
// Sanitize walks a tree once and replaces each such leaf with a string:
//
//   - Time nodes become RFC 3339 strings with second precision,
//     converted to UTC (or keeping their offset with KeepZone)
//   - Bytes nodes become standard base64 (RFC 4648, padded, unwrapped)
//   - Path nodes become their canonical string form, unmodified
//
// Containers are rebuilt with key and element order intact; safe scalars
// pass through by value. The transform is pure and allocates a new tree,
// so it is safe to call from concurrent goroutines on independent or
// even shared inputs.
package sanitize
