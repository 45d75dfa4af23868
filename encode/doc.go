// Package encode renders IR trees to YAML or JSON text.
//
// This is the boundary the sanitize package exists to satisfy: Encode
// accepts only emitter-safe trees and fails loudly, with a key path,
// on any Time, Bytes or Path node it meets.
package encode
