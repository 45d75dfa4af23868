package sanitize

// Policy decides what Sanitize does with a node type it does not
// recognize. Exactly one policy applies per call.
type Policy int

const (
	// PassUnknown clones unrecognized nodes unchanged so the
	// downstream emitter rejects them visibly (the default).
	PassUnknown Policy = iota
	// StringifyUnknown replaces unrecognized nodes with a best-effort
	// text rendering.
	StringifyUnknown
)

type Option func(*state)

// KeepZone controls timezone handling for time nodes. By default
// instants are converted to UTC before formatting, so output always ends
// in "Z". With KeepZone(true) the original offset is preserved and
// rendered numerically.
func KeepZone(v bool) Option {
	return func(st *state) { st.keepZone = v }
}

// UnknownPolicy sets the policy for unrecognized node types.
func UnknownPolicy(p Policy) Option {
	return func(st *state) { st.policy = p }
}
