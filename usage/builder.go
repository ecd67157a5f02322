package usage

import "github.com/tendrilcode/sjson/kind"

// Builder accumulates (kind, position) pairs discovered during a single
// forward pass over a document's parentheses sequence and freezes them into
// an Index. Positions for a given kind arrive in strictly increasing order,
// since they are encountered in sequence order during the build.
type Builder interface {
	Append(k kind.Id, pos uint32)
	Build(n int) *Index
}
