// Package jsontree walks decoded JSON documents whose shape is not guaranteed.
//
// Every accessor returns a usable Node: a missing key, an index out of range or a
// value of the wrong kind all yield the empty Node, so long lookup chains never fail
// half-way through.
package jsontree

import (
	"encoding/json"
	"io"
)

// Node wraps one value of a decoded JSON document.
type Node struct {
	v any
}

// New wraps an already decoded value (map[string]any, []any, string, ...).
func New(v any) Node {
	return Node{v: v}
}

// Decode reads one JSON document from r.
func Decode(r io.Reader) (Node, error) {
	var v any
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return Node{}, err
	}
	return Node{v: v}, nil
}

// Exists reports whether the node holds a non-null value.
func (n Node) Exists() bool {
	return n.v != nil
}

// Value returns the wrapped value.
func (n Node) Value() any {
	return n.v
}

// Get returns the member named key, or the empty Node when n is not an object
// or has no such member.
func (n Node) Get(key string) Node {
	m, ok := n.v.(map[string]any)
	if !ok {
		return Node{}
	}
	return Node{v: m[key]}
}

// Path follows keys one level at a time.
func (n Node) Path(keys ...string) Node {
	cur := n
	for _, k := range keys {
		cur = cur.Get(k)
	}
	return cur
}

// Index returns element i of an array node.
func (n Node) Index(i int) Node {
	a, ok := n.v.([]any)
	if !ok || i < 0 || i >= len(a) {
		return Node{}
	}
	return Node{v: a[i]}
}

// Len is the number of elements of an array node, zero for anything else.
func (n Node) Len() int {
	a, ok := n.v.([]any)
	if !ok {
		return 0
	}
	return len(a)
}

// Each calls fn for every element of an array node in order until fn returns false.
func (n Node) Each(fn func(i int, el Node) bool) {
	a, ok := n.v.([]any)
	if !ok {
		return
	}
	for i, el := range a {
		if !fn(i, Node{v: el}) {
			return
		}
	}
}

// String returns the node's string value, or "" when it is not a string.
func (n Node) String() string {
	s, _ := n.v.(string)
	return s
}

// Strings returns the string elements of an array node, skipping other kinds.
func (n Node) Strings() []string {
	var out []string
	n.Each(func(_ int, el Node) bool {
		if s, ok := el.v.(string); ok {
			out = append(out, s)
		}
		return true
	})
	return out
}
