package jsonvalue

import "github.com/cybergodev/jsonvalue/internal"

// PathFormat selects how Enumerate renders entry paths
type PathFormat uint8

const (
	// FormatPointer renders RFC 6901 pointers: "/users/0/name"
	FormatPointer PathFormat = iota
	// FormatDotBracket renders dot notation with bracket indices: "users[0].name".
	// Keys are written as is, so a key containing '.' or '[' yields a path that
	// does not resolve back to its node; FormatPointer always does.
	FormatDotBracket
)

// EnumerateOptions controls which nodes Enumerate reports
type EnumerateOptions struct {
	Format            PathFormat
	IncludeContainers bool // also report arrays and objects
	LeavesOnly        bool // report only nodes without children; overrides IncludeContainers
}

// PathEntry is one node found by Enumerate
type PathEntry struct {
	Path   string
	Value  Value // private deep copy of the node
	Depth  int   // children of the root have depth 1
	IsLeaf bool  // scalar, null or empty container
}

type enumFrame struct {
	node  *Value
	path  string
	depth int
}

// Enumerate lists every node below root in depth-first pre-order, children in
// document order. The walk uses an explicit stack, so deep documents cannot
// overflow the call stack. Each entry holds its own copy of the node, so the
// result stays valid when root is later mutated. A scalar or null root yields
// a single entry with the empty path.
func Enumerate(root *Value, opts EnumerateOptions) []PathEntry {
	if root == nil {
		return nil
	}
	if !root.IsContainer() {
		return []PathEntry{{Value: root.Clone(), IsLeaf: true}}
	}

	join := internal.JoinPointer
	if opts.Format == FormatDotBracket {
		join = internal.JoinDotBracket
	}

	var entries []PathEntry
	stack := []enumFrame{{node: root}}
	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := frame.node
		isLeaf := node.Len() == 0
		if frame.depth > 0 && keepEntry(node, isLeaf, opts) {
			entries = append(entries, PathEntry{
				Path:   frame.path,
				Value:  node.Clone(),
				Depth:  frame.depth,
				IsLeaf: isLeaf,
			})
		}

		// push children in reverse so they pop in document order
		switch node.kind {
		case KindArray:
			for i := len(node.arr) - 1; i >= 0; i-- {
				stack = append(stack, enumFrame{
					node:  &node.arr[i],
					path:  join(frame.path, internal.Segment{Index: i, IsIndex: true}),
					depth: frame.depth + 1,
				})
			}
		case KindObject:
			for i := len(node.obj) - 1; i >= 0; i-- {
				stack = append(stack, enumFrame{
					node:  &node.obj[i].Value,
					path:  join(frame.path, internal.Segment{Key: node.obj[i].Key}),
					depth: frame.depth + 1,
				})
			}
		}
	}
	return entries
}

func keepEntry(node *Value, isLeaf bool, opts EnumerateOptions) bool {
	if opts.LeavesOnly {
		return isLeaf
	}
	if node.IsContainer() {
		return opts.IncludeContainers
	}
	return true
}

// Paths returns only the paths Enumerate would report
func Paths(root *Value, opts EnumerateOptions) []string {
	entries := Enumerate(root, opts)
	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.Path
	}
	return paths
}
