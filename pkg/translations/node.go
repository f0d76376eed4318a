package translations

import (
	"sort"
	"strings"
)

// Node is one level of a parsed translation file: either a namespace whose
// children are further nodes, or a leaf holding an Object. Exactly one of
// the two fields is set; an empty table parses as an empty namespace.
// Nodes are immutable after construction.
type Node struct {
	children map[string]*Node
	object   *Object
}

// NewNode builds a node tree from raw parsed file content. Each level must
// be homogeneous: either every child is a nested table, or every child is a
// string keyed by a language code. Mixed siblings, or values that are
// neither strings nor tables, fail with a StructuralError identifying the
// offending path within the file.
func NewNode(raw map[string]any) (*Node, error) {
	return buildNode(raw, nil)
}

func buildNode(raw map[string]any, path []string) (*Node, error) {
	// Sorted keys keep error reporting deterministic.
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sawTable, sawString bool
	for _, key := range keys {
		switch raw[key].(type) {
		case map[string]any:
			sawTable = true
		case string:
			sawString = true
		default:
			return nil, &StructuralError{
				Path: joinPath(append(path, key)),
				Err:  ErrUnsupportedValue,
			}
		}
	}

	if sawTable && sawString {
		return nil, &StructuralError{Path: joinPath(path), Err: ErrMixedNodeKinds}
	}

	if sawString {
		leaf := make(map[string]string, len(raw))
		for key, value := range raw {
			leaf[key] = value.(string)
		}
		object, err := NewObject(leaf)
		if err != nil {
			return nil, &StructuralError{Path: joinPath(path), Err: err}
		}
		return &Node{object: object}, nil
	}

	children := make(map[string]*Node, len(raw))
	for _, key := range keys {
		child, err := buildNode(raw[key].(map[string]any), append(path, key))
		if err != nil {
			return nil, err
		}
		children[key] = child
	}
	return &Node{children: children}, nil
}

// FindPath walks segments into namespace children and returns the leaf
// Object the walk ends on. It returns false if any segment is absent, if a
// leaf is reached while segments remain, or if the walk stops on a
// namespace.
func (n *Node) FindPath(segments []string) (*Object, bool) {
	current := n
	for _, segment := range segments {
		if current.children == nil {
			return nil, false
		}
		next, ok := current.children[segment]
		if !ok {
			return nil, false
		}
		current = next
	}
	if current.object == nil {
		return nil, false
	}
	return current.object, true
}

// IsLeaf reports whether the node holds a translation set rather than
// further namespaces.
func (n *Node) IsLeaf() bool { return n.object != nil }

// Object returns the node's translation set, or nil for namespace nodes.
func (n *Node) Object() *Object { return n.object }

// Children returns the names of the node's direct namespace children,
// sorted. Leaf nodes have none.
func (n *Node) Children() []string {
	out := make([]string, 0, len(n.children))
	for name := range n.children {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Child returns the named namespace child.
func (n *Node) Child(name string) (*Node, bool) {
	child, ok := n.children[name]
	return child, ok
}

func joinPath(segments []string) string {
	return strings.Join(segments, ".")
}
