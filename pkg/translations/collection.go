package translations

// Entry pairs a top-level node with the identifier of the file it was built
// from, usually the file path.
type Entry struct {
	ID   string
	Node *Node
}

// Collection holds one top-level node per source file in a fixed iteration
// order. The order is decided by the loader and encodes the configured seek
// mode and overlap policy, so lookup never needs a merge step: the first
// node that satisfies a path wins. Immutable after construction.
type Collection struct {
	order []Entry
	nodes map[string]*Node
}

// NewCollection builds a collection preserving the given entry order.
func NewCollection(entries []Entry) *Collection {
	order := make([]Entry, len(entries))
	copy(order, entries)

	nodes := make(map[string]*Node, len(entries))
	for _, entry := range entries {
		nodes[entry.ID] = entry.Node
	}
	return &Collection{order: order, nodes: nodes}
}

// FindPath searches contained nodes in iteration order and returns the first
// leaf Object that satisfies the path. Search is per-path: a file that does
// not define the path at all never shadows later files that do.
func (c *Collection) FindPath(segments []string) (*Object, bool) {
	for _, entry := range c.order {
		if object, ok := entry.Node.FindPath(segments); ok {
			return object, true
		}
	}
	return nil, false
}

// Node returns the top-level node loaded from the identified file.
func (c *Collection) Node(id string) (*Node, bool) {
	node, ok := c.nodes[id]
	return node, ok
}

// Identifiers returns the source identifiers in iteration order.
func (c *Collection) Identifiers() []string {
	out := make([]string, len(c.order))
	for i, entry := range c.order {
		out[i] = entry.ID
	}
	return out
}

// Len returns the number of contained nodes.
func (c *Collection) Len() int { return len(c.order) }
