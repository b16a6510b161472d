package radix

// Node is a vertex of the trie. A node is "real" when it carries a
// prefix: those are the nodes handed out by Insert and the search
// operations. A node without a prefix is glue, an internal branch point
// with exactly two children that is never returned to callers.
//
// A node owns its children; the parent link is a non-owning back
// reference used only for upward navigation. The same stored prefix
// always resolves to the same *Node for its entire attached lifetime, so
// callers may compare nodes by identity.
type Node struct {
	parent *Node
	left   *Node
	right  *Node

	// bit is the trie depth this node tests. For a real node it equals
	// the prefix bit length; for glue it is the first bit at which the
	// two subtrees below differ.
	bit    int
	prefix *Prefix
	data   map[string]any
}

// Prefix returns the prefix stored at this node.
func (n *Node) Prefix() *Prefix { return n.prefix }

// Family returns the address family of the node's prefix.
func (n *Node) Family() Family { return n.prefix.Family() }

// Network returns the canonical network address in textual form.
func (n *Node) Network() string { return n.prefix.Network() }

// Bitlen returns the prefix length of the node.
func (n *Node) Bitlen() int { return n.bit }

// Packed returns a copy of the node's packed network address.
func (n *Node) Packed() []byte { return n.prefix.Packed() }

// String returns the node's prefix in CIDR form.
func (n *Node) String() string { return n.prefix.String() }

// Data returns the node's payload, an open-ended mutable mapping the
// tree itself never inspects. Mutating it does not count as a structural
// change and is safe during iteration.
func (n *Node) Data() map[string]any { return n.data }

// Parent returns the nearest ancestor that carries a prefix, skipping
// glue nodes, or nil if no such ancestor exists.
func (n *Node) Parent() *Node {
	for p := n.parent; p != nil; p = p.parent {
		if p.prefix != nil {
			return p
		}
	}
	return nil
}
