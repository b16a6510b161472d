package radix

// Iter is a generation-guarded traversal of the whole tree: pre-order
// depth-first over the IPv4 subtrie, then over the IPv6 one, yielding
// real nodes only. An Iter holds a non-owning reference into the tree
// and the generation observed at creation; any structural mutation after
// that point makes every further Next fail with ErrModified. Payload
// mutation does not invalidate an iterator.
type Iter struct {
	tree   *Tree
	gen    uint64
	cur    *Node
	stack  []*Node
	onIPv6 bool
}

// Iter starts a fresh traversal. Iterators are cheap; create a new one
// to restart after a mutation.
func (t *Tree) Iter() *Iter {
	return &Iter{tree: t, gen: t.gen, cur: t.root4}
}

// Next returns the next stored prefix's node, or (nil, nil) once the
// traversal is done. Returns ErrModified if the tree has seen structural
// change since the iterator was created.
func (it *Iter) Next() (*Node, error) {
	if it.gen != it.tree.gen {
		return nil, ErrModified
	}
	for {
		node := it.cur
		if node == nil {
			if it.onIPv6 {
				return nil, nil
			}
			it.onIPv6 = true
			it.stack = it.stack[:0]
			it.cur = it.tree.root6
			continue
		}

		// Advance before yielding: self, then left subtree, then right.
		if node.left != nil {
			if node.right != nil {
				it.stack = append(it.stack, node.right)
			}
			it.cur = node.left
		} else if node.right != nil {
			it.cur = node.right
		} else if n := len(it.stack); n > 0 {
			it.cur = it.stack[n-1]
			it.stack = it.stack[:n-1]
		} else {
			it.cur = nil
		}

		if node.prefix == nil || node.data == nil {
			continue
		}
		return node, nil
	}
}

// Nodes returns every stored prefix's node in iteration order.
func (t *Tree) Nodes() []*Node {
	var out []*Node
	it := t.Iter()
	for {
		node, err := it.Next()
		if err != nil || node == nil {
			return out
		}
		out = append(out, node)
	}
}

// Prefixes returns the CIDR text of every stored prefix in iteration
// order.
func (t *Tree) Prefixes() []string {
	nodes := t.Nodes()
	out := make([]string, len(nodes))
	for i, node := range nodes {
		out[i] = node.String()
	}
	return out
}
