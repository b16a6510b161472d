package radix

// Tree is a radix (patricia) trie over IPv4 and IPv6 prefixes. The two
// families live in fully independent subtries, so v4 operations never
// touch v6 structure and vice versa.
//
// The tree is a single-writer structure with no internal locking:
// concurrent searches are safe with each other, but Insert and Remove
// need external mutual exclusion relative to everything else.
type Tree struct {
	root4 *Node
	root6 *Node

	// nodes counts every allocated vertex, glue included; size counts
	// stored prefixes only.
	nodes int
	size  int

	// gen increments on every structural mutation and invalidates
	// iterators created before the change.
	gen uint64
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

// Len returns the number of prefixes stored in the tree.
func (t *Tree) Len() int { return t.size }

func (t *Tree) rootPtr(f Family) **Node {
	if f == V4 {
		return &t.root4
	}
	return &t.root6
}

func (t *Tree) root(f Family) *Node {
	return *t.rootPtr(f)
}

// Insert stores the prefix and returns its node. Insert is idempotent:
// if the prefix is already present, the existing node is returned
// unchanged and the tree is not mutated. The node's payload map is
// created the first time the node becomes real.
func (t *Tree) Insert(p *Prefix) *Node {
	maxbits := p.family.Bits()
	root := t.rootPtr(p.family)
	if *root == nil {
		node := &Node{bit: p.bitlen, prefix: p, data: map[string]any{}}
		*root = node
		t.nodes++
		t.size++
		t.gen++
		return node
	}

	addr := p.addr
	bitlen := p.bitlen

	// Descend toward the prefix. Glue nodes never stop the probe; a real
	// node stops it once its depth reaches the new prefix length.
	node := *root
	for node.bit < bitlen || node.prefix == nil {
		if node.bit < maxbits && addrBit(addr, node.bit) {
			if node.right == nil {
				break
			}
			node = node.right
		} else {
			if node.left == nil {
				break
			}
			node = node.left
		}
	}

	// First bit at which the new prefix differs from the address stored
	// where the probe stopped, scanned only over the bits both define.
	// The probe can only stop at a real node: glue always has both
	// children, so it never ends a descent.
	testAddr := node.prefix.addr
	checkBit := node.bit
	if bitlen < checkBit {
		checkBit = bitlen
	}
	differBit := 0
	for i := 0; i*8 < checkBit; i++ {
		r := addr[i] ^ testAddr[i]
		if r == 0 {
			differBit = (i + 1) * 8
			continue
		}
		j := 0
		for ; j < 8; j++ {
			if r&(0x80>>j) != 0 {
				break
			}
		}
		differBit = i*8 + j
		break
	}
	if differBit > checkBit {
		differBit = checkBit
	}

	// Walk back up to the true attachment point.
	parent := node.parent
	for parent != nil && parent.bit >= differBit {
		node = parent
		parent = node.parent
	}

	if differBit == bitlen && node.bit == bitlen {
		// Landed exactly. Promote glue in place, or return the already
		// stored node untouched.
		if node.prefix == nil {
			node.prefix = p
			node.data = map[string]any{}
			t.size++
			t.gen++
		}
		return node
	}

	newNode := &Node{bit: bitlen, prefix: p, data: map[string]any{}}
	t.nodes++
	t.size++
	t.gen++

	if node.bit == differBit {
		// The attachment point is an ancestor of the new prefix: hang
		// the leaf off the free child slot.
		newNode.parent = node
		if node.bit < maxbits && addrBit(addr, node.bit) {
			node.right = newNode
		} else {
			node.left = newNode
		}
		return newNode
	}

	if bitlen == differBit {
		// The new prefix is an ancestor of node: splice the leaf into
		// node's former parent slot.
		if bitlen < maxbits && addrBit(testAddr, bitlen) {
			newNode.right = node
		} else {
			newNode.left = node
		}
		newNode.parent = node.parent
		t.replaceChild(root, node, newNode)
		node.parent = newNode
		return newNode
	}

	// Neither contains the other: a glue node at the first differing bit
	// becomes the common parent of both.
	glue := &Node{bit: differBit, parent: node.parent}
	t.nodes++
	if differBit < maxbits && addrBit(addr, differBit) {
		glue.right = newNode
		glue.left = node
	} else {
		glue.right = node
		glue.left = newNode
	}
	newNode.parent = glue
	t.replaceChild(root, node, glue)
	node.parent = glue
	return newNode
}

// replaceChild points whatever used to own old (its parent, or the root
// slot) at repl instead. old's parent link is left for the caller.
func (t *Tree) replaceChild(root **Node, old, repl *Node) {
	switch {
	case old.parent == nil:
		*root = repl
	case old.parent.right == old:
		old.parent.right = repl
	default:
		old.parent.left = repl
	}
}

// Remove deletes the prefix from the tree and returns its detached
// payload, or ErrNotFound if no stored prefix matches exactly. The
// payload keeps living for whatever caller holds it; the tree forgets it
// entirely.
//
// A node with two children is demoted to glue in place so the branch
// point survives; otherwise the node is unlinked, and a parent left as
// single-child glue is spliced out. The glue invariant holds everywhere
// else, so collapse never cascades past one level.
func (t *Tree) Remove(p *Prefix) (map[string]any, error) {
	node := t.SearchExact(p)
	if node == nil {
		return nil, ErrNotFound
	}
	data := node.data
	t.removeNode(node)
	return data, nil
}

func (t *Tree) removeNode(node *Node) {
	root := t.rootPtr(node.prefix.family)
	t.size--
	t.gen++

	if node.right != nil && node.left != nil {
		// Still a branch point: demote to glue.
		node.prefix = nil
		node.data = nil
		return
	}

	if node.right == nil && node.left == nil {
		parent := node.parent
		t.nodes--
		if parent == nil {
			*root = nil
			return
		}
		var sibling *Node
		if parent.right == node {
			parent.right = nil
			sibling = parent.left
		} else {
			parent.left = nil
			sibling = parent.right
		}
		if parent.prefix != nil {
			return
		}
		// The parent is now single-child glue: splice it out.
		if parent.parent == nil {
			*root = sibling
		} else if parent.parent.right == parent {
			parent.parent.right = sibling
		} else {
			parent.parent.left = sibling
		}
		sibling.parent = parent.parent
		t.nodes--
		return
	}

	// One child: link it straight to the parent.
	child := node.right
	if child == nil {
		child = node.left
	}
	parent := node.parent
	child.parent = parent
	t.nodes--

	if parent == nil {
		*root = child
		return
	}
	if parent.right == node {
		parent.right = child
	} else {
		parent.left = child
	}
}
