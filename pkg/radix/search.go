package radix

// SearchExact returns the node storing exactly this prefix, or nil. Glue
// nodes never match.
func (t *Tree) SearchExact(p *Prefix) *Node {
	node := t.root(p.family)
	if node == nil {
		return nil
	}
	addr := p.addr
	bitlen := p.bitlen

	for node.bit < bitlen {
		if addrBit(addr, node.bit) {
			node = node.right
		} else {
			node = node.left
		}
		if node == nil {
			return nil
		}
	}
	if node.bit > bitlen || node.prefix == nil {
		return nil
	}
	if prefixMatch(node.prefix.addr, addr, bitlen) {
		return node
	}
	return nil
}

// SearchBest returns the most specific stored prefix containing p, the
// classic routing-table lookup. Pass a host prefix (/32 or /128) to look
// up a single address. Returns nil when nothing matches.
func (t *Tree) SearchBest(p *Prefix) *Node {
	return t.searchBest(p, true)
}

// SearchWorst returns the least specific stored prefix containing p, the
// inverse of SearchBest. Returns nil when nothing matches.
func (t *Tree) SearchWorst(p *Prefix) *Node {
	stack := t.descend(p, true)
	for _, node := range stack {
		if prefixMatch(node.prefix.addr, p.addr, node.prefix.bitlen) {
			return node
		}
	}
	return nil
}

// searchBest scans the descent candidates deepest-first. With inclusive
// false, a stored prefix exactly as long as p is skipped, yielding the
// best strictly less specific match.
func (t *Tree) searchBest(p *Prefix, inclusive bool) *Node {
	stack := t.descend(p, inclusive)
	for i := len(stack) - 1; i >= 0; i-- {
		node := stack[i]
		if prefixMatch(node.prefix.addr, p.addr, node.prefix.bitlen) &&
			node.prefix.bitlen <= p.bitlen {
			return node
		}
	}
	return nil
}

// descend walks from the family root toward p and collects every real
// node visited, root-first. Candidates deeper than p's bit length are
// never visited; with inclusive false, nodes at exactly that depth are
// dropped too.
func (t *Tree) descend(p *Prefix, inclusive bool) []*Node {
	node := t.root(p.family)
	maxbits := p.family.Bits()
	var stack []*Node
	for node != nil && node.bit <= p.bitlen {
		if node.prefix != nil && (inclusive || node.bit != p.bitlen) {
			stack = append(stack, node)
		}
		if node.bit >= maxbits {
			break
		}
		if addrBit(p.addr, node.bit) {
			node = node.right
		} else {
			node = node.left
		}
	}
	return stack
}

// SearchCovered returns every stored prefix nested within p: the more
// specific prefixes, plus p itself when present. Order is unspecified.
func (t *Tree) SearchCovered(p *Prefix) []*Node {
	return t.searchCovered(p, true)
}

// searchCovered walks the subtree at the point nearest below p's bit
// length. A branch whose top carries a prefix that fails to match p over
// the bits both define is provably disjoint and is pruned whole; once a
// matching real node is on the path, nothing below needs rechecking.
func (t *Tree) searchCovered(p *Prefix, inclusive bool) []*Node {
	node := t.root(p.family)
	if node == nil {
		return nil
	}
	var prev, prefixed *Node
	for node != nil && node.bit <= p.bitlen {
		prev = node
		if node.bit == p.bitlen {
			break
		}
		if node.prefix != nil {
			prefixed = node
		}
		if addrBit(p.addr, node.bit) {
			node = node.right
		} else {
			node = node.left
		}
	}
	if node == nil {
		if prev == nil {
			return nil
		}
		node = prev
	} else if node.prefix != nil {
		prefixed = node
	}
	if prefixed != nil && !coveredMatch(prefixed, p) {
		return nil
	}

	checked := node == prefixed && node.bit >= p.bitlen
	w := &coveredWalk{prefix: p, inclusive: inclusive}
	w.walk(node, checked, true)
	return w.out
}

type coveredWalk struct {
	prefix    *Prefix
	inclusive bool
	out       []*Node
}

// walk visits left, then right, then self. The start node yields itself
// only when it sits at or below the search depth; every deeper node
// already passed the disjointness check on entry.
func (w *coveredWalk) walk(node *Node, checked, start bool) {
	for _, child := range [2]*Node{node.left, node.right} {
		if child == nil {
			continue
		}
		if !checked && child.prefix != nil && !coveredMatch(child, w.prefix) {
			continue
		}
		w.walk(child, checked || child.prefix != nil, false)
	}
	if !start || boundOK(node.bit, w.prefix.bitlen, w.inclusive) {
		if node.prefix != nil {
			w.out = append(w.out, node)
		}
	}
}

func boundOK(bit, bitlen int, inclusive bool) bool {
	if inclusive {
		return bit >= bitlen
	}
	return bit > bitlen
}

// coveredMatch compares a real node against the search prefix over the
// shorter of the two lengths.
func coveredMatch(node *Node, p *Prefix) bool {
	masklen := node.prefix.bitlen
	if p.bitlen < masklen {
		masklen = p.bitlen
	}
	return prefixMatch(node.prefix.addr, p.addr, masklen)
}

// SearchCovering returns the stored prefixes that strictly contain p,
// least specific last: the best strictly-shorter match first, then its
// real ancestors up to the root.
func (t *Tree) SearchCovering(p *Prefix) []*Node {
	node := t.searchBest(p, false)
	var out []*Node
	for ; node != nil; node = node.parent {
		if node.prefix != nil {
			out = append(out, node)
		}
	}
	return out
}

// SearchIntersect returns every stored prefix that either contains or is
// contained by p, the exact match excluded. Empty only when both sides
// are empty.
func (t *Tree) SearchIntersect(p *Prefix) []*Node {
	out := t.SearchCovering(p)
	return append(out, t.searchCovered(p, false)...)
}
