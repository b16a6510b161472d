// Package radix implements a binary radix (patricia) trie for IPv4 and
// IPv6 network prefixes, the structure behind routing-table lookups.
//
// A Tree stores prefixes of mixed families and answers exact-match,
// longest-prefix-match (SearchBest), shortest-prefix-match (SearchWorst),
// containment (SearchCovered, SearchCovering, SearchIntersect) and
// full-enumeration queries. Every stored prefix maps to exactly one Node
// whose payload map survives until the caller drops it, even after the
// prefix is removed from the tree.
//
//	tree := radix.New()
//	p, _ := radix.ParsePrefix("10.0.0.0/8")
//	node := tree.Insert(p)
//	node.Data()["asn"] = 64512
//
//	addr, _ := radix.ParsePrefix("10.1.2.3")
//	best := tree.SearchBest(addr) // the 10.0.0.0/8 node
//
// The tree never locks: one writer at a time, and no searches while a
// writer runs.
package radix
