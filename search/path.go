package search

// CompPath is the shared-ancestry cons list of spec.md §9 "Shared
// history": {Start(idx) | Cons(parent, link_idx)}. A prefix's path is
// never copied while expanding — only a new cons cell pointing at the
// parent is allocated — so two sibling prefixes sharing a long common
// ancestry share its storage too. Flatten walks to the root once, at
// emission time, the only point a composition's full path is needed.
type CompPath struct {
	parent  *CompPath
	linkIdx int
	start   int
}

// StartPath is the root of a path: the index into Graph.Starts the
// composition began at.
func StartPath(startIdx int) *CompPath {
	return &CompPath{start: startIdx}
}

// Cons extends p by one link.
func (p *CompPath) Cons(linkIdx int) *CompPath {
	return &CompPath{parent: p, linkIdx: linkIdx}
}

// Flatten walks from p back to its root and returns the originating start
// index together with the sequence of link indices taken, in traversal
// (oldest-first) order.
func (p *CompPath) Flatten() (startIdx int, linkIdxs []int) {
	cur := p
	for cur.parent != nil {
		linkIdxs = append(linkIdxs, cur.linkIdx)
		cur = cur.parent
	}
	for i, j := 0, len(linkIdxs)-1; i < j; i, j = i+1, j-1 {
		linkIdxs[i], linkIdxs[j] = linkIdxs[j], linkIdxs[i]
	}
	return cur.start, linkIdxs
}
