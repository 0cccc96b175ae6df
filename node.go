package fontatlas

// PackTree packs rectangles into a fixed region using recursive
// guillotine splits. Free space is subdivided with straight cuts as
// rectangles arrive; placement is depth-first and first-child-biased,
// so a fixed insertion order always produces identical placements.
//
// The tree is not safe for concurrent use. Each insertion depends on
// the state left by all prior insertions.
type PackTree struct {
	root *packNode
}

// NewPackTree creates an empty tree covering the given region.
func NewPackTree(region Rect) *PackTree {
	return &PackTree{root: &packNode{rect: region}}
}

// Region returns the rectangle the tree packs into.
func (t *PackTree) Region() Rect {
	return t.root.rect
}

// Insert reserves space for a rectangle of req's dimensions and returns
// the placed rectangle. It returns ErrNodeFull when every candidate
// region is already occupied and ErrDoesNotFit when req is larger than
// any free region.
func (t *PackTree) Insert(req Rect) (Rect, error) {
	return t.root.insert(req)
}

// packNode is one node of the packing tree. A node is either a leaf
// (both children nil) or internal (both children set); an internal
// node's children exactly partition its rectangle, and a node is never
// both occupied and subdivided.
type packNode struct {
	rect     Rect
	children [2]*packNode
	occupied bool
}

func (n *packNode) isLeaf() bool {
	return n.children[0] == nil && n.children[1] == nil
}

func (n *packNode) insert(req Rect) (Rect, error) {
	if !n.isLeaf() {
		// Try the first child, then fall back to the second.
		if placed, err := n.children[0].insert(req); err == nil {
			return placed, nil
		}
		return n.children[1].insert(req)
	}

	if n.occupied {
		return Rect{}, ErrNodeFull
	}
	if !req.FitsWithin(n.rect) {
		return Rect{}, ErrDoesNotFit
	}
	if req.SameSize(n.rect) {
		// Exact fit: claim the whole node, no subdivision.
		n.occupied = true
		return n.rect, nil
	}

	// Split along the axis with more slack so the remainder stays
	// usefully shaped for similarly-sized follow-on rectangles. Ties
	// resolve to the horizontal cut; this must not change, as it
	// reorders every subsequent placement.
	deltaWidth := n.rect.Width - req.Width
	deltaHeight := n.rect.Height - req.Height

	if deltaWidth > deltaHeight {
		// Vertical cut: requested width on the left at full height,
		// remaining width strip on the right.
		n.children[0] = &packNode{rect: NewRect(n.rect.Top, n.rect.Left, req.Width, n.rect.Height)}
		n.children[1] = &packNode{rect: NewRect(n.rect.Top, n.rect.Left+req.Width, deltaWidth, n.rect.Height)}
	} else {
		// Horizontal cut: requested height on top at full width,
		// remaining height strip below.
		n.children[0] = &packNode{rect: NewRect(n.rect.Top, n.rect.Left, n.rect.Width, req.Height)}
		n.children[1] = &packNode{rect: NewRect(n.rect.Top+req.Height, n.rect.Left, n.rect.Width, deltaHeight)}
	}

	// The first child keeps the full extent of the non-split axis, so
	// it subdivides again here and exposes a strip that later
	// insertions can keep filling.
	return n.children[0].insert(req)
}
