package dither

import (
	"math"
	"sort"
)

// kdTreeThreshold mirrors the original's size cutoff: palettes smaller
// than this use a plain linear scan (cheap and cache-friendly for small
// N, and the source's own comment notes it's "really fast" there);
// larger palettes build a k-d tree once and pay an O(log n) query per
// pixel instead of O(n). Grounded on dither::quant::ColorPalette's
// documented R-tree fallback — no R-tree/k-d-tree library exists
// anywhere in the retrieved pack, so this is one of the few components
// built on the standard library alone (see DESIGN.md).
const kdTreeThreshold = 300

// kdTree is a static k-d tree over a palette's colors in their flattened
// color-space coordinates, bulk-built once by buildKDTree and then only
// ever read by nearest, matching the original's "built once, shared
// read-only across calls" palette-lookup contract.
type kdTree struct {
	nodes []kdNode
	root  int
}

type kdNode struct {
	point      []float32
	colorIndex int
	axis       int
	left       int
	right      int
}

// buildKDTree builds a balanced static k-d tree over points, cycling the
// split axis through every color-space dimension with tree depth and
// splitting each subtree at its axis median.
func buildKDTree(points [][]float32) *kdTree {
	dims := 0
	if len(points) > 0 {
		dims = len(points[0])
	}
	idx := make([]int, len(points))
	for i := range idx {
		idx[i] = i
	}
	t := &kdTree{nodes: make([]kdNode, 0, len(points))}
	t.root = t.build(points, idx, 0, dims)
	return t
}

func (t *kdTree) build(points [][]float32, idx []int, depth, dims int) int {
	if len(idx) == 0 || dims == 0 {
		return -1
	}
	axis := depth % dims
	sort.Slice(idx, func(i, j int) bool {
		return points[idx[i]][axis] < points[idx[j]][axis]
	})
	mid := len(idx) / 2
	medianIdx := idx[mid]

	nodeIdx := len(t.nodes)
	t.nodes = append(t.nodes, kdNode{
		point:      points[medianIdx],
		colorIndex: medianIdx,
		axis:       axis,
	})

	left := t.build(points, idx[:mid], depth+1, dims)
	right := t.build(points, idx[mid+1:], depth+1, dims)
	t.nodes[nodeIdx].left = left
	t.nodes[nodeIdx].right = right
	return nodeIdx
}

// nearest returns the index (into the points slice buildKDTree was
// called with) of the point closest to target under squared Euclidean
// distance.
func (t *kdTree) nearest(target []float32) int {
	best := -1
	bestDist := float32(math.MaxFloat32)
	t.search(t.root, target, &best, &bestDist)
	return best
}

func (t *kdTree) search(nodeIdx int, target []float32, best *int, bestDist *float32) {
	if nodeIdx == -1 {
		return
	}
	n := &t.nodes[nodeIdx]
	d := distance2(n.point, target)
	if *best == -1 || d < *bestDist {
		*best = n.colorIndex
		*bestDist = d
	}

	diff := target[n.axis] - n.point[n.axis]
	near, far := n.left, n.right
	if diff > 0 {
		near, far = n.right, n.left
	}
	t.search(near, target, best, bestDist)
	// Only descend into the far subtree if the splitting plane is
	// closer than the best distance found so far — the standard k-d
	// tree pruning rule.
	if diff*diff < *bestDist {
		t.search(far, target, best, bestDist)
	}
}
