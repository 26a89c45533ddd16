package brep

import (
	"github.com/dhconnelly/rtreego"
)

// EdgeIndex is an R-tree-backed bounding-box accelerator over a set of
// edges, used to prune the candidate set before the exact (and more
// expensive) curve-level intersection tests in splitAgainst.
type EdgeIndex struct {
	tree *rtreego.Rtree
}

// indexedEdge adapts an *Edge to rtreego.Spatial.
type indexedEdge struct {
	edge *Edge
	rect rtreego.Rect
}

func (ie *indexedEdge) Bounds() rtreego.Rect {
	return ie.rect
}

// edgeBounds returns an axis-aligned bounding box for e, sampled along
// its curve at 33 evenly spaced parameters. Exact for Line edges; for
// Circle/Ellipse edges it is the box of the samples, which can fall
// slightly short of the arc's true extent between samples.
func edgeBounds(e *Edge) (min, max Point) {
	const samples = 32
	min, max = e.Start, e.Start
	for i := 0; i <= samples; i++ {
		p := e.PointAt(float64(i) / samples)
		min = min.Min(p)
		max = max.Max(p)
	}
	return min, max
}

// boxRect builds an rtreego.Rect spanning [min, max], padded so that no
// side has zero length (rtreego requires strictly positive side
// lengths).
func boxRect(min, max Point) rtreego.Rect {
	pad := EQThreshold
	lengths := []float64{
		max.X - min.X + pad,
		max.Y - min.Y + pad,
		max.Z - min.Z + pad,
	}
	rect, err := rtreego.NewRect(rtreego.Point{min.X, min.Y, min.Z}, lengths)
	if err != nil {
		panic("brep: degenerate edge bounding box")
	}
	return rect
}

// NewEdgeIndex builds an EdgeIndex over edges.
func NewEdgeIndex(edges []*Edge) *EdgeIndex {
	tree := rtreego.NewTree(3, 25, 50)
	for _, e := range edges {
		min, max := edgeBounds(e)
		tree.Insert(&indexedEdge{edge: e, rect: boxRect(min, max)})
	}
	return &EdgeIndex{tree: tree}
}

// Query returns every indexed edge whose bounding box overlaps e's.
func (idx *EdgeIndex) Query(e *Edge) []*Edge {
	min, max := edgeBounds(e)
	hits := idx.tree.SearchIntersect(boxRect(min, max))
	out := make([]*Edge, len(hits))
	for i, h := range hits {
		out[i] = h.(*indexedEdge).edge
	}
	return out
}

// FaceIndex is an R-tree-backed bounding-box accelerator over a set of
// faces, used to prune the candidate face pairs in Volume.ShellIntersect
// before running the exact surface/surface intersection tests.
type FaceIndex struct {
	tree    *rtreego.Rtree
	bounded []*Face
}

// indexedFace adapts a *Face to rtreego.Spatial.
type indexedFace struct {
	face *Face
	rect rtreego.Rect
}

func (ifc *indexedFace) Bounds() rtreego.Rect {
	return ifc.rect
}

// NewFaceIndex builds a FaceIndex over faces. Boundless faces (Outer ==
// nil, a whole sphere) have no finite bounding box and are returned
// separately — the caller must check them against every query face
// unconditionally, since nothing can prune them.
func NewFaceIndex(faces []*Face) (*FaceIndex, []*Face) {
	tree := rtreego.NewTree(3, 25, 50)
	idx := &FaceIndex{tree: tree}
	var unbounded []*Face
	for _, f := range faces {
		if f.Outer == nil {
			unbounded = append(unbounded, f)
			continue
		}
		min, max := f.BoundingBox()
		tree.Insert(&indexedFace{face: f, rect: boxRect(min, max)})
		idx.bounded = append(idx.bounded, f)
	}
	return idx, unbounded
}

// Query returns every indexed bounded face that is a plausible candidate
// for intersecting f: every bounded face whose box overlaps f's box, or
// (when f itself has no bounding box) every bounded face in the index.
func (idx *FaceIndex) Query(f *Face) []*Face {
	if f.Outer == nil {
		return idx.bounded
	}
	min, max := f.BoundingBox()
	hits := idx.tree.SearchIntersect(boxRect(min, max))
	out := make([]*Face, len(hits))
	for i, h := range hits {
		out[i] = h.(*indexedFace).face
	}
	return out
}
