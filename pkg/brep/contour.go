package brep

// Contour is an ordered, non-empty, closed chain of edges lying on a
// single surface: edges[i].End == edges[(i+1) % n].Start for every i.
// Represented as a flat slice with implicit wraparound — no cyclic
// references in memory.
type Contour struct {
	Edges []*Edge
}

// NewContour constructs a Contour. Panics (a precondition violation)
// if edges is empty or the chain does not close.
func NewContour(edges []*Edge) *Contour {
	if len(edges) == 0 {
		panic("brep: contour must have at least one edge")
	}
	for i, e := range edges {
		next := edges[(i+1)%len(edges)]
		if !e.End.Equal(next.Start) {
			panic("brep: contour edges do not form a closed chain")
		}
	}
	return &Contour{Edges: edges}
}

// PointAt reparameterizes the whole contour to the unit interval,
// dividing it into len(Edges) equal slices in traversal order,
// mirroring the reference rasterizer's edge-loop
// parametrization.
func (c *Contour) PointAt(t float64) Point {
	n := len(c.Edges)
	scaled := t * float64(n)
	i := int(scaled)
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	local := scaled - float64(i)
	return c.Edges[i].PointAt(local)
}

// Tangent reparameterizes like PointAt and returns the tangent of the
// edge occupying parameter t.
func (c *Contour) Tangent(t float64) Point {
	n := len(c.Edges)
	scaled := t * float64(n)
	i := int(scaled)
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	local := scaled - float64(i)
	p := c.Edges[i].PointAt(local)
	return c.Edges[i].Tangent(p)
}

// Contains reports whether p lies on the contour: on any of its edges,
// vertices included (an edge's OnStart/OnEnd count the same as Inside).
func (c *Contour) Contains(p Point) bool {
	for _, e := range c.Edges {
		if e.Contains(p) != Outside {
			return true
		}
	}
	return false
}

// Neg returns the contour traversed in reverse order with each edge
// reversed, preserving closure.
func (c *Contour) Neg() *Contour {
	edges := make([]*Edge, len(c.Edges))
	n := len(c.Edges)
	for i, e := range c.Edges {
		edges[n-1-i] = e.Neg()
	}
	return &Contour{Edges: edges}
}

// Transform returns the contour mapped through t.
func (c *Contour) Transform(t Transform) *Contour {
	edges := make([]*Edge, len(c.Edges))
	for i, e := range c.Edges {
		edges[i] = e.Transform(t)
	}
	return &Contour{Edges: edges}
}

// Vertices returns the ordered list of distinct vertices of the contour
// (each edge's start point, in traversal order).
func (c *Contour) Vertices() []Point {
	pts := make([]Point, len(c.Edges))
	for i, e := range c.Edges {
		pts[i] = e.Start
	}
	return pts
}
