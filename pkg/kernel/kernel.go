// Package kernel defines the abstract geometry kernel interface.
// Implementations (brep, sdfx, manifold) provide solid modeling and
// boolean operations behind this interface.
package kernel

// Solid is an opaque handle to a kernel-specific solid. Each backend
// wraps its own representation (a B-Rep Volume, an SDF3, a Manifold
// C pointer) behind this interface.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box of the solid.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel: primitive construction,
// boolean combination, rigid transforms, and mesh export. Every method
// is pure — it returns a new Solid rather than mutating its receiver.
type Kernel interface {
	// Box creates an axis-aligned box with the given dimensions, with
	// its minimum corner at the origin.
	Box(x, y, z float64) Solid
	// Cylinder creates a cylinder with the given height and radius,
	// standing on the origin along the Z axis. segments hints at the
	// polygonal approximation for backends that need one; exact
	// backends may ignore it.
	Cylinder(height, radius float64, segments int) Solid

	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	Translate(s Solid, x, y, z float64) Solid
	// Rotate rotates s by Euler angles in degrees around X, Y, Z.
	Rotate(s Solid, x, y, z float64) Solid

	// ToMesh converts a solid to a triangle mesh.
	ToMesh(s Solid) (*Mesh, error)
}
