// Package brep implements the boundary-representation geometry/topology
// kernel: curve and surface manifolds, the oriented topological entities
// built on top of them (edge, contour, face, volume), and the intersection
// and Boolean primitives that compose them.
//
// The kernel is pure and single-threaded: every
// operation is a function of its inputs, entities are immutable after
// construction, and there is no shared mutable state.
package brep

// EQThreshold is the single absolute tolerance governing every geometric
// equality predicate in the kernel: point equality, on-manifold tests, and
// discriminant-zero collapse in intersection routines.
const EQThreshold = 1e-9

// ProjectionThreshold governs how far a point may sit off a surface and
// still be considered "close enough" to project onto it.
const ProjectionThreshold = 100 * EQThreshold
