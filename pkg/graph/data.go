package graph

// ---------------------------------------------------------------------------
// Primitives
// ---------------------------------------------------------------------------

// PrimitiveKind distinguishes between primitive solids.
type PrimitiveKind int

const (
	PrimBox      PrimitiveKind = iota // axis-aligned rectangular solid
	PrimCylinder                      // circular prism, standing on Z
)

// BoxData represents an axis-aligned rectangular solid.
type BoxData struct {
	PrimKind   PrimitiveKind `json:"prim_kind"`
	Dimensions Vec3          `json:"dimensions"` // extent along X, Y, Z
}

func (BoxData) nodeData() {}

// CylinderData represents a circular solid standing on the origin along Z.
type CylinderData struct {
	PrimKind PrimitiveKind `json:"prim_kind"`
	Height   float64       `json:"height"`
	Radius   float64       `json:"radius"`
	Segments int           `json:"segments"` // 0 = kernel's default facet count
}

func (CylinderData) nodeData() {}

// ---------------------------------------------------------------------------
// Transform
// ---------------------------------------------------------------------------

// TransformData represents a spatial transformation applied to a child node.
// Created by the (translate ...) and (rotate ...) Lisp forms.
type TransformData struct {
	Translation *Vec3 `json:"translation,omitempty"`
	Rotation    *Vec3 `json:"rotation,omitempty"` // Euler angles in degrees
}

func (TransformData) nodeData() {}

// ---------------------------------------------------------------------------
// Group
// ---------------------------------------------------------------------------

// GroupData represents a logical grouping (assembly, subassembly).
// Created by the (assembly ...) Lisp form.
type GroupData struct {
	Description string `json:"description,omitempty"`
}

func (GroupData) nodeData() {}

// ---------------------------------------------------------------------------
// Boolean
// ---------------------------------------------------------------------------

// BooleanOp enumerates the supported CSG boolean operations.
type BooleanOp int

const (
	BoolUnion        BooleanOp = iota // A ∪ B
	BoolDifference                    // A − B
	BoolIntersection                  // A ∩ B
)

func (op BooleanOp) String() string {
	switch op {
	case BoolUnion:
		return "union"
	case BoolDifference:
		return "difference"
	case BoolIntersection:
		return "intersection"
	default:
		return "unknown"
	}
}

// BooleanData specifies a CSG boolean combining two child solids.
// Either operand may itself be a primitive, transform, boolean, or group
// node: boolean trees nest freely.
type BooleanData struct {
	Op BooleanOp `json:"op"`
	A  NodeID    `json:"a"`
	B  NodeID    `json:"b"`
}

func (BooleanData) nodeData() {}
