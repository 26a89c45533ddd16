// Package tessellate walks a design graph and produces triangle meshes
// using a geometry kernel. One mesh is produced per resolved solid: each
// primitive or boolean result reachable from a root.
package tessellate

import (
	"fmt"

	"github.com/chazu/brep/pkg/graph"
	"github.com/chazu/brep/pkg/kernel"
)

// transformStack accumulates spatial transforms during graph traversal.
type transformStack struct {
	translations []graph.Vec3
	rotations    []graph.Vec3
}

func newTransformStack() *transformStack {
	return &transformStack{}
}

func (ts *transformStack) pushTranslation(v graph.Vec3) {
	ts.translations = append(ts.translations, v)
}

func (ts *transformStack) pushRotation(v graph.Vec3) {
	ts.rotations = append(ts.rotations, v)
}

func (ts *transformStack) pop() {
	if len(ts.translations) > 0 {
		ts.translations = ts.translations[:len(ts.translations)-1]
	}
	if len(ts.rotations) > 0 {
		ts.rotations = ts.rotations[:len(ts.rotations)-1]
	}
}

// accumulatedTranslation returns the sum of all translations on the stack.
func (ts *transformStack) accumulatedTranslation() graph.Vec3 {
	var sum graph.Vec3
	for _, t := range ts.translations {
		sum = sum.Add(t)
	}
	return sum
}

// accumulatedRotation returns the sum of all rotations on the stack.
func (ts *transformStack) accumulatedRotation() graph.Vec3 {
	var sum graph.Vec3
	for _, r := range ts.rotations {
		sum = sum.Add(r)
	}
	return sum
}

// Tessellate walks the design graph and produces one triangle mesh per
// resolved solid (primitive or boolean result) using the provided geometry
// kernel. The tessellator is read-only and never mutates the graph.
func Tessellate(g *graph.DesignGraph, k kernel.Kernel) ([]*kernel.Mesh, error) {
	if g == nil {
		return nil, nil
	}

	var meshes []*kernel.Mesh
	ts := newTransformStack()

	for _, rootID := range g.Roots {
		root := g.Get(rootID)
		if root == nil {
			continue
		}
		collected, err := walkNode(g, k, root, ts)
		if err != nil {
			return nil, fmt.Errorf("tessellate: error walking root %s: %w", rootID.Short(), err)
		}
		meshes = append(meshes, collected...)
	}

	return meshes, nil
}

// walkNode recursively traverses a node and its children, collecting meshes.
// Primitive and boolean nodes each resolve to exactly one mesh; transform
// and group nodes are structural and recurse without producing a mesh of
// their own.
func walkNode(g *graph.DesignGraph, k kernel.Kernel, n *graph.Node, ts *transformStack) ([]*kernel.Mesh, error) {
	switch n.Kind {
	case graph.NodePrimitive, graph.NodeBoolean:
		mesh, err := meshForSolidNode(g, k, n, ts)
		if err != nil {
			return nil, err
		}
		return []*kernel.Mesh{mesh}, nil

	case graph.NodeTransform:
		return handleTransform(g, k, n, ts)

	case graph.NodeGroup:
		return handleGroup(g, k, n, ts)

	default:
		return nil, fmt.Errorf("unknown node kind: %v", n.Kind)
	}
}

// meshForSolidNode resolves a primitive or boolean node to a kernel solid
// under the current transform stack and tessellates it into a mesh.
func meshForSolidNode(g *graph.DesignGraph, k kernel.Kernel, n *graph.Node, ts *transformStack) (*kernel.Mesh, error) {
	solid, err := buildSolid(g, k, n)
	if err != nil {
		return nil, err
	}

	rot := ts.accumulatedRotation()
	if rot.X != 0 || rot.Y != 0 || rot.Z != 0 {
		solid = k.Rotate(solid, rot.X, rot.Y, rot.Z)
	}

	trans := ts.accumulatedTranslation()
	if trans.X != 0 || trans.Y != 0 || trans.Z != 0 {
		solid = k.Translate(solid, trans.X, trans.Y, trans.Z)
	}

	mesh, err := k.ToMesh(solid)
	if err != nil {
		return nil, fmt.Errorf("tessellate: ToMesh failed for node %s: %w", n.ID.Short(), err)
	}

	if n.Name != "" {
		mesh.PartName = n.Name
	} else {
		mesh.PartName = n.ID.Short()
	}

	return mesh, nil
}

// buildSolid resolves a node to a kernel.Solid without applying any ambient
// transform from the traversal stack. Primitive nodes become a box or
// cylinder; boolean nodes recursively resolve their two operands and combine
// them. A boolean's operands may themselves be primitives, other booleans,
// or a single-child transform wrapping either.
func buildSolid(g *graph.DesignGraph, k kernel.Kernel, n *graph.Node) (kernel.Solid, error) {
	switch data := n.Data.(type) {
	case graph.BoxData:
		return k.Box(data.Dimensions.X, data.Dimensions.Y, data.Dimensions.Z), nil

	case graph.CylinderData:
		segments := data.Segments
		if segments == 0 {
			segments = 32
		}
		return k.Cylinder(data.Height, data.Radius, segments), nil

	case graph.BooleanData:
		aNode := g.Get(data.A)
		if aNode == nil {
			return nil, fmt.Errorf("boolean node %s: operand a %s not found", n.ID.Short(), data.A.Short())
		}
		bNode := g.Get(data.B)
		if bNode == nil {
			return nil, fmt.Errorf("boolean node %s: operand b %s not found", n.ID.Short(), data.B.Short())
		}

		a, err := resolveOperand(g, k, aNode)
		if err != nil {
			return nil, err
		}
		b, err := resolveOperand(g, k, bNode)
		if err != nil {
			return nil, err
		}

		switch data.Op {
		case graph.BoolUnion:
			return k.Union(a, b), nil
		case graph.BoolDifference:
			return k.Difference(a, b), nil
		case graph.BoolIntersection:
			return k.Intersection(a, b), nil
		default:
			return nil, fmt.Errorf("boolean node %s: unknown operator %v", n.ID.Short(), data.Op)
		}

	default:
		return nil, fmt.Errorf("node %s has unsupported solid data type %T", n.ID.Short(), n.Data)
	}
}

// resolveOperand resolves a boolean operand reference to a solid, unwrapping
// a single intervening transform node if present.
func resolveOperand(g *graph.DesignGraph, k kernel.Kernel, n *graph.Node) (kernel.Solid, error) {
	if n.Kind == graph.NodeTransform {
		td, ok := n.Data.(graph.TransformData)
		if !ok {
			return nil, fmt.Errorf("transform node %s has unexpected data type %T", n.ID.Short(), n.Data)
		}
		children := g.Children(n)
		if len(children) != 1 {
			return nil, fmt.Errorf("transform node %s used as a boolean operand must have exactly one child, got %d", n.ID.Short(), len(children))
		}
		solid, err := resolveOperand(g, k, children[0])
		if err != nil {
			return nil, err
		}
		if td.Rotation != nil {
			solid = k.Rotate(solid, td.Rotation.X, td.Rotation.Y, td.Rotation.Z)
		}
		if td.Translation != nil {
			solid = k.Translate(solid, td.Translation.X, td.Translation.Y, td.Translation.Z)
		}
		return solid, nil
	}

	return buildSolid(g, k, n)
}

// handleTransform pushes the transform, recurses into children, then pops.
func handleTransform(g *graph.DesignGraph, k kernel.Kernel, n *graph.Node, ts *transformStack) ([]*kernel.Mesh, error) {
	td, ok := n.Data.(graph.TransformData)
	if !ok {
		return nil, fmt.Errorf("transform node %s has unexpected data type %T", n.ID.Short(), n.Data)
	}

	translation := graph.Vec3{}
	rotation := graph.Vec3{}
	if td.Translation != nil {
		translation = *td.Translation
	}
	if td.Rotation != nil {
		rotation = *td.Rotation
	}
	ts.pushTranslation(translation)
	ts.pushRotation(rotation)

	var meshes []*kernel.Mesh
	for _, child := range g.Children(n) {
		collected, err := walkNode(g, k, child, ts)
		if err != nil {
			ts.pop()
			return nil, err
		}
		meshes = append(meshes, collected...)
	}

	ts.pop()
	return meshes, nil
}

// handleGroup recurses into children transparently.
func handleGroup(g *graph.DesignGraph, k kernel.Kernel, n *graph.Node, ts *transformStack) ([]*kernel.Mesh, error) {
	var meshes []*kernel.Mesh
	for _, child := range g.Children(n) {
		collected, err := walkNode(g, k, child, ts)
		if err != nil {
			return nil, err
		}
		meshes = append(meshes, collected...)
	}
	return meshes, nil
}
