package graph

import "testing"

func TestNewDesignGraph(t *testing.T) {
	g := New()
	if g.Nodes == nil {
		t.Fatal("Nodes map should be initialized")
	}
	if g.NameIndex == nil {
		t.Fatal("NameIndex map should be initialized")
	}
	if g.Defaults.Units != "mm" {
		t.Errorf("default units = %q, want %q", g.Defaults.Units, "mm")
	}
	if g.NodeCount() != 0 {
		t.Errorf("empty graph should have 0 nodes, got %d", g.NodeCount())
	}
}

func TestAddNodeAndLookup(t *testing.T) {
	g := New()

	id := NewNodeID("box/front")
	node := &Node{
		ID:   id,
		Kind: NodePrimitive,
		Name: "front",
		Data: BoxData{
			PrimKind:   PrimBox,
			Dimensions: Vec3{X: 400, Y: 200, Z: 19},
		},
	}
	g.AddNode(node)
	g.AddRoot(id)

	if g.NodeCount() != 1 {
		t.Errorf("node count = %d, want 1", g.NodeCount())
	}

	found := g.Lookup("front")
	if found == nil {
		t.Fatal("Lookup('front') returned nil")
	}
	if found.ID != id {
		t.Errorf("lookup returned wrong node")
	}

	must := g.MustLookup("front")
	if must.ID != id {
		t.Errorf("MustLookup returned wrong node")
	}

	if g.Lookup("nonexistent") != nil {
		t.Error("Lookup should return nil for missing name")
	}

	got := g.Get(id)
	if got == nil || got.Name != "front" {
		t.Errorf("Get by ID failed")
	}

	if len(g.Roots) != 1 || g.Roots[0] != id {
		t.Errorf("roots = %v, want [%s]", g.Roots, id.Short())
	}
}

func TestMustLookupPanics(t *testing.T) {
	g := New()
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustLookup should panic on missing name")
		}
	}()
	g.MustLookup("missing")
}

func TestPartsAndBooleans(t *testing.T) {
	g := New()

	boxID := NewNodeID("box/a")
	cylID := NewNodeID("cylinder/a")
	boolID := NewNodeID("difference/a")

	g.AddNode(&Node{
		ID: boxID, Kind: NodePrimitive, Name: "box",
		Data: BoxData{PrimKind: PrimBox, Dimensions: Vec3{X: 40, Y: 20, Z: 10}},
	})
	g.AddNode(&Node{
		ID: cylID, Kind: NodePrimitive, Name: "bore",
		Data: CylinderData{PrimKind: PrimCylinder, Height: 10, Radius: 3},
	})
	g.AddNode(&Node{
		ID: boolID, Kind: NodeBoolean, Name: "",
		Children: []NodeID{boxID, cylID},
		Data:     BooleanData{Op: BoolDifference, A: boxID, B: cylID},
	})

	parts := g.Parts()
	if len(parts) != 2 {
		t.Errorf("Parts() count = %d, want 2", len(parts))
	}
	booleans := g.Booleans()
	if len(booleans) != 1 {
		t.Errorf("Booleans() count = %d, want 1", len(booleans))
	}
}

func TestChildren(t *testing.T) {
	g := New()

	childID := NewNodeID("box/shelf")
	parentID := NewNodeID("assembly/cabinet")

	g.AddNode(&Node{
		ID: childID, Kind: NodePrimitive, Name: "shelf",
		Data: BoxData{PrimKind: PrimBox, Dimensions: Vec3{X: 600, Y: 300, Z: 19}},
	})
	g.AddNode(&Node{
		ID: parentID, Kind: NodeGroup, Name: "cabinet",
		Children: []NodeID{childID},
		Data:     GroupData{},
	})

	parent := g.Get(parentID)
	children := g.Children(parent)
	if len(children) != 1 {
		t.Fatalf("Children count = %d, want 1", len(children))
	}
	if children[0].Name != "shelf" {
		t.Errorf("child name = %q, want %q", children[0].Name, "shelf")
	}
}

func TestNodeIDDeterministic(t *testing.T) {
	a := NewNodeID("box/front")
	b := NewNodeID("box/front")
	if a != b {
		t.Error("same seed should produce same NodeID")
	}

	c := NewNodeID("box/back")
	if a == c {
		t.Error("different seeds should produce different NodeIDs")
	}
}

func TestNodeIDZero(t *testing.T) {
	var id NodeID
	if !id.IsZero() {
		t.Error("zero-value NodeID should be zero")
	}
	id = NewNodeID("something")
	if id.IsZero() {
		t.Error("non-zero NodeID should not be zero")
	}
}

func TestNodeDataInterface(t *testing.T) {
	// Verify all concrete types implement NodeData at compile time.
	var _ NodeData = BoxData{}
	var _ NodeData = CylinderData{}
	var _ NodeData = TransformData{}
	var _ NodeData = GroupData{}
	var _ NodeData = BooleanData{}
}

func TestStringers(t *testing.T) {
	if NodePrimitive.String() != "primitive" {
		t.Errorf("NodePrimitive.String() = %q", NodePrimitive.String())
	}
	if NodeBoolean.String() != "boolean" {
		t.Errorf("NodeBoolean.String() = %q", NodeBoolean.String())
	}
	if BoolUnion.String() != "union" {
		t.Errorf("BoolUnion.String() = %q", BoolUnion.String())
	}
	if BoolDifference.String() != "difference" {
		t.Errorf("BoolDifference.String() = %q", BoolDifference.String())
	}

	id := NewNodeID("test")
	if len(id.Short()) != 8 {
		t.Errorf("Short() len = %d, want 8", len(id.Short()))
	}
}
