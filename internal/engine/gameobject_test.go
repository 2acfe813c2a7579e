package engine

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if obj.UID == 0 {
		t.Error("UID should not be 0")
	}

	if obj.Transform.Scale != rl.Vector3One() {
		t.Errorf("Expected unit scale, got %v", obj.Transform.Scale)
	}

	if obj.components == nil {
		t.Error("components slice should be initialized")
	}
}

func TestGameObjectUniqueUIDs(t *testing.T) {
	obj1 := NewGameObject("First")
	obj2 := NewGameObject("Second")
	obj3 := NewGameObject("Third")

	if obj1.UID == obj2.UID || obj2.UID == obj3.UID || obj1.UID == obj3.UID {
		t.Error("GameObjects should have unique UIDs")
	}
}

func TestGameObjectParentChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")

	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("Child.Parent should be set")
	}

	if len(parent.Children) != 1 || parent.Children[0] != child {
		t.Errorf("Expected child in parent's Children, got %v", parent.Children)
	}
}

func TestGameObjectReparent(t *testing.T) {
	first := NewGameObject("First")
	second := NewGameObject("Second")
	child := NewGameObject("Child")

	first.AddChild(child)
	second.AddChild(child)

	if len(first.Children) != 0 {
		t.Errorf("Old parent should have no children, got %d", len(first.Children))
	}
	if child.Parent != second {
		t.Error("Child should point at new parent")
	}
}

func TestGameObjectRemoveChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child1 := NewGameObject("Child1")
	child2 := NewGameObject("Child2")

	parent.AddChild(child1)
	parent.AddChild(child2)

	parent.RemoveChild(child1)

	if len(parent.Children) != 1 {
		t.Errorf("Expected 1 child after removal, got %d", len(parent.Children))
	}

	if parent.Children[0] != child2 {
		t.Error("Wrong child removed")
	}

	if child1.Parent != nil {
		t.Error("Removed child should have nil parent")
	}
}

func TestGameObjectAddComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	if len(obj.components) != 1 {
		t.Errorf("Expected 1 component, got %d", len(obj.components))
	}

	if comp.gameObject != obj {
		t.Error("Component.gameObject should be set")
	}

	if GetComponent[*BaseComponent](obj) != comp {
		t.Error("GetComponent failed to find component")
	}
}

func TestGameObjectStartCalledOnce(t *testing.T) {
	obj := NewGameObject("Test")

	obj.Start()
	if !obj.started {
		t.Error("started flag should be true after Start()")
	}

	obj.Start()
}

func TestWorldTransformWithParent(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Position = rl.Vector3{X: 1, Y: 2, Z: 3}
	parent.Transform.Scale = rl.Vector3{X: 2, Y: 2, Z: 2}

	child := NewGameObject("Child")
	child.Transform.Position = rl.Vector3{X: 1}
	parent.AddChild(child)

	world := child.WorldTransform()

	if !near(world.Position.X, 3) || !near(world.Position.Y, 2) || !near(world.Position.Z, 3) {
		t.Errorf("Expected world position (3,2,3), got %v", world.Position)
	}
	if !near(world.Scale.X, 2) {
		t.Errorf("Expected inherited scale 2, got %v", world.Scale.X)
	}
}

func TestTransformAxes(t *testing.T) {
	tr := IdentityTransform()

	up, fwd, right := tr.Up(), tr.Forward(), tr.Right()
	if !near(up.Y, 1) || !near(fwd.Z, -1) || !near(right.X, 1) {
		t.Errorf("Identity axes wrong: up=%v forward=%v right=%v", up, fwd, right)
	}

	tr.Rotation = rl.Vector3{Y: 90}
	right = tr.Right()
	if !near(right.X, 0) || !near(right.Z, -1) {
		t.Errorf("Expected right (0,0,-1) after 90° yaw, got %v", right)
	}
}
