package engine

import "testing"

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")

	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject, got %d", len(scene.GameObjects))
	}

	if obj.Scene != scene {
		t.Error("GameObject.Scene not set")
	}
}

func TestSceneUIDLookup(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")

	scene.AddGameObject(obj)

	if found := scene.FindByUID(obj.UID); found != obj {
		t.Errorf("FindByUID failed: expected %v, got %v", obj, found)
	}

	if scene.FindByUID(99999999) != nil {
		t.Error("FindByUID should return nil for non-existent UID")
	}
}

func TestSceneRemoveWithChildren(t *testing.T) {
	scene := NewScene("Test")
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")
	other := NewGameObject("Other")

	scene.AddGameObject(parent)
	scene.AddGameObject(child)
	scene.AddGameObject(other)
	parent.AddChild(child)

	scene.RemoveGameObject(parent)

	if len(scene.GameObjects) != 1 || scene.GameObjects[0] != other {
		t.Errorf("Expected only Other to remain, got %d objects", len(scene.GameObjects))
	}

	if scene.FindByUID(parent.UID) != nil {
		t.Error("Parent still in UID map after removal")
	}
	if scene.FindByUID(child.UID) != nil {
		t.Error("Child still in UID map after removal")
	}
}

func TestSceneFindByName(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Enemy1")
	obj2 := NewGameObject("Player")

	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)

	if scene.FindByName("Player") != obj2 {
		t.Error("FindByName failed")
	}
	if scene.FindByName("DoesNotExist") != nil {
		t.Error("FindByName should return nil for non-existent name")
	}
}

func TestSceneRoots(t *testing.T) {
	scene := NewScene("Test")
	a := NewGameObject("A")
	b := NewGameObject("B")
	c := NewGameObject("C")
	scene.AddGameObject(a)
	scene.AddGameObject(b)
	scene.AddGameObject(c)
	a.AddChild(b)

	roots := scene.Roots()
	if len(roots) != 2 || roots[0] != a || roots[1] != c {
		t.Errorf("Expected roots [A C], got %v", roots)
	}
}

func TestSceneUIDMapInitialization(t *testing.T) {
	scene := &Scene{}
	obj := NewGameObject("Test")
	scene.AddGameObject(obj)

	if scene.FindByUID(obj.UID) != obj {
		t.Error("uidMap should be initialized on first AddGameObject")
	}
}

func TestEventWithArgInvokesInOrder(t *testing.T) {
	var ev EventWithArg[int]
	var got []int
	ev.AddListener(func(v int) { got = append(got, v) })
	ev.AddListener(func(v int) { got = append(got, v*10) })
	ev.AddListener(nil)

	ev.Invoke(2)

	if ev.GetListenerCount() != 2 {
		t.Errorf("Expected 2 listeners, got %d", ev.GetListenerCount())
	}
	if len(got) != 2 || got[0] != 2 || got[1] != 20 {
		t.Errorf("Unexpected invocation order: %v", got)
	}
}
