package scene

import (
	"testing"
)

func buildEnemy(m *MemScene) (enemy, weapon, transform Node) {
	enemy = m.NewContainer("Enemy", 10)
	transform = m.AddComponent(enemy, "Transform", 11)
	weapon = m.NewContainer("Weapon", 12)
	m.SetParent(weapon, enemy, true)
	return enemy, weapon, transform
}

func TestNewContainer_Defaults(t *testing.T) {
	m := NewMemScene()
	n := m.NewContainer("Enemy", 10)

	if n.Kind() != KindContainer {
		t.Fatalf("Kind = %v, want %v", n.Kind(), KindContainer)
	}
	if n.Owner() != nil {
		t.Errorf("Owner = %v, want nil", n.Owner())
	}
	if !m.ActiveOf(n) {
		t.Error("new containers start active")
	}
	if m.HiddenOf(n) {
		t.Error("new containers start unhidden")
	}
	if m.IdentifierOf(n) != 10 {
		t.Errorf("IdentifierOf = %d, want 10", m.IdentifierOf(n))
	}
}

func TestAddComponent(t *testing.T) {
	m := NewMemScene()
	enemy, _, transform := buildEnemy(m)

	if transform.Kind() != KindComponent {
		t.Fatalf("Kind = %v, want %v", transform.Kind(), KindComponent)
	}
	if transform.Owner() != enemy {
		t.Errorf("Owner = %v, want the enemy container", transform.Owner())
	}
	if got := m.ComponentTypeOf(transform); got != "Transform" {
		t.Errorf("ComponentTypeOf = %q, want %q", got, "Transform")
	}

	comps := m.ComponentsOf(enemy)
	if len(comps) != 1 || comps[0] != transform {
		t.Errorf("ComponentsOf = %v, want [transform]", comps)
	}
}

func TestAddComponent_InvalidTarget(t *testing.T) {
	m := NewMemScene()
	enemy, _, transform := buildEnemy(m)

	if got := m.AddComponent(transform, "Collider", 20); got != nil {
		t.Errorf("AddComponent on a component = %v, want nil", got)
	}
	m.Destroy(enemy)
	if got := m.AddComponent(enemy, "Collider", 21); got != nil {
		t.Errorf("AddComponent on a destroyed node = %v, want nil", got)
	}
}

func TestSetParent(t *testing.T) {
	m := NewMemScene()
	a := m.NewContainer("a", 1)
	b := m.NewContainer("b", 2)

	m.SetParent(b, a, true)
	if m.ParentOf(b) != a {
		t.Fatal("b should be a child of a")
	}
	if len(m.ChildrenOf(a)) != 1 {
		t.Fatalf("ChildrenOf(a) = %d entries, want 1", len(m.ChildrenOf(a)))
	}

	// Reparenting to nil makes it a root again.
	m.SetParent(b, nil, true)
	if m.ParentOf(b) != nil {
		t.Error("b should be a root")
	}
	if len(m.ChildrenOf(a)) != 0 {
		t.Error("a should have no children left")
	}

	roots := m.Roots()
	if len(roots) != 2 {
		t.Errorf("Roots = %d entries, want 2", len(roots))
	}
}

func TestDeepCopy(t *testing.T) {
	m := NewMemScene()
	enemy, weapon, _ := buildEnemy(m)
	m.SetActive(enemy, false)

	dup := m.DeepCopy(enemy)
	if dup == nil {
		t.Fatal("DeepCopy returned nil")
	}

	if got := m.NameOf(dup); got != "Enemy (Copy)" {
		t.Errorf("copy name = %q, want mangled %q", got, "Enemy (Copy)")
	}
	if m.IdentifierOf(dup) != m.IdentifierOf(enemy) {
		t.Error("copies share their original's identifier")
	}
	if m.ActiveOf(dup) {
		t.Error("copies keep the original's activation flag")
	}
	if m.ParentOf(dup) != nil {
		t.Error("copies start as roots")
	}

	// The whole subtree is duplicated: components and children.
	if len(m.ComponentsOf(dup)) != 1 {
		t.Errorf("copy has %d components, want 1", len(m.ComponentsOf(dup)))
	}
	children := m.ChildrenOf(dup)
	if len(children) != 1 {
		t.Fatalf("copy has %d children, want 1", len(children))
	}
	if children[0] == weapon {
		t.Error("copied child must be a distinct node")
	}
	if m.IdentifierOf(children[0]) != m.IdentifierOf(weapon) {
		t.Error("copied child shares the original child's identifier")
	}
}

func TestDeepCopy_InvalidInput(t *testing.T) {
	m := NewMemScene()
	enemy, _, transform := buildEnemy(m)

	if got := m.DeepCopy(transform); got != nil {
		t.Error("components do not deep-copy")
	}
	if got := m.DeepCopy(nil); got != nil {
		t.Error("nil does not deep-copy")
	}
	m.Destroy(enemy)
	if got := m.DeepCopy(enemy); got != nil {
		t.Error("destroyed nodes do not deep-copy")
	}
}

func TestDestroy_InvalidatesSubtree(t *testing.T) {
	m := NewMemScene()
	enemy, weapon, transform := buildEnemy(m)

	m.Destroy(enemy)

	for _, n := range []Node{enemy, weapon, transform} {
		if m.Valid(n) {
			t.Errorf("%v should be invalid after destroying the root", n)
		}
	}
	if len(m.Roots()) != 0 {
		t.Error("destroyed root should leave the root list")
	}
}

func TestDestroy_Component(t *testing.T) {
	m := NewMemScene()
	enemy, _, transform := buildEnemy(m)

	m.Destroy(transform)

	if m.Valid(transform) {
		t.Error("destroyed component should be invalid")
	}
	if !m.Valid(enemy) {
		t.Error("owner survives component destruction")
	}
	if len(m.ComponentsOf(enemy)) != 0 {
		t.Error("component should leave the owner's list")
	}
}

func TestEngineOps_InvalidHandles(t *testing.T) {
	m := NewMemScene()

	// All reads degrade to zero values; all writes are no-ops.
	if m.Valid(nil) || m.NameOf(nil) != "" || m.ActiveOf(nil) || m.HiddenOf(nil) {
		t.Error("nil reads should yield zero values")
	}
	if m.ParentOf(nil) != nil || m.ChildrenOf(nil) != nil || m.ComponentsOf(nil) != nil {
		t.Error("nil hierarchy reads should yield nil")
	}
	m.SetName(nil, "x")
	m.SetActive(nil, true)
	m.SetHidden(nil, true)
	m.SetParent(nil, nil, true)
	m.Destroy(nil)
}
