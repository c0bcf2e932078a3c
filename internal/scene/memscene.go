package scene

import (
	"sync"
)

// Compile-time assertions: *MemScene satisfies both collaborator contracts.
var (
	_ Engine      = (*MemScene)(nil)
	_ Identifiers = (*MemScene)(nil)
)

// copySuffix is appended to the name of a deep-copied root, mirroring how
// real engines mangle clone names. The materializer restores the original.
const copySuffix = " (Copy)"

// MemScene is an in-memory scene engine backed by Go maps and slices.
// Thread-safe via sync.RWMutex. It serves tests and worked examples as a
// stand-in for a real host engine.
type MemScene struct {
	mu    sync.RWMutex
	roots []*memNode
}

// memNode is the concrete Node handle for MemScene. Handles stay valid as
// map keys after Destroy, but every Engine operation treats destroyed
// handles as absent.
type memNode struct {
	kind       Kind
	owner      *memNode // owning container, components only
	id         int64
	name       string
	ctype      string // component type, components only
	active     bool
	hidden     bool
	parent     *memNode
	children   []*memNode
	components []*memNode
	destroyed  bool
}

// Kind reports the node kind.
func (n *memNode) Kind() Kind { return n.kind }

// Owner returns the owning container of a component, or nil for containers.
func (n *memNode) Owner() Node {
	if n.owner == nil {
		return nil
	}
	return n.owner
}

// NewMemScene returns an empty scene ready for use.
func NewMemScene() *MemScene {
	return &MemScene{}
}

// NewContainer creates a root container with the given name and identifier.
func (m *MemScene) NewContainer(name string, id int64) Node {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := &memNode{kind: KindContainer, id: id, name: name, active: true}
	m.roots = append(m.roots, n)
	return n
}

// AddComponent attaches a component of the given type to a container and
// returns its handle. Returns nil if the target is not a live container.
func (m *MemScene) AddComponent(container Node, ctype string, id int64) Node {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := m.live(container)
	if c == nil || c.kind != KindContainer {
		return nil
	}
	n := &memNode{kind: KindComponent, owner: c, id: id, name: ctype, ctype: ctype, active: true}
	c.components = append(c.components, n)
	return n
}

// Roots returns the current root containers in creation order.
func (m *MemScene) Roots() []Node {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Node, 0, len(m.roots))
	for _, r := range m.roots {
		out = append(out, r)
	}
	return out
}

// live unwraps a handle, returning nil for foreign, nil, or destroyed nodes.
func (m *MemScene) live(n Node) *memNode {
	mn, ok := n.(*memNode)
	if !ok || mn == nil || mn.destroyed {
		return nil
	}
	return mn
}

// Valid reports whether the handle refers to a live node of this scene.
func (m *MemScene) Valid(n Node) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.live(n) != nil
}

// NameOf returns the node's name, or "" for invalid handles.
func (m *MemScene) NameOf(n Node) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if mn := m.live(n); mn != nil {
		return mn.name
	}
	return ""
}

// SetName renames the node. No-op for invalid handles.
func (m *MemScene) SetName(n Node, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if mn := m.live(n); mn != nil {
		mn.name = name
	}
}

// ActiveOf returns the node's activation flag.
func (m *MemScene) ActiveOf(n Node) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if mn := m.live(n); mn != nil {
		return mn.active
	}
	return false
}

// SetActive sets the node's activation flag. No-op for invalid handles.
func (m *MemScene) SetActive(n Node, active bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if mn := m.live(n); mn != nil {
		mn.active = active
	}
}

// HiddenOf returns the hidden-for-merging marker.
func (m *MemScene) HiddenOf(n Node) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if mn := m.live(n); mn != nil {
		return mn.hidden
	}
	return false
}

// SetHidden sets the hidden-for-merging marker. No-op for invalid handles.
func (m *MemScene) SetHidden(n Node, hidden bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if mn := m.live(n); mn != nil {
		mn.hidden = hidden
	}
}

// ParentOf returns the node's parent container, or nil for roots,
// components, and invalid handles.
func (m *MemScene) ParentOf(n Node) Node {
	m.mu.RLock()
	defer m.mu.RUnlock()
	mn := m.live(n)
	if mn == nil || mn.parent == nil {
		return nil
	}
	return mn.parent
}

// ChildrenOf returns a copy of the container's child list in order.
func (m *MemScene) ChildrenOf(n Node) []Node {
	m.mu.RLock()
	defer m.mu.RUnlock()
	mn := m.live(n)
	if mn == nil {
		return nil
	}
	out := make([]Node, 0, len(mn.children))
	for _, c := range mn.children {
		out = append(out, c)
	}
	return out
}

// ComponentsOf returns a copy of the container's component list in
// declaration order.
func (m *MemScene) ComponentsOf(n Node) []Node {
	m.mu.RLock()
	defer m.mu.RUnlock()
	mn := m.live(n)
	if mn == nil {
		return nil
	}
	out := make([]Node, 0, len(mn.components))
	for _, c := range mn.components {
		out = append(out, c)
	}
	return out
}

// ComponentTypeOf returns a component's type name, "" for containers.
func (m *MemScene) ComponentTypeOf(n Node) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if mn := m.live(n); mn != nil {
		return mn.ctype
	}
	return ""
}

// SetParent moves child under parent; a nil parent makes it a root.
// MemScene carries no transforms, so keepWorld is accepted and ignored.
func (m *MemScene) SetParent(child, parent Node, keepWorld bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := m.live(child)
	if c == nil || c.kind != KindContainer {
		return
	}
	var p *memNode
	if parent != nil {
		p = m.live(parent)
		if p == nil || p.kind != KindContainer {
			return
		}
	}
	m.detach(c)
	if p == nil {
		m.roots = append(m.roots, c)
		return
	}
	c.parent = p
	p.children = append(p.children, c)
}

// detach removes the node from its parent's child list or the root list.
func (m *MemScene) detach(n *memNode) {
	if n.parent != nil {
		n.parent.children = removeNode(n.parent.children, n)
		n.parent = nil
		return
	}
	m.roots = removeNode(m.roots, n)
}

func removeNode(list []*memNode, n *memNode) []*memNode {
	for i, e := range list {
		if e == n {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// DeepCopy duplicates a container and its full subtree. Identifiers are
// preserved (a copy shares its original's serialized origin), the copied
// root's name is mangled with copySuffix, and the copy becomes a root.
func (m *MemScene) DeepCopy(n Node) Node {
	m.mu.Lock()
	defer m.mu.Unlock()
	mn := m.live(n)
	if mn == nil || mn.kind != KindContainer {
		return nil
	}
	dup := cloneTree(mn)
	dup.name += copySuffix
	m.roots = append(m.roots, dup)
	return dup
}

// cloneTree copies one container, its components, and all descendants.
func cloneTree(n *memNode) *memNode {
	dup := &memNode{
		kind:   KindContainer,
		id:     n.id,
		name:   n.name,
		active: n.active,
		hidden: n.hidden,
	}
	for _, c := range n.components {
		dup.components = append(dup.components, &memNode{
			kind: KindComponent, owner: dup, id: c.id,
			name: c.name, ctype: c.ctype, active: c.active, hidden: c.hidden,
		})
	}
	for _, child := range n.children {
		dc := cloneTree(child)
		dc.parent = dup
		dup.children = append(dup.children, dc)
	}
	return dup
}

// Destroy removes the node from the graph and invalidates its whole
// subtree. Destroying a component detaches it from its owner.
func (m *MemScene) Destroy(n Node) {
	m.mu.Lock()
	defer m.mu.Unlock()
	mn := m.live(n)
	if mn == nil {
		return
	}
	if mn.kind == KindComponent {
		mn.owner.components = removeNode(mn.owner.components, mn)
		mn.destroyed = true
		return
	}
	m.detach(mn)
	markDestroyed(mn)
}

func markDestroyed(n *memNode) {
	n.destroyed = true
	for _, c := range n.components {
		c.destroyed = true
	}
	for _, child := range n.children {
		markDestroyed(child)
	}
}

// IdentifierOf returns the node's stable identifier, 0 for invalid handles.
func (m *MemScene) IdentifierOf(n Node) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if mn, ok := n.(*memNode); ok && mn != nil {
		return mn.id
	}
	return 0
}
