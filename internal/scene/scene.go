// Package scene defines the boundary between the merge engine and the host
// scene engine: the node handle, the mutation contract, and the identifier
// service. The merge engine never touches graph topology directly; every
// read and write goes through Engine.
package scene

// --- Enums ---

// Kind classifies nodes in a scene graph.
type Kind string

const (
	// KindContainer is a hierarchy element that owns children and components.
	KindContainer Kind = "container"
	// KindComponent is a behaviour attached to a container.
	KindComponent Kind = "component"
)

// --- Interfaces ---

// Node is an opaque handle to one element of a scene graph. Identity-level
// facts (kind, owning container) live on the handle; topology and all
// mutation go through Engine. Implementations must be comparable so nodes
// can key lookup tables.
type Node interface {
	// Kind reports whether the node is a container or an attached component.
	Kind() Kind

	// Owner returns the container a component is attached to.
	// Containers return nil.
	Owner() Node
}

// Engine is the contract the host scene engine must provide. The merge
// engine assumes DeepCopy duplicates the full subtree of a container, and
// that ComponentsOf returns components in a stable declaration order.
type Engine interface {
	// Valid reports whether the handle refers to a live, non-destroyed node.
	Valid(n Node) bool

	NameOf(n Node) string
	SetName(n Node, name string)

	// ActiveOf and SetActive read and write the node's activation flag.
	ActiveOf(n Node) bool
	SetActive(n Node, active bool)

	// HiddenOf and SetHidden read and write the hidden-for-merging marker.
	// Hidden nodes keep their activation flag but do not take part in the
	// interactive graph.
	HiddenOf(n Node) bool
	SetHidden(n Node, hidden bool)

	// Hierarchy reads. ChildrenOf and ComponentsOf return containers'
	// children and attached components in stable order; both are empty for
	// components.
	ParentOf(n Node) Node
	ChildrenOf(n Node) []Node
	ComponentsOf(n Node) []Node

	// ComponentTypeOf returns the component's type name, the secondary key
	// used to align component lists across sides. Empty for containers.
	ComponentTypeOf(n Node) string

	// SetParent reattaches child under parent. A nil parent makes the child
	// a root. keepWorld preserves the child's world transform across the
	// move.
	SetParent(child, parent Node, keepWorld bool)

	// DeepCopy duplicates a container and its entire subtree, components
	// included. The copy is a root; the engine may mangle its name.
	DeepCopy(n Node) Node

	// Destroy removes the node and its subtree from the graph and
	// invalidates every handle into it.
	Destroy(n Node)
}

// Identifiers assigns each node a stable integer identifier, unique within
// one side of a merge for the lifetime of a session. The same identifier on
// both sides means "same conceptual object".
type Identifiers interface {
	IdentifierOf(n Node) int64
}
