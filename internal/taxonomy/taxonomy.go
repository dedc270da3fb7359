// Package taxonomy provides the static emotion hierarchy and its
// dimensional (valence/arousal/dominance) lookup table.
package taxonomy

// Node is one entry in the emotion tree. ParentID is empty for roots.
// Depth is 0 for roots, 1 for mid-level emotions, 2 for leaves.
type Node struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	ParentID string `json:"parent_id,omitempty"`
	Depth    int    `json:"depth"`
}

// VADVector is a point in valence/arousal/dominance space. Base vectors
// are defined per root category, each component in [-1, 1].
type VADVector struct {
	Valence   float64 `json:"valence"`
	Arousal   float64 `json:"arousal"`
	Dominance float64 `json:"dominance"`
}

// maxHops bounds parent-chain walks. The tree is fixed at 3 levels.
const maxHops = 3

// Taxonomy is an immutable emotion tree. Build once with New or Default
// and pass it to whatever needs hierarchy lookups.
type Taxonomy struct {
	nodes map[string]Node
	roots []Node
}

// New builds a taxonomy from a node list. Later duplicates of an id win,
// matching last-write semantics of the underlying map.
func New(nodes []Node) *Taxonomy {
	t := &Taxonomy{nodes: make(map[string]Node, len(nodes))}
	for _, n := range nodes {
		t.nodes[n.ID] = n
	}
	// Root order follows input order for stable iteration.
	seen := make(map[string]bool)
	for _, n := range nodes {
		if n.ParentID == "" && !seen[n.ID] {
			t.roots = append(t.roots, t.nodes[n.ID])
			seen[n.ID] = true
		}
	}
	return t
}

// Node returns the node for an id.
func (t *Taxonomy) Node(id string) (Node, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// Roots returns the root categories in definition order.
func (t *Taxonomy) Roots() []Node {
	out := make([]Node, len(t.roots))
	copy(out, t.roots)
	return out
}

// Path returns the nodes from root to id inclusive. Unknown ids return
// nil; callers are expected to skip records whose path is empty.
func (t *Taxonomy) Path(id string) []Node {
	n, ok := t.nodes[id]
	if !ok {
		return nil
	}
	rev := []Node{n}
	for hops := 0; n.ParentID != "" && hops < maxHops; hops++ {
		parent, ok := t.nodes[n.ParentID]
		if !ok {
			// Dangling parent reference: treat the chain as unresolvable.
			return nil
		}
		rev = append(rev, parent)
		n = parent
	}
	path := make([]Node, len(rev))
	for i, node := range rev {
		path[len(rev)-1-i] = node
	}
	return path
}

// Depth returns the hierarchy depth of id (0 for roots), or -1 for
// unknown ids.
func (t *Taxonomy) Depth(id string) int {
	return len(t.Path(id)) - 1
}

// Root resolves the root category node above id.
func (t *Taxonomy) Root(id string) (Node, bool) {
	path := t.Path(id)
	if len(path) == 0 {
		return Node{}, false
	}
	return path[0], true
}

// VAD returns the base dimensional vector for a root category id.
// Non-root or unknown ids return the zero vector.
func (t *Taxonomy) VAD(rootID string) (VADVector, bool) {
	v, ok := rootVAD[rootID]
	return v, ok
}
