package logic

import "fmt"

// Graph is the immutable world graph: every Node (anchor, pickup, or
// state) addressed by index, plus a lookup from identifier to index.
type Graph struct {
	Nodes      []Node
	byIdentifier map[string]int
}

// NewGraph returns an empty graph ready for AddNode calls.
func NewGraph() *Graph {
	return &Graph{byIdentifier: make(map[string]int)}
}

// AddNode appends n to the graph, assigning it the next index. It returns
// an error if n's identifier is empty or already present.
func (g *Graph) AddNode(n Node) (int, error) {
	if n.Identifier == "" {
		return 0, fmt.Errorf("logic: node identifier must not be empty")
	}
	if _, exists := g.byIdentifier[n.Identifier]; exists {
		return 0, fmt.Errorf("logic: node with identifier %q already exists", n.Identifier)
	}
	n.Index = len(g.Nodes)
	g.Nodes = append(g.Nodes, n)
	g.byIdentifier[n.Identifier] = n.Index
	return n.Index, nil
}

// Node looks up a node by identifier.
func (g *Graph) Node(identifier string) (Node, bool) {
	idx, ok := g.byIdentifier[identifier]
	if !ok {
		return Node{}, false
	}
	return g.Nodes[idx], true
}

// Index returns the node index for an identifier, or -1 if not found.
func (g *Graph) Index(identifier string) int {
	idx, ok := g.byIdentifier[identifier]
	if !ok {
		return -1
	}
	return idx
}

// AddConnection appends a requirement-guarded edge from the anchor node at
// fromIndex to toIndex. It returns an error if fromIndex is out of range or
// does not name an Anchor, since only anchors carry outgoing connections.
func (g *Graph) AddConnection(fromIndex int, c Connection) error {
	if fromIndex < 0 || fromIndex >= len(g.Nodes) {
		return fmt.Errorf("logic: add connection: index %d out of range", fromIndex)
	}
	if g.Nodes[fromIndex].Kind != KindAnchor {
		return fmt.Errorf("logic: add connection: node %q is not an anchor", g.Nodes[fromIndex].Identifier)
	}
	if c.Target < 0 || c.Target >= len(g.Nodes) {
		return fmt.Errorf("logic: add connection: target %d out of range", c.Target)
	}
	g.Nodes[fromIndex].Connections = append(g.Nodes[fromIndex].Connections, c)
	return nil
}

// AddRefill appends a refill entry to the anchor node at index.
func (g *Graph) AddRefill(index int, r Refill) error {
	if index < 0 || index >= len(g.Nodes) {
		return fmt.Errorf("logic: add refill: index %d out of range", index)
	}
	if g.Nodes[index].Kind != KindAnchor {
		return fmt.Errorf("logic: add refill: node %q is not an anchor", g.Nodes[index].Identifier)
	}
	g.Nodes[index].Refills = append(g.Nodes[index].Refills, r)
	return nil
}

// SpawnCandidates returns the indices of every anchor flagged CanSpawn,
// in graph order, for spawn-slot selection by the scheduler.
func (g *Graph) SpawnCandidates() []int {
	var out []int
	for _, n := range g.Nodes {
		if n.Kind == KindAnchor && n.CanSpawn {
			out = append(out, n.Index)
		}
	}
	return out
}

// PickupIndices returns the indices of every Pickup node, in graph order.
func (g *Graph) PickupIndices() []int {
	var out []int
	for _, n := range g.Nodes {
		if n.Kind == KindPickup {
			out = append(out, n.Index)
		}
	}
	return out
}

// Len reports the number of nodes in the graph.
func (g *Graph) Len() int { return len(g.Nodes) }
