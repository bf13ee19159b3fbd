// Package logic implements the World graph: nodes (anchors, pickups,
// states) and the directed, requirement-guarded connections between them.
// The graph is immutable once built and cyclic, so nodes live in a single
// slice addressed by index rather than by pointer (see design notes on
// avoiding ownership graphs).
package logic

import "github.com/orirando/seedgen/pkg/requirement"

// Kind discriminates the closed set of node variants.
type Kind int

const (
	KindAnchor Kind = iota
	KindPickup
	KindState
	KindLogicalState
)

// Position is an optional in-game coordinate, carried through to the
// spoiler for map display; it has no bearing on reachability.
type Position struct {
	X, Y float32
}

// RefillKind discriminates the four refill shapes an anchor may declare.
type RefillKind int

const (
	RefillFull RefillKind = iota
	RefillCheckpoint
	RefillHealth
	RefillEnergy
)

// Refill describes one entry in an anchor's refill list: if Requirement is
// met from the current best-orbs, the refill is applied.
type Refill struct {
	Kind        RefillKind
	Amount      float64 // meaningful for RefillHealth / RefillEnergy
	Requirement requirement.Requirement
}

// Connection is a directed, requirement-guarded edge to another node,
// identified by index into the owning Graph's Nodes slice.
type Connection struct {
	Target      int
	Requirement requirement.Requirement
}

// Node is the closed sum type described in spec §3. Exactly the fields
// relevant to Kind are meaningful.
type Node struct {
	Kind       Kind
	Index      int
	Identifier string

	// Anchor fields.
	Position            *Position
	CanSpawn            bool
	TeleportRestriction requirement.Requirement
	Refills             []Refill
	Connections         []Connection

	// Pickup / State / LogicalState fields.
	Zone           string
	UberIdentifier string
	Value          *int
}

// NewAnchor returns an Anchor node with no refills or connections yet.
func NewAnchor(identifier string) Node {
	return Node{Kind: KindAnchor, Identifier: identifier, TeleportRestriction: requirement.Impossible()}
}

// NewPickup returns a Pickup node (a placement site).
func NewPickup(identifier, zone, uberIdentifier string) Node {
	return Node{Kind: KindPickup, Identifier: identifier, Zone: zone, UberIdentifier: uberIdentifier}
}

// NewState returns a State node backed by an uber-state.
func NewState(identifier, uberIdentifier string) Node {
	return Node{Kind: KindState, Identifier: identifier, UberIdentifier: uberIdentifier}
}

// NewLogicalState returns a State node with no uber-state backing.
func NewLogicalState(identifier string) Node {
	return Node{Kind: KindLogicalState, Identifier: identifier}
}

// IsPlacementSite reports whether the node is a Pickup (the only kind that
// receives an item).
func (n Node) IsPlacementSite() bool { return n.Kind == KindPickup }

// ActivatesState reports whether reaching the node activates a logical
// state (State and LogicalState both do; Anchor and Pickup do not).
func (n Node) ActivatesState() bool {
	return n.Kind == KindState || n.Kind == KindLogicalState
}
