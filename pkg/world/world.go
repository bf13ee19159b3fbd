package world

import (
	"github.com/orirando/seedgen/pkg/inventory"
	"github.com/orirando/seedgen/pkg/logic"
	"github.com/orirando/seedgen/pkg/requirement"
	"github.com/orirando/seedgen/pkg/settings"
)

// World is one world's mutable, per-attempt state: the player's growing
// inventory, the set of activated logical states, and the uber-state
// mirror, alongside a reference to its immutable graph and settings.
// Graph and Settings never change after construction; Inventory, States,
// and Uber grow monotonically within an attempt and are rebuilt from
// scratch on retry.
type World struct {
	Graph    *logic.Graph
	Settings *settings.WorldSettings
	Inventory *inventory.Inventory
	States   requirement.StateSet
	Uber     *UberStates
}

// New returns a fresh World for the given immutable graph and settings,
// with a spawn inventory, no activated states, and an empty uber-state
// mirror.
func New(graph *logic.Graph, ws *settings.WorldSettings) *World {
	return &World{
		Graph:     graph,
		Settings:  ws,
		Inventory: inventory.Spawn(),
		States:    requirement.NewStateSet(),
		Uber:      NewUberStates(),
	}
}

// Player returns the requirement.Player view over this world's current
// inventory and settings, for passing to requirement.IsMet.
func (w *World) Player() *requirement.Player {
	return requirement.NewPlayer(w.Inventory, w.Settings)
}

// ActivateState marks a logical-state index as satisfied, reflecting a
// State or LogicalState node having been reached.
func (w *World) ActivateState(idx int) {
	w.States.Activate(idx)
}

// Clone deep-copies the mutable state, leaving Graph and Settings shared
// (they are immutable and safe to alias).
func (w *World) Clone() *World {
	return &World{
		Graph:     w.Graph,
		Settings:  w.Settings,
		Inventory: w.Inventory.Clone(),
		States:    w.States.Clone(),
		Uber:      w.Uber.Clone(),
	}
}
