// Package logicfile loads a world's logic graph and universe settings from
// their YAML serialization. It is not a logic-language compiler — it
// decodes a direct structural mapping of logic.Graph/settings.UniverseSettings,
// the way pkg/themes decodes a ThemePack: fields in, struct out, validate,
// done.
package logicfile

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/orirando/seedgen/pkg/logic"
	"github.com/orirando/seedgen/pkg/settings"
)

// Document is the on-disk shape of a single world's logic file: its nodes
// and connections in declaration order, plus the universe settings a
// generation run needs to interpret them.
type Document struct {
	Nodes    []NodeDoc           `yaml:"nodes"`
	Settings *settings.UniverseSettings `yaml:"settings,omitempty"`
}

// NodeDoc is the YAML shape of one logic.Node plus its outgoing connections,
// keeping the file anchor-centric: a node lists the edges it owns.
type NodeDoc struct {
	Kind           string          `yaml:"kind"`
	Identifier     string          `yaml:"identifier"`
	Zone           string          `yaml:"zone,omitempty"`
	UberIdentifier string          `yaml:"uber_identifier,omitempty"`
	Position       *PositionDoc    `yaml:"position,omitempty"`
	CanSpawn       bool            `yaml:"can_spawn,omitempty"`
	Connections    []ConnectionDoc `yaml:"connections,omitempty"`
	Refills        []RefillDoc     `yaml:"refills,omitempty"`
}

// PositionDoc mirrors logic.Position.
type PositionDoc struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// ConnectionDoc mirrors logic.Connection; Requirement is a requirement
// expression in the thin textual form parseExprWithGraph accepts.
type ConnectionDoc struct {
	Target      string `yaml:"target"`
	Requirement string `yaml:"requirement,omitempty"`
}

// RefillDoc mirrors logic.Refill.
type RefillDoc struct {
	Kind        string  `yaml:"kind"`
	Amount      float64 `yaml:"amount,omitempty"`
	Requirement string  `yaml:"requirement,omitempty"`
}

// Load reads and decodes a logic file from path into a Graph and, if the
// document carries one, its UniverseSettings.
func Load(path string) (*logic.Graph, *settings.UniverseSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("logicfile: reading %s: %w", path, err)
	}
	return Decode(data)
}

// LoadDirectory loads every *.yml/*.yaml file in dir as a separate world
// graph, in directory order, returning one graph per file.
func LoadDirectory(dir string) ([]*logic.Graph, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("logicfile: reading directory %s: %w", dir, err)
	}
	var graphs []*logic.Graph
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".yml" && ext != ".yaml" {
			continue
		}
		g, _, err := Load(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		graphs = append(graphs, g)
	}
	return graphs, nil
}

// Decode parses raw YAML bytes into a Graph and optional UniverseSettings.
func Decode(data []byte) (*logic.Graph, *settings.UniverseSettings, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("logicfile: parsing YAML: %w", err)
	}

	g := logic.NewGraph()

	// First pass: create every node so forward references in Connections
	// resolve regardless of declaration order.
	for _, nd := range doc.Nodes {
		node, err := nd.toNode()
		if err != nil {
			return nil, nil, err
		}
		if _, err := g.AddNode(node); err != nil {
			return nil, nil, err
		}
	}

	// Second pass: wire connections and refills now that every identifier
	// is resolvable.
	for _, nd := range doc.Nodes {
		fromIdx := g.Index(nd.Identifier)
		for _, cd := range nd.Connections {
			targetIdx := g.Index(cd.Target)
			if targetIdx < 0 {
				return nil, nil, fmt.Errorf("logicfile: node %q connects to unknown target %q", nd.Identifier, cd.Target)
			}
			req, err := parseExprWithGraph(cd.Requirement, g)
			if err != nil {
				return nil, nil, fmt.Errorf("logicfile: node %q: %w", nd.Identifier, err)
			}
			if err := g.AddConnection(fromIdx, logic.Connection{Target: targetIdx, Requirement: req}); err != nil {
				return nil, nil, err
			}
		}
		for _, rd := range nd.Refills {
			refill, err := rd.toRefill(g)
			if err != nil {
				return nil, nil, fmt.Errorf("logicfile: node %q: %w", nd.Identifier, err)
			}
			if err := g.AddRefill(fromIdx, refill); err != nil {
				return nil, nil, err
			}
		}
	}

	return g, doc.Settings, nil
}

func (nd NodeDoc) toNode() (logic.Node, error) {
	var pos *logic.Position
	if nd.Position != nil {
		pos = &logic.Position{X: nd.Position.X, Y: nd.Position.Y}
	}

	switch nd.Kind {
	case "anchor", "":
		n := logic.NewAnchor(nd.Identifier)
		n.Position = pos
		n.CanSpawn = nd.CanSpawn
		return n, nil
	case "pickup":
		n := logic.NewPickup(nd.Identifier, nd.Zone, nd.UberIdentifier)
		n.Position = pos
		return n, nil
	case "state":
		return logic.NewState(nd.Identifier, nd.UberIdentifier), nil
	case "logical_state":
		return logic.NewLogicalState(nd.Identifier), nil
	default:
		return logic.Node{}, fmt.Errorf("logicfile: node %q has unknown kind %q", nd.Identifier, nd.Kind)
	}
}

func (rd RefillDoc) toRefill(g *logic.Graph) (logic.Refill, error) {
	req, err := parseExprWithGraph(rd.Requirement, g)
	if err != nil {
		return logic.Refill{}, err
	}
	switch rd.Kind {
	case "full":
		return logic.Refill{Kind: logic.RefillFull, Requirement: req}, nil
	case "checkpoint":
		return logic.Refill{Kind: logic.RefillCheckpoint, Requirement: req}, nil
	case "health":
		return logic.Refill{Kind: logic.RefillHealth, Amount: rd.Amount, Requirement: req}, nil
	case "energy":
		return logic.Refill{Kind: logic.RefillEnergy, Amount: rd.Amount, Requirement: req}, nil
	default:
		return logic.Refill{}, fmt.Errorf("unknown refill kind %q", rd.Kind)
	}
}
