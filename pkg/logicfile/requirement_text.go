package logicfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/orirando/seedgen/pkg/logic"
	"github.com/orirando/seedgen/pkg/requirement"
	"github.com/orirando/seedgen/pkg/seeddata"
)

// parseExprWithGraph parses the thin requirement text format used by logic
// files: comma-separated terms AND together, "OR" between comma-groups
// separates alternatives, matching the source logic language's own
// comma-is-and / OR-is-or shape. This is deliberately not the full logic
// language (region/state declarations, indentation-based grouping,
// difficulty-tier prefixes) — only the boolean-tree slice a connection or
// refill requirement needs.
func parseExprWithGraph(text string, g *logic.Graph) (requirement.Requirement, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return requirement.Free(), nil
	}

	orGroups := strings.Split(text, " OR ")
	children := make([]requirement.Requirement, 0, len(orGroups))
	for _, group := range orGroups {
		req, err := parseAndGroup(group, g)
		if err != nil {
			return requirement.Requirement{}, err
		}
		children = append(children, req)
	}
	if len(children) == 1 {
		return children[0], nil
	}
	return requirement.OrReq(children...), nil
}

func parseAndGroup(group string, g *logic.Graph) (requirement.Requirement, error) {
	terms := strings.Split(group, ",")
	children := make([]requirement.Requirement, 0, len(terms))
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		req, err := parseTerm(term, g)
		if err != nil {
			return requirement.Requirement{}, err
		}
		children = append(children, req)
	}
	switch len(children) {
	case 0:
		return requirement.Free(), nil
	case 1:
		return children[0], nil
	default:
		return requirement.AndReq(children...), nil
	}
}

func parseTerm(term string, g *logic.Graph) (requirement.Requirement, error) {
	key, value, hasValue := strings.Cut(term, "=")
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	switch key {
	case "Free":
		return requirement.Free(), nil
	case "Impossible":
		return requirement.Impossible(), nil
	case "Water":
		return requirement.WaterReq(), nil
	case "NormalGameDifficulty":
		return requirement.NormalGameDifficulty(), nil
	case "Skill":
		return skillTerm(value)
	case "Shard":
		s, ok := seeddata.ParseShard(value)
		if !ok {
			return requirement.Requirement{}, fmt.Errorf("unknown shard %q", value)
		}
		return requirement.ShardReq(s), nil
	case "State":
		idx := g.Index(value)
		if idx < 0 {
			return requirement.Requirement{}, fmt.Errorf("unknown state identifier %q", value)
		}
		return requirement.StateReq(idx), nil
	case "SpiritLight":
		n, err := strconv.Atoi(value)
		if err != nil {
			return requirement.Requirement{}, fmt.Errorf("invalid SpiritLight amount %q: %w", value, err)
		}
		return requirement.SpiritLightReq(n), nil
	case "GorlekOre":
		n, err := strconv.Atoi(value)
		if err != nil {
			return requirement.Requirement{}, fmt.Errorf("invalid GorlekOre amount %q: %w", value, err)
		}
		return requirement.GorlekOreReq(n), nil
	case "Damage":
		amt, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return requirement.Requirement{}, fmt.Errorf("invalid Damage amount %q: %w", value, err)
		}
		return requirement.DamageReq(amt), nil
	case "Danger":
		amt, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return requirement.Requirement{}, fmt.Errorf("invalid Danger amount %q: %w", value, err)
		}
		return requirement.DangerReq(amt), nil
	default:
		if !hasValue {
			// bare identifier, e.g. "Bash" — shorthand for Skill=Bash.
			return skillTerm(key)
		}
		return requirement.Requirement{}, fmt.Errorf("unrecognized requirement term %q", term)
	}
}

func skillTerm(name string) (requirement.Requirement, error) {
	s, ok := seeddata.ParseSkill(name)
	if !ok {
		return requirement.Requirement{}, fmt.Errorf("unknown skill %q", name)
	}
	return requirement.SkillReq(s), nil
}
