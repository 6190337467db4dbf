package axis

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type contributionWire struct {
	Positive float64 `json:"positive" yaml:"positive"`
	Negative float64 `json:"negative" yaml:"negative"`
}

func (c Contribution) MarshalJSON() ([]byte, error) {
	return json.Marshal(contributionWire{Positive: c.positive, Negative: c.negative})
}

func (c *Contribution) UnmarshalJSON(data []byte) error {
	var w contributionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	v, err := NewContribution(w.Positive, w.Negative)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c Contribution) MarshalYAML() (any, error) {
	return contributionWire{Positive: c.positive, Negative: c.negative}, nil
}

// UnmarshalYAML accepts {positive, negative} or a single number for a
// symmetric limit.
func (c *Contribution) UnmarshalYAML(node *yaml.Node) error {
	var w contributionWire
	switch node.Kind {
	case yaml.ScalarNode:
		var m float64
		if err := node.Decode(&m); err != nil {
			return err
		}
		w = contributionWire{Positive: m, Negative: m}
	case yaml.MappingNode:
		if err := node.Decode(&w); err != nil {
			return err
		}
	default:
		return fmt.Errorf("line %d: contribution must be a number or a mapping", node.Line)
	}
	v, err := NewContribution(w.Positive, w.Negative)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = v
	return nil
}
