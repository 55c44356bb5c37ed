package config

import (
	"fmt"
	"os"

	"github.com/andriiyaremenko/flow"
	"gopkg.in/yaml.v3"
)

// Plan is the root structure of a flow definition.
type Plan struct {
	Name    string `yaml:"name"`
	Steps   []Step `yaml:"steps"`
	Finally Names  `yaml:"finally"`
}

// Step appends stages to the flow. Exactly one field must be set.
type Step struct {
	Then       Names      `yaml:"then"`
	Sequential *EntryStep `yaml:"sequential"`
	Parallel   *EntryStep `yaml:"parallel"`
}

// EntryStep runs entry units over items.
// Sequential uses Units, Parallel uses Unit.
type EntryStep struct {
	Items Items  `yaml:"items"`
	Units Names  `yaml:"units"`
	Unit  string `yaml:"unit"`
}

// Names is a list of unit names that can also be written as a single name.
type Names []string

// UnmarshalYAML allows a single string in place of a list.
func (n *Names) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var name string
		if err := value.Decode(&name); err != nil {
			return err
		}

		*n = Names{name}

		return nil
	}

	var names []string
	if err := value.Decode(&names); err != nil {
		return err
	}

	*n = Names(names)

	return nil
}

// Items is a flow.Collection decoded from a YAML sequence or mapping.
type Items struct {
	collection flow.Collection
}

// UnmarshalYAML keeps the document order of mapping keys.
func (items *Items) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		values := make([]any, len(value.Content))
		for i, node := range value.Content {
			if err := node.Decode(&values[i]); err != nil {
				return fmt.Errorf("items[%d]: %w", i, err)
			}
		}

		items.collection = flow.Sequence[any](values)

		return nil
	case yaml.MappingNode:
		mapping := flow.NewMapping[string, any]()
		for i := 0; i+1 < len(value.Content); i += 2 {
			var key string
			if err := value.Content[i].Decode(&key); err != nil {
				return fmt.Errorf("items key at line %d: %w", value.Content[i].Line, err)
			}

			var v any
			if err := value.Content[i+1].Decode(&v); err != nil {
				return fmt.Errorf("items[%q]: %w", key, err)
			}

			mapping.Set(key, v)
		}

		items.collection = mapping

		return nil
	default:
		return fmt.Errorf("items at line %d: want sequence or mapping", value.Line)
	}
}

// Collection returns the decoded items, never nil.
func (items Items) Collection() flow.Collection {
	if items.collection == nil {
		return flow.Sequence[any](nil)
	}

	return items.collection
}

// ParsePlan parses YAML bytes into a Plan.
func ParsePlan(data []byte) (*Plan, error) {
	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, err
	}

	return &plan, nil
}

// LoadPlan reads and parses the plan stored at path.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}

	plan, err := ParsePlan(data)
	if err != nil {
		return nil, fmt.Errorf("load plan %s: %w", path, err)
	}

	return plan, nil
}
