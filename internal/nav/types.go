package nav

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultVersion is the fallback version key.
const DefaultVersion = "/"

// Item is a node of a navigation tree.
//
// An item with children is a section; Base is prepended to every descendant
// link and Collapsed controls the initial fold state (nil means the section
// cannot be folded). An item without children is a leaf and must carry a Link.
// A section without a Link is a plain heading.
type Item struct {
	Text      string `yaml:"text,omitempty" json:"text,omitempty"`
	Link      string `yaml:"link,omitempty" json:"link,omitempty"`
	Base      string `yaml:"base,omitempty" json:"base,omitempty"`
	Collapsed *bool  `yaml:"collapsed,omitempty" json:"collapsed,omitempty"`
	Items     []Item `yaml:"items,omitempty" json:"items,omitempty"`
}

// IsSection reports whether the item groups children.
func (it Item) IsSection() bool { return len(it.Items) > 0 }

// Version is one tree of a VersionedNav.
type Version struct {
	Key      string
	Sections []Item
}

// VersionedNav maps version-prefix keys to section lists. Order is the
// authoring order and is preserved through YAML round trips.
type VersionedNav []Version

// Lookup returns the sections stored under key.
func (v VersionedNav) Lookup(key string) ([]Item, bool) {
	for _, ver := range v {
		if ver.Key == key {
			return ver.Sections, true
		}
	}
	return nil, false
}

// Keys returns the version keys in authoring order.
func (v VersionedNav) Keys() []string {
	keys := make([]string, 0, len(v))
	for _, ver := range v {
		keys = append(keys, ver.Key)
	}
	return keys
}

// UnmarshalYAML accepts either a mapping of version key to sections or a
// plain sequence of sections, which is stored under DefaultVersion.
func (v *VersionedNav) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var sections []Item
		if err := node.Decode(&sections); err != nil {
			return err
		}
		*v = VersionedNav{{Key: DefaultVersion, Sections: sections}}
		return nil
	case yaml.MappingNode:
		out := make(VersionedNav, 0, len(node.Content)/2)
		seen := make(map[string]bool, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valNode := node.Content[i], node.Content[i+1]
			var key string
			if err := keyNode.Decode(&key); err != nil {
				return fmt.Errorf("line %d: version key: %w", keyNode.Line, err)
			}
			if seen[key] {
				return fmt.Errorf("line %d: duplicate version key %q", keyNode.Line, key)
			}
			seen[key] = true
			var sections []Item
			if err := valNode.Decode(&sections); err != nil {
				return fmt.Errorf("line %d: version %q: %w", valNode.Line, key, err)
			}
			out = append(out, Version{Key: key, Sections: sections})
		}
		*v = out
		return nil
	case 0:
		*v = nil
		return nil
	default:
		return fmt.Errorf("line %d: sidebar must be a mapping or a sequence", node.Line)
	}
}

// MarshalYAML emits an ordered mapping.
func (v VersionedNav) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, ver := range v {
		var val yaml.Node
		if err := val.Encode(ver.Sections); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: ver.Key},
			&val)
	}
	return node, nil
}
