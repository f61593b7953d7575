// Package apitypes is the registry of documented framework types that the
// site uses to annotate identifiers in code samples with hover cards.
package apitypes

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

// Kind tells classes from top-level variables.
type Kind string

const (
	KindClass    Kind = "class"
	KindVariable Kind = "variable"
)

// ParamKind is the passing style of a parameter.
type ParamKind string

const (
	Positional ParamKind = "positional"
	Named      ParamKind = "named"
)

// ErrUnknownType is returned by Lookup and Member for unregistered names.
var ErrUnknownType = derrors.NotFoundError("unknown api type").Build()

// Parameter is a function or constructor parameter.
type Parameter struct {
	Type        string    `yaml:"type" json:"type"`
	Name        string    `yaml:"name" json:"name"`
	Description string    `yaml:"description,omitempty" json:"description,omitempty"`
	Kind        ParamKind `yaml:"kind,omitempty" json:"kind,omitempty"`
	Required    bool      `yaml:"required,omitempty" json:"required,omitempty"`
	Default     string    `yaml:"default,omitempty" json:"defaultValue,omitempty"`
}

// Member is a field or method of a type. Methods have Parameters,
// possibly empty; fields have nil Parameters.
type Member struct {
	Name           string      `yaml:"-" json:"name"`
	Type           string      `yaml:"type" json:"type"`
	Description    string      `yaml:"description,omitempty" json:"description,omitempty"`
	TypeParameters []string    `yaml:"type_parameters,omitempty" json:"typeParameters,omitempty"`
	Parameters     []Parameter `yaml:"parameters" json:"parameters,omitempty"`
	ReturnType     string      `yaml:"return_type,omitempty" json:"returnType,omitempty"`
	Static         bool        `yaml:"-" json:"static,omitempty"`
}

// IsMethod reports whether the member takes parameters.
func (m Member) IsMethod() bool { return m.Parameters != nil }

// UnmarshalYAML accepts a bare type string as shorthand for a field.
func (m *Member) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		m.Type = node.Value
		return nil
	}
	type plain Member
	return node.Decode((*plain)(m))
}

// Members is an ordered member list decoded from a YAML mapping.
type Members []Member

func (ms *Members) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: members must be a mapping", node.Line)
	}
	seen := make(map[string]bool)
	out := make(Members, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		if seen[name] {
			return fmt.Errorf("line %d: duplicate member %q", node.Content[i].Line, name)
		}
		seen[name] = true
		var m Member
		if err := node.Content[i+1].Decode(&m); err != nil {
			return err
		}
		m.Name = name
		out = append(out, m)
	}
	*ms = out
	return nil
}

// Constructor is a generative or factory constructor. An empty Name is
// the unnamed constructor.
type Constructor struct {
	Name        string      `yaml:"name,omitempty" json:"name,omitempty"`
	Description string      `yaml:"description,omitempty" json:"description,omitempty"`
	Parameters  []Parameter `yaml:"parameters" json:"parameters"`
	Factory     bool        `yaml:"factory,omitempty" json:"factory,omitempty"`
}

// Type is a documented class or variable.
type Type struct {
	Name           string        `yaml:"name" json:"name"`
	Kind           Kind          `yaml:"kind,omitempty" json:"kind"`
	Description    string        `yaml:"description,omitempty" json:"description,omitempty"`
	Package        string        `yaml:"package,omitempty" json:"package,omitempty"`
	Type           string        `yaml:"type,omitempty" json:"type,omitempty"`
	TypeParameters []string      `yaml:"type_parameters,omitempty" json:"typeParameters,omitempty"`
	Members        Members       `yaml:"members,omitempty" json:"members,omitempty"`
	StaticMembers  Members       `yaml:"static_members,omitempty" json:"staticMembers,omitempty"`
	Constructors   []Constructor `yaml:"constructors,omitempty" json:"constructors,omitempty"`
}

// Registry indexes types by name.
type Registry struct {
	types []Type
	index map[string]int
}

// Load reads a registry file. A missing file yields an empty registry.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Registry{index: map[string]int{}}, nil
	}
	if err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryFileSystem, "failed to read api types").
			WithContext("file", path).
			Build()
	}
	r, err := Parse(data)
	if err != nil {
		if ce, ok := derrors.AsClassified(err); ok {
			return nil, ce.WithContext("file", path)
		}
		return nil, err
	}
	return r, nil
}

// Parse decodes and validates a registry document.
func Parse(data []byte) (*Registry, error) {
	var doc struct {
		Types []Type `yaml:"types"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryConfig, "invalid api types").UserAction().Build()
	}
	r := &Registry{index: make(map[string]int, len(doc.Types))}
	for i, t := range doc.Types {
		if err := normalize(&t); err != nil {
			return nil, err
		}
		if prev, dup := r.index[t.Name]; dup {
			return nil, derrors.ConfigError("duplicate api type name").
				WithContext("type", t.Name).
				WithContext("index", i).
				WithContext("first_index", prev).
				Build()
		}
		r.index[t.Name] = len(r.types)
		r.types = append(r.types, t)
	}
	return r, nil
}

func normalize(t *Type) error {
	if strings.TrimSpace(t.Name) == "" {
		return derrors.ConfigError("api type without name").Build()
	}
	switch t.Kind {
	case "":
		t.Kind = KindClass
	case KindClass, KindVariable:
	default:
		return derrors.ConfigError("unknown api type kind").
			WithContext("type", t.Name).
			WithContext("kind", string(t.Kind)).
			Build()
	}
	if t.Kind == KindVariable && t.Type == "" {
		return derrors.ConfigError("variable requires a type").WithContext("type", t.Name).Build()
	}
	for i := range t.StaticMembers {
		t.StaticMembers[i].Static = true
	}
	for _, params := range paramLists(t) {
		for i := range params {
			switch params[i].Kind {
			case "":
				params[i].Kind = Positional
			case Positional, Named:
			default:
				return derrors.ConfigError("unknown parameter kind").
					WithContext("type", t.Name).
					WithContext("parameter", params[i].Name).
					Build()
			}
		}
	}
	return nil
}

func paramLists(t *Type) [][]Parameter {
	var out [][]Parameter
	for _, m := range t.Members {
		out = append(out, m.Parameters)
	}
	for _, m := range t.StaticMembers {
		out = append(out, m.Parameters)
	}
	for _, c := range t.Constructors {
		out = append(out, c.Parameters)
	}
	return out
}

// Len is the number of registered types.
func (r *Registry) Len() int { return len(r.types) }

// Names lists registered type names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.types))
	for _, t := range r.types {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the type registered under name.
func (r *Registry) Lookup(name string) (Type, error) {
	i, ok := r.index[name]
	if !ok {
		return Type{}, ErrUnknownType.WithContext("type", name)
	}
	return r.types[i], nil
}

// Member returns the instance or static member of typeName.
func (r *Registry) Member(typeName, member string) (Member, error) {
	t, err := r.Lookup(typeName)
	if err != nil {
		return Member{}, err
	}
	for _, list := range []Members{t.Members, t.StaticMembers} {
		for _, m := range list {
			if m.Name == member {
				return m, nil
			}
		}
	}
	return Member{}, ErrUnknownType.WithContext("type", typeName).WithContext("member", member)
}
