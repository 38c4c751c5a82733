package load

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Param is one named parameter declaration.
type Param struct {
	Name  string `xml:"name,attr" json:"name"`
	Value string `xml:"value,attr" json:"value"`
}

// ParamList holds parameters in declaration order. XML and JSON encode it
// as a list of name/value pairs; YAML encodes it as a mapping whose key
// order is preserved through the node API, so exported files keep the
// order the author wrote.
type ParamList []Param

// Get returns the named parameter value.
func (l ParamList) Get(name string) (string, bool) {
	for _, p := range l {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// UnmarshalYAML decodes the list from a YAML mapping, keeping key order.
func (l *ParamList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: parameters must be a mapping", node.Line)
	}
	out := make(ParamList, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var p Param
		if err := node.Content[i].Decode(&p.Name); err != nil {
			return err
		}
		if err := node.Content[i+1].Decode(&p.Value); err != nil {
			return err
		}
		out = append(out, p)
	}
	*l = out
	return nil
}

// MarshalYAML encodes the list as a mapping in declaration order.
func (l ParamList) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, p := range l {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: p.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Value: p.Value},
		)
	}
	return node, nil
}

func jsonUnmarshal(b []byte, v any) error { return json.Unmarshal(b, v) }

func jsonMarshal(v any) ([]byte, error) { return json.Marshal(v) }
