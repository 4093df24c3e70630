package entityid

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes the public form of the id as a string scalar.
func (id ID[K]) MarshalYAML() (interface{}, error) {
	return id.String(), nil
}

func (id *ID[K]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return &ParseError{Input: value.Value, Expected: TagOf[K](), Err: ErrMalformedValue}
	}
	return id.UnmarshalText([]byte(value.Value))
}

// MarshalYAML encodes the record as one mapping with an "id" key first, the
// same layout as MarshalJSON.
func (i Identified[K]) MarshalYAML() (interface{}, error) {
	var record yaml.Node
	if err := record.Encode(i.entity); err != nil {
		return nil, err
	}
	if record.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("entityid: %T does not encode to a YAML mapping", i.entity)
	}
	for k := 0; k+1 < len(record.Content); k += 2 {
		if record.Content[k].Value == "id" {
			return nil, fmt.Errorf("%w: %T", ErrDuplicateIdentifierField, i.entity)
		}
	}

	content := make([]*yaml.Node, 0, len(record.Content)+2)
	content = append(content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "id"},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: i.id.String()},
	)
	record.Content = append(content, record.Content...)
	return &record, nil
}

// UnmarshalYAML decodes the id and the record from the same mapping, so
// aliases and merge keys resolve for both.
func (i *Identified[K]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("entityid: %s payload is not a YAML mapping", TagOf[K]())
	}

	var withID struct {
		ID *ID[K] `yaml:"id"`
	}
	if err := value.Decode(&withID); err != nil {
		return err
	}
	if withID.ID == nil {
		return fmt.Errorf("%w in %s payload", ErrMissingIdentifierField, TagOf[K]())
	}

	var entity K
	if err := value.Decode(&entity); err != nil {
		return err
	}
	i.id, i.entity = *withID.ID, entity
	return nil
}
