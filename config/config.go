// Package config loads and saves naming schemas as JSON or YAML
// descriptors.
//
// A descriptor mirrors the schema model one-to-one:
//
//	paddingNum: 2
//	nameParts:
//	  - name: Side
//	    type: PREFIX
//	    predefinedValues: [L, R]
//	    descriptions: [Left, Right]
//	    koreanDescriptions: [왼쪽, 오른쪽]
//	    isDirection: true
//	  - name: RealName
//	    type: REALNAME
//	  - name: Index
//	    type: INDEX
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	namerig "github.com/namerig/namerig"
)

// PartSpec is the serialized form of a single name part.
type PartSpec struct {
	Name               string   `json:"name" yaml:"name"`
	Type               string   `json:"type" yaml:"type"`
	PredefinedValues   []string `json:"predefinedValues,omitempty" yaml:"predefinedValues,omitempty"`
	Descriptions       []string `json:"descriptions,omitempty" yaml:"descriptions,omitempty"`
	KoreanDescriptions []string `json:"koreanDescriptions,omitempty" yaml:"koreanDescriptions,omitempty"`
	IsDirection        bool     `json:"isDirection,omitempty" yaml:"isDirection,omitempty"`
}

// SchemaSpec is the serialized form of a whole naming schema.
type SchemaSpec struct {
	PaddingNum int        `json:"paddingNum,omitempty" yaml:"paddingNum,omitempty"`
	NameParts  []PartSpec `json:"nameParts" yaml:"nameParts"`
}

// FromSpec assembles a schema from its descriptor. Unknown part type
// keywords and schema construction violations surface as namerig.Issues.
func FromSpec(spec SchemaSpec) (*namerig.Schema, error) {
	var iss namerig.Issues
	parts := make([]*namerig.Part, 0, len(spec.NameParts))
	for i, ps := range spec.NameParts {
		typ, ok := namerig.ParsePartType(ps.Type)
		if !ok {
			iss = namerig.AppendIssues(iss, namerig.Issue{
				Path:    fmt.Sprintf("/nameParts/%d/type", i),
				Code:    namerig.CodeInvalidPartType,
				Message: fmt.Sprintf("unknown part type %q", ps.Type),
			})
			continue
		}
		parts = append(parts, namerig.NewPart(ps.Name, typ, ps.PredefinedValues, ps.Descriptions, ps.KoreanDescriptions, ps.IsDirection))
	}
	if len(iss) > 0 {
		return nil, iss
	}
	s, err := namerig.NewSchema(parts...)
	if err != nil {
		return nil, err
	}
	if spec.PaddingNum > 0 {
		s.SetPaddingWidth(spec.PaddingNum)
	}
	return s, nil
}

// ToSpec serializes a schema back into its descriptor form.
func ToSpec(s *namerig.Schema) SchemaSpec {
	spec := SchemaSpec{PaddingNum: s.PaddingWidth()}
	for _, p := range s.Parts() {
		spec.NameParts = append(spec.NameParts, PartSpec{
			Name:               p.Name(),
			Type:               p.Type().String(),
			PredefinedValues:   p.Values(),
			Descriptions:       p.Descriptions(),
			KoreanDescriptions: p.KoreanDescriptions(),
			IsDirection:        p.IsDirection(),
		})
	}
	return spec
}

// ParseJSON builds a schema from a JSON descriptor.
func ParseJSON(data []byte) (*namerig.Schema, error) {
	var spec SchemaSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, namerig.Issues{{Path: "/", Code: namerig.CodeParseError, Message: "invalid JSON descriptor", Cause: err}}
	}
	return FromSpec(spec)
}

// ParseYAML builds a schema from a YAML descriptor.
func ParseYAML(data []byte) (*namerig.Schema, error) {
	var spec SchemaSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, namerig.Issues{{Path: "/", Code: namerig.CodeParseError, Message: "invalid YAML descriptor", Cause: err}}
	}
	return FromSpec(spec)
}

// MarshalJSON serializes a schema into an indented JSON descriptor.
func MarshalJSON(s *namerig.Schema) ([]byte, error) {
	return json.MarshalIndent(ToSpec(s), "", "  ")
}

// MarshalYAML serializes a schema into a YAML descriptor.
func MarshalYAML(s *namerig.Schema) ([]byte, error) {
	return yaml.Marshal(ToSpec(s))
}

// LoadFile reads a descriptor file, dispatching on its extension
// (.json, .yaml, .yml).
func LoadFile(path string) (*namerig.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, namerig.Issues{{
			Path:    "/",
			Code:    namerig.CodeUnsupportedFormat,
			Message: fmt.Sprintf("unsupported descriptor extension %q", filepath.Ext(path)),
		}}
	}
}

// SaveFile writes a descriptor file, dispatching on its extension.
func SaveFile(path string, s *namerig.Schema) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err = MarshalJSON(s)
	case ".yaml", ".yml":
		data, err = MarshalYAML(s)
	default:
		return namerig.Issues{{
			Path:    "/",
			Code:    namerig.CodeUnsupportedFormat,
			Message: fmt.Sprintf("unsupported descriptor extension %q", filepath.Ext(path)),
		}}
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
