// Package schema declares the output shape the model must produce for each
// planning view. Descriptors are versioned so that contract tests can pin
// the shape independently of prompt wording.
package schema

import (
	"fmt"

	"github.com/jangyunsu11/UniversityPrepApp/internal/domain"
	"google.golang.org/genai"
)

// FieldType is the primitive kind of a record field.
type FieldType string

const (
	FieldString      FieldType = "string"
	FieldInteger     FieldType = "integer"
	FieldBoolean     FieldType = "boolean"
	FieldStringArray FieldType = "array<string>"
)

// Field describes one named property of a record.
type Field struct {
	Name        string    `json:"name"`
	Type        FieldType `json:"type"`
	Enum        []string  `json:"enum,omitempty"`
	Required    bool      `json:"required"`
	Description string    `json:"description,omitempty"`
}

// Descriptor is the declared shape of one view's response: an array of
// objects carrying Fields, in order.
type Descriptor struct {
	Name    string          `json:"name"`
	Version int             `json:"version"`
	Kind    domain.ViewKind `json:"view"`
	Fields  []Field         `json:"fields"`
}

// Required returns the names of required fields in declaration order.
func (d Descriptor) Required() []string {
	var out []string
	for _, f := range d.Fields {
		if f.Required {
			out = append(out, f.Name)
		}
	}
	return out
}

// Field looks up a field by name.
func (d Descriptor) Field(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// ID returns "name@vN", used in logs and the run history.
func (d Descriptor) ID() string {
	return fmt.Sprintf("%s@v%d", d.Name, d.Version)
}

// GenaiSchema converts the descriptor into the SDK response schema.
func (d Descriptor) GenaiSchema() *genai.Schema {
	props := make(map[string]*genai.Schema, len(d.Fields))
	order := make([]string, 0, len(d.Fields))
	for _, f := range d.Fields {
		props[f.Name] = f.genaiSchema()
		order = append(order, f.Name)
	}
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type:             genai.TypeObject,
			Properties:       props,
			Required:         d.Required(),
			PropertyOrdering: order,
		},
	}
}

func (f Field) genaiSchema() *genai.Schema {
	s := &genai.Schema{Description: f.Description}
	switch f.Type {
	case FieldInteger:
		s.Type = genai.TypeInteger
	case FieldBoolean:
		s.Type = genai.TypeBoolean
	case FieldStringArray:
		s.Type = genai.TypeArray
		s.Items = &genai.Schema{Type: genai.TypeString}
	default:
		s.Type = genai.TypeString
	}
	if len(f.Enum) > 0 {
		s.Enum = append([]string(nil), f.Enum...)
	}
	return s
}

// JSONSchema renders the descriptor as a plain JSON-schema document.
func (d Descriptor) JSONSchema() map[string]any {
	props := make(map[string]any, len(d.Fields))
	for _, f := range d.Fields {
		props[f.Name] = f.jsonSchema()
	}
	required := d.Required()
	if required == nil {
		required = []string{}
	}
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":       "object",
			"properties": props,
			"required":   required,
		},
	}
}

func (f Field) jsonSchema() map[string]any {
	var s map[string]any
	switch f.Type {
	case FieldStringArray:
		s = map[string]any{"type": "array", "items": map[string]any{"type": "string"}}
	default:
		s = map[string]any{"type": string(f.Type)}
	}
	if len(f.Enum) > 0 {
		s["enum"] = append([]string(nil), f.Enum...)
	}
	if f.Description != "" {
		s["description"] = f.Description
	}
	return s
}
