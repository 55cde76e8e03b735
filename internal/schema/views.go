package schema

import (
	"fmt"

	"github.com/jangyunsu11/UniversityPrepApp/internal/domain"
)

// Roadmap is the annual roadmap shape. completed is optional and
// defaults to false when the model omits it.
func Roadmap() Descriptor {
	return Descriptor{
		Name:    "roadmap_items",
		Version: 1,
		Kind:    domain.ViewRoadmap,
		Fields: []Field{
			{Name: "month", Type: FieldInteger, Required: true},
			{Name: "title", Type: FieldString, Required: true},
			{Name: "description", Type: FieldString, Required: true},
			{Name: "focusArea", Type: FieldString, Required: true},
			{Name: "completed", Type: FieldBoolean},
		},
	}
}

// Invention is the invention-idea shape.
func Invention() Descriptor {
	return Descriptor{
		Name:    "invention_ideas",
		Version: 1,
		Kind:    domain.ViewInvention,
		Fields: []Field{
			{Name: "title", Type: FieldString, Required: true},
			{Name: "problem", Type: FieldString, Required: true},
			{Name: "solution", Type: FieldString, Required: true},
			{Name: "techStack", Type: FieldStringArray, Required: true},
			{Name: "feasibility", Type: FieldString, Required: true},
		},
	}
}

// Study is the curriculum shape. difficulty is a closed enumeration.
func Study() Descriptor {
	return Descriptor{
		Name:    "study_resources",
		Version: 1,
		Kind:    domain.ViewStudy,
		Fields: []Field{
			{Name: "topic", Type: FieldString, Required: true},
			{Name: "difficulty", Type: FieldString, Enum: domain.DifficultyValues(), Required: true},
			{Name: "description", Type: FieldString, Required: true},
			{Name: "keyConcepts", Type: FieldStringArray, Required: true},
			{Name: "recommendedProject", Type: FieldString, Required: true},
		},
	}
}

// For returns the descriptor for a view kind.
func For(kind domain.ViewKind) (Descriptor, error) {
	switch kind {
	case domain.ViewRoadmap:
		return Roadmap(), nil
	case domain.ViewInvention:
		return Invention(), nil
	case domain.ViewStudy:
		return Study(), nil
	}
	return Descriptor{}, fmt.Errorf("no schema for view %q", kind)
}

// All returns every descriptor in view order.
func All() []Descriptor {
	return []Descriptor{Roadmap(), Invention(), Study()}
}
