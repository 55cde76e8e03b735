package domain

import "fmt"

// ViewKind identifies one of the three planning views.
type ViewKind string

const (
	ViewRoadmap   ViewKind = "roadmap"
	ViewInvention ViewKind = "invention"
	ViewStudy     ViewKind = "study"
)

// ViewKinds is the canonical display order of the planning views.
var ViewKinds = []ViewKind{ViewRoadmap, ViewInvention, ViewStudy}

// ParseViewKind accepts the canonical names plus the short CLI aliases.
func ParseViewKind(s string) (ViewKind, error) {
	switch s {
	case "roadmap":
		return ViewRoadmap, nil
	case "invention", "ideas":
		return ViewInvention, nil
	case "study":
		return ViewStudy, nil
	}
	return "", fmt.Errorf("unknown view %q (expected roadmap, ideas or study)", s)
}

// Difficulty is the closed set of study levels.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

var validDifficulties = map[Difficulty]bool{
	DifficultyBeginner:     true,
	DifficultyIntermediate: true,
	DifficultyAdvanced:     true,
}

// Difficulties returns the levels in selector order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}
}

// DifficultyValues returns the levels as plain strings, e.g. for schema enums.
func DifficultyValues() []string {
	out := make([]string, 0, len(validDifficulties))
	for _, d := range Difficulties() {
		out = append(out, string(d))
	}
	return out
}

// IsValid reports whether d is one of the three known levels.
func (d Difficulty) IsValid() bool {
	return validDifficulties[d]
}

// ParseDifficulty validates a level string. Matching is exact.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.IsValid() {
		return "", fmt.Errorf("invalid level %q (expected Beginner, Intermediate or Advanced)", s)
	}
	return d, nil
}
