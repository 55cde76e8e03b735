// Package prompt composes the natural-language instructions sent to the
// model for each planning view.
package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jangyunsu11/UniversityPrepApp/internal/domain"
)

const (
	// RoadmapYear is the calendar year the roadmap plans for.
	RoadmapYear = 2026

	// IdeaCount is the number of invention ideas requested per batch.
	// The model is asked for this many; the response is not checked against it.
	IdeaCount = 100

	// StudyTopicCount is the number of curriculum topics requested.
	StudyTopicCount = 5

	// DefaultIdeaContext replaces a blank user context.
	DefaultIdeaContext = "General AI ideas"
)

// Roadmap builds the annual roadmap instruction. It takes no parameters.
func Roadmap() string {
	return strings.Replace(roadmapPromptTemplate, "%YEAR%", strconv.Itoa(RoadmapYear), 1)
}

// Ideas builds the invention brainstorm instruction. The user context is
// inserted verbatim; a blank context becomes DefaultIdeaContext.
func Ideas(context string) string {
	if strings.TrimSpace(context) == "" {
		context = DefaultIdeaContext
	}
	p := strings.ReplaceAll(ideasPromptTemplate, "%COUNT%", strconv.Itoa(IdeaCount))
	// Context goes in last so placeholder-looking user text is left alone.
	return strings.Replace(p, "%CONTEXT%", context, 1)
}

// Study builds the curriculum instruction for the given level.
func Study(level domain.Difficulty) string {
	p := strings.Replace(studyPromptTemplate, "%TOPICS%", strconv.Itoa(StudyTopicCount), 1)
	return strings.Replace(p, "%LEVEL%", string(level), 1)
}

// Build dispatches on the view kind. param is the idea context for the
// invention view and the level for the study view; the roadmap ignores it.
func Build(kind domain.ViewKind, param string) (string, error) {
	switch kind {
	case domain.ViewRoadmap:
		return Roadmap(), nil
	case domain.ViewInvention:
		return Ideas(param), nil
	case domain.ViewStudy:
		if param == "" {
			param = string(domain.DifficultyBeginner)
		}
		level, err := domain.ParseDifficulty(param)
		if err != nil {
			return "", err
		}
		return Study(level), nil
	}
	return "", fmt.Errorf("no prompt for view %q", kind)
}
