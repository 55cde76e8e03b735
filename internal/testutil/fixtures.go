package testutil

import (
	"fmt"

	"github.com/jangyunsu11/UniversityPrepApp/internal/domain"
)

var focusAreas = []string{"Python", "수학", "데이터", "머신러닝", "발명", "딥러닝"}

// RoadmapItems returns one item per month in the given order.
func RoadmapItems(months ...int) []domain.RoadmapItem {
	items := make([]domain.RoadmapItem, 0, len(months))
	for _, m := range months {
		items = append(items, domain.RoadmapItem{
			Month:       m,
			Title:       fmt.Sprintf("%d월 목표", m),
			Description: fmt.Sprintf("%d월 학습 계획", m),
			FocusArea:   focusAreas[(m+len(focusAreas))%len(focusAreas)],
		})
	}
	return items
}

// FullYear returns a twelve-month roadmap in shuffled order.
func FullYear() []domain.RoadmapItem {
	return RoadmapItems(7, 3, 12, 1, 9, 5, 2, 11, 4, 8, 6, 10)
}

// InventionIdeas returns n ideas. Idea i carries (i % 4) + 1 tech-stack tags.
func InventionIdeas(n int) []domain.InventionIdea {
	stack := []string{"Python", "TensorFlow", "Arduino", "OpenCV"}
	ideas := make([]domain.InventionIdea, 0, n)
	for i := range n {
		ideas = append(ideas, domain.InventionIdea{
			Title:       fmt.Sprintf("아이디어 %d", i+1),
			Problem:     "문제",
			Solution:    "해결",
			TechStack:   append([]string(nil), stack[:(i%4)+1]...),
			Feasibility: "High",
		})
	}
	return ideas
}

// StudyResources returns one resource per topic at the given level.
func StudyResources(level domain.Difficulty, topics ...string) []domain.StudyResource {
	out := make([]domain.StudyResource, 0, len(topics))
	for _, topic := range topics {
		out = append(out, domain.StudyResource{
			Topic:              topic,
			Difficulty:         level,
			Description:        topic + " 개요",
			KeyConcepts:        []string{topic + " 기초", topic + " 응용"},
			RecommendedProject: topic + " 미니 프로젝트",
		})
	}
	return out
}
