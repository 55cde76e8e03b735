package domain

import "sort"

// RoadmapItem is one month of the annual roadmap.
type RoadmapItem struct {
	Month       int    `json:"month" validate:"min=1,max=12"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	FocusArea   string `json:"focusArea" validate:"required"`
	Completed   bool   `json:"completed"`
}

// InventionIdea is a single brainstormed invention for the March competition.
type InventionIdea struct {
	Title       string   `json:"title" validate:"required"`
	Problem     string   `json:"problem" validate:"required"`
	Solution    string   `json:"solution" validate:"required"`
	TechStack   []string `json:"techStack" validate:"required"`
	Feasibility string   `json:"feasibility" validate:"required"`
}

// StudyResource is one topic of the study curriculum.
type StudyResource struct {
	Topic              string     `json:"topic" validate:"required"`
	Difficulty         Difficulty `json:"difficulty" validate:"oneof=Beginner Intermediate Advanced"`
	Description        string     `json:"description" validate:"required"`
	KeyConcepts        []string   `json:"keyConcepts" validate:"required"`
	RecommendedProject string     `json:"recommendedProject" validate:"required"`
}

// CompetitionMonth is the month of the invention competition.
const CompetitionMonth = 3

var monthLabels = [12]string{
	"1월", "2월", "3월", "4월", "5월", "6월",
	"7월", "8월", "9월", "10월", "11월", "12월",
}

// MonthLabel returns the Korean month label, or "?월" outside 1–12.
func MonthLabel(month int) string {
	if month < 1 || month > 12 {
		return "?월"
	}
	return monthLabels[month-1]
}

// IsHighlightMonth reports whether the month gets the competition highlight.
func IsHighlightMonth(month int) bool {
	return month == CompetitionMonth
}

// ToggleComplete returns a copy of items with Completed flipped on every
// record for month. The input slice is left untouched.
func ToggleComplete(items []RoadmapItem, month int) []RoadmapItem {
	out := make([]RoadmapItem, len(items))
	for i, item := range items {
		if item.Month == month {
			item.Completed = !item.Completed
		}
		out[i] = item
	}
	return out
}

// SortRoadmap returns a copy of items ordered by month. Records sharing a
// month keep their relative order.
func SortRoadmap(items []RoadmapItem) []RoadmapItem {
	out := make([]RoadmapItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Month < out[j].Month
	})
	return out
}

// CompletedCount returns how many roadmap months are marked done.
func CompletedCount(items []RoadmapItem) int {
	n := 0
	for _, item := range items {
		if item.Completed {
			n++
		}
	}
	return n
}
