package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRoadmap() []RoadmapItem {
	return []RoadmapItem{
		{Month: 5, Title: "Research", FocusArea: "Research"},
		{Month: 3, Title: "Invention", FocusArea: "Competition"},
		{Month: 1, Title: "Python", FocusArea: "Coding", Completed: true},
	}
}

func TestToggleComplete_TwiceRestoresOriginal(t *testing.T) {
	items := sampleRoadmap()

	once := ToggleComplete(items, 3)
	twice := ToggleComplete(once, 3)

	assert.True(t, once[1].Completed)
	assert.Equal(t, items, twice)
}

func TestToggleComplete_LeavesOtherRecordsAndInputUnchanged(t *testing.T) {
	items := sampleRoadmap()

	out := ToggleComplete(items, 1)

	assert.False(t, out[2].Completed)
	assert.True(t, items[2].Completed, "input must not be mutated")
	assert.Equal(t, items[0], out[0])
	assert.Equal(t, items[1], out[1])
}

func TestToggleComplete_UnknownMonthIsNoop(t *testing.T) {
	items := sampleRoadmap()
	assert.Equal(t, items, ToggleComplete(items, 11))
}

func TestSortRoadmap_AscendingByMonth(t *testing.T) {
	items := sampleRoadmap()

	sorted := SortRoadmap(items)

	require.Len(t, sorted, 3)
	assert.Equal(t, []int{1, 3, 5}, []int{sorted[0].Month, sorted[1].Month, sorted[2].Month})
	assert.Equal(t, 5, items[0].Month, "input order must be preserved")
}

func TestSortRoadmap_StableWithDuplicates(t *testing.T) {
	items := []RoadmapItem{
		{Month: 4, Title: "b"},
		{Month: 2, Title: "first"},
		{Month: 4, Title: "c"},
		{Month: 2, Title: "second"},
	}

	sorted := SortRoadmap(items)

	titles := make([]string, len(sorted))
	for i, it := range sorted {
		titles[i] = it.Title
	}
	assert.Equal(t, []string{"first", "second", "b", "c"}, titles)
}

func TestSortRoadmap_Empty(t *testing.T) {
	assert.Empty(t, SortRoadmap(nil))
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "1월", MonthLabel(1))
	assert.Equal(t, "3월", MonthLabel(3))
	assert.Equal(t, "12월", MonthLabel(12))
	assert.Equal(t, "?월", MonthLabel(0))
	assert.Equal(t, "?월", MonthLabel(13))
}

func TestIsHighlightMonth(t *testing.T) {
	assert.True(t, IsHighlightMonth(3))
	assert.False(t, IsHighlightMonth(4))
}

func TestCompletedCount(t *testing.T) {
	assert.Equal(t, 1, CompletedCount(sampleRoadmap()))
}
