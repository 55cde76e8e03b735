package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/jangyunsu11/UniversityPrepApp/internal/domain"
	"github.com/jangyunsu11/UniversityPrepApp/internal/generation"
	"github.com/jangyunsu11/UniversityPrepApp/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFormatRoadmap_SortedByMonth(t *testing.T) {
	out := stripANSI(FormatRoadmap(testutil.RoadmapItems(12, 1, 3), -1))

	jan := strings.Index(out, "1월 목표")
	mar := strings.Index(out, "3월 목표")
	dec := strings.Index(out, "12월 목표")
	assert.True(t, jan >= 0 && mar > jan && dec > mar, "cards must be ordered by month")
	assert.Contains(t, out, "0/3 완료")
}

func TestFormatRoadmap_HighlightsCompetitionMonth(t *testing.T) {
	out := stripANSI(FormatRoadmap(testutil.RoadmapItems(2, 3), -1))
	assert.Equal(t, 1, strings.Count(out, "★ 발명 대회"))
}

func TestFormatRoadmapCard_Completed(t *testing.T) {
	item := testutil.RoadmapItems(5)[0]
	item.Completed = true

	out := stripANSI(FormatRoadmapCard(item, false))
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "5월")
}

func TestFormatRoadmapCard_OutOfRangeMonth(t *testing.T) {
	out := stripANSI(FormatRoadmapCard(domain.RoadmapItem{Month: 13, Title: "보너스"}, false))
	assert.Contains(t, out, "?월")
	assert.Contains(t, out, "보너스")
}

func TestFormatRoadmap_CursorMarksCard(t *testing.T) {
	out := stripANSI(FormatRoadmap(testutil.RoadmapItems(1, 2), 1))
	assert.Equal(t, 1, strings.Count(out, "▸"))
}

func TestFormatIdeas_HundredIdeas(t *testing.T) {
	ideas := testutil.InventionIdeas(100)
	out := stripANSI(FormatIdeas(ideas))

	assert.Contains(t, out, "총 100 개의 아이디어가 생성되었습니다.")
	assert.Equal(t, 100, strings.Count(out, "실현 가능성:"))

	wantChips := 0
	for _, idea := range ideas {
		wantChips += len(idea.TechStack)
	}
	assert.Equal(t, wantChips, strings.Count(out, "["))
}

func TestFormatIdeas_EmptyShowsHint(t *testing.T) {
	out := stripANSI(FormatIdeas(nil))
	assert.Contains(t, out, InventionEmptyHint)
	assert.NotContains(t, out, "총")
}

func TestFormatStudy(t *testing.T) {
	res := testutil.StudyResources(domain.DifficultyAdvanced, "CNN", "RNN")
	out := stripANSI(FormatStudy(domain.DifficultyAdvanced, res))

	assert.Equal(t, 2, strings.Count(out, "● Advanced"))
	assert.Contains(t, out, "#CNN 기초")
	assert.Contains(t, out, "RNN 미니 프로젝트")
}

func TestFormatStudy_EmptyMentionsLevel(t *testing.T) {
	out := stripANSI(FormatStudy(domain.DifficultyIntermediate, nil))
	assert.Contains(t, out, StudyEmptyTitle)
	assert.Contains(t, out, "선택한 레벨(Intermediate)")
}

func TestFormatLevelSelector(t *testing.T) {
	out := stripANSI(FormatLevelSelector(domain.DifficultyIntermediate))
	assert.Contains(t, out, "[Intermediate]")
	assert.Contains(t, out, "Beginner")
	assert.NotContains(t, out, "[Beginner]")
}

func TestFormatBanner(t *testing.T) {
	assert.Contains(t, stripANSI(FormatBanner("실패")), "⚠ 실패")
}

func TestFormatHistory(t *testing.T) {
	runs := []generation.Run{
		{ID: "abcdef0123456789", View: domain.ViewRoadmap, Status: generation.RunOK, Records: 12, LatencyMs: 1500, StartedAt: time.Now()},
		{ID: "fedcba9876543210", View: domain.ViewStudy, Status: generation.RunFailed, ErrorCode: "TIMEOUT", StartedAt: time.Now()},
	}
	out := stripANSI(FormatHistory(runs))

	assert.Contains(t, out, "abcdef01")
	assert.NotContains(t, out, "abcdef0123")
	assert.Contains(t, out, "roadmap")
	assert.Contains(t, out, "1.5s")
	assert.Contains(t, out, "TIMEOUT")
	assert.Contains(t, out, "✖ failed")
}

func TestFormatRunDetail(t *testing.T) {
	out := stripANSI(FormatRunDetail(generation.Run{
		ID: "abcdef0123456789", View: domain.ViewStudy, Schema: "study_resources", SchemaVersion: 1,
		Status: generation.RunFailed, ErrorCode: "TIMEOUT", LatencyMs: 2500, StartedAt: time.Now(),
	}))

	assert.Contains(t, out, "abcdef0123456789")
	assert.Contains(t, out, "study_resources v1")
	assert.Contains(t, out, "✖ failed")
	assert.Contains(t, out, "TIMEOUT")
	assert.Contains(t, out, "2.5s")
	assert.Regexp(t, `Model\s+-`, out)
}

func TestFormatHistory_Empty(t *testing.T) {
	assert.Contains(t, FormatHistory(nil), "No generation runs")
}
