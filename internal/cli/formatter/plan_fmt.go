package formatter

import (
	"fmt"
	"strings"

	"github.com/jangyunsu11/UniversityPrepApp/internal/domain"
	"github.com/jangyunsu11/UniversityPrepApp/internal/generation"
)

// Section titles and fixed copy.
const (
	RoadmapTitle   = "2026 AI 입시 로드맵"
	InventionTitle = "3월 발명 대회 아이디어 랩"
	StudyTitle     = "AI 학습 센터"

	RoadmapLoading   = "AI가 2026년 입시 전략을 분석하고 있습니다..."
	InventionLoading = "생성 중... 100개의 아이디어를 생성하므로 시간이 조금 걸릴 수 있습니다."
	StudyLoading     = "맞춤형 학습 자료를 큐레이션 중입니다..."

	InventionEmptyHint = "관심 분야를 입력하고 100개의 AI 발명 아이디어를 받아보세요."
	InventionInputHint = "예: 환경 보호, 시각 장애인 보조, 학교 생활 개선..."
	StudyEmptyTitle    = "학습 플랜을 시작하세요"
)

// StudyEmptyHint is the empty-state line for the selected level.
func StudyEmptyHint(level domain.Difficulty) string {
	return fmt.Sprintf("선택한 레벨(%s)에 맞는 학습 로드맵을 생성합니다.", level)
}

// FormatBanner renders an error message as a red banner.
func FormatBanner(msg string) string {
	return StyleRed.Render("⚠ " + msg)
}

// FormatRoadmapCard renders one month. The competition month gets the
// accent border and a badge; completed months are struck through.
func FormatRoadmapCard(item domain.RoadmapItem, selected bool) string {
	var b strings.Builder

	label := domain.MonthLabel(item.Month)
	if domain.IsHighlightMonth(item.Month) {
		label = StylePurple.Render(label) + " " + StylePurple.Render("★ 발명 대회")
	} else {
		label = StyleBold.Render(label)
	}
	check := Dim("○")
	if item.Completed {
		check = StyleGreen.Render("✔")
	}
	b.WriteString(check + " " + label + "\n")

	title := StyleBold.Render(item.Title)
	desc := StyleFg.Render(item.Description)
	if item.Completed {
		title = StyleDim.Strikethrough(true).Render(item.Title)
		desc = Dim(item.Description)
	}
	b.WriteString(title + "\n")
	if item.FocusArea != "" {
		b.WriteString(StyleBlue.Render(strings.ToUpper(item.FocusArea)) + "\n")
	}
	b.WriteString(desc)

	body := b.String()
	if selected {
		body = StyleHeader.Render("▸") + " " + strings.ReplaceAll(body, "\n", "\n  ")
	}
	if domain.IsHighlightMonth(item.Month) {
		return RenderHighlightBox("", body)
	}
	return RenderBox("", body)
}

// FormatRoadmap renders the whole roadmap ordered by month, with a
// completion bar on top. cursor < 0 selects nothing.
func FormatRoadmap(items []domain.RoadmapItem, cursor int) string {
	sorted := domain.SortRoadmap(items)

	var b strings.Builder
	b.WriteString(Header(RoadmapTitle) + "\n")
	b.WriteString(RenderRoadmapProgress(domain.CompletedCount(sorted), len(sorted), 20) + "\n\n")
	for i, item := range sorted {
		b.WriteString(FormatRoadmapCard(item, i == cursor) + "\n")
	}
	return b.String()
}

// FormatIdeaCountLabel renders the "총 N 개의 아이디어" summary line.
func FormatIdeaCountLabel(n int) string {
	return "총 " + StylePurple.Render(fmt.Sprintf("%d", n)) + " 개의 아이디어가 생성되었습니다."
}

// FormatIdeaCard renders one invention idea; index is 1-based.
func FormatIdeaCard(index int, idea domain.InventionIdea) string {
	var b strings.Builder
	b.WriteString(StylePurple.Render(fmt.Sprintf("#%d", index)) + " " + StyleBold.Render(idea.Title) + "\n")
	b.WriteString(Dim("PROBLEM") + "  " + idea.Problem + "\n")
	b.WriteString(Dim("SOLUTION") + " " + idea.Solution + "\n")
	if chips := Chips(idea.TechStack); chips != "" {
		b.WriteString(chips + "\n")
	}
	b.WriteString(StyleGreen.Render("실현 가능성: " + idea.Feasibility))
	return RenderBox("", b.String())
}

// FormatIdeas renders the section header followed by FormatIdeaList.
func FormatIdeas(ideas []domain.InventionIdea) string {
	return Header(InventionTitle) + "\n" + FormatIdeaList(ideas)
}

// FormatIdeaList renders the count label and one card per idea, or the
// empty-state hint when there are none.
func FormatIdeaList(ideas []domain.InventionIdea) string {
	var b strings.Builder
	if len(ideas) == 0 {
		b.WriteString(Dim(InventionEmptyHint) + "\n")
		return b.String()
	}
	b.WriteString(FormatIdeaCountLabel(len(ideas)) + "\n\n")
	for i, idea := range ideas {
		b.WriteString(FormatIdeaCard(i+1, idea) + "\n")
	}
	return b.String()
}

// FormatStudyCard renders one curriculum topic.
func FormatStudyCard(res domain.StudyResource) string {
	var b strings.Builder
	b.WriteString(DifficultyBadge(res.Difficulty) + " " + StyleBold.Render(res.Topic) + "\n")
	b.WriteString(StyleFg.Render(res.Description) + "\n")
	if len(res.KeyConcepts) > 0 {
		tags := make([]string, 0, len(res.KeyConcepts))
		for _, c := range res.KeyConcepts {
			tags = append(tags, StyleBlue.Render("#"+c))
		}
		b.WriteString(strings.Join(tags, " ") + "\n")
	}
	b.WriteString(Dim("추천 프로젝트: ") + StyleGreen.Render(res.RecommendedProject))
	return RenderBox("", b.String())
}

// FormatLevelSelector renders the three levels with the active one bold.
func FormatLevelSelector(active domain.Difficulty) string {
	parts := make([]string, 0, 3)
	for _, d := range domain.Difficulties() {
		if d == active {
			parts = append(parts, DifficultyColor(d).Bold(true).Render("["+string(d)+"]"))
			continue
		}
		parts = append(parts, Dim(" "+string(d)+" "))
	}
	return strings.Join(parts, " ")
}

// FormatStudy renders the section header followed by FormatStudyList.
func FormatStudy(level domain.Difficulty, resources []domain.StudyResource) string {
	return Header(StudyTitle) + "\n" + FormatStudyList(level, resources)
}

// FormatStudyList renders one card per resource, or the empty state for level.
func FormatStudyList(level domain.Difficulty, resources []domain.StudyResource) string {
	var b strings.Builder
	if len(resources) == 0 {
		b.WriteString(StyleBold.Render(StudyEmptyTitle) + "\n")
		b.WriteString(Dim(StudyEmptyHint(level)) + "\n")
		return b.String()
	}
	for _, res := range resources {
		b.WriteString(FormatStudyCard(res) + "\n")
	}
	return b.String()
}

// FormatHistory renders recent generation runs as a table.
func FormatHistory(runs []generation.Run) string {
	if len(runs) == 0 {
		return Dim("No generation runs recorded yet.") + "\n"
	}
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		code := r.ErrorCode
		if code == "" {
			code = Dim("-")
		}
		rows = append(rows, []string{
			TruncID(r.ID),
			string(r.View),
			RunStatusPill(r.Status),
			fmt.Sprintf("%d", r.Records),
			FormatLatency(r.LatencyMs),
			code,
			HumanTimestamp(r.StartedAt),
		})
	}
	return RenderTable([]Column{
		{Title: "ID"},
		{Title: "VIEW"},
		{Title: "STATUS"},
		{Title: "RECORDS", Right: true},
		{Title: "LATENCY", Right: true},
		{Title: "ERROR", Max: 20},
		{Title: "STARTED"},
	}, rows)
}

// FormatRunDetail renders every recorded field of one run.
func FormatRunDetail(r generation.Run) string {
	code := r.ErrorCode
	if code == "" {
		code = "-"
	}
	model := r.Model
	if model == "" {
		model = "-"
	}
	fields := [][2]string{
		{"ID", r.ID},
		{"View", string(r.View)},
		{"Schema", fmt.Sprintf("%s v%d", r.Schema, r.SchemaVersion)},
		{"Model", model},
		{"Status", RunStatusPill(r.Status)},
		{"Records", fmt.Sprintf("%d", r.Records)},
		{"Latency", FormatLatency(r.LatencyMs)},
		{"Error", code},
		{"Started", HumanTimestamp(r.StartedAt)},
	}

	var b strings.Builder
	b.WriteString(Header("Generation run") + "\n")
	for _, f := range fields {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim(fmt.Sprintf("%-8s", f[0])), f[1]))
	}
	return b.String()
}

// FormatHistorySummary renders the ok/failed totals line.
func FormatHistorySummary(ok, failed int) string {
	return fmt.Sprintf("%s %s  %s %s",
		StyleGreen.Render(fmt.Sprintf("%d", ok)), Dim("ok"),
		StyleRed.Render(fmt.Sprintf("%d", failed)), Dim("failed"))
}
