package cli

import (
	"strings"
	"testing"

	"github.com/jangyunsu11/UniversityPrepApp/internal/cli/formatter"
	"github.com/jangyunsu11/UniversityPrepApp/internal/controller"
	"github.com/jangyunsu11/UniversityPrepApp/internal/domain"
	"github.com/jangyunsu11/UniversityPrepApp/internal/generation"
	"github.com/jangyunsu11/UniversityPrepApp/internal/llm"
	"github.com/jangyunsu11/UniversityPrepApp/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- app shell ---

func TestTUI_RoadmapGeneratesOnStartup(t *testing.T) {
	app, fake := testApp(t)
	d := NewTestDriver(t, app)

	assert.Equal(t, ViewRoadmap, d.ActiveViewID())
	assert.Equal(t, 1, fake.roadmapCalls)

	text := d.ViewText()
	assert.Contains(t, text, "0/12 완료")
	assert.Equal(t, 1, strings.Count(text, "★ 발명 대회"))
	assert.Less(t, strings.Index(text, "1월 목표"), strings.Index(text, "3월 목표"))
}

func TestTUI_HeaderShowsTabs(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	screen := d.Screen()
	assert.Contains(t, screen, "uniprep")
	assert.Contains(t, screen, "[1 2026 로드맵]")
	assert.Contains(t, screen, "2 3월 발명")
	assert.Contains(t, screen, "3 AI 학습")
	assert.Contains(t, screen, "q: quit")
}

func TestTUI_QuitWithQ(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.Press("q")

	assert.True(t, d.IsQuitting())
}

func TestTUI_QuitWithCtrlC(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.Press("ctrl+c")

	assert.True(t, d.IsQuitting())
}

func TestTUI_NumberKeysSwitchTabs(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.Press("3")
	assert.Equal(t, ViewStudy, d.ActiveViewID())

	d.Press("1")
	assert.Equal(t, ViewRoadmap, d.ActiveViewID())

	d.Press("2")
	assert.Equal(t, ViewInvention, d.ActiveViewID())
}

func TestTUI_TabCycles(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.Press("tab")
	assert.Equal(t, ViewInvention, d.ActiveViewID())
	// The invention input has focus; tab still switches.
	d.Press("tab")
	assert.Equal(t, ViewStudy, d.ActiveViewID())
	d.Press("tab")
	assert.Equal(t, ViewRoadmap, d.ActiveViewID())
	d.Press("shift+tab")
	assert.Equal(t, ViewStudy, d.ActiveViewID())
}

func TestNextTab_Wraps(t *testing.T) {
	assert.Equal(t, ViewInvention, nextTab(ViewRoadmap, 1))
	assert.Equal(t, ViewRoadmap, nextTab(ViewStudy, 1))
	assert.Equal(t, ViewStudy, nextTab(ViewRoadmap, -1))
}

// --- roadmap ---

func TestTUI_Roadmap_RegenerateWithR(t *testing.T) {
	app, fake := testApp(t)
	d := NewTestDriver(t, app)

	d.Press("r")

	assert.Equal(t, 2, fake.roadmapCalls)
	assert.False(t, d.roadmap().ctl.Loading())
}

func TestTUI_Roadmap_FailureShowsBannerThenRecovers(t *testing.T) {
	app, fake := testApp(t)
	fake.roadmap = failRoadmap(llm.ErrUnavailable)
	d := NewTestDriver(t, app)

	assert.Contains(t, d.ViewText(), controller.RoadmapErrorMessage)
	assert.Empty(t, d.roadmap().ctl.Records())

	fake.roadmap = generation.Outcome[domain.RoadmapItem]{Records: testutil.FullYear()}
	d.Press("r")

	text := d.ViewText()
	assert.NotContains(t, text, controller.RoadmapErrorMessage)
	assert.Contains(t, text, "0/12 완료")
}

func TestTUI_Roadmap_ToggleWithSpace(t *testing.T) {
	app, fake := testApp(t)
	d := NewTestDriver(t, app)

	d.Press("down")
	d.Press("space")

	sorted := d.roadmap().ctl.Sorted()
	assert.False(t, sorted[0].Completed)
	assert.True(t, sorted[1].Completed, "February should be toggled")
	assert.Contains(t, d.ViewText(), "1/12 완료")
	assert.Equal(t, 1, fake.roadmapCalls, "toggling must not regenerate")

	d.Press("space")
	assert.False(t, d.roadmap().ctl.Sorted()[1].Completed)
}

func TestTUI_Roadmap_CursorStaysInRange(t *testing.T) {
	app, fake := testApp(t)
	fake.roadmap = generation.Outcome[domain.RoadmapItem]{Records: testutil.RoadmapItems(1, 2)}
	d := NewTestDriver(t, app)

	d.Press("up")
	assert.Equal(t, 0, d.roadmap().cursor)
	d.Press("down", "down", "down")
	assert.Equal(t, 1, d.roadmap().cursor)
}

func TestTUI_Roadmap_TriggerIgnoredWhileLoading(t *testing.T) {
	app, fake := testApp(t)
	d := NewTestDriver(t, app)

	ticket, ok := d.roadmap().ctl.Begin()
	require.True(t, ok)

	d.Press("r")
	assert.Equal(t, 1, fake.roadmapCalls, "r must be ignored while a request is in flight")
	assert.Contains(t, d.ViewText(), "생성 중...")

	d.Send(roadmapLoadedMsg{ticket: ticket, out: generation.Outcome[domain.RoadmapItem]{Records: testutil.RoadmapItems(4)}})
	assert.False(t, d.roadmap().ctl.Loading())
	assert.Len(t, d.roadmap().ctl.Records(), 1)
}

func TestTUI_Roadmap_StaleResponseDropped(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.Send(roadmapLoadedMsg{ticket: "stale", out: failRoadmap(llm.ErrTimeout)})

	assert.Len(t, d.roadmap().ctl.Records(), 12)
	assert.Empty(t, d.roadmap().ctl.ErrorMessage())
}

func TestTUI_TabSwitchAbandonsInFlight(t *testing.T) {
	app, fake := testApp(t)
	d := NewTestDriver(t, app)

	old := d.roadmap()
	ticket, ok := old.ctl.Begin()
	require.True(t, ok)

	d.Press("2")
	assert.False(t, old.ctl.Loading())
	assert.False(t, old.ctl.Complete(ticket, failRoadmap(llm.ErrTimeout)))

	// Coming back mounts a fresh controller that auto-generates again;
	// the abandoned response is dropped.
	d.Press("shift+tab")
	require.Equal(t, ViewRoadmap, d.ActiveViewID())
	assert.Equal(t, 2, fake.roadmapCalls)
	d.Send(roadmapLoadedMsg{ticket: ticket, out: failRoadmap(llm.ErrTimeout)})
	assert.Len(t, d.roadmap().ctl.Records(), 12)
	assert.Empty(t, d.roadmap().ctl.ErrorMessage())
}

// --- invention ---

func TestTUI_Invention_EmptyStateHint(t *testing.T) {
	app, fake := testApp(t)
	d := NewTestDriver(t, app)

	d.Press("2")

	assert.Contains(t, d.ViewText(), formatter.InventionEmptyHint)
	assert.Zero(t, fake.ideasCalls)
}

func TestTUI_Invention_TypeAndGenerate(t *testing.T) {
	app, fake := testApp(t)
	d := NewTestDriver(t, app)

	d.Press("2")
	d.Type("환경 보호")
	d.Press("enter")

	assert.Equal(t, 1, fake.ideasCalls)
	assert.Equal(t, "환경 보호", fake.lastContext)
	assert.Contains(t, d.ViewText(), "총 3 개의 아이디어가 생성되었습니다.")
}

func TestTUI_Invention_BlankContextStillGenerates(t *testing.T) {
	app, fake := testApp(t)
	d := NewTestDriver(t, app)

	d.Press("2")
	d.Press("enter")

	assert.Equal(t, 1, fake.ideasCalls)
	assert.Equal(t, "", fake.lastContext)
}

func TestTUI_Invention_HundredIdeasRenderChips(t *testing.T) {
	app, fake := testApp(t)
	ideas := testutil.InventionIdeas(100)
	fake.ideas = generation.Outcome[domain.InventionIdea]{Records: ideas}
	d := NewTestDriver(t, app)

	d.Press("2")
	d.Press("enter")

	text := d.ViewText()
	assert.Contains(t, text, "총 100 개의 아이디어가 생성되었습니다.")
	assert.Equal(t, 100, strings.Count(text, "실현 가능성:"))

	wantChips := 0
	for _, idea := range ideas {
		wantChips += len(idea.TechStack)
	}
	assert.Equal(t, wantChips, strings.Count(text, "["))
}

func TestTUI_Invention_FailureFallsBackToEmptyState(t *testing.T) {
	app, fake := testApp(t)
	fake.ideas = generation.Outcome[domain.InventionIdea]{Records: []domain.InventionIdea{}, Err: llm.ErrInvalidOutput}
	d := NewTestDriver(t, app)

	d.Press("2")
	d.Press("enter")

	assert.False(t, d.invention().ctl.Loading())
	assert.Contains(t, d.ViewText(), formatter.InventionEmptyHint)
}

func TestTUI_Invention_InputCapturesQ(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.Press("2")
	d.Type("q1")

	assert.False(t, d.IsQuitting())
	assert.Equal(t, ViewInvention, d.ActiveViewID())
	assert.Equal(t, "q1", d.invention().input.Value())

	// Esc releases the input; q quits again.
	d.Press("esc")
	d.Press("q")
	assert.True(t, d.IsQuitting())
}

func TestTUI_Invention_EnterIgnoredWhileLoading(t *testing.T) {
	app, fake := testApp(t)
	d := NewTestDriver(t, app)

	d.Press("2")
	_, ok := d.invention().ctl.Begin()
	require.True(t, ok)

	d.Press("enter")
	assert.Zero(t, fake.ideasCalls)
	assert.Contains(t, d.ViewText(), "생성 중...")
}

// --- study ---

func TestTUI_Study_EmptyStateNamesLevel(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.Press("3")

	text := d.ViewText()
	assert.Contains(t, text, formatter.StudyEmptyTitle)
	assert.Contains(t, text, "선택한 레벨(Beginner)")
	assert.Contains(t, text, "[Beginner]")
}

func TestTUI_Study_LevelSelectionClamps(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)
	d.Press("3")

	d.Press("left")
	assert.Equal(t, domain.DifficultyBeginner, d.study().ctl.Level())

	d.Press("right", "right", "right")
	assert.Equal(t, domain.DifficultyAdvanced, d.study().ctl.Level())

	d.Press("left")
	assert.Equal(t, domain.DifficultyIntermediate, d.study().ctl.Level())
	assert.Contains(t, d.ViewText(), "[Intermediate]")
}

func TestTUI_Study_GenerateAtSelectedLevel(t *testing.T) {
	app, fake := testApp(t)
	d := NewTestDriver(t, app)
	d.Press("3")

	d.Press("right")
	d.Press("enter")

	assert.Equal(t, 1, fake.studyCalls)
	assert.Equal(t, domain.DifficultyIntermediate, fake.lastLevel)
	text := d.ViewText()
	assert.Contains(t, text, "Python 미니 프로젝트")
	assert.Contains(t, text, "#선형대수 기초")
}

func TestTUI_Study_LevelChangeKeepsLoadedResources(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)
	d.Press("3")
	d.Press("enter")

	d.Press("right")

	assert.Len(t, d.study().ctl.Records(), 2)
	assert.Contains(t, d.ViewText(), "Python 미니 프로젝트")
}

func TestTUI_Study_FailureShowsEmptyState(t *testing.T) {
	app, fake := testApp(t)
	fake.study = generation.Outcome[domain.StudyResource]{Records: []domain.StudyResource{}, Err: llm.ErrTimeout}
	d := NewTestDriver(t, app)
	d.Press("3")

	d.Press("enter")

	assert.False(t, d.study().ctl.Loading())
	assert.Contains(t, d.ViewText(), formatter.StudyEmptyTitle)
}
