package cli

import (
	"testing"

	"github.com/jangyunsu11/UniversityPrepApp/internal/teatest"
)

// TestDriver wraps teatest.Driver with inspection methods for the
// appModel internals (mounted view, controllers) the generic driver
// can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App.
// It constructs the appModel, sets terminal size, and drains Init()
// (which runs the roadmap auto-generation against the fake service).
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the mounted view.
func (d *TestDriver) ActiveViewID() ViewID {
	return d.appModel().view.ID()
}

// ActiveView returns the mounted view.
func (d *TestDriver) ActiveView() View {
	return d.appModel().view
}

// ViewText returns the mounted view's full output, unclipped by the
// content viewport and without styling.
func (d *TestDriver) ViewText() string {
	return stripANSI(d.ActiveView().View())
}

// Screen returns the full rendered screen without styling.
func (d *TestDriver) Screen() string {
	return stripANSI(d.View())
}

// IsQuitting reports whether the program asked to exit.
func (d *TestDriver) IsQuitting() bool {
	return d.Quitting || d.appModel().quitting
}

func (d *TestDriver) roadmap() *roadmapView {
	d.T.Helper()
	v, ok := d.ActiveView().(*roadmapView)
	if !ok {
		d.T.Fatalf("active view is %T, not *roadmapView", d.ActiveView())
	}
	return v
}

func (d *TestDriver) invention() *inventionView {
	d.T.Helper()
	v, ok := d.ActiveView().(*inventionView)
	if !ok {
		d.T.Fatalf("active view is %T, not *inventionView", d.ActiveView())
	}
	return v
}

func (d *TestDriver) study() *studyView {
	d.T.Helper()
	v, ok := d.ActiveView().(*studyView)
	if !ok {
		d.T.Fatalf("active view is %T, not *studyView", d.ActiveView())
	}
	return v
}
