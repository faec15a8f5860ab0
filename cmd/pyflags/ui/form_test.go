package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pyflags/internal/args"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok, "model type changed")
	}
	return m
}

func fieldIndex(t *testing.T, name string) int {
	t.Helper()
	for i, f := range args.Fields() {
		if f.Name == name {
			return i
		}
	}
	t.Fatalf("no field named %s", name)
	return -1
}

func moveTo(t *testing.T, m Model, name string) Model {
	t.Helper()
	for i := 0; i < fieldIndex(t, name); i++ {
		m = update(t, m, keyMsg("down"))
	}
	return m
}

func newTestModel(save SaveFunc) Model {
	return NewFormModel(args.Configuration{}, args.ProcessCountOptions(4), save)
}

func TestCycleEnumField(t *testing.T) {
	m := newTestModel(nil)

	// First field is the traceback selector; default -> auto -> long.
	m = update(t, m, keyMsg("right"))
	assert.Equal(t, args.TracebackAuto, m.Configuration().TracebackStyle)
	m = update(t, m, keyMsg("right"))
	assert.Equal(t, args.TracebackLong, m.Configuration().TracebackStyle)

	// Cycling back twice lands on the absent sentinel again.
	m = update(t, m, keyMsg("left"), keyMsg("left"))
	assert.Equal(t, args.TracebackDefault, m.Configuration().TracebackStyle)
	assert.False(t, m.Dirty())
}

func TestToggleBoolField(t *testing.T) {
	m := moveTo(t, newTestModel(nil), "headed")

	m = update(t, m, keyMsg("space"))
	assert.True(t, m.Configuration().ShowBrowser)
	assert.True(t, m.Dirty())

	m = update(t, m, keyMsg("space"))
	assert.False(t, m.Configuration().ShowBrowser)
	assert.False(t, m.Dirty())
}

func TestWorkerFieldUsesDerivedOptions(t *testing.T) {
	m := moveTo(t, newTestModel(nil), "numprocesses")

	m = update(t, m, keyMsg("right"))
	assert.Equal(t, "auto", m.Configuration().NumProcesses)

	// auto is followed by 1..coreCount, then wraps to default.
	m = update(t, m, keyMsg("right"), keyMsg("right"), keyMsg("right"), keyMsg("right"))
	assert.Equal(t, "4", m.Configuration().NumProcesses)
	m = update(t, m, keyMsg("right"))
	assert.Empty(t, m.Configuration().NumProcesses)
}

func TestResetField(t *testing.T) {
	m := moveTo(t, newTestModel(nil), "verbosity")
	m = update(t, m, keyMsg("right"), keyMsg("right"))
	assert.Equal(t, args.VerbosityVerbose, m.Configuration().Verbosity)

	m = update(t, m, keyMsg("r"))
	assert.Equal(t, args.VerbosityDefault, m.Configuration().Verbosity)
}

func TestSaveInvokesCallback(t *testing.T) {
	var saved *args.Configuration
	m := newTestModel(func(c args.Configuration) error {
		saved = &c
		return nil
	})
	m = update(t, m, keyMsg("right"), keyMsg("s"))

	require.NotNil(t, saved)
	assert.Equal(t, args.TracebackAuto, saved.TracebackStyle)
	assert.False(t, m.Dirty(), "save clears the dirty state")
}

func TestSaveErrorKeepsDirtyState(t *testing.T) {
	m := newTestModel(func(args.Configuration) error {
		return errors.New("disk full")
	})
	m = update(t, m, keyMsg("right"), keyMsg("s"))
	assert.True(t, m.Dirty())
	assert.Contains(t, m.View(), "disk full")
}

func TestExternalReloadWhenClean(t *testing.T) {
	m := newTestModel(nil)
	m = update(t, m, SettingsReloadedMsg{Tokens: []string{"--tb=short", "-s"}})

	cfg := m.Configuration()
	assert.Equal(t, args.TracebackShort, cfg.TracebackStyle)
	assert.True(t, cfg.CaptureOutput)
	assert.False(t, m.Dirty())
}

func TestExternalReloadKeepsUnsavedEdits(t *testing.T) {
	m := newTestModel(nil)
	m = update(t, m, keyMsg("right")) // dirty: traceback=auto
	m = update(t, m, SettingsReloadedMsg{Tokens: []string{"--tb=short"}})

	assert.Equal(t, args.TracebackAuto, m.Configuration().TracebackStyle)
	assert.True(t, m.Dirty())
}

func TestViewShowsCommandPreview(t *testing.T) {
	m := newTestModel(nil)
	assert.Contains(t, m.View(), "pytest")

	m = update(t, m, keyMsg("right"))
	assert.Contains(t, m.View(), "--tb=auto")
}

func TestWithStylesAppliesConfiguredTheme(t *testing.T) {
	styles := NewStyles(DarkTheme())
	m := newTestModel(nil).WithStyles(styles)
	assert.Equal(t, styles, m.styles)

	// Styles survive updates; the model copy keeps the configured theme.
	m = update(t, m, keyMsg("down"))
	assert.Equal(t, styles, m.styles)
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(nil)
	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
