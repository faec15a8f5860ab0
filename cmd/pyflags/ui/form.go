package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pyflags/internal/args"
)

// SettingsReloadedMsg is sent into the program when the settings file changed
// on disk outside this process.
type SettingsReloadedMsg struct {
	Tokens []string
}

// SaveFunc persists an edited configuration.
type SaveFunc func(args.Configuration) error

// Model is the settings form. It renders one row per Configuration field;
// toggles flip with space, selectors cycle with left/right through their
// domain plus the "default" sentinel. The codec never sees any of this: the
// form hands a Configuration out and takes one in.
type Model struct {
	cfg    args.Configuration
	saved  args.Configuration
	fields []args.FieldSpec

	// workerOptions is the selectable domain for the parallel-worker field,
	// derived from the machine's core count by the caller.
	workerOptions []string

	cursor    int
	status    string
	statusErr bool
	saveFn    SaveFunc

	styles Styles
	keys   KeyMap
	help   help.Model
}

// NewFormModel builds the form over an existing configuration. workerOptions
// should come from args.ProcessCountOptions; saveFn may be nil for a
// read-only form.
func NewFormModel(cfg args.Configuration, workerOptions []string, saveFn SaveFunc) Model {
	return Model{
		cfg:           cfg,
		saved:         cfg,
		fields:        args.Fields(),
		workerOptions: workerOptions,
		saveFn:        saveFn,
		styles:        DefaultStyles(),
		keys:          DefaultKeyMap(),
		help:          help.New(),
	}
}

// WithStyles returns a copy of the model rendering with the given styles,
// e.g. ui.NewStyles(ui.ThemeFor(theme)) for a configured theme preference.
func (m Model) WithStyles(s Styles) Model {
	m.styles = s
	return m
}

// Configuration returns the form's current edit state.
func (m Model) Configuration() args.Configuration {
	return m.cfg
}

// Dirty reports whether the form differs from the last saved state.
func (m Model) Dirty() bool {
	return m.cfg != m.saved
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case SettingsReloadedMsg:
		incoming := args.Decode(msg.Tokens)
		if m.Dirty() {
			m.setStatus("settings changed on disk; keeping unsaved edits", false)
			return m, nil
		}
		m.cfg = incoming
		m.saved = incoming
		m.setStatus("reloaded from disk", false)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.fields)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.adjust(-1)
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.adjust(1)
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			m.adjust(1)
			return m, nil
		case key.Matches(msg, m.keys.Reset):
			m.resetCurrent()
			return m, nil
		case key.Matches(msg, m.keys.Save):
			m.save()
			return m, nil
		}
	}
	return m, nil
}

// adjust moves the focused field by delta steps: toggles flip, selectors
// cycle with wraparound through "default" plus the domain.
func (m *Model) adjust(delta int) {
	f := m.fields[m.cursor]
	var next string
	switch f.Kind {
	case args.FieldBool:
		if f.Value(m.cfg) == "true" {
			next = "false"
		} else {
			next = "true"
		}
	case args.FieldEnum:
		opts := m.optionsFor(f)
		idx := -1
		current := f.Value(m.cfg)
		for i, o := range opts {
			if o == current {
				idx = i
				break
			}
		}
		idx = ((idx+delta)%len(opts) + len(opts)) % len(opts)
		next = opts[idx]
	}
	if err := m.cfg.SetField(f.Name, next); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus("", false)
}

// optionsFor returns the cycle list for a selector: the absent sentinel
// followed by the field's domain.
func (m Model) optionsFor(f args.FieldSpec) []string {
	domain := f.Options
	if f.Name == "numprocesses" {
		domain = m.workerOptions
	}
	return append([]string{""}, domain...)
}

func (m *Model) resetCurrent() {
	f := m.fields[m.cursor]
	value := ""
	if f.Kind == args.FieldBool {
		value = "false"
	}
	if err := m.cfg.SetField(f.Name, value); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus("", false)
}

func (m *Model) save() {
	if m.saveFn == nil {
		m.setStatus("saving is not available", true)
		return
	}
	if err := m.saveFn(m.cfg); err != nil {
		m.setStatus(fmt.Sprintf("save failed: %v", err), true)
		return
	}
	m.saved = m.cfg
	m.setStatus("saved", false)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	title := "pytest arguments"
	if m.Dirty() {
		title += m.styles.Dirty.Render(" *")
	}
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		cursor := "  "
		label := m.styles.Label.Render(fmt.Sprintf("%-26s", f.Label))
		if i == m.cursor {
			cursor = m.styles.Cursor.Render("> ")
			label = m.styles.LabelFocused.Render(fmt.Sprintf("%-26s", f.Label))
		}
		b.WriteString(cursor)
		b.WriteString(label)
		b.WriteString(m.renderValue(f))
		if f.Value(m.cfg) != f.Value(m.saved) {
			b.WriteString(m.styles.Dirty.Render(" *"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	tokens := args.Encode(m.cfg)
	preview := "pytest"
	if len(tokens) > 0 {
		preview += " " + strings.Join(tokens, " ")
	}
	b.WriteString(m.styles.Preview.Render(preview))
	b.WriteString("\n")

	if m.status != "" {
		style := m.styles.Status
		if m.statusErr {
			style = m.styles.Error
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) renderValue(f args.FieldSpec) string {
	v := f.Value(m.cfg)
	switch f.Kind {
	case args.FieldBool:
		if v == "true" {
			return m.styles.Value.Render("on")
		}
		return m.styles.ValueDefault.Render("off")
	default:
		if v == "" {
			return m.styles.ValueDefault.Render("default")
		}
		return m.styles.Value.Render(v)
	}
}
