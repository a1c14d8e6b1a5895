package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/taskloop/internal/model"
	"github.com/idilsaglam/taskloop/internal/ui"
)

// tuiModel is the Bubble Tea front end. It holds the core State and a
// text input; Enter runs one line through Parse and Update, and file
// effects become tea.Cmd closures that report back as core messages.
type tuiModel struct {
	state  model.State
	update model.Updater
	store  Store
	input  textinput.Model
	log    *log.Logger
}

func newTUIModel(up model.Updater, store Store, logger *log.Logger) tuiModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "a buy milk"
	ti.CharLimit = 200
	ti.Focus()
	return tuiModel{
		state:  model.Listing{},
		update: up,
		store:  store,
		input:  ti,
		log:    logger,
	}
}

// RunTUI starts the Bubble Tea program. The session begins with the
// same fetch command the plain loop starts with.
func RunTUI(up model.Updater, store Store, logger *log.Logger) error {
	p := tea.NewProgram(newTUIModel(up, store, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m tuiModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.perform(model.Fetch{File: m.update.File}))
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter":
			line := m.input.Value()
			m.input.SetValue("")
			return m.step(Parse(line))
		}
	case model.Msg:
		// Outcomes of file effects flow back here.
		return m.step(msg)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// step feeds one core message through the transition and schedules the
// resulting effect. Quit is recognized on the message value, before
// Update sees it.
func (m tuiModel) step(msg model.Msg) (tea.Model, tea.Cmd) {
	if _, done := msg.(model.QuitMsg); done {
		return m, tea.Quit
	}
	next, cmd := m.update.Update(msg, m.state)
	m.state = next
	if m.log != nil {
		m.log.Debug("transition",
			"msg", fmt.Sprintf("%T", msg),
			"items", len(next.Items()),
			"cmd", fmt.Sprintf("%T", cmd))
	}
	return m, m.perform(cmd)
}

// perform translates a core command into a tea.Cmd. The closure runs
// off the update loop and delivers its message when done.
func (m tuiModel) perform(cmd model.Cmd) tea.Cmd {
	store := m.store
	switch c := cmd.(type) {
	case model.Persist:
		return func() tea.Msg { return persist(store, c) }
	case model.Fetch:
		return func() tea.Msg { return fetch(store, c) }
	}
	return nil
}

func (m tuiModel) View() string {
	var b strings.Builder
	switch st := m.state.(type) {
	case model.Failed:
		b.WriteString(ui.ErrorLine(st.Message))
		b.WriteString("\n")
	case model.Listing:
		for _, ln := range ui.ListLines(st.List) {
			b.WriteString(ln)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		for _, ln := range ui.UsageLines() {
			b.WriteString(ln)
			b.WriteString("\n")
		}
		if st.Status != "" {
			b.WriteString(ui.StatusLine(st.Status))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}
