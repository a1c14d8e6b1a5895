package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/taskloop/internal/model"
)

func newTestTUI(store *fakeStore) tuiModel {
	return newTUIModel(model.Updater{File: "todos.csv"}, store, nil)
}

// stepTUI runs one message through the model and hands back the typed
// model and the scheduled command.
func stepTUI(t *testing.T, m tuiModel, msg tea.Msg) (tuiModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(tuiModel)
	require.True(t, ok)
	return next, cmd
}

func TestTUILoadedMessageUpdatesView(t *testing.T) {
	m := newTestTUI(&fakeStore{})

	m, cmd := stepTUI(t, m, model.LoadedMsg{Items: []model.Todo{model.Active{Name: "buy milk"}}})

	assert.Nil(t, cmd)
	view := m.View()
	assert.Contains(t, view, "1. [active] buy milk")
	assert.Contains(t, view, "[successfully loaded todos from file]")
	assert.Contains(t, view, "q           quit")
}

func TestTUIEnterParsesTheTypedLine(t *testing.T) {
	m := newTestTUI(&fakeStore{})
	m.input.SetValue("a buy milk")

	m, cmd := stepTUI(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Empty(t, m.input.Value(), "input resets after enter")
	assert.Equal(t, model.State(model.Listing{
		List:   []model.Todo{model.Active{Name: "buy milk"}},
		Status: "item added",
	}), m.state)
}

func TestTUISaveRoundTrip(t *testing.T) {
	store := &fakeStore{}
	m := newTestTUI(store)
	m, _ = stepTUI(t, m, model.LoadedMsg{Items: []model.Todo{model.Completed{Name: "buy milk"}}})

	m.input.SetValue("s")
	m, cmd := stepTUI(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd, "save schedules a persist effect")

	// Run the effect the way the tea runtime would, then feed its
	// outcome back through Update.
	result := cmd()
	assert.Equal(t, tea.Msg(model.SavedMsg{}), result)
	assert.Equal(t, "c, buy milk", store.files["todos.csv"])

	m, _ = stepTUI(t, m, result)
	assert.Contains(t, m.View(), "[saved successfully]")
}

func TestTUIInvalidInputShowsError(t *testing.T) {
	m := newTestTUI(&fakeStore{})
	m, _ = stepTUI(t, m, model.LoadedMsg{Items: []model.Todo{model.Active{Name: "buy milk"}}})

	m.input.SetValue("x 3")
	m, _ = stepTUI(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Contains(t, m.View(), "[invalid input]")
	// The list survives inside the failed state.
	assert.Equal(t, []model.Todo{model.Active{Name: "buy milk"}}, m.state.Items())
}

func TestTUIQuit(t *testing.T) {
	m := newTestTUI(&fakeStore{})
	m.input.SetValue("q")

	_, cmd := stepTUI(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Msg(tea.QuitMsg{}), cmd())
}

func TestTUIPerformFetch(t *testing.T) {
	store := &fakeStore{files: map[string]string{"todos.csv": "a, buy milk"}}
	m := newTestTUI(store)

	cmd := m.perform(model.Fetch{File: "todos.csv"})
	require.NotNil(t, cmd)

	assert.Equal(t, tea.Msg(model.LoadedMsg{
		Items: []model.Todo{model.Active{Name: "buy milk"}},
	}), cmd())
}
