package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/taskloop/internal/model"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want model.Msg
	}{
		{"q", model.QuitMsg{}},
		{"s", model.SaveMsg{}},
		{"a buy milk", model.AddMsg{Name: "buy milk"}},
		{"a  padded title  ", model.AddMsg{Name: "padded title"}},
		{"d 3", model.DeleteMsg{Index: 2}},
		{"c 1", model.CompleteMsg{Index: 0}},
		{"d 0", model.DeleteMsg{Index: -1}},

		// anything else is invalid input, never an error
		{"", model.InvalidInputMsg{}},
		{"x 3", model.InvalidInputMsg{}},
		{"a", model.InvalidInputMsg{}},
		{"d", model.InvalidInputMsg{}},
		{"d three", model.InvalidInputMsg{}},
		{"c ", model.InvalidInputMsg{}},
		{" q", model.InvalidInputMsg{}},
		{"q ", model.InvalidInputMsg{}},
		{"quit", model.InvalidInputMsg{}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.line))
		})
	}
}
