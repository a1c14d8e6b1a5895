package cli

import (
	"strconv"
	"strings"

	"github.com/idilsaglam/taskloop/internal/model"
)

// Parse turns one raw line into a message. It is total: anything it
// cannot read becomes InvalidInputMsg, never an error. User-typed
// indexes are 1-based; the messages carry them 0-based.
func Parse(line string) model.Msg {
	switch line {
	case "q":
		return model.QuitMsg{}
	case "s":
		return model.SaveMsg{}
	}

	cmd, value, found := strings.Cut(line, " ")
	if !found {
		return model.InvalidInputMsg{}
	}
	cmd = strings.TrimSpace(cmd)
	value = strings.TrimSpace(value)

	switch cmd {
	case "a":
		return model.AddMsg{Name: value}
	case "d":
		n, err := strconv.Atoi(value)
		if err != nil {
			return model.InvalidInputMsg{}
		}
		return model.DeleteMsg{Index: n - 1}
	case "c":
		n, err := strconv.Atoi(value)
		if err != nil {
			return model.InvalidInputMsg{}
		}
		return model.CompleteMsg{Index: n - 1}
	}
	return model.InvalidInputMsg{}
}
