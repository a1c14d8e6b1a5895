// Package linestore persists the todo list as newline-separated
// records. Single file, human-readable, portable.
package linestore

import (
	"fmt"
	"os"
	"strings"

	"github.com/idilsaglam/taskloop/internal/model"
)

// Encode renders each entry as one "<a|c>, <name>" record. No trailing
// newline.
func Encode(items []model.Todo) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		switch t := it.(type) {
		case model.Active:
			lines = append(lines, "a, "+t.Name)
		case model.Completed:
			lines = append(lines, "c, "+t.Name)
		}
	}
	return strings.Join(lines, "\n")
}

// Decode parses the record format back into a list. Whitespace around
// the separator and both fields is tolerated. Records with an unknown
// tag are dropped; a record missing its second field fails the whole
// decode, never a partial load. Empty input is an empty list.
func Decode(text string) ([]model.Todo, error) {
	items := []model.Todo{}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		tag, name, found := strings.Cut(line, ",")
		if !found {
			return nil, fmt.Errorf("malformed record %q: missing name field", line)
		}
		name = strings.TrimSpace(name)
		switch strings.TrimSpace(tag) {
		case "a":
			items = append(items, model.Active{Name: name})
		case "c":
			items = append(items, model.Completed{Name: name})
		}
	}
	return items, nil
}

// FileStore reads and writes whole files. It satisfies the cli.Store
// port; errors come back as values for the interpreter to fold into
// Loaded/Saved messages.
type FileStore struct{}

func (FileStore) ReadFile(name string) (string, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(b), nil
}

func (FileStore) WriteFile(name, data string) error {
	if err := os.WriteFile(name, []byte(data), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
