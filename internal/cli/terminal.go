package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// StdioTerminal is the production Terminal: buffered stdin reads,
// unbuffered stdout writes.
type StdioTerminal struct {
	in  *bufio.Reader
	out io.Writer
}

func NewStdioTerminal() *StdioTerminal {
	return &StdioTerminal{in: bufio.NewReader(os.Stdin), out: os.Stdout}
}

func (t *StdioTerminal) WriteString(s string) error {
	_, err := io.WriteString(t.out, s)
	return err
}

func (t *StdioTerminal) WriteLine(s string) error {
	_, err := fmt.Fprintln(t.out, s)
	return err
}

// ReadLine blocks for one line and strips the newline. A final line
// without a newline still counts; reporting EOF waits until there is
// nothing left.
func (t *StdioTerminal) ReadLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
