// internal/cli/confirm.go
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// StdinConfirmer blocks on a y/n line for destructive operations.
// Anything other than y/yes counts as a decline.
type StdinConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func NewStdinConfirmer(in io.Reader, out io.Writer) *StdinConfirmer {
	return &StdinConfirmer{in: bufio.NewReader(in), out: out}
}

func (c *StdinConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(c.out, "%s [y/N]: ", prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
