package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/learnstack/demo-console/internal/core/ports"
)

// PromptConfirmer asks for confirmation on the terminal. Anything other than
// y/yes declines.
type PromptConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

var _ ports.Confirmer = (*PromptConfirmer)(nil)

func NewPromptConfirmer(in io.Reader, out io.Writer) *PromptConfirmer {
	return &PromptConfirmer{in: bufio.NewReader(in), out: out}
}

func (c *PromptConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(c.out, "%s [y/N] ", prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
