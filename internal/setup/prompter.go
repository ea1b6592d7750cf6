package setup

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type prompter struct {
	in        *bufio.Reader
	out       io.Writer
	assumeYes bool
}

func newPrompter(in io.Reader, out io.Writer, assumeYes bool) *prompter {
	return &prompter{
		in:        bufio.NewReader(in),
		out:       out,
		assumeYes: assumeYes,
	}
}

// Ask prints the label and returns the trimmed answer, or def when the
// answer is empty, input is exhausted or prompts are disabled.
func (p *prompter) Ask(label, def string) string {
	if p.assumeYes {
		return def
	}

	if def != "" {
		fmt.Fprintf(p.out, "%s (default %s): ", label, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(p.out)
		return def
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return def
	}

	return answer
}
