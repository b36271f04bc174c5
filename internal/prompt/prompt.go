// Package prompt asks the user for the scaffold choices that were not given
// as flags. Prompts are plain numbered menus and y/n questions on a line
// reader so they work in any terminal and are scriptable in tests.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Pankaj72885/create-waskit/internal/registry"
)

// ErrNoInput indicates stdin closed before an answer was given and no default
// was available.
var ErrNoInput = errors.New("no input")

// Prompter reads answers from a line reader and writes questions to a writer.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Prompter on r and w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(r), out: w}
}

// SelectTemplate shows a numbered menu of templates in catalog order. An
// empty answer picks def when it names a listed template.
func (p *Prompter) SelectTemplate(templates []registry.Descriptor, def string) (string, error) {
	if len(templates) == 0 {
		return "", fmt.Errorf("no templates available")
	}

	defIdx := -1
	fmt.Fprintf(p.out, "\nSelect a template:\n")
	for i, d := range templates {
		marker := " "
		if d.ID == def {
			marker = "*"
			defIdx = i
		}
		fmt.Fprintf(p.out, " %s%d) %-20s %s\n", marker, i+1, d.ID, d.Description)
	}
	if defIdx >= 0 {
		fmt.Fprintf(p.out, "Enter number [1-%d] (default %d): ", len(templates), defIdx+1)
	} else {
		fmt.Fprintf(p.out, "Enter number [1-%d]: ", len(templates))
	}

	line, err := p.readLine()
	if err != nil && line == "" {
		if defIdx >= 0 {
			return templates[defIdx].ID, nil
		}
		return "", fmt.Errorf("reading template selection: %w", err)
	}
	if line == "" && defIdx >= 0 {
		return templates[defIdx].ID, nil
	}

	num, convErr := strconv.Atoi(line)
	if convErr != nil || num < 1 || num > len(templates) {
		// Accept the id itself as well as its number.
		for _, d := range templates {
			if d.ID == line {
				return d.ID, nil
			}
		}
		return "", fmt.Errorf("invalid selection %q: choose 1-%d", line, len(templates))
	}
	return templates[num-1].ID, nil
}

// AskDirectory asks for the project directory. An empty answer picks def.
func (p *Prompter) AskDirectory(def string) (string, error) {
	fmt.Fprintf(p.out, "Project directory (%s): ", def)
	line, err := p.readLine()
	if line == "" {
		if err != nil && def == "" {
			return "", fmt.Errorf("reading project directory: %w", err)
		}
		return def, nil
	}
	return line, nil
}

// Confirm asks a yes/no question. An empty answer or closed input picks def.
// Anything other than y/yes/n/no is asked again.
func (p *Prompter) Confirm(question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		fmt.Fprintf(p.out, "%s [%s]: ", question, hint)
		line, err := p.readLine()
		switch strings.ToLower(line) {
		case "":
			if err != nil && !errors.Is(err, io.EOF) {
				return false, fmt.Errorf("reading answer: %w", err)
			}
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if err != nil {
			return def, nil
		}
		fmt.Fprintf(p.out, "Please answer y or n.\n")
	}
}

// ConfirmOverwrite asks whether an existing target may be written into.
// It defaults to no.
func (p *Prompter) ConfirmOverwrite(target string) (bool, error) {
	return p.Confirm(fmt.Sprintf("Target directory %q already exists. Overwrite files in it?", target), false)
}

// AskCSSFramework asks whether to keep the CSS framework. It defaults to yes.
func (p *Prompter) AskCSSFramework(name string) (bool, error) {
	return p.Confirm(fmt.Sprintf("Include %s?", name), true)
}

// readLine returns the trimmed next line. At end of input it returns the
// partial line (possibly empty) along with io.EOF.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return line, fmt.Errorf("%w: %w", ErrNoInput, io.EOF)
		}
		return line, err
	}
	return line, nil
}
