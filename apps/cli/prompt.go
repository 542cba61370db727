package cli

import (
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"
)

// errQuit ends the session: Ctrl-C, Ctrl-D or end of input.
var errQuit = errors.New("quit")

// Prompter reads one line of user input per call.
type Prompter interface {
	Prompt(label string) (string, error)
	PasswordPrompt(label string) (string, error)
	Close() error
}

type linerPrompter struct {
	state *liner.State
}

var _ Prompter = (*linerPrompter)(nil) // interface compliance check

func newLinerPrompter() *linerPrompter {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return &linerPrompter{state: state}
}

func (p *linerPrompter) Prompt(label string) (string, error) {
	line, err := p.state.Prompt(label)
	if err != nil {
		return "", quitOn(err)
	}
	if strings.TrimSpace(line) != "" {
		p.state.AppendHistory(line)
	}
	return line, nil
}

func (p *linerPrompter) PasswordPrompt(label string) (string, error) {
	pwd, err := p.state.PasswordPrompt(label)
	if err != nil {
		return "", quitOn(err)
	}
	return pwd, nil
}

func (p *linerPrompter) Close() error {
	return p.state.Close()
}

func quitOn(err error) error {
	if err == io.EOF || err == liner.ErrPromptAborted {
		return errQuit
	}
	return errors.Wrap(err, "reading input")
}
