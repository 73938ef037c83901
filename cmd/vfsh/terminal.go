package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"vfsh/pkg/config"
	"vfsh/pkg/shell"
)

// Terminal drives a session from a text stream. It implements
// shell.Printer for scripted runs.
type Terminal struct {
	Session    *shell.Session
	In         io.Reader
	Out        io.Writer
	Prompt     string
	EchoPrefix string

	errColor  *color.Color
	echoColor *color.Color
}

// NewTerminal creates a Terminal for s.
func NewTerminal(s *shell.Session, in io.Reader, out io.Writer, cfg *config.Config) *Terminal {
	t := &Terminal{
		Session:    s,
		In:         in,
		Out:        out,
		Prompt:     cfg.Prompt,
		EchoPrefix: cfg.EchoPrefix,
		errColor:   color.New(color.FgRed),
		echoColor:  color.New(color.FgCyan),
	}
	if !cfg.Color {
		t.errColor.DisableColor()
		t.echoColor.DisableColor()
	}
	return t
}

// Banner prints the startup message.
func (t *Terminal) Banner() {
	fmt.Fprintln(t.Out, "Shell Emulator started.")
	fmt.Fprintln(t.Out, "Type commands like 'ls', 'cd', or 'exit'.")
	if !t.Session.Loaded() {
		t.errColor.Fprintln(t.Out, "Warning: no VFS loaded; only pwd, help and exit are available.")
	}
	fmt.Fprintln(t.Out)
}

// Echo implements shell.Printer.
func (t *Terminal) Echo(line string) {
	t.echoColor.Fprintln(t.Out, t.EchoPrefix+line)
}

// Print implements shell.Printer.
func (t *Terminal) Print(res shell.Result) {
	for _, line := range res.Lines {
		if res.Err != nil {
			t.errColor.Fprintln(t.Out, line)
		} else {
			fmt.Fprintln(t.Out, line)
		}
	}
}

// RunScriptFile runs the startup script at path. Failures to open or read
// the script are reported, not returned.
func (t *Terminal) RunScriptFile(path string) {
	f, err := shell.OpenScript(path)
	if err != nil {
		t.reportScriptError(path, err)
		return
	}
	defer f.Close()

	fmt.Fprintf(t.Out, "Loading startup script: %s\n", path)
	t.RunScript(f, path)
}

// RunScript runs a script read from r.
func (t *Terminal) RunScript(r io.Reader, name string) {
	err := t.Session.RunScript(r, t)
	t.reportScriptError(name, err)
}

func (t *Terminal) reportScriptError(name string, err error) {
	switch {
	case err == nil:
	case errors.Is(err, shell.ErrScriptNotFound):
		t.errColor.Fprintf(t.Out, "Error: Script file not found: %s\n", name)
	default:
		t.errColor.Fprintf(t.Out, "Error reading script: %s\n", err)
	}
}

// Run reads commands until exit or end of input, printing a prompt before
// each one.
func (t *Terminal) Run() error {
	scanner := shell.NewLineScanner(t.In)
	for !t.Session.Exited() {
		fmt.Fprint(t.Out, t.Prompt)

		if !scanner.Scan() {
			fmt.Fprintln(t.Out)
			return scanner.Err()
		}

		t.Print(t.Session.Execute(scanner.Text()))
	}
	return nil
}
