// vfsh is a shell over an in-memory mirror of a directory tree.
//
// Usage:
//
//	vfsh [options]
//
// Options:
//
//	-vfs dir        Directory to mirror into the VFS
//	-script file    Startup script to run before the interactive prompt
//	-config file    TOML configuration file
//	-v              Verbose (debug) logging on stderr
//	-no-color       Disable colored output
//
// When stdin is not a terminal and no script is given, stdin is run as a
// script.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"vfsh/pkg/config"
	"vfsh/pkg/logging"
	"vfsh/pkg/shell"
)

func main() {
	vfsPath := flag.String("vfs", "", "Path to the physical location of the VFS (directory)")
	scriptPath := flag.String("script", "", "Path to startup script with commands")
	configPath := flag.String("config", "", "Path to TOML configuration file")
	verbose := flag.Bool("v", false, "Verbose mode")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vfsh: %s\n", err)
		os.Exit(1)
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *noColor {
		cfg.Color = false
	}

	if err := logging.Init(cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "vfsh: %s\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	logging.Info("starting",
		logging.String("vfs", *vfsPath),
		logging.String("script", *scriptPath),
		logging.Bool("color", cfg.Color),
	)

	session, err := newSession(*vfsPath, cfg)
	if err != nil {
		logging.Error("loading VFS failed", logging.String("vfs", *vfsPath), logging.Err(err))
		fmt.Fprintf(os.Stderr, "vfsh: %s\n", err)
		os.Exit(1)
	}

	var script io.Reader
	if *scriptPath == "" && !term.IsTerminal(int(os.Stdin.Fd())) {
		script = os.Stdin
	}

	t := NewTerminal(session, os.Stdin, os.Stdout, cfg)
	if err := run(t, *scriptPath, script); err != nil {
		logging.Error("session aborted", logging.Err(err))
		fmt.Fprintf(os.Stderr, "vfsh: %s\n", err)
		os.Exit(1)
	}
}

// newSession loads the VFS, or returns a session without one when no
// directory is given.
func newSession(vfsPath string, cfg *config.Config) (*shell.Session, error) {
	if vfsPath == "" {
		logging.Warn("no VFS directory given")
		return shell.NewSession(nil, shell.WithTailLines(cfg.TailLines)), nil
	}
	return shell.Load(vfsPath, shell.WithTailLines(cfg.TailLines))
}

// run prints the banner, runs the startup script if any, and then reads
// commands interactively until exit.
func run(t *Terminal, scriptPath string, script io.Reader) error {
	t.Banner()

	switch {
	case scriptPath != "":
		t.RunScriptFile(scriptPath)
	case script != nil:
		t.RunScript(script, "stdin")
	}

	if t.Session.Exited() {
		fmt.Fprint(t.Out, t.Prompt)
		return nil
	}
	return t.Run()
}
