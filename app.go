// Package main is the entry point for the buildprep application.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/thirukguru/buildprep/model"
	"github.com/thirukguru/buildprep/service/flag"
	"github.com/thirukguru/buildprep/service/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const usage = `buildprep - prepares a project directory for building.

Usage:
  buildprep prepare [flags]   copy README/LICENSE/CHANGELOG here and strip their HTML
  buildprep versync [flags]   write the manifest version into the project files
  buildprep --version

Run "buildprep <command> --help" for the flags of a command.
`

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		code := 1
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.Code
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(code)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return &ExitError{Code: 2, Message: "missing command"}
	}

	switch args[0] {
	case "-h", "--help", "help":
		fmt.Fprint(stdout, usage)
		return nil
	case "-v", "--version", "version":
		return output.NewService("text", stdout, false).RenderVersion(versionInfo())
	case flag.CommandPrepare, flag.CommandVersync:
		return runCommand(args[0], args[1:], stdin, stdout, stderr)
	default:
		fmt.Fprint(stderr, usage)
		return &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q", args[0])}
	}
}

func versionInfo() model.VersionInfo {
	return model.VersionInfo{Version: version, Commit: commit, Date: date}
}
