// Package spinner shows a progress indicator on stderr while a
// non-interactive command runs.
package spinner

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

var loader *spinner.Spinner

// StartSpinner starts the CLI loading spinner with the given message.
func StartSpinner(message string) {
	StopSpinner()
	loader = spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	loader.Color("yellow") //nolint:errcheck
	loader.Suffix = " " + message
	loader.Start()
}

// StopSpinner stops the CLI loading spinner.
func StopSpinner() {
	if loader != nil {
		loader.Stop()
		loader = nil
	}
}
