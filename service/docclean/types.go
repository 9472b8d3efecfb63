package docclean

import (
	"context"

	"github.com/thirukguru/buildprep/model"
)

// Prompts and messages of the interactive loop.
const (
	ChoicePrompt      = "Do you want to clone and parse other files? (Y/N): "
	FilenamePrompt    = "Enter filename of the file to clone (with extension): "
	InvalidChoice     = "Invalid choice."
	MissingFilename   = "No filename entered."
	CompletionMessage = "Files copied and parsed successfully into the source directory of project."
)

// Choice is the parsed answer to ChoicePrompt.
type Choice int

const (
	ChoiceInvalid Choice = iota
	ChoiceYes
	ChoiceNo
)

// LoopState tells the interactive loop whether to ask again.
type LoopState int

const (
	LoopContinue LoopState = iota
	LoopStop
)

// Prompter reads answers from the user. Ask returns io.EOF once input is exhausted.
type Prompter interface {
	Ask(prompt string) (string, error)
	Say(message string)
}

type service struct {
	root    string
	workDir string
}

// Service is the interface for the document copier.
type Service interface {
	CopyParse(ctx context.Context, files []string) ([]model.DocResult, error)
	RemoveHTML(path string) (before, after int, err error)
	Interactive(ctx context.Context, p Prompter) ([]model.DocResult, error)
}
