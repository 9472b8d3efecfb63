package docclean

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/thirukguru/buildprep/model"
)

// ParseChoice interprets an answer to ChoicePrompt, case-insensitively.
func ParseChoice(answer string) Choice {
	switch strings.ToUpper(strings.TrimSpace(answer)) {
	case "Y":
		return ChoiceYes
	case "N":
		return ChoiceNo
	default:
		return ChoiceInvalid
	}
}

// Interactive asks for additional files until the user declines or the
// input ends.
func (s *service) Interactive(ctx context.Context, p Prompter) ([]model.DocResult, error) {
	var all []model.DocResult

	state := LoopContinue
	for state == LoopContinue {
		var (
			results []model.DocResult
			err     error
		)
		state, results, err = s.step(ctx, p)
		all = append(all, results...)
		if err != nil {
			return all, err
		}
	}

	return all, nil
}

// step runs one round of the interactive loop.
func (s *service) step(ctx context.Context, p Prompter) (LoopState, []model.DocResult, error) {
	if err := ctx.Err(); err != nil {
		return LoopStop, nil, err
	}

	answer, err := p.Ask(ChoicePrompt)
	if err != nil {
		return stopOnEOF(err)
	}

	switch ParseChoice(answer) {
	case ChoiceNo:
		return LoopStop, nil, nil
	case ChoiceInvalid:
		p.Say(InvalidChoice)
		return LoopContinue, nil, nil
	}

	filename, err := p.Ask(FilenamePrompt)
	if err != nil {
		return stopOnEOF(err)
	}
	filename = strings.TrimSpace(filename)
	if filename == "" {
		p.Say(MissingFilename)
		return LoopContinue, nil, nil
	}

	results, err := s.CopyParse(ctx, []string{filename})
	if err != nil {
		return LoopStop, results, err
	}
	return LoopContinue, results, nil
}

func stopOnEOF(err error) (LoopState, []model.DocResult, error) {
	if errors.Is(err, io.EOF) {
		return LoopStop, nil, nil
	}
	return LoopStop, nil, fmt.Errorf("failed to read answer: %w", err)
}

// NewPrompter returns a Prompter reading lines from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	return &linePrompter{scanner: bufio.NewScanner(in), out: out}
}

type linePrompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func (l *linePrompter) Ask(prompt string) (string, error) {
	fmt.Fprint(l.out, prompt)
	if !l.scanner.Scan() {
		if err := l.scanner.Err(); err != nil {
			return "", err
		}
		fmt.Fprintln(l.out)
		return "", io.EOF
	}
	return strings.TrimRight(l.scanner.Text(), "\r"), nil
}

func (l *linePrompter) Say(message string) {
	fmt.Fprintln(l.out, message)
}
