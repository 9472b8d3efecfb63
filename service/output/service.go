// Package output provides a service for rendering results to the console.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/thirukguru/buildprep/model"
	"github.com/thirukguru/buildprep/service/docclean"
)

// NewService creates a new output service with the specified format.
// When spin is true, StartSpinner shows a progress spinner on stderr.
func NewService(format string, out io.Writer, spin bool) Service {
	f := FormatText
	switch format {
	case "json":
		f = FormatJSON
	case "table":
		f = FormatTable
	}

	return &service{
		format:   f,
		out:      out,
		spinning: spin && f != FormatJSON,
		renderer: &realRenderer{},
	}
}

func (s *service) RenderDocs(results []model.DocResult) error {
	switch s.format {
	case FormatJSON:
		if results == nil {
			results = []model.DocResult{}
		}
		return s.writeJSON(docsDocument{Message: docclean.CompletionMessage, Files: results})
	case FormatTable:
		t := s.newTable()
		t.AppendHeader(table.Row{"File", "Destination", "Bytes Before", "Bytes After", "Copied"})
		for _, r := range results {
			t.AppendRow(table.Row{r.Name, r.Destination, r.BytesBefore, r.BytesAfter, yesNo(!r.CopySkipped)})
		}
		t.Render()
	}

	_, err := fmt.Fprintln(s.out, docclean.CompletionMessage)
	return err
}

func (s *service) RenderSync(result *model.SyncResult) error {
	if s.format == FormatJSON {
		return s.writeJSON(syncDocument{Found: result != nil, SyncResult: result})
	}
	if result == nil {
		return nil
	}

	if s.format == FormatTable {
		t := s.newTable()
		t.SetTitle(fmt.Sprintf("%s (%s)", result.Version, result.Manifest))
		t.AppendHeader(table.Row{"Project File", "Lines Rewritten", "Changed"})
		for _, f := range result.Files {
			changed := yesNo(f.Changed)
			if f.Changed {
				changed = text.FgGreen.Sprint(changed)
			}
			t.AppendRow(table.Row{f.Path, f.LinesRewritten, changed})
		}
		t.Render()
	}

	_, err := fmt.Fprintf(s.out, "Version %s synchronized into %d of %d project file(s).\n",
		result.Version, result.ChangedCount(), len(result.Files))
	return err
}

func (s *service) RenderVersion(info model.VersionInfo) error {
	if s.format == FormatJSON {
		return s.writeJSON(info)
	}
	_, err := fmt.Fprintf(s.out, "buildprep %s (commit %s, built %s)\n", info.Version, info.Commit, info.Date)
	return err
}

func (s *service) StartSpinner(message string) {
	if s.spinning {
		s.renderer.StartSpinner(message)
	}
}

func (s *service) StopSpinner() {
	if s.spinning {
		s.renderer.StopSpinner()
	}
}

func (s *service) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(s.out)
	t.SetStyle(table.StyleRounded)
	return t
}

func (s *service) writeJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(s.out, string(b))
	return err
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
