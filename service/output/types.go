package output

import (
	"io"

	"github.com/thirukguru/buildprep/model"
	"github.com/thirukguru/buildprep/shared/spinner"
)

// Format represents the output format type
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// Renderer defines the interface for progress feedback
type Renderer interface {
	StartSpinner(message string)
	StopSpinner()
}

type realRenderer struct{}

func (r *realRenderer) StartSpinner(message string) {
	spinner.StartSpinner(message)
}

func (r *realRenderer) StopSpinner() {
	spinner.StopSpinner()
}

// service is the internal implementation
type service struct {
	format   Format
	out      io.Writer
	spinning bool
	renderer Renderer
}

// Service defines the interface for output operations
type Service interface {
	RenderDocs(results []model.DocResult) error
	RenderSync(result *model.SyncResult) error
	RenderVersion(info model.VersionInfo) error
	StartSpinner(message string)
	StopSpinner()
}

// syncDocument is the JSON shape of a sync run; Found is false when no
// manifest or version was available.
type syncDocument struct {
	Found bool `json:"found"`
	*model.SyncResult
}

type docsDocument struct {
	Message string            `json:"message"`
	Files   []model.DocResult `json:"files"`
}
