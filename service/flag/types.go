package flag

import "github.com/thirukguru/buildprep/model"

const (
	CommandPrepare = "prepare"
	CommandVersync = "versync"
)

// Default values shared by the flag set and the config overlay.
var (
	DefaultRoot      = "./../"
	DefaultFiles     = []string{"README.md", "LICENSE.md", "CHANGELOG.md"}
	DefaultManifests = []string{"manifest.json", "package.json"}
	DefaultExtension = ".csproj"
)

type service struct{}

// Service is the interface for CLI flag service.
type Service interface {
	GetParsedFlags(command string, args []string) (model.Flags, error)
}
