// Package flag parses the command-line flags of the buildprep subcommands.
package flag

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/thirukguru/buildprep/model"
)

// NewService creates a new flag service.
func NewService() Service {
	return &service{}
}

// GetParsedFlags parses args for the given subcommand and returns the flags.
// pflag.ErrHelp is returned unchanged when -h/--help was requested.
func (s *service) GetParsedFlags(command string, args []string) (model.Flags, error) {
	if command != CommandPrepare && command != CommandVersync {
		return model.Flags{}, fmt.Errorf("unsupported command: %s", command)
	}

	fs := pflag.NewFlagSet(command, pflag.ContinueOnError)

	root := fs.String("root", DefaultRoot, "Project root directory holding the source documents and manifests")
	workDir := fs.StringP("workdir", "C", ".", "Working directory receiving the results")
	configPath := fs.String("config", "", "Path to a buildprep.hcl config file (default ./buildprep.hcl if present)")
	output := fs.StringP("output", "o", "text", "Output format (text, table, or json)")
	logLevel := fs.String("log-level", "warn", "Log level (debug, info, warn, error)")
	logFormat := fs.String("log-format", "text", "Log format (text or json)")
	version := fs.BoolP("version", "v", false, "Show version information")

	var (
		files         *string
		noInteractive *bool
		manifests     *string
		extension     *string
		tagOpen       *string
		tagClose      *string
		watch         *bool
	)
	switch command {
	case CommandPrepare:
		files = fs.String("files", strings.Join(DefaultFiles, ","), "Comma-separated documents to copy and clean")
		noInteractive = fs.Bool("no-interactive", false, "Do not prompt for additional files")
	case CommandVersync:
		manifests = fs.String("manifests", strings.Join(DefaultManifests, ","), "Comma-separated manifest candidates, first existing wins")
		extension = fs.String("extension", DefaultExtension, "Extension of the project files to update")
		tagOpen = fs.String("tag-open", model.DefaultTagPair.Open, "Opening tag of the version line")
		tagClose = fs.String("tag-close", model.DefaultTagPair.Close, "Closing tag of the version line")
		watch = fs.BoolP("watch", "w", false, "Keep running and re-sync when the manifest changes")
	}

	if err := fs.Parse(args); err != nil {
		return model.Flags{}, err
	}
	if rest := fs.Args(); len(rest) > 0 {
		return model.Flags{}, fmt.Errorf("unexpected arguments: %s", strings.Join(rest, " "))
	}

	set := make(map[string]bool)
	fs.Visit(func(f *pflag.Flag) {
		set[f.Name] = true
	})

	flags := model.Flags{
		Command:    command,
		Root:       *root,
		WorkDir:    *workDir,
		ConfigPath: *configPath,
		Output:     strings.ToLower(*output),
		LogLevel:   strings.ToLower(*logLevel),
		LogFormat:  strings.ToLower(*logFormat),
		Version:    *version,
		Set:        set,
	}

	switch command {
	case CommandPrepare:
		flags.Prepare = model.PrepareFlags{
			Files:         splitList(*files),
			NoInteractive: *noInteractive,
		}
	case CommandVersync:
		flags.Versync = model.VersyncFlags{
			Manifests: splitList(*manifests),
			Extension: *extension,
			TagOpen:   *tagOpen,
			TagClose:  *tagClose,
			Watch:     *watch,
		}
	}

	if err := validate(flags); err != nil {
		return model.Flags{}, err
	}

	return flags, nil
}

func validate(flags model.Flags) error {
	switch flags.Output {
	case "text", "table", "json":
	default:
		return fmt.Errorf("invalid output format %q: must be text, table or json", flags.Output)
	}
	switch flags.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: must be debug, info, warn or error", flags.LogLevel)
	}
	switch flags.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q: must be text or json", flags.LogFormat)
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
