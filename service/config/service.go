// Package config loads the optional buildprep.hcl file and merges it
// into the parsed command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/thirukguru/buildprep/model"
)

// DefaultFileName is looked up in the working directory when --config is not given.
const DefaultFileName = "buildprep.hcl"

// NewService creates a new config service.
func NewService() Service {
	return &service{}
}

// Load parses the config file at path. When path is empty the default
// file in workDir is used, and a missing default file yields an empty
// File rather than an error.
func (s *service) Load(workDir, path string) (*File, error) {
	explicit := path != ""
	if !explicit {
		path = filepath.Join(workDir, DefaultFileName)
	}

	if _, err := os.Stat(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("failed to access config file %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}

	return root.toFile(path), nil
}

func (r fileRoot) toFile(path string) *File {
	f := &File{Path: path, Root: r.Root}
	if r.Prepare != nil {
		f.Prepare.Files = r.Prepare.Files
	}
	if r.Versync != nil {
		f.Versync = VersyncSection{
			Manifests: r.Versync.Manifests,
			Extension: r.Versync.Extension,
			TagOpen:   r.Versync.TagOpen,
			TagClose:  r.Versync.TagClose,
		}
	}
	return f
}

// Apply overlays the config file values onto flags. Flags given
// explicitly on the command line keep their value.
func (f *File) Apply(flags model.Flags) model.Flags {
	if f == nil {
		return flags
	}

	if f.Root != "" && !flags.Changed("root") {
		flags.Root = f.Root
	}
	if len(f.Prepare.Files) > 0 && !flags.Changed("files") {
		flags.Prepare.Files = append([]string(nil), f.Prepare.Files...)
	}
	if len(f.Versync.Manifests) > 0 && !flags.Changed("manifests") {
		flags.Versync.Manifests = append([]string(nil), f.Versync.Manifests...)
	}
	if f.Versync.Extension != "" && !flags.Changed("extension") {
		flags.Versync.Extension = f.Versync.Extension
	}
	if f.Versync.TagOpen != "" && !flags.Changed("tag-open") {
		flags.Versync.TagOpen = f.Versync.TagOpen
	}
	if f.Versync.TagClose != "" && !flags.Changed("tag-close") {
		flags.Versync.TagClose = f.Versync.TagClose
	}

	return flags
}
