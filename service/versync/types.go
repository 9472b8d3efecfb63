package versync

import (
	"context"
	"errors"

	"github.com/thirukguru/buildprep/model"
)

// Indent prefixes every rewritten version line.
const Indent = "    "

// ErrUnsupportedVersion is returned when the manifest version is neither a string nor a number.
var ErrUnsupportedVersion = errors.New("unsupported version value")

// Options configures a synchronizer.
type Options struct {
	Root      string
	WorkDir   string
	Manifests []string
	Extension string
	Tag       model.TagPair
}

type service struct {
	opts Options
}

// Service is the interface for the version synchronizer.
type Service interface {
	// Sync copies the manifest version into the project files. It returns
	// nil and no error when no manifest, or no version in it, was found.
	Sync(ctx context.Context) (*model.SyncResult, error)
	// Watch re-runs Sync whenever a manifest candidate changes, until ctx is done.
	Watch(ctx context.Context, onSync func(*model.SyncResult, error)) error
}
