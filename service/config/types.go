package config

// File is the decoded content of a buildprep.hcl file. Zero values mean
// "not set".
type File struct {
	Path    string
	Root    string
	Prepare PrepareSection
	Versync VersyncSection
}

// PrepareSection configures the document copier.
type PrepareSection struct {
	Files []string
}

// VersyncSection configures the version synchronizer.
type VersyncSection struct {
	Manifests []string
	Extension string
	TagOpen   string
	TagClose  string
}

type fileRoot struct {
	Root    string        `hcl:"root,optional"`
	Prepare *prepareBlock `hcl:"prepare,block"`
	Versync *versyncBlock `hcl:"versync,block"`
}

type prepareBlock struct {
	Files []string `hcl:"files,optional"`
}

type versyncBlock struct {
	Manifests []string `hcl:"manifests,optional"`
	Extension string   `hcl:"extension,optional"`
	TagOpen   string   `hcl:"tag_open,optional"`
	TagClose  string   `hcl:"tag_close,optional"`
}

type service struct{}

// Service is the interface for config file loading.
type Service interface {
	Load(workDir, path string) (*File, error)
}
