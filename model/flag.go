package model

// Flags holds the options shared by both subcommands after defaults,
// config file values and command-line flags have been merged.
type Flags struct {
	Command    string
	Root       string
	WorkDir    string
	ConfigPath string
	Output     string
	LogLevel   string
	LogFormat  string
	Version    bool
	Set        map[string]bool

	Prepare PrepareFlags
	Versync VersyncFlags
}

// PrepareFlags are the options of the document copier.
type PrepareFlags struct {
	Files         []string
	NoInteractive bool
}

// VersyncFlags are the options of the version synchronizer.
type VersyncFlags struct {
	Manifests []string
	Extension string
	TagOpen   string
	TagClose  string
	Watch     bool
}

// Changed reports whether the named flag was given explicitly on the command line.
func (f Flags) Changed(name string) bool {
	return f.Set[name]
}
