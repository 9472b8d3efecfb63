package model

// DocResult is the outcome of copying and cleaning one document.
type DocResult struct {
	Name        string `json:"name"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	CopySkipped bool   `json:"copy_skipped,omitempty"`
	BytesBefore int    `json:"bytes_before"`
	BytesAfter  int    `json:"bytes_after"`
}

// ProjectFileResult is the outcome of rewriting one project file.
type ProjectFileResult struct {
	Path           string `json:"path"`
	LinesRewritten int    `json:"lines_rewritten"`
	Changed        bool   `json:"changed"`
}

// SyncResult is the outcome of a version synchronization run.
// A nil *SyncResult means no manifest was found.
type SyncResult struct {
	Manifest string              `json:"manifest"`
	Version  string              `json:"version"`
	Semver   bool                `json:"semver"`
	Files    []ProjectFileResult `json:"files"`
}

// ChangedCount returns the number of project files whose content changed.
func (r *SyncResult) ChangedCount() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, f := range r.Files {
		if f.Changed {
			n++
		}
	}
	return n
}
