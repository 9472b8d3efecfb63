package model

// TagPair is the pair of literal markers delimiting the version value
// inside a project file line.
type TagPair struct {
	Open  string
	Close string
}

// DefaultTagPair matches MSBuild project files.
var DefaultTagPair = TagPair{Open: "<Version>", Close: "</Version>"}

// Render returns the tagged value without indentation.
func (t TagPair) Render(value string) string {
	return t.Open + value + t.Close
}
