// Package htmlstrip extracts the plain text content of an HTML or
// HTML-flavoured Markdown document.
package htmlstrip

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Text returns the text nodes of r concatenated in document order.
// Tags, comments and doctypes are dropped, character references are
// decoded, and the bodies of script and style elements are skipped.
// Input that is not well-formed HTML is not an error: whatever text the
// tokenizer recovers is returned.
func Text(r io.Reader) (string, error) {
	z := html.NewTokenizer(r)

	var (
		b    strings.Builder
		skip string
	)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return b.String(), nil
			}
			return b.String(), z.Err()
		case html.TextToken:
			if skip == "" {
				b.Write(z.Text())
			}
		case html.StartTagToken:
			name, _ := z.TagName()
			if !isHidden(string(name)) {
				// only script and style bodies are raw text
				z.NextIsNotRawText()
			} else if skip == "" {
				skip = string(name)
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if skip != "" && string(name) == skip {
				skip = ""
			}
		}
	}
}

// String is Text for in-memory content.
func String(s string) string {
	out, _ := Text(strings.NewReader(s))
	return out
}

func isHidden(tag string) bool {
	return tag == "script" || tag == "style"
}
