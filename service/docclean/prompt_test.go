package docclean

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChoice(t *testing.T) {
	tests := []struct {
		in   string
		want Choice
	}{
		{"y", ChoiceYes},
		{"Y", ChoiceYes},
		{" y ", ChoiceYes},
		{"n", ChoiceNo},
		{"N", ChoiceNo},
		{"maybe", ChoiceInvalid},
		{"yes", ChoiceInvalid},
		{"", ChoiceInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseChoice(tt.in))
		})
	}
}

func runInteractive(t *testing.T, l layout, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	_, err := NewService(l.root, l.work).Interactive(context.Background(), NewPrompter(strings.NewReader(input), &out))
	return out.String(), err
}

func TestInteractiveAcceptsAllCases(t *testing.T) {
	for _, yes := range []string{"y", "Y"} {
		for _, no := range []string{"n", "N"} {
			t.Run(yes+no, func(t *testing.T) {
				l := newLayout(t, map[string]string{"NOTICE.md": "<b>notice</b>"})
				out, err := runInteractive(t, l, yes+"\nNOTICE.md\n"+no+"\n")
				require.NoError(t, err)
				assert.NotContains(t, out, InvalidChoice)
				assert.Equal(t, 2, strings.Count(out, ChoicePrompt))
				assert.Equal(t, "notice", readFile(t, filepath.Join(l.work, "NOTICE.md")))
			})
		}
	}
}

func TestInteractiveInvalidChoiceReprompts(t *testing.T) {
	l := newLayout(t, nil)
	out, err := runInteractive(t, l, "maybe\nN\n")
	require.NoError(t, err)
	assert.Contains(t, out, InvalidChoice+"\n")
	assert.Equal(t, 2, strings.Count(out, ChoicePrompt))
	assert.NotContains(t, out, FilenamePrompt)
}

func TestInteractiveEmptyFilenameReprompts(t *testing.T) {
	l := newLayout(t, nil)
	out, err := runInteractive(t, l, "y\n\nn\n")
	require.NoError(t, err)
	assert.Contains(t, out, MissingFilename)
	assert.Equal(t, 2, strings.Count(out, ChoicePrompt))
}

func TestInteractiveStopsOnEOF(t *testing.T) {
	l := newLayout(t, nil)
	out, err := runInteractive(t, l, "maybe\n")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, ChoicePrompt))
}

func TestInteractiveMissingFileAborts(t *testing.T) {
	l := newLayout(t, nil)
	_, err := runInteractive(t, l, "y\nGHOST.md\nn\n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestInteractiveCollectsResults(t *testing.T) {
	l := newLayout(t, map[string]string{"A.md": "a", "B.md": "b"})
	var out bytes.Buffer
	results, err := NewService(l.root, l.work).Interactive(context.Background(),
		NewPrompter(strings.NewReader("y\nA.md\nY\nB.md\nN\n"), &out))
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "A.md", results[0].Name)
	assert.Equal(t, "B.md", results[1].Name)

	_, statErr := os.Stat(filepath.Join(l.work, "B.md"))
	assert.NoError(t, statErr)
}
