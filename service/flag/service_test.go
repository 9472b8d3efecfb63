package flag

import (
	"errors"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetParsedFlagsPrepareDefaults(t *testing.T) {
	flags, err := NewService().GetParsedFlags(CommandPrepare, nil)
	require.NoError(t, err)

	assert.Equal(t, CommandPrepare, flags.Command)
	assert.Equal(t, "./../", flags.Root)
	assert.Equal(t, ".", flags.WorkDir)
	assert.Equal(t, "text", flags.Output)
	assert.Equal(t, "warn", flags.LogLevel)
	assert.Equal(t, "text", flags.LogFormat)
	assert.Equal(t, []string{"README.md", "LICENSE.md", "CHANGELOG.md"}, flags.Prepare.Files)
	assert.False(t, flags.Prepare.NoInteractive)
	assert.Empty(t, flags.Set)
}

func TestGetParsedFlagsVersyncDefaults(t *testing.T) {
	flags, err := NewService().GetParsedFlags(CommandVersync, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"manifest.json", "package.json"}, flags.Versync.Manifests)
	assert.Equal(t, ".csproj", flags.Versync.Extension)
	assert.Equal(t, "<Version>", flags.Versync.TagOpen)
	assert.Equal(t, "</Version>", flags.Versync.TagClose)
	assert.False(t, flags.Versync.Watch)
}

func TestGetParsedFlagsAllPrepareOptions(t *testing.T) {
	flags, err := NewService().GetParsedFlags(CommandPrepare, []string{
		"--root", "/src/project",
		"-C", "/src/project/build",
		"--config", "/tmp/buildprep.hcl",
		"--output", "JSON",
		"--log-level", "debug",
		"--log-format", "json",
		"--files", "README.md, NOTICE.md,,",
		"--no-interactive",
	})
	require.NoError(t, err)

	assert.Equal(t, "/src/project", flags.Root)
	assert.Equal(t, "/src/project/build", flags.WorkDir)
	assert.Equal(t, "/tmp/buildprep.hcl", flags.ConfigPath)
	assert.Equal(t, "json", flags.Output)
	assert.Equal(t, "debug", flags.LogLevel)
	assert.Equal(t, "json", flags.LogFormat)
	assert.Equal(t, []string{"README.md", "NOTICE.md"}, flags.Prepare.Files)
	assert.True(t, flags.Prepare.NoInteractive)
	assert.True(t, flags.Changed("root"))
	assert.True(t, flags.Changed("files"))
	assert.False(t, flags.Changed("version"))
}

func TestGetParsedFlagsAllVersyncOptions(t *testing.T) {
	flags, err := NewService().GetParsedFlags(CommandVersync, []string{
		"--manifests", "package.json",
		"--extension", ".fsproj",
		"--tag-open", "<PackageVersion>",
		"--tag-close", "</PackageVersion>",
		"-w",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"package.json"}, flags.Versync.Manifests)
	assert.Equal(t, ".fsproj", flags.Versync.Extension)
	assert.Equal(t, "<PackageVersion>", flags.Versync.TagOpen)
	assert.Equal(t, "</PackageVersion>", flags.Versync.TagClose)
	assert.True(t, flags.Versync.Watch)
	assert.True(t, flags.Changed("extension"))
}

func TestGetParsedFlagsRejectsCrossCommandFlags(t *testing.T) {
	_, err := NewService().GetParsedFlags(CommandPrepare, []string{"--watch"})
	require.Error(t, err)

	_, err = NewService().GetParsedFlags(CommandVersync, []string{"--files", "README.md"})
	require.Error(t, err)
}

func TestGetParsedFlagsValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "bad output", args: []string{"--output", "xml"}},
		{name: "bad log level", args: []string{"--log-level", "trace"}},
		{name: "bad log format", args: []string{"--log-format", "yaml"}},
		{name: "positional args", args: []string{"extra"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewService().GetParsedFlags(CommandVersync, tt.args)
			require.Error(t, err)
		})
	}
}

func TestGetParsedFlagsHelp(t *testing.T) {
	_, err := NewService().GetParsedFlags(CommandVersync, []string{"--help"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, pflag.ErrHelp))
}

func TestGetParsedFlagsUnknownCommand(t *testing.T) {
	_, err := NewService().GetParsedFlags("deploy", nil)
	require.Error(t, err)
}
