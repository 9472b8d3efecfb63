package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/thirukguru/buildprep/model"
	"github.com/thirukguru/buildprep/service/config"
	"github.com/thirukguru/buildprep/service/docclean"
	"github.com/thirukguru/buildprep/service/flag"
	"github.com/thirukguru/buildprep/service/output"
	"github.com/thirukguru/buildprep/service/versync"
	"github.com/thirukguru/buildprep/shared/console"
	"github.com/thirukguru/buildprep/shared/ctxlog"
)

func runCommand(cmd string, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flags, err := flag.NewService().GetParsedFlags(cmd, args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return &ExitError{Code: 2, Message: err.Error()}
	}

	if flags.Version {
		return output.NewService(flags.Output, stdout, false).RenderVersion(versionInfo())
	}

	cfgFile, err := config.NewService().Load(flags.WorkDir, flags.ConfigPath)
	if err != nil {
		return err
	}
	flags = cfgFile.Apply(flags)
	flags.Root = resolveRoot(flags.WorkDir, flags.Root)

	logger := ctxlog.New(flags.LogLevel, flags.LogFormat, stderr)
	if cfgFile.Path != "" {
		logger.Debug("Config file loaded.", "path", cfgFile.Path)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = ctxlog.WithLogger(ctx, logger)

	if flags.Output == string(output.FormatTable) {
		console.EnableColors()
	}
	out := output.NewService(flags.Output, stdout, isTerminal(stderr))

	switch cmd {
	case flag.CommandPrepare:
		promptOut := stdout
		if flags.Output == string(output.FormatJSON) {
			promptOut = stderr
		}
		return runPrepare(ctx, flags, docclean.NewPrompter(stdin, promptOut), out)
	default:
		return runVersync(ctx, flags, out)
	}
}

func runPrepare(ctx context.Context, flags model.Flags, prompter docclean.Prompter, out output.Service) error {
	svc := docclean.NewService(flags.Root, flags.WorkDir)

	results, err := svc.CopyParse(ctx, flags.Prepare.Files)
	if err != nil {
		return err
	}

	if !flags.Prepare.NoInteractive {
		more, err := svc.Interactive(ctx, prompter)
		results = append(results, more...)
		if err != nil {
			return err
		}
	}

	return out.RenderDocs(results)
}

func runVersync(ctx context.Context, flags model.Flags, out output.Service) error {
	logger := ctxlog.FromContext(ctx)
	svc := versync.NewService(versync.Options{
		Root:      flags.Root,
		WorkDir:   flags.WorkDir,
		Manifests: flags.Versync.Manifests,
		Extension: flags.Versync.Extension,
		Tag:       model.TagPair{Open: flags.Versync.TagOpen, Close: flags.Versync.TagClose},
	})

	if flags.Versync.Watch {
		return svc.Watch(ctx, func(res *model.SyncResult, err error) {
			if err != nil {
				logger.Error("Version sync failed.", "error", err)
				return
			}
			if err := out.RenderSync(res); err != nil {
				logger.Error("Failed to render sync result.", "error", err)
			}
		})
	}

	out.StartSpinner("Synchronizing project versions...")
	res, err := svc.Sync(ctx)
	out.StopSpinner()
	if err != nil {
		return err
	}
	return out.RenderSync(res)
}

// resolveRoot makes a relative root relative to the working directory.
func resolveRoot(workDir, root string) string {
	if filepath.IsAbs(root) {
		return filepath.Clean(root)
	}
	return filepath.Join(workDir, root)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && console.IsTerminal(f)
}
