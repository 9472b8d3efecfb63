// Package versync keeps the version line of project files in step with
// the version field of the project manifest.
package versync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver"
	"github.com/thirukguru/buildprep/model"
	"github.com/thirukguru/buildprep/shared/ctxlog"
)

// NewService creates a version synchronizer.
func NewService(opts Options) Service {
	if opts.Tag == (model.TagPair{}) {
		opts.Tag = model.DefaultTagPair
	}
	return &service{opts: opts}
}

func (s *service) Sync(ctx context.Context) (*model.SyncResult, error) {
	logger := ctxlog.FromContext(ctx)

	manifest, found, err := FindManifest(s.opts.Root, s.opts.Manifests)
	if err != nil {
		return nil, err
	}
	if !found {
		logger.Warn("No manifest found, nothing to update.", "root", s.opts.Root, "candidates", s.opts.Manifests)
		return nil, nil
	}

	version, ok, err := ReadVersion(manifest)
	if err != nil {
		return nil, err
	}
	if !ok {
		logger.Warn("Manifest has no version field, nothing to update.", "manifest", manifest)
		return nil, nil
	}

	result := &model.SyncResult{Manifest: manifest, Version: version, Semver: IsSemver(version)}
	if !result.Semver {
		logger.Warn("Version is not a semantic version, writing it anyway.", "version", version)
	}

	projects, err := ProjectFiles(s.opts.WorkDir, s.opts.Extension)
	if err != nil {
		return nil, err
	}
	logger.Debug("Project files discovered.", "count", len(projects), "extension", s.opts.Extension)

	for _, path := range projects {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		res, err := s.updateFile(path, version)
		if err != nil {
			return result, err
		}
		logger.Info("Project file processed.", "file", path, "lines", res.LinesRewritten, "changed", res.Changed)
		result.Files = append(result.Files, res)
	}

	return result, nil
}

// updateFile reads path, rewrites its tagged lines and writes it back only if it changed.
func (s *service) updateFile(path, version string) (model.ProjectFileResult, error) {
	res := model.ProjectFileResult{Path: path}

	info, err := os.Stat(path)
	if err != nil {
		return res, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return res, fmt.Errorf("failed to read %s: %w", path, err)
	}

	updated, n := RewriteTags(string(raw), s.opts.Tag, version)
	res.LinesRewritten = n
	if updated == string(raw) {
		return res, nil
	}

	if err := os.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
		return res, fmt.Errorf("failed to write %s: %w", path, err)
	}
	res.Changed = true
	return res, nil
}

// FindManifest returns the first candidate that exists as a regular file under root.
func FindManifest(root string, candidates []string) (string, bool, error) {
	for _, name := range candidates {
		path := filepath.Join(root, name)
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return "", false, fmt.Errorf("failed to access manifest %s: %w", path, err)
		}
		if info.Mode().IsRegular() {
			return path, true, nil
		}
	}
	return "", false, nil
}

// ReadVersion decodes the manifest at path and returns its version field.
// ok is false when the field is absent or null.
func ReadVersion(path string) (version string, ok bool, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", false, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var manifest map[string]json.RawMessage
	if err := json.Unmarshal(raw, &manifest); err != nil {
		return "", false, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	field, present := manifest["version"]
	if !present || string(field) == "null" {
		return "", false, nil
	}

	var value any
	dec := json.NewDecoder(strings.NewReader(string(field)))
	dec.UseNumber()
	if err := dec.Decode(&value); err != nil {
		return "", false, fmt.Errorf("failed to parse version in %s: %w", path, err)
	}

	switch v := value.(type) {
	case string:
		return v, true, nil
	case json.Number:
		return v.String(), true, nil
	default:
		return "", false, fmt.Errorf("%w in %s: %s", ErrUnsupportedVersion, path, string(field))
	}
}

// ProjectFiles lists the regular files directly inside dir whose name ends
// with extension. Symlinks count when they resolve to a regular file.
func ProjectFiles(dir, extension string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), extension) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if e.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
		} else if !e.Type().IsRegular() {
			continue
		}
		files = append(files, path)
	}
	return files, nil
}

// RewriteTags replaces every line containing either half of tag with a
// single indented tagged line carrying version. Line endings are kept.
// It returns the new content and the number of lines rewritten.
func RewriteTags(content string, tag model.TagPair, version string) (string, int) {
	lines := strings.Split(content, "\n")
	replacement := Indent + tag.Render(version)

	n := 0
	for i, line := range lines {
		if !containsTag(line, tag) {
			continue
		}
		if strings.HasSuffix(line, "\r") {
			lines[i] = replacement + "\r"
		} else {
			lines[i] = replacement
		}
		n++
	}
	return strings.Join(lines, "\n"), n
}

func containsTag(line string, tag model.TagPair) bool {
	return (tag.Open != "" && strings.Contains(line, tag.Open)) ||
		(tag.Close != "" && strings.Contains(line, tag.Close))
}

// IsSemver reports whether version parses as a semantic version.
func IsSemver(version string) bool {
	_, err := semver.NewVersion(version)
	return err == nil
}
