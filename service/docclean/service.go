// Package docclean copies documentation files from the project root into
// the working directory and strips their HTML markup.
package docclean

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/thirukguru/buildprep/model"
	"github.com/thirukguru/buildprep/service/htmlstrip"
	"github.com/thirukguru/buildprep/shared/ctxlog"
)

// NewService creates a document copier reading from root and writing into workDir.
func NewService(root, workDir string) Service {
	return &service{root: root, workDir: workDir}
}

// CopyParse copies each file from the root into the working directory and
// cleans it. Processing stops at the first error; the results of the files
// handled before it are returned alongside the error.
func (s *service) CopyParse(ctx context.Context, files []string) ([]model.DocResult, error) {
	logger := ctxlog.FromContext(ctx)
	results := make([]model.DocResult, 0, len(files))

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		src := filepath.Join(s.root, file)
		dst := filepath.Join(s.workDir, filepath.Base(file))
		res := model.DocResult{Name: file, Source: src, Destination: dst}

		same, err := samePath(src, dst)
		if err != nil {
			return results, err
		}
		if same {
			res.CopySkipped = true
			logger.Debug("Source and destination are the same file, skipping copy.", "file", src)
		} else if err := copyFile(src, dst); err != nil {
			return results, err
		}

		res.BytesBefore, res.BytesAfter, err = s.RemoveHTML(dst)
		if err != nil {
			return results, err
		}

		logger.Info("Document copied and cleaned.", "file", file, "destination", dst,
			"bytes_before", res.BytesBefore, "bytes_after", res.BytesAfter)
		results = append(results, res)
	}

	return results, nil
}

// RemoveHTML replaces the content of path with its extracted plain text.
func (s *service) RemoveHTML(path string) (int, int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read %s: %w", path, err)
	}

	text := htmlstrip.String(string(raw))

	if err := os.WriteFile(path, []byte(text), info.Mode().Perm()); err != nil {
		return 0, 0, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return len(raw), len(text), nil
}

// copyFile copies src over dst, keeping the permission bits of src.
func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat source %s: %w", src, err)
	}
	if info.IsDir() {
		return fmt.Errorf("source %s is a directory", src)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to open destination %s: %w", dst, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close destination %s: %w", dst, cerr)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	if err := out.Chmod(info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to set mode on %s: %w", dst, err)
	}
	return nil
}

// samePath reports whether src and dst name the same existing file.
func samePath(src, dst string) (bool, error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return false, fmt.Errorf("failed to stat source %s: %w", src, err)
	}
	dstInfo, err := os.Stat(dst)
	if err != nil {
		return false, nil
	}
	return os.SameFile(srcInfo, dstInfo), nil
}
