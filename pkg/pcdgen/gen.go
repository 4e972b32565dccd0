package pcdgen

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/macropower/pcdgen/pkg/pcd"
	"github.com/macropower/pcdgen/pkg/pcderrors"
)

// Render returns the source for the groups of db named in groups, in the
// syntax of lang. A nil or empty groups renders every group.
func Render(db *pcd.Database, lang string, groups []string) ([]byte, error) {
	d, err := LookupDialect(lang)
	if err != nil {
		return nil, err
	}

	selected, err := db.Select(groups)
	if err != nil {
		return nil, fmt.Errorf("select groups: %w", err)
	}

	buf := &bytes.Buffer{}
	buf.WriteString(d.Header())

	for _, g := range selected {
		buf.WriteString(d.GroupComment(g.Name))

		for _, e := range g.Entries {
			buf.WriteString(d.Entry(e))
		}
	}

	buf.WriteString(d.Footer())

	slog.Debug("rendered constants",
		slog.String("lang", lang),
		slog.Int("groups", len(selected)),
	)

	return buf.Bytes(), nil
}

// Generate renders db with [Render] and writes the result to w. Nothing is
// written if rendering fails.
func Generate(w io.Writer, db *pcd.Database, lang string, groups []string) error {
	content, err := Render(db, lang, groups)
	if err != nil {
		return err
	}

	if _, err := w.Write(content); err != nil {
		return fmt.Errorf("%w: %w", pcderrors.ErrIO, err)
	}

	return nil
}

// GenerateFile renders db with [Render] and replaces the file at path with
// the result. The previous content of path is left untouched on any failure.
// An existing file keeps its permissions, and a symlink at path keeps pointing
// to the regenerated file.
func GenerateFile(path string, db *pcd.Database, lang string, groups []string) error {
	content, err := Render(db, lang, groups)
	if err != nil {
		return err
	}

	// Replace the file a symlink points to rather than the symlink itself.
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	pf, err := renameio.NewPendingFile(path,
		renameio.WithPermissions(0o644),
		renameio.WithExistingPermissions(),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", pcderrors.ErrWriteFile, err)
	}
	defer pf.Cleanup() //nolint:errcheck // No-op once the file has been replaced.

	if _, err := pf.Write(content); err != nil {
		return fmt.Errorf("%w: %w", pcderrors.ErrWriteFile, err)
	}

	if err := pf.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("%w: %w", pcderrors.ErrWriteFile, err)
	}

	slog.Info("generated constants",
		slog.String("path", path),
		slog.String("lang", lang),
		slog.Int("bytes", len(content)),
	)

	return nil
}
