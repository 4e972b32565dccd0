package paths

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// DatabaseFile is the file name of the constants database.
const DatabaseFile = "pcd.yaml"

// FindDatabase returns the path of the closest [DatabaseFile] in dir or one of
// its parents. The search stops at the root of the git repository containing
// dir, or at the filesystem root when dir is not in a repository.
func FindDatabase(dir string) (string, error) {
	root, err := FindRepoRoot(dir)
	if err != nil {
		slog.Debug("not in a git repository, searching up to the filesystem root",
			slog.String("dir", dir),
		)

		root = string(filepath.Separator)
	}

	found, err := findClosestFile(root, dir, func(s string) (bool, error) {
		fi, err := os.Stat(filepath.Join(s, DatabaseFile))
		if err != nil {
			return false, err //nolint:wrapcheck // Only used to skip the directory.
		}

		return fi.Mode().IsRegular(), nil
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", DatabaseFile, err)
	}

	return filepath.Join(found, DatabaseFile), nil
}
