// Package pathguard enforces the security boundary of the server:
// containment of candidate paths within the configured allowed
// directories, plus the per-file size and extension policy.
package pathguard

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/taigrr/localfiles-mcp/internal/types"
)

// CanonicalPath resolves a path to its canonical absolute form,
// following symlinks and collapsing "." and ".." segments. Paths that
// do not exist yet resolve through their deepest existing ancestor, the
// same non-strict resolution the OS applies on create.
func CanonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err == nil {
		return resolved, nil
	}
	if !os.IsNotExist(err) {
		return "", err
	}

	parent := filepath.Dir(abs)
	if parent == abs {
		return abs, nil
	}
	resolvedParent, err := CanonicalPath(parent)
	if err != nil {
		return "", err
	}
	return filepath.Join(resolvedParent, filepath.Base(abs)), nil
}

// IsPathAllowed reports whether the candidate path, in canonical form,
// is one of the configured allowed directories or nested under one.
// Containment is tested on path segments, never on raw string prefixes,
// so /allowed never admits /allowed-other. An empty allowed list, or a
// path that cannot be canonicalized, denies.
func IsPathAllowed(path string, cfg types.Config) bool {
	candidate, err := CanonicalPath(path)
	if err != nil {
		return false
	}

	for _, dir := range cfg.AllowedDirectories {
		root, err := CanonicalPath(dir)
		if err != nil {
			continue
		}
		if contains(root, candidate) {
			return true
		}
	}

	return false
}

// contains reports whether path equals root or sits below it. Both
// arguments must already be canonical.
func contains(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// IsFileAllowed applies the per-file policy: the file must be stat-able
// (fails closed on any I/O error, including broken symlinks), at most
// MaxFileSize bytes, and carry an allowed extension when the extension
// list is non-empty. Extension comparison is case-insensitive.
func IsFileAllowed(path string, cfg types.Config) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if info.Size() > cfg.MaxFileSize {
		return false
	}

	if len(cfg.AllowedExtensions) > 0 {
		ext := strings.ToLower(filepath.Ext(path))
		if !slices.ContainsFunc(cfg.AllowedExtensions, func(allowed string) bool {
			return strings.EqualFold(allowed, ext)
		}) {
			return false
		}
	}

	return true
}
