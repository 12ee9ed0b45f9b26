package pathguard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/taigrr/localfiles-mcp/internal/types"
)

func setupRoot(t *testing.T) (string, types.Config) {
	t.Helper()
	root, err := os.MkdirTemp("", "localfiles-guard-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(root) })
	cfg := types.Config{
		AllowedDirectories: []string{root},
		MaxFileSize:        1024 * 1024,
	}
	return root, cfg
}

func TestIsPathAllowed_Containment(t *testing.T) {
	root, cfg := setupRoot(t)

	mustWrite(t, filepath.Join(root, "notes.txt"), "hello")
	os.MkdirAll(filepath.Join(root, "sub", "deep"), 0o755)
	mustWrite(t, filepath.Join(root, "sub", "deep", "nested.txt"), "hi")

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"root itself", root, true},
		{"direct child", filepath.Join(root, "notes.txt"), true},
		{"nested child", filepath.Join(root, "sub", "deep", "nested.txt"), true},
		{"nonexistent child", filepath.Join(root, "future.txt"), true},
		{"parent of root", filepath.Dir(root), false},
		{"unrelated path", "/etc/passwd", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPathAllowed(tt.path, cfg); got != tt.want {
				t.Errorf("IsPathAllowed(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsPathAllowed_Traversal(t *testing.T) {
	root, cfg := setupRoot(t)

	tests := []string{
		filepath.Join(root, ".."),
		filepath.Join(root, "..", "secret.txt"),
		root + "/sub/../../outside.txt",
	}

	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			if IsPathAllowed(path, cfg) {
				t.Errorf("IsPathAllowed(%q) = true, want false", path)
			}
		})
	}
}

func TestIsPathAllowed_StringPrefixOverlap(t *testing.T) {
	root, cfg := setupRoot(t)

	// A sibling whose name shares the allowed root's string prefix must
	// not be treated as contained.
	sibling := root + "-other"
	if err := os.MkdirAll(sibling, 0o755); err != nil {
		t.Fatalf("Failed to create sibling dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(sibling) })
	mustWrite(t, filepath.Join(sibling, "leak.txt"), "secret")

	if IsPathAllowed(filepath.Join(sibling, "leak.txt"), cfg) {
		t.Error("IsPathAllowed() admitted a string-prefix sibling directory")
	}
}

func TestIsPathAllowed_SymlinkEscape(t *testing.T) {
	root, cfg := setupRoot(t)

	outside, err := os.MkdirTemp("", "localfiles-outside-*")
	if err != nil {
		t.Fatalf("Failed to create outside dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(outside) })
	mustWrite(t, filepath.Join(outside, "target.txt"), "secret")

	link := filepath.Join(root, "inlink.txt")
	if err := os.Symlink(filepath.Join(outside, "target.txt"), link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	if IsPathAllowed(link, cfg) {
		t.Error("IsPathAllowed() admitted a symlink resolving outside the root")
	}
}

func TestIsPathAllowed_EmptyAllowList(t *testing.T) {
	root, _ := setupRoot(t)
	cfg := types.Config{MaxFileSize: 1024}

	if IsPathAllowed(root, cfg) {
		t.Error("IsPathAllowed() = true with empty allow-list, want false")
	}
}

func TestIsFileAllowed_SizeLimit(t *testing.T) {
	root, cfg := setupRoot(t)
	cfg.MaxFileSize = 1000

	small := filepath.Join(root, "small.txt")
	big := filepath.Join(root, "big.txt")
	mustWrite(t, small, string(make([]byte, 500)))
	mustWrite(t, big, string(make([]byte, 2000)))

	if !IsFileAllowed(small, cfg) {
		t.Error("IsFileAllowed(small) = false, want true")
	}
	if IsFileAllowed(big, cfg) {
		t.Error("IsFileAllowed(big) = true, want false")
	}
}

func TestIsFileAllowed_Extensions(t *testing.T) {
	root, cfg := setupRoot(t)

	mustWrite(t, filepath.Join(root, "doc.txt"), "text")
	mustWrite(t, filepath.Join(root, "doc.TXT"), "text")
	mustWrite(t, filepath.Join(root, "image.png"), "png")

	t.Run("non-member rejected", func(t *testing.T) {
		cfg.AllowedExtensions = []string{".txt"}
		if IsFileAllowed(filepath.Join(root, "image.png"), cfg) {
			t.Error("IsFileAllowed(.png) = true, want false")
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		cfg.AllowedExtensions = []string{".txt"}
		if !IsFileAllowed(filepath.Join(root, "doc.TXT"), cfg) {
			t.Error("IsFileAllowed(.TXT) = false, want true")
		}
	})

	t.Run("empty list allows any extension", func(t *testing.T) {
		cfg.AllowedExtensions = nil
		if !IsFileAllowed(filepath.Join(root, "image.png"), cfg) {
			t.Error("IsFileAllowed(.png) = false with empty extension list, want true")
		}
	})
}

func TestIsFileAllowed_FailsClosed(t *testing.T) {
	root, cfg := setupRoot(t)

	t.Run("missing file", func(t *testing.T) {
		if IsFileAllowed(filepath.Join(root, "gone.txt"), cfg) {
			t.Error("IsFileAllowed(missing) = true, want false")
		}
	})

	t.Run("broken symlink", func(t *testing.T) {
		link := filepath.Join(root, "broken.txt")
		if err := os.Symlink(filepath.Join(root, "no-target.txt"), link); err != nil {
			t.Skipf("symlinks not supported: %v", err)
		}
		if IsFileAllowed(link, cfg) {
			t.Error("IsFileAllowed(broken symlink) = true, want false")
		}
	})
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}
