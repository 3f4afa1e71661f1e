// SPDX-License-Identifier: Unlicense OR MIT

package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func mkdirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			t.Fatal(err)
		}
	}
}

func TestFindSelf(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "assets")
	got, err := Find(root, Folder, KidsDepth, ParentsDepth)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(root, "assets"); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestFindKid(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "a/b/assets", "z/assets")
	got, err := Find(root, Folder, KidsDepth, ParentsDepth)
	if err != nil {
		t.Fatal(err)
	}
	// Shallower matches win over deeper ones.
	if want := filepath.Join(root, "z", "assets"); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestFindKidTooDeep(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "a/b/c/d/assets")
	if _, err := Find(root, Folder, KidsDepth, 0); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
	mkdirs(t, root, "a/b/c/assets")
	if _, err := Find(root, Folder, KidsDepth, 0); err != nil {
		t.Errorf("folder %d levels down not found: %v", KidsDepth, err)
	}
}

func TestFindParent(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "assets", "p1/p2/p3")
	start := filepath.Join(root, "p1", "p2", "p3")
	got, err := Find(start, Folder, KidsDepth, ParentsDepth)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(root, "assets"); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if _, err := Find(start, Folder, 0, 2); !errors.Is(err, ErrNotFound) {
		t.Errorf("found a folder beyond the parent limit: %v", err)
	}
}

func TestFindMissing(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "src")
	_, err := Find(filepath.Join(root, "src"), "no-such-folder", KidsDepth, 1)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestLoadFont(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Go-Regular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := LoadFont(path)
	if err != nil {
		t.Fatal(err)
	}
	if f.Path != path {
		t.Errorf("path = %s, want %s", f.Path, path)
	}
	if f.Family != "Go" {
		t.Errorf("family = %q, want %q", f.Family, "Go")
	}
	if len(f.Faces) != 1 {
		t.Errorf("got %d faces, want 1", len(f.Faces))
	}
	if f.Shaper() == nil {
		t.Error("nil shaper")
	}
}

func TestLoadFontMissing(t *testing.T) {
	_, err := LoadFont(filepath.Join(t.TempDir(), FontPath))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestLoadFontCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ttf")
	if err := os.WriteFile(path, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFont(path)
	if err == nil {
		t.Fatal("parsed a corrupt font")
	}
	if errors.Is(err, ErrNotFound) {
		t.Errorf("corrupt font reported as missing: %v", err)
	}
}
