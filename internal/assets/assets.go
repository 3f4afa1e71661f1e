// SPDX-License-Identifier: Unlicense OR MIT

// Package assets locates the asset folder and loads fonts from it.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// Folder is the name of the asset folder.
	Folder = "assets"
	// FontPath is the default font, relative to the asset folder.
	FontPath = "fonts/NotoSans/NotoSans-Regular.ttf"

	// KidsDepth and ParentsDepth bound the default search.
	KidsDepth    = 3
	ParentsDepth = 5
)

// ErrNotFound is returned when a required folder or file is missing.
var ErrNotFound = errors.New("asset not found")

// Find searches for a directory called name, first in start and its
// descendants up to kids levels below start, then in the up to parents
// ancestors of start. Descendants are visited breadth first in
// lexical order.
func Find(start, name string, kids, parents int) (string, error) {
	start, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("assets: %w", err)
	}
	if p, ok := findKids(start, name, kids); ok {
		return p, nil
	}
	dir := start
	for i := 0; i < parents; i++ {
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
		if p := filepath.Join(dir, name); isDir(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("assets: folder %q near %s: %w", name, start, ErrNotFound)
}

// FindDefault runs the default search for the asset folder from the
// working directory.
func FindDefault() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("assets: %w", err)
	}
	return Find(wd, Folder, KidsDepth, ParentsDepth)
}

func findKids(root, name string, depth int) (string, bool) {
	level := []string{root}
	for d := 0; d <= depth && len(level) > 0; d++ {
		var next []string
		for _, dir := range level {
			if p := filepath.Join(dir, name); isDir(p) {
				return p, true
			}
			entries, err := os.ReadDir(dir)
			if err != nil {
				continue
			}
			for _, e := range entries {
				if e.IsDir() {
					next = append(next, filepath.Join(dir, e.Name()))
				}
			}
		}
		level = next
	}
	return "", false
}

func isDir(p string) bool {
	fi, err := os.Stat(p)
	return err == nil && fi.IsDir()
}
