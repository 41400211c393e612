/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil loads test fixtures and golden files.
package testutil

import (
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"bennypowers.dev/mond/internal/mapfs"
)

var updateGolden = flag.Bool("update", false, "update golden files with actual output")

// testdataDirs are searched in order, since go test runs in the package directory.
var testdataDirs = []string{
	"testdata",
	filepath.Join("..", "testdata"),
	filepath.Join("..", "..", "testdata"),
}

// findTestdata returns the first existing testdata path for rel, or "".
func findTestdata(rel string) string {
	for _, dir := range testdataDirs {
		path := filepath.Join(dir, rel)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// NewFixtureFS copies testdata/<fixtureDir> into an in-memory filesystem
// mounted at rootPath.
func NewFixtureFS(t *testing.T, fixtureDir string, rootPath string) *mapfs.MapFileSystem {
	t.Helper()

	fixturePath := findTestdata(fixtureDir)
	if fixturePath == "" {
		t.Fatalf("fixture directory %s not found", fixtureDir)
	}

	mfs := mapfs.New()
	err := filepath.WalkDir(fixturePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(fixturePath, path)
		if err != nil {
			return err
		}
		mfs.AddFile(filepath.Join(rootPath, rel), string(content), 0644)
		return nil
	})
	if err != nil {
		t.Fatalf("loading fixtures from %s: %v", fixtureDir, err)
	}
	return mfs
}

// LoadFixtureFile returns the content of testdata/<fixturePath>.
func LoadFixtureFile(t *testing.T, fixturePath string) []byte {
	t.Helper()

	path := findTestdata(fixturePath)
	if path == "" {
		t.Fatalf("fixture %s not found", fixturePath)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading fixture %s: %v", fixturePath, err)
	}
	return content
}

// UpdateGoldenFile writes actual to testdata/<goldenPath> when -update is set.
func UpdateGoldenFile(t *testing.T, goldenPath string, actual []byte) {
	t.Helper()
	if !*updateGolden {
		return
	}

	target := findTestdata(goldenPath)
	if target == "" {
		target = filepath.Join(testdataDirs[0], goldenPath)
		if dir := findTestdata(filepath.Dir(goldenPath)); dir != "" {
			target = filepath.Join(dir, filepath.Base(goldenPath))
		}
	}

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		t.Fatalf("creating directory for golden file %s: %v", goldenPath, err)
	}
	if err := os.WriteFile(target, actual, 0644); err != nil {
		t.Fatalf("writing golden file %s: %v", goldenPath, err)
	}
	t.Logf("updated golden file: %s", target)
}

// Golden updates testdata/<goldenPath> when -update is set, then returns its
// content for comparison.
func Golden(t *testing.T, goldenPath string, actual []byte) string {
	t.Helper()
	UpdateGoldenFile(t, goldenPath, actual)
	return string(LoadFixtureFile(t, goldenPath))
}
