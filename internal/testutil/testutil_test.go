// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestMustWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := MustWriteFile(t, dir, "org/example/classes.cue", "classes: []")

	if want := filepath.Join(dir, "org", "example", "classes.cue"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	if string(data) != "classes: []" {
		t.Errorf("content = %q", data)
	}
}

func TestMustSetenv_Restores(t *testing.T) {
	// Not parallel: mutates process environment.
	const key = "VINTAGE_TESTUTIL_PROBE"

	restoreOuter := MustSetenv(t, key, "outer")
	restore := MustSetenv(t, key, "inner")
	if got := os.Getenv(key); got != "inner" {
		t.Errorf("%s = %q, want inner", key, got)
	}
	restore()
	if got := os.Getenv(key); got != "outer" {
		t.Errorf("%s = %q after restore, want outer", key, got)
	}
	restoreOuter()
	if _, ok := os.LookupEnv(key); ok {
		t.Errorf("%s still set after final restore", key)
	}
}

func TestMustChdir(t *testing.T) {
	// Not parallel: changes the working directory.
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	restore := MustChdir(t, dir)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if resolved, _ := filepath.EvalSymlinks(dir); wd != dir && wd != resolved {
		t.Errorf("wd = %q, want %q", wd, dir)
	}
	restore()

	if wd, _ := os.Getwd(); wd != orig {
		t.Errorf("wd = %q after restore, want %q", wd, orig)
	}
}

func TestSetHomeDir(t *testing.T) {
	// Not parallel: mutates process environment.
	dir := t.TempDir()
	restore := SetHomeDir(t, dir)
	defer restore()

	key := "HOME"
	if runtime.GOOS == "windows" {
		key = "USERPROFILE"
	}
	if got := os.Getenv(key); got != dir {
		t.Errorf("%s = %q, want %q", key, got, dir)
	}
}
