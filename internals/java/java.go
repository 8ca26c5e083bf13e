// Package java bootstraps a portable java runtime inside the launcher
// data directory, so no system-wide installation is required.
package java

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	archiver "github.com/mholt/archiver/v3"

	"github.com/mcvglass/mcv/internals/downloadmgr"
)

// ErrNoExecutable is returned when the runtime dir contains no java
// executable even after downloading and extracting the archive
// (corrupt archive or unexpected layout).
var ErrNoExecutable = errors.New("no java executable found in the runtime directory")

// Runtime is a portable java installation rooted at Dir
type Runtime struct {
	Dir string
	// DownloadURL overrides the pinned archive url (used in tests)
	DownloadURL string
}

// New returns a Runtime for the given directory
func New(dir string) *Runtime {
	return &Runtime{Dir: dir}
}

func executableName() string {
	if runtime.GOOS == "windows" {
		return "java.exe"
	}
	return "java"
}

// Find scans the runtime dir recursively for the java executable and
// returns its path. The scan is lexical (WalkDir order), so the result
// is deterministic. Empty string if nothing was found.
func (r *Runtime) Find() string {
	want := executableName()
	found := ""

	filepath.WalkDir(r.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && d.Name() == want && filepath.Base(filepath.Dir(path)) == "bin" {
			found = path
			return fs.SkipAll
		}
		return nil
	})

	return found
}

// Ensure returns the path of a usable java executable, downloading and
// unpacking the pinned JDK archive first if there is none. onProgress
// receives download completion in percent (no calls when the server
// sends no content length).
func (r *Runtime) Ensure(ctx context.Context, onProgress func(p int)) (string, error) {
	if bin := r.Find(); bin != "" {
		return bin, nil
	}

	url := r.DownloadURL
	if url == "" {
		url = archiveURL()
	}

	archive := filepath.Join(filepath.Dir(r.Dir), "jdk-download"+archiveExt())
	if err := downloadmgr.FetchWithProgress(ctx, url, archive, onProgress); err != nil {
		return "", err
	}
	defer os.Remove(archive)

	if err := os.MkdirAll(r.Dir, 0755); err != nil {
		return "", err
	}
	if err := archiver.Unarchive(archive, r.Dir); err != nil {
		return "", err
	}

	bin := r.Find()
	if bin == "" {
		return "", ErrNoExecutable
	}
	return bin, nil
}
