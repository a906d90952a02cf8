package module

import (
	"os"
	"path/filepath"

	"github.com/koto-lang/koto/internal/buildinfo"
	"github.com/koto-lang/koto/internal/koerr"
)

// resolveSiblingPath implements the last two steps of import resolution: a
// sibling file `<name>.koto`, then a sibling directory `<name>/main.koto`.
// Grounded on the teacher's internal/utils/path_utils.go
// (ResolveImportPath/GetModuleDir), adapted from "resolve relative to an
// arbitrary search path list" down to "resolve relative to the importing
// file's directory", since only sibling resolution is needed here, not a
// multi-directory search path.
func resolveSiblingPath(baseDir, name string) (string, error) {
	asFile := filepath.Join(baseDir, name+buildinfo.SourceFileExt)
	if fileExists(asFile) {
		return asFile, nil
	}
	asDir := filepath.Join(baseDir, name, "main"+buildinfo.SourceFileExt)
	if fileExists(asDir) {
		return asDir, nil
	}
	return "", koerr.New(koerr.ImportError, "module %q not found relative to %q", name, baseDir)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
