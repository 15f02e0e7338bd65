package checks

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// SourceExt is the extension that marks a path as a source file.
const SourceExt = ".go"

// FileExists reports whether path exists. It never returns an error; any
// stat failure counts as absent.
func FileExists(fs afero.Fs, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}

// IsSource reports whether path follows the source-file naming convention.
func IsSource(path string) bool {
	return filepath.Ext(path) == SourceExt
}
