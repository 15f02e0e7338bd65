package checks

import (
	"context"
	"path/filepath"

	"github.com/spf13/afero"
)

// Run performs a single validation pass over the manifest: a per-file
// existence check, syntax checks for existing source files, then the
// entry-point membership checks. Missing files are findings, not errors;
// an unreadable existing file aborts the run.
func Run(ctx context.Context, fs afero.Fs, m Manifest) (Report, error) {
	report := Report{
		Root:  m.Root,
		Files: make([]FileResult, 0, len(m.Files)),
	}

	for _, path := range m.Files {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}

		result := FileResult{
			Path:   path,
			Source: IsSource(path),
		}

		full := filepath.Join(m.Root, path)
		result.Exists = FileExists(fs, full)

		if result.Exists && result.Source {
			issues, err := CheckSyntax(fs, full)
			if err != nil {
				return Report{}, err
			}
			result.Issues = issues
		}

		report.Files = append(report.Files, result)
	}

	// The entry-point check runs regardless of the per-file outcomes.
	ep := m.Entrypoint
	ep.Path = filepath.Join(m.Root, ep.Path)
	entrypoint, err := CheckEntrypoint(fs, ep)
	if err != nil {
		return Report{}, err
	}
	report.Entrypoint = entrypoint

	return report, nil
}
