package checker

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"

	"codecheck/feature/checker/checks"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Service runs structural validation against a manifest.
type Service struct {
	fs       afero.Fs
	manifest checks.Manifest
	logger   *zap.Logger
}

// NewService creates a new checker service.
func NewService(fsys afero.Fs, manifest checks.Manifest, logger *zap.Logger) *Service {
	return &Service{
		fs:       fsys,
		manifest: manifest,
		logger:   logger,
	}
}

// Manifest returns the manifest the service validates against.
func (s *Service) Manifest() checks.Manifest {
	return s.manifest
}

// Run performs one full validation pass.
func (s *Service) Run(ctx context.Context) (checks.Report, error) {
	return checks.Run(ctx, s.fs, s.manifest)
}

// ListFiles performs the existence checks only, skipping syntax.
func (s *Service) ListFiles(ctx context.Context) ([]checks.FileResult, error) {
	results := make([]checks.FileResult, 0, len(s.manifest.Files))

	for _, path := range s.manifest.Files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		results = append(results, checks.FileResult{
			Path:   path,
			Source: checks.IsSource(path),
			Exists: checks.FileExists(s.fs, filepath.Join(s.manifest.Root, path)),
		})
	}

	return results, nil
}

// CheckFile runs the syntax checks on a single path under the manifest root.
func (s *Service) CheckFile(path string) ([]string, error) {
	full := filepath.Join(s.manifest.Root, path)

	if !checks.FileExists(s.fs, full) {
		return nil, fmt.Errorf("%s: %w", path, fs.ErrNotExist)
	}

	return checks.CheckSyntax(s.fs, full)
}
