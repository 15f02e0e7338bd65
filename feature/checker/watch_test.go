package checker

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"codecheck/feature/checker/checks"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWatch(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "cmd"), 0755))

	manifest := checks.Manifest{
		Root:  root,
		Files: []string{"cmd/greet.go"},
		Entrypoint: checks.Entrypoint{
			Path:     "main.go",
			Contains: []checks.Substring{{Value: "cmd.Execute()", Description: "root command dispatch call"}},
		},
	}
	svc := NewService(afero.NewOsFs(), manifest, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	reports := make(chan checks.Report, 4)
	done := make(chan error, 1)
	go func() {
		done <- svc.Watch(ctx, 50*time.Millisecond, func(r checks.Report, err error) {
			if err == nil {
				reports <- r
			}
		})
	}()

	// Give the watcher a moment to register before triggering the event.
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(root, "cmd", "greet.go"), []byte("package cmd\n"), 0644))

	select {
	case report := <-reports:
		assert.Equal(t, 1, report.Present())
	case <-ctx.Done():
		t.Fatal("no validation run observed after file change")
	}

	cancel()
	assert.NoError(t, <-done)
}
