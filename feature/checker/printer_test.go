package checker

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinter(t *testing.T) {
	t.Run("Mixed Results", func(t *testing.T) {
		svc, fsys := testService(t)
		require.NoError(t, afero.WriteFile(fsys, "project/cmd/greet.go", []byte("func greet() {"), 0644))

		report, err := svc.Run(context.Background())
		require.NoError(t, err)

		var buf bytes.Buffer
		NewPrinter(&buf).Print(report)
		out := buf.String()

		assert.Contains(t, out, "cmd/greet.go exists")
		assert.Contains(t, out, "syntax issues:")
		assert.Contains(t, out, "    - Unmatched braces: 1 open, 0 close")
		assert.Contains(t, out, "    - Missing package declaration")
		assert.Contains(t, out, "docs/greet.md is missing")
		assert.Contains(t, out, "entry point missing root command dispatch call")
		assert.Contains(t, out, "files: 1 present / 2 expected, issues: 3")
	})

	t.Run("Clean Run", func(t *testing.T) {
		svc, fsys := testService(t)
		require.NoError(t, afero.WriteFile(fsys, "project/cmd/greet.go", []byte("package cmd\n"), 0644))
		require.NoError(t, afero.WriteFile(fsys, "project/docs/greet.md", []byte("# greet\n"), 0644))
		require.NoError(t, afero.WriteFile(fsys, "project/main.go", []byte("package main\nfunc main() { cmd.Execute() }\n"), 0644))

		report, err := svc.Run(context.Background())
		require.NoError(t, err)

		var buf bytes.Buffer
		NewPrinter(&buf).Print(report)
		out := buf.String()

		assert.Contains(t, out, "syntax OK")
		assert.Contains(t, out, "entry point contains root command dispatch call")
		assert.NotContains(t, out, "is missing")
		assert.Contains(t, out, "files: 2 present / 2 expected, issues: 0")
	})

	t.Run("Fixed Blocks Appear Even When Everything Is Absent", func(t *testing.T) {
		// Legacy behavior: the summary and feature blocks never depend on
		// the actual results.
		svc, _ := testService(t)

		report, err := svc.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, report.Present())

		var buf bytes.Buffer
		NewPrinter(&buf).Print(report)
		out := buf.String()

		assert.Contains(t, out, "=== Validation Summary ===")
		assert.Contains(t, out, "Features implemented:")
		assert.True(t, strings.Contains(out, summaryBlock))
		assert.True(t, strings.Contains(out, featuresBlock))
	})
}
