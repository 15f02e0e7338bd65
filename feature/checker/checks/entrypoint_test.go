package checks

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckEntrypoint(t *testing.T) {
	ep := Entrypoint{
		Path: "main.go",
		Contains: []Substring{
			{Value: `"codecheck/cmd"`, Description: "command package import"},
			{Value: "cmd.Execute()", Description: "root command dispatch call"},
		},
	}

	t.Run("All Fragments Present", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFile(t, fs, "main.go", "package main\n\nimport \"codecheck/cmd\"\n\nfunc main() {\n\tcmd.Execute()\n}\n")

		results, err := CheckEntrypoint(fs, ep)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.True(t, results[0].Found)
		assert.True(t, results[1].Found)
	})

	t.Run("Fragment Missing", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFile(t, fs, "main.go", "package main\n\nfunc main() {}\n")

		results, err := CheckEntrypoint(fs, ep)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.False(t, results[0].Found)
		assert.False(t, results[1].Found)
	})

	t.Run("Missing Entrypoint Reports All Absent", func(t *testing.T) {
		fs := afero.NewMemMapFs()

		results, err := CheckEntrypoint(fs, ep)
		require.NoError(t, err)
		require.Len(t, results, 2)
		for _, r := range results {
			assert.False(t, r.Found)
		}
	})
}
