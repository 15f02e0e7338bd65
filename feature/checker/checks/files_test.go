package checks

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestFileExists(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "present.go", "package main")

	assert.True(t, FileExists(fs, "present.go"))
	assert.False(t, FileExists(fs, "absent.go"))
}

func TestIsSource(t *testing.T) {
	assert.True(t, IsSource("cmd/greet.go"))
	assert.False(t, IsSource("docs/greet.md"))
	assert.False(t, IsSource("greet"))
}
