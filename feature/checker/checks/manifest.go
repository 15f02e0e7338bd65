package checks

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Substring is one required text fragment of the entry-point file.
type Substring struct {
	// Value is the exact fragment that must appear in the file.
	Value string `yaml:"value"`
	// Description names the fragment in human-readable output.
	Description string `yaml:"description"`
}

// Entrypoint describes the entry-point file and its required fragments.
type Entrypoint struct {
	Path     string      `yaml:"path"`
	Contains []Substring `yaml:"contains"`
}

// Manifest describes what the checker validates: a set of expected files and
// the entry-point wiring.
type Manifest struct {
	// Root is the directory all paths are resolved against.
	Root string `yaml:"root"`
	// Files are the expected paths, relative to Root.
	Files []string `yaml:"files"`
	// Entrypoint is checked for substring membership, independent of Files.
	Entrypoint Entrypoint `yaml:"entrypoint"`
}

// Default returns the built-in manifest: the scaffolded greet command layout.
func Default() Manifest {
	return Manifest{
		Root: ".",
		Files: []string{
			"cmd/greet.go",
			"pkg/greet/greet.go",
			"pkg/greet/options.go",
			"docs/greet.md",
		},
		Entrypoint: Entrypoint{
			Path: "main.go",
			Contains: []Substring{
				{Value: `"codecheck/cmd"`, Description: "command package import"},
				{Value: "cmd.Execute()", Description: "root command dispatch call"},
			},
		},
	}
}

// LoadManifest reads a YAML manifest from path. Fields left empty fall back
// to the built-in defaults.
func LoadManifest(fs afero.Fs, path string) (Manifest, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	m := Default()
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	if m.Root == "" {
		m.Root = "."
	}

	return m, nil
}
