package checks

// FileResult holds the outcome of checking one expected file.
type FileResult struct {
	// Path is relative to the manifest root.
	Path string `json:"path"`
	// Exists reports whether the file is present.
	Exists bool `json:"exists"`
	// Source reports whether the path follows the source-file convention.
	Source bool `json:"source"`
	// Issues are the syntax findings, in check order. Only populated for
	// existing source files.
	Issues []string `json:"issues,omitempty"`
}

// SubstringResult holds the outcome of one entry-point membership check.
type SubstringResult struct {
	Value       string `json:"value"`
	Description string `json:"description"`
	Found       bool   `json:"found"`
}

// Report is the complete outcome of one validation run.
type Report struct {
	Root       string            `json:"root"`
	Files      []FileResult      `json:"files"`
	Entrypoint []SubstringResult `json:"entrypoint"`
}

// Present counts the expected files that exist.
func (r Report) Present() int {
	n := 0
	for _, f := range r.Files {
		if f.Exists {
			n++
		}
	}
	return n
}

// IssueCount counts syntax issues plus missing entry-point fragments.
func (r Report) IssueCount() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Issues)
	}
	for _, s := range r.Entrypoint {
		if !s.Found {
			n++
		}
	}
	return n
}

// Clean reports whether every file exists and no check found anything.
func (r Report) Clean() bool {
	return r.Present() == len(r.Files) && r.IssueCount() == 0
}
