package checks

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/afero"
)

// packageDeclPattern matches a package declaration at the start of a line.
var packageDeclPattern = regexp.MustCompile(`(?m)^package\s+[A-Za-z_]\w*`)

// CheckSyntax reads the file and runs the three superficial textual checks:
// brace balance, parenthesis balance and the presence of a package
// declaration. All three are always evaluated; the returned issues keep that
// order and omit checks that pass. A read failure is returned as an error.
func CheckSyntax(fs afero.Fs, path string) ([]string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	content := string(data)
	var issues []string

	if open, closed := strings.Count(content, "{"), strings.Count(content, "}"); open != closed {
		issues = append(issues, fmt.Sprintf("Unmatched braces: %d open, %d close", open, closed))
	}

	if open, closed := strings.Count(content, "("), strings.Count(content, ")"); open != closed {
		issues = append(issues, fmt.Sprintf("Unmatched parentheses: %d open, %d close", open, closed))
	}

	if !packageDeclPattern.MatchString(content) {
		issues = append(issues, "Missing package declaration")
	}

	return issues, nil
}
