package checks

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// CheckEntrypoint verifies that the entry-point file contains every required
// substring. A missing entry-point reports every substring as absent; a read
// failure on an existing file is an error.
func CheckEntrypoint(fs afero.Fs, ep Entrypoint) ([]SubstringResult, error) {
	results := make([]SubstringResult, 0, len(ep.Contains))

	if !FileExists(fs, ep.Path) {
		for _, sub := range ep.Contains {
			results = append(results, SubstringResult{
				Value:       sub.Value,
				Description: sub.Description,
			})
		}
		return results, nil
	}

	data, err := afero.ReadFile(fs, ep.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ep.Path, err)
	}

	content := string(data)
	for _, sub := range ep.Contains {
		results = append(results, SubstringResult{
			Value:       sub.Value,
			Description: sub.Description,
			Found:       strings.Contains(content, sub.Value),
		})
	}

	return results, nil
}
