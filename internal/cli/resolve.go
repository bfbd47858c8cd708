package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveProjectID accepts a full UUID, a UUID prefix, or a
// case-insensitive name match and returns the project's ID.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project is required")
	}

	projects, err := app.Projects.List(ctx, false)
	if err != nil {
		return "", err
	}

	for _, p := range projects {
		if p.ID == input || strings.EqualFold(p.Name, input) {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) ||
			strings.HasPrefix(strings.ToLower(p.Name), strings.ToLower(input)) {
			matches = append(matches, p.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project %q is ambiguous (%d matches)", input, len(matches))
	}
}
