package handler

import "strings"

// parseCommand returns the lower-cased command of a "/cmd@bot args" text.
// Only text that starts with "/" is a command; leading whitespace makes it plain text.
func parseCommand(text string) (string, bool) {
	if !strings.HasPrefix(text, "/") {
		return "", false
	}

	cmd := strings.ToLower(strings.Fields(text)[0])
	cmd, _, _ = strings.Cut(cmd, "@")

	return strings.TrimPrefix(cmd, "/"), true
}
