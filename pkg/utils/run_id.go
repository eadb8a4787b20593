package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateRunID creates a short, human-readable identifier for one CLI run.
// Format: {operation}-{8charHexUUID}
//
// Example:
//   - Input: operation="prices refresh"
//   - Output: "prices-refresh-a3f8e2b1"
//
// Whitespace in the operation collapses to single hyphens. An empty
// operation yields just the hex suffix.
func GenerateRunID(operation string) string {
	prefix := strings.Join(strings.Fields(strings.ToLower(operation)), "-")
	if prefix == "" {
		return generateShortUUID()
	}
	return prefix + "-" + generateShortUUID()
}

// generateShortUUID creates an 8-character hex string from a UUID
func generateShortUUID() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}
