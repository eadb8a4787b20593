package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRunID(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		pattern   string
	}{
		{name: "single word", operation: "overview", pattern: `^overview-[0-9a-f]{8}$`},
		{name: "subcommand path", operation: "prices refresh", pattern: `^prices-refresh-[0-9a-f]{8}$`},
		{name: "mixed case and padding", operation: "  Recipes   List ", pattern: `^recipes-list-[0-9a-f]{8}$`},
		{name: "empty", operation: "", pattern: `^[0-9a-f]{8}$`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := GenerateRunID(tt.operation)
			assert.Regexp(t, regexp.MustCompile(tt.pattern), id)
		})
	}
}

func TestGenerateRunID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateRunID("lookup")
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
