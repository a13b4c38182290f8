package utils

import (
	"strings"
)

// SplitYAMLDocuments splits a multi-document YAML stream on separator lines
// ("---" alone or followed by a space). Blank documents are dropped.
func SplitYAMLDocuments(content string) []string {
	docs := make([]string, 0)
	var current []string

	flush := func() {
		doc := strings.TrimSpace(strings.Join(current, "\n"))
		if doc != "" {
			docs = append(docs, doc)
		}
		current = nil
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "---" || strings.HasPrefix(trimmed, "--- ") {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return docs
}
