package model

import "strings"

// ParseTags turns the comma separated tag input into a trimmed list
// with empty entries filtered out
func ParseTags(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			tags = append(tags, p)
		}
	}

	return tags
}

// FormatTags is the display form of a tag list. FormatTags and
// ParseTags round-trip exactly
func FormatTags(tags []string) string {
	return strings.Join(tags, ", ")
}
