package model

import "strings"

// DefaultLabeler derives a field label from the object's visible text: colon
// characters are stripped and the result trimmed, falling back to the raw
// field identifier when nothing printable remains.
func DefaultLabeler(text, fieldID string) string {
	label := strings.ReplaceAll(text, ":", "")
	label = strings.TrimSpace(label)
	if label == "" {
		return fieldID
	}
	return label
}
