package vanilla

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce sync.Once
	textPolicy *bluemonday.Policy
)

// sanitizeText strips any markup a designer may have pasted into a template's
// text objects. The result is plain text: the policy's entity escaping is
// undone so callers escape exactly once when assembling markup.
func sanitizeText(value string) string {
	policyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(value)))
}

func controlID(fieldID string) string {
	trimmed := strings.TrimSpace(fieldID)
	if trimmed == "" {
		return ""
	}
	return "cf-" + trimmed
}
