package render

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	notePolicyOnce sync.Once
	notePolicy     *bluemonday.Policy
)

// SanitizeMarkup strips unsafe markup from rendered note fragments before
// they are interpolated into the surrounding chrome.
func SanitizeMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(noteSanitizer().Sanitize(trimmed))
}

func noteSanitizer() *bluemonday.Policy {
	notePolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowElements("input", "select", "option", "button", "span", "label")
		policy.AllowAttrs("type", "checked", "disabled", "value").OnElements("input")
		policy.AllowAttrs("value", "selected").OnElements("option")
		policy.AllowAttrs("type", "disabled").OnElements("button")
		policy.AllowAttrs("class").Globally()
		policy.AllowDataAttributes()
		policy.AllowStyling()

		notePolicy = policy
	})
	return notePolicy
}
