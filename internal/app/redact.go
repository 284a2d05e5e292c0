package app

import (
	"net/url"
	"strings"
)

// redactURL hides proxy credentials before the value reaches a log line.
func redactURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	parsed, err := url.Parse(trimmed)
	if err != nil || parsed == nil || parsed.Host == "" {
		return "<invalid>"
	}
	if parsed.User == nil {
		return parsed.String()
	}
	return parsed.Redacted()
}
