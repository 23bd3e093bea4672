package mailer

import (
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	stripPolicy     *bluemonday.Policy
	stripPolicyOnce sync.Once

	blockBreak = regexp.MustCompile(`(?i)<\s*(br\s*/?|/p|/div|/h[1-6]|/li|/tr)\s*>`)
	blankLines = regexp.MustCompile(`\n{3,}`)
)

// PlainText derives a plain text alternative from an HTML body.
// Block-level closing tags become line breaks; all markup is removed.
func PlainText(s string) string {
	stripPolicyOnce.Do(func() {
		stripPolicy = bluemonday.StrictPolicy()
	})

	s = blockBreak.ReplaceAllString(s, "$0\n")
	s = stripPolicy.Sanitize(s)
	// bluemonday escapes entities in text nodes
	s = html.UnescapeString(s)

	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	s = blankLines.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(s)
}
