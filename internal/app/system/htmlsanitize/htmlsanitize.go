// Package htmlsanitize strips HTML from user-supplied text before it is
// persisted. Registration fields are rendered back into the admin table, so
// free-text input (organisation name, interests, names) must not carry markup.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Strip removes all HTML elements from s, unescapes the entities the policy
// introduces, and trims surrounding whitespace.
func Strip(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
