package glyph

import (
	"regexp"
	"strings"

	"github.com/lixenwraith/starglyph/parameter"
)

var disallowed = regexp.MustCompile(`[^\w\s-]`)

// Sanitize keeps ASCII word characters, whitespace and hyphens, caps length, then trims
func Sanitize(input string) string {
	if input == "" {
		return ""
	}
	s := disallowed.ReplaceAllString(input, "")
	if len(s) > parameter.MaxTextLength {
		s = s[:parameter.MaxTextLength]
	}
	return strings.TrimSpace(s)
}
