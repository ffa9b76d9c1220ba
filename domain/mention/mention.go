// Package mention finds @name mentions in free text.
package mention

import (
	"regexp"

	"github.com/samber/lo"
)

// An @ followed by optional spaces, then the name as a run of word characters.
var mentionPattern = regexp.MustCompile(`@\s*(\w+)`)

var namePattern = regexp.MustCompile(`^\w+$`)

// Extract returns the distinct names mentioned in text, in order of first occurrence.
// Text without any mention yields an empty slice.
func Extract(text string) []string {
	matches := mentionPattern.FindAllStringSubmatch(text, -1)
	names := lo.Map(matches, func(m []string, _ int) string {
		return m[1]
	})
	return lo.Uniq(names)
}

// IsName reports whether a mention can address name exactly, i.e. Extract
// would return it unchanged.
func IsName(name string) bool {
	return namePattern.MatchString(name)
}
