package letters

import (
	"regexp"
	"strconv"
)

var percentPattern = regexp.MustCompile(`(\d{1,3})\s*%`)

// extractPercentages returns every "NN%" value embedded in the given
// free-text fields, in order of appearance. User-supplied statistics take
// priority over generated ones, so the builder samples from this list
// before falling back to a random percentage.
func extractPercentages(fields ...string) []int {
	var out []int
	for _, field := range fields {
		for _, match := range percentPattern.FindAllStringSubmatch(field, -1) {
			n, err := strconv.Atoi(match[1])
			if err != nil {
				continue
			}
			out = append(out, n)
		}
	}
	return out
}
