package textutil

import (
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\{([^\s{}]+)\}`)

// Placeholders returns the distinct {name} slots in template, in order of
// first appearance.
func Placeholders(template string) []string {
	var names []string
	seen := map[string]bool{}
	for _, m := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// Fill replaces the placeholders of template with values, matched by
// position: the first distinct placeholder gets values[0], and so on. Every
// occurrence of a placeholder is replaced. Placeholders without a value are
// left as they are; extra values are ignored.
//
//	Fill("Loading {task} ({n}/3)", []string{"lunch", "2"}) // "Loading lunch (2/3)"
func Fill(template string, values []string) string {
	names := Placeholders(template)
	pairs := make([]string, 0, 2*len(names))
	for i, name := range names {
		if i >= len(values) {
			break
		}
		pairs = append(pairs, "{"+name+"}", values[i])
	}
	if len(pairs) == 0 {
		return template
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
