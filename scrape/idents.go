package main

import (
	"regexp"
	"strings"
)

var (
	identAcronymBoundary = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	identWordBoundary    = regexp.MustCompile(`([a-z\d])([A-Z])`)
)

// makeIdentUnderscores splits a mixed-case name into words at its case
// boundaries and joins them with underscores, in lower case. A run of
// capitals stays together as one word unless its last letter starts a
// new capitalised word, so "OpSDot" becomes "op_s_dot" and "OpTypeInt"
// becomes "op_type_int".
func makeIdentUnderscores(inp string) string {
	s := identAcronymBoundary.ReplaceAllString(inp, "${1}_${2}")
	s = identWordBoundary.ReplaceAllString(s, "${1}_${2}")
	s = strings.ReplaceAll(s, "-", "_")
	return strings.ToLower(s)
}

func makeIdentScreaming(inp string) string {
	return strings.ToUpper(makeIdentUnderscores(inp))
}
