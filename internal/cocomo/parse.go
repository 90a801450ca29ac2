package cocomo

import (
	"fmt"
	"strconv"
	"strings"
)

var classAliases = map[string]ProjectClass{
	"O": ClassOrganic,
	"S": ClassSemiDetached,
	"E": ClassEmbedded,
}

// ParseClass resolves a project class from its name or its single letter
// alias (O, S, E). An empty value selects the organic class.
func ParseClass(s string) (ProjectClass, error) {
	if s == "" {
		return ClassOrganic, nil
	}
	if class, ok := classAliases[s]; ok {
		return class, nil
	}
	class := ProjectClass(s)
	if !class.Valid() {
		return "", fmt.Errorf("%w: unknown project class '%s'", ErrInvalidConfiguration, s)
	}
	return class, nil
}

// ParseRating resolves a rating from its full token or its abbreviation.
// Matching is case-sensitive.
func ParseRating(s string) (Rating, bool) {
	if r, ok := ratingAbbreviations[s]; ok {
		return r, true
	}
	r := Rating(s)
	for _, known := range Ratings() {
		if r == known {
			return r, true
		}
	}
	return "", false
}

// ParseSLOC parses a textual line count. Only whole numbers are accepted.
func ParseSLOC(s string) (int, error) {
	sloc, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: SLOC must be an integer, got '%s'", ErrInvalidArgument, s)
	}
	return sloc, nil
}
