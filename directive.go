package pxreader

import (
	"fmt"
	"strings"
)

// Directive names used to build a cube.
const (
	headingKey = "HEADING"
	stubKey    = "STUB"
	dataKey    = "DATA"
)

// Directives maps a PC-AXIS directive name, e.g. HEADING or
// VALUES("Year"), to its raw, unparsed value.
type Directives map[string]string

// SplitDirectives splits the text of a PC-AXIS file into its
// directives.  Statements are terminated by ';' and the name is
// separated from the value by the first '='.  Blank statements are
// skipped.  If a name occurs more than once the last value is kept.
func SplitDirectives(text string) (Directives, error) {

	dirs := make(Directives)

	for _, stmt := range strings.Split(text, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}

		name, value, ok := strings.Cut(stmt, "=")
		if !ok {
			return nil, newParseError(abbrev(stmt), ErrMalformedDirective)
		}
		dirs[name] = value
	}

	return dirs, nil
}

// valuesKey returns the name of the directive holding the categories
// of the given dimension.
func valuesKey(dim string) string {
	return fmt.Sprintf("VALUES(\"%s\")", dim)
}

// Unquoted returns the value of the named directive with surrounding
// white space and double quotes removed.
func (dirs Directives) Unquoted(name string) (string, bool) {
	v, ok := dirs[name]
	if !ok {
		return "", false
	}
	return strings.Trim(strings.TrimSpace(v), "\""), true
}

// abbrev shortens a statement for use in an error message.
func abbrev(s string) string {
	const max = 32
	s = strings.Join(strings.Fields(s), " ")
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
