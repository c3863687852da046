package language

import (
	"fmt"
	"strings"
)

// ParseRange parses a subtag range of the kind used by IANA registry
// deprecation records, e.g. "qaa..qzz". The input must be either a
// single subtag or exactly two subtags separated by "..", each
// well-formed for the converter's kind; anything else fails with a
// MalformedTagRangeError. Results are returned in canonical casing:
// two elements for a range, one for a bare subtag.
func ParseRange(s string, c Converter) ([]string, error) {
	parts := strings.Split(s, "..")
	if len(parts) > 2 {
		return nil, &MalformedTagRangeError{Range: s, Reason: `more than one ".." separator`}
	}
	out := make([]string, 0, 2)
	for _, p := range parts {
		v, err := c.Canonical(p)
		if err != nil {
			return nil, &MalformedTagRangeError{
				Range:  s,
				Reason: fmt.Sprintf("not a well-formed %v subtag: %q", c.Kind(), p),
			}
		}
		out = append(out, v)
	}
	return out, nil
}
