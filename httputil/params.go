package httputil

import (
	"fmt"
	"strconv"
	"strings"
)

// IntOpts controls ParseIntParam. Min is checked only when > 0, which covers
// every identifier and term parameter in this API (all are >= 1).
type IntOpts struct {
	Required bool
	Min      int
}

// ParseIntParam parses an integer query/path parameter.
// Returns (value, present, err): an absent optional parameter is
// (0, false, nil); an absent required one, a non-numeric value, or a value
// below Min is an error.
func ParseIntParam(name, raw string, opts IntOpts) (int, bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if opts.Required {
			return 0, false, &ValidationError{
				Message: "missing required parameter",
				Fields:  map[string]string{name: "required"},
			}
		}
		return 0, false, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, &ValidationError{
			Message: "invalid integer parameter",
			Fields:  map[string]string{name: "must be an integer"},
		}
	}
	if opts.Min > 0 && n < opts.Min {
		return 0, false, &ValidationError{
			Message: "parameter out of range",
			Fields:  map[string]string{name: fmt.Sprintf("must be >= %d", opts.Min)},
		}
	}
	return n, true, nil
}
