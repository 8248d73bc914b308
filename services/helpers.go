package services

import "strings"

// teacherName joins prefix+first last the way names are displayed everywhere
// in the app (Thai prefixes attach directly to the first name).
func teacherName(prefix, first, last string) string {
	return strings.TrimSpace(prefix + first + " " + last)
}
