package enum

import "strings"

// lookup resolves a display name case-insensitively to its index in names
func lookup(names []string, str string) (int, bool) {
	for i, name := range names {
		if strings.EqualFold(name, strings.TrimSpace(str)) {
			return i, true
		}
	}
	return 0, false
}

func nameOf(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return ""
	}
	return names[i]
}

// scanInt reads an integer column value written by Value
func scanInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int64:
		return int(v), true
	case int32:
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}
