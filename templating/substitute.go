package templating

import "strings"

// KeyValue is one substitution: every occurrence of Key
// is replaced by Value.
type KeyValue struct {
	Key   string
	Value string
}

// ReplaceKey replaces every leftmost, non-overlapping
// occurrence of key in str with value. Inserted values
// are not scanned again. An empty key leaves str
// unchanged.
func ReplaceKey(str, key, value string) string {
	if key == "" {
		return str
	}

	count := strings.Count(str, key)
	if count == 0 {
		return str
	}

	var sb strings.Builder

	sb.Grow(len(str) + count*(len(value)-len(key)))

	src := str

	for {
		idx := strings.Index(src, key)
		if idx < 0 {
			break
		}

		sb.WriteString(src[:idx])
		sb.WriteString(value)

		src = src[idx+len(key):]
	}

	sb.WriteString(src)

	return sb.String()
}

// ReplaceAll applies kvs to line in order, each pair
// operating on the result of the previous one, so a
// value inserted by an earlier pair can be replaced by a
// later one.
func ReplaceAll(line string, kvs []KeyValue) string {
	for _, kv := range kvs {
		line = ReplaceKey(line, kv.Key, kv.Value)
	}

	return line
}
