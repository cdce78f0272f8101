package input

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseScript expands a replay script into one intent per tick
// Steps are separated by commas or whitespace; "name*N" repeats a step N times
// Example: "start, confirm, left*3, confirm*2, wait*40, confirm"
func ParseScript(script string) ([]Intent, error) {
	fields := strings.FieldsFunc(script, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	var out []Intent
	for _, field := range fields {
		name, count := field, 1
		if i := strings.IndexByte(field, '*'); i >= 0 {
			n, err := strconv.Atoi(field[i+1:])
			if err != nil || n < 1 {
				return nil, fmt.Errorf("script step %q: invalid repeat count", field)
			}
			name, count = field[:i], n
		}

		intent, err := resolveAction(name)
		if err != nil {
			return nil, fmt.Errorf("script step %q: %w", field, err)
		}
		for j := 0; j < count; j++ {
			out = append(out, intent)
		}
	}
	return out, nil
}
