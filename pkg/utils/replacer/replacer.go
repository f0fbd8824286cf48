// Package replacer implements the line-oriented substitution applied
// to tracked files: the remainder of any line starting with
// "<key>:" is replaced by the new value followed by a suffix.
package replacer

import "strings"

// Apply rewrites every line of original that begins with "key:". The
// whitespace immediately after the colon is preserved; everything
// after it becomes value followed by suffix. Lines without the key
// prefix are untouched, and a missing key is a silent no-op: callers
// must treat unchanged output as a valid outcome, not an error.
func Apply(original []byte, key, value, suffix string) []byte {
	prefix := key + ":"

	lines := strings.Split(string(original), "\n")
	for i, line := range lines {
		body, hadCR := strings.CutSuffix(line, "\r")
		if !strings.HasPrefix(body, prefix) {
			continue
		}

		rest := body[len(prefix):]
		ws := rest[:len(rest)-len(strings.TrimLeft(rest, " \t"))]

		body = prefix + ws + value + suffix
		if hadCR {
			body += "\r"
		}
		lines[i] = body
	}

	return []byte(strings.Join(lines, "\n"))
}
