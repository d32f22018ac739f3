// Package stacktrace trims goroutine stack dumps down to project frames.
package stacktrace

import "strings"

// InternalPaths returns the "internal/<pkg>/<file>.go:<line>" frames of a raw
// debug.Stack() dump, in call order.
func InternalPaths(stack []byte) []string {
	lines := strings.Split(string(stack), "\n")
	paths := make([]string, 0, len(lines)/2)

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, ".go:") {
			continue
		}

		// file lines look like "/abs/path/internal/x/y.go:42 +0x1d"
		line, _, _ = strings.Cut(line, " ")
		if idx := strings.Index(line, "/internal/"); idx != -1 {
			paths = append(paths, line[idx+1:])
		}
	}

	return paths
}
