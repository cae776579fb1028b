package textutil

import "strings"

// Dedent cleans up a multi-line string literal for use in tests.
//
// The input is split with Lines, normalized with TrimLines, and the leading
// indentation of the first line is stripped from the front of every line
// that carries it. The result is joined with "\n".
//
//	input := Dedent(`
//		line 1
//			line 2
//		line 3
//	`)
//	// "line 1\n\tline 2\nline 3"
func Dedent(s string) string {
	lines := TrimLines(Lines(s))
	if len(lines) == 0 {
		return ""
	}
	first := lines[0]
	indent := first[:len(first)-len(strings.TrimLeft(first, " \t"))]
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.TrimPrefix(l, indent)
	}
	return Join(out)
}
