// Package textutil provides the line model shared by the fixture harness.
//
// All fixture comparison operates on ordered line sequences produced by
// Lines, never on raw bytes. This makes the pass/fail outcome insensitive
// to a trailing-newline-only difference between two files: a file ending
// with a single line terminator parses to the same sequence as one without.
package textutil

import "strings"

// Lines splits the input into an ordered sequence of lines.
//
// Recognized line terminators are "\n", "\r\n", and a lone "\r". A single
// terminator at the end of the input does not produce a trailing empty
// line; a doubled terminator does. An empty input yields zero lines.
//
// No whitespace is trimmed. Use TrimLines for the forgiving mode.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			out = append(out, s[start:i])
			start = i + 1
		case '\r':
			out = append(out, s[start:i])
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

// Join joins lines with "\n". The inverse of Lines up to trailing-newline
// normalization.
func Join(lines []string) string {
	return strings.Join(lines, "\n")
}

// TrimLines normalizes a line sequence for whitespace-forgiving comparison:
// trailing whitespace is removed from every line, and leading and trailing
// blank lines are dropped. Blank lines in the interior are kept.
//
// A blank line is one that is empty after trimming trailing whitespace.
func TrimLines(lines []string) []string {
	trimmed := make([]string, len(lines))
	for i, l := range lines {
		trimmed[i] = strings.TrimRight(l, " \t")
	}
	start := 0
	for start < len(trimmed) && trimmed[start] == "" {
		start++
	}
	end := len(trimmed)
	for end > start && trimmed[end-1] == "" {
		end--
	}
	return trimmed[start:end]
}
