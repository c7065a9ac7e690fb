package xmain

import "strings"

// wrap breaks s into lines of at most w columns, counting an indent of i columns on
// every line, and joins them with the indent. Words longer than a line are kept whole.
func wrap(i, w int, s string) string {
	width := w - i
	if width < 24 {
		return s
	}

	indent := "\n" + strings.Repeat(" ", i)
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, wrapN(width, para)...)
	}
	return strings.Join(lines, indent)
}

func wrapN(width int, s string) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}
