package utils

import "strings"

// GetOutermostStringInBetweenSquareBrackets returns the text from the first
// '[' to the last ']' inclusive, e.g. a JSON array embedded in prose or a
// fenced code block. ok is false when no such span exists.
func GetOutermostStringInBetweenSquareBrackets(str string) (bracketString string, ok bool) {
	var (
		start = "["
		end   = "]"
	)
	s := strings.Index(str, start)
	if s == -1 {
		return
	}

	e := strings.LastIndex(str, end)
	if e == -1 || e < s {
		return
	}

	return str[s : e+1], true
}
