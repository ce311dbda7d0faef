package source

import "strings"

// Normalize converts CRLF and bare CR line terminators to a single LF.
// The parsing engine assumes its input buffer is already normalized.
func Normalize(text string) string {
	if !strings.ContainsRune(text, '\r') {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
