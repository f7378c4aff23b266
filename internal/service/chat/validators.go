package chat

import "unicode/utf8"

const (
	maxMessageLength = 1000
	previewLength    = 50
)

func isValidMessageLength(text string) bool {
	return utf8.RuneCountInString(text) <= maxMessageLength
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLength {
		return text
	}
	return string(runes[:previewLength]) + "..."
}
