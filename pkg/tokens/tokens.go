// Package tokens estimates token usage client-side.
package tokens

import "strings"

// Count estimates tokens as whitespace-separated words.
func Count(text string) int {
	return len(strings.Fields(text))
}
