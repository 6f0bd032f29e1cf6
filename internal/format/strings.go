package format

// Truncate shortens s to at most maxLen runes of output, appending an
// ellipsis when truncation happens.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
