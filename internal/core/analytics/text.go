package analytics

const ellipsis = "..."

// truncateRunes returns the first n characters of s.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// abbreviate truncates s to n characters and marks the cut with an ellipsis.
func abbreviate(s string, n int) string {
	if t := truncateRunes(s, n); t != s {
		return t + ellipsis
	}
	return s
}
