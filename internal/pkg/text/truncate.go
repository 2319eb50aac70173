package text

// Truncate 按字节截断，超长时追加省略号。
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// Snippet 按字符数截取前 max 个字符（报告多为中文，需按 rune 数）。
func Snippet(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
