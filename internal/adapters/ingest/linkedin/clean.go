// Package linkedin reads LinkedIn data export CSVs and repairs the quoting
// damage the exporter leaves behind, producing the raw records the
// aggregation layer ingests
//
// Shares.csv wraps commentary in double-double quote escaping, Comments.csv
// uses backslash escaped quotes. Both repairs are applied defensively so a
// file that was already clean passes through unchanged
package linkedin

import "strings"

// CleanShareCommentary repairs the ShareCommentary field of a shares export
// Strips one leading and one trailing quote, converts the quote-newline-quote
// line break pattern to a real newline, and unescapes doubled quotes
func CleanShareCommentary(value string) string {
	text := value
	if strings.HasPrefix(text, `"`) {
		text = text[1:]
	}
	if strings.HasSuffix(text, `"`) {
		text = text[:len(text)-1]
	}
	text = strings.ReplaceAll(text, "\"\n\"", "\n")
	text = strings.ReplaceAll(text, `""`, `"`)
	return strings.TrimSpace(text)
}

// CleanCommentMessage repairs the Message field of a comments export
// Unescapes backslash escaped quotes and falls back to doubled quote
// unescaping, line breaks are preserved
func CleanCommentMessage(value string) string {
	text := strings.ReplaceAll(value, `\"`, `"`)
	text = strings.ReplaceAll(text, `""`, `"`)
	return strings.TrimSpace(text)
}

// CleanEmptyField collapses quoted-empty markers to the empty string
func CleanEmptyField(value string) string {
	text := strings.TrimSpace(value)
	if text == `""` || text == `"` {
		return ""
	}
	return text
}
