package textproc

import (
	"html"
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	mdLinkPattern  = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	bareURLPattern = regexp.MustCompile(`https?://\S+|www\.\S+`)
	htmlTagPattern = regexp.MustCompile(`<[^>]+>`)
)

// RemoveLinks strips markdown links (keeping their text) and bare URLs.
func RemoveLinks(input string) string {
	input = mdLinkPattern.ReplaceAllString(input, "$1")
	return bareURLPattern.ReplaceAllString(input, "")
}

// Sanitize turns a transcript pasted from notes or docs into plain text:
// markdown is rendered and the markup stripped, links removed, and the
// remainder re-joined on single spaces. Plain input passes through with
// only whitespace collapsed. Tags are dropped, not replaced with spaces,
// so inline markup leaves no seams around punctuation; blocks stay
// separated by the newlines blackfriday emits between them.
func Sanitize(input string) string {
	rendered := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := htmlTagPattern.ReplaceAllString(string(rendered), "")
	plain = html.UnescapeString(plain)
	plain = strings.Join(strings.Fields(plain), " ")
	return RemoveLinks(plain)
}
