package textutil

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	mdLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern    = regexp.MustCompile(`https?://\S+|www\.\S+`)
	htmlTag       = regexp.MustCompile(`<[^>]*>`)
)

// RemoveLinks strips markdown links (keeping the link text) and bare URLs.
func RemoveLinks(input string) string {
	input = mdLinkPattern.ReplaceAllString(input, "$1")
	return urlPattern.ReplaceAllString(input, "")
}

// StripMarkup renders markdown to plain text and removes links, so lexicon
// scoring sees prose instead of formatting.
func StripMarkup(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := htmlTag.ReplaceAllString(string(output), " ")
	plain = strings.Join(strings.Fields(plain), " ")

	return RemoveLinks(plain)
}
