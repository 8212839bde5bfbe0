package notifications

import (
	"regexp"
	"strings"
)

var linkPattern = regexp.MustCompile(`<a href='([^']*)'>([^<]*)</a>`)
var boldPattern = regexp.MustCompile(`<b>\s*(.*?)\s*</b>`)

// slackMarkup translates the html fragments of a composed message to Slack mrkdwn
func slackMarkup(text string) string {
	text = linkPattern.ReplaceAllString(text, "<$1|$2>")
	text = boldPattern.ReplaceAllString(text, "*$1*")
	return strings.ReplaceAll(text, "<br/>", "\n")
}

// discordMarkup translates the html fragments of a composed message to Discord markdown
func discordMarkup(text string) string {
	text = linkPattern.ReplaceAllString(text, "[$2]($1)")
	text = boldPattern.ReplaceAllString(text, "**$1**")
	return strings.ReplaceAll(text, "<br/>", "\n")
}
