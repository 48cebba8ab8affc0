package viewer

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/bryanwahyu/medscan/internal/domain/analysis"
)

const headingOpen = `<span class="analysis-heading" style="color: #007bff; font-weight: bold;">`

var (
	stripPolicy = bluemonday.StrictPolicy()

	headingPatterns = compileHeadings(analysis.SectionHeadings)
	breakPattern    = regexp.MustCompile(`(?i)<br\s*/?>`)
)

func compileHeadings(headings []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(headings))
	for _, h := range headings {
		out = append(out, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(h)))
	}
	return out
}

// FormatForDisplay turns analysis text into page markup. The text is
// entity-escaped, so every character the model wrote is shown as text, then
// section headings are highlighted with their original casing and newlines
// become <br>.
func FormatForDisplay(text string) string {
	out := html.EscapeString(text)
	// headings never overlap, so pass order does not matter
	for _, re := range headingPatterns {
		out = re.ReplaceAllStringFunc(out, func(m string) string {
			return headingOpen + m + "</span>"
		})
	}
	out = strings.ReplaceAll(out, "\r\n", "<br>")
	out = strings.ReplaceAll(out, "\n", "<br>")
	return strings.ReplaceAll(out, "\r", "<br>")
}

// PlainText renders display markup back to terminal text.
func PlainText(markup string) string {
	s := breakPattern.ReplaceAllString(markup, "\n")
	return html.UnescapeString(stripPolicy.Sanitize(s))
}
