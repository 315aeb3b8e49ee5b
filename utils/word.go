package utils

import (
	"regexp"
	"strings"

	"baliance.com/gooxml/document"
)

var htmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// GenerateJDDocument renders the job-description HTML into a .docx so a
// downloadable JD exists even when the recruiter only typed text.
func GenerateJDDocument(jobName, descriptionHTML, filepath string) error {
	doc := document.New()
	doc.AddParagraph().AddRun().AddText(jobName)
	for _, line := range htmlToLines(descriptionHTML) {
		doc.AddParagraph().AddRun().AddText(line)
	}
	return doc.SaveToFile(filepath)
}

// htmlToLines strips markup and yields the non-empty text lines.
func htmlToLines(html string) []string {
	text := strings.ReplaceAll(html, "</p>", "\n")
	text = strings.ReplaceAll(text, "<br>", "\n")
	text = strings.ReplaceAll(text, "<br/>", "\n")
	text = htmlTagPattern.ReplaceAllString(text, "")

	lines := []string{}
	for _, line := range strings.Split(text, "\n") {
		if l := strings.TrimSpace(line); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
