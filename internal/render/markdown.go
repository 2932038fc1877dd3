// Package render formats a structured syllabus for human reading.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/dgallion1/syllafetch/internal/summarize"
)

// Outline renders the syllabus as a markdown outline: one heading per
// subject, a bullet per topic, nested bullets for subtopics.
func Outline(s *summarize.Syllabus) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s Syllabus\n\n", s.Exam)
	for _, sub := range s.Subjects {
		fmt.Fprintf(&sb, "## %s\n\n", sub.Subject)
		for _, topic := range sub.Topics {
			fmt.Fprintf(&sb, "- **%s**\n", topic.Topic)
			for _, st := range topic.Subtopics {
				fmt.Fprintf(&sb, "    - %s\n", st)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// HTML converts the markdown outline to HTML.
func HTML(s *summarize.Syllabus) ([]byte, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(Outline(s)), &buf); err != nil {
		return nil, fmt.Errorf("render outline: %w", err)
	}
	return buf.Bytes(), nil
}
