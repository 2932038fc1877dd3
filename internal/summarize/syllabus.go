package summarize

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Syllabus is the structured artifact produced for one exam.
type Syllabus struct {
	Exam     string    `json:"exam"`
	Subjects []Subject `json:"subjects"`
}

type Subject struct {
	Subject string  `json:"subject"`
	Topics  []Topic `json:"topics"`
}

type Topic struct {
	Topic     string   `json:"topic"`
	Subtopics []string `json:"subtopics"`
}

var codeFenceRe = regexp.MustCompile("(?s)^```(?:json)?\\s*(.*?)\\s*```$")

// stripCodeFence removes a surrounding markdown code fence, which models
// often wrap around JSON output.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if m := codeFenceRe.FindStringSubmatch(s); len(m) > 1 {
		return m[1]
	}
	return s
}

// ParseSyllabus decodes the model's raw output into a Syllabus. Invalid
// JSON is a returned error, never a silent default.
func ParseSyllabus(raw string) (*Syllabus, error) {
	text := stripCodeFence(raw)
	var s Syllabus
	if err := json.Unmarshal([]byte(text), &s); err != nil {
		return nil, fmt.Errorf("parse syllabus json: %w (raw: %s)", err, truncate(text, 200))
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid syllabus: %w", err)
	}
	return &s, nil
}

// Validate checks the decoded syllabus has the required shape.
func (s *Syllabus) Validate() error {
	if strings.TrimSpace(s.Exam) == "" {
		return fmt.Errorf("missing exam name")
	}
	if len(s.Subjects) == 0 {
		return fmt.Errorf("no subjects")
	}
	for i, sub := range s.Subjects {
		if strings.TrimSpace(sub.Subject) == "" {
			return fmt.Errorf("subject %d has no name", i)
		}
	}
	return nil
}

// EncodePretty serializes the syllabus with 4-space indentation, the
// format used for display and the syllabus.json download.
func (s *Syllabus) EncodePretty() ([]byte, error) {
	return json.MarshalIndent(s, "", "    ")
}
