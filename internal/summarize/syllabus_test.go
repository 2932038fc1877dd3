package summarize

import (
	"strings"
	"testing"
)

const validJSON = `{
    "exam": "GATE",
    "subjects": [
        {
            "subject": "Engineering Mathematics",
            "topics": [
                {
                    "topic": "Linear Algebra",
                    "subtopics": ["Matrices", "Eigenvalues"]
                }
            ]
        }
    ]
}`

func TestParseSyllabus_Valid(t *testing.T) {
	s, err := ParseSyllabus(validJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Exam != "GATE" {
		t.Errorf("exam = %q", s.Exam)
	}
	if len(s.Subjects) != 1 || s.Subjects[0].Subject != "Engineering Mathematics" {
		t.Errorf("subjects = %+v", s.Subjects)
	}
	if len(s.Subjects[0].Topics) != 1 || len(s.Subjects[0].Topics[0].Subtopics) != 2 {
		t.Errorf("topics = %+v", s.Subjects[0].Topics)
	}
}

func TestParseSyllabus_CodeFenced(t *testing.T) {
	fenced := "```json\n" + validJSON + "\n```"
	s, err := ParseSyllabus(fenced)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Exam != "GATE" {
		t.Errorf("exam = %q", s.Exam)
	}
}

func TestParseSyllabus_InvalidJSONIsError(t *testing.T) {
	cases := []string{
		"not json at all",
		"No relevant syllabus found.",
		`{"exam": "GATE", "subjects": [`,
		"",
	}
	for _, raw := range cases {
		if _, err := ParseSyllabus(raw); err == nil {
			t.Errorf("ParseSyllabus(%q) should fail", raw)
		}
	}
}

func TestParseSyllabus_ShapeValidated(t *testing.T) {
	cases := []string{
		`{"subjects": [{"subject": "Math", "topics": []}]}`,
		`{"exam": "GATE", "subjects": []}`,
		`{"exam": "GATE", "subjects": [{"subject": "", "topics": []}]}`,
	}
	for _, raw := range cases {
		if _, err := ParseSyllabus(raw); err == nil {
			t.Errorf("ParseSyllabus(%q) should fail validation", raw)
		}
	}
}

func TestEncodePretty_FourSpaceIndent(t *testing.T) {
	s, err := ParseSyllabus(validJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := s.EncodePretty()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(string(out), "\n    \"subjects\"") {
		t.Errorf("expected 4-space indentation:\n%s", out)
	}
}

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"```json\n{}\n```", "{}"},
		{"```\n{}\n```", "{}"},
		{"{}", "{}"},
		{"  {} \n", "{}"},
	}
	for _, tc := range cases {
		if got := stripCodeFence(tc.in); got != tc.want {
			t.Errorf("stripCodeFence(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt("UPSC", "Syllabus from https://a.com: history, polity")
	for _, want := range []string{"UPSC", "subtopics", "history, polity", "JSON"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
