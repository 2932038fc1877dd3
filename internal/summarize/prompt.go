package summarize

import (
	"fmt"
	"strings"
)

// syllabusShape is the literal example of the target JSON embedded in the
// prompt. The schema is fixed: exam, subjects, topics, subtopics.
const syllabusShape = `{
    "exam": "<exam_name>",
    "subjects": [
        {
            "subject": "<subject_name>",
            "topics": [
                {
                    "topic": "<topic_name>",
                    "subtopics": ["<subtopic_1>", "<subtopic_2>"]
                }
            ]
        }
    ]
}`

// BuildPrompt creates the summarization prompt for one exam, embedding the
// gathered syllabus text and the required output shape.
func BuildPrompt(examName, gathered string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("You have been given the latest syllabus for the %s exam, gathered from different websites. ", examName))
	sb.WriteString("Analyze it and return the final structured syllabus. ")
	sb.WriteString("You may combine the provided material with your own knowledge of this exam to fill gaps. ")
	sb.WriteString("Respond with ONLY a JSON object in exactly this structure, no other text:\n\n")
	sb.WriteString(syllabusShape)
	sb.WriteString(fmt.Sprintf("\n\nUse %q as the exam field.", examName))
	sb.WriteString("\n\n---\n")
	sb.WriteString(gathered)
	return sb.String()
}
