package quizgen

import (
	"fmt"
	"strings"
)

// promptTemplate is the fixed instruction sent to the LLM. The age leads so
// the model calibrates tone; the STRICT RULES block and the inline schema
// push the model toward a bare JSON payload, though the generator still
// tolerates fences and prose around it.
const promptTemplate = `Generate a quiz for a %s-year-old child named %s.

STRICT RULES:
- Output ONLY valid JSON
- No explanations
- No markdown
- No extra text
- No code blocks
- Explanation must be simple and child-friendly

JSON format:
{
  "quiz_title": "string",
  "questions": [
    {
      "id": 1,
      "question": "string",
      "options": {
        "A": "string",
        "B": "string",
        "C": "string",
        "D": "string"
      },
      "correct_answer": "A",
      "explanation": "string"
    }
  ]
}

Topic: %s
Difficulty: %s
Number of questions: %d`

// BuildPrompt renders the quiz generation prompt from learner parameters.
// Pure function; parameters are embedded verbatim with no escaping, so
// template-breaking text in Topic or Name can derail generation. The
// failure mode is a GenerationError and a manual retry, never corruption.
func BuildPrompt(p Params) string {
	return strings.TrimSpace(fmt.Sprintf(promptTemplate,
		p.Age, p.Name, p.Topic, p.Difficulty, p.Count))
}
