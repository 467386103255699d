package quizgen

// Labels are the four option labels every question carries, in display order.
var Labels = []string{"A", "B", "C", "D"}

// Difficulties are the difficulty levels offered to the learner.
var Difficulties = []string{"Easy", "Medium", "Hard"}

// QuestionCounts are the question-count choices offered to the learner.
var QuestionCounts = []int{10, 20, 30, 50, 100}

// Quiz is a titled, ordered collection of questions generated for one
// request. Quizzes are built once from LLM output and never mutated.
type Quiz struct {
	// Title is the quiz title supplied by the LLM.
	Title string

	// Questions holds the questions in presentation order.
	Questions []Question
}

// Question is one multiple-choice item.
type Question struct {
	// ID is a positive integer, unique within the quiz.
	ID int

	// Prompt is the question text shown to the learner.
	Prompt string

	// Options maps a label (A-D) to the option text.
	Options map[string]string

	// CorrectLabel is the label of the correct option. Always a key of Options.
	CorrectLabel string

	// Explanation is a short child-friendly explanation of the answer.
	// May be empty when the LLM omitted it.
	Explanation string
}

// OptionText returns the option formatted as "A. text" for display.
func (q Question) OptionText(label string) string {
	return label + ". " + q.Options[label]
}

// Params are the learner-supplied inputs to quiz generation.
// All values are embedded verbatim into the prompt.
type Params struct {
	Name       string
	Age        string
	Topic      string
	Difficulty string
	Count      int
}
