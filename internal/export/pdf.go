// Package export renders a generated quiz as a printable PDF.
package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/abhisek/quizbee/internal/quizgen"
)

// FileName is the suggested name for a saved quiz PDF.
const FileName = "quizbee_quiz.pdf"

// QuizPDF renders the quiz as an A4 document: a centered title followed by
// each question and its lettered options. Correct answers and explanations
// are deliberately left out so the sheet can be handed to a learner.
func QuizPDF(title string, quiz *quizgen.Quiz) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(26, 35, 126)
	pdf.CellFormat(0, 12, title, "", 1, "C", false, 0, "")
	if quiz.Title != "" {
		pdf.SetFont("Helvetica", "", 13)
		pdf.CellFormat(0, 8, quiz.Title, "", 1, "C", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetTextColor(0, 0, 0)
	for _, q := range quiz.Questions {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, 6, fmt.Sprintf("Q%d. %s", q.ID, q.Prompt), "", "L", false)

		pdf.SetFont("Helvetica", "", 11)
		for _, label := range quizgen.Labels {
			pdf.MultiCell(0, 6, q.OptionText(label), "", "L", false)
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render quiz pdf: %w", err)
	}
	return buf.Bytes(), nil
}
