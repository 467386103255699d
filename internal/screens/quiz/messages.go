package quiz

// pdfSavedMsg is sent after a PDF export attempt.
type pdfSavedMsg struct {
	Path string
	Err  error
}
