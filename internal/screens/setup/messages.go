package setup

import "time"

// quizReadyMsg is sent when quiz generation finishes.
type quizReadyMsg struct {
	Err error
}

// spinnerTickMsg animates the loading spinner while generating.
type spinnerTickMsg time.Time
