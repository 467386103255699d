package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/abhisek/quizbee/internal/app"
	"github.com/abhisek/quizbee/internal/history"
	"github.com/abhisek/quizbee/internal/llm"
	"github.com/abhisek/quizbee/internal/quizgen"
	"github.com/abhisek/quizbee/internal/session"
	"github.com/spf13/cobra"
)

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	historyPath, err := resolveHistoryPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve history path: %w", err)
	}
	store := history.NewStore(historyPath)

	// Writing request logs to the terminal would corrupt the TUI, so
	// logging only happens when a log file is configured.
	var logw io.Writer
	if p := os.Getenv("QUIZBEE_LLM_LOG"); p != "" {
		f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "warning: cannot open LLM log file:", err)
		} else {
			defer f.Close()
			logw = f
		}
	}

	provider, err := llm.NewProviderFromEnv(ctx, logw)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Set GROQ_API_KEY (or another provider key) and try again.")
		return err
	}

	generator := quizgen.New(provider, quizgen.DefaultConfig())
	sess := session.New(generator, store)

	return app.Run(app.Options{
		Session: sess,
		History: store,
	})
}
