package llm

import (
	"context"
	"fmt"
	"io"
	"time"
)

// LoggingProvider is a decorator that writes one line per LLM request to
// an io.Writer: purpose, model, latency, token usage and outcome.
type LoggingProvider struct {
	inner Provider
	w     io.Writer
}

// WithLogging wraps a Provider with request logging. A nil writer
// disables logging but keeps the decorator in place.
func WithLogging(p Provider, w io.Writer) Provider {
	return &LoggingProvider{inner: p, w: w}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	if l.w != nil {
		latency := time.Since(start).Round(time.Millisecond)
		session := ""
		if id := SessionFrom(ctx); id != "" {
			session = " session=" + id
		}
		if err != nil {
			fmt.Fprintf(l.w, "llm purpose=%s%s model=%s latency=%s error=%q\n",
				purpose, session, l.inner.ModelID(), latency, err.Error())
		} else {
			fmt.Fprintf(l.w, "llm purpose=%s%s model=%s latency=%s tokens_in=%d tokens_out=%d stop=%s\n",
				purpose, session, resp.Model, latency,
				resp.Usage.InputTokens, resp.Usage.OutputTokens, resp.StopReason)
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
