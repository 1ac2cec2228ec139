package llm

import (
	"context"
	"log"
)

// WithLogging logs request sizes and errors. Provide a custom logger or nil
// to use log.Default().
func WithLogging(logger *log.Logger) Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(next Client) Client {
		return &logging{next: next, log: logger}
	}
}

type logging struct {
	next Client
	log  *log.Logger
}

func (l *logging) Name() string { return l.next.Name() }
func (l *logging) Close() error { return l.next.Close() }

func (l *logging) GenerateVision(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	l.log.Printf("LLM request (%s): prompt %d bytes, image %d bytes (%s)", l.next.Name(), len(prompt), len(image), mimeType)
	out, err := l.next.GenerateVision(ctx, prompt, image, mimeType)
	if err != nil {
		l.log.Printf("LLM error (%s): %v", l.next.Name(), err)
	}
	return out, err
}
