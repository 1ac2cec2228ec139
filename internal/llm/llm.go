package llm

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when the model replies without any usable
// text candidate.
var ErrEmptyResponse = errors.New("llm: empty response from model")

// Client is the vision-language inference boundary. Implementations send a
// text prompt alongside an inline image payload and return generated text.
type Client interface {
	Name() string
	GenerateVision(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
	Close() error
}

// Middleware decorates a Client with a cross-cutting concern.
type Middleware func(Client) Client

// Chain applies middlewares around base, outermost first.
func Chain(base Client, mws ...Middleware) Client {
	c := base
	for i := len(mws) - 1; i >= 0; i-- {
		c = mws[i](c)
	}
	return c
}
