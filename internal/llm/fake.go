package llm

import (
	"context"
	"sync"
)

// FakeClient returns canned text for offline use and tests. It records every
// prompt it receives so tests can assert on composed requests.
type FakeClient struct {
	mu       sync.Mutex
	response string
	err      error
	prompts  []string
}

func NewFakeClient(response string) *FakeClient {
	return &FakeClient{response: response}
}

func (f *FakeClient) Name() string { return "FakeLLM" }
func (f *FakeClient) Close() error { return nil }

// Fail makes every subsequent call return err.
func (f *FakeClient) Fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

// SetResponse changes the canned reply.
func (f *FakeClient) SetResponse(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.response = text
}

// Prompts returns a copy of all prompts seen so far.
func (f *FakeClient) Prompts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.prompts...)
}

func (f *FakeClient) GenerateVision(_ context.Context, prompt string, _ []byte, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	if f.response == "" {
		return "", ErrEmptyResponse
	}
	return f.response, nil
}
