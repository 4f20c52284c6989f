// Package llmtest provides a recording llm.Client for tests.
package llmtest

import (
	"context"
	"sync"

	"alfredoptarigan/interview-coach/internal/schemas"
)

// Call is one recorded GenerateJSON invocation.
type Call struct {
	Prompt string
	Output schemas.Contract
}

// FakeClient returns a canned reply (or error) and records every call.
type FakeClient struct {
	Reply string
	Err   error

	mu    sync.Mutex
	calls []Call
}

func NewFakeClient(reply string) *FakeClient {
	return &FakeClient{Reply: reply}
}

func NewFailingClient(err error) *FakeClient {
	return &FakeClient{Err: err}
}

// GenerateJSON implements llm.Client.
func (f *FakeClient) GenerateJSON(_ context.Context, prompt string, output schemas.Contract) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, Call{Prompt: prompt, Output: output})
	f.mu.Unlock()

	if f.Err != nil {
		return "", f.Err
	}
	return f.Reply, nil
}

func (f *FakeClient) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *FakeClient) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// LastPrompt returns the most recent prompt, or "" when nothing was sent.
func (f *FakeClient) LastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return ""
	}
	return f.calls[len(f.calls)-1].Prompt
}
