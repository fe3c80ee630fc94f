package ai

import (
	"context"
	"sync"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"
)

type fakeProvider struct {
	name     string
	generate func(prompt string, opts *GenerateOptions) (ProviderResult, error)
	chat     func(req ChatRequest) (ProviderResult, error)
	ping     bool

	mu    sync.Mutex
	calls int
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Generate(_ context.Context, prompt string, _ ModelPreset, opts *GenerateOptions) (ProviderResult, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.generate(prompt, opts)
}

func (f *fakeProvider) Chat(_ context.Context, req ChatRequest) (ProviderResult, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.chat(req)
}

func (f *fakeProvider) Ping(context.Context) bool { return f.ping }

func (f *fakeProvider) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeChatModel struct {
	requests []ChatRequest
	result   ProviderResult
	meta     *GenerateMetadata
	err      error
}

func (f *fakeChatModel) Chat(_ context.Context, req ChatRequest) (ProviderResult, *GenerateMetadata, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return ProviderResult{}, nil, f.err
	}
	meta := f.meta
	if meta == nil {
		meta = &GenerateMetadata{Provider: "Gemini", Model: "gemini-2.5-flash"}
	}
	return f.result, meta, nil
}

type staticPortfolio string

func (s staticPortfolio) PromptSummary(_ domain.Language) (string, error) { return string(s), nil }
