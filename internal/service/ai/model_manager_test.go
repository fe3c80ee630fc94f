package ai

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/util"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/pkg/errors"
)

func textProvider(name, text string) *fakeProvider {
	return &fakeProvider{
		name: name,
		generate: func(string, *GenerateOptions) (ProviderResult, error) {
			return ProviderResult{Text: text, Model: name + "-model"}, nil
		},
		chat: func(ChatRequest) (ProviderResult, error) {
			return ProviderResult{Text: text, Model: name + "-model"}, nil
		},
	}
}

func failingProvider(name string, err error) *fakeProvider {
	return &fakeProvider{
		name:     name,
		generate: func(string, *GenerateOptions) (ProviderResult, error) { return ProviderResult{}, err },
		chat:     func(ChatRequest) (ProviderResult, error) { return ProviderResult{}, err },
	}
}

func TestNewModelManagerRequiresAKey(t *testing.T) {
	_, err := NewModelManager(context.Background(), ModelManagerConfig{}, nil, zap.NewNop())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestChatUsesPrimary(t *testing.T) {
	primary := textProvider("Gemini", "hola")
	fallback := textProvider("OpenAI", "hello")
	mm := newModelManager(primary, fallback, nil, zap.NewNop())

	result, meta, err := mm.Chat(context.Background(), ChatRequest{Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "hola", result.Text)
	assert.Equal(t, &GenerateMetadata{Provider: "Gemini", Model: "Gemini-model"}, meta)
	assert.Equal(t, 0, fallback.Calls())
}

func TestChatFallsBack(t *testing.T) {
	primary := failingProvider("Gemini", fmt.Errorf("Error 503, Message: overloaded"))
	fallback := textProvider("OpenAI", "hello")
	mm := newModelManager(primary, fallback, nil, zap.NewNop())

	result, meta, err := mm.Chat(context.Background(), ChatRequest{Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "hello", result.Text)
	assert.True(t, meta.UsedFallback)
	assert.Equal(t, "OpenAI", meta.Provider)
	assert.Equal(t, util.CircuitStateClosed, mm.GetCircuitStatus().State)
}

func TestBothProvidersFail(t *testing.T) {
	mm := newModelManager(
		failingProvider("Gemini", fmt.Errorf("400 bad request")),
		failingProvider("OpenAI", fmt.Errorf("400 bad request")),
		nil, zap.NewNop(),
	)

	_, _, err := mm.Chat(context.Background(), ChatRequest{Message: "hi"})
	require.Error(t, err)
	assert.Equal(t, 502, errors.StatusOf(err))
	assert.Equal(t, 0, mm.GetCircuitStatus().FailureCount, "request errors do not count against the circuit")
}

func TestCircuitOpensOnServiceFailures(t *testing.T) {
	primary := failingProvider("Gemini", fmt.Errorf("Error 500, Message: internal"))
	mm := newModelManager(primary, nil, nil, zap.NewNop())

	for i := 0; i < 3; i++ {
		_, _, err := mm.Chat(context.Background(), ChatRequest{Message: "hi"})
		assert.Equal(t, 502, errors.StatusOf(err))
	}
	assert.Equal(t, util.CircuitStateOpen, mm.GetCircuitStatus().State)

	_, _, err := mm.Chat(context.Background(), ChatRequest{Message: "hi"})
	assert.Equal(t, 503, errors.StatusOf(err))
	assert.Equal(t, 3, primary.Calls(), "open circuit short-circuits the provider")

	mm.ResetCircuit()
	assert.Equal(t, util.CircuitStateClosed, mm.GetCircuitStatus().State)
}

func TestCanceledContextSkipsFallback(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fallback := textProvider("OpenAI", "hello")
	mm := newModelManager(failingProvider("Gemini", context.Canceled), fallback, nil, zap.NewNop())

	_, _, err := mm.Chat(ctx, ChatRequest{Message: "hi"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, fallback.Calls())
}

func TestGenerateJSON(t *testing.T) {
	var seen *GenerateOptions
	primary := &fakeProvider{
		name: "Gemini",
		generate: func(_ string, opts *GenerateOptions) (ProviderResult, error) {
			seen = opts
			return ProviderResult{Text: "```json\n{\"headline\": \"Pareja aventurera\"}\n```"}, nil
		},
	}
	mm := newModelManager(primary, nil, nil, zap.NewNop())

	var dest struct {
		Headline string `json:"headline"`
	}
	meta, err := mm.GenerateJSON(context.Background(), "brief", PresetPrecise, &dest, &GenerateOptions{Model: "custom"})
	require.NoError(t, err)
	assert.Equal(t, "Gemini", meta.Provider)
	assert.Equal(t, "Pareja aventurera", dest.Headline)
	require.NotNil(t, seen)
	assert.True(t, seen.JSONMode)
	assert.Equal(t, "custom", seen.Model)
}

func TestGenerateJSONInvalidPayload(t *testing.T) {
	mm := newModelManager(textProvider("Gemini", "not json"), nil, nil, zap.NewNop())

	var dest map[string]any
	_, err := mm.GenerateJSON(context.Background(), "brief", PresetPrecise, &dest, nil)
	assert.ErrorContains(t, err, "invalid JSON from Gemini")
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("  {\"a\":1}  "))
}

func TestFailureClassification(t *testing.T) {
	tests := []struct {
		err         error
		service     bool
		rateLimited bool
	}{
		{nil, false, false},
		{fmt.Errorf("Error 503, Message: unavailable"), true, false},
		{fmt.Errorf(`{"error":{"code":500,"message":"x"}}`), true, false},
		{fmt.Errorf(`{"error":{"code":400,"message":"bad"}}`), false, false},
		{fmt.Errorf("429 Too Many Requests"), true, true},
		{fmt.Errorf("RESOURCE_EXHAUSTED: quota exceeded"), true, true},
		{fmt.Errorf("dial: i/o timeout"), true, false},
		{context.DeadlineExceeded, true, false},
		{stderrors.New("invalid argument"), false, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.service, isServiceFailure(tt.err), "%v", tt.err)
		assert.Equal(t, tt.rateLimited, isRateLimitError(tt.err), "%v", tt.err)
	}
}
