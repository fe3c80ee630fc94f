package weather

import (
	"context"
	"encoding/json"
	"net/url"
	"sync"
)

// fakeRequester answers GetJSON from a handler keyed by upstream name.
type fakeRequester struct {
	mu       sync.Mutex
	calls    map[string]int
	params   map[string][]url.Values
	handlers map[string]func(params url.Values) (any, error)
}

func newFakeRequester() *fakeRequester {
	return &fakeRequester{
		calls:    make(map[string]int),
		params:   make(map[string][]url.Values),
		handlers: make(map[string]func(url.Values) (any, error)),
	}
}

func (f *fakeRequester) on(upstream string, h func(params url.Values) (any, error)) {
	f.handlers[upstream] = h
}

func (f *fakeRequester) count(upstream string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[upstream]
}

func (f *fakeRequester) GetJSON(_ context.Context, upstream, _ string, params url.Values, dest any) error {
	f.mu.Lock()
	f.calls[upstream]++
	f.params[upstream] = append(f.params[upstream], params)
	h := f.handlers[upstream]
	f.mu.Unlock()

	if h == nil {
		return nil
	}
	body, err := h(params)
	if err != nil {
		return err
	}
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

func (f *fakeRequester) IsCircuitOpen() bool { return false }
