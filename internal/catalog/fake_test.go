package catalog

import (
	"context"
	"sync"

	"github.com/teemow/clickup-mcp/internal/clickup"
	"github.com/teemow/clickup-mcp/internal/document"
)

func mustParse(s string) document.Value {
	v, err := document.Parse([]byte(s))
	if err != nil {
		panic(err)
	}
	return v
}

type reply struct {
	body string
	err  error
}

// fakeAPI answers requests by endpoint template and records what it saw.
type fakeAPI struct {
	mu       sync.Mutex
	replies  map[string]reply
	requests []clickup.Request
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{replies: map[string]reply{}}
}

func (f *fakeAPI) respond(path, body string) *fakeAPI {
	f.replies[path] = reply{body: body}
	return f
}

func (f *fakeAPI) fail(path string, err error) *fakeAPI {
	f.replies[path] = reply{err: err}
	return f
}

func (f *fakeAPI) Do(_ context.Context, req clickup.Request) (document.Value, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	r, ok := f.replies[req.Path]
	if !ok {
		return document.Value{}, &clickup.Error{Kind: clickup.KindNotFound, Endpoint: req.Path}
	}
	if r.err != nil {
		return document.Value{}, r.err
	}
	return mustParse(r.body), nil
}

func (f *fakeAPI) paths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.requests))
	for _, r := range f.requests {
		out = append(out, r.Path)
	}
	return out
}
