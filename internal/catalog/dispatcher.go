package catalog

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/go-faster/errors"

	"github.com/teemow/clickup-mcp/internal/clickup"
	"github.com/teemow/clickup-mcp/internal/logging"
	"github.com/teemow/clickup-mcp/internal/render"
)

// ErrUnknownTool is returned for names missing from the catalog.
var ErrUnknownTool = errors.New("unknown tool")

// Result is the outcome of one invocation.
type Result struct {
	// Text is the bounded markdown or the one-line error. It is always set.
	Text string

	// Err is the failure behind an error line, for logging and metrics only.
	Err error
}

// Failed reports whether the invocation produced an error line.
func (r Result) Failed() bool {
	return r.Err != nil
}

// ErrorKind classifies Err for metric labels.
func (r Result) ErrorKind() string {
	var argErr *ArgumentError
	switch {
	case r.Err == nil:
		return ""
	case errors.Is(r.Err, ErrUnknownTool):
		return "unknown_tool"
	case errors.As(r.Err, &argErr):
		return "invalid_argument"
	case errors.As(r.Err, new(*panicError)):
		return "panic"
	}
	return clickup.KindOf(r.Err).String()
}

// lineBreaks flattens error text, which may embed raw upstream bodies.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

func oneLine(s string) string {
	return lineBreaks.Replace(s)
}

type panicError struct {
	value any
}

func (e *panicError) Error() string {
	return fmt.Sprintf("internal error: %v", e.value)
}

// Dispatcher runs tools from a catalog. It holds no per-call state and is
// safe for concurrent use.
type Dispatcher struct {
	catalog *Catalog
	api     Executor
	limit   int
	logger  logging.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithCharacterLimit overrides render.CharacterLimit.
func WithCharacterLimit(n int) DispatcherOption {
	return func(d *Dispatcher) { d.limit = n }
}

// WithLogger sets the logger used for failed invocations.
func WithLogger(l logging.Logger) DispatcherOption {
	return func(d *Dispatcher) { d.logger = l }
}

// NewDispatcher creates a dispatcher over catalog using api for requests.
func NewDispatcher(catalog *Catalog, api Executor, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		catalog: catalog,
		api:     api,
		limit:   render.CharacterLimit,
		logger:  logging.DefaultLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Catalog returns the catalog the dispatcher serves.
func (d *Dispatcher) Catalog() *Catalog {
	return d.catalog
}

// Invoke runs the named tool and returns its text. It never fails: every
// error becomes a single line "Error <action>: <message>".
func (d *Dispatcher) Invoke(ctx context.Context, name string, args map[string]any) string {
	return d.Call(ctx, name, args).Text
}

// Call is like Invoke but also returns the underlying error.
func (d *Dispatcher) Call(ctx context.Context, name string, args map[string]any) Result {
	desc, ok := d.catalog.Lookup(name)
	if !ok {
		err := errors.Wrap(ErrUnknownTool, name)
		return Result{Text: render.Bound(oneLine(fmt.Sprintf("Error: unknown tool: %s", name)), d.limit), Err: err}
	}

	start := time.Now()
	text, err := d.run(ctx, desc, args)
	if err != nil {
		d.logger.Warn("tool failed",
			logging.Tool(name),
			logging.Duration(time.Since(start)),
			logging.Err(err))
		text = oneLine(fmt.Sprintf("Error %s: %s", desc.Action, err.Error()))
	}

	return Result{Text: render.Bound(text, d.limit), Err: err}
}

func (d *Dispatcher) run(ctx context.Context, desc Descriptor, raw map[string]any) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("tool panicked",
				logging.Tool(desc.Name),
				"panic", r,
				"stack", string(debug.Stack()))
			text, err = "", &panicError{value: r}
		}
	}()

	args, err := normalize(desc.Params, raw)
	if err != nil {
		return "", err
	}
	return desc.Run(ctx, d.api, args)
}
