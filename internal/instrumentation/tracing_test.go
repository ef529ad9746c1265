package instrumentation

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

// withSpanRecorder installs a recording tracer provider for the duration of the test.
func withSpanRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(previous)
		_ = tp.Shutdown(context.Background())
	})
	return recorder
}

func TestSpanAttributeBuilder(t *testing.T) {
	attrs := NewSpanAttributeBuilder().
		WithInvocation("inv-1").
		WithResourceID("901").
		WithReadOnly(true).
		Build()

	if len(attrs) != 3 {
		t.Fatalf("expected 3 attributes, got %d", len(attrs))
	}

	attrMap := make(map[string]interface{})
	for _, attr := range attrs {
		attrMap[string(attr.Key)] = attr.Value.AsInterface()
	}
	if attrMap[SpanAttrInvocation] != "inv-1" {
		t.Errorf("expected invocation 'inv-1', got %v", attrMap[SpanAttrInvocation])
	}
	if attrMap[SpanAttrResourceID] != "901" {
		t.Errorf("expected resource id '901', got %v", attrMap[SpanAttrResourceID])
	}
	if attrMap[SpanAttrReadOnly] != true {
		t.Errorf("expected read_only true, got %v", attrMap[SpanAttrReadOnly])
	}
}

func TestSpanAttributeBuilder_EmptyValues(t *testing.T) {
	attrs := NewSpanAttributeBuilder().
		WithInvocation("").
		WithResourceID("").
		Build()

	if len(attrs) != 0 {
		t.Errorf("expected no attributes, got %d", len(attrs))
	}
}

func TestStartToolSpan(t *testing.T) {
	recorder := withSpanRecorder(t)

	ctx, span := StartToolSpan(context.Background(), "get_spaces")
	if GetTraceID(ctx) == "" {
		t.Error("expected a trace ID inside the tool span")
	}
	if GetSpanID(ctx) == "" {
		t.Error("expected a span ID inside the tool span")
	}
	SetSpanSuccess(span)
	span.End()

	ended := recorder.Ended()
	if len(ended) != 1 {
		t.Fatalf("expected 1 span, got %d", len(ended))
	}
	if ended[0].Name() != "tool.get_spaces" {
		t.Errorf("span name = %q, want %q", ended[0].Name(), "tool.get_spaces")
	}
	if ended[0].SpanKind() != trace.SpanKindServer {
		t.Errorf("span kind = %v, want server", ended[0].SpanKind())
	}
	if ended[0].Status().Code != codes.Ok {
		t.Errorf("status = %v, want Ok", ended[0].Status().Code)
	}
}

func TestStartClickUpSpan(t *testing.T) {
	recorder := withSpanRecorder(t)

	_, span := StartClickUpSpan(context.Background(), "GET", "/list/{list_id}/task")
	SetSpanError(span, errors.New("Resource not found"))
	span.End()

	ended := recorder.Ended()
	if len(ended) != 1 {
		t.Fatalf("expected 1 span, got %d", len(ended))
	}
	if ended[0].Name() != "clickup.GET /list/{list_id}/task" {
		t.Errorf("span name = %q", ended[0].Name())
	}
	if ended[0].SpanKind() != trace.SpanKindClient {
		t.Errorf("span kind = %v, want client", ended[0].SpanKind())
	}
	if ended[0].Status().Code != codes.Error {
		t.Errorf("status = %v, want Error", ended[0].Status().Code)
	}
}

func TestSetSpanError_Nil(t *testing.T) {
	recorder := withSpanRecorder(t)

	_, span := StartClickUpSpan(context.Background(), "GET", "/user")
	SetSpanError(span, nil)
	span.End()

	if code := recorder.Ended()[0].Status().Code; code != codes.Unset {
		t.Errorf("status = %v, want Unset for nil error", code)
	}
}

func TestGetTraceID_NoSpan(t *testing.T) {
	if id := GetTraceID(context.Background()); id != "" {
		t.Errorf("expected empty trace ID, got %q", id)
	}
	if id := GetSpanID(context.Background()); id != "" {
		t.Errorf("expected empty span ID, got %q", id)
	}
}
