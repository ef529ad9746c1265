package instrumentation

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
)

const testTool = "get_tasks"

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestToolInvocation_NewAndComplete(t *testing.T) {
	ti := NewToolInvocation(testTool)

	if ti.Tool != testTool {
		t.Errorf("Tool = %q, want %q", ti.Tool, testTool)
	}
	if _, err := uuid.Parse(ti.InvocationID); err != nil {
		t.Errorf("InvocationID %q is not a UUID: %v", ti.InvocationID, err)
	}
	if ti.StartTime.IsZero() {
		t.Error("StartTime should not be zero")
	}

	ti.CompleteSuccess()

	if !ti.Success {
		t.Error("Success should be true")
	}
	if ti.Duration < 0 {
		t.Error("Duration should not be negative")
	}
	if ti.Status() != StatusSuccess {
		t.Errorf("Status() = %q, want %q", ti.Status(), StatusSuccess)
	}
}

func TestToolInvocation_UniqueIDs(t *testing.T) {
	a := NewToolInvocation(testTool)
	b := NewToolInvocation(testTool)
	if a.InvocationID == b.InvocationID {
		t.Error("expected distinct invocation IDs")
	}
}

func TestToolInvocation_CompleteWithError(t *testing.T) {
	ti := NewToolInvocation(testTool).WithResource("L1")
	ti.CompleteWithError("not_found", errors.New("Resource not found: /list/L1"))

	if ti.Success {
		t.Error("Success should be false")
	}
	if ti.ErrorKind != "not_found" {
		t.Errorf("ErrorKind = %q, want %q", ti.ErrorKind, "not_found")
	}
	if ti.Status() != StatusError {
		t.Errorf("Status() = %q, want %q", ti.Status(), StatusError)
	}
}

func TestToolInvocation_WithSpanContext(t *testing.T) {
	withSpanRecorder(t)

	ctx, span := StartToolSpan(context.Background(), testTool)
	defer span.End()

	ti := NewToolInvocation(testTool).WithSpanContext(ctx)
	if ti.TraceID == "" || ti.SpanID == "" {
		t.Errorf("expected trace context, got trace=%q span=%q", ti.TraceID, ti.SpanID)
	}
	if want := span.SpanContext().TraceID().String(); ti.TraceID != want {
		t.Errorf("TraceID = %q, want %q", ti.TraceID, want)
	}
	if want := span.SpanContext().SpanID().String(); ti.SpanID != want {
		t.Errorf("SpanID = %q, want %q", ti.SpanID, want)
	}
}

func TestToolInvocation_WithSpanContext_NoSpan(t *testing.T) {
	ti := NewToolInvocation(testTool).WithSpanContext(context.Background())
	if ti.TraceID != "" || ti.SpanID != "" {
		t.Errorf("expected empty trace context, got trace=%q span=%q", ti.TraceID, ti.SpanID)
	}
}

func TestAuditLogger_Success(t *testing.T) {
	var buf bytes.Buffer
	al := NewAuditLogger(newBufferLogger(&buf))

	al.LogToolInvocation(NewToolInvocation(testTool).WithResource("L1").CompleteSuccess())

	out := buf.String()
	if !strings.Contains(out, "tool_executed") {
		t.Errorf("expected tool_executed record, got %q", out)
	}
	if !strings.Contains(out, "tool="+testTool) {
		t.Errorf("expected tool attribute, got %q", out)
	}
	if strings.Contains(out, "resource_id") {
		t.Errorf("resource_id must not be logged without details, got %q", out)
	}
}

func TestAuditLogger_FailureWithDetails(t *testing.T) {
	var buf bytes.Buffer
	al := NewAuditLoggerWithConfig(newBufferLogger(&buf), AuditLoggingConfig{Enabled: true, IncludeDetails: true})

	ti := NewToolInvocation(testTool).WithResource("L1")
	ti.CompleteWithError("upstream_error", errors.New("ClickUp API error (500): boom"))
	al.LogToolInvocation(ti)

	out := buf.String()
	for _, want := range []string{"level=WARN", "tool_failed", "error_kind=upstream_error", "resource_id=L1", "boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
}

func TestAuditLogger_Disabled(t *testing.T) {
	var buf bytes.Buffer
	al := NewAuditLoggerWithConfig(newBufferLogger(&buf), AuditLoggingConfig{Enabled: false})

	al.LogToolInvocation(NewToolInvocation(testTool).CompleteSuccess())

	if buf.Len() != 0 {
		t.Errorf("expected no output when disabled, got %q", buf.String())
	}
}

func TestAuditLogger_Nil(t *testing.T) {
	var al *AuditLogger
	// Should not panic
	al.LogToolInvocation(NewToolInvocation(testTool).CompleteSuccess())
}
