package authgate

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestJSONWriterSinkEmitsOneLinePerEvent(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONWriterSink(&buf)

	sink.Emit(context.Background(), AuditEvent{
		ID:        "ev-1",
		Timestamp: time.Now().UTC(),
		EventType: EventAlgorithmRejected,
		Path:      "/dashboard",
	})
	sink.Emit(context.Background(), AuditEvent{
		ID:        "ev-2",
		Timestamp: time.Now().UTC(),
		EventType: EventUnsafeRedirect,
		Metadata:  map[string]string{"rejected_target": "//evil.example"},
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	var event AuditEvent
	if err := json.Unmarshal([]byte(lines[1]), &event); err != nil {
		t.Fatalf("unmarshal event: %v", err)
	}
	if event.EventType != EventUnsafeRedirect {
		t.Fatalf("event type = %q", event.EventType)
	}
	if event.Metadata["rejected_target"] != "//evil.example" {
		t.Fatal("metadata not round-tripped")
	}
}

func TestChannelSinkHonorsContextCancellation(t *testing.T) {
	sink := NewChannelSink(1)
	sink.Emit(context.Background(), AuditEvent{ID: "fills-buffer"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		sink.Emit(ctx, AuditEvent{ID: "must-not-block"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Emit blocked on a full channel despite cancelled context")
	}
}

func TestDispatcherDropsUnderBackpressureAndCounts(t *testing.T) {
	// A sink that never drains: events beyond the buffer must be dropped,
	// not waited on.
	blocked := NewChannelSink(1)
	d := newAuditDispatcher(AuditConfig{Enabled: true, BufferSize: 1}, blocked)

	for i := 0; i < 16; i++ {
		d.enqueue(AuditEvent{ID: "ev"})
	}

	deadline := time.Now().Add(time.Second)
	for d.Dropped() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("expected dropped events under backpressure")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestDispatcherCloseDrainsPendingEvents(t *testing.T) {
	sink := NewChannelSink(8)
	d := newAuditDispatcher(AuditConfig{Enabled: true, BufferSize: 8}, sink)

	for i := 0; i < 3; i++ {
		d.enqueue(AuditEvent{ID: "ev", EventType: EventAdminDenied})
	}
	d.Close()

	received := 0
	for {
		select {
		case <-sink.Events():
			received++
		default:
			if received != 3 {
				t.Fatalf("received %d events after Close, want 3", received)
			}
			return
		}
	}
}

func TestDispatcherCloseIdempotentAndEnqueueAfterCloseNoop(t *testing.T) {
	d := newAuditDispatcher(AuditConfig{Enabled: true, BufferSize: 1}, NoOpSink{})
	d.Close()
	d.Close()
	d.enqueue(AuditEvent{ID: "late"})
}

func TestDisabledAuditYieldsNilDispatcher(t *testing.T) {
	if d := newAuditDispatcher(AuditConfig{Enabled: false}, NoOpSink{}); d != nil {
		t.Fatal("disabled audit config must not start a dispatcher")
	}
	var d *auditDispatcher
	d.enqueue(AuditEvent{})
	if d.Dropped() != 0 {
		t.Fatal("nil dispatcher must report zero drops")
	}
	d.Close()
}
