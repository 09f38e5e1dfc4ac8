package authgate

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStreamSink appends audit events to a capped Redis stream via XADD,
// for deployments that centralize security events across gate instances.
// Emission is best-effort: a failed append is dropped, never retried on the
// request path.
type RedisStreamSink struct {
	client redis.UniversalClient
	stream string
	maxLen int64
}

// NewRedisStreamSink describes the newredisstreamsink operation and its observable behavior.
//
// NewRedisStreamSink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewRedisStreamSink(client redis.UniversalClient, stream string, maxLen int64) *RedisStreamSink {
	if stream == "" {
		stream = "authgate:audit"
	}
	if maxLen <= 0 {
		maxLen = 10000
	}
	return &RedisStreamSink{
		client: client,
		stream: stream,
		maxLen: maxLen,
	}
}

// Emit describes the emit operation and its observable behavior.
//
// Emit does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *RedisStreamSink) Emit(ctx context.Context, event AuditEvent) {
	if s == nil || s.client == nil {
		return
	}

	values := map[string]interface{}{
		"id":         event.ID,
		"timestamp":  event.Timestamp.UTC().Format(time.RFC3339Nano),
		"event_type": event.EventType,
	}
	if event.Subject != "" {
		values["subject"] = event.Subject
	}
	if event.Path != "" {
		values["path"] = event.Path
	}
	if event.Algorithm != "" {
		values["algorithm"] = event.Algorithm
	}
	for k, v := range event.Metadata {
		values["meta_"+k] = v
	}

	_ = s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		MaxLen: s.maxLen,
		Approx: true,
		Values: values,
	}).Err()
}
