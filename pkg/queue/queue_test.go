package queue_test

import (
	"testing"
	"time"

	"github.com/yeisme/tunevault/pkg/queue"
)

// TestEncodeDecodeRoundTrip 测试消息信封的编解码往返.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	msg := queue.Message[queue.MediaStoredPayload]{
		Header: queue.NewEventHeader(queue.TopicMediaStored,
			queue.WithProducer("tunevault"),
			queue.WithTraceID("trace-1"),
		),
		Payload: queue.MediaStoredPayload{
			Media: queue.MediaRef{
				PublicID:     "clip-1",
				ResourceType: "video",
				Owner:        "ann@example.com",
				Project:      "demo",
			},
			FileName: "take.webm",
			Tags:     []string{"riff"},
		},
	}

	data, err := queue.Encode(msg)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := queue.Decode[queue.MediaStoredPayload](data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if decoded.Header.Topic != queue.TopicMediaStored {
		t.Errorf("topic mismatch: got %q", decoded.Header.Topic)
	}

	if decoded.Header.Producer != "tunevault" || decoded.Header.TraceID != "trace-1" {
		t.Errorf("header mismatch: %+v", decoded.Header)
	}

	if decoded.Payload.Media.PublicID != "clip-1" || decoded.Payload.FileName != "take.webm" {
		t.Errorf("payload mismatch: %+v", decoded.Payload)
	}
}

// TestNewEventHeaderDefaults 默认事件头带版本号与 UTC 时间戳.
func TestNewEventHeaderDefaults(t *testing.T) {
	hdr := queue.NewEventHeader(queue.TopicMediaDeleted)

	if hdr.Version != queue.PayloadVersionV1 {
		t.Errorf("expected version %q, got %q", queue.PayloadVersionV1, hdr.Version)
	}

	if hdr.OccurredAt.Location() != time.UTC {
		t.Errorf("expected UTC timestamp, got %v", hdr.OccurredAt.Location())
	}

	if hdr.TraceID != "" || hdr.Producer != "" {
		t.Errorf("expected empty optional fields, got %+v", hdr)
	}
}

// TestNewWatermillMessage 测试 watermill 消息的元数据与负载解析.
func TestNewWatermillMessage(t *testing.T) {
	payload := queue.MediaDeletedPayload{
		Media: queue.MediaRef{PublicID: "clip-1", ResourceType: "video"},
	}

	msg, err := queue.NewWatermillMessage(queue.TopicMediaDeleted, payload,
		queue.WithProducer("tunevault"))
	if err != nil {
		t.Fatalf("new watermill message: %v", err)
	}

	if msg.UUID == "" {
		t.Error("expected non-empty message id")
	}

	if got := msg.Metadata.Get("topic"); got != queue.TopicMediaDeleted {
		t.Errorf("topic metadata mismatch: got %q", got)
	}

	if got := msg.Metadata.Get("producer"); got != "tunevault" {
		t.Errorf("producer metadata mismatch: got %q", got)
	}

	if got := msg.Metadata.Get("version"); got != queue.PayloadVersionV1 {
		t.Errorf("version metadata mismatch: got %q", got)
	}

	if _, err := time.Parse(time.RFC3339Nano, msg.Metadata.Get("occurred_at")); err != nil {
		t.Errorf("occurred_at metadata not RFC3339Nano: %v", err)
	}

	env, err := queue.ParseWatermillMessage[queue.MediaDeletedPayload](msg)
	if err != nil {
		t.Fatalf("parse watermill message: %v", err)
	}

	if env.Payload.Media.PublicID != "clip-1" {
		t.Errorf("payload mismatch: %+v", env.Payload)
	}
}
