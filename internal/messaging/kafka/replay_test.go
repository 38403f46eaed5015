package kafka

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
)

func outboxDLQMessage(t *testing.T, aggregateType string, headers ...*sarama.RecordHeader) *sarama.ConsumerMessage {
	t.Helper()

	dead, err := json.Marshal(map[string]any{
		"outbox_id":      "outbox-1",
		"aggregate_type": aggregateType,
		"aggregate_id":   "agg-1",
		"event_type":     "OrderConfirmed",
		"payload":        json.RawMessage(`{"status":"confirmed"}`),
		"publish_error":  "broker down",
	})
	if err != nil {
		t.Fatal(err)
	}
	value, err := json.Marshal(Envelope{ID: "outbox-1", AggregateType: aggregateType, AggregateID: "agg-1", EventType: "OrderConfirmed", Payload: dead})
	if err != nil {
		t.Fatal(err)
	}
	return &sarama.ConsumerMessage{Topic: TopicDeadLetterQueue, Value: value, Headers: headers}
}

func TestExtractReplay_OutboxDeadLetter(t *testing.T) {
	replay, ok, err := ExtractReplay(outboxDLQMessage(t, domain.AggregateTypeOrder))
	if err != nil || !ok {
		t.Fatalf("expected replay, ok=%v err=%v", ok, err)
	}
	if replay.Topic != TopicOrderEvents {
		t.Fatalf("unexpected topic %s", replay.Topic)
	}
	if replay.Key != "agg-1" {
		t.Fatalf("unexpected key %s", replay.Key)
	}

	envelope, err := ParseEnvelope(replay.Value)
	if err != nil {
		t.Fatal(err)
	}
	if string(envelope.Payload) != `{"status":"confirmed"}` {
		t.Fatalf("original payload not restored: %s", envelope.Payload)
	}
}

func TestExtractReplay_PrefersOriginalTopicHeader(t *testing.T) {
	msg := outboxDLQMessage(t, domain.AggregateTypeOrder, &sarama.RecordHeader{Key: []byte(HeaderOriginalTopic), Value: []byte("custom.topic")})

	replay, ok, err := ExtractReplay(msg)
	if err != nil || !ok {
		t.Fatalf("expected replay, ok=%v err=%v", ok, err)
	}
	if replay.Topic != "custom.topic" {
		t.Fatalf("unexpected topic %s", replay.Topic)
	}
}

func TestExtractReplay_ConsumerDeadLetter(t *testing.T) {
	value, err := json.Marshal(ConsumerDeadLetter{OriginalTopic: TopicCatalogEvents, OriginalKey: "p-1", OriginalValue: `{"x":1}`})
	if err != nil {
		t.Fatal(err)
	}

	replay, ok, err := ExtractReplay(&sarama.ConsumerMessage{Value: value})
	if err != nil || !ok {
		t.Fatalf("expected replay, ok=%v err=%v", ok, err)
	}
	if replay.Topic != TopicCatalogEvents || replay.Key != "p-1" || string(replay.Value) != `{"x":1}` {
		t.Fatalf("unexpected replay %+v", replay)
	}
}

func TestExtractReplay_Unknown(t *testing.T) {
	if _, ok, err := ExtractReplay(&sarama.ConsumerMessage{Value: []byte("not json")}); ok || err != nil {
		t.Fatalf("expected skip without error, ok=%v err=%v", ok, err)
	}

	value, _ := json.Marshal(Envelope{ID: "x", Payload: json.RawMessage(`{"outbox_id":"x"}`)})
	if _, ok, err := ExtractReplay(&sarama.ConsumerMessage{Value: value}); ok || err == nil {
		t.Fatalf("expected error for dead letter without payload, ok=%v err=%v", ok, err)
	}
}

func TestReplayHandler(t *testing.T) {
	t.Run("dry run does not publish", func(t *testing.T) {
		mockProducer := mocks.NewSyncProducer(t, nil)
		handler := NewReplayHandler(NewProducerWith(mockProducer, nil), true, log.WithField("test", "replay"))

		if err := handler(context.Background(), outboxDLQMessage(t, domain.AggregateTypeOrder)); err != nil {
			t.Fatalf("dry run failed: %v", err)
		}
		if err := mockProducer.Close(); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("execute publishes to original topic", func(t *testing.T) {
		mockProducer := mocks.NewSyncProducer(t, nil)
		mockProducer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
			if msg.Topic != TopicCatalogEvents {
				t.Errorf("unexpected topic %s", msg.Topic)
			}
			return nil
		})
		handler := NewReplayHandler(NewProducerWith(mockProducer, nil), false, nil)

		if err := handler(context.Background(), outboxDLQMessage(t, domain.AggregateTypeProduct)); err != nil {
			t.Fatalf("replay failed: %v", err)
		}
		if err := mockProducer.Close(); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("publish failure is returned for retry", func(t *testing.T) {
		mockProducer := mocks.NewSyncProducer(t, nil)
		mockProducer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
		handler := NewReplayHandler(NewProducerWith(mockProducer, nil), false, nil)

		if err := handler(context.Background(), outboxDLQMessage(t, domain.AggregateTypeOrder)); err == nil {
			t.Fatal("expected publish error")
		}
		if err := mockProducer.Close(); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("unknown messages are skipped", func(t *testing.T) {
		handler := NewReplayHandler(nil, false, nil)
		if err := handler(context.Background(), &sarama.ConsumerMessage{Value: []byte("garbage")}); err != nil {
			t.Fatalf("expected skip, got %v", err)
		}
	})
}
