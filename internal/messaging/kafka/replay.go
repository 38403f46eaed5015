package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"
)

// ReplayMessage: сообщение, восстановленное из DLQ для повторной публикации.
type ReplayMessage struct {
	Topic string
	Key   string
	Value []byte
}

// outboxDeadLetter: payload DLQ-записи, которую пишет outbox worker.
type outboxDeadLetter struct {
	OutboxID      string          `json:"outbox_id"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	EventType     string          `json:"event_type"`
	Payload       json.RawMessage `json:"payload"`
}

// ExtractReplay восстанавливает исходное сообщение из записи DLQ.
// ok=false означает, что запись не похожа ни на один известный формат.
func ExtractReplay(msg *sarama.ConsumerMessage) (ReplayMessage, bool, error) {
	var consumerRecord ConsumerDeadLetter
	if err := json.Unmarshal(msg.Value, &consumerRecord); err == nil && consumerRecord.OriginalValue != "" {
		topic := strings.TrimSpace(consumerRecord.OriginalTopic)
		if topic == "" {
			topic = TopicOrderEvents
		}
		return ReplayMessage{
			Topic: topic,
			Key:   consumerRecord.OriginalKey,
			Value: []byte(consumerRecord.OriginalValue),
		}, true, nil
	}

	envelope, err := ParseEnvelope(msg.Value)
	if err != nil || len(envelope.Payload) == 0 {
		return ReplayMessage{}, false, nil
	}

	var dead outboxDeadLetter
	if err := json.Unmarshal(envelope.Payload, &dead); err != nil {
		return ReplayMessage{}, false, fmt.Errorf("decode outbox dlq payload: %w", err)
	}
	if len(dead.Payload) == 0 {
		return ReplayMessage{}, false, fmt.Errorf("outbox dlq payload does not contain original event payload")
	}

	replay := Envelope{
		ID:            firstNonEmpty(dead.OutboxID, envelope.ID),
		AggregateType: firstNonEmpty(dead.AggregateType, envelope.AggregateType),
		AggregateID:   firstNonEmpty(dead.AggregateID, envelope.AggregateID),
		EventType:     firstNonEmpty(dead.EventType, envelope.EventType),
		Payload:       dead.Payload,
		PublishedAt:   envelope.PublishedAt,
	}
	encoded, err := json.Marshal(replay)
	if err != nil {
		return ReplayMessage{}, false, fmt.Errorf("encode replay envelope: %w", err)
	}

	topic := originalTopicHeader(msg)
	if topic == "" {
		topic = TopicFor(replay.AggregateType)
	}

	return ReplayMessage{Topic: topic, Key: replay.Key(), Value: encoded}, true, nil
}

// NewReplayHandler возвращает обработчик, переотправляющий DLQ-записи в исходные topics.
// При dryRun сообщения только логируются.
func NewReplayHandler(producer *Producer, dryRun bool, logger *log.Entry) MessageHandler {
	if logger == nil {
		logger = log.WithField("component", "dlq-replay")
	}

	return func(_ context.Context, msg *sarama.ConsumerMessage) error {
		fields := log.Fields{"partition": msg.Partition, "offset": msg.Offset}

		replay, ok, err := ExtractReplay(msg)
		if err != nil {
			logger.WithError(err).WithFields(fields).Warn("skip unsupported dlq message")
			return nil
		}
		if !ok {
			logger.WithFields(fields).Debug("skip unknown dlq message")
			return nil
		}

		fields["target_topic"] = replay.Topic
		fields["key"] = replay.Key
		if dryRun {
			logger.WithFields(fields).Info("dlq replay candidate")
			return nil
		}
		if producer == nil {
			return fmt.Errorf("producer is required in execute mode")
		}
		if err := producer.PublishRaw(replay.Topic, replay.Key, replay.Value); err != nil {
			return fmt.Errorf("publish replay message: %w", err)
		}
		logger.WithFields(fields).Info("dlq message replayed")
		return nil
	}
}

func originalTopicHeader(msg *sarama.ConsumerMessage) string {
	for _, h := range msg.Headers {
		if h != nil && string(h.Key) == HeaderOriginalTopic {
			return strings.TrimSpace(string(h.Value))
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
