package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
	"github.com/vladislavdragonenkov/ordering/internal/metrics"
	"github.com/vladislavdragonenkov/ordering/internal/storage/memory"
)

func orderEvent(id string) domain.OutboxMessage {
	return domain.OutboxMessage{
		ID:            id,
		AggregateType: domain.AggregateTypeOrder,
		AggregateID:   "order-" + id,
		EventType:     domain.EventOrderConfirmed,
		Payload:       []byte(`{"status":"confirmed"}`),
	}
}

func TestWorker_ProcessOnce_MarkSent(t *testing.T) {
	t.Parallel()

	repo := &stubOutboxRepo{pending: []domain.OutboxMessage{orderEvent("msg-1")}}
	publisher := &stubPublisher{}

	worker := NewWorker(repo, publisher, WithRetryBaseDelay(0), WithMaxAttempts(3))
	res := worker.ProcessOnce(context.Background())

	if res != (BatchResult{Pulled: 1, Sent: 1}) {
		t.Fatalf("unexpected batch result: %+v", res)
	}
	if len(repo.sentIDs) != 1 || repo.sentIDs[0] != "msg-1" {
		t.Fatalf("expected msg-1 marked as sent, got %v", repo.sentIDs)
	}
	if len(repo.failedIDs) != 0 {
		t.Fatalf("expected no failed marks, got %v", repo.failedIDs)
	}
	if got := publisher.calls(); got != 1 {
		t.Fatalf("expected 1 publish call, got %d", got)
	}
}

func TestWorker_ProcessOnce_DeadLetterAfterRetries(t *testing.T) {
	t.Parallel()

	repo := &stubOutboxRepo{pending: []domain.OutboxMessage{orderEvent("msg-2")}}
	publisher := &stubPublisher{err: errors.New("broker unavailable")}
	dlqPublisher := &stubPublisher{}
	reg := prometheus.NewRegistry()
	m := metrics.NewOutboxMetricsWithRegisterer(reg)

	worker := NewWorker(
		repo,
		publisher,
		WithDLQPublisher(dlqPublisher),
		WithMetrics(m),
		WithRetryBaseDelay(0),
		WithMaxAttempts(3),
	)
	if res := worker.ProcessOnce(context.Background()); res.Failed != 1 || res.Sent != 0 {
		t.Fatalf("unexpected batch result: %+v", res)
	}

	if got := publisher.calls(); got != 3 {
		t.Fatalf("expected 3 publish attempts, got %d", got)
	}
	if len(repo.sentIDs) != 0 {
		t.Fatalf("expected no sent marks, got %v", repo.sentIDs)
	}
	if len(repo.failedIDs) != 1 || repo.failedIDs[0] != "msg-2" {
		t.Fatalf("expected msg-2 marked as failed, got %v", repo.failedIDs)
	}

	published := dlqPublisher.messages()
	if len(published) != 1 {
		t.Fatalf("expected 1 DLQ publish, got %d", len(published))
	}

	var letter DeadLetter
	if err := json.Unmarshal(published[0].Payload, &letter); err != nil {
		t.Fatalf("decode dead letter: %v", err)
	}
	if letter.OutboxID != "msg-2" || letter.EventType != domain.EventOrderConfirmed {
		t.Fatalf("unexpected dead letter: %+v", letter)
	}
	if string(letter.Payload) != `{"status":"confirmed"}` {
		t.Fatalf("original payload not preserved: %s", letter.Payload)
	}
	if letter.PublishError == "" || letter.DLQPublishedAt.IsZero() {
		t.Fatalf("dead letter must carry error and timestamp: %+v", letter)
	}

	series, err := testutil.GatherAndCount(reg, "oms_outbox_publish_attempts_total")
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if series != 2 {
		t.Fatalf("expected retry_error and failed series, got %d", series)
	}
}

func TestWorker_ProcessOnce_SuccessAfterRetry(t *testing.T) {
	t.Parallel()

	repo := &stubOutboxRepo{pending: []domain.OutboxMessage{orderEvent("msg-3")}}
	publisher := &stubPublisher{
		sequenceErrors: []error{errors.New("attempt 1"), errors.New("attempt 2"), nil},
	}

	worker := NewWorker(repo, publisher, WithRetryBaseDelay(0), WithMaxAttempts(3))
	worker.ProcessOnce(context.Background())

	if got := publisher.calls(); got != 3 {
		t.Fatalf("expected 3 publish attempts, got %d", got)
	}
	if len(repo.sentIDs) != 1 {
		t.Fatalf("expected 1 sent mark, got %d", len(repo.sentIDs))
	}
	if len(repo.failedIDs) != 0 {
		t.Fatalf("expected no failed marks, got %d", len(repo.failedIDs))
	}
}

func TestWorker_DrainsMemoryOutbox(t *testing.T) {
	t.Parallel()

	repo := memory.NewOutboxRepository()
	for _, id := range []string{"a", "b", "c"} {
		if _, err := repo.Enqueue(orderEvent(id)); err != nil {
			t.Fatalf("enqueue: %v", err)
		}
	}
	publisher := &stubPublisher{}

	worker := NewWorker(repo, publisher, WithBatchSize(2), WithRetryBaseDelay(0))
	worker.ProcessOnce(context.Background())

	stats, err := repo.Stats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.PendingCount != 1 {
		t.Fatalf("expected 1 pending after first batch, got %d", stats.PendingCount)
	}

	worker.ProcessOnce(context.Background())

	stats, _ = repo.Stats()
	if stats.PendingCount != 0 {
		t.Fatalf("expected empty backlog, got %d", stats.PendingCount)
	}

	published := publisher.messages()
	if len(published) != 3 {
		t.Fatalf("expected 3 published events, got %d", len(published))
	}
	for i, id := range []string{"a", "b", "c"} {
		if published[i].ID != id {
			t.Fatalf("expected publish order a,b,c; got %s at %d", published[i].ID, i)
		}
	}
}

func TestWorker_RetryBackoff(t *testing.T) {
	t.Parallel()

	worker := NewWorker(&stubOutboxRepo{}, &stubPublisher{}, WithRetryBaseDelay(10*time.Millisecond))

	cases := map[int]time.Duration{
		1:  10 * time.Millisecond,
		2:  20 * time.Millisecond,
		4:  80 * time.Millisecond,
		20: maxRetryDelay,
		64: maxRetryDelay,
	}
	for attempt, want := range cases {
		if got := worker.retryBackoff(attempt); got != want {
			t.Errorf("attempt %d: expected %s, got %s", attempt, want, got)
		}
	}

	noDelay := NewWorker(&stubOutboxRepo{}, &stubPublisher{}, WithRetryBaseDelay(0))
	if got := noDelay.retryBackoff(3); got != 0 {
		t.Fatalf("expected zero backoff, got %s", got)
	}
}

func TestWorker_Run_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	worker := NewWorker(
		&stubOutboxRepo{},
		&stubPublisher{},
		WithPollInterval(5*time.Millisecond),
		WithRetryBaseDelay(0),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- worker.Run(ctx)
	}()

	time.Sleep(15 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected nil error on cancel, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("worker did not stop on context cancel")
	}
}

func TestWorker_Run_DisabledWithoutPublisher(t *testing.T) {
	t.Parallel()

	worker := NewWorker(&stubOutboxRepo{}, nil)
	if err := worker.Run(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestWorker_DeadLetterWrapsNonJSONPayload(t *testing.T) {
	t.Parallel()

	event := orderEvent("msg-4")
	event.Payload = []byte("not json")
	repo := &stubOutboxRepo{pending: []domain.OutboxMessage{event}}
	dlqPublisher := &stubPublisher{}

	worker := NewWorker(repo, &stubPublisher{err: errors.New("down")},
		WithDLQPublisher(dlqPublisher), WithRetryBaseDelay(0), WithMaxAttempts(1))
	worker.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	worker.ProcessOnce(context.Background())

	published := dlqPublisher.messages()
	if len(published) != 1 {
		t.Fatalf("expected 1 DLQ publish, got %d", len(published))
	}
	if published[0].ID != "msg-4" || published[0].AggregateID != event.AggregateID {
		t.Fatalf("dead letter must keep routing fields: %+v", published[0])
	}

	var letter DeadLetter
	if err := json.Unmarshal(published[0].Payload, &letter); err != nil {
		t.Fatalf("decode dead letter: %v", err)
	}
	if string(letter.Payload) != `"not json"` {
		t.Fatalf("expected quoted payload, got %s", letter.Payload)
	}
	if !letter.DLQPublishedAt.Equal(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)) {
		t.Fatalf("unexpected dlq timestamp: %s", letter.DLQPublishedAt)
	}
}

func TestWorker_CancelledRetryKeepsMessagePending(t *testing.T) {
	t.Parallel()

	repo := &stubOutboxRepo{pending: []domain.OutboxMessage{orderEvent("msg-5")}}
	ctx, cancel := context.WithCancel(context.Background())
	publisher := &stubPublisher{err: errors.New("down"), onPublish: cancel}

	worker := NewWorker(repo, publisher, WithRetryBaseDelay(time.Hour), WithMaxAttempts(3))
	res := worker.ProcessOnce(ctx)

	if res.Failed != 1 || publisher.calls() != 1 {
		t.Fatalf("expected a single aborted attempt, got %+v after %d calls", res, publisher.calls())
	}
	if len(repo.failedIDs) != 0 || len(repo.sentIDs) != 0 {
		t.Fatalf("aborted message must stay pending: sent=%v failed=%v", repo.sentIDs, repo.failedIDs)
	}
}

type stubOutboxRepo struct {
	pending   []domain.OutboxMessage
	sentIDs   []string
	failedIDs []string
}

func (s *stubOutboxRepo) Enqueue(msg domain.OutboxMessage) (domain.OutboxMessage, error) {
	return msg, nil
}

func (s *stubOutboxRepo) PullPending(limit int) ([]domain.OutboxMessage, error) {
	if limit <= 0 || limit >= len(s.pending) {
		return append([]domain.OutboxMessage(nil), s.pending...), nil
	}
	return append([]domain.OutboxMessage(nil), s.pending[:limit]...), nil
}

func (s *stubOutboxRepo) Stats() (domain.OutboxStats, error) {
	stats := domain.OutboxStats{PendingCount: len(s.pending)}
	if len(s.pending) > 0 {
		stats.OldestPendingAt = time.Now().UTC().Add(-time.Second)
	}
	return stats, nil
}

func (s *stubOutboxRepo) MarkSent(id string) error {
	s.sentIDs = append(s.sentIDs, id)
	return nil
}

func (s *stubOutboxRepo) MarkFailed(id string) error {
	s.failedIDs = append(s.failedIDs, id)
	return nil
}

type stubPublisher struct {
	mu             sync.Mutex
	err            error
	sequenceErrors []error
	callCount      int
	published      []domain.OutboxMessage
	onPublish      func()
}

func (s *stubPublisher) Publish(event domain.OutboxMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.callCount++
	if s.onPublish != nil {
		s.onPublish()
	}
	err := s.err
	if len(s.sequenceErrors) > 0 {
		err = s.sequenceErrors[0]
		s.sequenceErrors = s.sequenceErrors[1:]
	}
	if err == nil {
		s.published = append(s.published, event)
	}
	return err
}

func (s *stubPublisher) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

func (s *stubPublisher) messages() []domain.OutboxMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.OutboxMessage(nil), s.published...)
}

var (
	_ domain.OutboxRepository = (*stubOutboxRepo)(nil)
	_ domain.OutboxPublisher  = (*stubPublisher)(nil)
)
