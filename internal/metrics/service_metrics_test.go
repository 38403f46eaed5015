package metrics

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
)

func TestNewServiceMetricsWithRegisterer(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewServiceMetricsWithRegisterer(reg)

	if metrics.operations == nil || metrics.operationDuration == nil || metrics.transitions == nil {
		t.Fatal("vector collectors should not be nil")
	}
	if metrics.linesAdded == nil || metrics.timelineEvents == nil || metrics.outboxEvents == nil {
		t.Fatal("counters should not be nil")
	}
}

func TestNewServiceMetrics_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := NewServiceMetricsWithRegisterer(reg)
	second := NewServiceMetricsWithRegisterer(reg)

	first.RecordLineAdded()
	second.RecordLineAdded()

	if got := testutil.ToFloat64(first.linesAdded); got != 2 {
		t.Fatalf("expected shared counter value 2, got %f", got)
	}
}

func TestObserveOperation(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewServiceMetricsWithRegisterer(reg)

	metrics.ObserveOperation("order", "confirm", ResultOK, 10*time.Millisecond)
	metrics.ObserveOperation("order", "confirm", ResultOK, 20*time.Millisecond)
	metrics.ObserveOperation("order", "confirm", ResultRejected, time.Millisecond)

	if got := testutil.ToFloat64(metrics.operations.WithLabelValues("order", "confirm", ResultOK)); got != 2 {
		t.Errorf("expected 2 ok confirms, got %f", got)
	}
	if got := testutil.ToFloat64(metrics.operations.WithLabelValues("order", "confirm", ResultRejected)); got != 1 {
		t.Errorf("expected 1 rejected confirm, got %f", got)
	}

	histogram, err := metrics.operationDuration.GetMetricWithLabelValues("order", "confirm")
	if err != nil {
		t.Fatalf("get histogram: %v", err)
	}
	metric := &dto.Metric{}
	if err := histogram.(prometheus.Histogram).Write(metric); err != nil {
		t.Fatalf("failed to write histogram: %v", err)
	}
	if metric.Histogram.GetSampleCount() != 3 {
		t.Errorf("expected 3 samples, got %d", metric.Histogram.GetSampleCount())
	}
}

func TestRecordCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewServiceMetricsWithRegisterer(reg)

	metrics.RecordTransition("confirmed")
	metrics.RecordTransition("confirmed")
	metrics.RecordTransition("cancelled")
	metrics.RecordTimelineEvent()
	metrics.RecordOutboxEvent()
	metrics.RecordOutboxEvent()

	if got := testutil.ToFloat64(metrics.transitions.WithLabelValues("confirmed")); got != 2 {
		t.Errorf("expected 2 confirmed transitions, got %f", got)
	}
	if got := testutil.ToFloat64(metrics.timelineEvents); got != 1 {
		t.Errorf("expected 1 timeline event, got %f", got)
	}
	if got := testutil.ToFloat64(metrics.outboxEvents); got != 2 {
		t.Errorf("expected 2 outbox events, got %f", got)
	}
}

func TestNilMetricsAreNoop(t *testing.T) {
	var metrics *ServiceMetrics

	metrics.ObserveOperation("order", "create", ResultOK, time.Millisecond)
	metrics.RecordTransition("draft")
	metrics.RecordLineAdded()
	metrics.RecordTimelineEvent()
	metrics.RecordOutboxEvent()
}

func TestResultOf(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: nil, want: ResultOK},
		{err: fmt.Errorf("load order: %w", domain.ErrOrderNotFound), want: ResultNotFound},
		{err: domain.ErrInvalidQuantity, want: ResultInvalid},
		{err: fmt.Errorf("confirm: %w", domain.ErrEmptyOrder), want: ResultRejected},
		{err: domain.ErrOrderVersionConflict, want: ResultConflict},
		{err: errors.New("connection reset"), want: ResultError},
	}

	for _, tt := range tests {
		if got := ResultOf(tt.err); got != tt.want {
			t.Errorf("ResultOf(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
