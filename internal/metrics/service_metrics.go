package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
)

// Результаты операций для лейбла result.
const (
	ResultOK       = "ok"
	ResultNotFound = "not_found"
	ResultInvalid  = "invalid"
	ResultRejected = "rejected"
	ResultConflict = "conflict"
	ResultError    = "error"
)

// ResultOf классифицирует ошибку операции для лейбла result.
func ResultOf(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case domain.IsNotFound(err):
		return ResultNotFound
	case domain.IsInvalidInput(err):
		return ResultInvalid
	case domain.IsRuleViolation(err):
		return ResultRejected
	case domain.IsVersionConflict(err):
		return ResultConflict
	default:
		return ResultError
	}
}

// ServiceMetrics содержит метрики прикладных сервисов: заказов, каталога и справочников.
// Nil-значение допустимо: все методы становятся no-op.
type ServiceMetrics struct {
	operations        *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	transitions       *prometheus.CounterVec
	linesAdded        prometheus.Counter
	timelineEvents    prometheus.Counter
	outboxEvents      prometheus.Counter
}

// NewServiceMetrics регистрирует метрики в prometheus.DefaultRegisterer.
func NewServiceMetrics() *ServiceMetrics {
	return NewServiceMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewServiceMetricsWithRegisterer регистрирует метрики в заданном registerer (изолированные реестры в тестах).
func NewServiceMetricsWithRegisterer(registerer prometheus.Registerer) *ServiceMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &ServiceMetrics{
		operations: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "oms_operations_total",
			Help: "Total number of application operations grouped by service, operation and result",
		}, []string{"service", "operation", "result"}),
		operationDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "oms_operation_duration_seconds",
			Help:    "Duration of application operations in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		}, []string{"service", "operation"}),
		transitions: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "oms_order_transitions_total",
			Help: "Total number of order status transitions grouped by target status",
		}, []string{"status"}),
		linesAdded: registerCounter(registerer, prometheus.CounterOpts{
			Name: "oms_order_lines_added_total",
			Help: "Total number of lines added to draft orders",
		}),
		timelineEvents: registerCounter(registerer, prometheus.CounterOpts{
			Name: "oms_timeline_events_total",
			Help: "Total number of timeline events recorded",
		}),
		outboxEvents: registerCounter(registerer, prometheus.CounterOpts{
			Name: "oms_outbox_events_total",
			Help: "Total number of events enqueued to the outbox",
		}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}

// ObserveOperation фиксирует результат и длительность операции.
func (m *ServiceMetrics) ObserveOperation(service, operation, result string, duration time.Duration) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(service, operation, result).Inc()
	m.operationDuration.WithLabelValues(service, operation).Observe(duration.Seconds())
}

// RecordTransition увеличивает счётчик переходов в статус.
func (m *ServiceMetrics) RecordTransition(status string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(status).Inc()
}

// RecordLineAdded увеличивает счётчик добавленных позиций.
func (m *ServiceMetrics) RecordLineAdded() {
	if m == nil {
		return
	}
	m.linesAdded.Inc()
}

// RecordTimelineEvent увеличивает счётчик событий timeline.
func (m *ServiceMetrics) RecordTimelineEvent() {
	if m == nil {
		return
	}
	m.timelineEvents.Inc()
}

// RecordOutboxEvent увеличивает счётчик событий outbox.
func (m *ServiceMetrics) RecordOutboxEvent() {
	if m == nil {
		return
	}
	m.outboxEvents.Inc()
}
