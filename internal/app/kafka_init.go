package app

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
	"github.com/vladislavdragonenkov/ordering/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/ordering/internal/metrics"
	"github.com/vladislavdragonenkov/ordering/internal/service/outbox"
)

// outboxRelay: Kafka producer и outbox worker, который публикует через него.
type outboxRelay struct {
	producer *kafka.Producer
	worker   *outbox.Worker
	logger   *log.Entry
}

// newOutboxRelay подключается к Kafka. Без брокеров возвращает nil, nil:
// сервис работает, события копятся в outbox.
func newOutboxRelay(cfg Config, repo domain.OutboxRepository, registerer prometheus.Registerer, logger *log.Entry) (*outboxRelay, error) {
	if len(cfg.KafkaBrokers) == 0 {
		return nil, nil
	}
	producer, err := kafka.NewProducer(cfg.KafkaBrokers)
	if err != nil {
		return nil, err
	}
	logger.WithField("brokers", cfg.KafkaBrokers).Info("kafka producer initialized")
	return newOutboxRelayWith(cfg, repo, producer, registerer, logger), nil
}

func newOutboxRelayWith(cfg Config, repo domain.OutboxRepository, producer *kafka.Producer, registerer prometheus.Registerer, logger *log.Entry) *outboxRelay {
	workerLogger := logger.WithField("component", "outbox-worker")
	worker := outbox.NewWorker(
		repo,
		kafka.NewOutboxPublisher(producer, cfg.KafkaTopic),
		outbox.WithDLQPublisher(kafka.NewDLQPublisher(producer)),
		outbox.WithMetrics(metrics.NewOutboxMetricsWithRegisterer(registerer)),
		outbox.WithLogger(workerLogger),
		outbox.WithPollInterval(cfg.OutboxPollInterval),
		outbox.WithBatchSize(cfg.OutboxBatchSize),
		outbox.WithMaxAttempts(cfg.OutboxMaxAttempts),
		outbox.WithRetryBaseDelay(cfg.OutboxRetryDelay),
	)
	return &outboxRelay{producer: producer, worker: worker, logger: logger}
}

func (r *outboxRelay) run(ctx context.Context) error {
	return r.worker.Run(ctx)
}

// close закрывает producer; nil-relay допустим.
func (r *outboxRelay) close() {
	if r == nil {
		return
	}
	if err := r.producer.Close(); err != nil {
		r.logger.WithError(err).Warn("failed to close kafka producer")
		return
	}
	r.logger.Info("kafka producer closed")
}
