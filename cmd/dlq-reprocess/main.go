package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ordering/internal/messaging/kafka"
)

const (
	defaultGroupID  = "oms-dlq-reprocess"
	defaultDuration = 30 * time.Second
)

type config struct {
	brokers     []string
	groupID     string
	sourceTopic string
	execute     bool
	duration    time.Duration
}

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.InfoLevel)

	cfg, err := readConfig(os.Args[1:], os.Getenv)
	if err != nil {
		fail("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fail("dlq replay failed: %v", err)
	}
}

func readConfig(args []string, getenv func(string) string) (config, error) {
	var (
		brokersRaw string
		cfg        config
	)

	fs := flag.NewFlagSet("dlq-reprocess", flag.ContinueOnError)
	fs.StringVar(&brokersRaw, "brokers", "", "Kafka brokers as comma-separated list (fallback: KAFKA_BROKERS)")
	fs.StringVar(&cfg.groupID, "group", defaultGroupID, "consumer group used to track replay progress")
	fs.StringVar(&cfg.sourceTopic, "source-topic", kafka.TopicDeadLetterQueue, "DLQ source topic")
	fs.BoolVar(&cfg.execute, "execute", false, "execute replay; default is dry-run")
	fs.DurationVar(&cfg.duration, "duration", defaultDuration, "how long to consume before stopping (0 = until signal)")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if strings.TrimSpace(brokersRaw) == "" {
		brokersRaw = getenv("KAFKA_BROKERS")
	}
	cfg.brokers = parseBrokers(brokersRaw)
	cfg.groupID = strings.TrimSpace(cfg.groupID)
	cfg.sourceTopic = strings.TrimSpace(cfg.sourceTopic)

	switch {
	case len(cfg.brokers) == 0:
		return config{}, errors.New("kafka brokers are required (-brokers or KAFKA_BROKERS)")
	case cfg.groupID == "":
		return config{}, errors.New("group is required")
	case cfg.sourceTopic == "":
		return config{}, errors.New("source-topic is required")
	case cfg.duration < 0:
		return config{}, errors.New("duration must not be negative")
	}
	return cfg, nil
}

func parseBrokers(raw string) []string {
	chunks := strings.Split(raw, ",")
	brokers := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		if broker := strings.TrimSpace(chunk); broker != "" {
			brokers = append(brokers, broker)
		}
	}
	return brokers
}

func run(ctx context.Context, cfg config) error {
	logger := log.WithFields(log.Fields{
		"component":    "dlq-reprocess",
		"source_topic": cfg.sourceTopic,
		"group":        cfg.groupID,
		"execute":      cfg.execute,
	})
	logger.Info("starting dlq replay")

	var producer *kafka.Producer
	if cfg.execute {
		p, err := kafka.NewProducer(cfg.brokers)
		if err != nil {
			return err
		}
		defer func() {
			if err := p.Close(); err != nil {
				logger.WithError(err).Warn("close replay producer")
			}
		}()
		producer = p
	}

	handler := kafka.NewReplayHandler(producer, !cfg.execute, logger)
	consumer, err := kafka.NewConsumer(
		cfg.brokers,
		cfg.groupID,
		[]string{cfg.sourceTopic},
		handler,
		kafka.WithOldestOffset(),
		kafka.WithConsumerLogger(logger),
	)
	if err != nil {
		return err
	}

	if cfg.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.duration)
		defer cancel()
	}

	if err := consumer.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()

	if err := consumer.Stop(); err != nil {
		return err
	}
	logger.Info("dlq replay finished")
	return nil
}

func fail(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
