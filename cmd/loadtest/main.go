package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	omsv1 "github.com/vladislavdragonenkov/ordering/proto/oms/v1"
)

type loadMode string

const (
	modeCreate              loadMode = "create"
	modeCreateConfirm       loadMode = "create-confirm"
	modeCreateConfirmCancel loadMode = "create-confirm-cancel"
)

type config struct {
	addr        string
	total       int
	duration    time.Duration
	concurrency int
	connections int
	timeout     time.Duration
	mode        loadMode
	productID   string
	quantity    int
	outputPath  string
}

func parseConfig(args []string) (config, error) {
	var (
		cfg       config
		modeValue string
	)

	fs := flag.NewFlagSet("loadtest", flag.ContinueOnError)
	fs.StringVar(&cfg.addr, "addr", "localhost:50051", "gRPC target address")
	fs.IntVar(&cfg.total, "total", 400, "total scenarios (upper bound when -duration is set, 0 = unbounded)")
	fs.DurationVar(&cfg.duration, "duration", 0, "optional time-based run duration")
	fs.IntVar(&cfg.concurrency, "concurrency", 40, "number of concurrent workers")
	fs.IntVar(&cfg.connections, "connections", 20, "number of gRPC client connections")
	fs.DurationVar(&cfg.timeout, "timeout", 5*time.Second, "per-RPC timeout")
	fs.StringVar(&modeValue, "mode", string(modeCreate), "load mode: create | create-confirm | create-confirm-cancel")
	fs.StringVar(&cfg.productID, "product", "", "product id for order lines (default: first active catalog product)")
	fs.IntVar(&cfg.quantity, "qty", 1, "quantity of each order line")
	fs.StringVar(&cfg.outputPath, "output", "", "optional JSON report output file path")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	mode, err := parseMode(modeValue)
	if err != nil {
		return config{}, err
	}
	cfg.mode = mode
	cfg.productID = strings.TrimSpace(cfg.productID)

	switch {
	case cfg.duration < 0:
		return config{}, errors.New("duration must be >= 0")
	case cfg.duration == 0 && cfg.total <= 0:
		return config{}, errors.New("total must be > 0 when duration is not set")
	case cfg.total < 0:
		return config{}, errors.New("total must be >= 0")
	case cfg.concurrency <= 0:
		return config{}, errors.New("concurrency must be > 0")
	case cfg.connections <= 0:
		return config{}, errors.New("connections must be > 0")
	case cfg.timeout <= 0:
		return config{}, errors.New("timeout must be > 0")
	case cfg.quantity <= 0:
		return config{}, errors.New("qty must be > 0")
	}
	return cfg, nil
}

func parseMode(value string) (loadMode, error) {
	switch mode := loadMode(strings.TrimSpace(value)); mode {
	case modeCreate, modeCreateConfirm, modeCreateConfirmCancel:
		return mode, nil
	default:
		return "", fmt.Errorf("unsupported mode: %s", value)
	}
}

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := run(ctx, cfg, os.Stdout)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "load test failed: %v\n", err)
		os.Exit(1)
	}
	if result.FailedScenarios > 0 {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, out io.Writer) (report, error) {
	conns := make([]*grpc.ClientConn, 0, cfg.connections)
	defer func() {
		for _, conn := range conns {
			_ = conn.Close()
		}
	}()
	for i := 0; i < cfg.connections; i++ {
		conn, err := grpc.NewClient(cfg.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return report{}, fmt.Errorf("create grpc client connection: %w", err)
		}
		conns = append(conns, conn)
	}

	productID, err := resolveProduct(ctx, omsv1.NewCatalogServiceClient(conns[0]), cfg)
	if err != nil {
		return report{}, err
	}
	customerID, err := createCustomer(ctx, omsv1.NewCustomerServiceClient(conns[0]), cfg)
	if err != nil {
		return report{}, err
	}

	startedAt := time.Now()
	col := newCollector()
	jobs := make(chan int, cfg.concurrency*2)

	var wg sync.WaitGroup
	for workerID := 0; workerID < cfg.concurrency; workerID++ {
		wg.Add(1)
		client := omsv1.NewOrderServiceClient(conns[workerID%len(conns)])
		go func() {
			defer wg.Done()
			for range jobs {
				_ = runScenario(ctx, client, cfg, target{productID: productID, customerID: customerID}, col)
			}
		}()
	}

	dispatchJobs(ctx, jobs, cfg)
	wg.Wait()

	result := col.buildReport(startedAt, time.Since(startedAt))
	printReport(out, result, cfg)
	if cfg.outputPath != "" {
		if err := writeJSONReport(cfg.outputPath, result); err != nil {
			return result, fmt.Errorf("write report: %w", err)
		}
	}
	return result, nil
}

// resolveProduct возвращает товар для позиций: явный из флага или первый активный из каталога.
func resolveProduct(ctx context.Context, catalog omsv1.CatalogServiceClient, cfg config) (string, error) {
	if cfg.productID != "" {
		return cfg.productID, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	resp, err := catalog.ListProducts(callCtx, &omsv1.ListProductsRequest{})
	if err != nil {
		return "", fmt.Errorf("list products: %w", err)
	}
	for _, product := range resp.GetProducts() {
		if product.GetActive() {
			return product.GetId(), nil
		}
	}
	return "", errors.New("catalog has no active products; pass -product")
}

// createCustomer заводит клиента, к которому привязываются заказы прогона.
func createCustomer(ctx context.Context, customers omsv1.CustomerServiceClient, cfg config) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	resp, err := customers.CreateCustomer(callCtx, &omsv1.CreateCustomerRequest{
		Contact: &omsv1.ContactInfo{
			Name:  "loadtest",
			Email: fmt.Sprintf("loadtest+%d@example.com", time.Now().UnixNano()),
		},
	})
	if err != nil {
		return "", fmt.Errorf("create customer: %w", err)
	}
	return resp.GetCustomer().GetId(), nil
}

func dispatchJobs(ctx context.Context, jobs chan<- int, cfg config) {
	defer close(jobs)

	var deadline <-chan time.Time
	if cfg.duration > 0 {
		timer := time.NewTimer(cfg.duration)
		defer timer.Stop()
		deadline = timer.C
	}

	for i := 0; cfg.total == 0 || i < cfg.total; i++ {
		select {
		case <-ctx.Done():
			return
		case <-deadline:
			return
		case jobs <- i:
		}
	}
}
