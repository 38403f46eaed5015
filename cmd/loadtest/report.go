package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"text/tabwriter"
	"time"

	"google.golang.org/grpc/codes"
)

type latencySummary struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
	P50 float64 `json:"p50"`
	P95 float64 `json:"p95"`
	P99 float64 `json:"p99"`
}

type methodReport struct {
	Calls     int64            `json:"calls"`
	Success   int64            `json:"success"`
	Failed    int64            `json:"failed"`
	ErrorRate float64          `json:"error_rate"`
	Codes     map[string]int64 `json:"codes"`
	LatencyMs latencySummary   `json:"latency_ms"`
}

type report struct {
	StartedAt         time.Time               `json:"started_at"`
	DurationSeconds   float64                 `json:"duration_seconds"`
	TotalScenarios    int64                   `json:"total_scenarios"`
	SuccessScenarios  int64                   `json:"success_scenarios"`
	FailedScenarios   int64                   `json:"failed_scenarios"`
	ErrorRate         float64                 `json:"error_rate"`
	RPS               float64                 `json:"rps"`
	ScenarioLatencyMs latencySummary          `json:"scenario_latency_ms"`
	Methods           map[string]methodReport `json:"methods"`
}

// latencies: выборка задержек в миллисекундах.
type latencies []float64

// quantile интерполирует линейно между соседними рангами; q в [0, 1].
func (l latencies) quantile(q float64) float64 {
	n := len(l)
	if n == 0 {
		return 0
	}
	sorted := append(latencies(nil), l...)
	sort.Float64s(sorted)

	pos := q * float64(n-1)
	i := int(pos)
	if i >= n-1 {
		return sorted[n-1]
	}
	return sorted[i] + (sorted[i+1]-sorted[i])*(pos-float64(i))
}

func (l latencies) summary() latencySummary {
	if len(l) == 0 {
		return latencySummary{}
	}
	s := latencySummary{Min: l[0], Max: l[0]}
	var sum float64
	for _, v := range l {
		sum += v
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
	}
	s.Avg = sum / float64(len(l))
	s.P50, s.P95, s.P99 = l.quantile(0.50), l.quantile(0.95), l.quantile(0.99)
	return s
}

// methodSamples: все вызовы одного метода.
type methodSamples struct {
	codes     map[codes.Code]int64
	latencies latencies
}

func (m *methodSamples) report() methodReport {
	r := methodReport{Codes: make(map[string]int64, len(m.codes)), LatencyMs: m.latencies.summary()}
	for code, n := range m.codes {
		r.Codes[code.String()] = n
		r.Calls += n
		if code != codes.OK {
			r.Failed += n
		}
	}
	r.Success = r.Calls - r.Failed
	if r.Calls > 0 {
		r.ErrorRate = float64(r.Failed) / float64(r.Calls)
	}
	return r
}

// collector принимает результаты от всех воркеров.
type collector struct {
	mu      sync.Mutex
	methods map[string]*methodSamples
}

func newCollector() *collector {
	return &collector{methods: make(map[string]*methodSamples)}
}

func (c *collector) record(method string, latency time.Duration, code codes.Code) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m := c.methods[method]
	if m == nil {
		m = &methodSamples{codes: make(map[codes.Code]int64)}
		c.methods[method] = m
	}
	m.codes[code]++
	m.latencies = append(m.latencies, float64(latency)/float64(time.Millisecond))
}

func (c *collector) buildReport(startedAt time.Time, elapsed time.Duration) report {
	c.mu.Lock()
	defer c.mu.Unlock()

	r := report{
		StartedAt:       startedAt.UTC(),
		DurationSeconds: elapsed.Seconds(),
		Methods:         make(map[string]methodReport, len(c.methods)),
	}
	for name, m := range c.methods {
		r.Methods[name] = m.report()
	}

	scenario := r.Methods[scenarioMethod]
	r.TotalScenarios = scenario.Calls
	r.SuccessScenarios = scenario.Success
	r.FailedScenarios = scenario.Failed
	r.ErrorRate = scenario.ErrorRate
	r.ScenarioLatencyMs = scenario.LatencyMs
	if elapsed > 0 {
		r.RPS = float64(r.TotalScenarios) / elapsed.Seconds()
	}
	return r
}

func printReport(out io.Writer, r report, cfg config) {
	l := r.ScenarioLatencyMs
	_, _ = fmt.Fprintf(out, "Load test summary: mode=%s total=%d success=%d failed=%d error_rate=%.4f\n",
		cfg.mode, r.TotalScenarios, r.SuccessScenarios, r.FailedScenarios, r.ErrorRate)
	_, _ = fmt.Fprintf(out, "duration=%.2fs rps=%.2f latency_ms min=%.2f avg=%.2f p50=%.2f p95=%.2f p99=%.2f max=%.2f\n",
		r.DurationSeconds, r.RPS, l.Min, l.Avg, l.P50, l.P95, l.P99, l.Max)

	names := make([]string, 0, len(r.Methods))
	for name := range r.Methods {
		if name != scenarioMethod {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "METHOD\tCALLS\tFAILED\tERROR_RATE\tP95_MS")
	for _, name := range names {
		m := r.Methods[name]
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%d\t%.4f\t%.2f\n", name, m.Calls, m.Failed, m.ErrorRate, m.LatencyMs.P95)
	}
	_ = tw.Flush()
}

// writeJSONReport пишет отчёт только внутри рабочего каталога.
func writeJSONReport(path string, r report) error {
	clean := filepath.Clean(path)
	if clean == "." || !filepath.IsLocal(clean) {
		return fmt.Errorf("output path must be a file inside the working directory: %q", path)
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return os.WriteFile(clean, append(data, '\n'), 0o600)
}
