package authgate

import (
	"sync"
	"testing"
)

func TestMetricsIncAndSnapshot(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	m.Inc(MetricAllowed)
	m.Inc(MetricAllowed)
	m.Inc(MetricAdminDenied)

	if got := m.Value(MetricAllowed); got != 2 {
		t.Fatalf("Value(MetricAllowed) = %d, want 2", got)
	}

	s := m.Snapshot()
	if s.Counters[MetricAllowed] != 2 || s.Counters[MetricAdminDenied] != 1 {
		t.Fatalf("unexpected snapshot: %v", s.Counters)
	}
	if len(s.Counters) != int(metricIDCount) {
		t.Fatalf("snapshot has %d counters, want %d", len(s.Counters), metricIDCount)
	}
}

func TestMetricsDisabledNoop(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: false})
	m.Inc(MetricAllowed)

	if m.Value(MetricAllowed) != 0 {
		t.Fatal("disabled metrics must not count")
	}
	if len(m.Snapshot().Counters) != 0 {
		t.Fatal("disabled metrics snapshot must be empty")
	}

	var nilMetrics *Metrics
	nilMetrics.Inc(MetricAllowed)
	if nilMetrics.Enabled() {
		t.Fatal("nil metrics must report disabled")
	}
}

func TestMetricsOutOfRangeIDIgnored(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})
	m.Inc(metricIDCount)
	m.Inc(metricIDCount + 100)
	if got := m.Value(metricIDCount + 100); got != 0 {
		t.Fatalf("out-of-range Value = %d", got)
	}
}

func TestMetricsConcurrentInc(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	const workers = 8
	const perWorker = 1000

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				m.Inc(MetricLoginRedirected)
			}
		}()
	}
	wg.Wait()

	if got := m.Value(MetricLoginRedirected); got != workers*perWorker {
		t.Fatalf("Value = %d, want %d", got, workers*perWorker)
	}
}
