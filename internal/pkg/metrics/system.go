package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const collectInterval = 5 * time.Second

var (
	HostCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "dispatch",
			Name:      "host_cpu_usage_percent",
			Help:      "Host CPU usage percentage",
		},
	)

	HostMemoryUsed = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "dispatch",
			Name:      "host_memory_used_bytes",
			Help:      "Host memory in use in bytes",
		},
	)

	ProcessHeapAlloc = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "dispatch",
			Name:      "process_heap_alloc_bytes",
			Help:      "Go heap bytes allocated by this process",
		},
	)
)

// StartSystemMetricsCollector samples host and process gauges on a
// fixed interval for the lifetime of the process.
func StartSystemMetricsCollector() {
	go func() {
		ticker := time.NewTicker(collectInterval)
		defer ticker.Stop()

		for range ticker.C {
			collect()
		}
	}()
}

func collect() {
	if cpuPercent, err := cpu.Percent(time.Second, false); err == nil && len(cpuPercent) > 0 {
		HostCPUUsage.Set(cpuPercent[0])
	}

	if vmStat, err := mem.VirtualMemory(); err == nil {
		HostMemoryUsed.Set(float64(vmStat.Used))
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	ProcessHeapAlloc.Set(float64(m.Alloc))
}
