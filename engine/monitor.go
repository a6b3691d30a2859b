package engine

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"gomahjong/internal/mjlog"
)

// Load is a single host-load sample.
type Load struct {
	CPUPercent   float64
	MemPercent   float64
	ActiveRounds int
}

// RoundCounter reports how many rounds this node currently has in
// progress, so Monitor can fold that into its load sample.
type RoundCounter interface {
	ActiveRounds() int
}

// Monitor periodically samples host CPU and memory usage alongside the
// node's active round count, the way a game node reports load to let a
// load balancer or matchmaker route new tables away from hot nodes.
type Monitor struct {
	rounds   RoundCounter
	interval time.Duration
	stopCh   chan struct{}
	onSample func(Load)
}

// NewMonitor builds a Monitor sampling every interval and invoking
// onSample with each reading.
func NewMonitor(rounds RoundCounter, interval time.Duration, onSample func(Load)) *Monitor {
	return &Monitor{
		rounds:   rounds,
		interval: interval,
		stopCh:   make(chan struct{}),
		onSample: onSample,
	}
}

// Run samples immediately, then on every tick, until ctx is canceled or
// Stop is called.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.sample()
	for {
		select {
		case <-ctx.Done():
			return
		case <-m.stopCh:
			return
		case <-ticker.C:
			m.sample()
		}
	}
}

// Stop halts Run.
func (m *Monitor) Stop() {
	close(m.stopCh)
}

func (m *Monitor) sample() {
	var cpuPct float64
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		cpuPct = percents[0]
	} else if err != nil {
		mjlog.Warn("monitor: cpu sample failed", "err", err)
	}

	var memPct float64
	if vm, err := mem.VirtualMemory(); err == nil {
		memPct = vm.UsedPercent
	} else {
		mjlog.Warn("monitor: mem sample failed", "err", err)
	}

	load := Load{CPUPercent: cpuPct, MemPercent: memPct, ActiveRounds: m.rounds.ActiveRounds()}
	if m.onSample != nil {
		m.onSample(load)
	}
}
