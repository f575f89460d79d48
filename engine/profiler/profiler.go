package profiler

import (
	"log/slog"
	"runtime"
	"time"

	"github.com/Carmen-Shannon/oxy-scene/engine/renderer"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/shader"
)

// Stats is a snapshot of uniform traffic counted since the last report.
type Stats struct {
	Creates int
	Writes  int
	Binds   int
	Bytes   uint64
}

// Profiler wraps a renderer.Context and counts uniform block traffic, reporting it
// together with heap statistics at a configurable interval.
// Like the scene it wraps, a Profiler is not safe for concurrent use.
type Profiler struct {
	ctx            renderer.Context
	logger         *slog.Logger
	updateInterval time.Duration
	now            func() time.Time

	stats          Stats
	lastTime       time.Time
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

var _ renderer.Context = &Profiler{}

// NewProfiler creates a new Profiler around ctx. Update interval defaults to 1 second.
//
// Parameters:
//   - ctx: the context to forward calls to
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(ctx renderer.Context, options ...ProfilerBuilderOption) *Profiler {
	p := &Profiler{
		ctx:            ctx,
		logger:         slog.Default(),
		updateInterval: time.Second,
		now:            time.Now,
	}
	for _, opt := range options {
		opt(p)
	}
	p.lastTime = p.now()
	return p
}

func (p *Profiler) CreateUniformBlock(program shader.Program, layout shader.BlockLayout) (renderer.BlockHandle, error) {
	h, err := p.ctx.CreateUniformBlock(program, layout)
	if err == nil {
		p.stats.Creates++
	}
	return h, err
}

func (p *Profiler) WriteUniformBlock(handle renderer.BlockHandle, data []byte) error {
	if err := p.ctx.WriteUniformBlock(handle, data); err != nil {
		return err
	}
	p.stats.Writes++
	p.stats.Bytes += uint64(len(data))
	return nil
}

func (p *Profiler) BindUniformBlock(program shader.Program, handle renderer.BlockHandle) error {
	if err := p.ctx.BindUniformBlock(program, handle); err != nil {
		return err
	}
	p.stats.Binds++
	return nil
}

// Stats returns the traffic counted since the last report.
func (p *Profiler) Stats() Stats {
	return p.stats
}

// Tick should be called once per frame. When the update interval has elapsed it logs
// upload rates (blocks and bytes per second), heap usage, allocation rate and GC
// pauses, then resets the counters.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	// PauseNs is a circular buffer of the last 256 GC pauses
	gcCount := p.memStats.NumGC
	var maxPauseUs uint64
	startIdx := p.lastGCCount
	if gcCount-startIdx > 256 {
		startIdx = gcCount - 256
	}
	for i := startIdx; i < gcCount; i++ {
		maxPauseUs = max(maxPauseUs, p.memStats.PauseNs[i%256]/1000)
	}

	secs := elapsed.Seconds()
	p.logger.Info("profiler",
		"writes/s", float64(p.stats.Writes)/secs,
		"binds/s", float64(p.stats.Binds)/secs,
		"upload KB/s", float64(p.stats.Bytes)/1024/secs,
		"creates", p.stats.Creates,
		"heap MB", allocMB,
		"alloc MB/s", allocRateMB,
		"gc", gcCount,
		"max pause µs", maxPauseUs,
	)

	p.stats = Stats{}
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
