package vis

// GraphConfig controls the sample retention and display bounds of a Graph.
// Degenerate configurations are never rejected: MaxSamples <= 0 keeps the
// history permanently empty, and auto-scaled bounds of a flat series are
// padded by one unit on either side.
type GraphConfig struct {
	MaxSamples int
	AutoScale  bool
	ManualMin  float64
	ManualMax  float64
}

// DefaultGraphConfig returns the configuration applied to graphs created
// without an explicit one.
func DefaultGraphConfig() GraphConfig {
	return GraphConfig{
		MaxSamples: 240,
		AutoScale:  true,
		ManualMin:  0,
		ManualMax:  1,
	}
}

// Graph is a bounded, time-ordered numeric sample buffer. The stored history
// never exceeds MaxSamples; the oldest samples are dropped first. The most
// recently pushed value is tracked independently and survives eviction from
// the history.
type Graph struct {
	config  GraphConfig
	samples []float64
	latest  float64
}

// NewGraph creates a graph with the given configuration.
func NewGraph(config GraphConfig) *Graph {
	return &Graph{config: config}
}

// Config returns the current configuration.
func (g *Graph) Config() GraphConfig { return g.config }

// Configure replaces the configuration and re-trims the history immediately.
func (g *Graph) Configure(config GraphConfig) {
	g.config = config
	g.trim()
}

// Push appends one sample, records it as the latest value and trims the
// history oldest-first back to MaxSamples.
func (g *Graph) Push(sample float64) {
	g.latest = sample
	g.samples = append(g.samples, sample)
	g.trim()
}

// AddSamples pushes every sample in order. Trimming happens per element, so
// a batch larger than MaxSamples leaves exactly the trailing MaxSamples
// elements in the history.
func (g *Graph) AddSamples(samples []float64) {
	for _, sample := range samples {
		g.Push(sample)
	}
}

// Samples returns the stored history. The returned slice is the graph's
// backing store and must only be read on the consumer goroutine.
func (g *Graph) Samples() []float64 { return g.samples }

// Len returns the number of stored samples.
func (g *Graph) Len() int { return len(g.samples) }

// Latest returns the most recently pushed value, even when that value has
// already been trimmed out of the history. A graph with MaxSamples=0 stores
// nothing but still reports the last push here.
func (g *Graph) Latest() float64 { return g.latest }

// Bounds returns the plot bounds renderers should use: the buffer min/max
// when auto-scaling (expanded by ±1 when the series is flat), otherwise the
// configured manual bounds.
func (g *Graph) Bounds() (min, max float64) {
	if !g.config.AutoScale || len(g.samples) == 0 {
		return g.config.ManualMin, g.config.ManualMax
	}
	min, max = g.samples[0], g.samples[0]
	for _, s := range g.samples[1:] {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	if min == max {
		min--
		max++
	}
	return min, max
}

func (g *Graph) trim() {
	if g.config.MaxSamples <= 0 {
		g.samples = nil
		return
	}
	if excess := len(g.samples) - g.config.MaxSamples; excess > 0 {
		g.samples = append(g.samples[:0], g.samples[excess:]...)
	}
}
