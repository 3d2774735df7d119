package ordstream

import "github.com/nwillc/ordstream/internal/metrics"

// MapOption configures the ordered map engine built by Map, CompactMap, and
// FlatMap.
type MapOption func(*mapConfig)

// WithMaxConcurrency bounds the number of concurrently running transform
// invocations to n (n must be > 0). Without this option, concurrency is
// unbounded: one worker goroutine runs per upstream element.
func WithMaxConcurrency(n uint) MapOption {
	if n == 0 {
		panic("ordstream: WithMaxConcurrency requires n > 0")
	}
	return func(c *mapConfig) { c.MaxConcurrency = n }
}

// WithChannelBuffer sets the capacity of the internal channel the
// supervisor uses to hand completed results to the reorder buffer.
func WithChannelBuffer(size uint) MapOption {
	return func(c *mapConfig) { c.ChannelBufferSize = size }
}

// WithElementIDs attaches a generated uuid.UUID to every submitted element,
// retrievable from a failure via ExtractElementID.
func WithElementIDs() MapOption {
	return func(c *mapConfig) { c.ElementIDs = true }
}

// WithMetrics wires a metrics.Provider into the engine to record element
// counts, in-flight gauges, and per-element transform latency.
func WithMetrics(p metrics.Provider) MapOption {
	if p == nil {
		panic("ordstream: WithMetrics requires a non-nil Provider")
	}
	return func(c *mapConfig) { c.Metrics = p }
}

func buildMapConfig(opts []MapOption) mapConfig {
	cfg := defaultMapConfig()
	for _, opt := range opts {
		if opt == nil {
			panic("ordstream: nil MapOption")
		}
		opt(&cfg)
	}
	return cfg
}
