package ordstream

import "github.com/nwillc/ordstream/internal/metrics"

// mapConfig holds the ordered map engine's configuration. It is assembled
// by MapOption values passed to Map, CompactMap, and FlatMap.
type mapConfig struct {
	// MaxConcurrency bounds how many transform invocations may run at once.
	// Zero (the default) means unbounded: one worker goroutine is spawned
	// per upstream element, matching spec.md §5's "worker parallelism is
	// unbounded by default."
	MaxConcurrency uint

	// ChannelBufferSize sets the capacity of the internal channel carrying
	// completed (index, result) pairs from workers to the reorder buffer.
	// A larger buffer lets more completed-but-not-yet-emitted results
	// accumulate before workers block on send; it does not change ordering.
	// Default: 1024.
	ChannelBufferSize uint

	// ElementIDs attaches a generated uuid.UUID to each submitted element,
	// surfaced on StreamIndexError via ExtractElementID. Default: false.
	ElementIDs bool

	// Metrics receives counts and latencies for submitted, completed,
	// errored, and in-flight elements. Default: metrics.NewNoopProvider().
	Metrics metrics.Provider
}

// defaultMapConfig centralizes default values, mirroring the teacher's
// defaultConfig helper.
func defaultMapConfig() mapConfig {
	return mapConfig{
		MaxConcurrency:    0,
		ChannelBufferSize: 1024,
		ElementIDs:        false,
		Metrics:           metrics.NewNoopProvider(),
	}
}
