package contentline

import "sync/atomic"

// ReaderStats contains statistics about logical line assembly.
// All fields are safe for concurrent access.
//
// Struct is optimized to fit within a single cache line (64 bytes).
//
// For Prometheus integration, expose these as:
//   - Counters: LogicalLines, PhysicalLines, Continuations, Discarded
//   - Counter: LogicalBytes (derive mean line length as LogicalBytes/LogicalLines)
type ReaderStats struct {
	LogicalLines  uint64 // Logical lines assembled
	PhysicalLines uint64 // Physical lines read, continuations included
	Continuations uint64 // Folded lines appended to the line before them
	Discarded     uint64 // Padding lines dropped in full
	LogicalBytes  uint64 // Bytes of all assembled logical lines
	_             uint64 // Padding to align to 64 bytes
	_             uint64 // Padding to align to 64 bytes
	_             uint64 // Padding to align to 64 bytes
}

// readerStatsCollector provides internal methods for updating reader stats.
// Not exported - readers update their own stats.
type readerStatsCollector struct {
	stats *ReaderStats
}

func newReaderStatsCollector() *readerStatsCollector {
	return &readerStatsCollector{
		stats: &ReaderStats{},
	}
}

func (c *readerStatsCollector) recordLogicalLine(size int) {
	atomic.AddUint64(&c.stats.LogicalLines, 1)
	atomic.AddUint64(&c.stats.LogicalBytes, uint64(size))
}

func (c *readerStatsCollector) recordPhysicalLine() {
	atomic.AddUint64(&c.stats.PhysicalLines, 1)
}

func (c *readerStatsCollector) recordContinuation() {
	atomic.AddUint64(&c.stats.Continuations, 1)
}

func (c *readerStatsCollector) recordDiscard() {
	atomic.AddUint64(&c.stats.Discarded, 1)
}

func (c *readerStatsCollector) snapshot() ReaderStats {
	return ReaderStats{
		LogicalLines:  atomic.LoadUint64(&c.stats.LogicalLines),
		PhysicalLines: atomic.LoadUint64(&c.stats.PhysicalLines),
		Continuations: atomic.LoadUint64(&c.stats.Continuations),
		Discarded:     atomic.LoadUint64(&c.stats.Discarded),
		LogicalBytes:  atomic.LoadUint64(&c.stats.LogicalBytes),
	}
}
