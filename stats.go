package vcard

import "sync/atomic"

// DecoderStats contains statistics about one Decoder.
// All fields are safe for concurrent access.
//
// Struct is optimized to fit within a single cache line (64 bytes).
//
// For Prometheus integration, expose these as:
//   - Counters: CardsDecoded, PropertiesDecoded, ProprietaryProperties, DecodeErrors
//   - Derive the error rate as DecodeErrors/(CardsDecoded+DecodeErrors)
type DecoderStats struct {
	CardsDecoded          uint64 // Cards decoded to completion
	PropertiesDecoded     uint64 // Properties decoded, proprietary included
	ProprietaryProperties uint64 // X- prefixed properties decoded
	DecodeErrors          uint64 // Errors returned to the caller
	_                     uint64 // Padding to align to 64 bytes
	_                     uint64 // Padding to align to 64 bytes
	_                     uint64 // Padding to align to 64 bytes
	_                     uint64 // Padding to align to 64 bytes
}

// decoderStatsCollector provides internal methods for updating decoder stats.
// Not exported - decoders update their own stats.
type decoderStatsCollector struct {
	stats *DecoderStats
}

func newDecoderStatsCollector() *decoderStatsCollector {
	return &decoderStatsCollector{
		stats: &DecoderStats{},
	}
}

func (c *decoderStatsCollector) recordCard() {
	atomic.AddUint64(&c.stats.CardsDecoded, 1)
}

func (c *decoderStatsCollector) recordProperty() {
	atomic.AddUint64(&c.stats.PropertiesDecoded, 1)
}

func (c *decoderStatsCollector) recordProprietary() {
	atomic.AddUint64(&c.stats.ProprietaryProperties, 1)
}

func (c *decoderStatsCollector) recordError() {
	atomic.AddUint64(&c.stats.DecodeErrors, 1)
}

func (c *decoderStatsCollector) snapshot() DecoderStats {
	return DecoderStats{
		CardsDecoded:          atomic.LoadUint64(&c.stats.CardsDecoded),
		PropertiesDecoded:     atomic.LoadUint64(&c.stats.PropertiesDecoded),
		ProprietaryProperties: atomic.LoadUint64(&c.stats.ProprietaryProperties),
		DecodeErrors:          atomic.LoadUint64(&c.stats.DecodeErrors),
	}
}
