package vcard

import (
	"io"
	"strings"

	"github.com/pior/vcard/contentline"
	"github.com/pior/vcard/property"
)

// Config holds configuration for the Decoder.
type Config struct {
	// MaxLogicalLineLength is the size limit of one logical line in bytes,
	// measured after unfolding. Lines past the limit fail with a
	// contentline.MaxLengthError.
	// Zero means contentline.DefaultMaxLineLength.
	MaxLogicalLineLength int
}

// Decoder reads one vcard from a stream.
//
// A Decoder is not safe for concurrent use. Stats may be read from another
// goroutine while Decode runs.
type Decoder struct {
	r     *contentline.Reader
	stats *decoderStatsCollector
}

// NewDecoder creates a Decoder reading from r with the default configuration.
func NewDecoder(r io.Reader) *Decoder {
	return NewDecoderConfig(r, Config{})
}

// NewDecoderConfig creates a Decoder reading from r with the given
// configuration.
func NewDecoderConfig(r io.Reader, config Config) *Decoder {
	return &Decoder{
		r:     contentline.NewReaderLimit(r, config.MaxLogicalLineLength),
		stats: newDecoderStatsCollector(),
	}
}

// DecodeString decodes one vcard held in s.
func DecodeString(s string) (*Card, error) {
	return NewDecoder(strings.NewReader(s)).Decode()
}

// Stats returns a snapshot of the decoder counters.
func (d *Decoder) Stats() DecoderStats {
	return d.stats.snapshot()
}

// ReaderStats returns a snapshot of the line assembly counters.
func (d *Decoder) ReaderStats() contentline.ReaderStats {
	return d.r.Stats()
}

// Decode reads the one vcard the stream holds.
//
// The first property must be BEGIN:VCARD, the second a VERSION, and the
// last line of the stream END:VCARD; content after END:VCARD fails with
// ErrInvalidEnd. io.EOF is returned when the stream is empty. Any other
// error aborts the card; when IsSyntaxError reports true for it, the
// stream is positioned past the failing logical line.
func (d *Decoder) Decode() (*Card, error) {
	prop, more, err := d.next()
	if err != nil {
		return nil, err
	}
	if begin, ok := prop.(*property.Begin); !ok || begin.Value != "VCARD" {
		return nil, d.fail(ErrInvalidBegin)
	}
	if !more {
		return nil, d.fail(ErrInvalidVersion)
	}

	prop, more, err = d.next()
	if err != nil {
		return nil, err
	}
	version, ok := prop.(*property.Version)
	if !ok {
		return nil, d.fail(ErrInvalidVersion)
	}
	if !more {
		return nil, d.fail(ErrInvalidEnd)
	}

	card := &Card{Version: *version}
	for {
		prop, more, err = d.next()
		if err != nil {
			return nil, err
		}
		if end, ok := prop.(*property.End); ok {
			if end.Value != "VCARD" || more {
				return nil, d.fail(ErrInvalidEnd)
			}
			d.stats.recordCard()
			return card, nil
		}
		if err := card.Add(prop); err != nil {
			return nil, d.fail(err)
		}
	}
}

// next assembles, tokenizes and decodes one property line. Errors are
// counted here; io.EOF passes through uncounted.
func (d *Decoder) next() (property.Property, bool, error) {
	line, more, err := d.r.ReadLogicalLine()
	if err != nil {
		if err == io.EOF {
			return nil, false, err
		}
		return nil, false, d.fail(err)
	}

	parsed, err := contentline.Parse(line)
	if err != nil {
		return nil, false, d.fail(err)
	}

	prop, err := property.Decode(parsed)
	if err != nil {
		return nil, false, d.fail(err)
	}

	d.stats.recordProperty()
	if _, ok := prop.(*property.Proprietary); ok {
		d.stats.recordProprietary()
	}
	return prop, more, nil
}

func (d *Decoder) fail(err error) error {
	d.stats.recordError()
	return err
}
