package contentline

import (
	"bufio"
	"bytes"
	"io"
	"unicode/utf8"
)

// lineInspection classifies the bytes that follow a physical line
// terminator.
type lineInspection int

const (
	// inspectNewProperty marks the start of a fresh logical line.
	inspectNewProperty lineInspection = iota

	// inspectContinuation marks a folded physical line. Its fold marker has
	// been consumed and its content extends the current logical line.
	inspectContinuation

	// inspectDiscard marks a physical line starting with a fold marker
	// followed by more whitespace. The whole line is dropped.
	inspectDiscard

	// inspectNoMoreContent marks the end of the stream.
	inspectNoMoreContent
)

var endVCard = []byte("END:VCARD")

// Reader assembles logical lines from a folded stream.
//
// A logical line is one or more physical lines. A physical line starting
// with a space or a tab continues the previous one; the fold marker is
// removed and the rest of the line is appended verbatim, so a fold in the
// middle of a UTF-8 sequence reassembles correctly. A continuation whose
// second byte is again whitespace (or a line terminator) is treated as
// padding and dropped in full.
//
// Reader keeps no position in the stream beyond the underlying buffered
// reader, so after a recoverable error the next call starts at the next
// logical line boundary.
type Reader struct {
	br      *bufio.Reader
	max     int
	buf     []byte
	discard []byte
	stats   *readerStatsCollector
}

// NewReader returns a Reader with the default logical line length limit.
func NewReader(r io.Reader) *Reader {
	return NewReaderLimit(r, DefaultMaxLineLength)
}

// NewReaderLimit returns a Reader enforcing the given logical line length
// limit. A limit of zero or less falls back to DefaultMaxLineLength.
func NewReaderLimit(r io.Reader, max int) *Reader {
	if max <= 0 {
		max = DefaultMaxLineLength
	}
	return &Reader{
		br:      bufio.NewReader(r),
		max:     max,
		buf:     make([]byte, 0, 256),
		discard: make([]byte, 0, 256),
		stats:   newReaderStatsCollector(),
	}
}

// Stats returns a snapshot of the reader counters.
func (r *Reader) Stats() ReaderStats {
	return r.stats.snapshot()
}

// ReadLogicalLine returns the next logical line and whether more content
// follows it. The returned line has its folds removed and its terminators
// stripped; escape sequences are untouched.
//
// io.EOF is returned when the stream is exhausted at a line boundary. A
// stream ending inside a logical line yields an UnexpectedEOFError, except
// for a final "END:VCARD" with no terminator, which is returned as a regular
// line with more == false.
func (r *Reader) ReadLogicalLine() (string, bool, error) {
	var err error
	r.buf, err = r.readPhysicalLine(r.buf[:0])
	if err != nil {
		if err == io.EOF {
			if len(r.buf) == 0 {
				return "", false, io.EOF
			}
			if bytes.Equal(r.buf, endVCard) {
				return r.finish(false)
			}
			return "", false, &UnexpectedEOFError{Partial: string(r.buf)}
		}
		return "", false, err
	}

	for {
		next, err := r.inspectNextLine()
		if err != nil {
			return "", false, err
		}
		switch next {
		case inspectNewProperty:
			return r.finish(true)
		case inspectNoMoreContent:
			return r.finish(false)
		case inspectDiscard:
			if err := r.discardLine(); err != nil {
				return "", false, err
			}
		case inspectContinuation:
			r.stats.recordContinuation()
			r.buf, err = r.readPhysicalLine(r.buf)
			if err != nil {
				if err == io.EOF {
					return "", false, &UnexpectedEOFError{Partial: string(r.buf)}
				}
				return "", false, err
			}
		}
	}
}

// inspectNextLine classifies the upcoming physical line. Nothing is consumed
// except the fold marker of a continuation. Less than two bytes of remaining
// content counts as end of stream.
func (r *Reader) inspectNextLine() (lineInspection, error) {
	p, err := r.br.Peek(2)
	if len(p) < 2 {
		if err != nil && err != io.EOF {
			return 0, err
		}
		return inspectNoMoreContent, nil
	}
	if p[0] != FoldSpace && p[0] != FoldTab {
		return inspectNewProperty, nil
	}
	switch p[1] {
	case FoldSpace, FoldTab, '\r', '\n':
		return inspectDiscard, nil
	}
	if _, err := r.br.Discard(1); err != nil {
		return 0, err
	}
	return inspectContinuation, nil
}

// readPhysicalLine appends bytes to buf until a line terminator. The
// terminator is not included. A CR not followed by LF is dropped. The length
// limit is checked against the accumulated buffer, which spans the whole
// logical line when buf carries earlier continuations.
func (r *Reader) readPhysicalLine(buf []byte) ([]byte, error) {
	r.stats.recordPhysicalLine()
	for {
		if len(buf) > r.max {
			return buf, &MaxLengthError{Max: r.max}
		}
		b, err := r.br.ReadByte()
		if err != nil {
			return buf, err
		}
		if b != '\r' {
			if b == '\n' {
				return buf, nil
			}
			buf = append(buf, b)
			continue
		}
		b, err = r.br.ReadByte()
		if err != nil {
			return buf, err
		}
		if b == '\n' {
			return buf, nil
		}
		buf = append(buf, b)
	}
}

// discardLine drains one padding line, fold marker included. The discard
// buffer is reset on every call so dropped lines do not accumulate.
func (r *Reader) discardLine() error {
	r.stats.recordDiscard()
	var err error
	r.discard, err = r.readPhysicalLine(r.discard[:0])
	if err != nil {
		if err == io.EOF {
			return &UnexpectedEOFError{Partial: string(r.buf)}
		}
		return err
	}
	return nil
}

// finish validates and hands out the assembled logical line.
func (r *Reader) finish(more bool) (string, bool, error) {
	if !utf8.Valid(r.buf) {
		line := make([]byte, len(r.buf))
		copy(line, r.buf)
		return "", false, &EncodingError{Line: line}
	}
	r.stats.recordLogicalLine(len(r.buf))
	return string(r.buf), more, nil
}
