package contentline

import (
	"errors"
	"fmt"
	"io"
)

// InvalidLineError indicates a logical line that does not match the content
// line grammar.
//
// Common causes:
//   - no unescaped ":" separating the line head from the value
//   - an empty property name
//   - a parameter segment without an "=" sign
//
// Stream state: the line was consumed in full. The reader is positioned at
// the next logical line boundary.
type InvalidLineError struct {
	Reason string
	Line   string
}

func (e *InvalidLineError) Error() string {
	return fmt.Sprintf("invalid content line: %s: %q", e.Reason, e.Line)
}

// Recoverable reports that the reader is positioned at a line boundary.
func (e *InvalidLineError) Recoverable() bool { return true }

// MaxLengthError indicates a logical line that grew past the configured
// limit before its terminator was found.
//
// Stream state: the line was consumed only partially. Further reads would
// observe the tail of the oversized line, so the stream should be abandoned.
type MaxLengthError struct {
	Max int
}

func (e *MaxLengthError) Error() string {
	return fmt.Sprintf("logical line exceeds the maximum length of %d bytes", e.Max)
}

// Recoverable reports that the reader is stuck inside the oversized line.
func (e *MaxLengthError) Recoverable() bool { return false }

// EncodingError indicates an assembled logical line that is not valid UTF-8.
//
// Stream state: the line was consumed in full. The reader is positioned at
// the next logical line boundary.
type EncodingError struct {
	Line []byte
}

func (e *EncodingError) Error() string {
	return "logical line is not valid UTF-8"
}

// Recoverable reports that the reader is positioned at a line boundary.
func (e *EncodingError) Recoverable() bool { return true }

// UnexpectedEOFError indicates a stream that ended in the middle of a
// logical line. The closing "END:VCARD" line is allowed to omit its line
// terminator and does not produce this error.
type UnexpectedEOFError struct {
	// Partial holds the bytes assembled before the stream ended.
	Partial string
}

func (e *UnexpectedEOFError) Error() string {
	return fmt.Sprintf("stream ended inside a logical line (%d bytes buffered)", len(e.Partial))
}

func (e *UnexpectedEOFError) Unwrap() error { return io.ErrUnexpectedEOF }

// Recoverable reports that no further logical lines can be read.
func (e *UnexpectedEOFError) Recoverable() bool { return false }

// ErrorWithStreamState is implemented by errors that report whether the
// reader is still positioned at a logical line boundary after the failure.
type ErrorWithStreamState interface {
	error
	Recoverable() bool
}

// IsRecoverable reports whether reading can continue after err. It returns
// false for plain I/O errors and for any error that does not describe its
// stream state, since the position within the stream is then unknown.
func IsRecoverable(err error) bool {
	if err == nil {
		return false
	}
	var state ErrorWithStreamState
	if errors.As(err, &state) {
		return state.Recoverable()
	}
	return false
}
