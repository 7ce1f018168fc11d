package contentline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

// Test logical line assembly

func TestReadLogicalLine_Unfolding(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		more  bool
	}{
		{
			name:  "single line",
			input: "FN:John\r\nEND:VCARD\r\n",
			want:  "FN:John",
			more:  true,
		},
		{
			name:  "space fold",
			input: "NOTE:hello wo\r\n rld\r\nEND:VCARD\r\n",
			want:  "NOTE:hello world",
			more:  true,
		},
		{
			name:  "tab fold",
			input: "NOTE:hello wo\r\n\trld\r\nEND:VCARD\r\n",
			want:  "NOTE:hello world",
			more:  true,
		},
		{
			name:  "fold inside utf8 sequence",
			input: "NOTE:a\xc3\r\n \xa9b\r\nEND:VCARD\r\n",
			want:  "NOTE:aéb",
			more:  true,
		},
		{
			name:  "multiple folds",
			input: "N:a\r\n b\r\n c\r\nEND:VCARD\r\n",
			want:  "N:abc",
			more:  true,
		},
		{
			name:  "bare lf terminator",
			input: "FN:John\nEND:VCARD\n",
			want:  "FN:John",
			more:  true,
		},
		{
			name:  "cr without lf dropped",
			input: "FN:Jo\rhn\r\nEND:VCARD\r\n",
			want:  "FN:John",
			more:  true,
		},
		{
			name:  "last line",
			input: "END:VCARD\r\n",
			want:  "END:VCARD",
			more:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(strings.NewReader(tt.input))
			got, more, err := r.ReadLogicalLine()
			if err != nil {
				t.Fatalf("ReadLogicalLine failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadLogicalLine() = %q, want %q", got, tt.want)
			}
			if more != tt.more {
				t.Errorf("more = %v, want %v", more, tt.more)
			}
		})
	}
}

func TestReadLogicalLine_DiscardedLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "space space",
			input: "FN:a\r\n  padding\r\nEND:VCARD\r\n",
			want:  []string{"FN:a", "END:VCARD"},
		},
		{
			name:  "space tab",
			input: "FN:a\r\n \tpadding\r\nEND:VCARD\r\n",
			want:  []string{"FN:a", "END:VCARD"},
		},
		{
			name:  "tab tab",
			input: "FN:a\r\n\t\tpadding\r\nEND:VCARD\r\n",
			want:  []string{"FN:a", "END:VCARD"},
		},
		{
			name:  "fold marker then cr",
			input: "FN:a\r\n \r\nEND:VCARD\r\n",
			want:  []string{"FN:a", "END:VCARD"},
		},
		{
			name:  "fold marker then lf",
			input: "FN:a\n \nEND:VCARD\n",
			want:  []string{"FN:a", "END:VCARD"},
		},
		{
			name:  "consecutive discards",
			input: "FN:a\r\n  one\r\n  two\r\nEND:VCARD\r\n",
			want:  []string{"FN:a", "END:VCARD"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(strings.NewReader(tt.input))
			var got []string
			for {
				line, _, err := r.ReadLogicalLine()
				if err == io.EOF {
					break
				}
				if err != nil {
					t.Fatalf("ReadLogicalLine failed: %v", err)
				}
				got = append(got, line)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("lines = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestReadLogicalLine_MoreFlag(t *testing.T) {
	// A single stray byte after a line terminator does not count as more
	// content, since no logical line can start with less than two bytes.
	r := NewReader(strings.NewReader("FN:a\r\nZ"))
	line, more, err := r.ReadLogicalLine()
	if err != nil {
		t.Fatalf("ReadLogicalLine failed: %v", err)
	}
	if line != "FN:a" {
		t.Errorf("ReadLogicalLine() = %q, want %q", line, "FN:a")
	}
	if more {
		t.Errorf("more = true, want false")
	}
}

func TestReadLogicalLine_EOF(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        string
		wantPartial string
		wantEOF     bool
		wantErr     bool
	}{
		{
			name:    "empty input",
			input:   "",
			wantEOF: true,
		},
		{
			name:  "end line without terminator",
			input: "END:VCARD",
			want:  "END:VCARD",
		},
		{
			name:  "end line with lone cr",
			input: "END:VCARD\r",
			want:  "END:VCARD",
		},
		{
			name:        "truncated property",
			input:       "FN:tr",
			wantErr:     true,
			wantPartial: "FN:tr",
		},
		{
			name:        "truncated begin line",
			input:       "BEGIN:VCARD",
			wantErr:     true,
			wantPartial: "BEGIN:VCARD",
		},
		{
			name:        "truncated continuation",
			input:       "FN:a\r\n mo",
			wantErr:     true,
			wantPartial: "FN:amo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(strings.NewReader(tt.input))
			got, more, err := r.ReadLogicalLine()

			if tt.wantEOF {
				if err != io.EOF {
					t.Fatalf("err = %v, want io.EOF", err)
				}
				return
			}
			if tt.wantErr {
				var eofErr *UnexpectedEOFError
				if !errors.As(err, &eofErr) {
					t.Fatalf("err = %v, want UnexpectedEOFError", err)
				}
				if eofErr.Partial != tt.wantPartial {
					t.Errorf("Partial = %q, want %q", eofErr.Partial, tt.wantPartial)
				}
				if !errors.Is(err, io.ErrUnexpectedEOF) {
					t.Errorf("err does not unwrap to io.ErrUnexpectedEOF")
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadLogicalLine failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadLogicalLine() = %q, want %q", got, tt.want)
			}
			if more {
				t.Errorf("more = true, want false")
			}
		})
	}
}

func TestReadLogicalLine_MaxLength(t *testing.T) {
	t.Run("oversized line", func(t *testing.T) {
		r := NewReaderLimit(strings.NewReader("AB:0123456789X\r\nEND:VCARD\r\n"), 10)
		_, _, err := r.ReadLogicalLine()
		var maxErr *MaxLengthError
		if !errors.As(err, &maxErr) {
			t.Fatalf("err = %v, want MaxLengthError", err)
		}
		if maxErr.Max != 10 {
			t.Errorf("Max = %d, want 10", maxErr.Max)
		}
		if IsRecoverable(err) {
			t.Errorf("IsRecoverable = true, want false")
		}
	})

	t.Run("limit spans folded lines", func(t *testing.T) {
		// Each physical line is below the limit, the assembled logical
		// line is not.
		r := NewReaderLimit(strings.NewReader("AB:123456\r\n 7890abc\r\nEND:VCARD\r\n"), 12)
		_, _, err := r.ReadLogicalLine()
		var maxErr *MaxLengthError
		if !errors.As(err, &maxErr) {
			t.Fatalf("err = %v, want MaxLengthError", err)
		}
	})

	t.Run("line at exact limit", func(t *testing.T) {
		r := NewReaderLimit(strings.NewReader("FN:abcdef\r\nEND:VCARD\r\n"), 9)
		line, _, err := r.ReadLogicalLine()
		if err != nil {
			t.Fatalf("ReadLogicalLine failed: %v", err)
		}
		if line != "FN:abcdef" {
			t.Errorf("ReadLogicalLine() = %q, want %q", line, "FN:abcdef")
		}
	})

	t.Run("zero limit falls back to default", func(t *testing.T) {
		input := "FN:" + strings.Repeat("a", DefaultMaxLineLength+1) + "\r\n"
		r := NewReaderLimit(strings.NewReader(input), 0)
		_, _, err := r.ReadLogicalLine()
		var maxErr *MaxLengthError
		if !errors.As(err, &maxErr) {
			t.Fatalf("err = %v, want MaxLengthError", err)
		}
		if maxErr.Max != DefaultMaxLineLength {
			t.Errorf("Max = %d, want %d", maxErr.Max, DefaultMaxLineLength)
		}
	})
}

func TestReadLogicalLine_Encoding(t *testing.T) {
	r := NewReader(strings.NewReader("FN:a\xffb\r\nEND:VCARD\r\n"))

	_, _, err := r.ReadLogicalLine()
	var encErr *EncodingError
	if !errors.As(err, &encErr) {
		t.Fatalf("err = %v, want EncodingError", err)
	}
	if !bytes.Equal(encErr.Line, []byte("FN:a\xffb")) {
		t.Errorf("Line = %q, want %q", encErr.Line, "FN:a\xffb")
	}
	if !IsRecoverable(err) {
		t.Errorf("IsRecoverable = false, want true")
	}

	// The invalid line was consumed in full, reading continues at the
	// next boundary.
	line, more, err := r.ReadLogicalLine()
	if err != nil {
		t.Fatalf("ReadLogicalLine after EncodingError failed: %v", err)
	}
	if line != "END:VCARD" || more {
		t.Errorf("ReadLogicalLine() = %q more=%v, want %q more=false", line, more, "END:VCARD")
	}
}

func TestReader_Stats(t *testing.T) {
	input := "FN:a\r\nNOTE:b\r\n c\r\n  pad\r\nEND:VCARD\r\n"
	r := NewReader(strings.NewReader(input))
	for {
		_, _, err := r.ReadLogicalLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadLogicalLine failed: %v", err)
		}
	}

	stats := r.Stats()
	if stats.LogicalLines != 3 {
		t.Errorf("LogicalLines = %d, want 3", stats.LogicalLines)
	}
	if stats.PhysicalLines != 5 {
		t.Errorf("PhysicalLines = %d, want 5", stats.PhysicalLines)
	}
	if stats.Continuations != 1 {
		t.Errorf("Continuations = %d, want 1", stats.Continuations)
	}
	if stats.Discarded != 1 {
		t.Errorf("Discarded = %d, want 1", stats.Discarded)
	}
	wantBytes := uint64(len("FN:a") + len("NOTE:bc") + len("END:VCARD"))
	if stats.LogicalBytes != wantBytes {
		t.Errorf("LogicalBytes = %d, want %d", stats.LogicalBytes, wantBytes)
	}
}

func TestIsRecoverable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"io.EOF", io.EOF, false},
		{"plain error", errors.New("boom"), false},
		{"invalid line", &InvalidLineError{Reason: "x", Line: "y"}, true},
		{"encoding", &EncodingError{}, true},
		{"max length", &MaxLengthError{Max: 10}, false},
		{"unexpected eof", &UnexpectedEOFError{}, false},
		{"wrapped invalid line", fmt.Errorf("read: %w", &InvalidLineError{}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRecoverable(tt.err); got != tt.want {
				t.Errorf("IsRecoverable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

// errReader returns a non-EOF error after its content is exhausted.
type errReader struct {
	content string
	err     error
	off     int
}

func (r *errReader) Read(p []byte) (int, error) {
	if r.off >= len(r.content) {
		return 0, r.err
	}
	n := copy(p, r.content[r.off:])
	r.off += n
	return n, nil
}

func TestReadLogicalLine_IOErrorPassthrough(t *testing.T) {
	ioErr := errors.New("connection reset")
	r := NewReader(&errReader{content: "FN:tr", err: ioErr})
	_, _, err := r.ReadLogicalLine()
	if !errors.Is(err, ioErr) {
		t.Fatalf("err = %v, want %v", err, ioErr)
	}
	if IsRecoverable(err) {
		t.Errorf("IsRecoverable = true, want false")
	}
}
