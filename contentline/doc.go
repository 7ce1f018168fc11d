// Package contentline reads and tokenizes the line-oriented layer of the
// vCard wire format.
//
// The package splits the work in two steps. A Reader assembles logical
// lines: physical lines are unfolded, line terminators are stripped and
// padding lines are dropped. Parse then tokenizes one logical line into its
// group, name, parameter segments and raw value.
//
// # Reading Logical Lines
//
//	r := contentline.NewReader(file)
//	for {
//		line, more, err := r.ReadLogicalLine()
//		if err == io.EOF {
//			break
//		}
//		if err != nil {
//			// see Error Handling
//		}
//		// line is ready for contentline.Parse
//		_ = more
//	}
//
// # Escape Handling
//
// A backslash makes the byte after it literal. Tokenization never resolves
// escape sequences; it only refuses to split on escaped delimiters.
// SplitUnescaped splits the same way and keeps the escapes, so structured
// values can be split in stages. The terminal split of a value is
// SplitEscaped, which drops the backslashes, so a piece it returns must not
// be split again.
//
// # Error Handling
//
// Errors that leave the reader at a logical line boundary implement
// ErrorWithStreamState and report Recoverable() == true. IsRecoverable
// classifies any error, treating unknown errors as fatal. Plain I/O errors
// from the underlying reader are passed through unchanged.
package contentline
