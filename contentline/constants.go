package contentline

// Structural bytes of the content line grammar.
//
// A logical line has the shape:
//
//	[group "."] name *(";" param "=" value) ":" value
//
// The head of the line (everything before the first unescaped ":") carries
// the group, the name and the parameters. Everything after it is the raw
// value, kept verbatim until the property decoder resolves its escapes.
const (
	// Escape introduces an escape sequence. The byte that follows a
	// backslash is always literal, including another backslash.
	Escape = '\\'

	// GroupDelimiter separates an optional group prefix from the property
	// name, as in "item1.ADR".
	GroupDelimiter = '.'

	// ParamDelimiter separates the name and the parameter segments of the
	// line head from each other.
	ParamDelimiter = ';'

	// ValueDelimiter terminates the line head. The first unescaped
	// occurrence splits the head from the raw value.
	ValueDelimiter = ':'

	// ListDelimiter separates the items of a list-valued property and the
	// items of a multi-valued parameter.
	ListDelimiter = ','
)

// Folding bytes. A physical line whose first byte is one of these continues
// the logical line assembled from the physical lines before it.
const (
	FoldSpace = ' '
	FoldTab   = '\t'
)

// CRLF terminates every physical line on output. On input a bare LF is
// accepted as a terminator and a CR not followed by LF is dropped.
const CRLF = "\r\n"

// DefaultMaxLineLength bounds the size of an assembled logical line. The
// limit applies to the logical line after unfolding, not to the individual
// physical lines.
const DefaultMaxLineLength = 5000
