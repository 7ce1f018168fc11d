package contentline

// Line is a tokenized content line. The group and the name are resolved, the
// parameter segments and the value are kept raw with their escape sequences
// intact. Decoding the segments and the value is the property layer's job.
type Line struct {
	Group  string
	Name   string
	Params []string
	Value  string
}

// Parse tokenizes a logical line.
//
// The head of the line is everything before the first unescaped ":". It is
// split on unescaped ";" into the name token and the parameter segments. The
// name token is split on its last unescaped "." into group and name. Empty
// parameter segments are dropped.
//
// Escape sequences survive tokenization untouched, so an escaped delimiter
// never splits and the later unescaping step sees the original bytes.
func Parse(s string) (*Line, error) {
	sep := indexUnescaped(s, ValueDelimiter)
	if sep < 0 {
		return nil, &InvalidLineError{Reason: "no value separator", Line: s}
	}

	line := Line{Value: s[sep+1:]}

	first := true
	for _, seg := range SplitUnescaped(s[:sep], ParamDelimiter) {
		if first {
			first = false
			line.Group, line.Name = splitGroup(seg)
			continue
		}
		if seg == "" {
			continue
		}
		line.Params = append(line.Params, seg)
	}
	if line.Name == "" {
		return nil, &InvalidLineError{Reason: "missing property name", Line: s}
	}
	return &line, nil
}

// splitGroup splits a name token on its last unescaped dot. A token with no
// unescaped dot, or with one only at position zero, has no group.
func splitGroup(tok string) (group, name string) {
	j := -1
	esc := false
	for i := 0; i < len(tok); i++ {
		if esc {
			esc = false
			continue
		}
		switch tok[i] {
		case Escape:
			esc = true
		case GroupDelimiter:
			j = i
		}
	}
	if j <= 0 {
		return "", tok
	}
	return tok[:j], tok[j+1:]
}

// indexUnescaped returns the index of the first unescaped occurrence of sep
// in s, or -1.
func indexUnescaped(s string, sep byte) int {
	esc := false
	for i := 0; i < len(s); i++ {
		if esc {
			esc = false
			continue
		}
		switch s[i] {
		case Escape:
			esc = true
		case sep:
			return i
		}
	}
	return -1
}
