package property

import "github.com/fredbi/uri"

// URI is a validated URI reference kept in its original spelling. The zero
// value is the absent URI.
type URI struct {
	raw string
}

// ParseURI validates s and wraps it. The original text is preserved
// byte for byte, so serializing a parsed URI reproduces its input.
func ParseURI(s string) (URI, error) {
	if _, err := uri.Parse(s); err != nil {
		return URI{}, &InvalidURIError{Text: s, Err: err}
	}
	return URI{raw: s}, nil
}

// MustURI wraps s and panics when it does not validate. Intended for
// fixtures and tests.
func MustURI(s string) URI {
	u, err := ParseURI(s)
	if err != nil {
		panic(err)
	}
	return u
}

// String returns the URI text as it appeared on the wire.
func (u URI) String() string {
	return u.raw
}

// IsZero reports whether the URI is absent.
func (u URI) IsZero() bool {
	return u.raw == ""
}
