package property

import "fmt"

// InvalidNameError indicates a property name that is neither registered nor
// marked proprietary with an X- prefix.
//
// Common causes:
//   - a misspelled standard property name
//   - a vendor extension missing its X- prefix
//   - a stray line of text inside a card
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("unexpected property name %q", e.Name)
}

// Recoverable reports that the line was consumed in full.
func (e *InvalidNameError) Recoverable() bool { return true }

// UnknownParameterError indicates a parameter that the property does not
// accept. Registered properties take a fixed parameter set; anything else on
// them is rejected rather than dropped.
type UnknownParameterError struct {
	Parameter string
	Property  string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("unknown parameter %s for property %s", e.Parameter, e.Property)
}

// Recoverable reports that the line was consumed in full.
func (e *UnknownParameterError) Recoverable() bool { return true }

// InvalidPIDError indicates a PID parameter that does not have the form
// digit or digit.digit.
type InvalidPIDError struct {
	Provided string
}

func (e *InvalidPIDError) Error() string {
	return fmt.Sprintf("invalid PID parameter %q, expected the form digit[.digit] (e.g. 1 or 1.2)", e.Provided)
}

// Recoverable reports that the line was consumed in full.
func (e *InvalidPIDError) Recoverable() bool { return true }

// InvalidPrefError indicates a PREF parameter that is not a small integer.
type InvalidPrefError struct {
	Provided string
}

func (e *InvalidPrefError) Error() string {
	return fmt.Sprintf("invalid PREF parameter %q, expected an integer between 0 and 255", e.Provided)
}

// Recoverable reports that the line was consumed in full.
func (e *InvalidPrefError) Recoverable() bool { return true }

// UnknownTypeError indicates a VALUE parameter naming a data type that is
// neither registered nor marked proprietary with an X- prefix. The
// registered type names are matched exactly, in lower case.
type UnknownTypeError struct {
	Given string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown value type %q", e.Given)
}

// Recoverable reports that the line was consumed in full.
func (e *UnknownTypeError) Recoverable() bool { return true }

// InvalidVersionError indicates a VERSION property with an unsupported
// value.
type InvalidVersionError struct {
	Provided string
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid version %q, only version 3.0 and 4.0 are valid", e.Provided)
}

// Recoverable reports that the line was consumed in full.
func (e *InvalidVersionError) Recoverable() bool { return true }

// InvalidGenderError indicates a GENDER sex component outside the
// registered set.
type InvalidGenderError struct {
	Provided string
}

func (e *InvalidGenderError) Error() string {
	return fmt.Sprintf("invalid gender %q, expected one of (m,f,o,n,u)", e.Provided)
}

// Recoverable reports that the line was consumed in full.
func (e *InvalidGenderError) Recoverable() bool { return true }

// InvalidSyntaxError indicates a property value that does not match the
// shape its property requires.
//
// Common causes:
//   - a GENDER value without its semicolon
//   - a CLIENTPIDMAP value missing its source number or its URI
type InvalidSyntaxError struct {
	Property string
	Message  string
}

func (e *InvalidSyntaxError) Error() string {
	return fmt.Sprintf("invalid syntax for property %s: %s", e.Property, e.Message)
}

// Recoverable reports that the line was consumed in full.
func (e *InvalidSyntaxError) Recoverable() bool { return true }

// InvalidURIError indicates a URI valued property or parameter that failed
// validation.
type InvalidURIError struct {
	Text string
	Err  error
}

func (e *InvalidURIError) Error() string {
	return fmt.Sprintf("invalid URI %q: %v", e.Text, e.Err)
}

// Unwrap returns the underlying validation error.
func (e *InvalidURIError) Unwrap() error {
	return e.Err
}

// Recoverable reports that the line was consumed in full.
func (e *InvalidURIError) Recoverable() bool { return true }

// AltIDMismatchError indicates a property added to an alternative group
// carrying a different ALTID than the group's members.
type AltIDMismatchError struct {
	Expected string
	Actual   string
}

func (e *AltIDMismatchError) Error() string {
	return fmt.Sprintf("expected item to have altid %q, but got %q", e.Expected, e.Actual)
}

// Recoverable reports that the line was consumed in full.
func (e *AltIDMismatchError) Recoverable() bool { return true }
