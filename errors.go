package vcard

import (
	"errors"
	"fmt"

	"github.com/pior/vcard/contentline"
	"github.com/pior/vcard/property"
)

// Structural errors of the card envelope. Decode returns them when the
// stream is readable line by line but the lines do not form a vcard.
var (
	// ErrInvalidBegin reports a stream whose first property is not
	// BEGIN:VCARD.
	ErrInvalidBegin = errors.New("first property of a vcard must be BEGIN:VCARD")

	// ErrInvalidVersion reports a card whose second property is not a
	// VERSION, or a stream that ends right after BEGIN:VCARD.
	ErrInvalidVersion = errors.New("second property of a vcard must be VERSION:3.0 or VERSION:4.0")

	// ErrInvalidEnd reports a card that does not close with END:VCARD as
	// the last line of the stream. Content after END:VCARD produces this
	// error too: a stream holds exactly one card.
	ErrInvalidEnd = errors.New("last property of a vcard must be END:VCARD")
)

// CardinalityError indicates a property that appeared more often than a
// vcard allows.
//
// Common causes:
//   - a second BEGIN or VERSION line inside a card
//   - a repeated singleton (KIND, GENDER, PRODID, REV, UID, CLIENTPIDMAP)
//
// Stream state: the repeated line was consumed in full.
type CardinalityError struct {
	Expected int
	Property string
}

func (e *CardinalityError) Error() string {
	return fmt.Sprintf("only %d amount of %s are valid in a vcard", e.Expected, e.Property)
}

// Recoverable reports that the reader is positioned at a line boundary.
func (e *CardinalityError) Recoverable() bool { return true }

// IsSyntaxError reports whether err describes a defect confined to one
// content line: its grammar, a parameter, or the value of a single
// property. Structural errors (BEGIN/VERSION/END placement, cardinality,
// alternative group membership), length limit and stream errors report
// false.
func IsSyntaxError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrInvalidBegin) || errors.Is(err, ErrInvalidVersion) || errors.Is(err, ErrInvalidEnd) {
		return false
	}
	var cardinality *CardinalityError
	if errors.As(err, &cardinality) {
		return false
	}
	var mismatch *property.AltIDMismatchError
	if errors.As(err, &mismatch) {
		return false
	}
	// What remains at a line boundary after failing is a line-level defect.
	return contentline.IsRecoverable(err)
}
