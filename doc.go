// Package vcard decodes and encodes the vCard personal data interchange
// format, versions 3.0 and 4.0.
//
// The package is a codec, not a contact manager: it turns a wire stream
// into a typed aggregate and back, and leaves storage, merging and
// transport to the caller.
//
// # Decoding
//
// Decode reads exactly one card from a stream:
//
//	card, err := vcard.NewDecoder(f).Decode()
//	if err != nil {
//	    return err
//	}
//	if fn, ok := card.FN.GetPreferred(); ok {
//	    fmt.Println(fn.Value)
//	}
//
// Properties land in three places on the Card: singletons (Kind, Gender,
// ProdID, Rev, UID, ClientPIDMap) as plain pointers, single-logical-value
// properties (N, BDay, Anniversary) in an AltIDContainer, and repeatable
// properties in a MultiAltIDContainer that groups alternative renderings
// by their ALTID parameter. GetPreferred resolves the PREF parameter,
// lower rank preferred, absent rank counting as 100.
//
// # Encoding
//
// Encoder writes a card back in wire form:
//
//	err := vcard.NewEncoder(w).Encode(card)
//
// Card.String returns the same bytes as a string. Serialization is
// deterministic for a given card: a fixed property order, a fixed
// parameter order per property, CRLF line terminators.
//
// # Errors
//
// Errors are typed and carry their context; match them with errors.As.
// Structural defects of the envelope surface as ErrInvalidBegin,
// ErrInvalidVersion, ErrInvalidEnd or a CardinalityError. Line-level
// defects come from the contentline and property packages.
// IsSyntaxError separates the two: it reports true exactly when the
// defect was confined to one line and the stream is positioned at the
// next line boundary.
//
// # Subpackages
//
// Package contentline assembles folded logical lines and tokenizes them.
// Package property decodes and encodes single properties and their
// parameters. Most callers need only this package; the subpackages serve
// tools that work line by line.
package vcard
