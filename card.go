package vcard

import (
	"github.com/pior/vcard/property"
)

// Card is one decoded vcard.
//
// The field order matches the serialization order. Properties split in
// three groups: singletons held as plain pointers, properties with one
// logical value and alternative renderings held in an AltIDContainer, and
// independently repeatable properties held in a MultiAltIDContainer keyed
// by alternative id.
//
// The zero value is usable; NewCard additionally sets the default version.
// Cards built by Decode satisfy the cardinality rules; a card built by
// hand is only checked when populated through Add.
type Card struct {
	Version property.Version

	Source       property.MultiAltIDContainer[*property.Source]
	Kind         *property.Kind
	XML          property.MultiAltIDContainer[*property.XML]
	FN           property.MultiAltIDContainer[*property.FN]
	N            property.AltIDContainer[*property.N]
	Nickname     property.MultiAltIDContainer[*property.Nickname]
	Photo        property.MultiAltIDContainer[*property.Photo]
	BDay         property.AltIDContainer[*property.BDay]
	Anniversary  property.AltIDContainer[*property.Anniversary]
	Gender       *property.Gender
	Adr          property.MultiAltIDContainer[*property.Adr]
	Tel          property.MultiAltIDContainer[*property.Tel]
	Email        property.MultiAltIDContainer[*property.Email]
	IMPP         property.MultiAltIDContainer[*property.IMPP]
	Lang         property.MultiAltIDContainer[*property.Lang]
	TimeZone     property.MultiAltIDContainer[*property.TimeZone]
	Geo          property.MultiAltIDContainer[*property.Geo]
	Title        property.MultiAltIDContainer[*property.Title]
	Role         property.MultiAltIDContainer[*property.Role]
	Logo         property.MultiAltIDContainer[*property.Logo]
	Org          property.MultiAltIDContainer[*property.Org]
	Member       property.MultiAltIDContainer[*property.Member]
	Related      property.MultiAltIDContainer[*property.Related]
	Categories   property.MultiAltIDContainer[*property.Categories]
	Note         property.MultiAltIDContainer[*property.Note]
	ProdID       *property.ProdID
	Rev          *property.Rev
	UID          *property.UID
	ClientPIDMap *property.ClientPIDMap
	Sound        property.MultiAltIDContainer[*property.Sound]
	URL          property.MultiAltIDContainer[*property.URL]
	Key          property.MultiAltIDContainer[*property.Key]
	FBURL        property.MultiAltIDContainer[*property.FBURL]
	CalURI       property.MultiAltIDContainer[*property.CalURI]
	CalAdURI     property.MultiAltIDContainer[*property.CalAdURI]

	// Proprietary holds the X- prefixed properties in input order, with no
	// cardinality constraint.
	Proprietary []*property.Proprietary
}

// NewCard returns an empty card with the default version 4.0.
func NewCard() *Card {
	return &Card{Version: property.Version{Value: property.Version4}}
}

// Add folds one decoded property into the card.
//
// Singletons are set-once: a second KIND, GENDER, PRODID, REV, UID or
// CLIENTPIDMAP is a CardinalityError, as are BEGIN and VERSION, which a
// card already carries. END never joins a card and reports ErrInvalidEnd.
// Container errors (alternative id mismatch) surface unchanged. Property
// implementations from outside the property package are rejected with an
// InvalidNameError.
func (c *Card) Add(p property.Property) error {
	switch p := p.(type) {
	case *property.Begin:
		return &CardinalityError{Expected: 1, Property: "BEGIN"}
	case *property.Version:
		return &CardinalityError{Expected: 1, Property: "VERSION"}
	case *property.End:
		return ErrInvalidEnd
	case *property.Source:
		c.Source.Add(p)
	case *property.Kind:
		if c.Kind != nil {
			return &CardinalityError{Expected: 1, Property: "KIND"}
		}
		c.Kind = p
	case *property.XML:
		c.XML.Add(p)
	case *property.FN:
		c.FN.Add(p)
	case *property.N:
		return c.N.Add(p)
	case *property.Nickname:
		c.Nickname.Add(p)
	case *property.Photo:
		c.Photo.Add(p)
	case *property.BDay:
		return c.BDay.Add(p)
	case *property.Anniversary:
		return c.Anniversary.Add(p)
	case *property.Gender:
		if c.Gender != nil {
			return &CardinalityError{Expected: 1, Property: "GENDER"}
		}
		c.Gender = p
	case *property.Adr:
		c.Adr.Add(p)
	case *property.Tel:
		c.Tel.Add(p)
	case *property.Email:
		c.Email.Add(p)
	case *property.IMPP:
		c.IMPP.Add(p)
	case *property.Lang:
		c.Lang.Add(p)
	case *property.TimeZone:
		c.TimeZone.Add(p)
	case *property.Geo:
		c.Geo.Add(p)
	case *property.Title:
		c.Title.Add(p)
	case *property.Role:
		c.Role.Add(p)
	case *property.Logo:
		c.Logo.Add(p)
	case *property.Org:
		c.Org.Add(p)
	case *property.Member:
		c.Member.Add(p)
	case *property.Related:
		c.Related.Add(p)
	case *property.Categories:
		c.Categories.Add(p)
	case *property.Note:
		c.Note.Add(p)
	case *property.ProdID:
		if c.ProdID != nil {
			return &CardinalityError{Expected: 1, Property: "PRODID"}
		}
		c.ProdID = p
	case *property.Rev:
		if c.Rev != nil {
			return &CardinalityError{Expected: 1, Property: "REV"}
		}
		c.Rev = p
	case *property.UID:
		if c.UID != nil {
			return &CardinalityError{Expected: 1, Property: "UID"}
		}
		c.UID = p
	case *property.ClientPIDMap:
		if c.ClientPIDMap != nil {
			return &CardinalityError{Expected: 1, Property: "CLIENTPIDMAP"}
		}
		c.ClientPIDMap = p
	case *property.Sound:
		c.Sound.Add(p)
	case *property.URL:
		c.URL.Add(p)
	case *property.Key:
		c.Key.Add(p)
	case *property.FBURL:
		c.FBURL.Add(p)
	case *property.CalURI:
		c.CalURI.Add(p)
	case *property.CalAdURI:
		c.CalAdURI.Add(p)
	case *property.Proprietary:
		c.Proprietary = append(c.Proprietary, p)
	default:
		return &property.InvalidNameError{Name: p.PropertyName()}
	}
	return nil
}

// String renders the card in wire form, BEGIN through END, every line CRLF
// terminated.
func (c *Card) String() string {
	buf := getBuffer()
	defer putBuffer(buf)

	*buf = appendCard(*buf, c)
	return string(*buf)
}
