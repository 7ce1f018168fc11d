package vcard

import (
	"fmt"
	"io"
	"sync"

	"github.com/pior/vcard/property"
)

// Buffer pool for serializing cards
var bufferPool = sync.Pool{
	New: func() any {
		// Typical card is a few hundred bytes, allocate 1024
		b := make([]byte, 0, 1024)
		return &b
	},
}

func getBuffer() *[]byte {
	return bufferPool.Get().(*[]byte)
}

func putBuffer(buf *[]byte) {
	// TODO: drop if buffer is too large
	*buf = (*buf)[:0]
	bufferPool.Put(buf)
}

// Encoder writes cards to a stream in wire form.
type Encoder struct {
	w io.Writer
}

// NewEncoder creates an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes card as one vcard, BEGIN through END, every line CRLF
// terminated. The card is serialized in one buffer and written with a
// single Write call.
func (e *Encoder) Encode(card *Card) error {
	buf := getBuffer()
	defer putBuffer(buf)

	*buf = appendCard(*buf, card)
	if _, err := e.w.Write(*buf); err != nil {
		return fmt.Errorf("write vcard: %w", err)
	}
	return nil
}

// appendCard appends the wire form of the whole card. Properties emit in a
// fixed order; members of one container keep their insertion order, the
// groups of a MultiAltIDContainer follow first-insertion order of their
// alternative ids.
func appendCard(dst []byte, c *Card) []byte {
	dst = property.AppendProperty(dst, &property.Begin{Value: "VCARD"})
	dst = property.AppendProperty(dst, &c.Version)
	for _, p := range c.Source.All() {
		dst = property.AppendProperty(dst, p)
	}
	if c.Kind != nil {
		dst = property.AppendProperty(dst, c.Kind)
	}
	for _, p := range c.XML.All() {
		dst = property.AppendProperty(dst, p)
	}
	for _, p := range c.FN.All() {
		dst = property.AppendProperty(dst, p)
	}
	for _, p := range c.N.Values() {
		dst = property.AppendProperty(dst, p)
	}
	for _, p := range c.Nickname.All() {
		dst = property.AppendProperty(dst, p)
	}
	for _, p := range c.Photo.All() {
		dst = property.AppendProperty(dst, p)
	}
	for _, p := range c.BDay.Values() {
		dst = property.AppendProperty(dst, p)
	}
	for _, p := range c.Anniversary.Values() {
		dst = property.AppendProperty(dst, p)
	}
	if c.Gender != nil {
		dst = property.AppendProperty(dst, c.Gender)
	}
	for _, p := range c.Adr.All() {
		dst = property.AppendProperty(dst, p)
	}
	for _, p := range c.Tel.All() {
		dst = property.AppendProperty(dst, p)
	}
	for _, p := range c.Email.All() {
		dst = property.AppendProperty(dst, p)
	}
	for _, p := range c.IMPP.All() {
		dst = property.AppendProperty(dst, p)
	}
	for _, p := range c.Lang.All() {
		dst = property.AppendProperty(dst, p)
	}
	for _, p := range c.TimeZone.All() {
		dst = property.AppendProperty(dst, p)
	}
	for _, p := range c.Geo.All() {
		dst = property.AppendProperty(dst, p)
	}
	for _, p := range c.Title.All() {
		dst = property.AppendProperty(dst, p)
	}
	for _, p := range c.Role.All() {
		dst = property.AppendProperty(dst, p)
	}
	for _, p := range c.Logo.All() {
		dst = property.AppendProperty(dst, p)
	}
	for _, p := range c.Org.All() {
		dst = property.AppendProperty(dst, p)
	}
	for _, p := range c.Member.All() {
		dst = property.AppendProperty(dst, p)
	}
	for _, p := range c.Related.All() {
		dst = property.AppendProperty(dst, p)
	}
	for _, p := range c.Categories.All() {
		dst = property.AppendProperty(dst, p)
	}
	for _, p := range c.Note.All() {
		dst = property.AppendProperty(dst, p)
	}
	if c.ProdID != nil {
		dst = property.AppendProperty(dst, c.ProdID)
	}
	if c.Rev != nil {
		dst = property.AppendProperty(dst, c.Rev)
	}
	if c.UID != nil {
		dst = property.AppendProperty(dst, c.UID)
	}
	if c.ClientPIDMap != nil {
		dst = property.AppendProperty(dst, c.ClientPIDMap)
	}
	for _, p := range c.Sound.All() {
		dst = property.AppendProperty(dst, p)
	}
	for _, p := range c.URL.All() {
		dst = property.AppendProperty(dst, p)
	}
	for _, p := range c.Key.All() {
		dst = property.AppendProperty(dst, p)
	}
	for _, p := range c.FBURL.All() {
		dst = property.AppendProperty(dst, p)
	}
	for _, p := range c.CalURI.All() {
		dst = property.AppendProperty(dst, p)
	}
	for _, p := range c.CalAdURI.All() {
		dst = property.AppendProperty(dst, p)
	}
	for _, p := range c.Proprietary {
		dst = property.AppendProperty(dst, p)
	}
	dst = property.AppendProperty(dst, &property.End{Value: "VCARD"})
	return dst
}
