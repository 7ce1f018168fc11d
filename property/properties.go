package property

// Property is a decoded content line. Implementations are the registered
// property types of this package plus Proprietary for X- extensions.
type Property interface {
	// PropertyName returns the registered name in its canonical upper
	// case spelling, or the name as given for proprietary properties.
	PropertyName() string
}

// Begin opens a card. Outside of stream assembly it has no meaning.
type Begin struct {
	Value string
}

func (*Begin) PropertyName() string { return "BEGIN" }

// End closes a card.
type End struct {
	Value string
}

func (*End) PropertyName() string { return "END" }

// Version states the vCard format revision the card was written against.
type Version struct {
	Value VersionValue
}

func (*Version) PropertyName() string { return "VERSION" }

// Source points at the directory location this card can be refetched from.
type Source struct {
	Group     string
	AltID     string
	PID       *PID
	MediaType string
	Value     URI
}

func (*Source) PropertyName() string { return "SOURCE" }
func (p *Source) AlternativeID() string { return p.AltID }
func (p *Source) Preference() uint8 { return DefaultPreference }

// Kind states what the card describes. Tokens outside the registered set
// are preserved as given.
type Kind struct {
	Group string
	Value KindValue
}

func (*Kind) PropertyName() string { return "KIND" }

// XML carries a fragment of extended vCard data in XML form.
type XML struct {
	Group string
	AltID string
	Value string
}

func (*XML) PropertyName() string { return "XML" }
func (p *XML) AlternativeID() string { return p.AltID }
func (p *XML) Preference() uint8 { return DefaultPreference }

// FN is the formatted name, the one property every card must be able to
// present.
type FN struct {
	Group     string
	AltID     string
	Language  string
	ValueType ValueType
	Type      []string
	Pref      *uint8
	Value     string
}

func (*FN) PropertyName() string { return "FN" }
func (p *FN) AlternativeID() string { return p.AltID }
func (p *FN) Preference() uint8 { return prefOrDefault(p.Pref) }

// N is the structured name. Its five positions are surnames, given names,
// additional names, honorific prefixes and honorific suffixes; each
// position holds zero or more items.
type N struct {
	Group    string
	AltID    string
	Language string
	SortAs   []string

	Surnames          []string
	GivenNames        []string
	AdditionalNames   []string
	HonorificPrefixes []string
	HonorificSuffixes []string
}

func (*N) PropertyName() string { return "N" }
func (p *N) AlternativeID() string { return p.AltID }
func (p *N) Preference() uint8 { return DefaultPreference }

// Nickname lists informal names.
type Nickname struct {
	Group     string
	AltID     string
	Language  string
	ValueType ValueType
	Type      []string
	Pref      *uint8
	PID       *PID
	Value     []string
}

func (*Nickname) PropertyName() string { return "NICKNAME" }
func (p *Nickname) AlternativeID() string { return p.AltID }
func (p *Nickname) Preference() uint8 { return prefOrDefault(p.Pref) }

// Photo references an image of the subject.
type Photo struct {
	Group     string
	AltID     string
	ValueType ValueType
	Type      []string
	MediaType string
	Pref      *uint8
	PID       *PID
	Value     URI
}

func (*Photo) PropertyName() string { return "PHOTO" }
func (p *Photo) AlternativeID() string { return p.AltID }
func (p *Photo) Preference() uint8 { return prefOrDefault(p.Pref) }

// BDay is the birth date. Calendar values are kept as text, qualified by
// CALSCALE and VALUE when present.
type BDay struct {
	AltID     string
	CalScale  string
	Language  string
	ValueType ValueType
	Value     string
}

func (*BDay) PropertyName() string { return "BDAY" }
func (p *BDay) AlternativeID() string { return p.AltID }
func (p *BDay) Preference() uint8 { return DefaultPreference }

// Anniversary is the date of marriage or an equivalent event.
type Anniversary struct {
	AltID     string
	CalScale  string
	ValueType ValueType
	Value     string
}

func (*Anniversary) PropertyName() string { return "ANNIVERSARY" }
func (p *Anniversary) AlternativeID() string { return p.AltID }
func (p *Anniversary) Preference() uint8 { return DefaultPreference }

// Gender carries the sex component and a free text gender identity. The
// identity pointer distinguishes an absent component from an empty one:
// "GENDER:m;" holds an empty identity, a hand built Gender may hold none.
type Gender struct {
	Sex      Sex
	Identity *string
}

func (*Gender) PropertyName() string { return "GENDER" }

// Adr is a structured delivery address. Its seven positions are post
// office box, extended address, street, city, region, postal code and
// country. The LABEL parameter is kept for presentation but is not part of
// the structured value.
type Adr struct {
	Group     string
	AltID     string
	Language  string
	ValueType ValueType
	Type      []string
	Pref      *uint8
	PID       *PID
	Geo       string
	TimeZone  string
	Label     string

	POBox           []string
	ExtendedAddress []string
	Street          []string
	City            []string
	Region          []string
	PostalCode      []string
	Country         []string
}

func (*Adr) PropertyName() string { return "ADR" }
func (p *Adr) AlternativeID() string { return p.AltID }
func (p *Adr) Preference() uint8 { return prefOrDefault(p.Pref) }

// Tel is a telephone contact.
type Tel struct {
	AltID     string
	ValueType ValueType
	Type      []string
	Pref      *uint8
	PID       *PID
	Value     string
}

func (*Tel) PropertyName() string { return "TEL" }
func (p *Tel) AlternativeID() string { return p.AltID }
func (p *Tel) Preference() uint8 { return prefOrDefault(p.Pref) }

// Email is an electronic mail address.
type Email struct {
	Group     string
	AltID     string
	ValueType ValueType
	Type      []string
	Pref      *uint8
	PID       *PID
	Value     string
}

func (*Email) PropertyName() string { return "EMAIL" }
func (p *Email) AlternativeID() string { return p.AltID }
func (p *Email) Preference() uint8 { return prefOrDefault(p.Pref) }

// IMPP is an instant messaging address.
type IMPP struct {
	Group     string
	AltID     string
	ValueType ValueType
	Type      []string
	Pref      *uint8
	PID       *PID
	MediaType string
	Value     URI
}

func (*IMPP) PropertyName() string { return "IMPP" }
func (p *IMPP) AlternativeID() string { return p.AltID }
func (p *IMPP) Preference() uint8 { return prefOrDefault(p.Pref) }

// Lang states a language the subject can be contacted in. The value is the
// raw language tag; see Tag to interpret it.
type Lang struct {
	Group     string
	AltID     string
	ValueType ValueType
	Type      []string
	Pref      *uint8
	PID       *PID
	Value     string
}

func (*Lang) PropertyName() string { return "LANG" }
func (p *Lang) AlternativeID() string { return p.AltID }
func (p *Lang) Preference() uint8 { return prefOrDefault(p.Pref) }

// TimeZone states the subject's time zone.
type TimeZone struct {
	Group     string
	AltID     string
	ValueType ValueType
	Type      []string
	Pref      *uint8
	PID       *PID
	MediaType string
	Value     string
}

func (*TimeZone) PropertyName() string { return "TZ" }
func (p *TimeZone) AlternativeID() string { return p.AltID }
func (p *TimeZone) Preference() uint8 { return prefOrDefault(p.Pref) }

// Geo states the subject's geographical position.
type Geo struct {
	Group     string
	AltID     string
	ValueType ValueType
	Type      []string
	Pref      *uint8
	PID       *PID
	MediaType string
	Value     URI
}

func (*Geo) PropertyName() string { return "GEO" }
func (p *Geo) AlternativeID() string { return p.AltID }
func (p *Geo) Preference() uint8 { return prefOrDefault(p.Pref) }

// Title is the subject's position or job title.
type Title struct {
	Group     string
	AltID     string
	Language  string
	ValueType ValueType
	Type      []string
	Pref      *uint8
	PID       *PID
	Value     string
}

func (*Title) PropertyName() string { return "TITLE" }
func (p *Title) AlternativeID() string { return p.AltID }
func (p *Title) Preference() uint8 { return prefOrDefault(p.Pref) }

// Role is the subject's function within an organization.
type Role struct {
	Group     string
	AltID     string
	Language  string
	ValueType ValueType
	Type      []string
	Pref      *uint8
	PID       *PID
	Value     string
}

func (*Role) PropertyName() string { return "ROLE" }
func (p *Role) AlternativeID() string { return p.AltID }
func (p *Role) Preference() uint8 { return prefOrDefault(p.Pref) }

// Logo references an image of the subject's organization.
type Logo struct {
	Group     string
	AltID     string
	Language  string
	ValueType ValueType
	Type      []string
	Pref      *uint8
	PID       *PID
	MediaType string
	Value     URI
}

func (*Logo) PropertyName() string { return "LOGO" }
func (p *Logo) AlternativeID() string { return p.AltID }
func (p *Logo) Preference() uint8 { return prefOrDefault(p.Pref) }

// Org is the organizational hierarchy, from the organization name down
// through its units.
type Org struct {
	Group     string
	AltID     string
	Language  string
	ValueType ValueType
	Type      []string
	Pref      *uint8
	PID       *PID
	SortAs    []string
	Value     []string
}

func (*Org) PropertyName() string { return "ORG" }
func (p *Org) AlternativeID() string { return p.AltID }
func (p *Org) Preference() uint8 { return prefOrDefault(p.Pref) }

// Member references a member of a group card.
type Member struct {
	Group     string
	AltID     string
	Pref      *uint8
	PID       *PID
	MediaType string
	Value     URI
}

func (*Member) PropertyName() string { return "MEMBER" }
func (p *Member) AlternativeID() string { return p.AltID }
func (p *Member) Preference() uint8 { return prefOrDefault(p.Pref) }

// Related references another entity the subject is related to.
type Related struct {
	Group     string
	AltID     string
	Language  string
	ValueType ValueType
	Type      []string
	Pref      *uint8
	PID       *PID
	MediaType string
	Value     string
}

func (*Related) PropertyName() string { return "RELATED" }
func (p *Related) AlternativeID() string { return p.AltID }
func (p *Related) Preference() uint8 { return prefOrDefault(p.Pref) }

// Categories lists tags filed against the card.
type Categories struct {
	Group     string
	AltID     string
	ValueType ValueType
	Type      []string
	Pref      *uint8
	PID       *PID
	Value     []string
}

func (*Categories) PropertyName() string { return "CATEGORIES" }
func (p *Categories) AlternativeID() string { return p.AltID }
func (p *Categories) Preference() uint8 { return prefOrDefault(p.Pref) }

// Note is free text commentary.
type Note struct {
	Group     string
	AltID     string
	Language  string
	ValueType ValueType
	Type      []string
	Pref      *uint8
	PID       *PID
	Value     string
}

func (*Note) PropertyName() string { return "NOTE" }
func (p *Note) AlternativeID() string { return p.AltID }
func (p *Note) Preference() uint8 { return prefOrDefault(p.Pref) }

// ProdID identifies the software that produced the card.
type ProdID struct {
	Group string
	Value string
}

func (*ProdID) PropertyName() string { return "PRODID" }

// Rev is the card's last revision timestamp, kept as text.
type Rev struct {
	Group string
	Value string
}

func (*Rev) PropertyName() string { return "REV" }

// Sound references an audio clip, typically the pronunciation of the name.
type Sound struct {
	Group     string
	AltID     string
	Language  string
	ValueType ValueType
	Type      []string
	Pref      *uint8
	PID       *PID
	MediaType string
	Value     URI
}

func (*Sound) PropertyName() string { return "SOUND" }
func (p *Sound) AlternativeID() string { return p.AltID }
func (p *Sound) Preference() uint8 { return prefOrDefault(p.Pref) }

// UID is the card's globally unique identifier, kept as text.
type UID struct {
	Group     string
	ValueType ValueType
	Value     string
}

func (*UID) PropertyName() string { return "UID" }

// ClientPIDMap binds a PID source number to the URI of the source that
// issued it.
type ClientPIDMap struct {
	Group    string
	SourceID uint8
	Value    URI
}

func (*ClientPIDMap) PropertyName() string { return "CLIENTPIDMAP" }

// URL references a web page associated with the subject.
type URL struct {
	Group     string
	AltID     string
	ValueType ValueType
	Type      []string
	Pref      *uint8
	PID       *PID
	MediaType string
	Value     URI
}

func (*URL) PropertyName() string { return "URL" }
func (p *URL) AlternativeID() string { return p.AltID }
func (p *URL) Preference() uint8 { return prefOrDefault(p.Pref) }

// Key references or embeds a public key or authentication certificate.
type Key struct {
	Group     string
	AltID     string
	ValueType ValueType
	Type      []string
	Pref      *uint8
	PID       *PID
	MediaType string
	Value     string
}

func (*Key) PropertyName() string { return "KEY" }
func (p *Key) AlternativeID() string { return p.AltID }
func (p *Key) Preference() uint8 { return prefOrDefault(p.Pref) }

// FBURL references the subject's free busy calendar data.
type FBURL struct {
	Group     string
	AltID     string
	ValueType ValueType
	Type      []string
	Pref      *uint8
	PID       *PID
	MediaType string
	Value     URI
}

func (*FBURL) PropertyName() string { return "FBURL" }
func (p *FBURL) AlternativeID() string { return p.AltID }
func (p *FBURL) Preference() uint8 { return prefOrDefault(p.Pref) }

// CalURI references the subject's calendar.
type CalURI struct {
	Group     string
	AltID     string
	ValueType ValueType
	Type      []string
	Pref      *uint8
	PID       *PID
	MediaType string
	Value     URI
}

func (*CalURI) PropertyName() string { return "CALURI" }
func (p *CalURI) AlternativeID() string { return p.AltID }
func (p *CalURI) Preference() uint8 { return prefOrDefault(p.Pref) }

// CalAdURI references the address calendar scheduling requests go to.
type CalAdURI struct {
	Group     string
	AltID     string
	ValueType ValueType
	Type      []string
	Pref      *uint8
	PID       *PID
	MediaType string
	Value     URI
}

func (*CalAdURI) PropertyName() string { return "CALADURI" }
func (p *CalAdURI) AlternativeID() string { return p.AltID }
func (p *CalAdURI) Preference() uint8 { return prefOrDefault(p.Pref) }

// Proprietary is an X- extension property. Its name, parameters and value
// are preserved as decoded so the line can be written back without loss.
type Proprietary struct {
	Group  string
	Name   string
	Value  string
	Params []Parameter
}

func (p *Proprietary) PropertyName() string { return p.Name }
