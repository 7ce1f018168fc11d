package property

import (
	"strconv"
	"strings"

	"github.com/pior/vcard/contentline"
)

// Decode converts a tokenized content line into a typed property.
//
// Names are matched without regard to case. A name outside the registered
// set must carry an X- prefix and decodes to a Proprietary property that
// keeps every parameter. Registered properties reject parameters outside
// their accepted set, and properties defined without a group silently drop
// one.
func Decode(line *contentline.Line) (Property, error) {
	var ps paramSet
	for _, seg := range line.Params {
		p, err := DecodeParameter(seg)
		if err != nil {
			return nil, err
		}
		ps.apply(p)
	}

	name := strings.ToUpper(line.Name)
	decode, ok := decoders[name]
	if !ok {
		if !strings.HasPrefix(name, "X-") {
			return nil, &InvalidNameError{Name: line.Name}
		}
		return decodeProprietary(line, &ps), nil
	}
	if err := ps.check(name, acceptedParams[name]); err != nil {
		return nil, err
	}
	return decode(line, &ps)
}

// paramSet collects the decoded parameters of one line. Repeated parameters
// overwrite, except TYPE which accumulates and proprietary parameters which
// are kept in wire order.
type paramSet struct {
	set kindMask

	label       string
	language    string
	valueType   ValueType
	pref        *uint8
	altID       string
	pid         *PID
	types       []string
	mediaType   string
	calScale    string
	sortAs      []string
	geo         string
	tz          string
	proprietary []Parameter
}

func (ps *paramSet) apply(p Parameter) {
	ps.set |= 1 << p.Kind
	switch p.Kind {
	case ParamLabel:
		ps.label = p.Text
	case ParamLanguage:
		ps.language = p.Text
	case ParamValue:
		ps.valueType = p.ValueType
	case ParamPref:
		pref := p.Pref
		ps.pref = &pref
	case ParamAltID:
		ps.altID = p.Text
	case ParamPID:
		pid := p.PID
		ps.pid = &pid
	case ParamType:
		ps.types = append(ps.types, p.List...)
	case ParamMediaType:
		ps.mediaType = p.Text
	case ParamCalScale:
		ps.calScale = p.Text
	case ParamSortAs:
		ps.sortAs = p.List
	case ParamGeo:
		ps.geo = p.Text
	case ParamTZ:
		ps.tz = p.Text
	case ParamProprietary:
		ps.proprietary = append(ps.proprietary, p)
	}
}

func (ps *paramSet) has(k ParamKind) bool {
	return ps.set&(1<<k) != 0
}

// check fails on the first parameter kind present but not accepted.
func (ps *paramSet) check(property string, accepted kindMask) error {
	extra := ps.set &^ accepted
	if extra == 0 {
		return nil
	}
	for k := ParamLabel; k <= ParamProprietary; k++ {
		if extra&(1<<k) == 0 {
			continue
		}
		offender := k.String()
		if k == ParamProprietary {
			offender, _, _ = strings.Cut(ps.proprietary[0].Text, "=")
		}
		return &UnknownParameterError{Parameter: offender, Property: property}
	}
	return nil
}

type kindMask uint16

func kinds(ks ...ParamKind) kindMask {
	var m kindMask
	for _, k := range ks {
		m |= 1 << k
	}
	return m
}

var decoders = map[string]func(*contentline.Line, *paramSet) (Property, error){
	"BEGIN":        decodeBegin,
	"END":          decodeEnd,
	"VERSION":      decodeVersion,
	"SOURCE":       decodeSource,
	"KIND":         decodeKind,
	"XML":          decodeXML,
	"FN":           decodeFN,
	"N":            decodeN,
	"NICKNAME":     decodeNickname,
	"PHOTO":        decodePhoto,
	"BDAY":         decodeBDay,
	"ANNIVERSARY":  decodeAnniversary,
	"GENDER":       decodeGender,
	"ADR":          decodeAdr,
	"TEL":          decodeTel,
	"EMAIL":        decodeEmail,
	"IMPP":         decodeIMPP,
	"LANG":         decodeLang,
	"TZ":           decodeTimeZone,
	"GEO":          decodeGeo,
	"TITLE":        decodeTitle,
	"ROLE":         decodeRole,
	"LOGO":         decodeLogo,
	"ORG":          decodeOrg,
	"MEMBER":       decodeMember,
	"RELATED":      decodeRelated,
	"CATEGORIES":   decodeCategories,
	"NOTE":         decodeNote,
	"PRODID":       decodeProdID,
	"REV":          decodeRev,
	"SOUND":        decodeSound,
	"UID":          decodeUID,
	"CLIENTPIDMAP": decodeClientPIDMap,
	"URL":          decodeURL,
	"KEY":          decodeKey,
	"FBURL":        decodeFBURL,
	"CALURI":       decodeCalURI,
	"CALADURI":     decodeCalAdURI,
}

// listItems resolves the escapes of a list value and drops empty items.
func listItems(value string, sep byte) []string {
	var out []string
	for _, item := range contentline.SplitEscaped(value, sep) {
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// structuredItems splits a structured value into n positions, each a list
// of items. Positions beyond n are dropped; missing positions stay empty.
func structuredItems(value string, n int) [][]string {
	out := make([][]string, n)
	for i, pos := range contentline.SplitUnescaped(value, contentline.ParamDelimiter) {
		if i == n {
			break
		}
		out[i] = listItems(pos, contentline.ListDelimiter)
	}
	return out
}

func decodeBegin(line *contentline.Line, ps *paramSet) (Property, error) {
	return &Begin{Value: line.Value}, nil
}

func decodeEnd(line *contentline.Line, ps *paramSet) (Property, error) {
	return &End{Value: line.Value}, nil
}

func decodeVersion(line *contentline.Line, ps *paramSet) (Property, error) {
	switch line.Value {
	case string(Version4):
		return &Version{Value: Version4}, nil
	case string(Version3):
		return &Version{Value: Version3}, nil
	}
	return nil, &InvalidVersionError{Provided: line.Value}
}

func decodeSource(line *contentline.Line, ps *paramSet) (Property, error) {
	value, err := ParseURI(line.Value)
	if err != nil {
		return nil, err
	}
	return &Source{
		Group:     line.Group,
		AltID:     ps.altID,
		PID:       ps.pid,
		MediaType: ps.mediaType,
		Value:     value,
	}, nil
}

func decodeKind(line *contentline.Line, ps *paramSet) (Property, error) {
	return &Kind{Group: line.Group, Value: ParseKindValue(line.Value)}, nil
}

func decodeXML(line *contentline.Line, ps *paramSet) (Property, error) {
	return &XML{Group: line.Group, AltID: ps.altID, Value: line.Value}, nil
}

func decodeFN(line *contentline.Line, ps *paramSet) (Property, error) {
	return &FN{
		Group:     line.Group,
		AltID:     ps.altID,
		Language:  ps.language,
		ValueType: ps.valueType,
		Type:      ps.types,
		Pref:      ps.pref,
		Value:     line.Value,
	}, nil
}

func decodeN(line *contentline.Line, ps *paramSet) (Property, error) {
	pos := structuredItems(line.Value, 5)
	return &N{
		Group:             line.Group,
		AltID:             ps.altID,
		Language:          ps.language,
		SortAs:            ps.sortAs,
		Surnames:          pos[0],
		GivenNames:        pos[1],
		AdditionalNames:   pos[2],
		HonorificPrefixes: pos[3],
		HonorificSuffixes: pos[4],
	}, nil
}

func decodeNickname(line *contentline.Line, ps *paramSet) (Property, error) {
	return &Nickname{
		Group:     line.Group,
		AltID:     ps.altID,
		Language:  ps.language,
		ValueType: ps.valueType,
		Type:      ps.types,
		Pref:      ps.pref,
		PID:       ps.pid,
		Value:     listItems(line.Value, contentline.ListDelimiter),
	}, nil
}

func decodePhoto(line *contentline.Line, ps *paramSet) (Property, error) {
	value, err := ParseURI(line.Value)
	if err != nil {
		return nil, err
	}
	return &Photo{
		Group:     line.Group,
		AltID:     ps.altID,
		ValueType: ps.valueType,
		Type:      ps.types,
		MediaType: ps.mediaType,
		Pref:      ps.pref,
		PID:       ps.pid,
		Value:     value,
	}, nil
}

func decodeBDay(line *contentline.Line, ps *paramSet) (Property, error) {
	return &BDay{
		AltID:     ps.altID,
		CalScale:  ps.calScale,
		Language:  ps.language,
		ValueType: ps.valueType,
		Value:     line.Value,
	}, nil
}

func decodeAnniversary(line *contentline.Line, ps *paramSet) (Property, error) {
	return &Anniversary{
		AltID:     ps.altID,
		CalScale:  ps.calScale,
		ValueType: ps.valueType,
		Value:     line.Value,
	}, nil
}

func decodeGender(line *contentline.Line, ps *paramSet) (Property, error) {
	sexPart, identity, ok := strings.Cut(line.Value, ";")
	if !ok {
		return nil, &InvalidSyntaxError{Property: "GENDER", Message: "value must have a sex and an identity part separated by ';'"}
	}
	var sex Sex
	if sexPart != "" {
		var err error
		sex, err = ParseSex(sexPart)
		if err != nil {
			return nil, err
		}
	}
	return &Gender{Sex: sex, Identity: &identity}, nil
}

func decodeAdr(line *contentline.Line, ps *paramSet) (Property, error) {
	pos := structuredItems(line.Value, 7)
	return &Adr{
		Group:           line.Group,
		AltID:           ps.altID,
		Language:        ps.language,
		ValueType:       ps.valueType,
		Type:            ps.types,
		Pref:            ps.pref,
		PID:             ps.pid,
		Geo:             ps.geo,
		TimeZone:        ps.tz,
		Label:           ps.label,
		POBox:           pos[0],
		ExtendedAddress: pos[1],
		Street:          pos[2],
		City:            pos[3],
		Region:          pos[4],
		PostalCode:      pos[5],
		Country:         pos[6],
	}, nil
}

func decodeTel(line *contentline.Line, ps *paramSet) (Property, error) {
	return &Tel{
		AltID:     ps.altID,
		ValueType: ps.valueType,
		Type:      ps.types,
		Pref:      ps.pref,
		PID:       ps.pid,
		Value:     line.Value,
	}, nil
}

func decodeEmail(line *contentline.Line, ps *paramSet) (Property, error) {
	return &Email{
		Group:     line.Group,
		AltID:     ps.altID,
		ValueType: ps.valueType,
		Type:      ps.types,
		Pref:      ps.pref,
		PID:       ps.pid,
		Value:     line.Value,
	}, nil
}

func decodeIMPP(line *contentline.Line, ps *paramSet) (Property, error) {
	value, err := ParseURI(line.Value)
	if err != nil {
		return nil, err
	}
	return &IMPP{
		Group:     line.Group,
		AltID:     ps.altID,
		ValueType: ps.valueType,
		Type:      ps.types,
		Pref:      ps.pref,
		PID:       ps.pid,
		MediaType: ps.mediaType,
		Value:     value,
	}, nil
}

func decodeLang(line *contentline.Line, ps *paramSet) (Property, error) {
	return &Lang{
		Group:     line.Group,
		AltID:     ps.altID,
		ValueType: ps.valueType,
		Type:      ps.types,
		Pref:      ps.pref,
		PID:       ps.pid,
		Value:     line.Value,
	}, nil
}

func decodeTimeZone(line *contentline.Line, ps *paramSet) (Property, error) {
	return &TimeZone{
		Group:     line.Group,
		AltID:     ps.altID,
		ValueType: ps.valueType,
		Type:      ps.types,
		Pref:      ps.pref,
		PID:       ps.pid,
		MediaType: ps.mediaType,
		Value:     line.Value,
	}, nil
}

func decodeGeo(line *contentline.Line, ps *paramSet) (Property, error) {
	value, err := ParseURI(line.Value)
	if err != nil {
		return nil, err
	}
	return &Geo{
		Group:     line.Group,
		AltID:     ps.altID,
		ValueType: ps.valueType,
		Type:      ps.types,
		Pref:      ps.pref,
		PID:       ps.pid,
		MediaType: ps.mediaType,
		Value:     value,
	}, nil
}

func decodeTitle(line *contentline.Line, ps *paramSet) (Property, error) {
	return &Title{
		Group:     line.Group,
		AltID:     ps.altID,
		Language:  ps.language,
		ValueType: ps.valueType,
		Type:      ps.types,
		Pref:      ps.pref,
		PID:       ps.pid,
		Value:     line.Value,
	}, nil
}

func decodeRole(line *contentline.Line, ps *paramSet) (Property, error) {
	return &Role{
		Group:     line.Group,
		AltID:     ps.altID,
		Language:  ps.language,
		ValueType: ps.valueType,
		Type:      ps.types,
		Pref:      ps.pref,
		PID:       ps.pid,
		Value:     line.Value,
	}, nil
}

func decodeLogo(line *contentline.Line, ps *paramSet) (Property, error) {
	value, err := ParseURI(line.Value)
	if err != nil {
		return nil, err
	}
	return &Logo{
		Group:     line.Group,
		AltID:     ps.altID,
		Language:  ps.language,
		ValueType: ps.valueType,
		Type:      ps.types,
		Pref:      ps.pref,
		PID:       ps.pid,
		MediaType: ps.mediaType,
		Value:     value,
	}, nil
}

func decodeOrg(line *contentline.Line, ps *paramSet) (Property, error) {
	return &Org{
		Group:     line.Group,
		AltID:     ps.altID,
		Language:  ps.language,
		ValueType: ps.valueType,
		Type:      ps.types,
		Pref:      ps.pref,
		PID:       ps.pid,
		SortAs:    ps.sortAs,
		Value:     listItems(line.Value, contentline.ParamDelimiter),
	}, nil
}

func decodeMember(line *contentline.Line, ps *paramSet) (Property, error) {
	value, err := ParseURI(line.Value)
	if err != nil {
		return nil, err
	}
	return &Member{
		Group:     line.Group,
		AltID:     ps.altID,
		Pref:      ps.pref,
		PID:       ps.pid,
		MediaType: ps.mediaType,
		Value:     value,
	}, nil
}

func decodeRelated(line *contentline.Line, ps *paramSet) (Property, error) {
	return &Related{
		Group:     line.Group,
		AltID:     ps.altID,
		Language:  ps.language,
		ValueType: ps.valueType,
		Type:      ps.types,
		Pref:      ps.pref,
		PID:       ps.pid,
		MediaType: ps.mediaType,
		Value:     line.Value,
	}, nil
}

func decodeCategories(line *contentline.Line, ps *paramSet) (Property, error) {
	return &Categories{
		Group:     line.Group,
		AltID:     ps.altID,
		ValueType: ps.valueType,
		Type:      ps.types,
		Pref:      ps.pref,
		PID:       ps.pid,
		Value:     listItems(line.Value, contentline.ListDelimiter),
	}, nil
}

func decodeNote(line *contentline.Line, ps *paramSet) (Property, error) {
	return &Note{
		Group:     line.Group,
		AltID:     ps.altID,
		Language:  ps.language,
		ValueType: ps.valueType,
		Type:      ps.types,
		Pref:      ps.pref,
		PID:       ps.pid,
		Value:     line.Value,
	}, nil
}

func decodeProdID(line *contentline.Line, ps *paramSet) (Property, error) {
	return &ProdID{Group: line.Group, Value: line.Value}, nil
}

func decodeRev(line *contentline.Line, ps *paramSet) (Property, error) {
	return &Rev{Group: line.Group, Value: line.Value}, nil
}

func decodeSound(line *contentline.Line, ps *paramSet) (Property, error) {
	value, err := ParseURI(line.Value)
	if err != nil {
		return nil, err
	}
	return &Sound{
		Group:     line.Group,
		AltID:     ps.altID,
		Language:  ps.language,
		ValueType: ps.valueType,
		Type:      ps.types,
		Pref:      ps.pref,
		PID:       ps.pid,
		MediaType: ps.mediaType,
		Value:     value,
	}, nil
}

func decodeUID(line *contentline.Line, ps *paramSet) (Property, error) {
	return &UID{Group: line.Group, ValueType: ps.valueType, Value: line.Value}, nil
}

func decodeClientPIDMap(line *contentline.Line, ps *paramSet) (Property, error) {
	digits, rest, ok := strings.Cut(line.Value, ";")
	if !ok {
		return nil, &InvalidSyntaxError{Property: "CLIENTPIDMAP", Message: "value must have a source number and a URI separated by ';'"}
	}
	source, err := strconv.ParseUint(digits, 10, 8)
	if err != nil {
		return nil, &InvalidSyntaxError{Property: "CLIENTPIDMAP", Message: "source number must be a decimal integer between 0 and 255"}
	}
	value, err := ParseURI(rest)
	if err != nil {
		return nil, err
	}
	return &ClientPIDMap{Group: line.Group, SourceID: uint8(source), Value: value}, nil
}

func decodeURL(line *contentline.Line, ps *paramSet) (Property, error) {
	value, err := ParseURI(line.Value)
	if err != nil {
		return nil, err
	}
	return &URL{
		Group:     line.Group,
		AltID:     ps.altID,
		ValueType: ps.valueType,
		Type:      ps.types,
		Pref:      ps.pref,
		PID:       ps.pid,
		MediaType: ps.mediaType,
		Value:     value,
	}, nil
}

func decodeKey(line *contentline.Line, ps *paramSet) (Property, error) {
	return &Key{
		Group:     line.Group,
		AltID:     ps.altID,
		ValueType: ps.valueType,
		Type:      ps.types,
		Pref:      ps.pref,
		PID:       ps.pid,
		MediaType: ps.mediaType,
		Value:     line.Value,
	}, nil
}

func decodeFBURL(line *contentline.Line, ps *paramSet) (Property, error) {
	value, err := ParseURI(line.Value)
	if err != nil {
		return nil, err
	}
	return &FBURL{
		Group:     line.Group,
		AltID:     ps.altID,
		ValueType: ps.valueType,
		Type:      ps.types,
		Pref:      ps.pref,
		PID:       ps.pid,
		MediaType: ps.mediaType,
		Value:     value,
	}, nil
}

func decodeCalURI(line *contentline.Line, ps *paramSet) (Property, error) {
	value, err := ParseURI(line.Value)
	if err != nil {
		return nil, err
	}
	return &CalURI{
		Group:     line.Group,
		AltID:     ps.altID,
		ValueType: ps.valueType,
		Type:      ps.types,
		Pref:      ps.pref,
		PID:       ps.pid,
		MediaType: ps.mediaType,
		Value:     value,
	}, nil
}

func decodeCalAdURI(line *contentline.Line, ps *paramSet) (Property, error) {
	value, err := ParseURI(line.Value)
	if err != nil {
		return nil, err
	}
	return &CalAdURI{
		Group:     line.Group,
		AltID:     ps.altID,
		ValueType: ps.valueType,
		Type:      ps.types,
		Pref:      ps.pref,
		PID:       ps.pid,
		MediaType: ps.mediaType,
		Value:     value,
	}, nil
}

// decodeProprietary keeps the line as given. Proprietary parameters come
// first in wire order, typed parameters follow in a fixed order, so the
// property can be written back.
func decodeProprietary(line *contentline.Line, ps *paramSet) Property {
	params := ps.proprietary
	if ps.has(ParamAltID) {
		params = append(params, Parameter{Kind: ParamAltID, Text: ps.altID})
	}
	if ps.pid != nil {
		params = append(params, Parameter{Kind: ParamPID, PID: *ps.pid})
	}
	if ps.has(ParamMediaType) {
		params = append(params, Parameter{Kind: ParamMediaType, Text: ps.mediaType})
	}
	if ps.has(ParamTZ) {
		params = append(params, Parameter{Kind: ParamTZ, Text: ps.tz})
	}
	if ps.has(ParamGeo) {
		params = append(params, Parameter{Kind: ParamGeo, Text: ps.geo})
	}
	if ps.has(ParamSortAs) {
		params = append(params, Parameter{Kind: ParamSortAs, List: ps.sortAs})
	}
	if ps.has(ParamCalScale) {
		params = append(params, Parameter{Kind: ParamCalScale, Text: ps.calScale})
	}
	if ps.has(ParamLabel) {
		params = append(params, Parameter{Kind: ParamLabel, Text: ps.label})
	}
	if ps.has(ParamType) {
		params = append(params, Parameter{Kind: ParamType, List: ps.types})
	}
	if ps.pref != nil {
		params = append(params, Parameter{Kind: ParamPref, Pref: *ps.pref})
	}
	if ps.has(ParamLanguage) {
		params = append(params, Parameter{Kind: ParamLanguage, Text: ps.language})
	}
	if ps.has(ParamValue) {
		params = append(params, Parameter{Kind: ParamValue, ValueType: ps.valueType})
	}
	return &Proprietary{Group: line.Group, Name: line.Name, Value: line.Value, Params: params}
}
