package property

import (
	"strconv"

	"github.com/pior/vcard/contentline"
)

// AppendProperty appends the wire form of p to dst, including the line
// terminator, and returns the extended buffer. Parameters follow the order
// of parameterOrders. List and structured values are escaped so the line
// tokenizes back to the same property; single values are written as
// stored. Property implementations outside this package append nothing.
func AppendProperty(dst []byte, p Property) []byte {
	switch p := p.(type) {
	case *Begin:
		dst = append(dst, "BEGIN"...)
		dst = appendValue(dst, p.Value)
	case *End:
		dst = append(dst, "END"...)
		dst = appendValue(dst, p.Value)
	case *Version:
		dst = append(dst, "VERSION"...)
		dst = appendValue(dst, string(p.Value))
	case *Source:
		dst = appendName(dst, p.Group, "SOURCE")
		dst = appendParams(dst, "SOURCE", paramSet{pid: p.PID, altID: p.AltID, mediaType: p.MediaType})
		dst = appendValue(dst, p.Value.String())
	case *Kind:
		dst = appendName(dst, p.Group, "KIND")
		dst = appendValue(dst, string(p.Value))
	case *XML:
		dst = appendName(dst, p.Group, "XML")
		dst = appendParams(dst, "XML", paramSet{altID: p.AltID})
		dst = appendValue(dst, p.Value)
	case *FN:
		dst = appendName(dst, p.Group, "FN")
		dst = appendParams(dst, "FN", paramSet{altID: p.AltID, valueType: p.ValueType, types: p.Type, language: p.Language, pref: p.Pref})
		dst = appendValue(dst, p.Value)
	case *N:
		dst = appendName(dst, p.Group, "N")
		dst = appendParams(dst, "N", paramSet{altID: p.AltID, language: p.Language, sortAs: p.SortAs})
		dst = appendStructured(dst, p.Surnames, p.GivenNames, p.AdditionalNames, p.HonorificPrefixes, p.HonorificSuffixes)
	case *Nickname:
		dst = appendName(dst, p.Group, "NICKNAME")
		dst = appendParams(dst, "NICKNAME", paramSet{altID: p.AltID, valueType: p.ValueType, types: p.Type, language: p.Language, pref: p.Pref, pid: p.PID})
		dst = appendListValue(dst, p.Value, contentline.ListDelimiter)
	case *Photo:
		dst = appendName(dst, p.Group, "PHOTO")
		dst = appendParams(dst, "PHOTO", paramSet{altID: p.AltID, valueType: p.ValueType, types: p.Type, mediaType: p.MediaType, pref: p.Pref, pid: p.PID})
		dst = appendValue(dst, p.Value.String())
	case *BDay:
		dst = append(dst, "BDAY"...)
		dst = appendParams(dst, "BDAY", paramSet{altID: p.AltID, calScale: p.CalScale, valueType: p.ValueType, language: p.Language})
		dst = appendValue(dst, p.Value)
	case *Anniversary:
		dst = append(dst, "ANNIVERSARY"...)
		dst = appendParams(dst, "ANNIVERSARY", paramSet{altID: p.AltID, calScale: p.CalScale, valueType: p.ValueType})
		dst = appendValue(dst, p.Value)
	case *Gender:
		dst = append(dst, "GENDER:"...)
		dst = append(dst, p.Sex...)
		if p.Identity != nil {
			dst = append(dst, contentline.ParamDelimiter)
			dst = append(dst, *p.Identity...)
		}
		dst = append(dst, contentline.CRLF...)
	case *Adr:
		dst = appendName(dst, p.Group, "ADR")
		dst = appendParams(dst, "ADR", paramSet{altID: p.AltID, label: p.Label, language: p.Language, geo: p.Geo, tz: p.TimeZone, pid: p.PID, pref: p.Pref, valueType: p.ValueType, types: p.Type})
		dst = appendStructured(dst, p.POBox, p.ExtendedAddress, p.Street, p.City, p.Region, p.PostalCode, p.Country)
	case *Tel:
		dst = append(dst, "TEL"...)
		dst = appendParams(dst, "TEL", paramSet{valueType: p.ValueType, types: p.Type, pid: p.PID, pref: p.Pref, altID: p.AltID})
		dst = appendValue(dst, p.Value)
	case *Email:
		dst = appendName(dst, p.Group, "EMAIL")
		dst = appendParams(dst, "EMAIL", paramSet{altID: p.AltID, pid: p.PID, pref: p.Pref, valueType: p.ValueType, types: p.Type})
		dst = appendValue(dst, p.Value)
	case *IMPP:
		dst = appendName(dst, p.Group, "IMPP")
		dst = appendParams(dst, "IMPP", paramSet{altID: p.AltID, pid: p.PID, pref: p.Pref, mediaType: p.MediaType, valueType: p.ValueType, types: p.Type})
		dst = appendValue(dst, p.Value.String())
	case *Lang:
		dst = appendName(dst, p.Group, "LANG")
		dst = appendParams(dst, "LANG", paramSet{altID: p.AltID, pid: p.PID, pref: p.Pref, valueType: p.ValueType, types: p.Type})
		dst = appendValue(dst, p.Value)
	case *TimeZone:
		dst = appendName(dst, p.Group, "TZ")
		dst = appendParams(dst, "TZ", paramSet{altID: p.AltID, pid: p.PID, pref: p.Pref, valueType: p.ValueType, types: p.Type, mediaType: p.MediaType})
		dst = appendValue(dst, p.Value)
	case *Geo:
		dst = appendName(dst, p.Group, "GEO")
		dst = appendParams(dst, "GEO", paramSet{altID: p.AltID, pid: p.PID, pref: p.Pref, valueType: p.ValueType, types: p.Type, mediaType: p.MediaType})
		dst = appendValue(dst, p.Value.String())
	case *Title:
		dst = appendName(dst, p.Group, "TITLE")
		dst = appendParams(dst, "TITLE", paramSet{altID: p.AltID, pid: p.PID, pref: p.Pref, valueType: p.ValueType, types: p.Type, language: p.Language})
		dst = appendValue(dst, p.Value)
	case *Role:
		dst = appendName(dst, p.Group, "ROLE")
		dst = appendParams(dst, "ROLE", paramSet{altID: p.AltID, pid: p.PID, pref: p.Pref, valueType: p.ValueType, types: p.Type, language: p.Language})
		dst = appendValue(dst, p.Value)
	case *Logo:
		dst = appendName(dst, p.Group, "LOGO")
		dst = appendParams(dst, "LOGO", paramSet{altID: p.AltID, pid: p.PID, pref: p.Pref, valueType: p.ValueType, types: p.Type, language: p.Language, mediaType: p.MediaType})
		dst = appendValue(dst, p.Value.String())
	case *Org:
		dst = appendName(dst, p.Group, "ORG")
		dst = appendParams(dst, "ORG", paramSet{altID: p.AltID, pid: p.PID, pref: p.Pref, valueType: p.ValueType, types: p.Type, language: p.Language, sortAs: p.SortAs})
		dst = appendListValue(dst, p.Value, contentline.ParamDelimiter)
	case *Member:
		dst = appendName(dst, p.Group, "MEMBER")
		dst = appendParams(dst, "MEMBER", paramSet{altID: p.AltID, pid: p.PID, pref: p.Pref, mediaType: p.MediaType})
		dst = appendValue(dst, p.Value.String())
	case *Related:
		dst = appendName(dst, p.Group, "RELATED")
		dst = appendParams(dst, "RELATED", paramSet{altID: p.AltID, pid: p.PID, pref: p.Pref, valueType: p.ValueType, types: p.Type, language: p.Language, mediaType: p.MediaType})
		dst = appendValue(dst, p.Value)
	case *Categories:
		dst = appendName(dst, p.Group, "CATEGORIES")
		dst = appendParams(dst, "CATEGORIES", paramSet{altID: p.AltID, pid: p.PID, pref: p.Pref, valueType: p.ValueType, types: p.Type})
		dst = appendListValue(dst, p.Value, contentline.ListDelimiter)
	case *Note:
		dst = appendName(dst, p.Group, "NOTE")
		dst = appendParams(dst, "NOTE", paramSet{altID: p.AltID, pid: p.PID, pref: p.Pref, valueType: p.ValueType, types: p.Type, language: p.Language})
		dst = appendValue(dst, p.Value)
	case *ProdID:
		dst = appendName(dst, p.Group, "PRODID")
		dst = appendValue(dst, p.Value)
	case *Rev:
		dst = appendName(dst, p.Group, "REV")
		dst = appendValue(dst, p.Value)
	case *Sound:
		dst = appendName(dst, p.Group, "SOUND")
		dst = appendParams(dst, "SOUND", paramSet{altID: p.AltID, pid: p.PID, pref: p.Pref, valueType: p.ValueType, types: p.Type, language: p.Language, mediaType: p.MediaType})
		dst = appendValue(dst, p.Value.String())
	case *UID:
		dst = appendName(dst, p.Group, "UID")
		dst = appendParams(dst, "UID", paramSet{valueType: p.ValueType})
		dst = appendValue(dst, p.Value)
	case *ClientPIDMap:
		dst = appendName(dst, p.Group, "CLIENTPIDMAP")
		dst = append(dst, contentline.ValueDelimiter)
		dst = strconv.AppendUint(dst, uint64(p.SourceID), 10)
		dst = append(dst, contentline.ParamDelimiter)
		dst = append(dst, p.Value.String()...)
		dst = append(dst, contentline.CRLF...)
	case *URL:
		dst = appendName(dst, p.Group, "URL")
		dst = appendParams(dst, "URL", paramSet{altID: p.AltID, pid: p.PID, pref: p.Pref, valueType: p.ValueType, types: p.Type, mediaType: p.MediaType})
		dst = appendValue(dst, p.Value.String())
	case *Key:
		dst = appendName(dst, p.Group, "KEY")
		dst = appendParams(dst, "KEY", paramSet{altID: p.AltID, pid: p.PID, pref: p.Pref, valueType: p.ValueType, types: p.Type, mediaType: p.MediaType})
		dst = appendValue(dst, p.Value)
	case *FBURL:
		dst = appendName(dst, p.Group, "FBURL")
		dst = appendParams(dst, "FBURL", paramSet{altID: p.AltID, pid: p.PID, pref: p.Pref, valueType: p.ValueType, types: p.Type, mediaType: p.MediaType})
		dst = appendValue(dst, p.Value.String())
	case *CalURI:
		dst = appendName(dst, p.Group, "CALURI")
		dst = appendParams(dst, "CALURI", paramSet{altID: p.AltID, pid: p.PID, pref: p.Pref, valueType: p.ValueType, types: p.Type, mediaType: p.MediaType})
		dst = appendValue(dst, p.Value.String())
	case *CalAdURI:
		dst = appendName(dst, p.Group, "CALADURI")
		dst = appendParams(dst, "CALADURI", paramSet{altID: p.AltID, pid: p.PID, pref: p.Pref, valueType: p.ValueType, types: p.Type, mediaType: p.MediaType})
		dst = appendValue(dst, p.Value.String())
	case *Proprietary:
		dst = appendName(dst, p.Group, p.Name)
		for _, param := range p.Params {
			dst = append(dst, contentline.ParamDelimiter)
			dst = append(dst, param.String()...)
		}
		dst = appendValue(dst, p.Value)
	}
	return dst
}

func appendName(dst []byte, group, name string) []byte {
	if group != "" {
		dst = append(dst, group...)
		dst = append(dst, contentline.GroupDelimiter)
	}
	return append(dst, name...)
}

// appendParams writes the parameters present in ps, ordered by the
// property's entry in parameterOrders.
func appendParams(dst []byte, name string, ps paramSet) []byte {
	for _, k := range parameterOrders[name] {
		switch k {
		case ParamLabel:
			dst = appendOptParam(dst, "LABEL", ps.label)
		case ParamLanguage:
			dst = appendOptParam(dst, "LANGUAGE", ps.language)
		case ParamValue:
			dst = appendOptParam(dst, "VALUE", string(ps.valueType))
		case ParamPref:
			if ps.pref != nil {
				dst = append(dst, ";PREF="...)
				dst = strconv.AppendUint(dst, uint64(*ps.pref), 10)
			}
		case ParamAltID:
			dst = appendOptParam(dst, "ALTID", ps.altID)
		case ParamPID:
			if ps.pid != nil {
				dst = append(dst, ";PID="...)
				dst = append(dst, ps.pid.String()...)
			}
		case ParamType:
			for _, t := range ps.types {
				dst = append(dst, ";TYPE="...)
				dst = append(dst, t...)
			}
		case ParamMediaType:
			dst = appendOptParam(dst, "MEDIATYPE", ps.mediaType)
		case ParamCalScale:
			dst = appendOptParam(dst, "CALSCALE", ps.calScale)
		case ParamSortAs:
			dst = appendSortAs(dst, ps.sortAs)
		case ParamGeo:
			dst = appendOptParam(dst, "GEO", ps.geo)
		case ParamTZ:
			dst = appendOptParam(dst, "TZ", ps.tz)
		}
	}
	return dst
}

func appendOptParam(dst []byte, key, value string) []byte {
	if value == "" {
		return dst
	}
	dst = append(dst, contentline.ParamDelimiter)
	dst = append(dst, key...)
	dst = append(dst, '=')
	return append(dst, value...)
}

// appendSortAs writes the sort strings comma joined inside double quotes.
func appendSortAs(dst []byte, sortAs []string) []byte {
	if len(sortAs) == 0 {
		return dst
	}
	dst = append(dst, `;SORT-AS="`...)
	for i, s := range sortAs {
		if i > 0 {
			dst = append(dst, contentline.ListDelimiter)
		}
		dst = append(dst, s...)
	}
	return append(dst, '"')
}

// appendValue closes the line: separator, raw value, terminator.
func appendValue(dst []byte, value string) []byte {
	dst = append(dst, contentline.ValueDelimiter)
	dst = append(dst, value...)
	return append(dst, contentline.CRLF...)
}

// appendListValue closes the line with the items escaped and joined by sep.
func appendListValue(dst []byte, items []string, sep byte) []byte {
	dst = append(dst, contentline.ValueDelimiter)
	dst = appendItems(dst, items, sep)
	return append(dst, contentline.CRLF...)
}

func appendItems(dst []byte, items []string, sep byte) []byte {
	for i, item := range items {
		if i > 0 {
			dst = append(dst, sep)
		}
		dst = contentline.AppendEscaped(dst, item)
	}
	return dst
}

// appendStructured closes the line with a structured value: positions
// joined by semicolons, the items of each position escaped and joined by
// commas.
func appendStructured(dst []byte, positions ...[]string) []byte {
	dst = append(dst, contentline.ValueDelimiter)
	for i, pos := range positions {
		if i > 0 {
			dst = append(dst, contentline.ParamDelimiter)
		}
		dst = appendItems(dst, pos, contentline.ListDelimiter)
	}
	return append(dst, contentline.CRLF...)
}
