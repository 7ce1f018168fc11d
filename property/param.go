package property

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pior/vcard/contentline"
)

// ValueType is the data type named by a VALUE parameter. The empty string
// means the parameter is absent.
type ValueType string

// Registered value data types. The wire form is matched exactly, in lower
// case; a token with an X- prefix is kept as a proprietary type.
const (
	ValueTypeURI           ValueType = "uri"
	ValueTypeText          ValueType = "text"
	ValueTypeDate          ValueType = "date"
	ValueTypeTime          ValueType = "time"
	ValueTypeDateTime      ValueType = "date-time"
	ValueTypeDateAndOrTime ValueType = "date-and-or-time"
	ValueTypeTimestamp     ValueType = "timestamp"
	ValueTypeBoolean       ValueType = "boolean"
	ValueTypeInteger       ValueType = "integer"
	ValueTypeFloat         ValueType = "float"
	ValueTypeUTCOffset     ValueType = "utc-offset"
	ValueTypeLanguageTag   ValueType = "language-tag"
)

var valueTypes = map[string]ValueType{
	"uri":              ValueTypeURI,
	"text":             ValueTypeText,
	"date":             ValueTypeDate,
	"time":             ValueTypeTime,
	"date-time":        ValueTypeDateTime,
	"date-and-or-time": ValueTypeDateAndOrTime,
	"timestamp":        ValueTypeTimestamp,
	"boolean":          ValueTypeBoolean,
	"integer":          ValueTypeInteger,
	"float":            ValueTypeFloat,
	"utc-offset":       ValueTypeUTCOffset,
	"language-tag":     ValueTypeLanguageTag,
}

func parseValueType(s string) (ValueType, error) {
	if vt, ok := valueTypes[s]; ok {
		return vt, nil
	}
	if strings.HasPrefix(s, "X-") || strings.HasPrefix(s, "x-") {
		return ValueType(s), nil
	}
	return "", &UnknownTypeError{Given: s}
}

// PID is a property instance identifier: a source-local digit with an
// optional source digit, as in "1" or "3.1".
type PID struct {
	First     uint8
	Second    uint8
	HasSecond bool
}

func (p PID) String() string {
	if p.HasSecond {
		return fmt.Sprintf("%d.%d", p.First, p.Second)
	}
	return strconv.Itoa(int(p.First))
}

func parsePID(s string) (PID, error) {
	first, second, hasSecond := strings.Cut(s, ".")
	if !isPIDDigit(first) || (hasSecond && !isPIDDigit(second)) {
		return PID{}, &InvalidPIDError{Provided: s}
	}
	p := PID{First: first[0] - '0', HasSecond: hasSecond}
	if hasSecond {
		p.Second = second[0] - '0'
	}
	return p, nil
}

func isPIDDigit(s string) bool {
	return len(s) == 1 && s[0] >= '0' && s[0] <= '9'
}

// ParamKind identifies which parameter a Parameter carries.
type ParamKind int

// Parameter kinds. Registered parameter keys are matched case
// insensitively; every other key is kept as a proprietary parameter.
const (
	ParamLabel ParamKind = iota
	ParamLanguage
	ParamValue
	ParamPref
	ParamAltID
	ParamPID
	ParamType
	ParamMediaType
	ParamCalScale
	ParamSortAs
	ParamGeo
	ParamTZ
	ParamProprietary
)

var paramKindNames = [...]string{
	ParamLabel:       "LABEL",
	ParamLanguage:    "LANGUAGE",
	ParamValue:       "VALUE",
	ParamPref:        "PREF",
	ParamAltID:       "ALTID",
	ParamPID:         "PID",
	ParamType:        "TYPE",
	ParamMediaType:   "MEDIATYPE",
	ParamCalScale:    "CALSCALE",
	ParamSortAs:      "SORT-AS",
	ParamGeo:         "GEO",
	ParamTZ:          "TZ",
	ParamProprietary: "proprietary",
}

func (k ParamKind) String() string {
	if k < 0 || int(k) >= len(paramKindNames) {
		return "unknown"
	}
	return paramKindNames[k]
}

// Parameter is one decoded parameter of a content line. Kind selects which
// of the payload fields is meaningful: Text for single valued parameters and
// for the raw segment of a proprietary parameter, List for TYPE and
// SORT-AS, and the typed fields for VALUE, PREF and PID.
type Parameter struct {
	Kind      ParamKind
	Text      string
	List      []string
	Pref      uint8
	PID       PID
	ValueType ValueType
}

// String renders the parameter in wire form, without its leading semicolon.
func (p Parameter) String() string {
	switch p.Kind {
	case ParamLabel:
		return "LABEL=" + p.Text
	case ParamLanguage:
		return "LANGUAGE=" + p.Text
	case ParamValue:
		return "VALUE=" + string(p.ValueType)
	case ParamPref:
		return "PREF=" + strconv.Itoa(int(p.Pref))
	case ParamAltID:
		return "ALTID=" + p.Text
	case ParamPID:
		return "PID=" + p.PID.String()
	case ParamType:
		return "TYPE=" + strings.Join(p.List, ",")
	case ParamMediaType:
		return "MEDIATYPE=" + p.Text
	case ParamCalScale:
		return "CALSCALE=" + p.Text
	case ParamSortAs:
		return "SORT-AS=" + strings.Join(p.List, ",")
	case ParamGeo:
		return "GEO=" + p.Text
	case ParamTZ:
		return "TZ=" + p.Text
	}
	// A proprietary parameter keeps its whole segment.
	return p.Text
}

// DecodeParameter decodes one raw parameter segment of a content line.
//
// The key is matched case insensitively. TYPE keeps empty list items;
// SORT-AS is dequoted before splitting, so SORT-AS="Doe,John" holds the two
// sort strings and not the quote characters. A key outside the registered
// set yields a proprietary parameter carrying the whole segment.
func DecodeParameter(segment string) (Parameter, error) {
	key, value, ok := strings.Cut(segment, "=")
	if !ok {
		return Parameter{}, &contentline.InvalidLineError{Reason: "parameter has no = sign", Line: segment}
	}

	switch strings.ToLower(key) {
	case "label":
		return Parameter{Kind: ParamLabel, Text: value}, nil
	case "language":
		return Parameter{Kind: ParamLanguage, Text: value}, nil
	case "value":
		vt, err := parseValueType(value)
		if err != nil {
			return Parameter{}, err
		}
		return Parameter{Kind: ParamValue, ValueType: vt}, nil
	case "pref":
		n, err := strconv.ParseUint(value, 10, 8)
		if err != nil {
			return Parameter{}, &InvalidPrefError{Provided: value}
		}
		return Parameter{Kind: ParamPref, Pref: uint8(n)}, nil
	case "altid":
		return Parameter{Kind: ParamAltID, Text: value}, nil
	case "pid":
		pid, err := parsePID(value)
		if err != nil {
			return Parameter{}, err
		}
		return Parameter{Kind: ParamPID, PID: pid}, nil
	case "type":
		return Parameter{Kind: ParamType, List: strings.Split(value, ",")}, nil
	case "mediatype":
		return Parameter{Kind: ParamMediaType, Text: value}, nil
	case "calscale":
		return Parameter{Kind: ParamCalScale, Text: value}, nil
	case "sort-as":
		return Parameter{Kind: ParamSortAs, List: strings.Split(unquote(value), ",")}, nil
	case "geo":
		return Parameter{Kind: ParamGeo, Text: value}, nil
	case "tz":
		return Parameter{Kind: ParamTZ, Text: value}, nil
	}
	return Parameter{Kind: ParamProprietary, Text: segment}, nil
}

// unquote strips one pair of surrounding double quotes.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
