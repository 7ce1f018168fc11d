package property

// parameterOrders lists, per registered property, the order its parameters
// are written in. The orders differ between properties and are part of the
// wire format. The same table bounds decoding: a property accepts exactly
// the parameters it can write back.
//
// Properties absent from the table take no parameters.
var parameterOrders = map[string][]ParamKind{
	"SOURCE":      {ParamPID, ParamAltID, ParamMediaType},
	"XML":         {ParamAltID},
	"FN":          {ParamAltID, ParamValue, ParamType, ParamLanguage, ParamPref},
	"N":           {ParamAltID, ParamLanguage, ParamSortAs},
	"NICKNAME":    {ParamAltID, ParamValue, ParamType, ParamLanguage, ParamPref, ParamPID},
	"PHOTO":       {ParamAltID, ParamValue, ParamType, ParamMediaType, ParamPref, ParamPID},
	"BDAY":        {ParamAltID, ParamCalScale, ParamValue, ParamLanguage},
	"ANNIVERSARY": {ParamAltID, ParamCalScale, ParamValue},
	"ADR":         {ParamAltID, ParamLabel, ParamLanguage, ParamGeo, ParamTZ, ParamPID, ParamPref, ParamValue, ParamType},
	"TEL":         {ParamValue, ParamType, ParamPID, ParamPref, ParamAltID},
	"EMAIL":       {ParamAltID, ParamPID, ParamPref, ParamValue, ParamType},
	"IMPP":        {ParamAltID, ParamPID, ParamPref, ParamMediaType, ParamValue, ParamType},
	"LANG":        {ParamAltID, ParamPID, ParamPref, ParamValue, ParamType},
	"TZ":          {ParamAltID, ParamPID, ParamPref, ParamValue, ParamType, ParamMediaType},
	"GEO":         {ParamAltID, ParamPID, ParamPref, ParamValue, ParamType, ParamMediaType},
	"TITLE":       {ParamAltID, ParamPID, ParamPref, ParamValue, ParamType, ParamLanguage},
	"ROLE":        {ParamAltID, ParamPID, ParamPref, ParamValue, ParamType, ParamLanguage},
	"LOGO":        {ParamAltID, ParamPID, ParamPref, ParamValue, ParamType, ParamLanguage, ParamMediaType},
	"ORG":         {ParamAltID, ParamPID, ParamPref, ParamValue, ParamType, ParamLanguage, ParamSortAs},
	"MEMBER":      {ParamAltID, ParamPID, ParamPref, ParamMediaType},
	"RELATED":     {ParamAltID, ParamPID, ParamPref, ParamValue, ParamType, ParamLanguage, ParamMediaType},
	"CATEGORIES":  {ParamAltID, ParamPID, ParamPref, ParamValue, ParamType},
	"NOTE":        {ParamAltID, ParamPID, ParamPref, ParamValue, ParamType, ParamLanguage},
	"SOUND":       {ParamAltID, ParamPID, ParamPref, ParamValue, ParamType, ParamLanguage, ParamMediaType},
	"UID":         {ParamValue},
	"URL":         {ParamAltID, ParamPID, ParamPref, ParamValue, ParamType, ParamMediaType},
	"KEY":         {ParamAltID, ParamPID, ParamPref, ParamValue, ParamType, ParamMediaType},
	"FBURL":       {ParamAltID, ParamPID, ParamPref, ParamValue, ParamType, ParamMediaType},
	"CALURI":      {ParamAltID, ParamPID, ParamPref, ParamValue, ParamType, ParamMediaType},
	"CALADURI":    {ParamAltID, ParamPID, ParamPref, ParamValue, ParamType, ParamMediaType},
}

// acceptedParams is the set form of parameterOrders.
var acceptedParams = buildAcceptedParams()

func buildAcceptedParams() map[string]kindMask {
	m := make(map[string]kindMask, len(parameterOrders))
	for name, order := range parameterOrders {
		m[name] = kinds(order...)
	}
	return m
}
