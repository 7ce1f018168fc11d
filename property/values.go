package property

import "strings"

// Sex is the sex component of a GENDER property. The empty string means the
// component is absent.
type Sex string

// Registered sex components. The wire form is a single letter, matched
// case insensitively.
const (
	SexMale    Sex = "m"
	SexFemale  Sex = "f"
	SexOther   Sex = "o"
	SexNone    Sex = "n"
	SexUnknown Sex = "u"
)

// ParseSex maps a sex component token to its registered value.
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(s) {
	case "m":
		return SexMale, nil
	case "f":
		return SexFemale, nil
	case "o":
		return SexOther, nil
	case "n":
		return SexNone, nil
	case "u":
		return SexUnknown, nil
	}
	return "", &InvalidGenderError{Provided: s}
}

// KindValue is the value of a KIND property.
type KindValue string

// Registered kinds. A token outside this set is kept as given, so
// proprietary kinds such as "x-device" survive a round trip.
const (
	KindIndividual KindValue = "individual"
	KindGroup      KindValue = "group"
	KindOrg        KindValue = "org"
	KindLocation   KindValue = "location"
)

// ParseKindValue normalizes registered kind tokens to lower case and keeps
// everything else as given. It never fails.
func ParseKindValue(s string) KindValue {
	switch strings.ToLower(s) {
	case "individual":
		return KindIndividual
	case "group":
		return KindGroup
	case "org":
		return KindOrg
	case "location":
		return KindLocation
	}
	return KindValue(s)
}

// VersionValue is the value of a VERSION property.
type VersionValue string

// Supported versions.
const (
	Version3 VersionValue = "3.0"
	Version4 VersionValue = "4.0"
)

// DefaultVersion is the version assumed for cards built in code.
const DefaultVersion = Version4
