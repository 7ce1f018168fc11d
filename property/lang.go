package property

import "golang.org/x/text/language"

// Tag interprets the value as a BCP 47 language tag.
func (l *Lang) Tag() (language.Tag, error) {
	return language.Parse(l.Value)
}

// ParseLanguageTag interprets a LANGUAGE parameter as a BCP 47 language
// tag. Parameters keep the raw text they were decoded with, so matching
// decoded properties against a tag goes through here.
func ParseLanguageTag(s string) (language.Tag, error) {
	return language.Parse(s)
}
