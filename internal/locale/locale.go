package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale is one of the two display languages of the site.
type Locale string

const (
	Arabic  Locale = "ar"
	English Locale = "en"
)

// Default is used for paths without a locale segment.
const Default = English

// Supported lists the locales in matcher preference order.
var Supported = []Locale{English, Arabic}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Arabic})

// Parse returns the locale for an exact tag such as "ar" or "en".
func Parse(value string) (Locale, bool) {
	switch Locale(strings.ToLower(strings.TrimSpace(value))) {
	case Arabic:
		return Arabic, true
	case English:
		return English, true
	}
	return "", false
}

func (l Locale) String() string { return string(l) }

// Dir returns the text direction for the locale.
func (l Locale) Dir() string {
	if l == Arabic {
		return "rtl"
	}
	return "ltr"
}

// IsRTL reports whether the locale is written right to left.
func (l Locale) IsRTL() bool { return l == Arabic }

// OGLocale returns the Open Graph locale tag.
func (l Locale) OGLocale() string {
	if l == Arabic {
		return "ar_AR"
	}
	return "en_US"
}

// Tag returns the BCP 47 tag for the locale.
func (l Locale) Tag() language.Tag {
	if l == Arabic {
		return language.Arabic
	}
	return language.English
}

// Other returns the opposite locale.
func (l Locale) Other() Locale {
	if l == Arabic {
		return English
	}
	return Arabic
}

// Prefix returns the route prefix, e.g. "/ar".
func (l Locale) Prefix() string {
	return "/" + string(l)
}

// Match picks the best supported locale for an Accept-Language header value.
func Match(acceptLanguage string) Locale {
	acceptLanguage = strings.TrimSpace(acceptLanguage)
	if acceptLanguage == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default
	}
	return Supported[index]
}
