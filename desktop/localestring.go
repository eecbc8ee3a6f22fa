package desktop

import (
	"fmt"
	"regexp"
)

var localeRegex = regexp.MustCompile(
	"([a-z]{2,})(?:_([A-Z]{2}))?(?:\\.[a-zA-Z0-9-]+)?(?:@(.+))?$",
)

// localeCandidates returns the locale suffixes to try for the requested locale, most specific
// first, as specified in [Localized values for keys].
// Locale has the following format: lang_COUNTRY.ENCODING@MODIFIER where _COUNTRY, .ENCODING, and
// @MODIFIER may be omitted. The encoding is never part of a candidate.
//
// [Localized values for keys]: https://specifications.freedesktop.org/desktop-entry-spec/1.5/localized-keys.html
func localeCandidates(locale string) []string {
	matches := localeRegex.FindStringSubmatch(locale)
	if matches == nil {
		return nil
	}

	lang := matches[1]
	country := matches[2]
	modifier := matches[3]

	checks := make([]string, 0, 4)

	if country != "" && modifier != "" {
		checks = append(checks, fmt.Sprintf("%s_%s@%s", lang, country, modifier))
	}

	if country != "" {
		checks = append(checks, fmt.Sprintf("%s_%s", lang, country))
	}

	if modifier != "" {
		checks = append(checks, fmt.Sprintf("%s@%s", lang, modifier))
	}

	return append(checks, lang)
}

// localized returns the unescaped translation of key for the given locale, e.g. Name[nl_BE]
// before Name[nl]. It reports false when no translation matches.
func (f *File) localized(key string, locale string) (string, bool) {
	for _, candidate := range localeCandidates(locale) {
		value, ok := f.Get(GroupDesktopEntry, key+"["+candidate+"]")
		if !ok || value == "" {
			continue
		}

		unescaped, err := UnescapeString(value)
		if err != nil {
			continue
		}

		return unescaped, true
	}

	return "", false
}
