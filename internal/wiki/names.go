package wiki

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	appendixPrefix        = "APPENDIX"
	appendixSectionPrefix = "APPENDICES"
)

// Encode converts a display name into its on-disk wiki form.
// Literal hyphens are protected as %2D before spaces take over the hyphen.
func Encode(name string) string {
	encoded := url.QueryEscape(name)
	encoded = strings.ReplaceAll(encoded, "-", "%2D")
	return strings.ReplaceAll(encoded, "+", "-")
}

// Decode converts an on-disk wiki name back into its display form.
// If the name holds a malformed escape, the hyphen-substituted name is returned.
func Decode(name string) string {
	spaced := strings.ReplaceAll(name, "-", " ")
	decoded, err := url.QueryUnescape(spaced)
	if err != nil {
		return spaced
	}
	return decoded
}

// FixupPath repairs a filesystem path that went through Encode: the drive
// colon, percent signs and path separators are restored.
func FixupPath(value string) string {
	if len(value) >= 4 && strings.HasPrefix(value[1:], "%3A") {
		value = value[:1] + ":" + value[4:]
	}
	value = strings.ReplaceAll(value, "%25", "%")
	value = strings.ReplaceAll(value, "%5C", `\`)
	return strings.ReplaceAll(value, "%2F", "/")
}

// IsAppendix reports whether the name is an appendix page.
func IsAppendix(name string) bool {
	return strings.HasPrefix(strings.ToUpper(name), appendixPrefix)
}

// IsAppendixSection reports whether the name is a section holding appendices.
func IsAppendixSection(name string) bool {
	return strings.HasPrefix(strings.ToUpper(name), appendixSectionPrefix)
}

// AppendixName strips the "Appendix" prefix and any single character label
// such as "A:" or "1 -" from an appendix name. Other names are returned
// unchanged, as is any appendix name that ends on the prefix, a separator or
// a lone label.
func AppendixName(name string) string {
	if !IsAppendix(name) {
		return name
	}

	i := len(appendixPrefix)
	for {
		for i < len(name) && isSeparator(name[i]) {
			i++
		}
		if i >= len(name) {
			return name
		}

		r, size := utf8.DecodeRuneInString(name[i:])
		next := i + size
		if isAlphaNumeric(r) && next >= len(name) {
			return name
		}
		if isAlphaNumeric(r) && isSeparator(name[next]) {
			// Single character label, absorb it with its separators.
			i = next
			continue
		}
		return name[i:]
	}
}

func isSeparator(c byte) bool {
	return c == ' ' || c == ':' || c == '-'
}

func isAlphaNumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
