package clienthints

import (
	"net/http"
	"strings"
)

// BrandVersion is a single (brand, version) pair from a brand list header.
type BrandVersion struct {
	Brand   string
	Version string
}

// ClientHints is the structured Client-Hint data for one request.
// The zero value means "no hints at all".
type ClientHints struct {
	// FullVersionList preserves the header's brand order, including generic
	// compatibility brands.
	FullVersionList []BrandVersion

	// UAFullVersion is the browser's full version from Sec-CH-UA-Full-Version,
	// empty when the header is absent.
	UAFullVersion string

	// App is the application identifier from X-Requested-With, empty for
	// plain browser traffic.
	App string

	// FormFactors lists the lower-cased Sec-CH-UA-Form-Factors tags.
	FormFactors []string
}

// Empty reports whether no usable hint data is present.
func (h *ClientHints) Empty() bool {
	return h == nil ||
		(len(h.FullVersionList) == 0 && h.UAFullVersion == "" && h.App == "" && len(h.FormFactors) == 0)
}

// Parse extracts Client-Hint data from request headers. Headers that are
// absent or unparsable simply leave their field empty; Parse never fails.
func Parse(header http.Header) *ClientHints {
	hints := &ClientHints{}

	// The full-version list supersedes the low-entropy Sec-CH-UA brands.
	brandList := header.Get("Sec-CH-UA-Full-Version-List")
	if brandList == "" {
		brandList = header.Get("Sec-CH-UA")
	}
	hints.FullVersionList = parseBrandList(brandList)

	hints.UAFullVersion = unquote(header.Get("Sec-CH-UA-Full-Version"))

	if app := strings.TrimSpace(header.Get("X-Requested-With")); app != "" {
		// Ajax requests carry the literal "XMLHttpRequest"; that is not an app.
		if !strings.EqualFold(app, "xmlhttprequest") {
			hints.App = app
		}
	}

	for _, item := range splitList(header.Get("Sec-CH-UA-Form-Factors")) {
		if tag := strings.ToLower(unquote(item)); tag != "" {
			hints.FormFactors = append(hints.FormFactors, tag)
		}
	}

	return hints
}

// parseBrandList parses a structured-field brand list such as
//
//	" Not A;Brand";v="99", "Chromium";v="96", "Google Chrome";v="96"
//
// into ordered pairs. Items that carry no quoted brand are skipped.
func parseBrandList(value string) []BrandVersion {
	items := splitList(value)
	if len(items) == 0 {
		return nil
	}

	pairs := make([]BrandVersion, 0, len(items))
	for _, item := range items {
		brand, params, found := strings.Cut(item, `";`)
		if found {
			brand += `"` // restore the closing quote consumed by the cut
		}
		brand = unquote(strings.TrimSpace(brand))
		if brand == "" {
			continue
		}

		var version string
		for _, param := range strings.Split(params, ";") {
			key, val, ok := strings.Cut(strings.TrimSpace(param), "=")
			if ok && strings.EqualFold(strings.TrimSpace(key), "v") {
				version = unquote(strings.TrimSpace(val))
				break
			}
		}

		pairs = append(pairs, BrandVersion{Brand: strings.TrimSpace(brand), Version: version})
	}

	if len(pairs) == 0 {
		return nil
	}
	return pairs
}

// splitList splits a header value on commas that sit outside quoted strings.
func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	var (
		items    []string
		start    int
		inQuotes bool
	)
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case '"':
			inQuotes = !inQuotes
		case '\\':
			if inQuotes {
				i++ // skip the escaped byte
			}
		case ',':
			if !inQuotes {
				if item := strings.TrimSpace(value[start:i]); item != "" {
					items = append(items, item)
				}
				start = i + 1
			}
		}
	}
	if item := strings.TrimSpace(value[start:]); item != "" {
		items = append(items, item)
	}
	return items
}

// unquote strips one layer of double quotes and resolves backslash escapes.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s
	}
	s = s[1 : len(s)-1]
	if !strings.Contains(s, `\`) {
		return strings.TrimSpace(s)
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return strings.TrimSpace(b.String())
}
