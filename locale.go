package numwords

import (
	"strings"

	"golang.org/x/text/language"
)

// normalizeLocale replaces underscores with hyphens and trims whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

// canonicalLanguage returns the canonical BCP 47 form of code ("EN_gb" ->
// "en-GB"). Codes x/text cannot parse are lowercased and kept as-is so
// private registrations still resolve.
func canonicalLanguage(code string) Language {
	normalized := normalizeLocale(code)
	if normalized == "" {
		return ""
	}

	tag, err := language.Parse(normalized)
	if err != nil || tag == language.Und {
		return Language(strings.ToLower(normalized))
	}
	return Language(tag.String())
}

func localeParentTag(locale string) string {
	if locale == "" {
		return ""
	}

	tag, err := language.Parse(locale)
	if err == nil {
		parent := tag.Parent()
		if parent == language.Und {
			return ""
		}
		value := parent.String()
		if value == "" || value == "und" {
			return ""
		}
		return value
	}

	if idx := strings.LastIndex(locale, "-"); idx > 0 {
		return locale[:idx]
	}

	return ""
}

// localeParentChain returns the parents of locale from closest to root,
// e.g. "en-GB" -> ["en-001", "en"].
func localeParentChain(locale string) []string {
	if locale == "" {
		return nil
	}

	var chain []string
	seen := make(map[string]struct{}, 4)

	if tag, err := language.Parse(locale); err == nil {
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			parentValue := parent.String()
			if parentValue == "" || parentValue == "und" {
				break
			}
			if _, exists := seen[parentValue]; exists {
				break
			}
			seen[parentValue] = struct{}{}
			chain = append(chain, parentValue)
		}
	}

	for current := localeParentTag(locale); current != ""; current = localeParentTag(current) {
		if _, exists := seen[current]; exists {
			continue
		}
		seen[current] = struct{}{}
		chain = append(chain, current)
	}

	// tags x/text cannot parent (private use, unknown regions) still fall
	// back to their primary subtag
	if idx := strings.Index(locale, "-"); idx > 0 {
		base := locale[:idx]
		if _, exists := seen[base]; !exists {
			chain = append(chain, base)
		}
	}

	return chain
}
