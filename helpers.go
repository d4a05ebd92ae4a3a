package numwords

import (
	"fmt"

	"github.com/govalues/decimal"
)

// HelperConfig configures template helper exports
type HelperConfig struct {
	// LanguageKey is the data map key read by spell_number_ctx. Defaults to "Language".
	LanguageKey string
	// OnError renders a failed conversion. Nil renders an empty string.
	OnError func(lang Language, value any, err error) string
}

// TemplateHelpers exposes the converter as text/template and html/template funcs:
//
//	spell_number "fr" 42        -> "quarante-deux"
//	spell_number_default 42     -> words in the converter's default language
//	spell_number_ctx . 42       -> language taken from .Language (or LanguageKey)
//	spell_languages             -> registered language codes
func TemplateHelpers(c *Converter, cfg HelperConfig) map[string]any {
	if c == nil {
		c = defaultConverter()
	}
	if cfg.LanguageKey == "" {
		cfg.LanguageKey = "Language"
	}

	spell := func(lang Language, value any) string {
		words, err := c.spellValue(lang, value)
		if err != nil {
			if cfg.OnError != nil {
				return cfg.OnError(lang, value, err)
			}
			return ""
		}
		return words
	}

	return map[string]any{
		"spell_number": func(lang string, value any) string {
			return spell(Language(lang), value)
		},
		"spell_number_default": func(value any) string {
			return spell(c.defaultLanguage, value)
		},
		"spell_number_ctx": func(data any, value any) string {
			return spell(languageFromData(data, cfg.LanguageKey, c.defaultLanguage), value)
		},
		"spell_languages": func() []string {
			languages := c.registry.Languages()
			out := make([]string, len(languages))
			for i, lang := range languages {
				out[i] = string(lang)
			}
			return out
		},
	}
}

// spellValue converts the numeric kinds templates commonly carry.
func (c *Converter) spellValue(lang Language, value any) (string, error) {
	opts := []ConvertOption{WithLanguage(lang)}

	var (
		result ConversionResult
		err    error
	)

	switch v := value.(type) {
	case float64:
		result, err = c.Convert(v, opts...)
	case float32:
		result, err = c.Convert(float64(v), opts...)
	case int:
		result, err = c.ConvertDecimal(decimal.MustNew(int64(v), 0), opts...)
	case int32:
		result, err = c.ConvertDecimal(decimal.MustNew(int64(v), 0), opts...)
	case int64:
		result, err = c.ConvertDecimal(decimal.MustNew(v, 0), opts...)
	case uint:
		result, err = c.ConvertString(fmt.Sprint(v), opts...)
	case uint32:
		result, err = c.ConvertDecimal(decimal.MustNew(int64(v), 0), opts...)
	case uint64:
		result, err = c.ConvertString(fmt.Sprint(v), opts...)
	case decimal.Decimal:
		result, err = c.ConvertDecimal(v, opts...)
	case string:
		result, err = c.ConvertString(v, opts...)
	case fmt.Stringer:
		result, err = c.ConvertString(v.String(), opts...)
	default:
		return "", fmt.Errorf("%w: unsupported type %T", ErrInvalidInput, value)
	}

	if err != nil {
		return "", err
	}
	return result.Words, nil
}

func languageFromData(data any, key string, fallback Language) Language {
	switch v := data.(type) {
	case Language:
		if v != "" {
			return v
		}
	case string:
		if v != "" {
			return Language(v)
		}
	case map[string]any:
		if raw, ok := v[key]; ok {
			switch lang := raw.(type) {
			case string:
				if lang != "" {
					return Language(lang)
				}
			case Language:
				if lang != "" {
					return lang
				}
			}
		}
	case map[string]string:
		if lang := v[key]; lang != "" {
			return Language(lang)
		}
	}
	return fallback
}
