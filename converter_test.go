package numwords

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertDefaultsToEnglish(t *testing.T) {
	result, err := Convert(42)
	require.NoError(t, err)

	assert.Equal(t, "forty-two", result.Words)
	assert.Equal(t, English, result.Language)
	assert.Equal(t, 42.0, result.Number)

	words, err := ToWords(42)
	require.NoError(t, err)
	assert.Equal(t, result.Words, words)
}

func TestToWordsScenarios(t *testing.T) {
	cases := []struct {
		lang   Language
		number float64
		want   string
	}{
		{English, 0, "zero"},
		{English, 42, "forty-two"},
		{English, 123, "one hundred twenty-three"},
		{English, 1234, "one thousand two hundred thirty-four"},
		{English, -567, "negative five hundred sixty-seven"},
		{English, 1_000_000, "one million"},
		{English, 3.14, "three point one four"},
		{English, 0.5, "zero point five"},
		{English, -0.25, "negative zero point two five"},
		{English, 1.05, "one point zero five"},
		{French, 70, "soixante-dix"},
		{French, 80, "quatre-vingts"},
		{French, 81, "quatre-vingt-un"},
		{French, 90, "quatre-vingt-dix"},
		{French, 200, "deux cents"},
		{French, 201, "deux cent un"},
		{French, 1000, "mille"},
		{French, 2_000_000, "deux millions"},
		{French, -42, "moins quarante-deux"},
		{French, 12.5, "douze virgule cinq"},
		{Arabic, 1000, "ألف"},
		{Arabic, 2000, "ألفان"},
		{Arabic, 1_000_000, "مليون"},
		{Arabic, 2_000_000, "مليونان"},
		{Arabic, 200, "مئتان"},
		{Arabic, -42, "سالب اثنان وأربعون"},
		{Arabic, 3.14, "ثلاثة فاصلة واحد أربعة"},
		{Spanish, 21, "veintiuno"},
		{Spanish, 100, "cien"},
		{Spanish, 101, "ciento uno"},
		{Spanish, 1_000_000, "un millón"},
		{Spanish, 0.5, "cero coma cinco"},
	}

	for _, tc := range cases {
		got, err := ToWords(tc.number, tc.lang)
		require.NoError(t, err, "%s %v", tc.lang, tc.number)
		assert.Equal(t, tc.want, got, "%s %v", tc.lang, tc.number)
	}
}

func TestLanguageShortcuts(t *testing.T) {
	for lang, fn := range map[Language]func(float64) (string, error){
		English: ToEnglish,
		French:  ToFrench,
		Arabic:  ToArabic,
		Spanish: ToSpanish,
	} {
		want, err := ToWords(42, lang)
		require.NoError(t, err)

		got, err := fn(42)
		require.NoError(t, err)
		assert.Equal(t, want, got, lang)
	}
}

func TestConvertRejectsNonFinite(t *testing.T) {
	for _, number := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Convert(number)
		assert.ErrorIs(t, err, ErrInvalidInput, number)
	}

	// validation precedes language dispatch
	_, err := Convert(math.NaN(), WithLanguage("xx"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestConvertMagnitudeBoundary(t *testing.T) {
	for _, lang := range []Language{English, French, Arabic, Spanish} {
		words, err := ToWords(MaxSafeNumber, lang)
		require.NoError(t, err, lang)
		assert.NotEmpty(t, words, lang)

		_, err = ToWords(MaxSafeNumber+1, lang)
		require.ErrorIs(t, err, ErrMagnitudeExceeded, lang)
		assert.Contains(t, err.Error(), "999999999999999")

		_, err = ToWords(-(MaxSafeNumber + 1), lang)
		assert.ErrorIs(t, err, ErrMagnitudeExceeded, lang)
	}

	_, err := Convert(10e15)
	assert.ErrorIs(t, err, ErrMagnitudeExceeded)
}

func TestConvertUnsupportedLanguage(t *testing.T) {
	_, err := Convert(42, WithLanguage("de"))
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)

	_, err = ToWords(0, "zz-ZZ")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestConvertRegionalTagUsesBaseLanguage(t *testing.T) {
	result, err := Convert(80, WithLanguage("fr-CA"))
	require.NoError(t, err)
	assert.Equal(t, "quatre-vingts", result.Words)
	assert.Equal(t, French, result.Language)

	result, err = Convert(21, WithLanguage("es_419"))
	require.NoError(t, err)
	assert.Equal(t, "veintiuno", result.Words)
}

func TestConvertNegativeZero(t *testing.T) {
	for _, module := range BuiltinModules() {
		words, err := ToWords(math.Copysign(0, -1), module.Code)
		require.NoError(t, err)
		assert.Equal(t, module.Lexicon.Zero, words)
	}
}

func TestConvertDecimalKeepsScale(t *testing.T) {
	converter := NewConverter(nil)

	result, err := converter.ConvertDecimal(decimal.MustNew(150, 2))
	require.NoError(t, err)
	assert.Equal(t, "one point five zero", result.Words)
	assert.Equal(t, 1.5, result.Number)

	result, err = converter.ConvertString(" -12.50 ", WithLanguage(French))
	require.NoError(t, err)
	assert.Equal(t, "moins douze virgule cinq zéro", result.Words)

	result, err = converter.ConvertString("-0.00", WithLanguage(Spanish))
	require.NoError(t, err)
	assert.Equal(t, "cero", result.Words)

	result, err = converter.ConvertString("0.07", WithLanguage(Arabic))
	require.NoError(t, err)
	assert.Equal(t, "صفر فاصلة صفر سبعة", result.Words)
}

func TestConvertStringErrors(t *testing.T) {
	converter := NewConverter(nil)

	_, err := converter.ConvertString("forty")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = converter.ConvertString("")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = converter.ConvertString("1000000000000000")
	assert.ErrorIs(t, err, ErrMagnitudeExceeded)

	_, err = converter.ConvertString("999999999999999.5")
	assert.ErrorIs(t, err, ErrMagnitudeExceeded)

	_, err = converter.ConvertString("12", WithLanguage("de"))
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestConverterDefaultLanguage(t *testing.T) {
	converter := NewConverter(nil, WithConverterDefaultLanguage(Spanish))
	assert.Equal(t, Spanish, converter.DefaultLanguage())

	result, err := converter.Convert(100)
	require.NoError(t, err)
	assert.Equal(t, "cien", result.Words)

	result, err = converter.Convert(100, WithLanguage(""))
	require.NoError(t, err)
	assert.Equal(t, "cien", result.Words)

	result, err = converter.Convert(100, WithLanguage(English))
	require.NoError(t, err)
	assert.Equal(t, "one hundred", result.Words)
}

func TestNegationProperty(t *testing.T) {
	for _, module := range BuiltinModules() {
		for n := 1; n <= 9999; n++ {
			positive, err := ToWords(float64(n), module.Code)
			require.NoError(t, err)

			negative, err := ToWords(float64(-n), module.Code)
			require.NoError(t, err)

			if negative != module.Lexicon.Negative+" "+positive {
				t.Fatalf("%s: -%d = %q, want negative prefix on %q", module.Code, n, negative, positive)
			}
		}
	}
}

var digitPattern = regexp.MustCompile(`[0-9]`)

func lexiconTokens(lex Lexicon) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, word := range lex.Words() {
		for _, token := range splitTokens(word) {
			tokens[token] = struct{}{}
		}
	}
	return tokens
}

// moduleTokens adds the words that live in a converter's rule tables
// rather than in its lexicon.
func moduleTokens(module Module) map[string]struct{} {
	tokens := lexiconTokens(module.Lexicon)

	var extra []string
	switch module.Code {
	case Arabic:
		extra = append(extra, arabicCounting[:]...)
		for _, forms := range arabicScales {
			extra = append(extra, forms.dual, forms.plural)
		}
	case Spanish:
		extra = append(extra, spanishVeinti[:]...)
		for _, forms := range spanishScales {
			extra = append(extra, forms.one, forms.plural)
		}
	}
	for _, word := range extra {
		for _, token := range splitTokens(word) {
			tokens[token] = struct{}{}
		}
	}
	return tokens
}

func splitTokens(words string) []string {
	return strings.FieldsFunc(words, func(r rune) bool {
		return r == ' ' || r == '-'
	})
}

func TestOutputUsesOnlyOwnLexicon(t *testing.T) {
	modules := BuiltinModules()
	own := make(map[Language]map[string]struct{}, len(modules))
	for _, module := range modules {
		own[module.Code] = moduleTokens(module)
	}

	for _, module := range modules {
		// tokens shared between languages ("six") are not foreign
		foreign := make(map[string]Language)
		for _, other := range modules {
			if other.Code == module.Code {
				continue
			}
			for token := range own[other.Code] {
				if _, shared := own[module.Code][token]; !shared {
					foreign[token] = other.Code
				}
			}
		}

		for n := 0; n <= 9999; n++ {
			words, err := ToWords(float64(n), module.Code)
			require.NoError(t, err)
			require.NotEmpty(t, words)

			if digitPattern.MatchString(words) {
				t.Fatalf("%s %d: output contains digits: %q", module.Code, n, words)
			}

			known := false
			for _, token := range splitTokens(words) {
				if from, ok := foreign[token]; ok {
					t.Fatalf("%s %d: token %q belongs to %s: %q", module.Code, n, token, from, words)
				}
				if _, ok := own[module.Code][token]; ok {
					known = true
				}
				if _, ok := own[module.Code][strings.TrimPrefix(token, "و")]; ok {
					known = true
				}
			}
			if !known {
				t.Fatalf("%s %d: no lexicon token in %q", module.Code, n, words)
			}
		}
	}
}

func TestConverterConcurrentUse(t *testing.T) {
	converter := NewConverter(nil)
	languages := []Language{English, French, Arabic, Spanish}

	want := make(map[string]string)
	for _, lang := range languages {
		for n := 0; n < 200; n++ {
			result, err := converter.Convert(float64(n*7919), WithLanguage(lang))
			require.NoError(t, err)
			want[fmt.Sprintf("%s/%d", lang, n)] = result.Words
		}
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(languages)*8)

	for worker := 0; worker < 8; worker++ {
		for _, lang := range languages {
			wg.Add(1)
			go func(lang Language) {
				defer wg.Done()
				for n := 0; n < 200; n++ {
					result, err := converter.Convert(float64(n*7919), WithLanguage(lang))
					if err != nil {
						errs <- err
						return
					}
					if expected := want[fmt.Sprintf("%s/%d", lang, n)]; result.Words != expected {
						errs <- fmt.Errorf("%s %d: got %q want %q", lang, n*7919, result.Words, expected)
						return
					}
				}
			}(lang)
		}
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func FuzzConvert(f *testing.F) {
	for _, seed := range []float64{0, 1, -1, 42, 0.5, 3.14, -1234.5678, 1e6, MaxSafeNumber, MaxSafeNumber + 1, 1e-7} {
		f.Add(seed, uint8(0))
	}

	languages := []Language{English, French, Arabic, Spanish}

	f.Fuzz(func(t *testing.T, number float64, pick uint8) {
		lang := languages[int(pick)%len(languages)]

		result, err := Convert(number, WithLanguage(lang))
		switch {
		case math.IsNaN(number) || math.IsInf(number, 0):
			require.ErrorIs(t, err, ErrInvalidInput)
		case math.Abs(number) > MaxSafeNumber:
			require.ErrorIs(t, err, ErrMagnitudeExceeded)
		default:
			require.NoError(t, err)
			require.NotEmpty(t, result.Words)
			require.False(t, digitPattern.MatchString(result.Words), result.Words)
		}
	})
}
