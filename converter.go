package numwords

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/govalues/decimal"
)

// metadataModule records the module code a request resolved to.
const metadataModule = "numwords.module"

// ConvertOptions tunes a single conversion.
type ConvertOptions struct {
	Language Language
}

// ConvertOption mutates ConvertOptions
type ConvertOption func(*ConvertOptions)

// WithLanguage selects the output language. An empty code keeps the
// converter's default.
func WithLanguage(lang Language) ConvertOption {
	return func(o *ConvertOptions) {
		if lang != "" {
			o.Language = lang
		}
	}
}

// Converter validates numbers, handles sign and fractional digits, and
// delegates integers to the registered language modules.
type Converter struct {
	registry        *Registry
	defaultLanguage Language
	hooks           []ConversionHook
}

// ConverterOption configures NewConverter
type ConverterOption func(*Converter)

// WithConverterDefaultLanguage sets the language used when a call names none.
func WithConverterDefaultLanguage(lang Language) ConverterOption {
	return func(c *Converter) {
		if lang != "" {
			c.defaultLanguage = lang
		}
	}
}

// WithConverterHooks installs conversion hooks, run in order.
func WithConverterHooks(hooks ...ConversionHook) ConverterOption {
	return func(c *Converter) {
		c.hooks = append(c.hooks, hooks...)
	}
}

// NewConverter returns a converter backed by registry, or by the default
// registry when registry is nil.
func NewConverter(registry *Registry, opts ...ConverterOption) *Converter {
	if registry == nil {
		registry = DefaultRegistry()
	}

	c := &Converter{
		registry:        registry,
		defaultLanguage: DefaultLanguage,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(c)
	}
	c.hooks = filterHooks(c.hooks)

	return c
}

// Registry returns the registry the converter dispatches to.
func (c *Converter) Registry() *Registry {
	return c.registry
}

// DefaultLanguage returns the language used when a call names none.
func (c *Converter) DefaultLanguage() Language {
	return c.defaultLanguage
}

// Convert spells number in the selected language.
func (c *Converter) Convert(number float64, opts ...ConvertOption) (ConversionResult, error) {
	ctx := &HookContext{
		Language: c.language(opts),
		Number:   number,
	}

	return c.run(ctx, func(ctx *HookContext) (string, error) {
		return c.convertFloat(ctx, number)
	})
}

// ConvertDecimal spells an exact decimal. The written scale is kept, so
// 1.50 reads its trailing zero.
func (c *Converter) ConvertDecimal(value decimal.Decimal, opts ...ConvertOption) (ConversionResult, error) {
	input := value.String()
	number, _ := strconv.ParseFloat(input, 64)

	ctx := &HookContext{
		Language: c.language(opts),
		Number:   number,
		Input:    input,
	}

	return c.run(ctx, func(ctx *HookContext) (string, error) {
		return c.convertDecimal(ctx, value)
	})
}

// ConvertString parses s as a decimal literal ("-12.50") and spells it
// exactly. Parse failures are reported as ErrInvalidInput.
func (c *Converter) ConvertString(s string, opts ...ConvertOption) (ConversionResult, error) {
	value, err := decimal.Parse(strings.TrimSpace(s))
	if err != nil {
		return ConversionResult{}, fmt.Errorf("%w: %q: %v", ErrInvalidInput, s, err)
	}
	return c.ConvertDecimal(value, opts...)
}

func (c *Converter) language(opts []ConvertOption) Language {
	options := ConvertOptions{Language: c.defaultLanguage}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&options)
	}
	if options.Language == "" {
		options.Language = DefaultLanguage
	}
	return options.Language
}

func (c *Converter) run(ctx *HookContext, convert func(*HookContext) (string, error)) (ConversionResult, error) {
	for _, hook := range c.hooks {
		hook.BeforeConvert(ctx)
	}

	ctx.Result, ctx.Error = convert(ctx)

	for _, hook := range c.hooks {
		hook.AfterConvert(ctx)
	}

	if ctx.Error != nil {
		return ConversionResult{}, ctx.Error
	}

	lang := ctx.Language
	if resolved, ok := ctx.MetadataValue(metadataModule); ok {
		if code, okCast := resolved.(Language); okCast {
			lang = code
		}
	}

	return ConversionResult{
		Words:    ctx.Result,
		Language: lang,
		Number:   ctx.Number,
	}, nil
}

func (c *Converter) convertFloat(ctx *HookContext, number float64) (string, error) {
	if math.IsNaN(number) || math.IsInf(number, 0) {
		return "", ErrInvalidInput
	}
	if math.Abs(number) > MaxSafeNumber {
		return "", magnitudeError()
	}

	module, err := c.module(ctx)
	if err != nil {
		return "", err
	}

	if number == 0 {
		return module.Lexicon.Zero, nil
	}

	abs, err := decimal.NewFromFloat64(math.Abs(number))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return spell(module, abs.Trim(0), number < 0)
}

func (c *Converter) convertDecimal(ctx *HookContext, value decimal.Decimal) (string, error) {
	abs := value.Abs()
	if abs.Cmp(maxSafeDecimal) > 0 {
		return "", magnitudeError()
	}

	module, err := c.module(ctx)
	if err != nil {
		return "", err
	}

	if value.IsZero() {
		return module.Lexicon.Zero, nil
	}

	return spell(module, abs, value.IsNeg())
}

func (c *Converter) module(ctx *HookContext) (Module, error) {
	module, err := c.registry.lookup(ctx.Language)
	if err != nil {
		return Module{}, err
	}
	ctx.SetMetadata(metadataModule, module.Code)
	return module, nil
}

var maxSafeDecimal = decimal.MustNew(MaxSafeNumber, 0)

func magnitudeError() error {
	return fmt.Errorf("%w: maximum supported is %d", ErrMagnitudeExceeded, MaxSafeNumber)
}

// spell renders a non-zero absolute value from its fixed-point digits: the
// integer part through the module converter, then the point word and each
// fractional digit on its own. The sign prefixes the whole phrase once.
func spell(module Module, abs decimal.Decimal, negative bool) (string, error) {
	lex := module.Lexicon
	whole, frac, _ := strings.Cut(abs.String(), ".")

	n, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if capacity := lexiconCapacity(len(lex.Scales)); n > capacity {
		return "", fmt.Errorf("%w: %s spells at most %d", ErrMagnitudeExceeded, module.Code, capacity)
	}

	words := lex.Zero
	if n > 0 {
		words, err = module.Converter.ConvertInteger(n)
		if err != nil {
			return "", err
		}
		if words == "" {
			return "", fmt.Errorf("%w: %s converter produced no words for %d", ErrInvalidLexicon, module.Code, n)
		}
	}

	var b strings.Builder
	b.Grow(len(words) + len(frac)*8 + 16)

	if negative {
		b.WriteString(lex.Negative)
		b.WriteByte(' ')
	}
	b.WriteString(words)

	if frac != "" {
		b.WriteByte(' ')
		b.WriteString(lex.Point)
		for i := 0; i < len(frac); i++ {
			b.WriteByte(' ')
			b.WriteString(lex.Digit(int(frac[i] - '0')))
		}
	}

	return b.String(), nil
}

var defaultConverter = sync.OnceValue(func() *Converter {
	return NewConverter(DefaultRegistry())
})

// Convert spells number with the default registry. English is used unless
// WithLanguage says otherwise.
func Convert(number float64, opts ...ConvertOption) (ConversionResult, error) {
	return defaultConverter().Convert(number, opts...)
}

// ToWords returns only the words of Convert. The optional lang defaults to English.
func ToWords(number float64, lang ...Language) (string, error) {
	selected := DefaultLanguage
	if len(lang) > 0 && lang[0] != "" {
		selected = lang[0]
	}

	result, err := Convert(number, WithLanguage(selected))
	if err != nil {
		return "", err
	}
	return result.Words, nil
}

func ToEnglish(number float64) (string, error) {
	return ToWords(number, English)
}

func ToFrench(number float64) (string, error) {
	return ToWords(number, French)
}

func ToArabic(number float64) (string, error) {
	return ToWords(number, Arabic)
}

func ToSpanish(number float64) (string, error) {
	return ToWords(number, Spanish)
}
