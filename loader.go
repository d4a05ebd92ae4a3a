package numwords

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Loader produces language modules from an external source.
type Loader interface {
	Load() ([]Module, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func() ([]Module, error)

func (fn LoaderFunc) Load() ([]Module, error) {
	return fn()
}

// FileLoader reads lexicon files (YAML or JSON, one language per file) and
// builds modules backed by the regular converter.
type FileLoader struct {
	paths []string
}

func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

func (l *FileLoader) Load() ([]Module, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("numwords: no lexicon paths configured")
	}

	modules := make([]Module, 0, len(l.paths))
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("numwords: read %s: %w", path, err)
		}

		module, err := DecodeLexiconFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("numwords: decode %s: %w", path, err)
		}
		modules = append(modules, module)
	}

	return modules, nil
}

// lexiconFile is the on-disk shape of a lexicon.
type lexiconFile struct {
	Code     string    `yaml:"code" json:"code"`
	Name     string    `yaml:"name" json:"name"`
	Ones     []string  `yaml:"ones" json:"ones"`
	Teens    []string  `yaml:"teens" json:"teens"`
	Tens     []string  `yaml:"tens" json:"tens"`
	Hundreds []string  `yaml:"hundreds" json:"hundreds"`
	Scales   []string  `yaml:"scales" json:"scales"`
	Zero     string    `yaml:"zero" json:"zero"`
	Negative string    `yaml:"negative" json:"negative"`
	Point    string    `yaml:"point" json:"point"`
	Hundred  string    `yaml:"hundred" json:"hundred"`
	Rules    rulesFile `yaml:"rules" json:"rules"`
}

type rulesFile struct {
	TensJoiner        *string `yaml:"tens_joiner" json:"tens_joiner"`
	HundredJoiner     *string `yaml:"hundred_joiner" json:"hundred_joiner"`
	ScaleJoiner       *string `yaml:"scale_joiner" json:"scale_joiner"`
	OmitOneHundred    bool    `yaml:"omit_one_hundred" json:"omit_one_hundred"`
	OmitOneThousand   bool    `yaml:"omit_one_thousand" json:"omit_one_thousand"`
	ScalePluralSuffix string  `yaml:"scale_plural_suffix" json:"scale_plural_suffix"`
	ScalePluralExempt []int   `yaml:"scale_plural_exempt" json:"scale_plural_exempt"`
}

// DecodeLexiconFile decodes a lexicon document, picking the format from the
// path extension, and returns a validated module.
func DecodeLexiconFile(path string, data []byte) (Module, error) {
	var raw lexiconFile

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return Module{}, fmt.Errorf("json parse error: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Module{}, fmt.Errorf("yaml parse error: %w", err)
		}
	default:
		return Module{}, fmt.Errorf("unsupported extension %s", ext)
	}

	return raw.module()
}

func (f lexiconFile) module() (Module, error) {
	code := canonicalLanguage(f.Code)
	if code == "" {
		return Module{}, fmt.Errorf("%w: missing code", ErrInvalidLexicon)
	}

	lex := Lexicon{
		Scales:   normalizeWords(f.Scales),
		Zero:     normalizeWord(f.Zero),
		Negative: normalizeWord(f.Negative),
		Point:    normalizeWord(f.Point),
		Hundred:  normalizeWord(f.Hundred),
	}
	if len(f.Hundreds) > 0 {
		lex.Hundreds = normalizeWords(f.Hundreds)
	}

	var err error
	if lex.Ones, err = decimalTable("ones", f.Ones); err != nil {
		return Module{}, err
	}
	if lex.Teens, err = decimalTable("teens", f.Teens); err != nil {
		return Module{}, err
	}
	if lex.Tens, err = decimalTable("tens", f.Tens); err != nil {
		return Module{}, err
	}

	if err := lex.Validate(); err != nil {
		return Module{}, fmt.Errorf("%s: %w", code, err)
	}

	return Module{
		Code:      code,
		Name:      normalizeWord(f.Name),
		Lexicon:   lex,
		Converter: NewRegularConverter(lex, f.Rules.rules()),
	}, nil
}

func (r rulesFile) rules() Rules {
	rules := DefaultRules()
	if r.TensJoiner != nil {
		rules.TensJoiner = norm.NFC.String(*r.TensJoiner)
	}
	if r.HundredJoiner != nil {
		rules.HundredJoiner = norm.NFC.String(*r.HundredJoiner)
	}
	if r.ScaleJoiner != nil {
		rules.ScaleJoiner = norm.NFC.String(*r.ScaleJoiner)
	}
	rules.OmitOneBeforeHundred = r.OmitOneHundred
	rules.OmitOneBeforeThousand = r.OmitOneThousand
	rules.ScalePluralSuffix = norm.NFC.String(r.ScalePluralSuffix)
	rules.ScalePluralExempt = append([]int(nil), r.ScalePluralExempt...)
	return rules
}

func decimalTable(field string, words []string) ([10]string, error) {
	var table [10]string
	if len(words) != len(table) {
		return table, fmt.Errorf("%w: %s needs %d entries, got %d", ErrInvalidLexicon, field, len(table), len(words))
	}
	for i, word := range words {
		table[i] = normalizeWord(word)
	}
	return table, nil
}

// normalizeWord trims and NFC-composes a lexicon token so file-provided
// words compare equal to the built-in tables.
func normalizeWord(word string) string {
	return norm.NFC.String(strings.TrimSpace(word))
}

func normalizeWords(words []string) []string {
	if words == nil {
		return nil
	}
	out := make([]string, len(words))
	for i, word := range words {
		out[i] = normalizeWord(word)
	}
	return out
}
