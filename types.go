package numwords

// Language identifies a registered lexicon/converter pair by its BCP 47 code.
type Language string

const (
	English Language = "en"
	French  Language = "fr"
	Arabic  Language = "ar"
	Spanish Language = "es"
)

// DefaultLanguage is used when no language option is supplied.
const DefaultLanguage = English

// MaxSafeNumber is the largest absolute value accepted by Convert.
const MaxSafeNumber = 999_999_999_999_999

func (l Language) String() string {
	return string(l)
}

// ConversionResult is the immutable outcome of a conversion.
type ConversionResult struct {
	Words    string
	Language Language
	Number   float64
}

// IntegerConverter spells a non-negative integer using one language's rules.
// Implementations must be safe for concurrent use and must not return empty
// text for a nil error.
type IntegerConverter interface {
	ConvertInteger(n uint64) (string, error)
}

// IntegerConverterFunc adapts a bare function to IntegerConverter
type IntegerConverterFunc func(n uint64) (string, error)

// ConvertInteger implements IntegerConverter for IntegerConverterFunc
func (fn IntegerConverterFunc) ConvertInteger(n uint64) (string, error) {
	return fn(n)
}

// Module pairs a language code with its lexicon and integer converter.
type Module struct {
	Code      Language
	Name      string
	Lexicon   Lexicon
	Converter IntegerConverter
}

func (m Module) clone() Module {
	out := m
	out.Lexicon = m.Lexicon.Clone()
	return out
}
