package numwords

import (
	"fmt"
	"strings"
)

// Lexicon holds the fixed word tables of one language.
//
// Ones[0] is empty: zero is never spelled inside a compound number. Tens
// indexes 0 and 1 are unused by most languages. Scales[0] is empty and
// Scales[i] names 1000^i.
type Lexicon struct {
	Ones  [10]string
	Teens [10]string
	Tens  [10]string

	// Hundreds optionally lists irregular hundred words indexed by the
	// hundreds digit. When empty, hundreds are built from Ones and Hundred.
	Hundreds []string
	Scales   []string

	Zero     string
	Negative string
	Point    string
	Hundred  string
}

// Validate reports table invariant violations wrapped in ErrInvalidLexicon.
func (l Lexicon) Validate() error {
	if l.Ones[0] != "" {
		return fmt.Errorf("%w: ones[0] must be empty", ErrInvalidLexicon)
	}
	for i := 1; i < len(l.Ones); i++ {
		if l.Ones[i] == "" {
			return fmt.Errorf("%w: ones[%d] is empty", ErrInvalidLexicon, i)
		}
	}
	for i, word := range l.Teens {
		if word == "" {
			return fmt.Errorf("%w: teens[%d] is empty", ErrInvalidLexicon, i)
		}
	}
	for i := 2; i < len(l.Tens); i++ {
		if l.Tens[i] == "" {
			return fmt.Errorf("%w: tens[%d] is empty", ErrInvalidLexicon, i)
		}
	}

	switch len(l.Hundreds) {
	case 0:
		if l.Hundred == "" {
			return fmt.Errorf("%w: hundred word required without a hundreds table", ErrInvalidLexicon)
		}
	case len(l.Ones):
		for i := 1; i < len(l.Hundreds); i++ {
			if l.Hundreds[i] == "" {
				return fmt.Errorf("%w: hundreds[%d] is empty", ErrInvalidLexicon, i)
			}
		}
	default:
		return fmt.Errorf("%w: hundreds must have %d entries, got %d", ErrInvalidLexicon, len(l.Ones), len(l.Hundreds))
	}

	if len(l.Scales) < 2 {
		return fmt.Errorf("%w: at least one scale word is required", ErrInvalidLexicon)
	}
	if l.Scales[0] != "" {
		return fmt.Errorf("%w: scales[0] must be empty", ErrInvalidLexicon)
	}
	if len(l.Scales) > maxScales {
		return fmt.Errorf("%w: at most %d scales are supported", ErrInvalidLexicon, maxScales-1)
	}
	for i := 1; i < len(l.Scales); i++ {
		if l.Scales[i] == "" {
			return fmt.Errorf("%w: scales[%d] is empty", ErrInvalidLexicon, i)
		}
	}

	tokens := map[string]string{
		"zero":     l.Zero,
		"negative": l.Negative,
		"point":    l.Point,
	}
	for name, value := range tokens {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s word is empty", ErrInvalidLexicon, name)
		}
	}

	return nil
}

// Digit returns the word read for a single decimal digit. Unlike Ones, zero
// is spelled with the zero word.
func (l Lexicon) Digit(d int) string {
	if d <= 0 || d >= len(l.Ones) {
		return l.Zero
	}
	return l.Ones[d]
}

// Clone returns a copy that shares no slices with l.
func (l Lexicon) Clone() Lexicon {
	out := l
	if l.Hundreds != nil {
		out.Hundreds = append([]string(nil), l.Hundreds...)
	}
	if l.Scales != nil {
		out.Scales = append([]string(nil), l.Scales...)
	}
	return out
}

// Words lists every non-empty entry of the lexicon, tables first then the fixed tokens.
func (l Lexicon) Words() []string {
	out := make([]string, 0, 48)
	add := func(words ...string) {
		for _, w := range words {
			if w != "" {
				out = append(out, w)
			}
		}
	}
	add(l.Ones[:]...)
	add(l.Teens[:]...)
	add(l.Tens[:]...)
	add(l.Hundreds...)
	add(l.Scales...)
	add(l.Zero, l.Negative, l.Point, l.Hundred)
	return out
}
