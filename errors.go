package numwords

import "errors"

// ErrInvalidInput indicates the value is not a finite number (NaN, ±Inf, unparsable text).
var ErrInvalidInput = errors.New("numwords: input must be a finite number")

// ErrMagnitudeExceeded indicates the value is larger than the supported maximum.
var ErrMagnitudeExceeded = errors.New("numwords: number too large")

// ErrUnsupportedLanguage indicates no module is registered for the requested language.
var ErrUnsupportedLanguage = errors.New("numwords: unsupported language")

// ErrInvalidLexicon marks lexicon tables that break the table invariants
var ErrInvalidLexicon = errors.New("numwords: invalid lexicon")
