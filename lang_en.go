package numwords

var englishLexicon = Lexicon{
	Ones: [10]string{
		"", "one", "two", "three", "four",
		"five", "six", "seven", "eight", "nine",
	},
	Teens: [10]string{
		"ten", "eleven", "twelve", "thirteen", "fourteen",
		"fifteen", "sixteen", "seventeen", "eighteen", "nineteen",
	},
	Tens: [10]string{
		"", "", "twenty", "thirty", "forty",
		"fifty", "sixty", "seventy", "eighty", "ninety",
	},
	Scales:   []string{"", "thousand", "million", "billion", "trillion"},
	Zero:     "zero",
	Negative: "negative",
	Point:    "point",
	Hundred:  "hundred",
}

// EnglishModule returns the English lexicon bound to the regular converter.
// Scale words are invariant and "one" is kept before "hundred".
func EnglishModule() Module {
	return Module{
		Code:      English,
		Name:      "English",
		Lexicon:   englishLexicon.Clone(),
		Converter: NewRegularConverter(englishLexicon, DefaultRules()),
	}
}
