package numwords

var frenchLexicon = Lexicon{
	Ones: [10]string{
		"", "un", "deux", "trois", "quatre",
		"cinq", "six", "sept", "huit", "neuf",
	},
	Teens: [10]string{
		"dix", "onze", "douze", "treize", "quatorze",
		"quinze", "seize", "dix-sept", "dix-huit", "dix-neuf",
	},
	Tens: [10]string{
		"", "dix", "vingt", "trente", "quarante",
		"cinquante", "soixante", "soixante-dix", "quatre-vingt", "quatre-vingt-dix",
	},
	Scales:   []string{"", "mille", "million", "milliard", "billion"},
	Zero:     "zéro",
	Negative: "moins",
	Point:    "virgule",
	Hundred:  "cent",
}

const (
	frenchPlural = "s"
	frenchAnd    = " et "
)

type frenchConverter struct {
	lex Lexicon
}

var _ IntegerConverter = &frenchConverter{}

// FrenchModule returns the French lexicon and converter.
//
// 70-79 and 90-99 continue the teens after "soixante" and "quatre-vingt".
// "quatre-vingts" and "cents" take their plural -s only when nothing follows.
// "mille" is invariant and never preceded by "un"; larger scale words are
// pluralised when the quotient is above one.
func FrenchModule() Module {
	return Module{
		Code:      French,
		Name:      "Français",
		Lexicon:   frenchLexicon.Clone(),
		Converter: &frenchConverter{lex: frenchLexicon.Clone()},
	}
}

func (c *frenchConverter) ConvertInteger(n uint64) (string, error) {
	lex := &c.lex

	switch {
	case n == 0:
		return lex.Zero, nil
	case n < 10:
		return lex.Ones[n], nil
	case n < 20:
		return lex.Teens[n-10], nil
	case n < 60:
		tens, ones := n/10, n%10
		switch {
		case ones == 0:
			return lex.Tens[tens], nil
		case ones == 1:
			return lex.Tens[tens] + frenchAnd + lex.Ones[1], nil
		default:
			return lex.Tens[tens] + "-" + lex.Ones[ones], nil
		}
	case n < 80:
		return c.continued(lex.Tens[6], n-60, true), nil
	case n == 80:
		return lex.Tens[8] + frenchPlural, nil
	case n < 100:
		return c.continued(lex.Tens[8], n-80, false), nil
	case n < 1000:
		return c.hundreds(n)
	case n < 2000:
		return c.join(lex.Scales[1], n%1000)
	case n < 1_000_000:
		thousands, err := c.ConvertInteger(n / 1000)
		if err != nil {
			return "", err
		}
		return c.join(thousands+" "+lex.Scales[1], n%1000)
	}

	return groupScales(n, len(lex.Scales), " ", c.scaleHead, c.ConvertInteger)
}

// continued spells base followed by 0..19, the teens continuing the base
// instead of a tens word ("soixante-douze", "quatre-vingt-dix-neuf").
func (c *frenchConverter) continued(base string, rest uint64, withEt bool) string {
	switch {
	case rest == 0:
		return base
	case rest == 1 && withEt:
		return base + frenchAnd + c.lex.Ones[1]
	case rest < 10:
		return base + "-" + c.lex.Ones[rest]
	default:
		return base + "-" + c.lex.Teens[rest-10]
	}
}

func (c *frenchConverter) hundreds(n uint64) (string, error) {
	digit, rest := n/100, n%100

	words := c.lex.Hundred
	if digit > 1 {
		words = c.lex.Ones[digit] + " " + c.lex.Hundred
		if rest == 0 {
			words += frenchPlural
		}
	}

	return c.join(words, rest)
}

func (c *frenchConverter) join(head string, rest uint64) (string, error) {
	if rest == 0 {
		return head, nil
	}
	tail, err := c.ConvertInteger(rest)
	if err != nil {
		return "", err
	}
	return head + " " + tail, nil
}

func (c *frenchConverter) scaleHead(g scaleGroup) (string, error) {
	scale := c.lex.Scales[g.Index]
	if g.Index == 1 {
		if g.Quotient == 1 {
			return scale, nil
		}
	} else if g.Quotient > 1 {
		scale += frenchPlural
	}

	quotient, err := c.ConvertInteger(g.Quotient)
	if err != nil {
		return "", err
	}
	return quotient + " " + scale, nil
}
