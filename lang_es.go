package numwords

var spanishLexicon = Lexicon{
	Ones: [10]string{
		"", "uno", "dos", "tres", "cuatro",
		"cinco", "seis", "siete", "ocho", "nueve",
	},
	Teens: [10]string{
		"diez", "once", "doce", "trece", "catorce",
		"quince", "dieciséis", "diecisiete", "dieciocho", "diecinueve",
	},
	Tens: [10]string{
		"", "", "veinte", "treinta", "cuarenta",
		"cincuenta", "sesenta", "setenta", "ochenta", "noventa",
	},
	Hundreds: []string{
		"", "ciento", "doscientos", "trescientos", "cuatrocientos",
		"quinientos", "seiscientos", "setecientos", "ochocientos", "novecientos",
	},
	Scales:   []string{"", "mil", "millón", "mil millones", "billón"},
	Zero:     "cero",
	Negative: "menos",
	Point:    "coma",
	Hundred:  "cien",
}

// spanishVeinti holds the fused 20-29 forms, indexed by n-20.
var spanishVeinti = [10]string{
	"veinte", "veintiuno", "veintidós", "veintitrés", "veinticuatro",
	"veinticinco", "veintiséis", "veintisiete", "veintiocho", "veintinueve",
}

type spanishScaleForms struct {
	// one is spelled before the scale word at quotient 1; empty means bare.
	one string
	// plural replaces the scale word above quotient 1; empty means invariant.
	plural string
}

var spanishScales = map[int]spanishScaleForms{
	1: {},
	2: {one: "un", plural: "millones"},
	3: {},
	4: {one: "un", plural: "billones"},
}

type spanishConverter struct {
	lex Lexicon
}

var _ IntegerConverter = &spanishConverter{}

// SpanishModule returns the Spanish lexicon and converter: "veinti-" fused
// forms, "cien" at exactly one hundred, irregular hundreds, "mil" without
// "uno", "un millón"/"millones" and the compound "mil millones" for 10^9.
func SpanishModule() Module {
	return Module{
		Code:      Spanish,
		Name:      "Español",
		Lexicon:   spanishLexicon.Clone(),
		Converter: &spanishConverter{lex: spanishLexicon.Clone()},
	}
}

func (c *spanishConverter) ConvertInteger(n uint64) (string, error) {
	lex := &c.lex

	switch {
	case n == 0:
		return lex.Zero, nil
	case n < 10:
		return lex.Ones[n], nil
	case n < 20:
		return lex.Teens[n-10], nil
	case n < 30:
		return spanishVeinti[n-20], nil
	case n < 100:
		words := lex.Tens[n/10]
		if ones := n % 10; ones != 0 {
			words += " y " + lex.Ones[ones]
		}
		return words, nil
	case n == 100:
		return lex.Hundred, nil
	case n < 1000:
		words := lex.Hundreds[n/100]
		rest := n % 100
		if rest == 0 {
			return words, nil
		}
		tail, err := c.ConvertInteger(rest)
		if err != nil {
			return "", err
		}
		return words + " " + tail, nil
	}

	return groupScales(n, len(lex.Scales), " ", c.scaleHead, c.ConvertInteger)
}

func (c *spanishConverter) scaleHead(g scaleGroup) (string, error) {
	scale := c.lex.Scales[g.Index]
	forms := spanishScales[g.Index]

	if g.Quotient == 1 {
		if forms.one == "" {
			return scale, nil
		}
		return forms.one + " " + scale, nil
	}

	if forms.plural != "" {
		scale = forms.plural
	}

	quotient, err := c.ConvertInteger(g.Quotient)
	if err != nil {
		return "", err
	}
	return quotient + " " + scale, nil
}
