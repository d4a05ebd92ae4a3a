package numwords

var arabicLexicon = Lexicon{
	Ones: [10]string{
		"", "واحد", "اثنان", "ثلاثة", "أربعة",
		"خمسة", "ستة", "سبعة", "ثمانية", "تسعة",
	},
	Teens: [10]string{
		"عشرة", "أحد عشر", "اثنا عشر", "ثلاثة عشر", "أربعة عشر",
		"خمسة عشر", "ستة عشر", "سبعة عشر", "ثمانية عشر", "تسعة عشر",
	},
	Tens: [10]string{
		"", "", "عشرون", "ثلاثون", "أربعون",
		"خمسون", "ستون", "سبعون", "ثمانون", "تسعون",
	},
	Hundreds: []string{
		"", "مائة", "مئتان", "ثلاثمائة", "أربعمائة",
		"خمسمائة", "ستمائة", "سبعمائة", "ثمانمائة", "تسعمائة",
	},
	Scales:   []string{"", "ألف", "مليون", "مليار", "ترليون"},
	Zero:     "صفر",
	Negative: "سالب",
	Point:    "فاصلة",
	Hundred:  "مائة",
}

// arabicCounting holds the counting forms used before a plural-of-paucity
// scale noun, indexed by quotient 0..10.
var arabicCounting = [11]string{
	"", "واحدة", "اثنتان", "ثلاث", "أربع",
	"خمس", "ست", "سبع", "ثمان", "تسع", "عشر",
}

type arabicScaleForms struct {
	dual   string
	plural string
}

// arabicScales lists the scales with dual and plural-of-paucity forms.
// Billions and trillions above one are spelled quotient + singular noun.
var arabicScales = map[int]arabicScaleForms{
	1: {dual: "ألفان", plural: "آلاف"},
	2: {dual: "مليونان", plural: "ملايين"},
}

// arabicAnd is the "wa" connective; it attaches to the following word.
const arabicAnd = " و"

type arabicConverter struct {
	lex Lexicon
}

var _ IntegerConverter = &arabicConverter{}

// ArabicModule returns the Arabic lexicon and converter. Units precede tens
// ("اثنان وأربعون"), hundreds come from an irregular table including the dual
// "مئتان", and thousands/millions take singular, dual or plural-of-paucity
// forms depending on the quotient.
func ArabicModule() Module {
	return Module{
		Code:      Arabic,
		Name:      "العربية",
		Lexicon:   arabicLexicon.Clone(),
		Converter: &arabicConverter{lex: arabicLexicon.Clone()},
	}
}

func (c *arabicConverter) ConvertInteger(n uint64) (string, error) {
	lex := &c.lex

	switch {
	case n == 0:
		return lex.Zero, nil
	case n < 10:
		return lex.Ones[n], nil
	case n < 20:
		return lex.Teens[n-10], nil
	case n < 100:
		tens, ones := n/10, n%10
		if ones == 0 {
			return lex.Tens[tens], nil
		}
		return lex.Ones[ones] + arabicAnd + lex.Tens[tens], nil
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
		return words + arabicAnd + tail, nil
	}

	return groupScales(n, len(lex.Scales), arabicAnd, c.scaleHead, c.ConvertInteger)
}

func (c *arabicConverter) scaleHead(g scaleGroup) (string, error) {
	scale := c.lex.Scales[g.Index]
	if g.Quotient == 1 {
		return scale, nil
	}

	if forms, ok := arabicScales[g.Index]; ok {
		switch {
		case g.Quotient == 2:
			return forms.dual, nil
		case g.Quotient <= 10:
			return arabicCounting[g.Quotient] + " " + forms.plural, nil
		}
	}

	quotient, err := c.ConvertInteger(g.Quotient)
	if err != nil {
		return "", err
	}
	return quotient + " " + scale, nil
}
