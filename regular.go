package numwords

import "slices"

// Rules parameterises the regular converter used by English and by
// data-driven lexicons loaded from files.
type Rules struct {
	// TensJoiner sits between a tens word and a ones word ("forty-two").
	TensJoiner string
	// HundredJoiner sits between the hundreds and the rest ("one hundred twenty").
	HundredJoiner string
	// ScaleJoiner sits between a scale group and its remainder.
	ScaleJoiner string
	// OmitOneBeforeHundred spells 100 as the bare hundred word.
	OmitOneBeforeHundred bool
	// OmitOneBeforeThousand spells 1000..1999 with the bare thousand word.
	OmitOneBeforeThousand bool
	// ScalePluralSuffix is appended to scale words when the quotient is above one.
	ScalePluralSuffix string
	// ScalePluralExempt lists scale indexes that never take the plural suffix.
	ScalePluralExempt []int
}

// DefaultRules returns the English joining rules.
func DefaultRules() Rules {
	return Rules{
		TensJoiner:    "-",
		HundredJoiner: " ",
		ScaleJoiner:   " ",
	}
}

type regularConverter struct {
	lex   Lexicon
	rules Rules
}

var _ IntegerConverter = &regularConverter{}

// NewRegularConverter returns a converter for languages whose numbers compose
// without irregular ranges: tens+ones, digit+hundred, quotient+scale.
func NewRegularConverter(lex Lexicon, rules Rules) IntegerConverter {
	if rules.HundredJoiner == "" {
		rules.HundredJoiner = " "
	}
	if rules.ScaleJoiner == "" {
		rules.ScaleJoiner = " "
	}
	rules.ScalePluralExempt = slices.Clone(rules.ScalePluralExempt)
	return &regularConverter{lex: lex.Clone(), rules: rules}
}

func (c *regularConverter) ConvertInteger(n uint64) (string, error) {
	lex := &c.lex

	switch {
	case n == 0:
		return lex.Zero, nil
	case n < 10:
		return lex.Ones[n], nil
	case n < 20:
		return lex.Teens[n-10], nil
	case n < 100:
		words := lex.Tens[n/10]
		if ones := n % 10; ones != 0 {
			words += c.rules.TensJoiner + lex.Ones[ones]
		}
		return words, nil
	case n < 1000:
		words := c.hundreds(int(n / 100))
		rest := n % 100
		if rest == 0 {
			return words, nil
		}
		tail, err := c.ConvertInteger(rest)
		if err != nil {
			return "", err
		}
		return words + c.rules.HundredJoiner + tail, nil
	}

	return groupScales(n, len(lex.Scales), c.rules.ScaleJoiner, c.scaleHead, c.ConvertInteger)
}

func (c *regularConverter) hundreds(digit int) string {
	if len(c.lex.Hundreds) > 0 {
		return c.lex.Hundreds[digit]
	}
	if digit == 1 && c.rules.OmitOneBeforeHundred {
		return c.lex.Hundred
	}
	return c.lex.Ones[digit] + " " + c.lex.Hundred
}

func (c *regularConverter) scaleHead(g scaleGroup) (string, error) {
	scale := c.lex.Scales[g.Index]
	if g.Quotient == 1 && g.Index == 1 && c.rules.OmitOneBeforeThousand {
		return scale, nil
	}

	if g.Quotient > 1 && c.rules.ScalePluralSuffix != "" && !slices.Contains(c.rules.ScalePluralExempt, g.Index) {
		scale += c.rules.ScalePluralSuffix
	}

	quotient, err := c.ConvertInteger(g.Quotient)
	if err != nil {
		return "", err
	}
	return quotient + " " + scale, nil
}
