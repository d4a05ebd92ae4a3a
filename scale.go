package numwords

import "fmt"

// maxScales bounds lexicon scale tables so 1000^i always fits in a uint64.
const maxScales = 7

var scaleValues = [maxScales]uint64{
	1,
	1_000,
	1_000_000,
	1_000_000_000,
	1_000_000_000_000,
	1_000_000_000_000_000,
	1_000_000_000_000_000_000,
}

// scaleGroup is one greedy step of scale grouping: n = Quotient*1000^Index + Remainder.
type scaleGroup struct {
	Index     int
	Quotient  uint64
	Remainder uint64
}

// splitScale picks the highest scale not exceeding n among the first scales
// entries of a lexicon. The quotient must stay below 1000 so it can be spelled
// without a larger scale word; anything bigger exceeds the lexicon.
func splitScale(n uint64, scales int) (scaleGroup, error) {
	if scales > maxScales {
		scales = maxScales
	}

	for i := scales - 1; i > 0; i-- {
		divisor := scaleValues[i]
		if n < divisor {
			continue
		}

		quotient := n / divisor
		if quotient >= 1000 {
			return scaleGroup{}, fmt.Errorf("%w: %d is beyond the largest scale word (10^%d)", ErrMagnitudeExceeded, n, 3*i)
		}

		return scaleGroup{Index: i, Quotient: quotient, Remainder: n % divisor}, nil
	}

	return scaleGroup{}, fmt.Errorf("%w: %d is below the first scale", ErrInvalidInput, n)
}

// scaleHead renders the quotient together with its scale word.
type scaleHead func(g scaleGroup) (string, error)

// groupScales renders n >= 1000 as head(quotient, scale) followed by the
// remainder, which goes back through the full integer converter and may
// itself be grouped at a lower scale.
func groupScales(n uint64, scales int, joiner string, head scaleHead, rest IntegerConverterFunc) (string, error) {
	group, err := splitScale(n, scales)
	if err != nil {
		return "", err
	}

	words, err := head(group)
	if err != nil {
		return "", err
	}

	if group.Remainder == 0 {
		return words, nil
	}

	tail, err := rest(group.Remainder)
	if err != nil {
		return "", err
	}

	return words + joiner + tail, nil
}

// lexiconCapacity returns the largest integer a scale table of the given size can spell.
func lexiconCapacity(scales int) uint64 {
	if scales > maxScales {
		scales = maxScales
	}
	if scales < 1 {
		return 999
	}
	top := scaleValues[scales-1]
	if top > (^uint64(0))/1000 {
		return ^uint64(0)
	}
	return top*1000 - 1
}
