package listing

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/currency"
)

// amountPattern is a plain number or one grouped in thousands by commas or
// spaces, with an optional decimal point.
var amountPattern = regexp.MustCompile(`^(\d{1,3}(,\d{3})+|\d{1,3}( \d{3})+|\d+)(\.\d+)?$`)

// ParsePrice accepts prices as typed by brokers ("$3,200", "3 200.50 USD",
// "4500") and returns the numeric amount. A currency symbol and an ISO 4217
// code may lead or trail the number; any other letter, an exponent or a
// decimal comma is rejected.
func ParsePrice(raw string) (float64, error) {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}

		return r
	}, raw)

	s, err := trimCurrency(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("could not parse price %q: %w", raw, err)
	}
	if !amountPattern.MatchString(s) {
		return 0, fmt.Errorf("price %q is not an amount", raw)
	}

	price, err := strconv.ParseFloat(strings.NewReplacer(",", "", " ", "").Replace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("could not parse price %q: %w", raw, err)
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return 0, fmt.Errorf("price %q is out of range", raw)
	}

	return price, nil
}

// trimCurrency strips currency symbols and ISO codes from both ends of s.
// Letters that do not form a known code are an error.
func trimCurrency(s string) (string, error) {
	isSymbol := func(r rune) bool { return unicode.Is(unicode.Sc, r) || r == ' ' }

	s = strings.TrimFunc(s, isSymbol)
	lead := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsLetter(r) })
	if lead < 0 {
		lead = len(s)
	}
	trail := strings.LastIndexFunc(s, func(r rune) bool { return !unicode.IsLetter(r) }) + 1
	if trail < lead {
		trail = lead
	}

	for _, code := range []string{s[:lead], s[trail:]} {
		if code == "" {
			continue
		}
		if _, err := currency.ParseISO(code); err != nil {
			return "", fmt.Errorf("unknown currency %q", code)
		}
	}

	return strings.TrimFunc(s[lead:trail], isSymbol), nil
}

// BedroomType returns the display label of a bedroom count.
func BedroomType(bedrooms int) string {
	if bedrooms == 0 {
		return "studio"
	}

	return strconv.Itoa(bedrooms) + "BR"
}
