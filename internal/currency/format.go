package currency

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/Lutefd/estate-site/internal/model"
)

type localeFormat struct {
	locale  string
	prefix  string
	suffix  string
	group   string
	decimal string
}

// Each currency renders the way its canonical locale does.
var localeFormats = map[model.CurrencyCode]localeFormat{
	model.USD: {locale: "en-US", prefix: "$", group: ",", decimal: "."},
	model.GHS: {locale: "en-GH", prefix: "GH₵", group: ",", decimal: "."},
	model.GBP: {locale: "en-GB", prefix: "£", group: ",", decimal: "."},
	model.EUR: {locale: "de-DE", suffix: "\u00a0€", group: ".", decimal: ","},
}

var (
	nonNumeric    = regexp.MustCompile(`[^0-9.\-]`)
	currencyLabel = regexp.MustCompile(`(?i)usd|us\$`)
)

// Locale returns the locale tag used to render prices in code, defaulting to en-US.
func Locale(code model.CurrencyCode) string {
	if f, ok := localeFormats[code]; ok {
		return f.locale
	}
	return "en-US"
}

// FormatAmount renders an amount that is already expressed in code.
// Unknown codes fall back to en-US digits prefixed by the code.
func FormatAmount(amount float64, code model.CurrencyCode) string {
	f, ok := localeFormats[code]
	if !ok {
		f = localeFormat{locale: "en-US", prefix: strings.ToUpper(string(code)) + " ", group: ",", decimal: "."}
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}

	major, minor := splitAmount(math.Abs(amount))

	sign := ""
	if amount < 0 && (major != "0" || minor != "00") {
		sign = "-"
	}
	return sign + f.prefix + groupDigits(major, f.group) + f.decimal + minor + f.suffix
}

// Below this, amount*100 stays within the exact integer range of float64.
const exactCentsLimit = 1e13

// splitAmount returns the integer digits and the two decimal digits of a
// non-negative amount, rounding half away from zero.
func splitAmount(abs float64) (string, string) {
	if abs < exactCentsLimit {
		cents := int64(math.Round(abs * 100))
		return strconv.FormatInt(cents/100, 10), fmt.Sprintf("%02d", cents%100)
	}
	major, minor, _ := strings.Cut(strconv.FormatFloat(abs, 'f', 2, 64), ".")
	return major, minor
}

func groupDigits(s string, sep string) string {
	var b strings.Builder
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			b.WriteString(sep)
		}
		b.WriteRune(c)
	}
	return b.String()
}

// ParseUSD reads spreadsheet price text such as "$250,000" or "USD 1,200.50".
// Text with any other letters, like "1.5M" or "from $90k", is not a plain
// amount and is rejected.
func ParseUSD(text string) (float64, bool) {
	if strings.ContainsFunc(currencyLabel.ReplaceAllString(text, ""), unicode.IsLetter) {
		return 0, false
	}
	cleaned := nonNumeric.ReplaceAllString(text, "")
	if cleaned == "" {
		return 0, false
	}
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, false
	}
	return amount, true
}
