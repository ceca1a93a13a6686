package utils

import (
	"fmt"
	"strings"
)

var arabicDigits = map[rune]rune{
	'0': '٠', '1': '١', '2': '٢', '3': '٣', '4': '٤',
	'5': '٥', '6': '٦', '7': '٧', '8': '٨', '9': '٩',
}

// arabic thousands separator U+066C
const thousandsSeparator = '٬'

// ToArabicDigits replaces every ascii digit with its Arabic-indic
// equivalent, leaving everything else untouched.
func ToArabicDigits(text string) string {
	return strings.Map(func(r rune) rune {
		if d, ok := arabicDigits[r]; ok {
			return d
		}
		return r
	}, text)
}

// FormatArabicNumber renders a figure with Arabic-indic digits and a
// thousands separator, used for currency and counts in the printable
// report.
func FormatArabicNumber(value float64) string {
	text := fmt.Sprintf("%.2f", value)
	text = strings.TrimSuffix(text, ".00")

	intPart := text
	fracPart := ""
	if i := strings.Index(text, "."); i >= 0 {
		intPart, fracPart = text[:i], text[i:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteRune(thousandsSeparator)
		}
		b.WriteRune(r)
	}

	return ToArabicDigits(b.String() + fracPart)
}

// FormatArabicCount is FormatArabicNumber for whole numbers.
func FormatArabicCount(value int) string {
	return FormatArabicNumber(float64(value))
}
