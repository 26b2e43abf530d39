package naming

import (
	"strings"
	"unicode"
)

// Tokenize splits s into words on case, digit and separator boundaries.
// Examples:
//   - "comboChart" -> ["combo", "Chart"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "bar 2" -> ["bar", "2"]
//   - "line1Trendline0" -> ["line1", "Trendline0"]
//
// Digits that follow lowercase letters stay attached to their word.
func Tokenize(s string) []string {
	if s == "" {
		return nil
	}

	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if !isWordRune(r) {
			flush()

			continue
		}

		if current.Len() > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// startsToken reports whether a new word starts at position i. The caller
// guarantees runes[i-1] exists when the current word is not empty.
func startsToken(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]

	switch {
	case unicode.IsDigit(r):
		// "line1" keeps its digit, "ID2" and "2" runs split from capitals.
		return unicode.IsUpper(prev)
	case unicode.IsDigit(prev):
		// "1Line" starts a new word at the letter unless the digits trail a word.
		return unicode.IsUpper(r) || !trailsLowerWord(runes, i-1)
	case unicode.IsUpper(r) && !unicode.IsUpper(prev):
		return true
	case unicode.IsUpper(r) && unicode.IsUpper(prev):
		// End of an acronym: "XMLParser" splits before 'P'.
		return i+1 < len(runes) && unicode.IsLower(runes[i+1])
	}

	return false
}

// trailsLowerWord reports whether the digit run ending at j follows a lowercase letter.
func trailsLowerWord(runes []rune, j int) bool {
	for j >= 0 && unicode.IsDigit(runes[j]) {
		j--
	}

	return j >= 0 && unicode.IsLower(runes[j])
}

// ToCamelCase rejoins the words of s in lowerCamelCase.
// It returns s unchanged when s contains no letters or digits.
func ToCamelCase(s string) string {
	words := Tokenize(s)
	if len(words) == 0 {
		return s
	}

	var b strings.Builder

	b.Grow(len(s))

	for i, w := range words {
		if i == 0 {
			b.WriteString(strings.ToLower(w))

			continue
		}

		b.WriteString(capitalize(w))
	}

	return b.String()
}

// ToPascalCase is ToCamelCase with the first letter capitalized.
func ToPascalCase(s string) string {
	if len(Tokenize(s)) == 0 {
		return s
	}

	runes := []rune(ToCamelCase(s))
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}

func capitalize(w string) string {
	runes := []rune(strings.ToLower(w))
	if len(runes) == 0 {
		return w
	}

	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}
