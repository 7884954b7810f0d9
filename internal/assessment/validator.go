package assessment

import (
	"strings"
	"unicode"
)

const (
	// fuzzyMatchThreshold is the minimum similarity for a near-miss
	// free-text answer to count as correct.
	fuzzyMatchThreshold = 0.85

	// fuzzyMinAnswerLength is the normalized canonical length, in runes,
	// above which fuzzy matching applies. Short answers require an exact
	// match.
	fuzzyMinAnswerLength = 10
)

// CheckAnswer reports whether the submitted answer is correct for the
// question's kind.
func CheckAnswer(question Question, submitted Answer) bool {
	switch question.Kind {
	case KindSingleChoice, KindBoolean:
		return equalsIgnoreCase(question.Correct.Text, submitted.Text)
	case KindFreeText:
		return checkFreeText(question.Correct.Text, submitted.Text)
	case KindPairMatching:
		return equalPairs(question.Correct.Pairs, submitted.Pairs)
	}
	return false
}

// CheckRawAnswer decodes a raw submission and checks it. A payload that
// fails to decode is an incorrect answer, not an error.
func CheckRawAnswer(question Question, raw string) (Answer, bool) {
	submitted, err := DecodeAnswer(raw)
	if err != nil {
		return Answer{}, false
	}
	return submitted, CheckAnswer(question, submitted)
}

func equalsIgnoreCase(canonical, submitted string) bool {
	submitted = strings.TrimSpace(submitted)
	if submitted == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(canonical), submitted)
}

func checkFreeText(canonical, submitted string) bool {
	a := normalizeText(canonical)
	b := normalizeText(submitted)
	if b == "" {
		return false
	}
	if a == b {
		return true
	}
	if len([]rune(a)) <= fuzzyMinAnswerLength {
		return false
	}

	distance := editDistance(a, b)
	longest := max(len([]rune(a)), len([]rune(b)))
	similarity := 1 - float64(distance)/float64(longest)
	return similarity >= fuzzyMatchThreshold
}

// normalizeText lowercases, strips every rune that is not a letter or digit
// and collapses runs of whitespace to single spaces.
func normalizeText(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var builder strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			builder.WriteRune(r)
		} else {
			builder.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(builder.String()), " ")
}

// equalPairs is all-or-nothing: every pair must match, in any order.
func equalPairs(canonical, submitted map[string]string) bool {
	if len(canonical) == 0 || len(canonical) != len(submitted) {
		return false
	}
	for key, want := range canonical {
		if submitted[key] != want {
			return false
		}
	}
	return true
}
