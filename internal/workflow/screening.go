package workflow

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// minKeywordLength is the length a requirement token must exceed to count as a keyword.
const minKeywordLength = 3

// Score computes the screening score of a resume against job requirements.
// The score is the percentage of requirement keywords found verbatim in the resume text.
// Repeated keywords are counted every time they appear in the requirements.
func Score(resumeText, requirementsText string) int {
	if resumeText == "" || requirementsText == "" {
		return 0
	}

	keywords := RequirementKeywords(requirementsText)
	if len(keywords) == 0 {
		return 0
	}

	resume := strings.ToLower(resumeText)
	matched := 0
	for _, keyword := range keywords {
		if strings.Contains(resume, keyword) {
			matched++
		}
	}

	score := int(math.Round(float64(matched) / float64(len(keywords)) * 100))
	// A single hit in a very long requirement list must not round down to zero.
	if matched > 0 && score == 0 {
		score = 1
	}
	return min(score, 100)
}

// RequirementKeywords splits requirements on whitespace, ',', ';' and '.',
// lowercases them and keeps tokens longer than three characters.
func RequirementKeywords(requirementsText string) []string {
	fields := strings.FieldsFunc(strings.ToLower(requirementsText), func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == ';' || r == '.'
	})

	keywords := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) > minKeywordLength {
			keywords = append(keywords, f)
		}
	}
	return keywords
}
