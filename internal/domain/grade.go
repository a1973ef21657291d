package domain

import (
	"strconv"
	"strings"
	"unicode"
)

// maxGradeNumber caps absurd grade numbers so the age stays small and positive.
const maxGradeNumber = 20

// AgeFromGrade approximates a child's age from a free-text grade string.
// "EYP n" (early years programme) maps to min(2+n, 6); any other grade maps
// to 5 + the first number found in the string, with age 5 as the floor when
// no positive number is present. This is a rough rule, not a calendar age.
func AgeFromGrade(grade string) int {
	g := strings.ToLower(strings.TrimSpace(grade))
	n := firstNumber(g)
	if n > maxGradeNumber {
		n = maxGradeNumber
	}

	if strings.HasPrefix(g, "eyp") {
		age := 2 + n
		if age > 6 {
			age = 6
		}
		return age
	}

	if n <= 0 {
		return 5
	}
	return 5 + n
}

func firstNumber(s string) int {
	start := strings.IndexFunc(s, unicode.IsDigit)
	if start < 0 {
		return 0
	}
	end := start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[start:end])
	if err != nil {
		return 0
	}
	return n
}
