// Package levenshtein provides fuzzy string scorers and a catalog suggester
// built on edit distance.
package levenshtein

import (
	"math"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agext/levenshtein"
)

// Scorer rates the similarity of two strings from 0 to 100.
type Scorer func(a, b string) int

// indel counts a substitution as a deletion plus an insertion, so the
// distance relates directly to the combined length of both strings.
var indel = levenshtein.NewParams().SubCost(2)

// Ratio scores the whole of a against the whole of b.
// Either string being empty scores 0.
func Ratio(a, b string) int {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la == 0 || lb == 0 {
		return 0
	}
	return percent(ratio(a, b, la+lb))
}

func ratio(a, b string, lensum int) float64 {
	d := levenshtein.Distance(a, b, indel)
	return float64(lensum-d) / float64(lensum)
}

// PartialRatio scores the shorter string against the best aligned window of
// the longer one, so "civic" scores 100 against "honda civic".
func PartialRatio(a, b string) int {
	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == 0 {
		return 0
	}

	s := string(short)
	best := 0.0
	for i := 0; i+len(short) <= len(long); i++ {
		r := ratio(s, string(long[i:i+len(short)]), 2*len(short))
		if r > best {
			best = r
		}
		if best > 0.995 {
			return 100
		}
	}
	return percent(best)
}

// TokenSortRatio scores both strings after sorting their words, so word
// order does not matter.
func TokenSortRatio(a, b string) int {
	return Ratio(sortedTokens(a), sortedTokens(b))
}

// TokenSetRatio scores the words the strings share against each string's
// full word set. A string whose words are a subset of the other's scores 100.
func TokenSetRatio(a, b string) int {
	ta, tb := tokenSet(a), tokenSet(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	var sect, onlyA, onlyB []string
	for _, t := range ta {
		if _, ok := slices.BinarySearch(tb, t); ok {
			sect = append(sect, t)
		} else {
			onlyA = append(onlyA, t)
		}
	}
	for _, t := range tb {
		if _, ok := slices.BinarySearch(ta, t); !ok {
			onlyB = append(onlyB, t)
		}
	}

	base := strings.Join(sect, " ")
	withA := strings.TrimSpace(base + " " + strings.Join(onlyA, " "))
	withB := strings.TrimSpace(base + " " + strings.Join(onlyB, " "))

	return max(Ratio(base, withA), Ratio(base, withB), Ratio(withA, withB))
}

// DefaultScorers returns the scorers consulted by a Matcher, in order.
func DefaultScorers() []Scorer {
	return []Scorer{Ratio, PartialRatio, TokenSortRatio, TokenSetRatio}
}

// Process lowercases s, replaces every character that is not a letter or
// digit with a space, and collapses runs of whitespace.
func Process(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)
	return strings.Join(strings.Fields(mapped), " ")
}

func sortedTokens(s string) string {
	tokens := strings.Fields(s)
	slices.Sort(tokens)
	return strings.Join(tokens, " ")
}

func tokenSet(s string) []string {
	tokens := strings.Fields(s)
	slices.Sort(tokens)
	return slices.Compact(tokens)
}

func percent(r float64) int {
	return int(math.RoundToEven(100 * r))
}
