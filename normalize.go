package carads

import "strings"

type alias struct {
	typo       string
	correction string
}

// makeAliases lists known make misspellings in match order.
var makeAliases = []alias{
	{"chevy", "chevrolet"},
	{"cheverolet", "chevrolet"},
	{"mercedez", "mercedes"},
	{"vw", "volkswagen"},
	{"volkswagon", "volkswagen"},
	{"volkwagen", "volkswagen"},
	{"infinity", "infiniti"},
	{"chysler", "chrysler"},
}

// modelAliases lists known model misspellings in match order.
var modelAliases = []alias{
	{"oddysey", "odyssey"},
}

// NormalizeMake lowercases and trims text and corrects a known make
// misspelling. Returns nil for nil input.
//
// At most one alias is applied: the first table entry found in the text
// wins. Text with two different misspellings keeps the second one.
func NormalizeMake(text *string) *string {
	return normalize(text, makeAliases)
}

// NormalizeModel is NormalizeMake for model strings.
func NormalizeModel(text *string) *string {
	return normalize(text, modelAliases)
}

func normalize(text *string, aliases []alias) *string {
	if text == nil {
		return nil
	}
	s := strings.TrimSpace(strings.ToLower(*text))
	for _, a := range aliases {
		if strings.Contains(s, a.typo) {
			s = strings.ReplaceAll(s, a.typo, a.correction)
			break
		}
	}
	return &s
}
