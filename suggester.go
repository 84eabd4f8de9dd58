package carads

// Suggester proposes catalog strings resembling free text.
type Suggester interface {
	// FindBestMatch returns the targets that closely match input, in no
	// particular order. An exact match is returned alone.
	FindBestMatch(input string, targets []string) []string
}
