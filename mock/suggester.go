package mock

import "github.com/fwojciec/carads"

var _ carads.Suggester = (*Suggester)(nil)

// Suggester is a mock implementation of carads.Suggester.
type Suggester struct {
	FindBestMatchFn func(input string, targets []string) []string
}

func (s *Suggester) FindBestMatch(input string, targets []string) []string {
	return s.FindBestMatchFn(input, targets)
}
