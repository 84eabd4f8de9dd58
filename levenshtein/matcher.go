package levenshtein

import (
	"cmp"
	"slices"

	"github.com/fwojciec/carads"
)

// Matcher defaults.
const (
	DefaultScoreCutoff = 90
	DefaultTopN        = 3
)

// Ensure Matcher implements carads.Suggester.
var _ carads.Suggester = (*Matcher)(nil)

// Matcher suggests targets that closely resemble free text.
type Matcher struct {
	// ScoreCutoff is the minimum score a target needs under any scorer.
	ScoreCutoff int
	// TopN bounds how many targets each scorer contributes.
	TopN int
	// Scorers are consulted in order.
	Scorers []Scorer
}

// NewMatcher returns a Matcher with the default cutoff, limit and scorers.
func NewMatcher() *Matcher {
	return &Matcher{
		ScoreCutoff: DefaultScoreCutoff,
		TopN:        DefaultTopN,
		Scorers:     DefaultScorers(),
	}
}

// Match is a target together with its best score across scorers.
type Match struct {
	Target string `json:"target"`
	Score  int    `json:"score"`
}

// FindBestMatch returns input alone when it is one of the targets.
// Otherwise each scorer keeps its TopN highest-scoring targets at or above
// ScoreCutoff and the de-duplicated union is returned. The result is empty,
// never nil, when nothing qualifies.
func (m *Matcher) FindBestMatch(input string, targets []string) []string {
	if slices.Contains(targets, input) {
		return []string{input}
	}
	matches := m.candidates(input, targets)
	out := make([]string, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.Target)
	}
	return out
}

// Rank returns the same targets as FindBestMatch, ordered by descending best
// score with ties broken lexically. An exact match scores 100.
func (m *Matcher) Rank(input string, targets []string) []Match {
	if slices.Contains(targets, input) {
		return []Match{{Target: input, Score: 100}}
	}
	matches := m.candidates(input, targets)
	slices.SortFunc(matches, func(a, b Match) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Target, b.Target)
	})
	return matches
}

// candidates returns the qualifying targets in first-seen order, each with
// the best score any scorer gave it.
func (m *Matcher) candidates(input string, targets []string) []Match {
	query := Process(input)
	processed := make([]string, len(targets))
	for i, t := range targets {
		processed[i] = Process(t)
	}

	var out []Match
	seen := make(map[string]int)
	for _, scorer := range m.Scorers {
		for _, match := range m.top(scorer, query, targets, processed) {
			if i, ok := seen[match.Target]; ok {
				out[i].Score = max(out[i].Score, match.Score)
				continue
			}
			seen[match.Target] = len(out)
			out = append(out, match)
		}
	}
	return out
}

// top scores every target with scorer and keeps the best TopN that reach the
// cutoff. Equal scores keep target order.
func (m *Matcher) top(scorer Scorer, query string, targets, processed []string) []Match {
	scored := make([]Match, len(targets))
	for i := range targets {
		scored[i] = Match{Target: targets[i], Score: scorer(query, processed[i])}
	}
	slices.SortStableFunc(scored, func(a, b Match) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if m.TopN > 0 && len(scored) > m.TopN {
		scored = scored[:m.TopN]
	}
	return slices.DeleteFunc(scored, func(match Match) bool {
		return match.Score < m.ScoreCutoff
	})
}
