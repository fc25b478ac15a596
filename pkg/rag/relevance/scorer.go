package relevance

import (
	"sort"
	"strings"

	"sib-chatbot-be/internal/knowledge"
)

// ScoredContent is one document selected for a query, with the snippet that
// will be fed into the prompt. It lives only for the duration of the query.
type ScoredContent struct {
	Name    string
	Snippet string
	Score   int
}

// topicKeywords boosts documents that share a topic with the question.
var topicKeywords = map[string][]string{
	"savings": {"savings", "account", "deposit", "balance", "interest"},
	"loans":   {"loan", "credit", "mortgage", "home", "personal", "car"},
	"cards":   {"card", "credit", "debit", "atm"},
	"service": {"service", "contact", "phone", "email", "branch", "customer"},
	"general": {"bank", "banking", "sib", "south", "indian"},
}

// Scorer ranks knowledge-base documents against a question using distinct
// keyword overlap plus topic boosts.
type Scorer struct {
	chunkSize int // snippet length per selected document
	maxDocs   int
}

func NewScorer(chunkSize, maxDocs int) *Scorer {
	return &Scorer{chunkSize: chunkSize, maxDocs: maxDocs}
}

// Score selects up to maxDocs documents. Deterministic for identical inputs:
// documents are visited in snapshot name order and ranked by score with name
// order as tie-break. If nothing matches a non-empty store, the first document
// is returned so "no overlap" is never confused with "no content".
func (s *Scorer) Score(question string, snap knowledge.Snapshot) []ScoredContent {
	questionWords := tokenize(question)

	var scored []ScoredContent
	for _, name := range snap.Names() {
		item, ok := snap.Get(name)
		if !ok {
			continue
		}

		contentWords := tokenize(item.Text)

		score := countIntersection(questionWords, contentWords)
		for _, keywords := range topicKeywords {
			inQuestion := countPresent(questionWords, keywords)
			if inQuestion > 0 && countPresent(contentWords, keywords) > 0 {
				score += inQuestion * 2
			}
		}

		if score > 0 {
			scored = append(scored, ScoredContent{
				Name:    name,
				Snippet: truncate(item.Text, s.chunkSize),
				Score:   score,
			})
		}
	}

	if len(scored) == 0 {
		names := snap.Names()
		if len(names) == 0 {
			return nil
		}
		item, _ := snap.Get(names[0])
		return []ScoredContent{{
			Name:    item.Name,
			Snippet: truncate(item.Text, s.chunkSize),
		}}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > s.maxDocs {
		scored = scored[:s.maxDocs]
	}
	return scored
}

func tokenize(text string) map[string]struct{} {
	words := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func countIntersection(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for w := range a {
		if _, ok := b[w]; ok {
			n++
		}
	}
	return n
}

func countPresent(words map[string]struct{}, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if _, ok := words[kw]; ok {
			n++
		}
	}
	return n
}

func truncate(text string, limit int) string {
	if len(text) > limit {
		return text[:limit]
	}
	return text
}
