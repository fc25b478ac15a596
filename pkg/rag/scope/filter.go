package scope

import "strings"

// Filter is a cheap keyword gate that rejects off-topic questions before any
// scoring or model work happens.
type Filter struct {
	keywords []string
}

// defaultKeywords is the banking allow-list. A question is in scope when it
// contains at least one of these substrings (case-insensitive).
var defaultKeywords = []string{
	"south indian bank", "sib", "account", "loan", "credit card",
	"deposit", "banking", "atm", "branch", "customer service",
	"interest rate", "savings", "current account", "fd", "rd",
	"spark", "bank", "money", "finance", "payment",
}

func NewFilter() *Filter {
	return &Filter{keywords: defaultKeywords}
}

// NewFilterWithKeywords builds a filter over a custom allow-list.
func NewFilterWithKeywords(keywords []string) *Filter {
	return &Filter{keywords: keywords}
}

// InScope reports whether the question mentions any allow-listed keyword.
func (f *Filter) InScope(question string) bool {
	q := strings.ToLower(question)
	for _, kw := range f.keywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}
