package prompt

import (
	"strings"
	"testing"

	"sib-chatbot-be/pkg/rag/relevance"
)

func TestBuildContainsQuestionAndSnippets(t *testing.T) {
	b := NewBuilder()
	out := b.Build("What is the savings interest rate?", []relevance.ScoredContent{
		{Name: "savings.txt", Snippet: "Savings account interest rate is 3.5%", Score: 7},
	})

	if !strings.Contains(out, "Question: What is the savings interest rate?") {
		t.Error("prompt missing the question")
	}
	if !strings.Contains(out, "From savings.txt:") {
		t.Error("prompt missing the document label")
	}
	if !strings.Contains(out, "Savings account interest rate is 3.5%") {
		t.Error("prompt missing the snippet")
	}
	if !strings.Contains(out, "Use only the provided information") {
		t.Error("prompt missing the instruction template")
	}
}

func TestBuildPreservesScorerOrder(t *testing.T) {
	out := NewBuilder().Build("q", []relevance.ScoredContent{
		{Name: "first.txt", Snippet: "alpha"},
		{Name: "second.txt", Snippet: "beta"},
	})

	if strings.Index(out, "first.txt") > strings.Index(out, "second.txt") {
		t.Error("documents not in scorer order")
	}
}

func TestBuildBoundsPerDocumentBlock(t *testing.T) {
	long := strings.Repeat("x", 5000)
	docs := []relevance.ScoredContent{
		{Name: "a.txt", Snippet: long},
		{Name: "b.txt", Snippet: long},
	}

	out := NewBuilder().Build("question", docs)

	empty := NewBuilder().Build("question", nil)
	overhead := len(empty)
	perDoc := perDocumentBudget + len("From a.txt:\n") + len("\n\n")

	if len(out) > overhead+len(docs)*perDoc {
		t.Errorf("prompt size %d exceeds bound %d", len(out), overhead+len(docs)*perDoc)
	}
	if strings.Contains(out, strings.Repeat("x", perDocumentBudget+1)) {
		t.Error("snippet not truncated to the per-document budget")
	}
}
