package prompt

import (
	"strings"

	"sib-chatbot-be/pkg/rag/relevance"
)

// perDocumentBudget caps each labeled context block, so total prompt size is
// bounded by maxRelevantDocs * perDocumentBudget plus the fixed template.
const perDocumentBudget = 800

// Builder assembles the bounded instruction prompt sent to the model.
type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// Build writes the selected documents, in scorer order, followed by the
// question and the behavioral instructions.
func (b *Builder) Build(question string, scored []relevance.ScoredContent) string {
	var prompt strings.Builder

	prompt.WriteString("You are Spark, South Indian Bank's AI assistant. Answer based on this information:\n\n")

	prompt.WriteString("Information:\n")
	for _, doc := range scored {
		snippet := doc.Snippet
		if len(snippet) > perDocumentBudget {
			snippet = snippet[:perDocumentBudget]
		}
		prompt.WriteString("From ")
		prompt.WriteString(doc.Name)
		prompt.WriteString(":\n")
		prompt.WriteString(snippet)
		prompt.WriteString("\n\n")
	}

	prompt.WriteString("Question: ")
	prompt.WriteString(question)
	prompt.WriteString("\n\n")

	prompt.WriteString("Instructions:\n")
	prompt.WriteString("1. Answer clearly and concisely about South Indian Bank\n")
	prompt.WriteString("2. Use only the provided information\n")
	prompt.WriteString("3. If information is insufficient, say so\n")
	prompt.WriteString("4. Be helpful and professional\n")
	prompt.WriteString("5. Stay on South Indian Bank topics\n\n")
	prompt.WriteString("Answer:")

	return prompt.String()
}
