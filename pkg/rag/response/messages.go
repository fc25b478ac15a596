package response

// Fixed assistant messages for pipeline branches that never reach the model,
// and for recovered model failures.
const (
	OutOfScope = "I'm Spark, South Indian Bank's AI assistant. I can only help with South Indian Bank related queries."

	NoKnowledge = "I couldn't find specific information about that in my South Indian Bank knowledge base. " +
		"Please try asking about savings accounts, loans, or customer service."

	ModelFailure = "I encountered an error processing your question. Please try again or contact support."
)
