package scope

import "testing"

func TestInScope(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     bool
	}{
		{"savings question", "What is the savings interest rate?", true},
		{"loan question", "How do I apply for a home loan?", true},
		{"institution abbreviation", "Tell me about SIB", true},
		{"assistant name", "Who is Spark?", true},
		{"mixed case", "Can I open an ACCOUNT online?", true},
		{"weather question", "What is the weather today?", false},
		{"general chit-chat", "Tell me a joke", false},
		{"empty question", "", false},
	}

	f := NewFilter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.InScope(tt.question); got != tt.want {
				t.Errorf("InScope(%q) = %v, want %v", tt.question, got, tt.want)
			}
		})
	}
}

func TestInScopeCustomKeywords(t *testing.T) {
	f := NewFilterWithKeywords([]string{"pension"})

	if !f.InScope("What about my pension plan?") {
		t.Error("custom keyword should be in scope")
	}
	if f.InScope("What is the savings rate?") {
		t.Error("default keywords should not apply to a custom filter")
	}
}
