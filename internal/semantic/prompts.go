package semantic

import (
	"fmt"
	"strings"
)

// buildSystemPrompt instructs the model to answer with a strict JSON
// relationships object.
func buildSystemPrompt() string {
	return `You identify semantic relationships between research terms.
Respond ONLY with a JSON object of the form:
{"relationships": [{"term_a": "...", "term_b": "...", "type": "...", "strength": 0.0, "rationale": "..."}]}
Valid types: analogical, causal, contradictory, complementary, hierarchical, instantiates.
Strength is a number in [0,1]. Rationale is at most 200 characters.
Only relate terms from the provided list. No prose outside the JSON.`
}

// buildUserPrompt carries the research topic, the full term list for
// context, and the batch the model should relate.
func buildUserPrompt(topic string, batch, allTerms []Term, disciplines []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Research topic: %s\n\n", topic)

	if len(disciplines) > 0 {
		b.WriteString("Disciplines: ")
		b.WriteString(strings.Join(disciplines, ", "))
		b.WriteString("\n\n")
	}

	b.WriteString("Full term list (for context):\n")
	for _, t := range allTerms {
		fmt.Fprintf(&b, "- %s\n", t.Label)
	}

	b.WriteString("\nIdentify relationships among THIS batch:\n")
	for _, t := range batch {
		fmt.Fprintf(&b, "- %s (%s", t.Label, t.Type)
		if len(t.Slices) > 0 {
			fmt.Fprintf(&b, ", disciplines %v", t.Slices)
		}
		b.WriteString(")\n")
	}

	b.WriteString("\nReturn the relationships JSON now.")
	return b.String()
}
