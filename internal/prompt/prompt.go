// Package prompt builds the model prompts for document analysis and chat.
package prompt

import (
	_ "embed"
	"fmt"
	"strings"
)

// MaxDocumentChars is the number of leading characters of a document that
// are sent to the model for analysis.
const MaxDocumentChars = 15000

// Section headings the analysis must contain, in order.
var AnalysisSections = []string{
	"### Summary",
	"### Risk Analysis",
	"### Key Clauses & Legal Connections",
	"### Potential Mistakes & Ambiguities",
}

//go:embed legal_knowledge_base.txt
var knowledgeBase string

// KnowledgeBase returns the embedded legal reference text.
func KnowledgeBase() string {
	return knowledgeBase
}

const analysisTemplate = `You are an expert Indian legal assistant. Analyze the user's document based on the provided legal knowledge base. Provide a structured breakdown in %s. The output must strictly follow this format: %s.

When generating the '%s' section, you MUST refer to the following legal texts to identify relevant clauses and articles. Cite the specific section or article number (e.g., BNS Section 101, Article 14 of the Indian Constitution).

--- LEGAL KNOWLEDGE BASE ---
%s
--- END KNOWLEDGE BASE ---

--- USER'S DOCUMENT ---
%s
--- END DOCUMENT ---`

const chatTemplate = "Based on the document context I provided earlier, answer this question in %s: %s"

// Analysis builds the one-shot analysis prompt. Only the first
// MaxDocumentChars characters of documentText are included.
func Analysis(language, documentText string) string {
	return fmt.Sprintf(analysisTemplate,
		language,
		strings.Join(AnalysisSections, ", "),
		AnalysisSections[2],
		knowledgeBase,
		Truncate(documentText, MaxDocumentChars),
	)
}

// Chat wraps a follow-up question. The history it is sent with is not truncated.
func Chat(language, question string) string {
	return fmt.Sprintf(chatTemplate, language, question)
}

// Truncate returns the first n characters (runes) of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
