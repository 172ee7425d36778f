// Package explain renders canned study-guidance text for a topic. It is a
// stand-in for a real generation backend: no model call, no randomness,
// output depends only on the input string.
package explain

import (
	"strings"
	"unicode/utf8"
)

// Generate builds a fixed-structure study guide for the given topic. Two
// calls with the same input produce byte-identical output.
func Generate(topic string) string {
	t := strings.TrimSpace(topic)

	sections := []string{
		"Quick summary\n- " + t + " in one sentence: [A clear, simple definition].",
		"Key ideas\n- Concept 1: what it is and why it matters\n- Concept 2: how it connects\n- Concept 3: common pitfalls",
		"Step-by-step breakdown\n1) Start with the core definition\n2) Build an intuitive picture\n3) Add the formal detail\n4) Work through a tiny example\n5) Check your understanding",
		"Analogy\n- Imagine you're explaining it to a 10-year-old using a real-life story.",
		"Worked example\n- Problem: a small, realistic question about the topic\n- Solution: show the steps with 1-2 short calculations or bullet points",
		"Common mistakes\n- Misunderstanding A\n- Misunderstanding B\n- Shortcut to avoid them",
		"Rapid self-quiz\n- Q1: ...\n- Q2: ...\n- Q3: ...\n(Answer in your head first, then check with notes)",
		"Mini study plan (20 minutes)\n- 5m: review summary + key ideas\n- 10m: do 2 tiny problems\n- 5m: reflect: what still feels fuzzy?",
	}

	// Separator matches the width of the "Topic: " line in characters.
	header := "Topic: " + t + "\n" + strings.Repeat("=", 7+utf8.RuneCountInString(t))

	return header + "\n\n" + strings.Join(sections, "\n\n")
}
