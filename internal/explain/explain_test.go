package explain_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/studydesk/studydesk/internal/explain"
)

func TestGenerate_Deterministic(t *testing.T) {
	topics := []string{"entropy", "photosynthesis", "  spaced out  ", "熱力学"}

	for _, topic := range topics {
		a := explain.Generate(topic)
		b := explain.Generate(topic)
		if a != b {
			t.Errorf("output for %q differs between calls", topic)
		}
	}
}

func TestGenerate_Header(t *testing.T) {
	tests := []struct {
		topic   string
		trimmed string
	}{
		{"entropy", "entropy"},
		{"  entropy  ", "entropy"},
		{"Bayes' theorem", "Bayes' theorem"},
		{"熱力学", "熱力学"}, // separator width counts characters, not bytes
	}

	for _, tt := range tests {
		out := explain.Generate(tt.topic)
		lines := strings.SplitN(out, "\n", 3)
		if len(lines) < 3 {
			t.Fatalf("output for %q has fewer than 3 lines", tt.topic)
		}

		if want := "Topic: " + tt.trimmed; lines[0] != want {
			t.Errorf("header line = %q, want %q", lines[0], want)
		}
		wantLen := 7 + utf8.RuneCountInString(tt.trimmed)
		if want := strings.Repeat("=", wantLen); lines[1] != want {
			t.Errorf("separator for %q has %d '='s, want %d", tt.topic, len(lines[1]), wantLen)
		}
		if lines[2] == "" || lines[2][0] != '\n' {
			t.Errorf("header for %q not followed by a blank line", tt.topic)
		}
	}
}

func TestGenerate_SectionOrder(t *testing.T) {
	out := explain.Generate("entropy")

	sections := []string{
		"Quick summary",
		"Key ideas",
		"Step-by-step breakdown",
		"Analogy",
		"Worked example",
		"Common mistakes",
		"Rapid self-quiz",
		"Mini study plan (20 minutes)",
	}

	last := -1
	for _, s := range sections {
		idx := strings.Index(out, s)
		if idx == -1 {
			t.Fatalf("section %q missing", s)
		}
		if idx <= last {
			t.Errorf("section %q out of order", s)
		}
		last = idx
	}

	// Header plus eight sections, all joined by blank lines.
	if got := strings.Count(out, "\n\n"); got != 8 {
		t.Errorf("blank-line joins = %d, want 8", got)
	}
}

func TestGenerate_SummaryLineUsesTrimmedTopic(t *testing.T) {
	out := explain.Generate("  entropy  ")

	want := "Quick summary\n- entropy in one sentence:"
	if !strings.Contains(out, want) {
		t.Errorf("summary line does not interpolate the trimmed topic:\n%s", out)
	}
}
