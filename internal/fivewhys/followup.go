package fivewhys

import (
	"regexp"
	"strings"
)

// maxFollowUps caps how many extracted questions are offered at once.
const maxFollowUps = 3

// minQuestionLen filters out throwaway fragments like "Certo?".
const minQuestionLen = 15

var (
	listMarkerRe = regexp.MustCompile(`^[-•*]\s*`)
	numberingRe  = regexp.MustCompile(`^\d+[.)]\s*`)
	prefixRe     = regexp.MustCompile(`(?i)^(pergunta|questão):\s*`)
)

// ExtractFollowUps scans an AI root-cause analysis for follow-up
// questions: lines ending in "?" and longer than minQuestionLen, with
// list markers, numbering and "Pergunta:"/"Questão:" prefixes
// stripped, deduplicated, at most maxFollowUps. When the generic scan
// finds nothing, the last five lines are rescanned accepting any
// "?"-terminated line regardless of length.
func ExtractFollowUps(analysis string) []string {
	if analysis == "" {
		return nil
	}

	lines := strings.Split(analysis, "\n")
	seen := make(map[string]bool)
	var questions []string

	add := func(q string) {
		if q == "" || seen[q] {
			return
		}
		seen[q] = true
		questions = append(questions, q)
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasSuffix(trimmed, "?") && len(trimmed) > minQuestionLen {
			if q := stripQuestionPrefixes(trimmed); len(q) > minQuestionLen {
				add(q)
			}
		}

		// "Pergunta: ..." lines carry the question after the colon.
		lower := strings.ToLower(trimmed)
		if strings.Contains(lower, "pergunta:") || strings.Contains(lower, "questão:") {
			parts := strings.SplitN(trimmed, ":", 2)
			if len(parts) == 2 {
				q := strings.TrimSpace(parts[1])
				if strings.HasSuffix(q, "?") && len(q) > minQuestionLen {
					add(q)
				}
			}
		}
	}

	if len(questions) == 0 {
		start := len(lines) - 5
		if start < 0 {
			start = 0
		}
		for _, line := range lines[start:] {
			trimmed := strings.TrimSpace(line)
			if strings.HasSuffix(trimmed, "?") && len(trimmed) > minQuestionLen {
				add(listMarkerRe.ReplaceAllString(trimmed, ""))
			}
		}
	}

	if len(questions) > maxFollowUps {
		questions = questions[:maxFollowUps]
	}
	return questions
}

func stripQuestionPrefixes(s string) string {
	s = listMarkerRe.ReplaceAllString(s, "")
	s = numberingRe.ReplaceAllString(s, "")
	s = prefixRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
