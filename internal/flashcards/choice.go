package flashcards

import (
	"math/rand/v2"
	"regexp"
	"strings"
)

var (
	// "Term: definition" or "Term - definition", one per line.
	definitionRe = regexp.MustCompile(`(?m)^[ \t]*([A-Z][\w '()]{1,29}?)(?:[ \t]*:[ \t]*|[ \t]+-[ \t]+)(\S[^\n]*?)[ \t]*$`)
	// "context, answer" with the answer after the last comma.
	clauseRe = regexp.MustCompile(`^(.{10,}),\s*([^,]{3,}?)[.!]*$`)
)

type definition struct {
	term    string
	meaning string
}

type clause struct {
	context string
	answer  string
}

func multipleChoice(cfg Config, rng *rand.Rand, text string, paras []string) []Card {
	cards := definitionCards(cfg, rng, extractDefinitions(text))
	return append(cards, clauseCards(cfg, rng, extractClauses(allSentences(paras)))...)
}

func extractDefinitions(text string) []definition {
	var defs []definition
	seen := map[string]bool{}
	for _, m := range definitionRe.FindAllStringSubmatch(text, -1) {
		term := strings.TrimSpace(m[1])
		meaning := strings.TrimSpace(m[2])
		key := strings.ToLower(term)
		if meaning == "" || seen[key] || key == "question" || key == "answer" {
			continue
		}
		seen[key] = true
		defs = append(defs, definition{term: term, meaning: meaning})
	}
	return defs
}

func definitionCards(cfg Config, rng *rand.Rand, defs []definition) []Card {
	var cards []Card
	for i, d := range defs {
		var others []string
		for j, o := range defs {
			if j != i && !strings.EqualFold(o.meaning, d.meaning) {
				others = append(others, o.meaning)
			}
		}
		others = uniqueFold(others)
		if len(others) < cfg.MinChoiceDistractors {
			continue
		}
		cards = append(cards, Card{
			Front:   "What is " + d.term + "?",
			Back:    d.meaning,
			Kind:    KindMultipleChoice,
			Options: options(cfg, rng, d.meaning, others),
		})
	}
	return cards
}

func extractClauses(sents []string) []clause {
	var out []clause
	for _, s := range sents {
		if strings.HasSuffix(s, "?") {
			continue
		}
		m := clauseRe.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		answer := strings.TrimSpace(m[2])
		if len(strings.Fields(answer)) == 0 {
			continue
		}
		out = append(out, clause{context: strings.TrimSpace(m[1]), answer: answer})
	}
	return out
}

// clauseCards asks for the continuation of every cfg.ClauseEvery-th clause,
// drawing distractors from the answers of all other clauses.
func clauseCards(cfg Config, rng *rand.Rand, clauses []clause) []Card {
	var cards []Card
	for i := 0; i < len(clauses); i += cfg.ClauseEvery {
		c := clauses[i]
		var others []string
		for j, o := range clauses {
			if j != i && !strings.EqualFold(o.answer, c.answer) {
				others = append(others, o.answer)
			}
		}
		others = uniqueFold(others)
		if len(others) < cfg.MinChoiceDistractors {
			continue
		}
		cards = append(cards, Card{
			Front:   c.context + ", ...",
			Back:    c.answer,
			Kind:    KindMultipleChoice,
			Options: options(cfg, rng, c.answer, others),
		})
	}
	return cards
}

func options(cfg Config, rng *rand.Rand, correct string, distractors []string) []string {
	opts := append(pick(rng, distractors, cfg.MaxChoiceDistractors), correct)
	Shuffle(rng, opts)
	return opts
}

func uniqueFold(in []string) []string {
	seen := map[string]bool{}
	out := in[:0]
	for _, s := range in {
		k := strings.ToLower(s)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, s)
	}
	return out
}
