package flashcards

import (
	"math/rand/v2"
	"strings"
)

var copulas = []string{" is ", " are ", " was ", " were "}

// trueFalse turns declarative sentences into true/false claims. A sentence
// is kept as is with probability cfg.TrueProbability, otherwise negated.
func trueFalse(cfg Config, rng *rand.Rand, paras []string) []Card {
	var cards []Card
	for _, s := range allSentences(paras) {
		if charCount(s) <= cfg.MinClaimSentenceChars || strings.Contains(s, "?") || !hasCopula(s) {
			continue
		}
		if rng.Float64() < cfg.TrueProbability {
			cards = append(cards, Card{Front: s, Back: "true", Kind: KindTrueFalse})
			continue
		}
		cards = append(cards, Card{Front: negate(cfg, rng, s), Back: "false", Kind: KindTrueFalse})
	}
	return cards
}

func hasCopula(s string) bool {
	for _, c := range copulas {
		if strings.Contains(s, c) {
			return true
		}
	}
	return false
}

// firstOf returns the leftmost occurrence of any of needles in s.
func firstOf(s string, needles []string) (idx int, needle string) {
	idx = -1
	for _, n := range needles {
		if i := strings.Index(s, n); i >= 0 && (idx < 0 || i < idx) {
			idx, needle = i, n
		}
	}
	return idx, needle
}

// negate flips the polarity of a claim. An already negated copula loses its
// "not", a plain copula gains one, and a sentence with neither has a random
// word swapped for one of cfg.NegationWords.
func negate(cfg Config, rng *rand.Rand, s string) string {
	negated := make([]string, len(copulas))
	for i, c := range copulas {
		negated[i] = c + "not "
	}
	if i, n := firstOf(s, negated); i >= 0 {
		return s[:i] + strings.TrimSuffix(n, "not ") + s[i+len(n):]
	}
	if i, c := firstOf(s, copulas); i >= 0 {
		return s[:i] + c + "not " + s[i+len(c):]
	}

	words := strings.Fields(s)
	if len(words) < 2 {
		return cfg.NegationWords[rng.IntN(len(cfg.NegationWords))] + " " + s
	}
	i := 1 + rng.IntN(len(words)-1)
	lead, _, trail := splitPunct(words[i])
	words[i] = lead + cfg.NegationWords[rng.IntN(len(cfg.NegationWords))] + trail
	return strings.Join(words, " ")
}
