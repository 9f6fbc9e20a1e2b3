package flashcards

import (
	"math/rand/v2"
	"strings"
)

// fillInBlank masks one significant word per long enough sentence.
func fillInBlank(cfg Config, rng *rand.Rand, paras []string) []Card {
	var cards []Card
	for _, p := range paras {
		for _, s := range sentences(p) {
			if charCount(s) < cfg.MinBlankSentenceChars {
				continue
			}
			if card, ok := blankSentence(cfg, rng, s); ok {
				cards = append(cards, card)
			}
		}
	}
	return cards
}

func blankSentence(cfg Config, rng *rand.Rand, sentence string) (Card, bool) {
	words := strings.Fields(sentence)
	if len(words) < cfg.MinBlankSentenceWords {
		return Card{}, false
	}
	var candidates []int
	for i := 1; i < len(words); i++ {
		w := stripPunct(words[i])
		if charCount(w) > 4 && !cfg.isStopword(w) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return Card{}, false
	}
	i := candidates[rng.IntN(len(candidates))]
	lead, word, trail := splitPunct(words[i])
	words[i] = lead + cfg.Placeholder + trail
	return Card{
		Front: strings.Join(words, " "),
		Back:  word,
		Kind:  KindFillInBlank,
	}, true
}
