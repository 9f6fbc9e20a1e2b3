package flashcards

import (
	"regexp"
	"strings"
)

var explicitQARe = regexp.MustCompile(`(?i)question:\s*([^?]+\?)\s*answer:\s*([^.\n]+)\.?`)

// directQA collects explicit "Question: ...? Answer: ..." pairs, then pairs
// every other question sentence with the sentence right after it.
func directQA(paras []string) []Card {
	var cards []Card
	for _, p := range paras {
		for _, m := range explicitQARe.FindAllStringSubmatch(p, -1) {
			q, a := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
			if q == "" || a == "" {
				continue
			}
			cards = append(cards, Card{Front: q, Back: a, Kind: KindDirectQA})
		}
	}

	sents := allSentences(paras)
	for i := 0; i+1 < len(sents); i++ {
		q := sents[i]
		if !strings.HasSuffix(q, "?") || strings.HasPrefix(strings.ToLower(q), "question:") {
			continue
		}
		cards = append(cards, Card{Front: q, Back: sents[i+1], Kind: KindDirectQA})
	}
	return cards
}
