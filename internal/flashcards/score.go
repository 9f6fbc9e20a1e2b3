package flashcards

import (
	"math"
	"strings"
)

// Result is the outcome of checking one answer. Percent is the share of
// significant words matched for fuzzy checks and 0 or 100 otherwise.
type Result struct {
	Correct bool `json:"correct"`
	Percent int  `json:"percent"`
	Fuzzy   bool `json:"fuzzy"`
}

// Score checks answer against card.Back. True/false and multiple-choice
// cards need an exact case-insensitive match; the free text kinds accept an
// answer containing at least cfg.MatchThreshold of the significant words.
func Score(card Card, answer string, cfg Config) Result {
	answer = strings.TrimSpace(answer)
	switch card.Kind {
	case KindTrueFalse, KindMultipleChoice:
		return exact(card.Back, answer)
	}

	sig := significantWords(card.Back)
	if len(sig) == 0 {
		return exact(card.Back, answer)
	}
	lower := strings.ToLower(answer)
	matched := 0
	for _, w := range sig {
		if strings.Contains(lower, w) {
			matched++
		}
	}
	ratio := float64(matched) / float64(len(sig))
	return Result{
		Correct: answer != "" && ratio >= cfg.MatchThreshold,
		Percent: int(math.Round(ratio * 100)),
		Fuzzy:   true,
	}
}

func exact(back, answer string) Result {
	if strings.EqualFold(strings.TrimSpace(back), answer) {
		return Result{Correct: true, Percent: 100}
	}
	return Result{}
}
