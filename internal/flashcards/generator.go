package flashcards

import (
	"math/rand/v2"
	"strings"
	"sync"
)

// Generator derives study cards from free text with four heuristic
// strategies. It is safe for concurrent use; all randomness comes from one
// shared source.
type Generator struct {
	cfg Config
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator uses rng for word selection, claim polarity and shuffling.
// A nil rng gets a randomly seeded PCG source.
func NewGenerator(cfg Config, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{cfg: cfg, rng: rng}
}

func (g *Generator) Config() Config { return g.cfg }

// Pool returns every card the strategies produce for text, unshuffled, in
// strategy order: fill-in-blank, true/false, multiple-choice, direct Q&A.
func (g *Generator) Pool(text string) []Card {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.poolLocked(text)
}

func (g *Generator) poolLocked(text string) []Card {
	paras := paragraphs(text)
	if len(paras) == 0 {
		return nil
	}
	var pool []Card
	pool = append(pool, fillInBlank(g.cfg, g.rng, paras)...)
	pool = append(pool, trueFalse(g.cfg, g.rng, paras)...)
	pool = append(pool, multipleChoice(g.cfg, g.rng, text, paras)...)
	pool = append(pool, directQA(paras)...)
	return pool
}

// Generate returns min(n, pool size) cards drawn from a uniformly shuffled
// pool. Text without usable content yields ErrNoContent.
func (g *Generator) Generate(text string, n int) ([]Card, error) {
	if n < 1 {
		return nil, ErrInvalidCount
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoContent
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	pool := g.poolLocked(text)
	if len(pool) == 0 {
		return nil, ErrNoContent
	}
	Shuffle(g.rng, pool)
	if n < len(pool) {
		pool = pool[:n]
	}
	return pool, nil
}
