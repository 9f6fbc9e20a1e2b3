package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yungbote/startpage-backend/internal/flashcards"
	"github.com/yungbote/startpage-backend/internal/platform/logger"
	"github.com/yungbote/startpage-backend/internal/platform/openai"
)

var cardsOpts struct {
	file  string
	count int
	seed  uint64
	mode  string
}

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "Print flash cards generated from a notes file as JSON",
	Long: `Generate flash cards from plain text notes without starting the server.

Reads --file, or stdin when --file is "-" or empty. --seed makes the
heuristic output reproducible. --mode ai uses the OPENAI_* settings.`,
	Args: cobra.NoArgs,
	RunE: runCards,
}

func init() {
	f := cardsCmd.Flags()
	f.StringVarP(&cardsOpts.file, "file", "f", "", "notes file (default stdin)")
	f.IntVarP(&cardsOpts.count, "count", "n", 5, "number of cards")
	f.Uint64Var(&cardsOpts.seed, "seed", 0, "random seed for the heuristic generator (0 = random)")
	f.StringVar(&cardsOpts.mode, "mode", "heuristic", "heuristic or ai")
}

func readNotes(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

func runCards(cmd *cobra.Command, args []string) error {
	log, err := logger.New("test")
	if err != nil {
		return err
	}
	defer log.Sync()

	text, err := readNotes(cardsOpts.file, cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read notes: %w", err)
	}

	cards, err := generateCards(cmd.Context(), log, text)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(cards)
}

func generateCards(ctx context.Context, log *logger.Logger, text string) ([]flashcards.Card, error) {
	switch strings.ToLower(cardsOpts.mode) {
	case "", "heuristic":
		var rng *rand.Rand
		if cardsOpts.seed != 0 {
			rng = rand.New(rand.NewPCG(cardsOpts.seed, cardsOpts.seed))
		}
		return flashcards.NewGenerator(flashcards.LoadConfig(log), rng).Generate(text, cardsOpts.count)
	case "ai":
		client, err := openai.NewClient(openai.ConfigFromEnv(), log)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", flashcards.ErrAIUnavailable, err)
		}
		return flashcards.NewAIGenerator(client, log).Generate(ctx, text, cardsOpts.count)
	}
	return nil, fmt.Errorf("unknown mode %q", cardsOpts.mode)
}
