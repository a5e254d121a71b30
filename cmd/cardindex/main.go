package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/fadedpez/cardindex/internal/config"
	"github.com/fadedpez/cardindex/internal/logging"
	"github.com/fadedpez/cardindex/pkg/cards"
	"github.com/fadedpez/cardindex/pkg/features"
	"github.com/fadedpez/cardindex/pkg/recognition"
)

func main() {
	// Show usage if no arguments provided
	if len(os.Args) < 2 {
		printUsage(os.Stdout)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout)
	stop()

	if errors.Is(err, errUsage) {
		os.Exit(1)
	}
	if err != nil {
		logging.Default.LogError(err)
		os.Exit(1)
	}
}

// errUsage is returned after usage help has been printed for bad arguments
var errUsage = errors.New("usage")

// run executes one subcommand. Configuration is loaded only by the
// subcommands that use it, so table and help work with a broken .env.
func run(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	// Define command-line flags
	dealCmd := flag.NewFlagSet("deal", flag.ContinueOnError)
	observeCmd := flag.NewFlagSet("observe", flag.ContinueOnError)

	// Deal command options
	dealCount := dealCmd.Int("n", 17, "Number of cards to deal")
	dealSeed := dealCmd.Int64("seed", 0, "Shuffle seed, overrides SHUFFLE_SEED")

	// Observe command options
	region := observeCmd.String("region", string(recognition.Hand), "Screen region the frames come from (hand or field)")

	// Parse command
	switch args[0] {
	case "table":
		printTable(out)
		return nil

	case "encode":
		if len(args) < 2 {
			fmt.Fprintln(out, "Error: Missing card names")
			return errUsage
		}
		if _, err := config.Load(); err != nil {
			return err
		}
		return encode(out, args[1:])

	case "decode":
		if len(args) < 2 {
			fmt.Fprintln(out, "Error: Missing indices")
			return errUsage
		}
		if _, err := config.Load(); err != nil {
			return err
		}
		return decode(out, args[1:])

	case "deal":
		if err := dealCmd.Parse(args[1:]); err != nil {
			return errUsage
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		seed := cfg.ShuffleSeed
		if *dealSeed != 0 {
			seed = *dealSeed
		}
		deal(out, *dealCount, seed)
		return nil

	case "observe":
		if err := observeCmd.Parse(args[1:]); err != nil {
			return errUsage
		}
		r := recognition.Region(*region)
		if r != recognition.Hand && r != recognition.Field {
			fmt.Fprintf(out, "Error: Unknown region '%s'\n", *region)
			return errUsage
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return observe(ctx, in, out, r, cfg.MinConfidence, cfg.Logger())

	case "help":
		printUsage(out)
		return nil

	default:
		fmt.Fprintf(out, "Error: Unknown command '%s'\n\n", args[0])
		printUsage(out)
		return errUsage
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  cardindex table                    - Print every card with its index")
	fmt.Fprintln(w, "  cardindex encode NAME...           - Print the index of each card")
	fmt.Fprintln(w, "  cardindex decode INDEX...          - Print the card at each index")
	fmt.Fprintln(w, "  cardindex deal [-n N] [-seed S]    - Shuffle a deck and deal N cards")
	fmt.Fprintln(w, "  cardindex observe [-region R]      - Read frames of labels from stdin")
	fmt.Fprintln(w, "  cardindex help                     - Show this help")
	fmt.Fprintln(w, "\nExamples:")
	fmt.Fprintln(w, "  cardindex encode ACE_SPADES JOKER")
	fmt.Fprintln(w, "  echo \"THREE_HEARTS WONDER@0.9\" | cardindex observe -region field")
}

func printTable(w io.Writer) {
	for _, card := range cards.NewDeck().Cards() {
		fmt.Fprintf(w, "%2d  %s\n", card.Index(), card)
	}
}

func encode(w io.Writer, names []string) error {
	for _, name := range names {
		card, err := cards.Parse(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\n", card, card.Index())
	}
	return nil
}

func decode(w io.Writer, args []string) error {
	for _, arg := range args {
		idx, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("bad index %q: %w", arg, err)
		}
		card, err := cards.FromIndex(idx)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%s\n", idx, card)
	}
	return nil
}

func deal(w io.Writer, n int, seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	deck := cards.NewDeck()
	deck.Shuffle(rand.New(rand.NewSource(seed)))
	hand := deck.Draw(n)
	cards.Sort(hand)

	fmt.Fprintln(w, joinCards(hand))
}

// printSink writes each observation as one line
type printSink struct {
	w io.Writer
}

func (p printSink) Publish(ctx context.Context, obs *recognition.Observation) error {
	_, err := fmt.Fprintf(p.w, "%s\t%s\t%016x\t%s\n", obs.ID, obs.Region, features.Mask(obs.Cards...), joinCards(obs.Cards))
	return err
}

func observe(ctx context.Context, in io.Reader, out io.Writer, region recognition.Region, minConfidence float64, logger *logging.Logger) error {
	observer, err := recognition.NewObserver(
		recognition.NewTextRecognizer(in),
		printSink{w: out},
		recognition.WithMinConfidence(minConfidence),
		recognition.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	for {
		if _, err := observer.Observe(ctx, region); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func joinCards(cs []cards.Card) string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.String()
	}
	return strings.Join(names, " ")
}
