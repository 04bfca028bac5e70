package main

import (
	"belot/internal/config"
	"belot/internal/rng"
	"belot/internal/util"
	"belot/pkg/belot"
	"belot/pkg/policy"
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var rounds = flag.Int("rounds", 0, "number of rounds to play (overrides the config)")
var seed = flag.Int64("seed", 0, "random seed (overrides the config)")

func main() {
	flag.Parse()
	cfg := config.Instance()
	setupLogger(cfg)

	if *rounds > 0 {
		cfg.Rounds = *rounds
	}

	if *seed > 0 {
		cfg.Seed = *seed
	}

	if cfg.Seed == 0 {
		cfg.Seed = rng.Crypto{}.Seed()
	}

	opts, err := cfg.Options()
	if err != nil {
		logrus.WithError(err).Fatal("invalid options")
	}

	gen := rng.NewSeeded(cfg.Seed)
	choosers, err := buildChoosers(cfg.Policies, gen)
	if err != nil {
		logrus.WithError(err).Fatal("could not set up the seats")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	names := util.SeatNames(rng.NewSeeded(cfg.Seed), belot.Seats)
	printHeader(cfg, names)

	game := belot.NewGame(logrus.StandardLogger(), gen, opts)
	var totals [2]int
	for i := 0; i < cfg.Rounds; i++ {
		res, err := game.PlayRound(ctx, choosers)
		if err != nil {
			logrus.WithError(err).WithField("round", i+1).Fatal("round failed")
		}

		totals[0] += res.Score[0]
		totals[1] += res.Score[1]
		printRound(i+1, res, names)
	}

	printTotals(totals, names)
}

func buildChoosers(names []string, gen rng.Generator) ([belot.Seats]belot.Chooser, error) {
	var choosers [belot.Seats]belot.Chooser
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	in := policy.NewInput(os.Stdin)

	for seat, name := range names {
		if strings.EqualFold(name, "human") && !interactive {
			logrus.WithField("seat", seat).Fatal("the human policy needs a terminal on stdin")
		}

		chooser, err := policy.ByName(name, gen, in, os.Stdout)
		if err != nil {
			return choosers, err
		}

		choosers[seat] = chooser
	}

	return choosers, nil
}

func setupLogger(cfg config.Config) {
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" || strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
