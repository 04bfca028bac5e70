package belot

import (
	"belot/internal/rng"
	"belot/pkg/deck"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Setup is a shuffled, dealt and bid hand ready to be played
type Setup struct {
	Hands    [Seats]deck.Hand
	Contract *Contract
	// Redeals is how many times the cards were thrown in because everybody passed
	Redeals int
}

// Game deals and plays rounds of belot
type Game struct {
	id      string
	options Options
	gen     rng.Generator
	logger  logrus.FieldLogger

	// firstBidder rotates after every deal
	firstBidder int
}

// NewGame returns a new game. All shuffling and bidding draws from gen
func NewGame(logger logrus.FieldLogger, gen rng.Generator, opts Options) *Game {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	id := uuid.New().String()
	return &Game{
		id:      id,
		options: opts,
		gen:     gen,
		logger:  logger.WithField("game", id),
	}
}

// ID returns the game's unique id
func (g *Game) ID() string {
	return g.id
}

// Setup shuffles, deals and bids until a contract is made
func (g *Game) Setup() (*Setup, error) {
	maxRedeals := g.options.MaxRedeals
	if maxRedeals <= 0 {
		maxRedeals = DefaultOptions().MaxRedeals
	}

	for redeals := 0; redeals <= maxRedeals; redeals++ {
		first := g.firstBidder
		g.firstBidder = (g.firstBidder + 1) % Seats

		hands, contract, err := g.deal(first)
		if errors.Is(err, ErrAllPassed) {
			g.logger.WithField("firstBidder", first).Debug("everybody passed, redealing")
			continue
		} else if err != nil {
			return nil, err
		}

		g.logger.WithFields(logrus.Fields{
			"bidder": contract.Seat,
			"trump":  contract.Trump,
		}).Info("contract made")

		return &Setup{
			Hands:    hands,
			Contract: contract,
			Redeals:  redeals,
		}, nil
	}

	return nil, fmt.Errorf("no contract after %d deals: %w", maxRedeals+1, ErrAllPassed)
}

func (g *Game) deal(first int) ([Seats]deck.Hand, *Contract, error) {
	var hands [Seats]deck.Hand
	d := deck.New()
	d.Shuffle(g.gen)

	before := HandSize
	if g.options.Deal == DealTwoStage {
		before = 5
	}

	if err := DealCards(d, &hands, before); err != nil {
		return hands, nil, err
	}

	contract, err := Bid(g.gen, first)
	if err != nil {
		return hands, nil, err
	}

	if err := DealCards(d, &hands, HandSize-before); err != nil {
		return hands, nil, err
	}

	return hands, contract, nil
}

// PlayRound sets up a new deal and plays it out with the choosers
func (g *Game) PlayRound(ctx context.Context, choosers [Seats]Chooser) (*Result, error) {
	setup, err := g.Setup()
	if err != nil {
		return nil, err
	}

	round, err := NewRound(g.logger, setup.Hands, setup.Contract.Trump, g.options)
	if err != nil {
		return nil, err
	}

	res, err := round.Play(ctx, choosers)
	if err != nil {
		return nil, err
	}

	res.Contract = setup.Contract
	return res, nil
}
