// Package policy holds the card-choice strategies a seat can be bound to.
// None of them know the rules; they only pick from the legal moves the round hands them.
package policy

import (
	"belot/internal/rng"
	"belot/pkg/belot"
	"belot/pkg/deck"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoLegalMoves is returned by a policy asked to choose from nothing
var ErrNoLegalMoves = errors.New("no legal moves to choose from")

// Random picks uniformly among the legal moves
type Random struct {
	gen rng.Generator
}

// NewRandom returns a Random policy drawing from gen
func NewRandom(gen rng.Generator) *Random {
	return &Random{gen: gen}
}

// ChooseCard picks a random legal card
func (r *Random) ChooseCard(_ context.Context, turn *belot.Turn) (*deck.Card, error) {
	if len(turn.Legal) == 0 {
		return nil, ErrNoLegalMoves
	}

	return turn.Legal[r.gen.Intn(len(turn.Legal))], nil
}

// FirstValid always plays the first legal card in hand order
type FirstValid struct{}

// ChooseCard returns the first legal card
func (FirstValid) ChooseCard(_ context.Context, turn *belot.Turn) (*deck.Card, error) {
	if len(turn.Legal) == 0 {
		return nil, ErrNoLegalMoves
	}

	return turn.Legal[0], nil
}

// Scripted plays a fixed list of cards in order, whether or not they are legal
type Scripted struct {
	cards []*deck.Card
	next  int
}

// NewScripted returns a policy that plays cards in order
func NewScripted(cards []*deck.Card) *Scripted {
	return &Scripted{cards: cards}
}

// ChooseCard returns the next scripted card
func (s *Scripted) ChooseCard(_ context.Context, _ *belot.Turn) (*deck.Card, error) {
	if s.next >= len(s.cards) {
		return nil, errors.New("script exhausted")
	}

	card := s.cards[s.next]
	s.next++
	return card, nil
}

// Heuristic takes the trick as cheaply as it can and otherwise sheds its least valuable card.
// It never overtakes its partner. When leading it plays its strongest card.
type Heuristic struct{}

// ChooseCard picks a card by the heuristic
func (Heuristic) ChooseCard(_ context.Context, turn *belot.Turn) (*deck.Card, error) {
	if len(turn.Legal) == 0 {
		return nil, ErrNoLegalMoves
	}

	if !turn.HasLead {
		return extreme(turn.Legal, turn.Trump, true), nil
	}

	best, err := belot.ResolveTrick(turn.Trick, turn.LeadSuit, turn.Trump)
	if err != nil {
		return nil, err
	}

	if belot.TeamOf(belot.LeaderOf(turn.Seat, len(turn.Trick))+best) == belot.TeamOf(turn.Seat) {
		return extreme(turn.Legal, turn.Trump, false), nil
	}

	var winners deck.Hand
	for _, card := range turn.Legal {
		trick := append(append([]*deck.Card{}, turn.Trick...), card)
		if best, err := belot.ResolveTrick(trick, turn.LeadSuit, turn.Trump); err == nil && best == len(trick)-1 {
			winners = append(winners, card)
		}
	}

	if len(winners) > 0 {
		return extreme(winners, turn.Trump, false), nil
	}

	return extreme(turn.Legal, turn.Trump, false), nil
}

// extreme returns the highest (or lowest) card by trick-taking order.
// The lowest card is also the one worth the fewest points, and never a trump while a plain card is left.
func extreme(cards deck.Hand, trump deck.Suit, highest bool) *deck.Card {
	pick := cards[0]
	for _, card := range cards[1:] {
		order, pickOrder := strength(card, trump), strength(pick, trump)
		if (highest && order > pickOrder) || (!highest && order < pickOrder) {
			pick = card
		}
	}

	return pick
}

// strength ranks trumps above every plain card
func strength(card *deck.Card, trump deck.Suit) int {
	order := belot.RankOrder(card, trump)
	if card.Suit == trump {
		order += 10000
	}

	return order
}

// Names lists the policies ByName understands
var Names = []string{"random", "first", "heuristic", "human"}

// ByName returns a policy by its config name.
// The human policy reads from in and prompts on out.
func ByName(name string, gen rng.Generator, in *Input, out io.Writer) (belot.Chooser, error) {
	switch strings.ToLower(name) {
	case "random":
		return NewRandom(gen), nil
	case "first":
		return FirstValid{}, nil
	case "heuristic":
		return Heuristic{}, nil
	case "human":
		return NewHuman(in, out), nil
	}

	return nil, fmt.Errorf("unknown policy: %s", name)
}
