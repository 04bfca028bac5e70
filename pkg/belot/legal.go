package belot

import (
	"belot/pkg/deck"
	"fmt"
	"strings"
)

// RuleSet selects how strictly the legal-move resolver enforces trumping
type RuleSet int

// rule sets
const (
	// RulesTsakane forces a player without the lead suit to overtrump the opposing team when able
	RulesTsakane RuleSet = iota
	// RulesBasic only enforces following the lead suit
	RulesBasic
)

func (r RuleSet) String() string {
	switch r {
	case RulesBasic:
		return "basic"
	case RulesTsakane:
		return "tsakane"
	}

	return fmt.Sprintf("RuleSet(%d)", int(r))
}

// ParseRuleSet parses "basic" or "tsakane"
func ParseRuleSet(s string) (RuleSet, error) {
	switch strings.ToLower(s) {
	case "", "tsakane":
		return RulesTsakane, nil
	case "basic":
		return RulesBasic, nil
	}

	return 0, fmt.Errorf("unknown rule set: %s", s)
}

// LegalMoves returns the cards seat may play from hand.
// trickSoFar holds the cards already played this trick, and seat is the absolute seat of the player.
// The returned cards keep the order of hand. They are never empty unless hand is empty.
// A trick that is already complete, or whose first card is not of leadSuit, is an error.
func LegalMoves(hand deck.Hand, trickSoFar []*deck.Card, leadSuit, trump deck.Suit, seat int, rules RuleSet) (deck.Hand, error) {
	if len(hand) == 0 {
		return nil, nil
	}

	if len(trickSoFar) == 0 {
		return hand.Clone(), nil
	}

	if len(trickSoFar) >= Seats {
		return nil, fmt.Errorf("%w: %d cards already played", ErrTrickLength, len(trickSoFar))
	}

	if trickSoFar[0].Suit != leadSuit {
		return nil, fmt.Errorf("%w: led %s, got %q", ErrLeadSuitMismatch, trickSoFar[0], leadSuit)
	}

	if following := hand.OfSuit(leadSuit); len(following) > 0 {
		return following, nil
	}

	if rules == RulesBasic {
		return hand.Clone(), nil
	}

	best, err := ResolveTrick(trickSoFar, leadSuit, trump)
	if err != nil {
		return nil, err
	}

	bestSeat := (LeaderOf(seat, len(trickSoFar)) + best) % Seats
	if TeamOf(bestSeat) == TeamOf(seat) {
		return hand.Clone(), nil
	}

	trumps := hand.OfSuit(trump)
	if len(trumps) == 0 {
		return hand.Clone(), nil
	}

	peak := -1
	for _, card := range trickSoFar {
		if card.Suit == trump {
			if v := PointValue(card, trump); v > peak {
				peak = v
			}
		}
	}

	if peak < 0 {
		return trumps, nil
	}

	var higher deck.Hand
	for _, card := range trumps {
		if PointValue(card, trump) > peak {
			higher = append(higher, card)
		}
	}

	if len(higher) > 0 {
		return higher, nil
	}

	return trumps, nil
}

// IsLegal returns true if card is one of the legal moves
func IsLegal(legal deck.Hand, card *deck.Card) bool {
	return card != nil && legal.HasCard(card)
}
